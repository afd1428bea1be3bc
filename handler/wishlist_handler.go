package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	service *usecase.WishlistService
}

func NewWishlistHandler(service *usecase.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

func (h *WishlistHandler) CreateWish(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	wish := &model.Wishlist{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := h.service.Create(c.Request.Context(), wish); err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("wishlist", "create")
	utils.Created(c, dto.ToWishlistResponse(wish))
}

func (h *WishlistHandler) GetWishes(c *gin.Context) {
	wishes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToWishlistResponses(wishes))
}

func (h *WishlistHandler) GetWish(c *gin.Context) {
	wish, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToWishlistResponse(wish))
}

func (h *WishlistHandler) UpdateWish(c *gin.Context) {
	var upd model.WishlistUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	wish, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("wishlist", "update")
	utils.Success(c, dto.ToWishlistResponse(wish))
}

func (h *WishlistHandler) DeleteWish(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("wishlist", "delete")
	utils.Deleted(c)
}
