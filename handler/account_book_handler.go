package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AccountBookHandler struct {
	service *usecase.AccountBookService
}

func NewAccountBookHandler(service *usecase.AccountBookService) *AccountBookHandler {
	return &AccountBookHandler{service: service}
}

// GetAccountBook returns the singleton book, creating it on first access.
func (h *AccountBookHandler) GetAccountBook(c *gin.Context) {
	book, err := h.service.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToAccountBookResponse(book))
}

func (h *AccountBookHandler) UpdateAccountBook(c *gin.Context) {
	var req struct {
		TotalAsset *float64 `json:"total_asset" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: total_asset is required")
		return
	}

	book, err := h.service.SetTotalAsset(c.Request.Context(), *req.TotalAsset)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("account_book", "update")
	utils.Success(c, dto.ToAccountBookResponse(book))
}

func (h *AccountBookHandler) AddWishItem(c *gin.Context) {
	var req struct {
		Name  string  `json:"name" binding:"required"`
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.service.AddWishItem(c.Request.Context(), req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("account_book", "add_wish_item")
	utils.Created(c, dto.ToAccountBookResponse(book))
}

func (h *AccountBookHandler) UpdateWishItem(c *gin.Context) {
	var upd model.AccountWishItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	book, err := h.service.UpdateWishItem(c.Request.Context(), c.Param("itemId"), upd)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("account_book", "update_wish_item")
	utils.Success(c, dto.ToAccountBookResponse(book))
}

func (h *AccountBookHandler) RemoveWishItem(c *gin.Context) {
	book, err := h.service.RemoveWishItem(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.TrackEntityOperation("account_book", "remove_wish_item")
	utils.Success(c, dto.ToAccountBookResponse(book))
}
