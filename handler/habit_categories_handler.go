package handler

import (
	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HabitCategoryHandler struct {
	service *usecase.HabitCategoryService
	cache   *services.ListCache
}

func NewHabitCategoryHandler(service *usecase.HabitCategoryService, cache *services.ListCache) *HabitCategoryHandler {
	return &HabitCategoryHandler{service: service, cache: cache}
}

func (h *HabitCategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category := &model.HabitCategory{Title: req.Title}
	if err := h.service.Create(c.Request.Context(), category); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
	middleware.TrackEntityOperation("habit_category", "create")
	utils.Created(c, dto.ToHabitCategoryResponse(category))
}

func (h *HabitCategoryHandler) GetCategories(c *gin.Context) {
	var cached []dto.HabitCategoryResponse
	if h.cache.Get(c.Request.Context(), services.CacheKeyCategories, &cached) {
		utils.Success(c, cached)
		return
	}

	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.ToHabitCategoryResponses(categories)
	h.cache.Set(c.Request.Context(), services.CacheKeyCategories, responses)
	utils.Success(c, responses)
}

func (h *HabitCategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToHabitCategoryResponse(category))
}

// UpdateCategory multiplexes PATCH bodies the same way habits do: an
// action plus a date toggles that day in selected_dates, otherwise the
// body is a partial field update.
func (h *HabitCategoryHandler) UpdateCategory(c *gin.Context) {
	var req struct {
		Action string  `json:"action"`
		Date   string  `json:"date"`
		Title  *string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if req.Action != "" || req.Date != "" {
		action := model.ToggleAction(req.Action)
		if !action.Valid() {
			utils.BadRequest(c, "Invalid action, expected add or remove")
			return
		}
		day, err := utils.ParseDay(req.Date)
		if err != nil {
			utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}

		category, err := h.service.Toggle(c.Request.Context(), c.Param("id"), action, day)
		if err != nil {
			respondError(c, err)
			return
		}
		h.cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
		middleware.TrackEntityOperation("habit_category", "toggle")
		utils.Success(c, dto.ToHabitCategoryResponse(category))
		return
	}

	upd := model.HabitCategoryUpdate{Title: req.Title}
	category, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
	middleware.TrackEntityOperation("habit_category", "update")
	utils.Success(c, dto.ToHabitCategoryResponse(category))
}

func (h *HabitCategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyCategories)
	middleware.TrackEntityOperation("habit_category", "delete")
	utils.Deleted(c)
}
