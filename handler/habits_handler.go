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

type HabitHandler struct {
	service *usecase.HabitService
	cache   *services.ListCache
}

func NewHabitHandler(service *usecase.HabitService, cache *services.ListCache) *HabitHandler {
	return &HabitHandler{service: service, cache: cache}
}

func (h *HabitHandler) CreateHabit(c *gin.Context) {
	var req struct {
		Title           string `json:"title" binding:"required"`
		Description     string `json:"description"`
		HabitCategoryID string `json:"habit_category_id" binding:"required"`
		ProjectID       string `json:"project_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		Title:           req.Title,
		Description:     req.Description,
		HabitCategoryID: req.HabitCategoryID,
		ProjectID:       req.ProjectID,
	}
	if err := h.service.Create(c.Request.Context(), habit); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
	middleware.TrackEntityOperation("habit", "create")
	utils.Created(c, dto.ToHabitResponse(habit))
}

func (h *HabitHandler) GetHabits(c *gin.Context) {
	categoryID := c.Query("categoryId")

	if categoryID == "" {
		var cached []dto.HabitResponse
		if h.cache.Get(c.Request.Context(), services.CacheKeyHabits, &cached) {
			utils.Success(c, cached)
			return
		}
	}

	habits, err := h.service.List(c.Request.Context(), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.ToHabitResponses(habits)
	if categoryID == "" {
		h.cache.Set(c.Request.Context(), services.CacheKeyHabits, responses)
	}
	utils.Success(c, responses)
}

func (h *HabitHandler) GetHabit(c *gin.Context) {
	habit, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToHabitResponse(habit))
}

// UpdateHabit multiplexes PATCH bodies: an action plus a date toggles
// that calendar day in completed_dates, anything else is a partial field
// update.
func (h *HabitHandler) UpdateHabit(c *gin.Context) {
	var req struct {
		Action string  `json:"action"`
		Date   string  `json:"date"`
		Title  *string `json:"title"`
		Desc   *string `json:"description"`
		CatID  *string `json:"habit_category_id"`
		ProjID *string `json:"project_id"`
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

		habit, err := h.service.Toggle(c.Request.Context(), c.Param("id"), action, day)
		if err != nil {
			respondError(c, err)
			return
		}
		h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
		middleware.TrackEntityOperation("habit", "toggle")
		utils.Success(c, dto.ToHabitResponse(habit))
		return
	}

	upd := model.HabitUpdate{
		Title:           req.Title,
		Description:     req.Desc,
		HabitCategoryID: req.CatID,
		ProjectID:       req.ProjID,
	}
	habit, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
	middleware.TrackEntityOperation("habit", "update")
	utils.Success(c, dto.ToHabitResponse(habit))
}

func (h *HabitHandler) DeleteHabit(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
	middleware.TrackEntityOperation("habit", "delete")
	utils.Deleted(c)
}

// ResetCompletions clears one day across every habit of a category in a
// single bulk write.
func (h *HabitHandler) ResetCompletions(c *gin.Context) {
	var req struct {
		CategoryID string `json:"categoryId" binding:"required"`
		Date       string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	day, err := utils.ParseDay(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	modified, err := h.service.ResetCompletions(c.Request.Context(), req.CategoryID, day)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
	middleware.TrackEntityOperation("habit", "reset_completions")
	utils.Success(c, gin.H{
		"message":       "Completions reset",
		"modifiedCount": modified,
	})
}

func (h *HabitHandler) ReorderHabits(c *gin.Context) {
	var req struct {
		IDs []string `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.service.Reorder(c.Request.Context(), req.IDs); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyHabits)
	middleware.TrackEntityOperation("habit", "reorder")
	utils.Success(c, gin.H{"message": "Habits reordered"})
}
