package handler

import (
	"strconv"
	"time"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service *usecase.TodoService
	cache   *services.ListCache
}

func NewTodoHandler(service *usecase.TodoService, cache *services.ListCache) *TodoHandler {
	return &TodoHandler{service: service, cache: cache}
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		DueDate     *time.Time `json:"due_date"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
		ProjectID   string     `json:"project_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo := &model.Todo{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	}
	if req.DueDate != nil {
		todo.DueDate = *req.DueDate
	}
	if req.StartDate != nil {
		todo.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		todo.EndDate = *req.EndDate
	}

	if err := h.service.Create(c.Request.Context(), todo); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyTodos)
	middleware.TrackEntityOperation("todo", "create")
	utils.Created(c, dto.ToTodoResponse(todo))
}

func (h *TodoHandler) GetTodos(c *gin.Context) {
	var filter model.TodoFilter
	filter.ProjectID = c.Query("projectId")
	if raw := c.Query("dueDate"); raw != "" {
		day, err := utils.ParseDay(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid dueDate, expected YYYY-MM-DD")
			return
		}
		filter.DueOn = &day
	}
	if raw := c.Query("isCompleted"); raw != "" {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid isCompleted, expected true or false")
			return
		}
		filter.IsCompleted = &done
	}

	unfiltered := filter.ProjectID == "" && filter.DueOn == nil && filter.IsCompleted == nil
	if unfiltered {
		var cached []dto.TodoResponse
		if h.cache.Get(c.Request.Context(), services.CacheKeyTodos, &cached) {
			utils.Success(c, cached)
			return
		}
	}

	todos, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.ToTodoResponses(todos)
	if unfiltered {
		h.cache.Set(c.Request.Context(), services.CacheKeyTodos, responses)
	}
	utils.Success(c, responses)
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	todo, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTodoResponse(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	var upd model.TodoUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyTodos)
	middleware.TrackEntityOperation("todo", "update")
	utils.Success(c, dto.ToTodoResponse(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyTodos)
	middleware.TrackEntityOperation("todo", "delete")
	utils.Deleted(c)
}
