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

type ProjectHandler struct {
	service *usecase.ProjectService
	cache   *services.ListCache
}

func NewProjectHandler(service *usecase.ProjectService, cache *services.ListCache) *ProjectHandler {
	return &ProjectHandler{service: service, cache: cache}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req struct {
		Title           string              `json:"title" binding:"required"`
		Description     string              `json:"description"`
		Status          model.ProjectStatus `json:"status" binding:"omitempty,projectstatus"`
		ParentProjectID string              `json:"parent_project_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project := &model.Project{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		ParentProjectID: req.ParentProjectID,
	}
	if err := h.service.Create(c.Request.Context(), project); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyProjects)
	middleware.TrackEntityOperation("project", "create")
	utils.Created(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	filter := model.ProjectFilter{
		TopLevelOnly:    c.Query("topLevelOnly") == "true",
		ParentProjectID: c.Query("parentProjectId"),
		Status:          model.ProjectStatus(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		utils.BadRequest(c, "Invalid status filter")
		return
	}

	unfiltered := !filter.TopLevelOnly && filter.ParentProjectID == "" && filter.Status == ""
	if unfiltered {
		var cached []dto.ProjectResponse
		if h.cache.Get(c.Request.Context(), services.CacheKeyProjects, &cached) {
			utils.Success(c, cached)
			return
		}
	}

	projects, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := dto.ToProjectResponses(projects)
	if unfiltered {
		h.cache.Set(c.Request.Context(), services.CacheKeyProjects, responses)
	}
	utils.Success(c, responses)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) GetChildren(c *gin.Context) {
	children, err := h.service.ListChildren(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponses(children))
}

// UpdateProject applies a partial update. A status set here changes only
// this project; descendants are untouched.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var upd model.ProjectUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.service.Update(c.Request.Context(), c.Param("id"), &upd)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyProjects)
	middleware.TrackEntityOperation("project", "update")
	utils.Success(c, dto.ToProjectResponse(project))
}

// ChangeStatus sets a new status and optionally propagates it to all
// non-terminal descendants.
func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	var req struct {
		Status    model.ProjectStatus `json:"status" binding:"required,projectstatus"`
		Propagate bool                `json:"propagate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, changed, err := h.service.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Propagate)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(), services.CacheKeyProjects)
	middleware.TrackEntityOperation("project", "change_status")
	utils.Success(c, gin.H{
		"project":          dto.ToProjectResponse(project),
		"propagated_count": changed,
	})
}

// DeleteProject cascades: descendants and their todos/habits go too.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.service.CascadeDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	h.cache.Invalidate(c.Request.Context(),
		services.CacheKeyProjects, services.CacheKeyTodos, services.CacheKeyHabits)
	middleware.TrackEntityOperation("project", "cascade_delete")
	utils.Deleted(c)
}

// Embedded item endpoints.

func (h *ProjectHandler) AddItem(c *gin.Context) {
	var req struct {
		Name  string   `json:"name" binding:"required"`
		Price *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.service.AddItem(c.Request.Context(), c.Param("id"), req.Name, req.Price)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) UpdateItem(c *gin.Context) {
	var upd model.ProjectItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) RemoveItem(c *gin.Context) {
	project, err := h.service.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponse(project))
}

// Embedded url endpoints.

func (h *ProjectHandler) AddURL(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
		URL   string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.service.AddURL(c.Request.Context(), c.Param("id"), req.Title, req.URL)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) UpdateURL(c *gin.Context) {
	var upd model.ProjectURLUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	project, err := h.service.UpdateURL(c.Request.Context(), c.Param("id"), c.Param("urlId"), upd)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponse(project))
}

func (h *ProjectHandler) RemoveURL(c *gin.Context) {
	project, err := h.service.RemoveURL(c.Request.Context(), c.Param("id"), c.Param("urlId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProjectResponse(project))
}
