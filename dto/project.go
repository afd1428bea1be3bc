package dto

import (
	"main/model"
	"time"
)

type ProjectResponse struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Status          model.ProjectStatus `json:"status"`
	ParentProjectID string              `json:"parent_project_id,omitempty"`
	Items           []model.ProjectItem `json:"items"`
	URLs            []model.ProjectURL  `json:"urls"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

func ToProjectResponse(project *model.Project) ProjectResponse {
	items := project.Items
	if items == nil {
		items = []model.ProjectItem{}
	}
	urls := project.URLs
	if urls == nil {
		urls = []model.ProjectURL{}
	}
	return ProjectResponse{
		ID:              project.ProjectID,
		Title:           project.Title,
		Description:     project.Description,
		Status:          project.Status,
		ParentProjectID: project.ParentProjectID,
		Items:           items,
		URLs:            urls,
		CreatedAt:       project.CreatedAt,
		UpdatedAt:       project.UpdatedAt,
	}
}

func ToProjectResponses(projects []*model.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
