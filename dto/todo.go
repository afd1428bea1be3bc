package dto

import (
	"main/model"
	"time"
)

type TodoResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	IsCompleted   bool       `json:"is_completed"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	ProjectID     string     `json:"project_id,omitempty"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Convert model.Todo to TodoResponse
func ToTodoResponse(todo *model.Todo) TodoResponse {
	response := TodoResponse{
		ID:          todo.TodoID,
		Title:       todo.Title,
		Description: todo.Description,
		IsCompleted: todo.IsCompleted,
		ProjectID:   todo.ProjectID,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}

	// Handle nullable time fields
	if !todo.DueDate.IsZero() {
		response.DueDate = &todo.DueDate
	}
	if !todo.StartDate.IsZero() {
		response.StartDate = &todo.StartDate
	}
	if !todo.EndDate.IsZero() {
		response.EndDate = &todo.EndDate
	}
	if !todo.CompletedDate.IsZero() {
		response.CompletedDate = &todo.CompletedDate
	}

	return response
}

// Convert slice of model.Todo to slice of TodoResponse
func ToTodoResponses(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = ToTodoResponse(todo)
	}
	return responses
}
