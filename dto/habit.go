package dto

import (
	"main/model"
	"time"
)

// Completed and selected dates go out as plain "2006-01-02" strings; the
// stored values are midnight UTC already.
func formatDays(dates []time.Time) []string {
	days := make([]string, len(dates))
	for i, d := range dates {
		days[i] = d.UTC().Format("2006-01-02")
	}
	return days
}

type HabitResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	HabitCategoryID string    `json:"habit_category_id"`
	ProjectID       string    `json:"project_id,omitempty"`
	CompletedDates  []string  `json:"completed_dates"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToHabitResponse(habit *model.Habit) HabitResponse {
	return HabitResponse{
		ID:              habit.HabitID,
		Title:           habit.Title,
		Description:     habit.Description,
		HabitCategoryID: habit.HabitCategoryID,
		ProjectID:       habit.ProjectID,
		CompletedDates:  formatDays(habit.CompletedDates),
		SortOrder:       habit.SortOrder,
		CreatedAt:       habit.CreatedAt,
		UpdatedAt:       habit.UpdatedAt,
	}
}

func ToHabitResponses(habits []*model.Habit) []HabitResponse {
	responses := make([]HabitResponse, len(habits))
	for i, habit := range habits {
		responses[i] = ToHabitResponse(habit)
	}
	return responses
}
