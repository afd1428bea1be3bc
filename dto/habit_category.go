package dto

import (
	"main/model"
	"time"
)

type HabitCategoryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	SelectedDates []string  `json:"selected_dates"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToHabitCategoryResponse(category *model.HabitCategory) HabitCategoryResponse {
	return HabitCategoryResponse{
		ID:            category.CategoryID,
		Title:         category.Title,
		SelectedDates: formatDays(category.SelectedDates),
		CreatedAt:     category.CreatedAt,
		UpdatedAt:     category.UpdatedAt,
	}
}

func ToHabitCategoryResponses(categories []*model.HabitCategory) []HabitCategoryResponse {
	responses := make([]HabitCategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToHabitCategoryResponse(category)
	}
	return responses
}
