package model

import "time"

type ToggleAction string

const (
	ToggleAdd    ToggleAction = "add"
	ToggleRemove ToggleAction = "remove"
)

func (a ToggleAction) Valid() bool {
	return a == ToggleAdd || a == ToggleRemove
}

// HabitUpdate carries the fields a PATCH may change; nil means leave
// untouched.
type HabitUpdate struct {
	Title           *string `json:"title,omitempty"`
	Description     *string `json:"description,omitempty"`
	HabitCategoryID *string `json:"habit_category_id,omitempty"`
	ProjectID       *string `json:"project_id,omitempty"`
}

type Habit struct {
	HabitID         string      `bson:"_id,omitempty" json:"id"`
	Title           string      `bson:"title" json:"title" binding:"required"`
	Description     string      `bson:"description,omitempty" json:"description"`
	HabitCategoryID string      `bson:"habit_category_id" json:"habit_category_id" binding:"required"`
	ProjectID       string      `bson:"project_id,omitempty" json:"project_id,omitempty"`
	CompletedDates  []time.Time `bson:"completed_dates" json:"completed_dates"`
	SortOrder       int         `bson:"sort_order" json:"sort_order"`
	CreatedAt       time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time   `bson:"updated_at" json:"updated_at"`
}
