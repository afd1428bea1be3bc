package model

import "time"

type Todo struct {
	TodoID        string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title" binding:"required"`
	Description   string    `bson:"description,omitempty" json:"description"`
	IsCompleted   bool      `bson:"is_completed" json:"is_completed"`
	DueDate       time.Time `bson:"due_date,omitempty" json:"due_date,omitempty"`
	StartDate     time.Time `bson:"start_date,omitempty" json:"start_date,omitempty"`
	EndDate       time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	ProjectID     string    `bson:"project_id,omitempty" json:"project_id,omitempty"`
	CompletedDate time.Time `bson:"completed_date,omitempty" json:"completed_date,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// TodoFilter narrows a todo listing. DueOn selects todos whose due date
// falls on that calendar day (inclusive start, exclusive next day).
type TodoFilter struct {
	ProjectID   string
	DueOn       *time.Time
	IsCompleted *bool
}

// TodoUpdate carries the fields a PATCH may change; nil means leave
// untouched.
type TodoUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	ProjectID   *string    `json:"project_id,omitempty"`
}
