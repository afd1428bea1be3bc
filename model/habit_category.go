package model

import "time"

// HabitCategoryUpdate carries the fields a PATCH may change.
type HabitCategoryUpdate struct {
	Title *string `json:"title,omitempty"`
}

// HabitCategory groups habits and records the calendar days on which the
// category is the active one. The front end keeps SelectedDates disjoint
// across categories; the backend does not enforce that.
type HabitCategory struct {
	CategoryID    string      `bson:"_id,omitempty" json:"id"`
	Title         string      `bson:"title" json:"title" binding:"required"`
	SelectedDates []time.Time `bson:"selected_dates" json:"selected_dates"`
	CreatedAt     time.Time   `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time   `bson:"updated_at" json:"updated_at"`
}
