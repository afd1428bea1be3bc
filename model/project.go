package model

import "time"

type ProjectStatus string

const (
	StatusActive    ProjectStatus = "active"
	StatusPaused    ProjectStatus = "paused"
	StatusCompleted ProjectStatus = "completed"
	StatusWish      ProjectStatus = "wish"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusCompleted, StatusWish:
		return true
	}
	return false
}

// Terminal statuses are never overwritten by status propagation.
func (s ProjectStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusWish
}

type ProjectItem struct {
	ItemID        string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name"`
	Price         *float64   `bson:"price,omitempty" json:"price,omitempty"`
	IsPurchased   bool       `bson:"is_purchased" json:"is_purchased"`
	PurchasedDate *time.Time `bson:"purchased_date,omitempty" json:"purchased_date,omitempty"`
}

// ProjectFilter narrows a project listing.
type ProjectFilter struct {
	TopLevelOnly    bool
	ParentProjectID string
	Status          ProjectStatus
}

// ProjectUpdate carries the fields a PATCH may change; nil means leave
// untouched. A Status set here never propagates to descendants.
type ProjectUpdate struct {
	Title           *string        `json:"title,omitempty"`
	Description     *string        `json:"description,omitempty"`
	Status          *ProjectStatus `json:"status,omitempty"`
	ParentProjectID *string        `json:"parent_project_id,omitempty"`
}

// ProjectItemUpdate carries the fields of an embedded item a PATCH may
// change; nil means leave untouched.
type ProjectItemUpdate struct {
	Name          *string    `json:"name,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	IsPurchased   *bool      `json:"is_purchased,omitempty"`
	PurchasedDate *time.Time `json:"purchased_date,omitempty"`
}

type ProjectURLUpdate struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

type ProjectURL struct {
	URLID string `bson:"id" json:"id"`
	Title string `bson:"title" json:"title"`
	URL   string `bson:"url" json:"url"`
}

type Project struct {
	ProjectID   string        `bson:"_id,omitempty" json:"id"`
	Title       string        `bson:"title" json:"title" binding:"required"`
	Description string        `bson:"description,omitempty" json:"description"`
	Status      ProjectStatus `bson:"status,omitempty" json:"status"`
	// Pre-status documents carried a bare completion flag instead. Translated
	// to Status at the repository boundary, never written back.
	LegacyCompleted *bool         `bson:"is_completed,omitempty" json:"-"`
	ParentProjectID string        `bson:"parent_project_id,omitempty" json:"parent_project_id,omitempty"`
	Items           []ProjectItem `bson:"items" json:"items"`
	URLs            []ProjectURL  `bson:"urls" json:"urls"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}
