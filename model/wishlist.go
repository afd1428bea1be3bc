package model

import "time"

// WishlistUpdate carries the fields a PATCH may change.
type WishlistUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
}

type Wishlist struct {
	WishlistID  string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title" binding:"required"`
	Description string    `bson:"description,omitempty" json:"description"`
	IsCompleted bool      `bson:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
