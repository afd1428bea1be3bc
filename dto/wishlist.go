package dto

import (
	"main/model"
	"time"
)

type WishlistResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWishlistResponse(wish *model.Wishlist) WishlistResponse {
	return WishlistResponse{
		ID:          wish.WishlistID,
		Title:       wish.Title,
		Description: wish.Description,
		IsCompleted: wish.IsCompleted,
		CreatedAt:   wish.CreatedAt,
		UpdatedAt:   wish.UpdatedAt,
	}
}

func ToWishlistResponses(wishes []*model.Wishlist) []WishlistResponse {
	responses := make([]WishlistResponse, len(wishes))
	for i, wish := range wishes {
		responses[i] = ToWishlistResponse(wish)
	}
	return responses
}
