package dto

import (
	"main/model"
	"time"
)

type AccountBookResponse struct {
	ID         string                  `json:"id"`
	TotalAsset float64                 `json:"total_asset"`
	WishItems  []model.AccountWishItem `json:"wish_items"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

func ToAccountBookResponse(book *model.AccountBook) AccountBookResponse {
	items := book.WishItems
	if items == nil {
		items = []model.AccountWishItem{}
	}
	return AccountBookResponse{
		ID:         book.BookID,
		TotalAsset: book.TotalAsset,
		WishItems:  items,
		CreatedAt:  book.CreatedAt,
		UpdatedAt:  book.UpdatedAt,
	}
}
