package model

import "time"

type AccountWishItem struct {
	ItemID        string     `bson:"id" json:"id"`
	Name          string     `bson:"name" json:"name" binding:"required"`
	Price         float64    `bson:"price" json:"price"`
	IsPurchased   bool       `bson:"is_purchased" json:"is_purchased"`
	PurchasedDate *time.Time `bson:"purchased_date,omitempty" json:"purchased_date,omitempty"`
}

type AccountWishItemUpdate struct {
	Name          *string    `json:"name,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	IsPurchased   *bool      `json:"is_purchased,omitempty"`
	PurchasedDate *time.Time `json:"purchased_date,omitempty"`
}

// AccountBook is a singleton document, fetched or created on first read.
type AccountBook struct {
	BookID     string            `bson:"_id,omitempty" json:"id"`
	TotalAsset float64           `bson:"total_asset" json:"total_asset"`
	WishItems  []AccountWishItem `bson:"wish_items" json:"wish_items"`
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time         `bson:"updated_at" json:"updated_at"`
}
