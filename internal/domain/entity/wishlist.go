package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wishlist holds a user's saved products. One wishlist per user; entries are
// presence-only (no quantity). Stale product references are pruned on read,
// same as Cart.
type Wishlist struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Items     []WishlistItem `json:"items"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// WishlistItem is one saved product reference.
type WishlistItem struct {
	ProductID uuid.UUID `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// WishlistView is the read model: surviving entries with the product's
// current effective price attached.
type WishlistView struct {
	Items      []WishlistLineView `json:"items"`
	TotalItems int                `json:"total_items"`
}

// WishlistLineView is one priced wishlist entry in the read model.
type WishlistLineView struct {
	Product      *Product        `json:"product"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	AddedAt      time.Time       `json:"added_at"`
}
