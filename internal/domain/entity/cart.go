package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds a user's pending purchases. One cart per user, created lazily on
// the first add and deleted wholesale on clear. Items referencing products
// that have since been deactivated or removed are pruned on read and the
// pruned list is persisted back.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one product line in a cart. Quantity is clamped to [1,10] at
// write time.
type CartItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// CartView is the read model returned to clients: each surviving line carries
// the product's current effective price, and the totals are recomputed from
// live product data on every read.
type CartView struct {
	Items      []CartLineView  `json:"items"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// CartLineView is a priced cart line in the read model.
type CartLineView struct {
	Product      *Product        `json:"product"`
	Quantity     int             `json:"quantity"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	ItemTotal    decimal.Decimal `json:"item_total"`
	AddedAt      time.Time       `json:"added_at"`
}

// EmptyCartView is what a user without a cart sees: zero totals, never an error.
func EmptyCartView() *CartView {
	return &CartView{
		Items:      []CartLineView{},
		TotalItems: 0,
		TotalPrice: decimal.Zero,
	}
}
