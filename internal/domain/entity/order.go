package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is created at checkout with an immutable snapshot of its line items.
// Only Status, TrackingNumber and the status history change afterwards.
type Order struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	Items          []OrderItem    `json:"items"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	Status         OrderStatus    `json:"status"`
	TrackingNumber string         `json:"tracking_number,omitempty"`
	ShippingName   string         `json:"shipping_name"`
	ShippingPhone  string         `json:"shipping_phone"`
	ShippingLine   string         `json:"shipping_line"`
	History        []StatusChange `json:"history"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// OrderItem is a purchase-time snapshot of a product line. It deliberately
// carries the name and price as they were at checkout, not a live product
// reference.
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// StatusChange is one entry in the append-only order status history.
// History entries are never rewritten, only appended.
type StatusChange struct {
	Status  OrderStatus `json:"status"`
	At      time.Time   `json:"at"`
	ActorID uuid.UUID   `json:"actor_id"`
	Note    string      `json:"note,omitempty"`
}
