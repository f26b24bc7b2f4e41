package usecase

import (
	"context"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// ListOrdersInput filters and pages the administrative order listing.
type ListOrdersInput struct {
	Status *entity.OrderStatus
	Page   int
	Limit  int
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Orders []*entity.Order `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// OrderUsecase defines the order lifecycle operations.
//
// The forward path is strictly linear (pending, confirmed, packed, shipped);
// cancel and return are separate administrative actions that are valid from
// any non-terminal state and never produced by AdvanceStatus. Every
// transition appends to the order's append-only status history and publishes
// an order event.
type OrderUsecase interface {
	// GetOrder returns an order. Non-admin callers can only read their own.
	GetOrder(ctx context.Context, callerID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error)

	// ListMyOrders returns a page of the caller's orders, newest first.
	ListMyOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*OrderPage, error)

	// ListOrders returns a page of all orders (admin).
	ListOrders(ctx context.Context, input ListOrdersInput) (*OrderPage, error)

	// AdvanceStatus moves the order to its single next status. Terminal
	// orders (shipped, cancelled, returned) cannot advance. When the
	// successor is shipped, a non-empty tracking number is required; that is
	// a validation precondition checked here at the boundary, not a rule of
	// the state machine itself.
	AdvanceStatus(ctx context.Context, orderID, actorID uuid.UUID, trackingNumber, note string) (*entity.Order, error)

	// Cancel moves a non-terminal order to cancelled.
	Cancel(ctx context.Context, orderID, actorID uuid.UUID, note string) (*entity.Order, error)

	// Return moves a non-terminal order to returned.
	Return(ctx context.Context, orderID, actorID uuid.UUID, note string) (*entity.Order, error)

	// TrackingQR renders the packing-slip QR code for an order's public
	// tracking page.
	TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error)
}
