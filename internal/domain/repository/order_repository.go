package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ListOrdersQuery narrows and pages an order listing.
type ListOrdersQuery struct {
	UserID *uuid.UUID
	Status *entity.OrderStatus
	Page   int
	Limit  int
}

// OrderRepository defines the operations for order persistence.
//
// Line items are immutable after creation; only the status, tracking number
// and the append-only history change.
type OrderRepository interface {
	// FindByID retrieves an order with its items and status history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns a page of orders and the total match count.
	List(ctx context.Context, query ListOrdersQuery) ([]*entity.Order, int64, error)

	// Create persists a new order with its item snapshots.
	Create(ctx context.Context, order *entity.Order) error

	// UpdateStatus overwrites the order's status and, when non-empty, the
	// tracking number.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, trackingNumber string) error

	// AppendHistory appends one entry to the order's status history.
	// History entries are never updated or deleted.
	AppendHistory(ctx context.Context, orderID uuid.UUID, change entity.StatusChange) error
}
