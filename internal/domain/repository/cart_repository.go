package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when a user has no cart yet.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository defines the operations for cart persistence.
//
// Reads are not side-effect-free at the usecase level: getCart prunes stale
// product references and persists the pruned list back through ReplaceItems.
type CartRepository interface {
	// FindByUser retrieves the user's cart with its items.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new cart with its initial items.
	Create(ctx context.Context, cart *entity.Cart) error

	// ReplaceItems overwrites the cart's item list wholesale.
	ReplaceItems(ctx context.Context, cartID uuid.UUID, items []entity.CartItem) error

	// DeleteByUser removes the user's cart document entirely.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
