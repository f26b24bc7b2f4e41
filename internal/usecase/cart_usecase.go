// Package usecase defines the application-layer interfaces consumed by the
// delivery layer and implemented in usecase/impl.
package usecase

import (
	"context"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the cart operations.
//
// Every read recomputes line prices from live product data and prunes items
// whose product is missing or inactive, persisting the pruned list back.
// Reads are therefore not side-effect-free.
type CartUsecase interface {
	// GetCart returns the user's priced cart view. A user without a cart gets
	// the empty-cart shape with zero totals, never an error.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error)

	// AddToCart adds a product or merges into an existing line. The merged
	// quantity must not exceed the per-line cap of 10.
	AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartView, error)

	// UpdateCartItem overwrites the line's quantity.
	UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartView, error)

	// RemoveFromCart removes the line if present. Removing an absent line is
	// not an error.
	RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.CartView, error)

	// ClearCart deletes the cart wholesale.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
