package usecase

import (
	"context"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// WishlistUsecase defines the wishlist operations. Reads prune stale product
// references exactly like CartUsecase.GetCart.
type WishlistUsecase interface {
	// GetWishlist returns the user's wishlist view, empty shape if none exists.
	GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.WishlistView, error)

	// AddToWishlist adds a product. Adding a product that is already present
	// fails with a validation error; entries are presence-only.
	AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistView, error)

	// RemoveFromWishlist removes the entry if present; absent entries are not
	// an error.
	RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistView, error)

	// ClearWishlist deletes the wishlist wholesale.
	ClearWishlist(ctx context.Context, userID uuid.UUID) error
}
