package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWishlistNotFound is returned when a user has no wishlist yet.
var ErrWishlistNotFound = errors.New("wishlist not found")

// WishlistRepository defines the operations for wishlist persistence.
// Same read-then-reconcile contract as CartRepository.
type WishlistRepository interface {
	// FindByUser retrieves the user's wishlist with its items.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error)

	// Create persists a new wishlist with its initial items.
	Create(ctx context.Context, wishlist *entity.Wishlist) error

	// ReplaceItems overwrites the wishlist's item list wholesale.
	ReplaceItems(ctx context.Context, wishlistID uuid.UUID, items []entity.WishlistItem) error

	// DeleteByUser removes the user's wishlist entirely.
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}
