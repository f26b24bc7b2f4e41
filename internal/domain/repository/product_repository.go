// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ListProductsQuery narrows and pages a product listing.
type ListProductsQuery struct {
	CategoryID *uuid.UUID
	Search     string
	ActiveOnly bool
	Page       int
	Limit      int
}

// ProductBulkUpdate carries the optional fields of a bulk update; nil fields
// are left untouched.
type ProductBulkUpdate struct {
	Price      *decimal.Decimal
	Discount   *int
	Stock      *int
	IsActive   *bool
	IsFeatured *bool
	CategoryID *uuid.UUID
}

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by its unique ID, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindActiveByIDs retrieves the subset of the given IDs that still resolve
	// to active products. Missing or inactive IDs are silently absent from the
	// result; callers use this for cart/wishlist pruning.
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ExistsBySKU reports whether any product (including inactive ones)
	// already carries the given SKU.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// UpdateRating overwrites the product's aggregate rating.
	UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error

	// List returns a page of products and the total match count.
	List(ctx context.Context, query ListProductsQuery) ([]*entity.Product, int64, error)

	// BulkUpdate applies the non-nil fields of updates to all given IDs and
	// returns the number of affected rows.
	BulkUpdate(ctx context.Context, ids []uuid.UUID, updates ProductBulkUpdate) (int64, error)

	// SoftDelete deactivates and soft-deletes the given products, returning
	// the number of affected rows.
	SoftDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}
