package usecase

import (
	"context"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListProductsInput filters and pages the public product listing.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	Search     string
	Page       int
	Limit      int
}

// ProductView decorates a product with its current effective price.
type ProductView struct {
	*entity.Product
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Products []*ProductView `json:"products"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	Limit    int            `json:"limit"`
}

// CatalogUsecase defines read access to the product catalog.
type CatalogUsecase interface {
	// GetProduct returns an active product with its effective price.
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductView, error)

	// ListProducts returns a page of active products.
	ListProducts(ctx context.Context, input ListProductsInput) (*ProductPage, error)

	// ListCategories returns all active categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
