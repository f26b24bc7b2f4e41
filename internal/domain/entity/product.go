// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Prices are whole currency units; Discount is
// always interpreted as a percentage off Price, never off OriginalPrice.
type Product struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Slug           string           `json:"slug"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	OriginalPrice  *decimal.Decimal `json:"original_price,omitempty"`
	Discount       int              `json:"discount"` // 0-100 integer percent
	CategoryID     uuid.UUID        `json:"category_id"`
	Brand          string           `json:"brand"`
	SKU            string           `json:"sku"`
	Images         []string         `json:"images"`
	Specifications []Specification  `json:"specifications"`
	Features       []string         `json:"features"`
	Tags           []string         `json:"tags"`
	Dimensions     string           `json:"dimensions,omitempty"`
	Stock          int              `json:"stock"`
	Rating         RatingSummary    `json:"rating"`
	IsActive       bool             `json:"is_active"`
	IsFeatured     bool             `json:"is_featured"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Specification is a single label/value pair describing a product attribute.
type Specification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RatingSummary is the aggregate review score shown on a product.
// It is recomputed from approved, active reviews whenever one changes.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}
