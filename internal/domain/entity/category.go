package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products. Bulk import resolves categories by
// case-insensitive name match against active categories only.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
