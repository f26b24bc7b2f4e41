package repository

import (
	"context"
	"errors"

	"skyelectro/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindActiveByName retrieves an active category by case-insensitive name
	// match. Bulk import resolves the CSV category column through this.
	FindActiveByName(ctx context.Context, name string) (*entity.Category, error)

	// ListActive returns all active categories.
	ListActive(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error
}
