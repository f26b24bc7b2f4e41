package usecase

import (
	"context"

	"skyelectro/internal/domain/repository"

	"github.com/google/uuid"
)

// RowError records why one CSV data row was rejected. Row numbers are
// 1-based over the whole file, so the first data row is row 2 (the header is
// row 1).
type RowError struct {
	Row     int      `json:"row"`
	Name    string   `json:"name"`
	Reasons []string `json:"reasons"`
}

// ImportSummary is the terminal outcome of a bulk import. Partial success is
// a valid outcome, not an error.
type ImportSummary struct {
	ImportID   uuid.UUID  `json:"import_id"`
	Successful int        `json:"successful"`
	Failed     int        `json:"failed"`
	Errors     []RowError `json:"errors"`
}

// BulkUpdateInput applies the same field changes to many products at once.
type BulkUpdateInput struct {
	ProductIDs []uuid.UUID
	Updates    repository.ProductBulkUpdate
}

// BulkImportUsecase defines the bulk product operations.
//
// Import processing is row-independent: each row is validated in isolation
// and one bad row never aborts the batch.
type BulkImportUsecase interface {
	// Template returns the CSV template (header plus one sample row).
	Template() []byte

	// ImportProducts parses and imports an uploaded CSV, archiving the raw
	// upload, and returns the per-row summary.
	ImportProducts(ctx context.Context, actorID uuid.UUID, filename string, data []byte) (*ImportSummary, error)

	// BulkUpdate applies updates to the given products and returns the
	// affected row count.
	BulkUpdate(ctx context.Context, input BulkUpdateInput) (int64, error)

	// BulkSoftDelete soft-deletes the given products and returns the
	// affected row count.
	BulkSoftDelete(ctx context.Context, productIDs []uuid.UUID) (int64, error)
}
