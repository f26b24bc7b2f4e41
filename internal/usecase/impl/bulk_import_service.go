package impl

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"
	"time"
	"unicode"

	"skyelectro/config"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/domain/service"
	"skyelectro/internal/infra/bulkcsv"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type bulkImportService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	archive      service.ArchiveStorage
	cfg          *config.Config
	logger       *slog.Logger
}

// NewBulkImportService creates a new bulk import service instance.
func NewBulkImportService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	archive service.ArchiveStorage,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BulkImportUsecase {
	return &bulkImportService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		archive:      archive,
		cfg:          cfg,
		logger:       logger,
	}
}

// Template returns the downloadable CSV template.
func (s *bulkImportService) Template() []byte {
	return bulkcsv.Template()
}

// ImportProducts archives the upload, parses it, and imports each data row
// independently. A row failure is recorded in the summary, never returned as
// an error; only a structurally unusable file fails the call.
func (s *bulkImportService) ImportProducts(ctx context.Context, actorID uuid.UUID, filename string, data []byte) (*usecase.ImportSummary, error) {
	importID := uuid.New()

	s.archiveUpload(ctx, importID, filename, data)

	records, badRows, err := bulkcsv.Parse(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, bulkcsv.ErrHeaderMismatch) {
			return nil, domainerrors.ErrInvalidCSV.WithDetails(err.Error())
		}

		return nil, errors.Wrap(err, "failed to parse import csv")
	}

	if max := s.maxRows(); max > 0 && len(records)+len(badRows) > max {
		return nil, domainerrors.ErrInvalidCSV.WithDetails("file exceeds the maximum of " + strconv.Itoa(max) + " data rows")
	}

	summary := &usecase.ImportSummary{ImportID: importID, Errors: []usecase.RowError{}}
	for _, bad := range badRows {
		summary.Failed++
		summary.Errors = append(summary.Errors, usecase.RowError{
			Row:     bad.Row,
			Reasons: []string{bad.Reason},
		})
	}

	for _, record := range records {
		if reasons := s.importRow(ctx, record); len(reasons) > 0 {
			summary.Failed++
			summary.Errors = append(summary.Errors, usecase.RowError{
				Row:     record.Row,
				Name:    record.Name,
				Reasons: reasons,
			})

			continue
		}
		summary.Successful++
	}

	s.logger.Info("bulk import finished",
		slog.String("import_id", importID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int("successful", summary.Successful),
		slog.Int("failed", summary.Failed),
	)

	return summary, nil
}

// importRow validates one record fully, so the caller gets every reason at
// once, then persists it. Returns nil when the row imported.
func (s *bulkImportService) importRow(ctx context.Context, record bulkcsv.Record) []string {
	var reasons []string

	if record.Name == "" {
		reasons = append(reasons, "name is required")
	}
	if record.Description == "" {
		reasons = append(reasons, "description is required")
	}

	price, err := parsePositiveDecimal(record.Price)
	if err != nil {
		reasons = append(reasons, "price must be a positive number")
	}

	var originalPrice *decimal.Decimal
	if record.OriginalPrice != "" {
		parsed, err := parsePositiveDecimal(record.OriginalPrice)
		if err != nil {
			reasons = append(reasons, "original_price must be a positive number")
		} else {
			originalPrice = &parsed
		}
	}

	discount := 0
	if record.Discount != "" {
		discount, err = strconv.Atoi(record.Discount)
		if err != nil || discount < 0 || discount > 100 {
			reasons = append(reasons, "discount must be a whole number between 0 and 100")
			discount = 0
		}
	}

	stock := 0
	if record.Stock != "" {
		stock, err = strconv.Atoi(record.Stock)
		if err != nil || stock < 0 {
			reasons = append(reasons, "stock must be a non-negative whole number")
			stock = 0
		}
	}

	var category *entity.Category
	if record.Category == "" {
		reasons = append(reasons, "category is required")
	} else {
		category, err = s.categoryRepo.FindActiveByName(ctx, record.Category)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				reasons = append(reasons, "unknown category: "+record.Category)
			} else {
				reasons = append(reasons, "failed to resolve category")
			}
		}
	}

	isActive := true
	if record.IsActive != "" {
		isActive, err = strconv.ParseBool(record.IsActive)
		if err != nil {
			reasons = append(reasons, "is_active must be true or false")
		}
	}

	isFeatured := false
	if record.IsFeatured != "" {
		isFeatured, err = strconv.ParseBool(record.IsFeatured)
		if err != nil {
			reasons = append(reasons, "is_featured must be true or false")
		}
	}

	if len(reasons) > 0 {
		return reasons
	}

	sku := record.SKU
	if sku == "" {
		sku = deriveSKU(category.Name, record.Brand, record.Name)
	}
	exists, err := s.productRepo.ExistsBySKU(ctx, sku)
	if err != nil {
		return []string{"failed to check SKU uniqueness"}
	}
	if exists {
		return []string{"SKU already exists: " + sku}
	}

	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New(),
		Name:           record.Name,
		Slug:           slugify(record.Name),
		Description:    record.Description,
		Price:          price,
		OriginalPrice:  originalPrice,
		Discount:       discount,
		CategoryID:     category.ID,
		Brand:          record.Brand,
		SKU:            sku,
		Images:         bulkcsv.ParseList(record.Images),
		Specifications: bulkcsv.ParseSpecifications(record.Specifications),
		Features:       bulkcsv.ParseList(record.Features),
		Tags:           bulkcsv.ParseList(record.Tags),
		Dimensions:     record.Dimensions,
		Stock:          stock,
		IsActive:       isActive,
		IsFeatured:     isFeatured,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create imported product",
			slog.Int("row", record.Row),
			slog.Any("error", err),
		)

		return []string{"failed to save product"}
	}

	return nil
}

// BulkUpdate applies the same field changes to many products at once.
func (s *bulkImportService) BulkUpdate(ctx context.Context, input usecase.BulkUpdateInput) (int64, error) {
	if len(input.ProductIDs) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("product_ids must not be empty")
	}

	affected, err := s.productRepo.BulkUpdate(ctx, input.ProductIDs, input.Updates)
	if err != nil {
		return 0, errors.Wrap(err, "failed to bulk update products")
	}

	return affected, nil
}

// BulkSoftDelete deactivates and soft-deletes the given products.
func (s *bulkImportService) BulkSoftDelete(ctx context.Context, productIDs []uuid.UUID) (int64, error) {
	if len(productIDs) == 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails("product_ids must not be empty")
	}

	affected, err := s.productRepo.SoftDelete(ctx, productIDs)
	if err != nil {
		return 0, errors.Wrap(err, "failed to bulk delete products")
	}

	return affected, nil
}

// archiveUpload keeps the raw file for audit. Archiving failures are logged
// and never block the import.
func (s *bulkImportService) archiveUpload(ctx context.Context, importID uuid.UUID, filename string, data []byte) {
	if s.archive == nil {
		return
	}

	key := "imports/" + importID.String() + "/" + filename
	if err := s.archive.Store(ctx, key, "text/csv", data); err != nil {
		s.logger.Warn("failed to archive bulk import upload",
			slog.String("import_id", importID.String()),
			slog.Any("error", err),
		)
	}
}

func (s *bulkImportService) maxRows() int {
	if s.cfg.BulkImport == nil {
		return 0
	}

	return s.cfg.BulkImport.MaxRows
}

// deriveSKU builds CAT-BRA-NAM-NNN from the first three letters of the
// category, brand and name plus a random three digit suffix. Collisions fail
// the row instead of retrying, so a stuck import surfaces quickly.
func deriveSKU(category, brand, name string) string {
	return skuPrefix(category) + "-" + skuPrefix(brand) + "-" + skuPrefix(name) + "-" +
		strconv.Itoa(100+rand.Intn(900))
}

func skuPrefix(s string) string {
	var b strings.Builder
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
		if b.Len() >= 3 {
			break
		}
	}
	if b.Len() == 0 {
		return "XXX"
	}

	return b.String()
}

func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

func parsePositiveDecimal(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, errors.New("not positive")
	}

	return value, nil
}
