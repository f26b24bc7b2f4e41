package impl

import (
	"context"
	"strings"
	"testing"

	"skyelectro/config"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/infra/bulkcsv"
	mockRepo "skyelectro/internal/mocks/repository"
	mockSvc "skyelectro/internal/mocks/service"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bulkServiceMocks struct {
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	archive      *mockSvc.MockArchiveStorage
}

func newBulkImportService(t *testing.T, cfg *config.Config) (usecase.BulkImportUsecase, bulkServiceMocks) {
	t.Helper()

	mocks := bulkServiceMocks{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		archive:      mockSvc.NewMockArchiveStorage(t),
	}
	service := NewBulkImportService(mocks.productRepo, mocks.categoryRepo, mocks.archive, cfg, newTestLogger())

	return service, mocks
}

// importCSV builds a file from the canonical header plus the given data rows.
func importCSV(rows ...string) []byte {
	lines := append([]string{strings.Join(bulkcsv.Header, ",")}, rows...)

	return []byte(strings.Join(lines, "\n") + "\n")
}

func TestBulkImportService_ImportProducts_MixedRows(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Accessories", IsActive: true}

	data := importCSV(
		// row 2: valid, explicit SKU
		"Wireless Mouse,Silent mouse,1299,1499,10,250,Accessories,Logitech,Connectivity:2.4 GHz,Silent clicks,mouse|wireless,https://cdn.example.com/m220.jpg,99x60x39 mm,ACC-LOG-WIR-042,true,false",
		// row 3: missing name, bad price, bad discount
		",broken,free,,200,5,Accessories,Logitech,,,,,,,true,false",
		// row 4: missing description only
		"Wired Keyboard,,899,,,,Accessories,Logitech,,,,,,ACC-LOG-KEY-017,true,false",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	mocks.categoryRepo.EXPECT().
		FindActiveByName(ctx, "Accessories").
		Return(category, nil)

	mocks.productRepo.EXPECT().
		ExistsBySKU(ctx, "ACC-LOG-WIR-042").
		Return(false, nil)

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, "Wireless Mouse", product.Name)
			assert.Equal(t, "wireless-mouse", product.Slug)
			assert.Equal(t, category.ID, product.CategoryID)
			assert.True(t, product.Price.Equal(decimal.NewFromInt(1299)))
			assert.Equal(t, 10, product.Discount)
			assert.Equal(t, 250, product.Stock)
			assert.Equal(t, []string{"mouse", "wireless"}, product.Tags)
			assert.True(t, product.IsActive)
			assert.False(t, product.IsFeatured)
		}).
		Return(nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "products.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
	assert.Equal(t, 2, summary.Failed)
	require.Len(t, summary.Errors, 2)
	assert.Equal(t, 3, summary.Errors[0].Row)
	assert.Contains(t, summary.Errors[0].Reasons, "name is required")
	assert.Contains(t, summary.Errors[0].Reasons, "price must be a positive number")
	assert.Contains(t, summary.Errors[0].Reasons, "discount must be a whole number between 0 and 100")
	assert.Equal(t, 4, summary.Errors[1].Row)
	assert.Equal(t, "Wired Keyboard", summary.Errors[1].Name)
	assert.Equal(t, []string{"description is required"}, summary.Errors[1].Reasons)
}

func TestBulkImportService_ImportProducts_DuplicateSKU(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Accessories", IsActive: true}

	data := importCSV(
		"Wireless Mouse,Silent mouse,1299,,,,Accessories,Logitech,,,,,,ACC-LOG-WIR-042,,",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	mocks.categoryRepo.EXPECT().
		FindActiveByName(ctx, "Accessories").
		Return(category, nil)

	mocks.productRepo.EXPECT().
		ExistsBySKU(ctx, "ACC-LOG-WIR-042").
		Return(true, nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "products.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Successful)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, []string{"SKU already exists: ACC-LOG-WIR-042"}, summary.Errors[0].Reasons)
}

func TestBulkImportService_ImportProducts_DerivesSKU(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Accessories", IsActive: true}

	data := importCSV(
		"Wireless Mouse,Silent mouse,1299,,,,Accessories,Logitech,,,,,,,,",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	mocks.categoryRepo.EXPECT().
		FindActiveByName(ctx, "Accessories").
		Return(category, nil)

	mocks.productRepo.EXPECT().
		ExistsBySKU(ctx, mock.MatchedBy(func(sku string) bool {
			return strings.HasPrefix(sku, "ACC-LOG-WIR-")
		})).
		Return(false, nil)

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "products.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
}

func TestBulkImportService_ImportProducts_UnknownCategory(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()

	data := importCSV(
		"Wireless Mouse,Silent mouse,1299,,,,Nonexistent,Logitech,,,,,,ACC-LOG-WIR-042,,",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	mocks.categoryRepo.EXPECT().
		FindActiveByName(ctx, "Nonexistent").
		Return(nil, repository.ErrCategoryNotFound)

	summary, err := service.ImportProducts(ctx, uuid.New(), "products.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, []string{"unknown category: Nonexistent"}, summary.Errors[0].Reasons)
}

func TestBulkImportService_ImportProducts_HeaderMismatch(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	data := []byte("foo,bar\n1,2\n")

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "wrong.csv", data)
	assert.Nil(t, summary)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CSV", appErr.ErrorCode())
}

func TestBulkImportService_ImportProducts_RowLimit(t *testing.T) {
	cfg := &config.Config{BulkImport: &config.BulkImportConfig{MaxRows: 1}}
	service, mocks := newBulkImportService(t, cfg)

	ctx := context.Background()
	data := importCSV(
		"A,,1,,,,C,B,,,,,,SKU-1,,",
		"B,,1,,,,C,B,,,,,,SKU-2,,",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "big.csv", data)
	assert.Nil(t, summary)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_CSV", appErr.ErrorCode())
}

func TestBulkImportService_ImportProducts_ArchiveFailureDoesNotBlock(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Accessories", IsActive: true}

	data := importCSV(
		"Wireless Mouse,Silent mouse,1299,,,,Accessories,Logitech,,,,,,ACC-LOG-WIR-042,,",
	)

	mocks.archive.EXPECT().
		Store(ctx, mock.AnythingOfType("string"), "text/csv", data).
		Return(assert.AnError)

	mocks.categoryRepo.EXPECT().
		FindActiveByName(ctx, "Accessories").
		Return(category, nil)

	mocks.productRepo.EXPECT().
		ExistsBySKU(ctx, "ACC-LOG-WIR-042").
		Return(false, nil)

	mocks.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	summary, err := service.ImportProducts(ctx, uuid.New(), "products.csv", data)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Successful)
}

func TestBulkImportService_Template(t *testing.T) {
	service, _ := newBulkImportService(t, &config.Config{})

	template := string(service.Template())
	assert.True(t, strings.HasPrefix(template, strings.Join(bulkcsv.Header, ",")))
}

func TestBulkImportService_BulkUpdate(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	price := decimal.NewFromInt(999)
	updates := repository.ProductBulkUpdate{Price: &price}

	mocks.productRepo.EXPECT().
		BulkUpdate(ctx, ids, updates).
		Return(int64(2), nil)

	affected, err := service.BulkUpdate(ctx, usecase.BulkUpdateInput{ProductIDs: ids, Updates: updates})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
}

func TestBulkImportService_BulkUpdate_EmptyIDs(t *testing.T) {
	service, _ := newBulkImportService(t, &config.Config{})

	affected, err := service.BulkUpdate(context.Background(), usecase.BulkUpdateInput{})
	assert.Zero(t, affected)
	assert.Error(t, err)
}

func TestBulkImportService_BulkSoftDelete(t *testing.T) {
	service, mocks := newBulkImportService(t, &config.Config{})

	ctx := context.Background()
	ids := []uuid.UUID{uuid.New()}

	mocks.productRepo.EXPECT().
		SoftDelete(ctx, ids).
		Return(int64(1), nil)

	affected, err := service.BulkSoftDelete(ctx, ids)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestBulkImportService_BulkSoftDelete_EmptyIDs(t *testing.T) {
	service, _ := newBulkImportService(t, &config.Config{})

	affected, err := service.BulkSoftDelete(context.Background(), nil)
	assert.Zero(t, affected)
	assert.Error(t, err)
}
