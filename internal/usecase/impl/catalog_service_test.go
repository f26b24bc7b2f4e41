package impl

import (
	"context"
	"testing"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	mockRepo "skyelectro/internal/mocks/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_GetProduct(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(mockProductRepo, mockCategoryRepo, newTestLogger())

	ctx := context.Background()
	product := newActiveProduct(1000, 10)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	view, err := service.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, view.ID)
	assert.True(t, view.CurrentPrice.Equal(decimal.NewFromInt(900)))
}

func TestCatalogService_GetProduct_InactiveLooksMissing(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(mockProductRepo, mockCategoryRepo, newTestLogger())

	ctx := context.Background()
	product := newActiveProduct(1000, 0)
	product.IsActive = false

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	view, err := service.GetProduct(ctx, product.ID)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(mockProductRepo, mockCategoryRepo, newTestLogger())

	ctx := context.Background()
	productID := uuid.New()

	mockProductRepo.EXPECT().
		FindByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	view, err := service.GetProduct(ctx, productID)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_ListProducts_ActiveOnly(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(mockProductRepo, mockCategoryRepo, newTestLogger())

	ctx := context.Background()
	product := newActiveProduct(500, 0)

	mockProductRepo.EXPECT().
		List(ctx, repository.ListProductsQuery{
			Search:     "mouse",
			ActiveOnly: true,
			Page:       1,
			Limit:      20,
		}).
		Return([]*entity.Product{product}, int64(1), nil)

	page, err := service.ListProducts(ctx, usecase.ListProductsInput{Search: "mouse"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, int64(1), page.Total)
	assert.True(t, page.Products[0].CurrentPrice.Equal(decimal.NewFromInt(500)))
}

func TestCatalogService_ListCategories(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	mockCategoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCatalogService(mockProductRepo, mockCategoryRepo, newTestLogger())

	ctx := context.Background()
	stored := []*entity.Category{{ID: uuid.New(), Name: "Accessories", IsActive: true}}

	mockCategoryRepo.EXPECT().
		ListActive(ctx).
		Return(stored, nil)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, stored, categories)
}
