package impl

import (
	"context"
	"testing"
	"time"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	mockRepo "skyelectro/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_GetCart_NoCartReturnsEmptyView(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	view, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.True(t, view.TotalPrice.IsZero())
}

func TestCartService_GetCart_PrunesStaleItemsAndReprices(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	live := newActiveProduct(1000, 10)
	staleID := uuid.New()

	liveItem := entity.CartItem{ProductID: live.ID, Quantity: 2, AddedAt: time.Now()}
	staleItem := entity.CartItem{ProductID: staleID, Quantity: 1, AddedAt: time.Now()}

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{ID: cartID, UserID: userID, Items: []entity.CartItem{liveItem, staleItem}}, nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{live.ID, staleID}).
		Return([]*entity.Product{live}, nil)

	mockCartRepo.EXPECT().
		ReplaceItems(ctx, cartID, []entity.CartItem{liveItem}).
		Return(nil)

	view, err := service.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, live.ID, view.Items[0].Product.ID)
	assert.Equal(t, 2, view.TotalItems)
	// 1000 at 10% off is 900 per unit
	assert.True(t, view.Items[0].CurrentPrice.Equal(decimal.NewFromInt(900)))
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(1800)))
}

func TestCartService_AddToCart_CreatesCartLazily(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(500, 0)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrCartNotFound)

	mockCartRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	view, err := service.AddToCart(ctx, userID, product.ID, 3)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 3, view.TotalItems)
	assert.True(t, view.TotalPrice.Equal(decimal.NewFromInt(1500)))
}

func TestCartService_AddToCart_MergesUpToQuantityLimit(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()
	product := newActiveProduct(100, 0)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{
			ID:     cartID,
			UserID: userID,
			Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 9}},
		}, nil)

	mockCartRepo.EXPECT().
		ReplaceItems(ctx, cartID, mock.AnythingOfType("[]entity.CartItem")).
		Return(nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	// 9 + 1 lands exactly on the limit of 10
	view, err := service.AddToCart(ctx, userID, product.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, view.TotalItems)
}

func TestCartService_AddToCart_RejectsMergeBeyondQuantityLimit(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(100, 0)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Items:  []entity.CartItem{{ProductID: product.ID, Quantity: 9}},
		}, nil)

	view, err := service.AddToCart(ctx, userID, product.ID, 2)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrQuantityLimitExceeded, err)
}

func TestCartService_AddToCart_InactiveProduct(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(100, 0)
	product.IsActive = false

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	view, err := service.AddToCart(ctx, userID, product.ID, 1)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCartService_UpdateCartItem_MissingLine(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(100, 0)

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID, Items: []entity.CartItem{}}, nil)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	view, err := service.UpdateCartItem(ctx, userID, product.ID, 5)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrCartItemNotFound, err)
}

func TestCartService_RemoveFromCart_AbsentLineIsNoop(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(100, 0)
	item := entity.CartItem{ProductID: product.ID, Quantity: 1, AddedAt: time.Now()}

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Cart{ID: uuid.New(), UserID: userID, Items: []entity.CartItem{item}}, nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	// No ReplaceItems expectation: removing an absent line writes nothing
	view, err := service.RemoveFromCart(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestCartService_ClearCart(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(nil)

	require.NoError(t, service.ClearCart(ctx, userID))
}

func TestCartService_GetCart_RepositoryError(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(mockCartRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, errors.New("db error"))

	view, err := service.GetCart(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, view)
}
