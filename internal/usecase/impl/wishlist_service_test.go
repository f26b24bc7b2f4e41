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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWishlistService_GetWishlist_NoWishlistReturnsEmptyView(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockWishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrWishlistNotFound)

	view, err := service.GetWishlist(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
}

func TestWishlistService_GetWishlist_PrunesStaleItems(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	wishlistID := uuid.New()

	live := newActiveProduct(2000, 25)
	staleID := uuid.New()

	liveItem := entity.WishlistItem{ProductID: live.ID, AddedAt: time.Now()}
	staleItem := entity.WishlistItem{ProductID: staleID, AddedAt: time.Now()}

	mockWishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Wishlist{ID: wishlistID, UserID: userID, Items: []entity.WishlistItem{liveItem, staleItem}}, nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{live.ID, staleID}).
		Return([]*entity.Product{live}, nil)

	mockWishlistRepo.EXPECT().
		ReplaceItems(ctx, wishlistID, []entity.WishlistItem{liveItem}).
		Return(nil)

	view, err := service.GetWishlist(ctx, userID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.TotalItems)
	// 2000 at 25% off is 1500
	assert.True(t, view.Items[0].CurrentPrice.Equal(decimal.NewFromInt(1500)))
}

func TestWishlistService_AddToWishlist_CreatesWishlistLazily(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(800, 0)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockWishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(nil, repository.ErrWishlistNotFound)

	mockWishlistRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Wishlist")).
		Return(nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	view, err := service.AddToWishlist(ctx, userID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, view.TotalItems)
}

func TestWishlistService_AddToWishlist_Duplicate(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(800, 0)

	mockProductRepo.EXPECT().
		FindByID(ctx, product.ID).
		Return(product, nil)

	mockWishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Wishlist{
			ID:     uuid.New(),
			UserID: userID,
			Items:  []entity.WishlistItem{{ProductID: product.ID}},
		}, nil)

	view, err := service.AddToWishlist(ctx, userID, product.ID)
	assert.Nil(t, view)
	assert.Equal(t, domainerrors.ErrAlreadyInWishlist, err)
}

func TestWishlistService_RemoveFromWishlist_AbsentEntryIsNoop(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	product := newActiveProduct(800, 0)
	item := entity.WishlistItem{ProductID: product.ID, AddedAt: time.Now()}

	mockWishlistRepo.EXPECT().
		FindByUser(ctx, userID).
		Return(&entity.Wishlist{ID: uuid.New(), UserID: userID, Items: []entity.WishlistItem{item}}, nil)

	mockProductRepo.EXPECT().
		FindActiveByIDs(ctx, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	view, err := service.RemoveFromWishlist(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
}

func TestWishlistService_ClearWishlist(t *testing.T) {
	mockWishlistRepo := mockRepo.NewMockWishlistRepository(t)
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := NewWishlistService(mockWishlistRepo, mockProductRepo, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockWishlistRepo.EXPECT().
		DeleteByUser(ctx, userID).
		Return(nil)

	require.NoError(t, service.ClearWishlist(ctx, userID))
}
