package impl

import (
	"context"
	"testing"

	"skyelectro/config"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	mockRepo "skyelectro/internal/mocks/repository"
	mockSvc "skyelectro/internal/mocks/service"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceMocks struct {
	orderRepo *mockRepo.MockOrderRepository
	txManager *mockRepo.MockTransactionManager
	publisher *mockSvc.MockEventPublisher
	qrcodeSvc *mockSvc.MockQRCodeService
}

func newOrderService(t *testing.T, cfg *config.Config) (usecase.OrderUsecase, orderServiceMocks) {
	t.Helper()

	mocks := orderServiceMocks{
		orderRepo: mockRepo.NewMockOrderRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		qrcodeSvc: mockSvc.NewMockQRCodeService(t),
	}
	service := NewOrderService(mocks.orderRepo, mocks.txManager, mocks.publisher, mocks.qrcodeSvc, cfg, newTestLogger())

	return service, mocks
}

// expectTransaction wires the transaction mock so the callback runs against a
// factory returning txOrderRepo.
func expectTransaction(ctx context.Context, mocks orderServiceMocks, txOrderRepo *mockRepo.MockOrderRepository) {
	factory := &mockRepo.MockRepositoryFactory{}
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestOrderService_AdvanceStatus_PendingToConfirmed(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	actorID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed, "").
		Return(nil)
	txOrderRepo.EXPECT().
		AppendHistory(ctx, orderID, mock.AnythingOfType("entity.StatusChange")).
		Return(nil)
	expectTransaction(ctx, mocks, txOrderRepo)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := service.AdvanceStatus(ctx, orderID, actorID, "", "payment confirmed")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
	require.Len(t, updated.History, 1)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.History[0].Status)
	assert.Equal(t, actorID, updated.History[0].ActorID)
	assert.Equal(t, "payment confirmed", updated.History[0].Note)
}

func TestOrderService_AdvanceStatus_ShipRequiresTrackingNumber(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPacked}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	updated, err := service.AdvanceStatus(ctx, orderID, uuid.New(), "   ", "")
	assert.Nil(t, updated)
	assert.Equal(t, domainerrors.ErrTrackingNumberRequired, err)
}

func TestOrderService_AdvanceStatus_PackedToShippedWithTracking(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPacked}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusShipped, "TRK-12345").
		Return(nil)
	txOrderRepo.EXPECT().
		AppendHistory(ctx, orderID, mock.AnythingOfType("entity.StatusChange")).
		Return(nil)
	expectTransaction(ctx, mocks, txOrderRepo)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := service.AdvanceStatus(ctx, orderID, uuid.New(), "TRK-12345", "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, updated.Status)
	assert.Equal(t, "TRK-12345", updated.TrackingNumber)
}

func TestOrderService_AdvanceStatus_TerminalStates(t *testing.T) {
	for _, status := range []entity.OrderStatus{
		entity.OrderStatusShipped,
		entity.OrderStatusCancelled,
		entity.OrderStatusReturned,
	} {
		t.Run(string(status), func(t *testing.T) {
			service, mocks := newOrderService(t, &config.Config{})

			ctx := context.Background()
			orderID := uuid.New()

			mocks.orderRepo.EXPECT().
				FindByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: status}, nil)

			updated, err := service.AdvanceStatus(ctx, orderID, uuid.New(), "", "")
			assert.Nil(t, updated)
			assert.Equal(t, domainerrors.ErrOrderStatusFinal, err)
		})
	}
}

func TestOrderService_Cancel_FromConfirmed(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusConfirmed}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusCancelled, "").
		Return(nil)
	txOrderRepo.EXPECT().
		AppendHistory(ctx, orderID, mock.AnythingOfType("entity.StatusChange")).
		Return(nil)
	expectTransaction(ctx, mocks, txOrderRepo)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := service.Cancel(ctx, orderID, uuid.New(), "customer request")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestOrderService_Cancel_TerminalOrder(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusShipped}, nil)

	updated, err := service.Cancel(ctx, orderID, uuid.New(), "")
	assert.Nil(t, updated)
	assert.Equal(t, domainerrors.ErrOrderStatusFinal, err)
}

func TestOrderService_Return_FromPacked(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPacked}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusReturned, "").
		Return(nil)
	txOrderRepo.EXPECT().
		AppendHistory(ctx, orderID, mock.AnythingOfType("entity.StatusChange")).
		Return(nil)
	expectTransaction(ctx, mocks, txOrderRepo)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	updated, err := service.Return(ctx, orderID, uuid.New(), "damaged in transit")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusReturned, updated.Status)
}

func TestOrderService_Transition_PublishFailureDoesNotFail(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(order, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo.EXPECT().
		UpdateStatus(ctx, orderID, entity.OrderStatusConfirmed, "").
		Return(nil)
	txOrderRepo.EXPECT().
		AppendHistory(ctx, orderID, mock.AnythingOfType("entity.StatusChange")).
		Return(nil)
	expectTransaction(ctx, mocks, txOrderRepo)

	mocks.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("queue unavailable"))

	updated, err := service.AdvanceStatus(ctx, orderID, uuid.New(), "", "")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusConfirmed, updated.Status)
}

func TestOrderService_GetOrder_ForbiddenForOtherUser(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}, nil)

	order, err := service.GetOrder(ctx, uuid.New(), false, orderID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrForbidden, err)
}

func TestOrderService_GetOrder_AdminReadsAnyOrder(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()
	stored := &entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusPending}

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(stored, nil)

	order, err := service.GetOrder(ctx, uuid.New(), true, orderID)
	require.NoError(t, err)
	assert.Equal(t, stored, order)
}

func TestOrderService_TrackingQR(t *testing.T) {
	cfg := &config.Config{
		Storefront: &config.StorefrontConfig{TrackingBaseURL: "https://shop.example.com/track/"},
	}
	service, mocks := newOrderService(t, cfg)

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusShipped}, nil)

	expectedPNG := []byte{0x89, 'P', 'N', 'G'}
	mocks.qrcodeSvc.EXPECT().
		GenerateTrackingQR("https://shop.example.com/track/" + orderID.String()).
		Return(expectedPNG, nil)

	png, err := service.TrackingQR(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, expectedPNG, png)
}

func TestOrderService_TrackingQR_Unconfigured(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	orderID := uuid.New()

	mocks.orderRepo.EXPECT().
		FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, UserID: uuid.New(), Status: entity.OrderStatusShipped}, nil)

	png, err := service.TrackingQR(ctx, orderID)
	assert.Nil(t, png)
	assert.Error(t, err)
}

func TestOrderService_ListMyOrders_NormalizesPaging(t *testing.T) {
	service, mocks := newOrderService(t, &config.Config{})

	ctx := context.Background()
	userID := uuid.New()

	mocks.orderRepo.EXPECT().
		List(ctx, repository.ListOrdersQuery{UserID: &userID, Page: 1, Limit: 20}).
		Return([]*entity.Order{}, int64(0), nil)

	page, err := service.ListMyOrders(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
}
