package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"skyelectro/config"
	deliverycontext "skyelectro/internal/delivery/context"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/domain/service"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type orderService struct {
	orderRepo repository.OrderRepository
	txManager repository.TransactionManager
	publisher service.EventPublisher
	qrcodeSvc service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewOrderService creates a new order service instance.
func NewOrderService(
	orderRepo repository.OrderRepository,
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	qrcodeSvc service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orderRepo: orderRepo,
		txManager: txManager,
		publisher: publisher,
		qrcodeSvc: qrcodeSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// GetOrder returns an order; non-admin callers may only read their own.
func (s *orderService) GetOrder(ctx context.Context, callerID uuid.UUID, isAdmin bool, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && order.UserID != callerID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListMyOrders returns a page of the caller's orders, newest first.
func (s *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID, page, limit int) (*usecase.OrderPage, error) {
	page, limit = normalizePage(page, limit)

	orders, total, err := s.orderRepo.List(ctx, repository.ListOrdersQuery{
		UserID: &userID,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// ListOrders returns a page of all orders for the admin dashboard.
func (s *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) (*usecase.OrderPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	orders, total, err := s.orderRepo.List(ctx, repository.ListOrdersQuery{
		Status: input.Status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// AdvanceStatus moves the order along the linear path. The tracking number is
// required exactly when the successor is shipped; the state machine itself
// knows nothing about tracking numbers.
func (s *orderService) AdvanceStatus(ctx context.Context, orderID, actorID uuid.UUID, trackingNumber, note string) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	next, ok := entity.NextStatus(order.Status)
	if !ok {
		return nil, domainerrors.ErrOrderStatusFinal
	}

	trackingNumber = strings.TrimSpace(trackingNumber)
	if next == entity.OrderStatusShipped && trackingNumber == "" {
		return nil, domainerrors.ErrTrackingNumberRequired
	}
	if next != entity.OrderStatusShipped {
		trackingNumber = ""
	}

	return s.transition(ctx, order, next, actorID, trackingNumber, note)
}

// Cancel moves a non-terminal order to cancelled. This administrative action
// is intentionally unconstrained beyond the terminal check.
func (s *orderService) Cancel(ctx context.Context, orderID, actorID uuid.UUID, note string) (*entity.Order, error) {
	return s.exit(ctx, orderID, actorID, entity.OrderStatusCancelled, note)
}

// Return moves a non-terminal order to returned.
func (s *orderService) Return(ctx context.Context, orderID, actorID uuid.UUID, note string) (*entity.Order, error) {
	return s.exit(ctx, orderID, actorID, entity.OrderStatusReturned, note)
}

func (s *orderService) exit(ctx context.Context, orderID, actorID uuid.UUID, target entity.OrderStatus, note string) (*entity.Order, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrOrderStatusFinal
	}

	return s.transition(ctx, order, target, actorID, "", note)
}

// transition persists the status change and its history entry atomically,
// then publishes the order event. Publishing is best-effort: a queue outage
// must not roll back an already-committed transition.
func (s *orderService) transition(ctx context.Context, order *entity.Order, target entity.OrderStatus, actorID uuid.UUID, trackingNumber, note string) (*entity.Order, error) {
	previous := order.Status
	change := entity.StatusChange{
		Status:  target,
		At:      time.Now(),
		ActorID: actorID,
		Note:    note,
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		txOrderRepo := factory.NewOrderRepository()
		if err := txOrderRepo.UpdateStatus(ctx, order.ID, target, trackingNumber); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}
		if err := txOrderRepo.AppendHistory(ctx, order.ID, change); err != nil {
			return errors.Wrap(err, "failed to append order history")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = target
	if trackingNumber != "" {
		order.TrackingNumber = trackingNumber
	}
	order.History = append(order.History, change)

	event := &service.OrderEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		OrderID:        order.ID.String(),
		UserID:         order.UserID.String(),
		Status:         string(target),
		PreviousStatus: string(previous),
		TrackingNumber: order.TrackingNumber,
		Note:           note,
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.String("status", string(target)),
			slog.Any("error", err),
		)
	}

	return order, nil
}

// TrackingQR renders the packing-slip QR code linking to the public tracking page.
func (s *orderService) TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	order, err := s.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	baseURL := ""
	if s.cfg.Storefront != nil {
		baseURL = strings.TrimRight(s.cfg.Storefront.TrackingBaseURL, "/")
	}
	if baseURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tracking base URL is not configured")
	}

	png, err := s.qrcodeSvc.GenerateTrackingQR(baseURL + "/" + order.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

func (s *orderService) findOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return page, limit
}
