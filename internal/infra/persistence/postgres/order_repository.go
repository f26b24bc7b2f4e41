package postgres

import (
	"context"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// FindByID retrieves an order with its items and status history.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List returns a page of orders and the total match count, newest first.
func (repo *orderRepository) List(ctx context.Context, query repository.ListOrdersQuery) ([]*entity.Order, int64, error) {
	db := repo.db.WithContext(ctx).Model(&model.OrderModel{})

	if query.UserID != nil {
		db = db.Where("user_id = ?", *query.UserID)
	}
	if query.Status != nil {
		db = db.Where("status = ?", string(*query.Status))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := db.
		Preload("Items").
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// Create persists a new order with its item snapshots.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// UpdateStatus overwrites the order's status and, when non-empty, the
// tracking number.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, trackingNumber string) error {
	fields := map[string]any{"status": string(status)}
	if trackingNumber != "" {
		fields["tracking_number"] = trackingNumber
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AppendHistory appends one entry to the order's status history.
func (repo *orderRepository) AppendHistory(ctx context.Context, orderID uuid.UUID, change entity.StatusChange) error {
	historyM := model.OrderStatusHistoryModel{
		OrderID:   orderID,
		Status:    string(change.Status),
		ActorID:   change.ActorID,
		Note:      change.Note,
		ChangedAt: change.At,
	}

	if err := repo.db.WithContext(ctx).Create(&historyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return errors.Wrap(err, "failed to append order history")
	}

	return nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: itemM.ProductID,
			Name:      itemM.Name,
			Price:     itemM.Price,
			Quantity:  itemM.Quantity,
		})
	}

	history := make([]entity.StatusChange, 0, len(data.History))
	for _, historyM := range data.History {
		history = append(history, entity.StatusChange{
			Status:  entity.OrderStatus(historyM.Status),
			At:      historyM.ChangedAt,
			ActorID: historyM.ActorID,
			Note:    historyM.Note,
		})
	}

	return &entity.Order{
		ID:             data.ID,
		UserID:         data.UserID,
		Items:          items,
		TotalPrice:     data.TotalPrice,
		Status:         entity.OrderStatus(data.Status),
		TrackingNumber: data.TrackingNumber,
		ShippingName:   data.ShippingName,
		ShippingPhone:  data.ShippingPhone,
		ShippingLine:   data.ShippingLine,
		History:        history,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	history := make([]model.OrderStatusHistoryModel, 0, len(data.History))
	for _, change := range data.History {
		history = append(history, model.OrderStatusHistoryModel{
			Status:    string(change.Status),
			ActorID:   change.ActorID,
			Note:      change.Note,
			ChangedAt: change.At,
		})
	}

	return &model.OrderModel{
		ID:             data.ID,
		UserID:         data.UserID,
		TotalPrice:     data.TotalPrice,
		Status:         string(data.Status),
		TrackingNumber: data.TrackingNumber,
		ShippingName:   data.ShippingName,
		ShippingPhone:  data.ShippingPhone,
		ShippingLine:   data.ShippingLine,
		Items:          items,
		History:        history,
	}
}
