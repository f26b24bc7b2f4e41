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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByUser retrieves the user's cart with its items.
func (repo *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return toCartDomain(&cartM), nil
}

// Create persists a new cart with its initial items.
func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	if err := repo.db.WithContext(ctx).Create(cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already has a cart")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.ID = cartM.ID
	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

// ReplaceItems overwrites the cart's item list wholesale. Read-time pruning
// and every quantity change go through here.
func (repo *cartRepository) ReplaceItems(ctx context.Context, cartID uuid.UUID, items []entity.CartItem) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("cart_id = ?", cartID).
			Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		if len(items) == 0 {
			return nil
		}

		itemModels := make([]model.CartItemModel, 0, len(items))
		for _, item := range items {
			itemModels = append(itemModels, model.CartItemModel{
				CartID:    cartID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				AddedAt:   item.AddedAt,
			})
		}
		if err := tx.Create(&itemModels).Error; err != nil {
			return errors.Wrap(err, "failed to insert cart items")
		}

		return nil
	})
}

// DeleteByUser removes the user's cart and its items entirely.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cartM model.CartModel
		if err := tx.
			Where("user_id = ?", userID).
			First(&cartM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Clearing a missing cart is a no-op.
				return nil
			}

			return errors.Wrap(err, "failed to find cart by user")
		}

		if err := tx.
			Where("cart_id = ?", cartM.ID).
			Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete cart items")
		}

		if err := tx.Delete(&cartM).Error; err != nil {
			return errors.Wrap(err, "failed to delete cart")
		}

		return nil
	})
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	items := make([]entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.CartItem{
			ProductID: itemM.ProductID,
			Quantity:  itemM.Quantity,
			AddedAt:   itemM.AddedAt,
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	items := make([]model.CartItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.CartItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		})
	}

	return &model.CartModel{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
	}
}
