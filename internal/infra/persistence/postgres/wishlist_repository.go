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

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

// FindByUser retrieves the user's wishlist with its items.
func (repo *wishlistRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	var wishlistM model.WishlistModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		First(&wishlistM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWishlistNotFound
		}

		return nil, errors.Wrap(err, "failed to find wishlist by user")
	}

	return toWishlistDomain(&wishlistM), nil
}

// Create persists a new wishlist with its initial items.
func (repo *wishlistRepository) Create(ctx context.Context, wishlist *entity.Wishlist) error {
	wishlistM := fromWishlistDomain(wishlist)

	if err := repo.db.WithContext(ctx).Create(wishlistM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("user already has a wishlist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wishlist")
	}

	wishlist.ID = wishlistM.ID
	wishlist.CreatedAt = wishlistM.CreatedAt
	wishlist.UpdatedAt = wishlistM.UpdatedAt

	return nil
}

// ReplaceItems overwrites the wishlist's item list wholesale.
func (repo *wishlistRepository) ReplaceItems(ctx context.Context, wishlistID uuid.UUID, items []entity.WishlistItem) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("wishlist_id = ?", wishlistID).
			Delete(&model.WishlistItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear wishlist items")
		}

		if len(items) == 0 {
			return nil
		}

		itemModels := make([]model.WishlistItemModel, 0, len(items))
		for _, item := range items {
			itemModels = append(itemModels, model.WishlistItemModel{
				WishlistID: wishlistID,
				ProductID:  item.ProductID,
				AddedAt:    item.AddedAt,
			})
		}
		if err := tx.Create(&itemModels).Error; err != nil {
			return errors.Wrap(err, "failed to insert wishlist items")
		}

		return nil
	})
}

// DeleteByUser removes the user's wishlist and its items entirely.
func (repo *wishlistRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wishlistM model.WishlistModel
		if err := tx.
			Where("user_id = ?", userID).
			First(&wishlistM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Clearing a missing wishlist is a no-op.
				return nil
			}

			return errors.Wrap(err, "failed to find wishlist by user")
		}

		if err := tx.
			Where("wishlist_id = ?", wishlistM.ID).
			Delete(&model.WishlistItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete wishlist items")
		}

		if err := tx.Delete(&wishlistM).Error; err != nil {
			return errors.Wrap(err, "failed to delete wishlist")
		}

		return nil
	})
}

// --- Mapper Functions ---

func toWishlistDomain(data *model.WishlistModel) *entity.Wishlist {
	if data == nil {
		return nil
	}

	items := make([]entity.WishlistItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.WishlistItem{
			ProductID: itemM.ProductID,
			AddedAt:   itemM.AddedAt,
		})
	}

	return &entity.Wishlist{
		ID:        data.ID,
		UserID:    data.UserID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWishlistDomain(data *entity.Wishlist) *model.WishlistModel {
	if data == nil {
		return nil
	}

	items := make([]model.WishlistItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.WishlistItemModel{
			ProductID: item.ProductID,
			AddedAt:   item.AddedAt,
		})
	}

	return &model.WishlistModel{
		ID:     data.ID,
		UserID: data.UserID,
		Items:  items,
	}
}
