package impl

import (
	"context"
	"log/slog"
	"time"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/pricing"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewWishlistService creates a new wishlist service instance.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository, logger *slog.Logger) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// GetWishlist mirrors the cart's read-time pruning without quantity or price
// aggregation.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.WishlistView, error) {
	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistNotFound) {
			return &entity.WishlistView{Items: []entity.WishlistLineView{}}, nil
		}

		return nil, errors.Wrap(err, "failed to find wishlist by user")
	}

	return s.buildView(ctx, wishlist)
}

func (s *wishlistService) buildView(ctx context.Context, wishlist *entity.Wishlist) (*entity.WishlistView, error) {
	ids := make([]uuid.UUID, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		ids = append(ids, item.ProductID)
	}

	found, err := s.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve wishlist products")
	}
	products := make(map[uuid.UUID]*entity.Product, len(found))
	for _, product := range found {
		products[product.ID] = product
	}

	view := &entity.WishlistView{Items: []entity.WishlistLineView{}}
	kept := make([]entity.WishlistItem, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		kept = append(kept, item)
		view.Items = append(view.Items, entity.WishlistLineView{
			Product:      product,
			CurrentPrice: pricing.ProductPrice(product),
			AddedAt:      item.AddedAt,
		})
	}
	view.TotalItems = len(view.Items)

	if len(kept) < len(wishlist.Items) {
		s.logger.Info("pruned stale wishlist items",
			slog.String("user_id", wishlist.UserID.String()),
			slog.Int("dropped", len(wishlist.Items)-len(kept)),
		)
		if err := s.wishlistRepo.ReplaceItems(ctx, wishlist.ID, kept); err != nil {
			return nil, errors.Wrap(err, "failed to persist pruned wishlist")
		}
		wishlist.Items = kept
	}

	return view, nil
}

// AddToWishlist adds a presence-only entry. Duplicates are rejected; there is
// no quantity to merge.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrWishlistNotFound) {
			return nil, errors.Wrap(err, "failed to find wishlist by user")
		}

		wishlist = &entity.Wishlist{
			ID:     uuid.New(),
			UserID: userID,
			Items: []entity.WishlistItem{{
				ProductID: productID,
				AddedAt:   time.Now(),
			}},
		}
		if err := s.wishlistRepo.Create(ctx, wishlist); err != nil {
			return nil, errors.Wrap(err, "failed to create wishlist")
		}

		return s.buildView(ctx, wishlist)
	}

	for _, item := range wishlist.Items {
		if item.ProductID == productID {
			return nil, domainerrors.ErrAlreadyInWishlist
		}
	}

	wishlist.Items = append(wishlist.Items, entity.WishlistItem{
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	if err := s.wishlistRepo.ReplaceItems(ctx, wishlist.ID, wishlist.Items); err != nil {
		return nil, errors.Wrap(err, "failed to update wishlist items")
	}

	return s.buildView(ctx, wishlist)
}

// RemoveFromWishlist removes the entry if present; absent entries are not an error.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.WishlistView, error) {
	wishlist, err := s.wishlistRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrWishlistNotFound) {
			return &entity.WishlistView{Items: []entity.WishlistLineView{}}, nil
		}

		return nil, errors.Wrap(err, "failed to find wishlist by user")
	}

	kept := make([]entity.WishlistItem, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if len(kept) < len(wishlist.Items) {
		if err := s.wishlistRepo.ReplaceItems(ctx, wishlist.ID, kept); err != nil {
			return nil, errors.Wrap(err, "failed to update wishlist items")
		}
		wishlist.Items = kept
	}

	return s.buildView(ctx, wishlist)
}

// ClearWishlist deletes the wishlist entirely.
func (s *wishlistService) ClearWishlist(ctx context.Context, userID uuid.UUID) error {
	if err := s.wishlistRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete wishlist")
	}

	return nil
}
