// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"log/slog"
	"time"

	"skyelectro/internal/domain/constants"
	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/pricing"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService creates a new cart service instance.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, logger *slog.Logger) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart loads the cart, prunes stale lines and reprices the rest.
// A user without a cart gets the empty shape, never an error.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.CartView, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.EmptyCartView(), nil
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	return s.buildView(ctx, cart)
}

// buildView resolves each line's product, drops lines whose product is
// missing or inactive, and persists the pruned list back before returning.
func (s *cartService) buildView(ctx context.Context, cart *entity.Cart) (*entity.CartView, error) {
	products, err := s.resolveProducts(ctx, cart)
	if err != nil {
		return nil, err
	}

	view := entity.EmptyCartView()
	kept := make([]entity.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		kept = append(kept, item)

		currentPrice := pricing.ProductPrice(product)
		itemTotal := currentPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Items = append(view.Items, entity.CartLineView{
			Product:      product,
			Quantity:     item.Quantity,
			CurrentPrice: currentPrice,
			ItemTotal:    itemTotal,
			AddedAt:      item.AddedAt,
		})
		view.TotalItems += item.Quantity
		view.TotalPrice = view.TotalPrice.Add(itemTotal)
	}

	if len(kept) < len(cart.Items) {
		s.logger.Info("pruned stale cart items",
			slog.String("user_id", cart.UserID.String()),
			slog.Int("dropped", len(cart.Items)-len(kept)),
		)
		if err := s.cartRepo.ReplaceItems(ctx, cart.ID, kept); err != nil {
			return nil, errors.Wrap(err, "failed to persist pruned cart")
		}
		cart.Items = kept
	}

	return view, nil
}

func (s *cartService) resolveProducts(ctx context.Context, cart *entity.Cart) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	found, err := s.productRepo.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cart products")
	}

	products := make(map[uuid.UUID]*entity.Product, len(found))
	for _, product := range found {
		products[product.ID] = product
	}

	return products, nil
}

// AddToCart adds a product line or merges into an existing one, creating the
// cart lazily on the first add.
func (s *cartService) AddToCart(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartView, error) {
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

	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(err, "failed to find cart by user")
		}

		cart = &entity.Cart{
			ID:     uuid.New(),
			UserID: userID,
			Items: []entity.CartItem{{
				ProductID: productID,
				Quantity:  quantity,
				AddedAt:   time.Now(),
			}},
		}
		if err := s.cartRepo.Create(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to create cart")
		}

		return s.buildView(ctx, cart)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			continue
		}
		newQuantity := cart.Items[i].Quantity + quantity
		if newQuantity > constants.MaxQuantityPerLine {
			return nil, domainerrors.ErrQuantityLimitExceeded
		}
		cart.Items[i].Quantity = newQuantity
		merged = true

		break
	}
	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   time.Now(),
		})
	}

	if err := s.cartRepo.ReplaceItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, errors.Wrap(err, "failed to update cart items")
	}

	return s.buildView(ctx, cart)
}

// UpdateCartItem overwrites the line's quantity. Bounds are enforced by the
// request validation layer.
func (s *cartService) UpdateCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) (*entity.CartView, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

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

	updated := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			updated = true

			break
		}
	}
	if !updated {
		return nil, domainerrors.ErrCartItemNotFound
	}

	if err := s.cartRepo.ReplaceItems(ctx, cart.ID, cart.Items); err != nil {
		return nil, errors.Wrap(err, "failed to update cart items")
	}

	return s.buildView(ctx, cart)
}

// RemoveFromCart is an idempotent filter-removal: removing an absent line
// leaves the cart unchanged and is not an error.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, productID uuid.UUID) (*entity.CartView, error) {
	cart, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.EmptyCartView(), nil
		}

		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	kept := make([]entity.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}

	if len(kept) < len(cart.Items) {
		if err := s.cartRepo.ReplaceItems(ctx, cart.ID, kept); err != nil {
			return nil, errors.Wrap(err, "failed to update cart items")
		}
		cart.Items = kept
	}

	return s.buildView(ctx, cart)
}

// ClearCart deletes the cart document entirely, not just its items.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}
