package impl

import (
	"context"
	"log/slog"

	"skyelectro/internal/domain/entity"
	domainerrors "skyelectro/internal/domain/errors"
	"skyelectro/internal/domain/pricing"
	"skyelectro/internal/domain/repository"
	"skyelectro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// GetProduct returns an active product with its effective price. Inactive
// products are indistinguishable from missing ones.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductView, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return toProductView(product), nil
}

// ListProducts returns a page of active products.
func (s *catalogService) ListProducts(ctx context.Context, input usecase.ListProductsInput) (*usecase.ProductPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)

	products, total, err := s.productRepo.List(ctx, repository.ListProductsQuery{
		CategoryID: input.CategoryID,
		Search:     input.Search,
		ActiveOnly: true,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	views := make([]*usecase.ProductView, 0, len(products))
	for _, product := range products {
		views = append(views, toProductView(product))
	}

	return &usecase.ProductPage{Products: views, Total: total, Page: page, Limit: limit}, nil
}

// ListCategories returns all active categories.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func toProductView(product *entity.Product) *usecase.ProductView {
	return &usecase.ProductView{
		Product:      product,
		CurrentPrice: pricing.ProductPrice(product),
	}
}
