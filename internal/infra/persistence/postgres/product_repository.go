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
	"gorm.io/plugin/dbresolver"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its unique ID, active or not.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindActiveByIDs retrieves the subset of the given IDs that still resolve to
// active products. Missing or inactive IDs are simply absent from the result.
func (repo *productRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products by IDs")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// ExistsBySKU reports whether any product, including inactive ones, already
// carries the given SKU.
func (repo *productRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Unscoped().
		Where("sku = ?", sku).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to count products by SKU")
	}

	return count > 0, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("duplicate product SKU or slug")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(productM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateRating overwrites the product's denormalized aggregate rating.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, average float64, count int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_average": average,
			"rating_count":   count,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// List returns a page of products and the total match count. Listing is the
// hottest read path, so it is pinned to replicas when any are configured.
func (repo *productRepository) List(ctx context.Context, query repository.ListProductsQuery) ([]*entity.Product, int64, error) {
	db := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.ProductModel{})

	if query.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if query.CategoryID != nil {
		db = db.Where("category_id = ?", *query.CategoryID)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("name ILIKE ? OR brand ILIKE ? OR sku ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productModels []*model.ProductModel
	if err := db.
		Order("created_at DESC").
		Offset((query.Page - 1) * query.Limit).
		Limit(query.Limit).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// BulkUpdate applies the non-nil fields of updates to all given IDs and
// returns the number of affected rows.
func (repo *productRepository) BulkUpdate(ctx context.Context, ids []uuid.UUID, updates repository.ProductBulkUpdate) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	fields := map[string]any{}
	if updates.Price != nil {
		fields["price"] = *updates.Price
	}
	if updates.Discount != nil {
		fields["discount"] = *updates.Discount
	}
	if updates.Stock != nil {
		fields["stock"] = *updates.Stock
	}
	if updates.IsActive != nil {
		fields["is_active"] = *updates.IsActive
	}
	if updates.IsFeatured != nil {
		fields["is_featured"] = *updates.IsFeatured
	}
	if updates.CategoryID != nil {
		fields["category_id"] = *updates.CategoryID
	}
	if len(fields) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Updates(fields)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to bulk update products")
	}

	return result.RowsAffected, nil
}

// SoftDelete deactivates and soft-deletes the given products.
func (repo *productRepository) SoftDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	// Flip is_active first so carts and wishlists prune the rows even before
	// the delete lands in replicas.
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id IN ?", ids).
		Update("is_active", false).Error; err != nil {
		return 0, errors.Wrap(err, "failed to deactivate products")
	}

	result := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to soft delete products")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	specs := make([]entity.Specification, 0, len(data.Specifications))
	for _, spec := range data.Specifications {
		specs = append(specs, entity.Specification{Name: spec.Name, Value: spec.Value})
	}

	return &entity.Product{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		Price:          data.Price,
		OriginalPrice:  data.OriginalPrice,
		Discount:       data.Discount,
		CategoryID:     data.CategoryID,
		Brand:          data.Brand,
		SKU:            data.SKU,
		Images:         data.Images,
		Specifications: specs,
		Features:       data.Features,
		Tags:           data.Tags,
		Dimensions:     data.Dimensions,
		Stock:          data.Stock,
		Rating: entity.RatingSummary{
			Average: data.RatingAverage,
			Count:   data.RatingCount,
		},
		IsActive:   data.IsActive,
		IsFeatured: data.IsFeatured,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	specs := make([]model.SpecificationDoc, 0, len(data.Specifications))
	for _, spec := range data.Specifications {
		specs = append(specs, model.SpecificationDoc{Name: spec.Name, Value: spec.Value})
	}

	return &model.ProductModel{
		ID:             data.ID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		Price:          data.Price,
		OriginalPrice:  data.OriginalPrice,
		Discount:       data.Discount,
		CategoryID:     data.CategoryID,
		Brand:          data.Brand,
		SKU:            data.SKU,
		Images:         data.Images,
		Specifications: specs,
		Features:       data.Features,
		Tags:           data.Tags,
		Dimensions:     data.Dimensions,
		Stock:          data.Stock,
		RatingAverage:  data.Rating.Average,
		RatingCount:    data.Rating.Count,
		IsActive:       data.IsActive,
		IsFeatured:     data.IsFeatured,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
