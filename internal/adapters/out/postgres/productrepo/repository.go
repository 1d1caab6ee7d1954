package productrepo

import (
	"context"
	"errors"
	"strconv"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product and returns the identifier assigned by the database.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *product.Product) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return dto.ID, nil
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", strconv.FormatInt(dto.ID, 10))
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Delete removes a product by ID.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", strconv.FormatInt(id, 10))
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all products ordered by ID.
func (r *GormProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}

// GetPaged retrieves one page of products ordered by ID together with the total count.
func (r *GormProductRepository) GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*product.Product], error) {
	var empty kernel.PagedResult[*product.Product]
	if err := page.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Count(&total).Error; err != nil {
		return empty, err
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Offset()).
		Limit(page.PageSize()).
		Find(&dtos).Error; err != nil {
		return empty, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return empty, err
		}
		products = append(products, p)
	}

	return kernel.NewPagedResult(products, page, int(total)), nil
}
