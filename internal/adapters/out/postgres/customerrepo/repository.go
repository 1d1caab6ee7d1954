package customerrepo

import (
	"context"
	"errors"
	"strconv"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer and returns the identifier assigned by the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (int64, error) {
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

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", strconv.FormatInt(dto.ID, 10))
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Delete removes a customer by ID.
func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", strconv.FormatInt(id, 10))
	}

	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves the customer registered under the given email.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", email.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all customers ordered by ID.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// GetPaged retrieves one page of customers ordered by ID together with the total count.
func (r *GormCustomerRepository) GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*customer.Customer], error) {
	var empty kernel.PagedResult[*customer.Customer]
	if err := page.Validate(); err != nil {
		return empty, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Count(&total).Error; err != nil {
		return empty, err
	}

	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Offset(page.Offset()).
		Limit(page.PageSize()).
		Find(&dtos).Error; err != nil {
		return empty, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return empty, err
		}
		customers = append(customers, c)
	}

	return kernel.NewPagedResult(customers, page, int(total)), nil
}
