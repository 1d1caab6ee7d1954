package orderrepo

import (
	"context"
	"errors"
	"strconv"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and returns the identifier assigned by the database.
// Items are persisted separately through the order item repository.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
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

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(dto.ID, 10))
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// Delete removes an order by ID. Items are not cascaded here; callers remove
// them through the order item repository inside the same transaction.
func (r *GormOrderRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
	}

	return nil
}

// Get retrieves an order by ID without its items.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return toDomain(dto, nil)
}

// GetWithItems retrieves an order by ID together with its items.
func (r *GormOrderRepository) GetWithItems(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&itemDTOs, "order_id = ?", id).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}

// GetByCustomer retrieves all orders of the given customer ordered by ID.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "customer_id = ?", customerID).Error; err != nil {
		return nil, err
	}

	return mapOrders(dtos)
}

// GetAll retrieves all orders ordered by ID.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return mapOrders(dtos)
}

// GetPaged retrieves one page of orders ordered by ID together with the total count.
func (r *GormOrderRepository) GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*order.Order], error) {
	return r.getPaged(ctx, page, nil)
}

// GetPagedByCustomer retrieves one page of the given customer's orders ordered
// by ID together with that customer's total order count.
func (r *GormOrderRepository) GetPagedByCustomer(
	ctx context.Context, customerID int64, page kernel.PageRequest,
) (kernel.PagedResult[*order.Order], error) {
	return r.getPaged(ctx, page, &customerID)
}

func (r *GormOrderRepository) getPaged(
	ctx context.Context, page kernel.PageRequest, customerID *int64,
) (kernel.PagedResult[*order.Order], error) {
	var empty kernel.PagedResult[*order.Order]
	if err := page.Validate(); err != nil {
		return empty, err
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return empty, err
	}

	var dtos []OrderDTO
	if err := query.
		Order("id").
		Offset(page.Offset()).
		Limit(page.PageSize()).
		Find(&dtos).Error; err != nil {
		return empty, err
	}

	orders, err := mapOrders(dtos)
	if err != nil {
		return empty, err
	}

	return kernel.NewPagedResult(orders, page, int(total)), nil
}

// GetAllPendingCreatedBefore retrieves pending orders created before the cutoff.
func (r *GormOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "status = ? AND created_at < ?", int(order.Pending), cutoff).Error; err != nil {
		return nil, err
	}

	return mapOrders(dtos)
}

func mapOrders(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, nil)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
