package orderrepo

import (
	"context"
	"errors"
	"strconv"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db *gorm.DB
}

// NewGormOrderItemRepository creates a new GORM order item repository.
func NewGormOrderItemRepository(db *gorm.DB) *GormOrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

// Add saves a new order item and returns the identifier assigned by the database.
func (r *GormOrderItemRepository) Add(ctx context.Context, item *order.OrderItem) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update saves an existing order item to the database.
func (r *GormOrderItemRepository) Update(ctx context.Context, item *order.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&OrderItemDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", strconv.FormatInt(dto.ID, 10))
	}

	return nil
}

// Delete removes an order item by ID.
func (r *GormOrderItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&OrderItemDTO{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", strconv.FormatInt(id, 10))
	}

	return nil
}

// DeleteByOrder removes every item belonging to the given order.
// Removing items of an order that has none is not an error.
func (r *GormOrderItemRepository) DeleteByOrder(ctx context.Context, orderID int64) error {
	return r.db.WithContext(ctx).Delete(&OrderItemDTO{}, "order_id = ?", orderID).Error
}

// Get retrieves an order item by ID.
func (r *GormOrderItemRepository) Get(ctx context.Context, id int64) (*order.OrderItem, error) {
	var dto OrderItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	return itemToDomain(dto)
}

// GetByOrder retrieves all items of the given order ordered by ID.
func (r *GormOrderItemRepository) GetByOrder(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		return nil, err
	}

	items := make([]*order.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
