// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate and its line items, converting between domain entities and
// database rows.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items live in their own table and are loaded separately; the total amount
// is derived from items and never stored.
type OrderDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"index;not null"`
	OrderDate  time.Time
	Status     int `gorm:"index;not null"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
type OrderItemDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	OrderID   int64           `gorm:"index;not null"`
	ProductID int64           `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Items are not included; they are persisted through the item repository.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:         aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		OrderDate:  aggregate.OrderDate(),
		Status:     int(aggregate.Status()),
		CreatedAt:  aggregate.CreatedAt(),
	}
}

// toDomain converts a database row and its item rows to an order domain
// aggregate using RestoreOrder.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	items := make([]*order.OrderItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, err := itemToDomain(itemDTO)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		dto.OrderDate,
		order.Status(dto.Status),
		dto.CreatedAt,
		items,
	)
}

// itemFromDomain converts an order item entity to its database representation.
func itemFromDomain(item *order.OrderItem) OrderItemDTO {
	return OrderItemDTO{
		ID:        item.ID(),
		OrderID:   item.OrderID(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		UnitPrice: item.UnitPrice(),
	}
}

// itemToDomain converts a database row to an order item entity using RestoreOrderItem.
func itemToDomain(dto OrderItemDTO) (*order.OrderItem, error) {
	return order.RestoreOrderItem(dto.ID, dto.OrderID, dto.ProductID, dto.Quantity, dto.UnitPrice)
}
