package order

import (
	"errors"
	"fmt"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem instance was not
// created through the NewOrderItem or RestoreOrderItem constructors.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is a line item owned by an Order.
//
// Invariants:
//   - orderID is never negative (zero is allowed while the parent order
//     has not been persisted yet)
//   - productID is strictly positive
//   - quantity is strictly positive
//   - unitPrice is strictly positive and immutable after construction
//
// TotalPrice is a pure derived value and is never stored.
type OrderItem struct {
	// id is the surrogate identifier assigned by persistence
	id int64
	// orderID references the owning order
	orderID int64
	// productID references the purchased product
	productID int64
	// quantity is the number of units, mutable via UpdateQuantity
	quantity int
	// unitPrice is the exact price per unit, fixed at construction
	unitPrice decimal.Decimal
	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewOrderItem creates a line item for the given order and product.
//
// Returns a validation error if orderID is negative, productID or quantity
// is not strictly positive, or unitPrice is not strictly positive.
func NewOrderItem(orderID, productID int64, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs an OrderItem from persistent storage,
// preserving its assigned id. The restored item is validated with the same
// rules as NewOrderItem.
func RestoreOrderItem(
	id, orderID, productID int64,
	quantity int,
	unitPrice decimal.Decimal,
) (*OrderItem, error) {
	item, err := NewOrderItem(orderID, productID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order item id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	item.id = id

	return item, nil
}

// Validate ensures the OrderItem instance was properly constructed.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the persistence-assigned identifier, or zero if not yet persisted.
func (i *OrderItem) ID() int64 {
	return i.id
}

// OrderID returns the identifier of the owning order.
func (i *OrderItem) OrderID() int64 {
	return i.orderID
}

// ProductID returns the identifier of the purchased product.
func (i *OrderItem) ProductID() int64 {
	return i.productID
}

// Quantity returns the number of units.
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the exact price per unit.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// TotalPrice returns quantity × unitPrice, computed on every call with
// exact decimal arithmetic. It is never cached or stored.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// UpdateQuantity changes the quantity after re-validating it.
func (i *OrderItem) UpdateQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

func (i *OrderItem) setOrderID(orderID int64) error {
	if orderID < 0 {
		return errs.NewValueIsInvalidErrorWithCause("OrderId cannot be negative",
			fmt.Errorf("%d is negative", orderID))
	}
	i.orderID = orderID
	return nil
}

func (i *OrderItem) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("ProductId must be positive",
			fmt.Errorf("%d is not greater than 0", productID))
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("Quantity must be positive",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("UnitPrice must be positive",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
