package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder constructors. This ensures all orders
// are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer purchase. It owns an ordered
// collection of line items and manages the order lifecycle from Pending
// through payment, shipping, and delivery or cancellation.
//
// Order follows these invariants:
//   - CustomerID is strictly positive and immutable
//   - TotalAmount is always the sum of the current items' TotalPrice,
//     recomputed on every read and never stored
//   - Items may be added or removed only while the order is Pending
//   - Status changes only through the transitions defined on Status;
//     there is no direct assignment
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the surrogate identifier assigned by persistence
	id int64

	// customerID references the ordering customer, immutable
	customerID int64

	// orderDate is when the order was placed (UTC)
	orderDate time.Time

	// status is the current state in the order lifecycle
	status Status

	// createdAt records when the aggregate was created (UTC)
	createdAt time.Time

	// items is the internally owned, ordered line item collection
	items []*OrderItem

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order for the given customer. The order starts in
// Pending status with no items; orderDate and createdAt are set to the
// current UTC time. The id stays zero until persistence assigns one.
//
// Returns a validation error if customerID is not strictly positive.
func NewOrder(customerID int64) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		orderDate: now,
		status:    Pending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := order.setCustomerID(customerID); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its assigned id, timestamps, status, and item collection.
//
// All construction invariants are re-checked: the id and customer id must be
// positive, the status must be a valid enumeration value, and every item must
// have been properly constructed. The items slice is copied, never aliased.
func RestoreOrder(
	id, customerID int64,
	orderDate time.Time,
	status Status,
	createdAt time.Time,
	items []*OrderItem,
) (*Order, error) {
	order := &Order{
		orderDate: orderDate.UTC(),
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their persistence-assigned identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != 0 && o.id == other.id
}

// ID returns the persistence-assigned identifier, or zero if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// CustomerID returns the identifier of the ordering customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// OrderDate returns when the order was placed (UTC).
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the UTC creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a snapshot of the order's line items. The returned slice is
// a copy; mutating it does not affect the aggregate.
func (o *Order) Items() []*OrderItem {
	items := make([]*OrderItem, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the sum of TotalPrice over the current items.
// It is recomputed on every access and never persisted, so it cannot
// diverge from the item set.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// AddItem appends a new line item for the given product.
//
// Fails with InvalidStateError ("Cannot modify a non-pending order") unless
// the order is Pending, and with a validation error if the item parameters
// violate the OrderItem invariants.
func (o *Order) AddItem(productID int64, quantity int, unitPrice decimal.Decimal) error {
	if err := o.ensureItemsModifiable(); err != nil {
		return err
	}

	item, err := NewOrderItem(o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the first line item with the given product id.
//
// Fails with InvalidStateError unless the order is Pending. Removing a
// product id that is not present is a no-op, not an error.
func (o *Order) RemoveItem(productID int64) error {
	if err := o.ensureItemsModifiable(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ProductID() == productID {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			break
		}
	}

	return nil
}

// MarkAsPaid transitions the order from Pending to Paid.
// Fails with InvalidStateError for any other current status.
func (o *Order) MarkAsPaid() error {
	newStatus, err := o.status.MarkAsPaid()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship transitions the order from Paid to Shipped.
// Fails with InvalidStateError for any other current status.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver transitions the order from Shipped to Delivered.
// Fails with InvalidStateError for any other current status.
// Delivered is a terminal state.
func (o *Order) Deliver() error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel transitions the order to Cancelled unless it has already been
// shipped, delivered, or cancelled. Cancelled is a terminal state.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) ensureItemsModifiable() error {
	if !o.status.AllowsItemChanges() {
		return errs.NewInvalidStateErrorWithCause(
			"Cannot modify a non-pending order",
			fmt.Errorf("current status is %s", o.status),
		)
	}
	return nil
}

func (o *Order) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("CustomerId must be positive",
			fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*OrderItem) error {
	restored := make([]*OrderItem, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		restored = append(restored, item)
	}
	o.items = restored
	return nil
}
