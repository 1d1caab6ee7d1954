package ports

import (
	"context"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders loaded through Get carry no item collection; use GetWithItems
// when the caller needs the full aggregate.
type OrderRepository interface {
	// Add persists a new order and returns the identifier assigned by storage.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order with the given identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Delete(ctx context.Context, id int64) error

	// Get retrieves an order aggregate by its unique identifier, without items.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetWithItems retrieves an order aggregate together with its items.
	// Returns errs.ObjectNotFoundError when no such order exists.
	GetWithItems(ctx context.Context, id int64) (*order.Order, error)

	// GetByCustomer retrieves every order placed by the given customer,
	// ordered by identifier.
	GetByCustomer(ctx context.Context, customerID int64) ([]*order.Order, error)

	// GetAll retrieves every order ordered by identifier.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetPaged retrieves one page of orders ordered by identifier,
	// together with the total count across all pages.
	GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*order.Order], error)

	// GetPagedByCustomer retrieves one page of the given customer's orders
	// ordered by identifier, together with that customer's total order count.
	GetPagedByCustomer(ctx context.Context, customerID int64, page kernel.PageRequest) (kernel.PagedResult[*order.Order], error)

	// GetAllPendingCreatedBefore retrieves pending orders created before the
	// given cutoff. Used by the abandoned order sweep.
	GetAllPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}

// OrderItemRepository defines the persistence contract for order items.
type OrderItemRepository interface {
	// Add persists a new order item and returns the identifier assigned by storage.
	Add(ctx context.Context, item *order.OrderItem) (int64, error)

	// Update persists changes to an existing order item.
	Update(ctx context.Context, item *order.OrderItem) error

	// Delete removes the order item with the given identifier.
	// Returns errs.ObjectNotFoundError when no such item exists.
	Delete(ctx context.Context, id int64) error

	// DeleteByOrder removes every item belonging to the given order.
	DeleteByOrder(ctx context.Context, orderID int64) error

	// Get retrieves an order item by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id int64) (*order.OrderItem, error)

	// GetByOrder retrieves every item of the given order, ordered by identifier.
	GetByOrder(ctx context.Context, orderID int64) ([]*order.OrderItem, error)
}
