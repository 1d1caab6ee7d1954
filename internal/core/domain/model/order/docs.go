// Package order provides domain entities and business logic for order
// management in the commerce system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that owns line items and manages the lifecycle
//   - OrderItem: A line item with exact decimal pricing and a derived total
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a positive customer id
//   - Order status follows a defined workflow:
//     Pending -> Paid -> Shipped -> Delivered, with cancellation allowed
//     until an order ships
//   - Items can be added or removed only while the order is Pending
//   - The order total is always recomputed from the current items
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
