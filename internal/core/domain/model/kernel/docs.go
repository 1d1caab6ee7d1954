// Package kernel provides core domain primitives shared across the commerce
// domain model. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - Email: A value object for validated, immutable email addresses
//   - PageRequest: A value object describing one page of a paged read
//   - PagedResult: A response envelope carrying a page of items plus
//     total-count-derived metadata
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
