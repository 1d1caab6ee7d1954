// Package product provides the Product entity for the commerce domain.
// Product prices are exact decimal values; floating-point money is never used.
package product

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxNameLength is the maximum allowed length of a product name in characters.
const MaxNameLength = 200

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct constructors.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product represents a sellable product.
//
// Invariants:
//   - Name is non-blank and at most MaxNameLength characters
//   - Price is strictly positive
//   - CreatedAt is set once, in UTC, at construction
type Product struct {
	// id is the surrogate identifier assigned by persistence
	id int64
	// name is the product's display name
	name string
	// price is the exact unit price
	price decimal.Decimal
	// createdAt records when the product was created (UTC)
	createdAt time.Time
	// guard ensures the product was properly constructed
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with the given name and price.
// The creation timestamp is set to the current UTC time and the id is left
// zero until persistence assigns one.
//
// Returns a validation error if the name is blank or exceeds MaxNameLength,
// or if the price is not strictly positive.
func NewProduct(name string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage, preserving
// its assigned id and original creation timestamp.
func RestoreProduct(id int64, name string, price decimal.Decimal, createdAt time.Time) (*Product, error) {
	product := &Product{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the persistence-assigned identifier, or zero if not yet persisted.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Price returns the exact unit price.
func (p *Product) Price() decimal.Decimal {
	return p.price
}

// CreatedAt returns the UTC creation timestamp.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

// UpdateName changes the product's name after re-validating it.
func (p *Product) UpdateName(name string) error {
	return p.setName(name)
}

// UpdatePrice changes the product's price after re-validating it.
func (p *Product) UpdatePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("Name cannot be empty")
	}
	if length := utf8.RuneCountInString(name); length > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", length, 1, MaxNameLength)
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}
