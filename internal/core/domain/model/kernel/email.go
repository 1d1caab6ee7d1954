package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"commerce/internal/pkg/errs"
)

// ErrEmailIsNotConstructed indicates that an Email was not properly initialized
// through the NewEmail constructor. This error is returned when validating a
// zero-value Email.
var ErrEmailIsNotConstructed = errs.NewValueIsRequiredError("email must be created via NewEmail constructor")

// emailPattern requires exactly one "@", at least one "." in the domain part,
// and no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is an immutable value object wrapping a validated email address.
// Two emails are equal when their string values are equal.
//
// The zero value of Email is invalid and must be constructed through NewEmail.
// There is no implicit string conversion; use Value() at every use site.
//
// Example:
//
//	email, err := kernel.NewEmail("a@b.com")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(email.Value()) // "a@b.com"
type Email struct {
	value string

	// isConstructed ensures the email was created via NewEmail
	isConstructed bool
}

// NewEmail validates the raw address and returns an Email value object.
//
// Validation rules:
//   - The address must not be empty or blank
//   - The address must match the local@domain.tld shape: exactly one "@",
//     a "." in the domain part, and no whitespace
//
// Returns a validation error describing the violated rule otherwise.
func NewEmail(value string) (Email, error) {
	if strings.TrimSpace(value) == "" {
		return Email{}, errs.NewValueIsRequiredError("Email cannot be empty")
	}

	if !emailPattern.MatchString(value) {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			"Invalid email format",
			fmt.Errorf("%s does not match the local@domain.tld shape", value),
		)
	}

	return Email{
		value:         value,
		isConstructed: true,
	}, nil
}

// Value returns the underlying email address.
func (e Email) Value() string {
	return e.value
}

// String implements fmt.Stringer and returns the email address.
func (e Email) String() string {
	return e.value
}

// IsEqual compares two emails by value.
func (e Email) IsEqual(other Email) bool {
	return e.value == other.value
}

// Validate ensures the Email was created through NewEmail.
// Returns ErrEmailIsNotConstructed for zero-value instances.
func (e Email) Validate() error {
	if !e.isConstructed {
		return ErrEmailIsNotConstructed
	}
	return nil
}
