// Package customerrepo provides data transfer objects and mapping functions for
// customer persistence. It implements the repository pattern for the customer
// aggregate, converting between domain entities and database rows.
package customerrepo

import (
	"time"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"size:320;uniqueIndex;not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email().Value(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a customer domain aggregate using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(dto.ID, dto.Name, email, dto.CreatedAt)
}
