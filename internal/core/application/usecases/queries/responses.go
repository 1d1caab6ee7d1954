// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models mapped from the domain aggregates; handlers
// depend on repository ports so every read path is exercised through the
// same persistence contracts as the write side.
package queries

import (
	"time"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// CustomerResponse represents customer information in the read model.
type CustomerResponse struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// ProductResponse represents product information in the read model.
type ProductResponse struct {
	ID        int64
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
}

// OrderItemResponse represents a single line item in the order read model.
type OrderItemResponse struct {
	ID         int64
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// OrderResponse represents order information in the read model.
// TotalAmount is derived from the loaded items; orders read without items
// report a zero total and an empty item list.
type OrderResponse struct {
	ID          int64
	CustomerID  int64
	OrderDate   time.Time
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	Items       []OrderItemResponse
}

func customerToResponse(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email().Value(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func productToResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Price:     aggregate.Price(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, OrderItemResponse{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID(),
		CustomerID:  aggregate.CustomerID(),
		OrderDate:   aggregate.OrderDate(),
		Status:      aggregate.Status().String(),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		Items:       itemResponses,
	}
}
