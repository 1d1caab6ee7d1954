package http

import (
	"time"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier assigned to a newly created resource.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// CustomerRequest is the body for creating or updating a customer.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ProductRequest is the body for creating or updating a product.
type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderItemRequest is one line of an order creation request.
type OrderItemRequest struct {
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderRequest is the body for creating an order.
type OrderRequest struct {
	CustomerID int64              `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
}

// CustomerResponse is the JSON representation of a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductResponse is the JSON representation of a product.
type ProductResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderItemResponse is the JSON representation of one order line.
type OrderItemResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"productId"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// OrderResponse is the JSON representation of an order.
type OrderResponse struct {
	ID          int64               `json:"id"`
	CustomerID  int64               `json:"customerId"`
	OrderDate   time.Time           `json:"orderDate"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}

// PagedResponse is the JSON envelope for paged collection reads.
type PagedResponse[T any] struct {
	Items           []T  `json:"items"`
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalCount      int  `json:"totalCount"`
	TotalPages      int  `json:"totalPages"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

func toCustomerResponse(model queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		CreatedAt: model.CreatedAt,
	}
}

func toProductResponse(model queries.ProductResponse) ProductResponse {
	return ProductResponse{
		ID:        model.ID,
		Name:      model.Name,
		Price:     model.Price,
		CreatedAt: model.CreatedAt,
	}
}

func toOrderResponse(model queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, OrderItemResponse{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return OrderResponse{
		ID:          model.ID,
		CustomerID:  model.CustomerID,
		OrderDate:   model.OrderDate,
		Status:      model.Status,
		TotalAmount: model.TotalAmount,
		CreatedAt:   model.CreatedAt,
		Items:       items,
	}
}

func toPagedResponse[T, U any](page kernel.PagedResult[T], mapFn func(T) U) PagedResponse[U] {
	items := make([]U, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapFn(item))
	}

	return PagedResponse[U]{
		Items:           items,
		PageNumber:      page.PageNumber,
		PageSize:        page.PageSize,
		TotalCount:      page.TotalCount,
		TotalPages:      page.TotalPages(),
		HasPreviousPage: page.HasPreviousPage(),
		HasNextPage:     page.HasNextPage(),
	}
}
