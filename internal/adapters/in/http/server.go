// Package http exposes the application use cases over a REST API.
// Handlers translate between JSON payloads and commands or queries;
// no business rules live here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 20
)

// Commands groups the write-side handlers the server dispatches to.
type Commands struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler
	CreateProduct  commands.CreateProductCommandHandler
	UpdateProduct  commands.UpdateProductCommandHandler
	DeleteProduct  commands.DeleteProductCommandHandler
	CreateOrder    commands.CreateOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	MarkOrderPaid  commands.MarkOrderPaidCommandHandler
	ShipOrder      commands.ShipOrderCommandHandler
	DeliverOrder   commands.DeliverOrderCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
}

// Queries groups the read-side handlers the server dispatches to.
type Queries struct {
	GetCustomer         queries.GetCustomerQueryHandler
	GetCustomerByEmail  queries.GetCustomerByEmailQueryHandler
	GetAllCustomers     queries.GetAllCustomersQueryHandler
	GetCustomersPaged   queries.GetCustomersPagedQueryHandler
	GetProduct          queries.GetProductQueryHandler
	GetAllProducts      queries.GetAllProductsQueryHandler
	GetProductsPaged    queries.GetProductsPagedQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrdersPaged      queries.GetOrdersPagedQueryHandler
	GetOrdersByCustomer queries.GetOrdersByCustomerQueryHandler
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	commands Commands
	queries  Queries
}

// NewServer creates an HTTP server dispatching to the given handlers.
func NewServer(cmds Commands, qrys Queries) *Server {
	return &Server{commands: cmds, queries: qrys}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.GET("/customers/by-email", s.GetCustomerByEmail)
	api.GET("/customers/:id", s.GetCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)
	api.GET("/customers/:id/orders", s.GetCustomerOrders)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/pay", s.PayOrder)
	api.POST("/orders/:id/ship", s.ShipOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetCustomers handles GET /api/v1/customers. Without paging parameters the
// full list is returned; with them, one page wrapped in a paged envelope.
func (s *Server) GetCustomers(ctx echo.Context) error {
	if !hasPagingParams(ctx) {
		query := queries.NewGetAllCustomersQuery()

		customers, err := s.queries.GetAllCustomers.Handle(ctx.Request().Context(), query)
		if err != nil {
			return fail(ctx, err)
		}

		response := make([]CustomerResponse, 0, len(customers))
		for _, model := range customers {
			response = append(response, toCustomerResponse(model))
		}
		return ctx.JSON(http.StatusOK, response)
	}

	pageNumber, pageSize := pagingParams(ctx)
	query, err := queries.NewGetCustomersPagedQuery(pageNumber, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	page, err := s.queries.GetCustomersPaged.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(page, toCustomerResponse))
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateCustomerCommand(request.Name, request.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.commands.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	customer, err := s.queries.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if customer == nil {
		return notFound(ctx, "Customer not found")
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// GetCustomerByEmail handles GET /api/v1/customers/by-email?email=...
func (s *Server) GetCustomerByEmail(ctx echo.Context) error {
	query, err := queries.NewGetCustomerByEmailQuery(ctx.QueryParam("email"))
	if err != nil {
		return badRequest(ctx, err)
	}

	customer, err := s.queries.GetCustomerByEmail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if customer == nil {
		return notFound(ctx, "Customer not found")
	}

	return ctx.JSON(http.StatusOK, toCustomerResponse(*customer))
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, request.Name, request.Email)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.commands.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	if !updated {
		return notFound(ctx, "Customer not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	deleted, err := s.commands.DeleteCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	if !deleted {
		return notFound(ctx, "Customer not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	orders, err := s.queries.GetOrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, toOrderResponse(model))
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/v1/products. Without paging parameters the
// full catalog is returned; with them, one page wrapped in a paged envelope.
func (s *Server) GetProducts(ctx echo.Context) error {
	if !hasPagingParams(ctx) {
		query := queries.NewGetAllProductsQuery()

		products, err := s.queries.GetAllProducts.Handle(ctx.Request().Context(), query)
		if err != nil {
			return fail(ctx, err)
		}

		response := make([]ProductResponse, 0, len(products))
		for _, model := range products {
			response = append(response, toProductResponse(model))
		}
		return ctx.JSON(http.StatusOK, response)
	}

	pageNumber, pageSize := pagingParams(ctx)
	query, err := queries.NewGetProductsPagedQuery(pageNumber, pageSize)
	if err != nil {
		return badRequest(ctx, err)
	}

	page, err := s.queries.GetProductsPaged.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(page, toProductResponse))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(request.Name, request.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.commands.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	product, err := s.queries.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if product == nil {
		return notFound(ctx, "Product not found")
	}

	return ctx.JSON(http.StatusOK, toProductResponse(*product))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ProductRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(id, request.Name, request.Price)
	if err != nil {
		return badRequest(ctx, err)
	}

	updated, err := s.commands.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	if !updated {
		return notFound(ctx, "Product not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	deleted, err := s.commands.DeleteProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	if !deleted {
		return notFound(ctx, "Product not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders. Without paging parameters the full
// list is returned; with them, one page wrapped in a paged envelope. An
// optional customerId filter scopes either form to one customer.
func (s *Server) GetOrders(ctx echo.Context) error {
	var customerID int64
	if raw := ctx.QueryParam("customerId"); raw != "" {
		parsed, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return badRequest(ctx, parseErr)
		}
		customerID = parsed
	}

	if !hasPagingParams(ctx) {
		var (
			orders []queries.OrderResponse
			err    error
		)
		if customerID != 0 {
			var query queries.GetOrdersByCustomerQuery
			query, err = queries.NewGetOrdersByCustomerQuery(customerID)
			if err != nil {
				return badRequest(ctx, err)
			}
			orders, err = s.queries.GetOrdersByCustomer.Handle(ctx.Request().Context(), query)
		} else {
			orders, err = s.queries.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
		}
		if err != nil {
			return fail(ctx, err)
		}

		response := make([]OrderResponse, 0, len(orders))
		for _, model := range orders {
			response = append(response, toOrderResponse(model))
		}
		return ctx.JSON(http.StatusOK, response)
	}

	pageNumber, pageSize := pagingParams(ctx)

	var (
		query queries.GetOrdersPagedQuery
		err   error
	)
	if customerID != 0 {
		query, err = queries.NewGetOrdersPagedQueryForCustomer(customerID, pageNumber, pageSize)
	} else {
		query, err = queries.NewGetOrdersPagedQuery(pageNumber, pageSize)
	}
	if err != nil {
		return badRequest(ctx, err)
	}

	page, err := s.queries.GetOrdersPaged.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPagedResponse(page, toOrderResponse))
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err)
	}

	items := make([]commands.OrderItemParams, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.OrderItemParams{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.CustomerID, items)
	if err != nil {
		return badRequest(ctx, err)
	}

	id, err := s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// GetOrder handles GET /api/v1/orders/:id. The response includes line items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	order, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}
	if order == nil {
		return notFound(ctx, "Order not found")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(*order))
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Line items are removed
// together with the order.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return badRequest(ctx, err)
	}

	deleted, err := s.commands.DeleteOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}
	if !deleted {
		return notFound(ctx, "Order not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PayOrder handles POST /api/v1/orders/:id/pay.
func (s *Server) PayOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID int64) (bool, error) {
		cmd, err := commands.NewMarkOrderPaidCommand(orderID)
		if err != nil {
			return false, err
		}
		return s.commands.MarkOrderPaid.Handle(ctx.Request().Context(), cmd)
	})
}

// ShipOrder handles POST /api/v1/orders/:id/ship.
func (s *Server) ShipOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID int64) (bool, error) {
		cmd, err := commands.NewShipOrderCommand(orderID)
		if err != nil {
			return false, err
		}
		return s.commands.ShipOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID int64) (bool, error) {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return false, err
		}
		return s.commands.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.transitionOrder(ctx, func(orderID int64) (bool, error) {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return false, err
		}
		return s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) transitionOrder(ctx echo.Context, apply func(orderID int64) (bool, error)) error {
	id, err := paramID(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	done, err := apply(id)
	if err != nil {
		return fail(ctx, err)
	}
	if !done {
		return notFound(ctx, "Order not found")
	}

	return ctx.NoContent(http.StatusNoContent)
}

func paramID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func hasPagingParams(ctx echo.Context) bool {
	return ctx.QueryParam("page") != "" || ctx.QueryParam("pageSize") != ""
}

func pagingParams(ctx echo.Context) (pageNumber, pageSize int) {
	pageNumber = defaultPageNumber
	pageSize = defaultPageSize

	if raw := ctx.QueryParam("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageNumber = parsed
		}
	}
	if raw := ctx.QueryParam("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			pageSize = parsed
		}
	}
	return pageNumber, pageSize
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

// fail maps application errors onto HTTP status codes. Invalid state
// transitions surface as conflicts, missing referenced aggregates as not
// found, validation failures as bad requests.
func fail(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrInvalidState):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return badRequest(ctx, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
