package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "commerce/internal/adapters/out/postgres"
	"commerce/internal/adapters/out/postgres/customerrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, customers, products RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.OrderItemRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderWithItemsTransaction verifies that an order and its items
// persist atomically within a single transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithItemsTransaction() {
	ctx := context.Background()
	customerID := suite.seedCustomer("alice@example.com")
	productID := suite.seedProduct("Keyboard", "49.90")

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	orderID, err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	suite.Positive(orderID)

	item, err := order.NewOrderItem(orderID, productID, 2, decimal.RequireFromString("49.90"))
	suite.Require().NoError(err)

	itemID, err := uow.OrderItemRepository().Add(ctx, item)
	suite.Require().NoError(err)
	suite.Positive(itemID)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the full aggregate after commit using a new unit of work
	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().GetWithItems(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(orderID, retrieved.ID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Len(retrieved.Items(), 1)
	suite.True(retrieved.TotalAmount().Equal(decimal.RequireFromString("99.80")))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	customerID := suite.seedCustomer("bob@example.com")
	productID := suite.seedProduct("Mouse", "19.99")

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	orderID, err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	item, err := order.NewOrderItem(orderID, productID, 1, decimal.RequireFromString("19.99"))
	suite.Require().NoError(err)
	_, err = uow.OrderItemRepository().Add(ctx, item)
	suite.Require().NoError(err)

	// Visible within the transaction
	_, err = uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Gone after rollback
	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, orderID)
	suite.Require().Error(err, "Order should not exist after rollback")

	items, err := newUow.OrderItemRepository().GetByOrder(ctx, orderID)
	suite.Require().NoError(err)
	suite.Empty(items, "Items should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()
	customerID := suite.seedCustomer("carol@example.com")

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	order1, err := order.NewOrder(customerID)
	suite.Require().NoError(err)
	order2, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	id1, err := uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	id2, err := uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.OrderRepository().Get(ctx, id1)
	suite.Require().NoError(err, "UOW1 should see its own order")
	_, err = uow1.OrderRepository().Get(ctx, id2)
	suite.Require().Error(err, "UOW1 should not see the other transaction's order")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, id1)
	suite.Require().NoError(err, "Committed order should persist")
	_, err = newUow.OrderRepository().Get(ctx, id2)
	suite.Require().Error(err, "Rolled back order should not persist")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	customerID := suite.seedCustomer("dave@example.com")

	uow := suite.factory.Create()

	testOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	orderID, err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := uow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(orderID, retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Equal(orderID, retrieved.ID())
}

// TestUnitOfWork_OrderLifecycleWorkflow runs an order through its full
// lifecycle with each transition persisted in its own transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderLifecycleWorkflow() {
	ctx := context.Background()
	customerID := suite.seedCustomer("erin@example.com")

	uow := suite.factory.Create()
	testOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)

	orderID, err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	transitions := []struct {
		apply    func(*order.Order) error
		expected order.Status
	}{
		{(*order.Order).MarkAsPaid, order.Paid},
		{(*order.Order).Ship, order.Shipped},
		{(*order.Order).Deliver, order.Delivered},
	}

	for _, transition := range transitions {
		txUow := suite.factory.Create()
		err = txUow.Begin(ctx)
		suite.Require().NoError(err)

		current, err := txUow.OrderRepository().Get(ctx, orderID)
		suite.Require().NoError(err)

		err = transition.apply(current)
		suite.Require().NoError(err)

		err = txUow.OrderRepository().Update(ctx, current)
		suite.Require().NoError(err)

		err = txUow.Commit(ctx)
		suite.Require().NoError(err)

		persisted, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
		suite.Require().NoError(err)
		suite.Equal(transition.expected, persisted.Status())
	}

	// Delivered is terminal
	final, err := suite.factory.Create().OrderRepository().Get(ctx, orderID)
	suite.Require().NoError(err)
	suite.Require().Error(final.Cancel(), "Delivered order must not be cancellable")
}

// TestUnitOfWork_PendingSweepQuery verifies the query backing the abandoned
// order sweep only returns pending orders older than the cutoff.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PendingSweepQuery() {
	ctx := context.Background()
	customerID := suite.seedCustomer("frank@example.com")

	uow := suite.factory.Create()

	staleOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)
	staleID, err := uow.OrderRepository().Add(ctx, staleOrder)
	suite.Require().NoError(err)

	paidOrder, err := order.NewOrder(customerID)
	suite.Require().NoError(err)
	paidID, err := uow.OrderRepository().Add(ctx, paidOrder)
	suite.Require().NoError(err)

	persistedPaid, err := uow.OrderRepository().Get(ctx, paidID)
	suite.Require().NoError(err)
	suite.Require().NoError(persistedPaid.MarkAsPaid())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, persistedPaid))

	// Backdate both orders so they fall before the cutoff
	err = suite.db.Exec("UPDATE orders SET created_at = created_at - interval '2 days'").Error
	suite.Require().NoError(err)

	stale, err := uow.OrderRepository().GetAllPendingCreatedBefore(ctx, time.Now().UTC().Add(-24*time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.Equal(staleID, stale[0].ID())
	suite.Equal(order.Pending, stale[0].Status())
}

// seedCustomer persists a customer outside any transaction and returns its id.
func (suite *UnitOfWorkIntegrationTestSuite) seedCustomer(email string) int64 {
	suite.T().Helper()

	c := createTestCustomer(suite.T(), email)
	id, err := suite.factory.Create().CustomerRepository().Add(context.Background(), c)
	suite.Require().NoError(err)
	return id
}

// seedProduct persists a product outside any transaction and returns its id.
func (suite *UnitOfWorkIntegrationTestSuite) seedProduct(name, price string) int64 {
	suite.T().Helper()

	p := createTestProduct(suite.T(), name, price)
	id, err := suite.factory.Create().ProductRepository().Add(context.Background(), p)
	suite.Require().NoError(err)
	return id
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
