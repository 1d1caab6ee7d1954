package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"commerce/cmd"
	httpadapter "commerce/internal/adapters/in/http"
	"commerce/internal/adapters/out/postgres/customerrepo"
	"commerce/internal/adapters/out/postgres/orderrepo"
	"commerce/internal/adapters/out/postgres/productrepo"
	"commerce/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOrderAbandonAfter = 30 * time.Minute

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	mustMigrateDatabase(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateCancelAbandonedOrdersCommandHandler(),
		configs.OrderAbandonAfter,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		OrderAbandonAfter: orderAbandonAfter(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func orderAbandonAfter() time.Duration {
	raw := goDotEnvVariable("ORDER_ABANDON_AFTER")
	if raw == "" {
		return defaultOrderAbandonAfter
	}

	duration, err := time.ParseDuration(raw)
	if err != nil || duration <= 0 {
		log.Fatalf("Invalid ORDER_ABANDON_AFTER value: %s", raw)
	}
	return duration
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDatabase(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpadapter.NewServer(
		httpadapter.Commands{
			CreateCustomer: app.CreateCreateCustomerCommandHandler(),
			UpdateCustomer: app.CreateUpdateCustomerCommandHandler(),
			DeleteCustomer: app.CreateDeleteCustomerCommandHandler(),
			CreateProduct:  app.CreateCreateProductCommandHandler(),
			UpdateProduct:  app.CreateUpdateProductCommandHandler(),
			DeleteProduct:  app.CreateDeleteProductCommandHandler(),
			CreateOrder:    app.CreateCreateOrderCommandHandler(),
			DeleteOrder:    app.CreateDeleteOrderCommandHandler(),
			MarkOrderPaid:  app.CreateMarkOrderPaidCommandHandler(),
			ShipOrder:      app.CreateShipOrderCommandHandler(),
			DeliverOrder:   app.CreateDeliverOrderCommandHandler(),
			CancelOrder:    app.CreateCancelOrderCommandHandler(),
		},
		httpadapter.Queries{
			GetCustomer:         app.CreateGetCustomerQueryHandler(),
			GetCustomerByEmail:  app.CreateGetCustomerByEmailQueryHandler(),
			GetAllCustomers:     app.CreateGetAllCustomersQueryHandler(),
			GetCustomersPaged:   app.CreateGetCustomersPagedQueryHandler(),
			GetProduct:          app.CreateGetProductQueryHandler(),
			GetAllProducts:      app.CreateGetAllProductsQueryHandler(),
			GetProductsPaged:    app.CreateGetProductsPagedQueryHandler(),
			GetOrder:            app.CreateGetOrderQueryHandler(),
			GetAllOrders:        app.CreateGetAllOrdersQueryHandler(),
			GetOrdersPaged:      app.CreateGetOrdersPagedQueryHandler(),
			GetOrdersByCustomer: app.CreateGetOrdersByCustomerQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
