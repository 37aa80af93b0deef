package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"foodorder/cmd"
	httpin "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres/ledgerrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	config := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := setupDatabase(config)

	root, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(
		root.CreateAdvanceDeliveriesCommandHandler(),
		config.DeliveryTickSeconds,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&root, config.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:              goDotEnvVariable("HTTP_PORT"),
		DBHost:                goDotEnvVariable("DB_HOST"),
		DBPort:                goDotEnvVariable("DB_PORT"),
		DBUser:                goDotEnvVariable("DB_USER"),
		DBPassword:            goDotEnvVariable("DB_PASSWORD"),
		DBName:                goDotEnvVariable("DB_NAME"),
		DBSslMode:             goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:             goDotEnvVariable("REDIS_ADDR"),
		KafkaHost:             goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderStatusTopic: goDotEnvVariable("KAFKA_ORDER_STATUS_TOPIC"),
		CartStore:             goDotEnvVariable("CART_STORE"),
		TaxRateBasisPoints:    goDotEnvInt("TAX_RATE_BASIS_POINTS", services.DefaultTaxRateBasisPoints),
		DeliveryTickSeconds:   goDotEnvInt("DELIVERY_TICK_SECONDS", 2),
		HistoryExportPath:     goDotEnvVariable("HISTORY_EXPORT_PATH"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvInt(key string, fallback int) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func setupDatabase(config cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = gormDB.AutoMigrate(&orderrepo.OrderDTO{}, &ledgerrepo.LedgerDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err = ledgerrepo.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Failed to seed revenue ledger: %v", err)
	}

	return gormDB
}

func startWebServer(root *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		root.MenuCatalog(),
		root.CreateAddCartItemCommandHandler(),
		root.CreatePlaceOrderCommandHandler(),
		root.CreateProcessNextOrderCommandHandler(),
		root.CreateGetBillQueryHandler(),
		root.CreateGetQueuedOrdersQueryHandler(),
		root.CreateGetActiveDeliveriesQueryHandler(),
		root.CreateGetHistoryQueryHandler(),
		root.CreateGetRevenueQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
