package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "pos-backend/internal/api/http"
	"pos-backend/internal/config"
	"pos-backend/internal/logger"
	"pos-backend/internal/pricing"
	"pos-backend/internal/repository/postgres"
	"pos-backend/internal/security"
	"pos-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting POS Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Pricing
	calc := pricing.NewCalculator(cfg.Pricing.TaxRateBasisPoints)

	// Initialize Services
	authSvc := service.NewAuthService(store.EmployeeRepository, tokenManager)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository)
	inventorySvc := service.NewInventoryService(store.ItemRepository)
	saleSvc := service.NewSaleService(
		store.TxManager,
		store.SaleRepository,
		store.ItemRepository,
		store.EmployeeRepository,
		store.CouponRepository,
		calc,
	)
	rentalSvc := service.NewRentalService(
		store.TxManager,
		store.RentalRepository,
		store.ItemRepository,
		store.CustomerRepository,
		store.EmployeeRepository,
		calc,
	)
	returnSvc := service.NewReturnService(
		store.TxManager,
		store.ReturnRepository,
		store.RentalRepository,
		store.ItemRepository,
		store.EmployeeRepository,
	)

	// Set up HTTP server
	server := httpapi.NewServer(
		authSvc,
		employeeSvc,
		inventorySvc,
		saleSvc,
		rentalSvc,
		returnSvc,
		tokenManager,
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), server.Router()); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
