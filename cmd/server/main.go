package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "cordelia-backend/internal/api/http"
	"cordelia-backend/internal/config"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/logger"
	"cordelia-backend/internal/repository/postgres"
	"cordelia-backend/internal/service"
	"cordelia-backend/internal/storage"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present so local overrides reach config.Load
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Cordelia Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Image Storage
	logger.Info("Using local image storage", "upload_dir", cfg.Storage.UploadDir)
	images, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize image storage", "error", err)
		log.Fatalf("Failed to initialize image storage: %v", err)
	}

	// Lifecycle rules from config
	rules := lifecycle.Rules{
		RentGraceDays:        int(cfg.Lifecycle.RentGraceDays),
		MaintenanceGraceDays: int(cfg.Lifecycle.MaintenanceGraceDays),
		TaxPercent:           cfg.Lifecycle.TaxPercent,
	}

	// Initialize Services
	reconcileSvc := service.NewReconcileService(store)
	inventorySvc := service.NewInventoryService(store, reconcileSvc)
	rentalSvc := service.NewRentalService(store, rules)
	maintenanceSvc := service.NewMaintenanceService(store, rules)
	saleSvc := service.NewSaleService(store)
	customerSvc := service.NewCustomerService(store)
	reportSvc := service.NewReportService(store)

	// Build route table
	router := httpapi.NewRouter(&httpapi.Services{
		Inventory:   inventorySvc,
		Rental:      rentalSvc,
		Maintenance: maintenanceSvc,
		Sale:        saleSvc,
		Customer:    customerSvc,
		Reconcile:   reconcileSvc,
		Report:      reportSvc,
		Store:       store,
		Images:      images,
	}, cfg)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
