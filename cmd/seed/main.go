package main

import (
	"context"
	"database/sql"
	"flag"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cordelia-backend/internal/config"
	"cordelia-backend/internal/lifecycle"
	"cordelia-backend/internal/logger"
	"cordelia-backend/internal/repository/postgres"
	"cordelia-backend/internal/seed"
	"cordelia-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	dresses := flag.Int("dresses", 400, "Number of dresses to generate")
	customers := flag.Int("customers", 250, "Number of customers to generate")
	rents := flag.Int("rents", 620, "Number of rents to attempt")
	sales := flag.Int("sales", 120, "Number of sales to attempt")
	days := flag.Int("days", 180, "History window in days")
	rngSeed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
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
	logger.Info("Starting Cordelia Seeder...")

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	rules := lifecycle.Rules{
		RentGraceDays:        int(cfg.Lifecycle.RentGraceDays),
		MaintenanceGraceDays: int(cfg.Lifecycle.MaintenanceGraceDays),
		TaxPercent:           cfg.Lifecycle.TaxPercent,
	}

	reconcileSvc := service.NewReconcileService(store)
	seeder := seed.New(
		service.NewInventoryService(store, reconcileSvc),
		service.NewCustomerService(store),
		service.NewRentalService(store, rules),
		service.NewMaintenanceService(store, rules),
		service.NewSaleService(store),
		reconcileSvc,
		store,
		*rngSeed,
	)

	opts := seed.Options{
		Dresses:   *dresses,
		Customers: *customers,
		Rents:     *rents,
		Sales:     *sales,
		Days:      *days,
		Seed:      *rngSeed,
	}

	if err := seeder.Run(context.Background(), opts); err != nil {
		logger.Error("Seeding failed", "error", err)
		log.Fatalf("Seeding failed: %v", err)
	}
	logger.Info("Seeding finished successfully")
}
