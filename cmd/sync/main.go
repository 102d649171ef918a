package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"okc_stats_sync/internal/app"
	"okc_stats_sync/internal/infra/config"
	idb "okc_stats_sync/internal/infra/database"
	"okc_stats_sync/internal/infra/logger"
	"okc_stats_sync/internal/infra/okcapi"
	"okc_stats_sync/internal/infra/scheduler"
)

func main() {
	backfill := flag.Bool("backfill", false, "run the 6-month premium backfill once and exit")
	flag.Parse()

	fmt.Println("OKC Stats Sync starting...")

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatalf("Could not load application configuration: %v", err)
	}
	logger.Init(cfg)
	mainLog := logger.Component("main")
	mainLog.Infof("Configuration loaded. LogLevel: %s, Environment: %s, FetchConcurrency: %d", cfg.LogLevel, cfg.Environment, cfg.FetchConcurrency)

	// The base context owns shutdown: cancelling it stops in-flight cycles
	// at their next context check.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLog.Fatalf("Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLog.Info("Database connection established successfully.")

	// Authenticate against the reporting API
	apiClient, err := okcapi.Authenticate(ctx, cfg.OKCBaseURL, cfg.OKCUsername, cfg.OKCPassword, logger.Component("okcapi"))
	if err != nil {
		mainLog.Fatalf("Could not authenticate against reporting API: %v", err)
	}

	// Initialize Repositories
	kpiRepo := idb.NewPostgresKPIRepository(db, logger.Component("kpi_repository"))
	premiumRepo := idb.NewPostgresPremiumRepository(db, logger.Component("premium_repository"))
	mainLog.Info("Repositories initialized.")

	// Initialize Services
	kpiService := app.NewKPIService(okcapi.NewKPIAPI(apiClient), kpiRepo, cfg.FetchConcurrency, logger.Component("kpi_service"))
	premiumService := app.NewPremiumService(okcapi.NewPremiumAPI(apiClient), premiumRepo, cfg.FetchConcurrency, logger.Component("premium_service"))
	slService := app.NewSLService(okcapi.NewSLAPI(apiClient), logger.Component("sl_service"))
	mainLog.Info("Services initialized.")

	if *backfill {
		mainLog.Info("Running one-off 6-month premium backfill...")
		if err := premiumService.BackfillLastSixMonths(ctx); err != nil {
			mainLog.Fatalf("Premium backfill failed: %v", err)
		}
		mainLog.Info("Premium backfill complete.")
		return
	}

	// Initialize and start the scheduler
	syncScheduler := scheduler.NewSyncScheduler(ctx, kpiService, premiumService, slService, logger.Component("scheduler"), cfg)
	syncScheduler.Start()

	mainLog.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLog.Info("Shutting down application...")
	cancel()
	syncScheduler.Stop()
	// db.Close() is handled by defer
	mainLog.Info("Application shut down gracefully.")
}
