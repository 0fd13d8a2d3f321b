package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellnesstips/internal/config"
	"wellnesstips/internal/db"
	"wellnesstips/internal/handlers"
	"wellnesstips/internal/jobs"
	"wellnesstips/internal/metrics"
	"wellnesstips/internal/server"
	"wellnesstips/internal/tips"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Load the catalog once. A broken source leaves the service running on
	// an empty catalog unless REQUIRE_CATALOG is set.
	catalog, err := tips.LoadOrEmpty(cfg.TipsFile)
	if err != nil {
		if cfg.RequireCatalog {
			log.Fatalf("Failed to load tips catalog: %v", err)
		}
		log.Printf("Warning: failed to load tips catalog, serving fallback tips only: %v", err)
	} else {
		log.Printf("Loaded %d moods from %s", catalog.Len(), cfg.TipsFile)
	}

	// Lookup statistics are optional
	var pinger handlers.Pinger
	var statsStore metrics.Store
	if cfg.StatsEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Migrations completed successfully")

		pinger = database
		statsStore = database

		pruner := jobs.NewStatsPruner(database, time.Hour, cfg.StatsRetention)
		go pruner.Start(ctx)
	} else {
		log.Println("Lookup statistics disabled. Set DATABASE_URL to enable.")
	}

	metrics.Init(statsStore)

	srv := server.New(cfg)
	srv.RegisterRoutes(catalog, pinger)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (REST %s/tips/happy, MCP %s/mcp)", cfg.ServerAddr, cfg.BaseURL, cfg.BaseURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	metrics.Flush()
	log.Println("Server exited")
}
