// Package main is the entry point for the Expense Tracker API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/infra/cache"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/infra/dependency"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Starting Expense Tracker API",
		"environment", cfg.Server.Environment,
		"address", cfg.Server.Address(),
		"database_driver", cfg.Database.Driver,
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	manager := db.NewManager(&cfg.Database, nil)
	defer func() {
		if err := manager.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	database, err := manager.Get(ctx)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}
	slog.Info("Database migrations completed successfully")

	var limitStore middleware.RateLimitStore
	if cfg.RateLimit.Backend == config.RateLimitBackendRedis {
		client, err := cache.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection failed: %w", err)
		}
		defer client.Close()
		limitStore = middleware.NewRedisRateLimitStore(client)
	} else {
		memoryStore := middleware.NewMemoryRateLimitStore()
		go cleanupRateLimits(ctx, memoryStore, cfg.RateLimit.Window)
		limitStore = memoryStore
	}

	injector := dependency.NewInjector(cfg, database.DB(), manager.HealthCheck, limitStore)

	if cfg.Seed.OnStartup {
		output, err := injector.SeedUseCase.Execute(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed default categories: %w", err)
		}
		slog.Info("Default categories seeded",
			"created", len(output.Created),
			"skipped", len(output.Skipped),
		)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	}

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server exited properly")
	return nil
}

// cleanupRateLimits drops expired windows from the in-memory store until ctx ends.
func cleanupRateLimits(ctx context.Context, store *middleware.MemoryRateLimitStore, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			store.Cleanup()
		}
	}
}
