// Package main inserts the default spending categories. Categories that
// already exist are left untouched, so the command can be run repeatedly.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/expense-tracker/backend/config"
	"github.com/expense-tracker/backend/internal/application/usecase/category"
	"github.com/expense-tracker/backend/internal/infra/db"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(context.Background()); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	database, err := db.Open(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(persistence.Models()...); err != nil {
		return err
	}

	repo := persistence.NewCategoryRepository(database.DB())
	seed := category.NewSeedCategoriesUseCase(category.NewCreateCategoryUseCase(repo))

	output, err := seed.Execute(ctx)
	if err != nil {
		return err
	}

	for _, name := range output.Created {
		slog.Info("Category created", "name", name)
	}
	for _, name := range output.Skipped {
		slog.Info("Category already exists", "name", name)
	}
	slog.Info("Seeding completed", "created", len(output.Created), "skipped", len(output.Skipped))
	return nil
}
