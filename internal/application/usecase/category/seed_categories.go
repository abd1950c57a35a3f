// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// SeedCategoriesOutput reports what the seeding pass did.
type SeedCategoriesOutput struct {
	Created []string
	Skipped []string
}

// SeedCategoriesUseCase inserts entity.DefaultCategories, leaving existing
// names untouched so it can be run more than once.
type SeedCategoriesUseCase struct {
	createUseCase *CreateCategoryUseCase
}

// NewSeedCategoriesUseCase creates a new SeedCategoriesUseCase instance.
func NewSeedCategoriesUseCase(createUseCase *CreateCategoryUseCase) *SeedCategoriesUseCase {
	return &SeedCategoriesUseCase{
		createUseCase: createUseCase,
	}
}

// Execute performs the seeding.
func (uc *SeedCategoriesUseCase) Execute(ctx context.Context) (*SeedCategoriesOutput, error) {
	output := &SeedCategoriesOutput{}

	for _, def := range entity.DefaultCategories {
		_, err := uc.createUseCase.Execute(ctx, CreateCategoryInput{
			Name:  def.Name,
			Color: def.Color,
		})
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			output.Skipped = append(output.Skipped, def.Name)
			continue
		}
		if err != nil {
			return output, fmt.Errorf("failed to seed category %q: %w", def.Name, err)
		}
		output.Created = append(output.Created, def.Name)
	}

	slog.Info("Categories seeded",
		"created", len(output.Created),
		"skipped", len(output.Skipped),
	)

	return output, nil
}
