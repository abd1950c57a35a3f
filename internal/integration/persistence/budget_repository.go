// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert inserts the budget or, when (category_id, month) already exists,
// overwrites its amount. The stored row is read back with its category.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error) {
	budgetModel := model.BudgetFromEntity(budget)

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "category_id"}, {Name: "month"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "updated_at"}),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored model.BudgetModel
	result = r.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ? AND month = ?", budgetModel.CategoryID, budgetModel.Month).
		First(&stored)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to read back budget: %w", result.Error)
	}

	return stored.ToEntity()
}

// FindByMonth retrieves the budgets of a month with their category preloaded.
func (r *budgetRepository) FindByMonth(ctx context.Context, month valueobject.Month) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("month = ?", month.String()).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		b, err := budgetModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}
