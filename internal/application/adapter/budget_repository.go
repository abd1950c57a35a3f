// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert stores the budget for (CategoryID, Month), overwriting the amount
	// of an existing row for the same pair. It returns the stored budget.
	Upsert(ctx context.Context, budget *entity.Budget) (*entity.Budget, error)

	// FindByMonth retrieves the budgets of a month with their category resolved.
	FindByMonth(ctx context.Context, month valueobject.Month) ([]*entity.Budget, error)
}
