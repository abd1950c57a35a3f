package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	Month string
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles listing the budgets of a month.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute returns the month's budgets with their categories resolved.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	raw := strings.TrimSpace(input.Month)
	if raw == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetMonthRequired,
			"month is required",
			domainerror.ErrBudgetMonthRequired,
		)
	}

	month, err := ParseMonth(raw)
	if err != nil {
		return nil, err
	}

	budgets, err := uc.budgetRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{Budgets: budgets}, nil
}
