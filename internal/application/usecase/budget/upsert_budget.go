// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpsertBudgetInput represents the input for setting a budget.
type UpsertBudgetInput struct {
	CategoryID string
	Amount     string
	Month      string
}

// UpsertBudgetOutput represents the output of setting a budget.
type UpsertBudgetOutput struct {
	Budget *entity.Budget
}

// UpsertBudgetUseCase sets the budget of a category for a month, creating it
// on first use and overwriting the amount afterwards.
type UpsertBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the upsert.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	categoryID := strings.TrimSpace(input.CategoryID)
	rawAmount := strings.TrimSpace(input.Amount)
	rawMonth := strings.TrimSpace(input.Month)

	if categoryID == "" || rawAmount == "" || rawMonth == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"category, amount, and month are required",
			domainerror.ErrMissingBudgetFields,
		)
	}

	if !entity.IsValidID(categoryID) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"invalid category ID",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || amount.IsNegative() || !entity.AmountFitsStorage(amount) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be a non-negative number with at most 2 decimal places and below 10000000000000",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	month, err := ParseMonth(rawMonth)
	if err != nil {
		return nil, err
	}

	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetCategoryNotFound,
				"category not found",
				domainerror.ErrBudgetCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	budget, err := entity.NewBudget(category.ID, amount, month)
	if err != nil {
		return nil, fmt.Errorf("failed to build budget: %w", err)
	}

	stored, err := uc.budgetRepo.Upsert(ctx, budget)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert budget: %w", err)
	}
	if stored.Category == nil {
		stored.Category = category
	}

	slog.Debug("Budget set",
		"category_id", category.ID,
		"month", month.String(),
		"amount", amount.String(),
	)

	return &UpsertBudgetOutput{Budget: stored}, nil
}

// ParseMonth validates a month token and reports it as a coded budget error.
func ParseMonth(raw string) (valueobject.Month, error) {
	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		return valueobject.Month{}, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	return month, nil
}
