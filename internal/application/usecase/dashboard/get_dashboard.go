package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// DefaultRecentCount is the number of recent transactions shown when no
// other value is configured.
const DefaultRecentCount = 5

// Options tunes the dashboard use case.
type Options struct {
	// MonthScopedSpending restricts budget vs actual spending to the
	// selected month. When false, spending covers every transaction.
	MonthScopedSpending bool
	// RecentCount is the number of recent transactions returned.
	RecentCount int
	// Now returns the current time; used when no month is requested.
	Now func() time.Time
}

// GetDashboardInput represents the input for the dashboard.
type GetDashboardInput struct {
	Month string // "YYYY-MM", empty means the current month
}

// GetDashboardOutput is every view of the dashboard for one month.
type GetDashboardOutput struct {
	Month   valueobject.Month
	Summary Summary
	Pie     []PieChartSlice
	Monthly MonthlyChart
	Budgets []BudgetChartRow
	Recent  []RecentTransaction
}

// GetDashboardUseCase loads transactions, categories and budgets, then
// recomputes every aggregate from that snapshot.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
	budgetRepo      adapter.BudgetRepository
	opts            Options
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	budgetRepo adapter.BudgetRepository,
	opts Options,
) *GetDashboardUseCase {
	if opts.RecentCount <= 0 {
		opts.RecentCount = DefaultRecentCount
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
		opts:            opts,
	}
}

// Execute builds the dashboard.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	month, err := uc.resolveMonth(input.Month)
	if err != nil {
		return nil, err
	}

	var (
		transactions []*entity.Transaction
		categories   []*entity.Category
		budgets      []*entity.Budget
	)

	// Aggregation only runs on a complete snapshot; the first failed fetch
	// cancels the others.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = uc.transactionRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = uc.categoryRepo.FindAll(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.FindByMonth(gctx, month)
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	registry := NewCategoryRegistry(categories)
	budgetIndex := NewBudgetIndex(budgets)

	buckets, err := AggregateByMonth(transactions, registry)
	if err != nil {
		slog.Error("Dashboard aggregation failed", "month", month.String(), "error", err)
		return nil, err
	}

	var spending []CategorySpending
	if uc.opts.MonthScopedSpending {
		spending = ComputeMonthlyCategorySpending(registry, transactions, budgetIndex, month)
	} else {
		spending = ComputeCategorySpending(registry, transactions, budgetIndex, month)
	}

	return &GetDashboardOutput{
		Month:   month,
		Summary: BuildSummary(ComputeTotals(transactions), registry),
		Pie:     BuildPieChart(AggregateByCategory(transactions, registry), registry),
		Monthly: BuildMonthlyChart(buckets, registry),
		Budgets: BuildBudgetChart(spending),
		Recent:  RecentTransactions(transactions, registry, uc.opts.RecentCount),
	}, nil
}

func (uc *GetDashboardUseCase) resolveMonth(raw string) (valueobject.Month, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return valueobject.MonthOf(uc.opts.Now().UTC()), nil
	}

	month, err := valueobject.ParseMonth(raw)
	if err != nil {
		return valueobject.Month{}, domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDashboardMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidDashboardMonth,
		)
	}
	return month, nil
}
