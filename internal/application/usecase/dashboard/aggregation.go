package dashboard

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// SpendingStatus tells whether a category went over its budget.
type SpendingStatus string

const (
	StatusUnder SpendingStatus = "under"
	StatusOver  SpendingStatus = "over"
)

// ResolvedCategory is the display identity a transaction aggregates under.
type ResolvedCategory struct {
	Name  string
	Color string
}

// MonthlyBucket holds the spending of one calendar month.
type MonthlyBucket struct {
	Month     valueobject.Month
	Label     string
	Total     decimal.Decimal
	Subtotals map[string]decimal.Decimal // keyed by resolved category name
}

// PieSlice is the total spent under one resolved category name.
type PieSlice struct {
	Name  string
	Value decimal.Decimal
}

// CategorySpending compares what a category spent against its budget.
type CategorySpending struct {
	CategoryID string
	Name       string
	Color      string
	Spent      decimal.Decimal
	Budget     decimal.Decimal
	Remaining  decimal.Decimal
	Status     SpendingStatus
}

// Totals are the headline figures over every loaded transaction.
type Totals struct {
	TotalExpenses    decimal.Decimal
	TransactionCount int
}

// ResolveCategory maps a transaction's category reference to a name and
// color. Unknown references and the uncategorized sentinel resolve to
// "Uncategorized" with the fallback color.
func ResolveCategory(ref string, registry *CategoryRegistry) ResolvedCategory {
	if c, ok := registry.Lookup(ref); ok {
		color := c.Color
		if color == "" {
			color = entity.FallbackCategoryColor
		}
		return ResolvedCategory{Name: c.Name, Color: color}
	}
	return ResolvedCategory{
		Name:  entity.UncategorizedName,
		Color: entity.FallbackCategoryColor,
	}
}

// AggregateByMonth groups transactions into calendar months ordered from
// oldest to newest. A transaction without a date is a data-integrity
// failure and aborts the aggregation.
func AggregateByMonth(transactions []*entity.Transaction, registry *CategoryRegistry) ([]MonthlyBucket, error) {
	buckets := make(map[valueobject.Month]*MonthlyBucket)

	for _, t := range transactions {
		if t.Date.IsZero() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeCorruptTransactionDate,
				fmt.Sprintf("transaction %s has no valid date", t.ID),
				domainerror.ErrCorruptTransactionDate,
			)
		}

		month := valueobject.MonthOf(t.Date.UTC())
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthlyBucket{
				Month:     month,
				Label:     month.Label(),
				Total:     decimal.Zero,
				Subtotals: make(map[string]decimal.Decimal),
			}
			buckets[month] = bucket
		}

		name := ResolveCategory(t.CategoryID, registry).Name
		bucket.Subtotals[name] = bucket.Subtotals[name].Add(t.Amount)
		bucket.Total = bucket.Total.Add(t.Amount)
	}

	result := make([]MonthlyBucket, 0, len(buckets))
	for _, b := range buckets {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Month.Before(result[j].Month)
	})

	return result, nil
}

// AggregateByCategory sums transaction amounts per resolved category name.
// Slices appear in the order their name is first met in the input.
func AggregateByCategory(transactions []*entity.Transaction, registry *CategoryRegistry) []PieSlice {
	index := make(map[string]int)
	slices := make([]PieSlice, 0)

	for _, t := range transactions {
		name := ResolveCategory(t.CategoryID, registry).Name
		i, ok := index[name]
		if !ok {
			i = len(slices)
			index[name] = i
			slices = append(slices, PieSlice{Name: name, Value: decimal.Zero})
		}
		slices[i].Value = slices[i].Value.Add(t.Amount)
	}

	return slices
}

// ComputeCategorySpending returns one entry per registered category. Spent
// covers every given transaction regardless of month; only the budget is
// looked up for the selected month.
func ComputeCategorySpending(
	registry *CategoryRegistry,
	transactions []*entity.Transaction,
	budgets *BudgetIndex,
	month valueobject.Month,
) []CategorySpending {
	return computeSpending(registry, transactions, budgets, month, func(*entity.Transaction) bool {
		return true
	})
}

// ComputeMonthlyCategorySpending is ComputeCategorySpending with Spent
// restricted to transactions dated within the selected month.
func ComputeMonthlyCategorySpending(
	registry *CategoryRegistry,
	transactions []*entity.Transaction,
	budgets *BudgetIndex,
	month valueobject.Month,
) []CategorySpending {
	return computeSpending(registry, transactions, budgets, month, func(t *entity.Transaction) bool {
		return month.Contains(t.Date.UTC())
	})
}

func computeSpending(
	registry *CategoryRegistry,
	transactions []*entity.Transaction,
	budgets *BudgetIndex,
	month valueobject.Month,
	include func(*entity.Transaction) bool,
) []CategorySpending {
	spent := make(map[string]decimal.Decimal, registry.Len())
	for _, t := range transactions {
		if !include(t) {
			continue
		}
		if _, ok := registry.Lookup(t.CategoryID); ok {
			spent[t.CategoryID] = spent[t.CategoryID].Add(t.Amount)
		}
	}

	result := make([]CategorySpending, 0, registry.Len())
	for _, c := range registry.Categories() {
		budget := budgets.Amount(c.ID, month)
		remaining := budget.Sub(spent[c.ID])

		status := StatusUnder
		if remaining.IsNegative() {
			status = StatusOver
		}

		result = append(result, CategorySpending{
			CategoryID: c.ID,
			Name:       c.Name,
			Color:      ResolveCategory(c.ID, registry).Color,
			Spent:      spent[c.ID],
			Budget:     budget,
			Remaining:  remaining,
			Status:     status,
		})
	}

	return result
}

// ComputeTotals sums every transaction. It is a running total and is not
// scoped to any month.
func ComputeTotals(transactions []*entity.Transaction) Totals {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return Totals{
		TotalExpenses:    total,
		TransactionCount: len(transactions),
	}
}
