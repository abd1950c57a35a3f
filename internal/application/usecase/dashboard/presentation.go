package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ChartSeries is one stacked series of the monthly chart.
type ChartSeries struct {
	Name  string
	Color string
}

// MonthlyChartRow is one bar of the monthly chart. Values holds an entry
// for every series, zero where the month has no spending.
type MonthlyChartRow struct {
	Month  string
	Label  string
	Total  decimal.Decimal
	Values map[string]decimal.Decimal
}

// MonthlyChart is the stacked bar chart input.
type MonthlyChart struct {
	Series []ChartSeries
	Rows   []MonthlyChartRow
}

// PieChartSlice is a pie slice with its display color.
type PieChartSlice struct {
	Name  string
	Value decimal.Decimal
	Color string
}

// BudgetChartRow is one row of the budget vs actual table.
type BudgetChartRow struct {
	CategoryID string
	Category   string
	Color      string
	Budget     decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal
	Status     SpendingStatus
}

// RecentTransaction is a transaction row with its category resolved.
type RecentTransaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CategoryID  string
	Category    string
	Color       string
}

// Summary feeds the summary cards.
type Summary struct {
	TotalExpenses    decimal.Decimal
	TransactionCount int
	CategoryCount    int
}

// BuildMonthlyChart shapes monthly buckets for a stacked bar chart. Series
// are the registered categories in registry order followed by
// "Uncategorized".
func BuildMonthlyChart(buckets []MonthlyBucket, registry *CategoryRegistry) MonthlyChart {
	series := make([]ChartSeries, 0, registry.Len()+1)
	for _, c := range registry.Categories() {
		series = append(series, ChartSeries{
			Name:  c.Name,
			Color: ResolveCategory(c.ID, registry).Color,
		})
	}
	series = append(series, ChartSeries{
		Name:  entity.UncategorizedName,
		Color: entity.FallbackCategoryColor,
	})

	rows := make([]MonthlyChartRow, 0, len(buckets))
	for _, b := range buckets {
		values := make(map[string]decimal.Decimal, len(series))
		for _, s := range series {
			values[s.Name] = decimal.Zero
		}
		for name, amount := range b.Subtotals {
			values[name] = amount
		}
		rows = append(rows, MonthlyChartRow{
			Month:  b.Month.String(),
			Label:  b.Label,
			Total:  b.Total,
			Values: values,
		})
	}

	return MonthlyChart{Series: series, Rows: rows}
}

// BuildPieChart attaches display colors to pie slices.
func BuildPieChart(slices []PieSlice, registry *CategoryRegistry) []PieChartSlice {
	out := make([]PieChartSlice, 0, len(slices))
	for _, s := range slices {
		out = append(out, PieChartSlice{
			Name:  s.Name,
			Value: s.Value,
			Color: registry.ColorOf(s.Name),
		})
	}
	return out
}

// BuildBudgetChart shapes category spending into budget table rows.
func BuildBudgetChart(spending []CategorySpending) []BudgetChartRow {
	out := make([]BudgetChartRow, 0, len(spending))
	for _, s := range spending {
		out = append(out, BudgetChartRow{
			CategoryID: s.CategoryID,
			Category:   s.Name,
			Color:      s.Color,
			Budget:     s.Budget,
			Spent:      s.Spent,
			Remaining:  s.Remaining,
			Status:     s.Status,
		})
	}
	return out
}

// RecentTransactions returns up to n transactions, newest date first. Ties
// are broken by creation time, newest first. The input is not modified.
func RecentTransactions(transactions []*entity.Transaction, registry *CategoryRegistry, n int) []RecentTransaction {
	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]RecentTransaction, 0, len(sorted))
	for _, t := range sorted {
		resolved := ResolveCategory(t.CategoryID, registry)
		out = append(out, RecentTransaction{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount,
			Date:        t.Date,
			CategoryID:  t.CategoryID,
			Category:    resolved.Name,
			Color:       resolved.Color,
		})
	}
	return out
}

// BuildSummary combines totals with the number of known categories.
func BuildSummary(totals Totals, registry *CategoryRegistry) Summary {
	return Summary{
		TotalExpenses:    totals.TotalExpenses,
		TransactionCount: totals.TransactionCount,
		CategoryCount:    registry.Len(),
	}
}
