package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Month      string                   `json:"month"`
	MonthLabel string                   `json:"month_label"`
	Summary    SummaryResponse          `json:"summary"`
	Pie        []PieSliceResponse       `json:"pie"`
	Monthly    MonthlyChartResponse     `json:"monthly"`
	Budgets    []BudgetRowResponse      `json:"budgets"`
	Recent     []RecentTransactionEntry `json:"recent"`
}

// SummaryResponse represents the summary cards.
type SummaryResponse struct {
	TotalExpenses    float64 `json:"total_expenses"`
	TransactionCount int     `json:"transaction_count"`
	CategoryCount    int     `json:"category_count"`
}

// PieSliceResponse represents a pie chart slice.
type PieSliceResponse struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// MonthlyChartResponse represents the stacked monthly bar chart.
type MonthlyChartResponse struct {
	Series []SeriesResponse     `json:"series"`
	Rows   []MonthlyRowResponse `json:"rows"`
}

// SeriesResponse represents one stacked series.
type SeriesResponse struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// MonthlyRowResponse represents one month of the bar chart.
type MonthlyRowResponse struct {
	Month  string             `json:"month"`
	Label  string             `json:"label"`
	Total  float64            `json:"total"`
	Values map[string]float64 `json:"values"`
}

// BudgetRowResponse represents one row of the budget vs actual table.
type BudgetRowResponse struct {
	CategoryID string  `json:"category_id"`
	Category   string  `json:"category"`
	Color      string  `json:"color"`
	Budget     float64 `json:"budget"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Status     string  `json:"status"`
}

// RecentTransactionEntry represents a recent transaction row.
type RecentTransactionEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	CategoryID  string    `json:"category_id"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	pie := make([]PieSliceResponse, len(output.Pie))
	for i, s := range output.Pie {
		pie[i] = PieSliceResponse{
			Name:  s.Name,
			Value: s.Value.InexactFloat64(),
			Color: s.Color,
		}
	}

	series := make([]SeriesResponse, len(output.Monthly.Series))
	for i, s := range output.Monthly.Series {
		series[i] = SeriesResponse{Name: s.Name, Color: s.Color}
	}

	rows := make([]MonthlyRowResponse, len(output.Monthly.Rows))
	for i, r := range output.Monthly.Rows {
		values := make(map[string]float64, len(r.Values))
		for name, amount := range r.Values {
			values[name] = amount.InexactFloat64()
		}
		rows[i] = MonthlyRowResponse{
			Month:  r.Month,
			Label:  r.Label,
			Total:  r.Total.InexactFloat64(),
			Values: values,
		}
	}

	budgets := make([]BudgetRowResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = BudgetRowResponse{
			CategoryID: b.CategoryID,
			Category:   b.Category,
			Color:      b.Color,
			Budget:     b.Budget.InexactFloat64(),
			Spent:      b.Spent.InexactFloat64(),
			Remaining:  b.Remaining.InexactFloat64(),
			Status:     string(b.Status),
		}
	}

	recent := make([]RecentTransactionEntry, len(output.Recent))
	for i, t := range output.Recent {
		recent[i] = RecentTransactionEntry{
			ID:          t.ID,
			Description: t.Description,
			Amount:      t.Amount.InexactFloat64(),
			Date:        t.Date,
			CategoryID:  t.CategoryID,
			Category:    t.Category,
			Color:       t.Color,
		}
	}

	return DashboardResponse{
		Month:      output.Month.String(),
		MonthLabel: output.Month.Label(),
		Summary: SummaryResponse{
			TotalExpenses:    output.Summary.TotalExpenses.InexactFloat64(),
			TransactionCount: output.Summary.TransactionCount,
			CategoryCount:    output.Summary.CategoryCount,
		},
		Pie:     pie,
		Monthly: MonthlyChartResponse{Series: series, Rows: rows},
		Budgets: budgets,
		Recent:  recent,
	}
}
