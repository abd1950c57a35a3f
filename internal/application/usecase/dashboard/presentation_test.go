package dashboard

import (
	"testing"
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

func TestBuildMonthlyChart(t *testing.T) {
	s := newScenario(t)
	buckets, err := AggregateByMonth(s.transactions, s.registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	chart := BuildMonthlyChart(buckets, s.registry)

	wantSeries := []string{"Food", "Travel", entity.UncategorizedName}
	if len(chart.Series) != len(wantSeries) {
		t.Fatalf("expected %d series, got %d", len(wantSeries), len(chart.Series))
	}
	for i, name := range wantSeries {
		if chart.Series[i].Name != name {
			t.Errorf("series %d: expected %s, got %s", i, name, chart.Series[i].Name)
		}
	}
	if chart.Series[2].Color != entity.FallbackCategoryColor {
		t.Errorf("expected fallback color for uncategorized series, got %s", chart.Series[2].Color)
	}

	if len(chart.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(chart.Rows))
	}
	feb := chart.Rows[1]
	if feb.Month != "2024-02" || feb.Label != "Feb 2024" {
		t.Errorf("unexpected row identity %s / %s", feb.Month, feb.Label)
	}
	for _, name := range wantSeries {
		if _, ok := feb.Values[name]; !ok {
			t.Errorf("expected a value for %s in every row", name)
		}
	}
	assertDecimal(t, "feb travel", feb.Values["Travel"], "0")
	assertDecimal(t, "feb food", feb.Values["Food"], "5")
}

func TestBuildPieChart(t *testing.T) {
	s := newScenario(t)
	s.transactions = append(s.transactions, newTransaction(t, "7", "2024-02-02", ""))

	pie := BuildPieChart(AggregateByCategory(s.transactions, s.registry), s.registry)

	colors := map[string]string{}
	for _, slice := range pie {
		colors[slice.Name] = slice.Color
	}
	if colors["Food"] != "#f00" || colors["Travel"] != "#0f0" {
		t.Errorf("unexpected category colors %v", colors)
	}
	if colors[entity.UncategorizedName] != entity.FallbackCategoryColor {
		t.Errorf("expected fallback color for uncategorized, got %s", colors[entity.UncategorizedName])
	}
}

func TestBuildBudgetChart(t *testing.T) {
	s := newScenario(t)

	rows := BuildBudgetChart(ComputeCategorySpending(s.registry, s.transactions, s.budgets, mustMonth(t, "2024-01")))
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Category != "Food" || rows[0].Color != "#f00" || rows[0].CategoryID != s.food.ID {
		t.Errorf("unexpected first row %+v", rows[0])
	}
	assertDecimal(t, "food remaining", rows[0].Remaining, "15")
	if rows[1].Status != StatusOver {
		t.Errorf("expected travel over budget, got %s", rows[1].Status)
	}
}

func TestRecentTransactions(t *testing.T) {
	s := newScenario(t)
	sameDay := newTransaction(t, "1", "2024-02-01", "")
	sameDay.CreatedAt = s.transactions[2].CreatedAt.Add(time.Second)
	all := append([]*entity.Transaction{}, s.transactions...)
	all = append(all, sameDay)

	recent := RecentTransactions(all, s.registry, 3)
	if len(recent) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(recent))
	}
	if recent[0].ID != sameDay.ID {
		t.Errorf("expected the later-created same-day transaction first")
	}
	if recent[1].ID != s.transactions[2].ID {
		t.Errorf("expected the February food transaction second")
	}
	if recent[2].ID != s.transactions[1].ID {
		t.Errorf("expected the January travel transaction third")
	}
	if recent[0].Category != entity.UncategorizedName {
		t.Errorf("expected uncategorized, got %s", recent[0].Category)
	}

	if all[0].ID != s.transactions[0].ID {
		t.Error("input order must not change")
	}

	if got := RecentTransactions(all, s.registry, 10); len(got) != len(all) {
		t.Errorf("expected all %d transactions, got %d", len(all), len(got))
	}
}

func TestBuildSummary(t *testing.T) {
	s := newScenario(t)

	summary := BuildSummary(ComputeTotals(s.transactions), s.registry)
	assertDecimal(t, "total", summary.TotalExpenses, "35")
	if summary.TransactionCount != 3 || summary.CategoryCount != 2 {
		t.Errorf("unexpected summary %+v", summary)
	}
}
