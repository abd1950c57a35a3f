package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

func newCategory(t *testing.T, name, color string) *entity.Category {
	t.Helper()
	c, err := entity.NewCategory(name, color)
	if err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return c
}

func newTransaction(t *testing.T, amount string, date string, categoryID string) *entity.Transaction {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	txn, err := entity.NewTransaction(decimal.RequireFromString(amount), d, "test", categoryID)
	if err != nil {
		t.Fatalf("failed to create transaction: %v", err)
	}
	return txn
}

func newBudget(t *testing.T, categoryID, amount, month string) *entity.Budget {
	t.Helper()
	m, err := valueobject.ParseMonth(month)
	if err != nil {
		t.Fatalf("bad test month %q: %v", month, err)
	}
	b, err := entity.NewBudget(categoryID, decimal.RequireFromString(amount), m)
	if err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
	return b
}

func mustMonth(t *testing.T, s string) valueobject.Month {
	t.Helper()
	m, err := valueobject.ParseMonth(s)
	if err != nil {
		t.Fatalf("bad test month %q: %v", s, err)
	}
	return m
}

func assertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

// scenario is the food/travel fixture used across the aggregation tests.
type scenario struct {
	food, travel *entity.Category
	registry     *CategoryRegistry
	transactions []*entity.Transaction
	budgets      *BudgetIndex
}

func newScenario(t *testing.T) scenario {
	t.Helper()
	food := newCategory(t, "Food", "#f00")
	travel := newCategory(t, "Travel", "#0f0")
	return scenario{
		food:     food,
		travel:   travel,
		registry: NewCategoryRegistry([]*entity.Category{food, travel}),
		transactions: []*entity.Transaction{
			newTransaction(t, "10", "2024-01-05", food.ID),
			newTransaction(t, "20", "2024-01-15", travel.ID),
			newTransaction(t, "5", "2024-02-01", food.ID),
		},
		budgets: NewBudgetIndex([]*entity.Budget{newBudget(t, food.ID, "30", "2024-01")}),
	}
}
