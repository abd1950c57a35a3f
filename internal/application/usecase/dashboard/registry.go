// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// CategoryRegistry is a lookup of category id to category, keeping the
// order the categories were loaded in.
type CategoryRegistry struct {
	categories []*entity.Category
	byID       map[string]*entity.Category
	byName     map[string]*entity.Category
}

// NewCategoryRegistry builds a registry from a category list.
func NewCategoryRegistry(categories []*entity.Category) *CategoryRegistry {
	r := &CategoryRegistry{
		categories: make([]*entity.Category, 0, len(categories)),
		byID:       make(map[string]*entity.Category, len(categories)),
		byName:     make(map[string]*entity.Category, len(categories)),
	}
	for _, c := range categories {
		if c == nil {
			continue
		}
		r.categories = append(r.categories, c)
		r.byID[c.ID] = c
		r.byName[c.Name] = c
	}
	return r
}

// Lookup returns the category with the given id.
func (r *CategoryRegistry) Lookup(id string) (*entity.Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// ColorOf returns the color of the category with the given name, or the
// fallback color.
func (r *CategoryRegistry) ColorOf(name string) string {
	if c, ok := r.byName[name]; ok && c.Color != "" {
		return c.Color
	}
	return entity.FallbackCategoryColor
}

// Categories returns the registered categories in load order.
func (r *CategoryRegistry) Categories() []*entity.Category {
	return r.categories
}

// Len returns the number of registered categories.
func (r *CategoryRegistry) Len() int {
	return len(r.categories)
}

type budgetKey struct {
	categoryID string
	month      valueobject.Month
}

// BudgetIndex is a lookup of (category, month) to the budgeted amount.
type BudgetIndex struct {
	amounts map[budgetKey]decimal.Decimal
}

// NewBudgetIndex builds an index from a budget list. If the list holds two
// budgets for the same pair the later one wins.
func NewBudgetIndex(budgets []*entity.Budget) *BudgetIndex {
	idx := &BudgetIndex{amounts: make(map[budgetKey]decimal.Decimal, len(budgets))}
	for _, b := range budgets {
		if b == nil {
			continue
		}
		idx.amounts[budgetKey{categoryID: b.CategoryID, month: b.Month}] = b.Amount
	}
	return idx
}

// Amount returns the budget for the pair, or zero when none is set.
func (i *BudgetIndex) Amount(categoryID string, month valueobject.Month) decimal.Decimal {
	if amount, ok := i.amounts[budgetKey{categoryID: categoryID, month: month}]; ok {
		return amount
	}
	return decimal.Zero
}
