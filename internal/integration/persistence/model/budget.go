// Package model defines database models for persistence layer.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID         string          `gorm:"type:varchar(24);primaryKey"`
	CategoryID string          `gorm:"type:varchar(24);not null;uniqueIndex:idx_budget_category_month"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month      string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_budget_category_month;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() (*entity.Budget, error) {
	month, err := valueobject.ParseMonth(m.Month)
	if err != nil {
		return nil, fmt.Errorf("budget %s has malformed month %q: %w", m.ID, m.Month, err)
	}

	budget := &entity.Budget{
		ID:         m.ID,
		CategoryID: m.CategoryID,
		Amount:     m.Amount,
		Month:      month,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Category != nil {
		budget.Category = m.Category.ToEntity()
	}
	return budget, nil
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:         budget.ID,
		CategoryID: budget.CategoryID,
		Amount:     budget.Amount,
		Month:      budget.Month.String(),
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
	}
}
