// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// Budget is the planned spending for one category in one month.
// At most one Budget exists per (CategoryID, Month).
type Budget struct {
	ID         string
	CategoryID string
	Category   *Category // Resolved on read, nil when the reference dangles
	Amount     decimal.Decimal
	Month      valueobject.Month
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(categoryID string, amount decimal.Decimal, month valueobject.Month) (*Budget, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	return &Budget{
		ID:         id,
		CategoryID: categoryID,
		Amount:     amount,
		Month:      month,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}
