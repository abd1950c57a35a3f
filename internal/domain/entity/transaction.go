// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedCategoryID is stored as the category reference of a
// transaction that was recorded without a category.
const UncategorizedCategoryID = "Uncategorized"

// Transaction represents a single expense. Amount is always an expense
// magnitude, there is no sign convention for income.
type Transaction struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  string // Category ID or UncategorizedCategoryID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. An empty category
// reference is replaced with UncategorizedCategoryID.
func NewTransaction(amount decimal.Decimal, date time.Time, description, categoryID string) (*Transaction, error) {
	id, err := NewID()
	if err != nil {
		return nil, err
	}

	if categoryID == "" {
		categoryID = UncategorizedCategoryID
	}

	now := time.Now().UTC()

	return &Transaction{
		ID:          id,
		Amount:      amount,
		Date:        date,
		Description: description,
		CategoryID:  categoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsUncategorized reports whether the transaction carries the uncategorized sentinel.
func (t *Transaction) IsUncategorized() bool {
	return t.CategoryID == "" || t.CategoryID == UncategorizedCategoryID
}
