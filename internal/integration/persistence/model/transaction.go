// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// CategoryID is a plain reference: it may hold the uncategorized sentinel
// or the id of a category that no longer exists, so no foreign key is declared.
type TransactionModel struct {
	ID          string          `gorm:"type:varchar(24);primaryKey"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	CategoryID  string          `gorm:"type:varchar(24);not null;default:'Uncategorized';index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		Amount:      m.Amount,
		Date:        m.Date.UTC(),
		Description: m.Description,
		CategoryID:  m.CategoryID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	categoryID := transaction.CategoryID
	if categoryID == "" {
		categoryID = entity.UncategorizedCategoryID
	}

	return &TransactionModel{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Date:        transaction.Date,
		Description: transaction.Description,
		CategoryID:  categoryID,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
