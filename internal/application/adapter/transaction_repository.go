// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id string) (*entity.Transaction, error)

	// FindAll retrieves every transaction, newest first.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// Update replaces amount, description, date and category of an existing
	// transaction. Returns domainerror.ErrTransactionNotFound if the ID is unknown.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction permanently.
	// Returns domainerror.ErrTransactionNotFound if the ID is unknown.
	Delete(ctx context.Context, id string) error
}
