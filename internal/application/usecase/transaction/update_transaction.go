package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Every field is replaced, so all of them are required.
type UpdateTransactionInput struct {
	TransactionID string
	Amount        string
	Date          string
	Description   string
	CategoryID    string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := ValidateTransactionID(input.TransactionID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Amount) == "" ||
		strings.TrimSpace(input.Date) == "" ||
		strings.TrimSpace(input.Description) == "" ||
		strings.TrimSpace(input.CategoryID) == "" {
		return nil, missingFieldsError("all fields are required")
	}

	f, err := parseFields(input.Amount, input.Date, input.Description, input.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, mapNotFound(err, "failed to find transaction")
	}

	transaction.Amount = f.amount
	transaction.Date = f.date
	transaction.Description = f.description
	transaction.CategoryID = f.categoryID
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, mapNotFound(err, "failed to update transaction")
	}

	return &UpdateTransactionOutput{
		Transaction: toTransactionOutput(transaction, findCategory(ctx, uc.categoryRepo, transaction)),
	}, nil
}

// mapNotFound turns the repository sentinel into a coded error and wraps
// anything else as a store failure.
func mapNotFound(err error, action string) error {
	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	return fmt.Errorf("%s: %w", action, err)
}
