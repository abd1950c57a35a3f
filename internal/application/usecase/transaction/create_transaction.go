package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
// Amount and Date are kept in their submitted textual form and parsed here.
type CreateTransactionInput struct {
	Amount      string
	Date        string
	Description string
	CategoryID  string // Optional, empty means uncategorized
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if strings.TrimSpace(input.Amount) == "" || strings.TrimSpace(input.Date) == "" || strings.TrimSpace(input.Description) == "" {
		return nil, missingFieldsError("amount, date, and description are required")
	}

	f, err := parseFields(input.Amount, input.Date, input.Description, input.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction, err := entity.NewTransaction(f.amount, f.date, f.description, f.categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Debug("Transaction created",
		"transaction_id", transaction.ID,
		"category_id", transaction.CategoryID,
	)

	return &CreateTransactionOutput{
		Transaction: toTransactionOutput(transaction, findCategory(ctx, uc.categoryRepo, transaction)),
	}, nil
}

// findCategory resolves the category for a response. A failed lookup only
// degrades the response to the uncategorized label.
func findCategory(ctx context.Context, repo adapter.CategoryRepository, t *entity.Transaction) *entity.Category {
	if t.IsUncategorized() || !entity.IsValidID(t.CategoryID) {
		return nil
	}
	category, err := repo.FindByID(ctx, t.CategoryID)
	if err != nil {
		return nil
	}
	return category
}
