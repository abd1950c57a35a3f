package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          string
	Amount      decimal.Decimal
	Date        time.Time
	Description string
	CategoryID  string
	Category    *CategoryOutput
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryOutput is the category a transaction resolves to. Unknown
// references resolve to the uncategorized name and fallback color.
type CategoryOutput struct {
	Name  string
	Color string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	categoryRepo    adapter.CategoryRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute returns every transaction, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	byID := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}
	for _, t := range transactions {
		output.Transactions = append(output.Transactions, toTransactionOutput(t, byID[t.CategoryID]))
	}

	return output, nil
}

func toTransactionOutput(t *entity.Transaction, category *entity.Category) *TransactionOutput {
	out := &TransactionOutput{
		ID:          t.ID,
		Amount:      t.Amount,
		Date:        t.Date,
		Description: t.Description,
		CategoryID:  t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Category: &CategoryOutput{
			Name:  entity.UncategorizedName,
			Color: entity.FallbackCategoryColor,
		},
	}

	if category != nil {
		out.Category.Name = category.Name
		out.Category.Color = category.Color
	}

	return out
}
