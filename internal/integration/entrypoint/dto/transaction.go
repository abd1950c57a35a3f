package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/application/usecase/transaction"
)

// TransactionRequest is the body of transaction create and update requests.
type TransactionRequest struct {
	Amount      FlexibleValue `json:"amount"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	CategoryName  string    `json:"category_name"`
	CategoryColor string    `json:"category_color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// TransactionMutationResponse wraps a created or updated transaction.
type TransactionMutationResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToTransactionResponse converts a use case output to a TransactionResponse DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	response := TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount.InexactFloat64(),
		Date:        t.Date,
		Description: t.Description,
		Category:    t.CategoryID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.Category != nil {
		response.CategoryName = t.Category.Name
		response.CategoryColor = t.Category.Color
	}
	return response
}

// ToTransactionListResponse converts the list output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(output.Transactions)),
	}
	for i, t := range output.Transactions {
		response.Transactions[i] = ToTransactionResponse(t)
	}
	return response
}
