package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a budget.
type UpsertBudgetRequest struct {
	Category string        `json:"category"`
	Amount   FlexibleValue `json:"amount"`
	Month    string        `json:"month"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID        string            `json:"id"`
	Category  *CategoryResponse `json:"category"`
	Amount    float64           `json:"amount"`
	Month     string            `json:"month"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
// A budget whose category no longer resolves keeps only the category id.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	response := BudgetResponse{
		ID:        b.ID,
		Amount:    b.Amount.InexactFloat64(),
		Month:     b.Month.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Category != nil {
		category := ToCategoryResponse(b.Category)
		response.Category = &category
	} else {
		response.Category = &CategoryResponse{ID: b.CategoryID}
	}
	return response
}

// ToBudgetListResponse converts a slice of budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	response := BudgetListResponse{
		Budgets: make([]BudgetResponse, len(budgets)),
	}
	for i, b := range budgets {
		response.Budgets[i] = ToBudgetResponse(b)
	}
	return response
}
