// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetMonthRequired is returned when the month parameter is missing.
	ErrBudgetMonthRequired = errors.New("month is required")

	// ErrInvalidBudgetMonth is returned when the month is not in YYYY-MM form.
	ErrInvalidBudgetMonth = errors.New("invalid budget month")

	// ErrInvalidBudgetAmount is returned when the amount is not a non-negative number.
	ErrInvalidBudgetAmount = errors.New("invalid budget amount")

	// ErrInvalidBudgetCategory is returned when the category reference is not a valid ID.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrBudgetCategoryNotFound is returned when the referenced category does not exist.
	ErrBudgetCategoryNotFound = errors.New("budget category not found")

	// ErrMissingBudgetFields is returned when category, amount or month is absent.
	ErrMissingBudgetFields = errors.New("category, amount, and month are required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeBudgetMonthRequired   BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BUD-010002"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BUD-010003"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BUD-010004"
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BUD-010005"

	// Lookup errors (02XXXX)
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BUD-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
