// Package error defines domain-specific errors for the Expense Tracker application.
package error

import "errors"

// Dashboard domain errors.
var (
	// ErrInvalidDashboardMonth is returned when the month query is not in YYYY-MM form.
	ErrInvalidDashboardMonth = errors.New("invalid month, expected YYYY-MM")

	// ErrCorruptTransactionDate is returned by aggregation when a stored
	// transaction carries no usable date.
	ErrCorruptTransactionDate = errors.New("transaction has no valid date")
)

// DashboardErrorCode defines error codes for dashboard errors.
// Format: DSH-XXYYYY where XX is category and YYYY is specific error.
type DashboardErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDashboardMonth DashboardErrorCode = "DSH-010001"

	// Data integrity errors (02XXXX)
	ErrCodeCorruptTransactionDate DashboardErrorCode = "DSH-020001"
)

// DashboardError represents a dashboard error with code and message.
type DashboardError struct {
	Code    DashboardErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DashboardError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError creates a new DashboardError with the given code and message.
func NewDashboardError(code DashboardErrorCode, message string, err error) *DashboardError {
	return &DashboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
