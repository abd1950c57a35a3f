// Package error defines domain-specific errors for the Expense Tracker application.
package error

// RequestErrorCode defines error codes for request-level failures that do not
// belong to a single aggregate.
type RequestErrorCode string

const (
	ErrCodeRateLimited   RequestErrorCode = "REQ-010001"
	ErrCodeInvalidBody   RequestErrorCode = "REQ-010002"
	ErrCodeInternalError RequestErrorCode = "REQ-990001"
)
