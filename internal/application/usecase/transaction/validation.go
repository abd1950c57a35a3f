// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
	MaxDescriptionLength = 255
	// DateLayout is the calendar date form accepted besides RFC 3339.
	DateLayout = "2006-01-02"
)

// ParseAmount parses a decimal amount. Amounts are expense magnitudes, so
// negative values are rejected; zero is allowed.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if amount.IsNegative() {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if !entity.AmountFitsStorage(amount) {
		return decimal.Zero, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most 2 decimal places and be below 10000000000000",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	return amount, nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns it in UTC.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, domainerror.NewTransactionError(
		domainerror.ErrCodeInvalidTransactionDate,
		"date must be YYYY-MM-DD or RFC 3339",
		domainerror.ErrInvalidTransactionDate,
	)
}

// ValidateTransactionID rejects ids that are not 24 character hex tokens.
func ValidateTransactionID(id string) error {
	if !entity.IsValidID(id) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionID,
			"invalid transaction ID",
			domainerror.ErrInvalidTransactionID,
		)
	}
	return nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)

	if description == "" {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionRequired,
			"description is required",
			domainerror.ErrDescriptionRequired,
		)
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return "", domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	return description, nil
}

// fields holds the validated, typed form of a transaction payload.
type fields struct {
	amount      decimal.Decimal
	date        time.Time
	description string
	categoryID  string
}

func parseFields(amount, date, description, categoryID string) (*fields, error) {
	parsedAmount, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	parsedDate, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	desc, err := validateDescription(description)
	if err != nil {
		return nil, err
	}

	return &fields{
		amount:      parsedAmount,
		date:        parsedDate,
		description: desc,
		categoryID:  strings.TrimSpace(categoryID),
	}, nil
}

func missingFieldsError(message string) error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeMissingTransactionFields,
		message,
		domainerror.ErrMissingTransactionFields,
	)
}
