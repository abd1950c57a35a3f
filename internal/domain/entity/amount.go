package entity

import "github.com/shopspring/decimal"

const (
	// AmountScale is the number of decimal places an amount column stores.
	AmountScale = 2
	// AmountIntegerDigits is the number of integer digits an amount column stores.
	AmountIntegerDigits = 13
)

var maxAmount = decimal.New(1, AmountIntegerDigits)

// AmountFitsStorage reports whether amount can be stored as decimal(15,2)
// without rounding or overflow.
func AmountFitsStorage(amount decimal.Decimal) bool {
	if amount.Exponent() < -AmountScale && !amount.Equal(amount.Truncate(AmountScale)) {
		return false
	}
	return amount.Abs().LessThan(maxAmount)
}
