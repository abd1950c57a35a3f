package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAmountFitsStorage(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{raw: "0", want: true},
		{raw: "12.5", want: true},
		{raw: "10.01", want: true},
		{raw: "10.010", want: true},
		{raw: "10.005", want: false},
		{raw: "0.125", want: false},
		{raw: "9999999999999.99", want: true},
		{raw: "10000000000000", want: false},
		{raw: "12345678901234567.89", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := AmountFitsStorage(decimal.RequireFromString(tt.raw)); got != tt.want {
				t.Errorf("AmountFitsStorage(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
