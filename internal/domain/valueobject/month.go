// Package valueobject contains domain value objects for the Expense Tracker system.
package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// MonthLayout is the canonical textual form of a Month.
const MonthLayout = "2006-01"

// ErrInvalidMonth is returned when a month token is not in YYYY-MM form.
var ErrInvalidMonth = errors.New("month must be in YYYY-MM format")

var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// Month is a calendar month of a specific year.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" token.
func ParseMonth(s string) (Month, error) {
	if len(s) != len(MonthLayout) {
		return Month{}, ErrInvalidMonth
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t, in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// String returns the canonical "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Label returns a human label such as "Jan 2024". It does not depend on locale.
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", monthAbbreviations[m.Month], m.Year)
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	if m.Year != other.Year {
		return m.Year < other.Year
	}
	return m.Month < other.Month
}

// Contains reports whether t falls within the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}
