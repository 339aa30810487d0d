// Package report computes derived views over the transaction set:
// category totals, monthly trends, budget comparisons and period
// summaries.
package report

import (
	"fmt"
	"time"
)

// Month is a calendar month in a specific year. Month arithmetic is done
// with calendar boundaries, never 30-day windows.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month in which a time occurs.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it
// represents.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Start returns the first day of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the last day of the month.
func (m Month) End() time.Time {
	return time.Time(m).AddDate(0, 1, -1)
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}
