// Package datetime provides date utility functions for the calculators.
package datetime

import (
	"time"

	"github.com/lendkit/lendkit/pkg/constants"
)

// ParseDate parses a full date in the 2006-01-02 layout.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(constants.DateLayout, date)
}

// ParseDateOrNow parses a full date, substituting the current date when the
// input is empty. Calculators default to "today" only when no date was
// explicitly provided.
func ParseDateOrNow(date string) (time.Time, error) {
	if date == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return ParseDate(date)
}

// MustParseDate parses a full date and panics on error. Intended for tests
// where the date string is known to be valid.
func MustParseDate(date string) time.Time {
	t, err := ParseDate(date)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMonths returns the date offset by the given number of calendar months.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// CalendarMonthSpan returns the difference between two dates in whole
// calendar months, ignoring the day of the month. The biweekly schedule
// advances by days rather than months, so elapsed time must be derived from
// the dates themselves instead of the row count.
func CalendarMonthSpan(start, end time.Time) int {
	return (end.Year()-start.Year())*constants.MonthsPerYear + int(end.Month()) - int(start.Month())
}

// WholeMonthsBetween returns the number of fully elapsed months between two
// dates, reducing the calendar-month difference by one when the end day of
// month falls short of the start day.
func WholeMonthsBetween(start, end time.Time) int {
	months := CalendarMonthSpan(start, end)
	if end.Day() < start.Day() {
		months--
	}
	return months
}
