package datetime

import (
	"time"

	"github.com/lendkit/lendkit/pkg/constants"
)

// Calendar abstracts how a payment schedule advances through time. Monthly
// schedules step by calendar month; biweekly schedules step by fourteen days,
// which is an approximation of true biweekly compounding equivalence rather
// than an attempt at it.
type Calendar interface {
	// AddPeriod returns the date of the payment period following t.
	AddPeriod(t time.Time) time.Time

	// PeriodsPerYear returns the number of payment periods per year.
	PeriodsPerYear() int

	// AppliesMonthlyExtra reports whether a once-per-calendar-month extra
	// payment should land on the period dated t. Under biweekly frequency two
	// periods can fall in the same calendar month, so only the period in the
	// first half of the month qualifies.
	AppliesMonthlyExtra(t time.Time) bool
}

// Monthly is the calendar for standard monthly payment schedules.
type Monthly struct{}

// AddPeriod advances one calendar month.
func (Monthly) AddPeriod(t time.Time) time.Time { return t.AddDate(0, 1, 0) }

// PeriodsPerYear returns 12.
func (Monthly) PeriodsPerYear() int { return constants.MonthsPerYear }

// AppliesMonthlyExtra always reports true; monthly periods and calendar
// months coincide.
func (Monthly) AppliesMonthlyExtra(time.Time) bool { return true }

// Biweekly is the calendar for biweekly payment schedules.
type Biweekly struct{}

// AddPeriod advances fourteen days.
func (Biweekly) AddPeriod(t time.Time) time.Time { return t.AddDate(0, 0, 14) }

// PeriodsPerYear returns 26.
func (Biweekly) PeriodsPerYear() int { return constants.BiweeklyPeriodsPerYear }

// AppliesMonthlyExtra reports true only for periods dated in the first half
// of the month.
func (Biweekly) AppliesMonthlyExtra(t time.Time) bool {
	return t.Day() <= constants.MidMonthDay
}
