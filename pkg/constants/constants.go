// Package constants provides shared constants for the lendkit calculators.
package constants

// Date layouts shared between calculator inputs and rendered results.
const (
	// DateLayout is the full-date format used by calculator inputs and
	// schedule rows.
	DateLayout = "2006-01-02"

	// YearMonthLayout is the year-month format used for extra-payment timing.
	YearMonthLayout = "2006-01"

	// PayoffDateLayout is the short month-year display format for payoff dates.
	PayoffDateLayout = "Jan 2006"

	// BreakevenDateLayout is the long month-year display format for breakeven
	// dates.
	BreakevenDateLayout = "January 2006"
)

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// BiweeklyPeriodsPerYear is the number of biweekly payment periods in a year
	BiweeklyPeriodsPerYear = 26

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyEpsilon is the tolerance below which a balance counts as paid off
	CurrencyEpsilon = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// MaxSimulationMonths caps payoff simulations at 100 years so unpayable
	// inputs terminate instead of looping
	MaxSimulationMonths = 1200

	// MidMonthDay is the day-of-month cutoff used to apply once-per-month
	// extras exactly once under biweekly frequency
	MidMonthDay = 15
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the JSON API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodyBytes is the default maximum request body size (256 KB)
	DefaultMaxBodyBytes int64 = 256 * 1024
)

// UFMIP refund schedule bounds (HUD 4000.1)
const (
	// UFMIPRefundWindowMonths is the last month with a non-zero refund
	UFMIPRefundWindowMonths = 36

	// DefaultUFMIPRate is the standard upfront mortgage insurance premium rate
	DefaultUFMIPRate = 1.75
)
