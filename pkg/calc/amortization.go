package calc

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/datetime"
)

// PaymentFrequency selects how often amortization payments are made.
type PaymentFrequency string

// Supported payment frequencies.
const (
	FrequencyMonthly  PaymentFrequency = "monthly"
	FrequencyBiweekly PaymentFrequency = "biweekly"
)

// Calendar returns the period calendar for the frequency. Unrecognized
// values fall back to monthly.
func (f PaymentFrequency) Calendar() datetime.Calendar {
	if f == FrequencyBiweekly {
		return datetime.Biweekly{}
	}
	return datetime.Monthly{}
}

// OneTimePayment is a single extra principal payment applied in a specific
// calendar month.
type OneTimePayment struct {
	Amount float64
	Date   string // 2006-01
}

// AmortizationInputs describes a fixed-rate loan plus optional recurring and
// one-time extra principal payments.
type AmortizationInputs struct {
	LoanAmount            float64
	InterestRate          float64 // annual %
	TermYears             int
	TermMonths            int
	StartDate             string // 2006-01-02
	PaymentFrequency      PaymentFrequency
	ExtraMonthly          float64
	ExtraMonthlyStartDate string // 2006-01
	ExtraYearly           float64
	ExtraYearlyStartDate  string // 2006-01
	OneTimePayments       []OneTimePayment
}

// AmortizationRow is one period of the payment schedule.
type AmortizationRow struct {
	PaymentNumber     int
	Date              string
	Payment           float64
	Principal         float64
	Interest          float64
	RemainingBalance  float64
	TotalInterestPaid float64
	ExtraPayment      float64
}

// AmortizationResult is the full schedule plus summary totals.
type AmortizationResult struct {
	MonthlyPayment     float64
	TotalInterest      float64
	TotalPaid          float64
	TotalExtraPayments float64
	PayoffDate         string
	Schedule           []AmortizationRow
	TotalMonths        int
}

// CalculateAmortization produces the complete per-period schedule for a
// standard or extra-payment-augmented loan. TotalMonths counts elapsed
// calendar months from the start date to the final row date rather than
// schedule rows, since biweekly periods do not line up with months.
func CalculateAmortization(in AmortizationInputs) AmortizationResult {
	totalMonths := in.TermYears*constants.MonthsPerYear + in.TermMonths
	if in.LoanAmount <= 0 || totalMonths <= 0 {
		return AmortizationResult{}
	}

	cal := in.PaymentFrequency.Calendar()
	n := totalMonths
	ratePerPeriod := annuity.PeriodicRate(in.InterestRate, constants.MonthsPerYear)
	if in.PaymentFrequency == FrequencyBiweekly {
		n = int(math.Ceil(float64(totalMonths) / constants.MonthsPerYear * constants.BiweeklyPeriodsPerYear))
		ratePerPeriod = annuity.PeriodicRate(in.InterestRate, constants.BiweeklyPeriodsPerYear)
	}

	payment := annuity.Payment(in.LoanAmount, ratePerPeriod, n)
	basePayment := payment

	start, err := datetime.ParseDateOrNow(in.StartDate)
	if err != nil {
		return AmortizationResult{}
	}

	schedule := make([]AmortizationRow, 0, n)
	balance := in.LoanAmount
	totalInterest := 0.0
	current := start

	for i := 1; i <= n; i++ {
		interest := balance * ratePerPeriod
		principal := payment - interest

		extra := 0.0
		yearMonth := current.Format(constants.YearMonthLayout)

		if in.ExtraMonthly > 0 {
			if in.ExtraMonthlyStartDate == "" || yearMonth >= in.ExtraMonthlyStartDate {
				if in.PaymentFrequency == FrequencyBiweekly {
					// Prorate the monthly extra over 26 periods per year.
					extra += in.ExtraMonthly * constants.MonthsPerYear / constants.BiweeklyPeriodsPerYear
				} else {
					extra += in.ExtraMonthly
				}
			}
		}

		if in.ExtraYearly > 0 {
			if in.ExtraYearlyStartDate == "" || yearMonth >= in.ExtraYearlyStartDate {
				if current.Month() == yearlyExtraMonth(in.ExtraYearlyStartDate, start) && cal.AppliesMonthlyExtra(current) {
					extra += in.ExtraYearly
				}
			}
		}

		for _, otp := range in.OneTimePayments {
			if otp.Date == yearMonth && cal.AppliesMonthlyExtra(current) {
				extra += otp.Amount
			}
		}

		// Cap total principal+extra at the remaining balance so the final
		// period never overshoots.
		if principal+extra > balance {
			extra = balance - principal
			if extra < 0 {
				// The base payment alone covers the balance.
				principal = balance
				extra = 0
				payment = principal + interest
			}
		}

		if balance+interest < payment {
			principal = balance
			payment = principal + interest
			extra = 0
		}

		if balance <= 0 {
			break
		}

		balance -= principal + extra
		totalInterest += interest

		schedule = append(schedule, AmortizationRow{
			PaymentNumber:     i,
			Date:              current.Format(constants.DateLayout),
			Payment:           payment + extra,
			Principal:         principal + extra,
			Interest:          interest,
			RemainingBalance:  math.Max(0, balance),
			TotalInterestPaid: totalInterest,
			ExtraPayment:      extra,
		})

		current = cal.AddPeriod(current)

		if balance < constants.CurrencyEpsilon {
			break
		}
	}

	totalPaid := 0.0
	totalExtra := 0.0
	for _, row := range schedule {
		totalPaid += row.Payment
		totalExtra += row.ExtraPayment
	}

	payoffDate := ""
	monthsElapsed := 0
	if len(schedule) > 0 {
		payoffDate = schedule[len(schedule)-1].Date
		if end, endErr := datetime.ParseDate(payoffDate); endErr == nil {
			monthsElapsed = datetime.CalendarMonthSpan(start, end) + 1
		}
	}
	if monthsElapsed <= 0 {
		monthsElapsed = len(schedule)
	}

	return AmortizationResult{
		MonthlyPayment:     basePayment,
		TotalInterest:      totalInterest,
		TotalPaid:          totalPaid,
		TotalExtraPayments: totalExtra,
		PayoffDate:         payoffDate,
		Schedule:           schedule,
		TotalMonths:        monthsElapsed,
	}
}

// yearlyExtraMonth resolves which calendar month the recurring yearly extra
// lands in: the month of its start date when given, otherwise the loan start
// month.
func yearlyExtraMonth(extraYearlyStartDate string, loanStart time.Time) time.Month {
	if extraYearlyStartDate != "" {
		parts := strings.SplitN(extraYearlyStartDate, "-", 2)
		if len(parts) == 2 {
			if m, err := strconv.Atoi(parts[1]); err == nil && m >= 1 && m <= 12 {
				return time.Month(m)
			}
		}
	}
	return loanStart.Month()
}
