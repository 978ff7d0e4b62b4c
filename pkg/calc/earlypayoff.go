package calc

import (
	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/datetime"
	"github.com/lendkit/lendkit/pkg/mathutil"
)

// NeverPayoff is the sentinel payoff date for payments that never amortize.
const NeverPayoff = "Never"

// EarlyPayoffInputs describes a loan and a recurring extra monthly payment.
type EarlyPayoffInputs struct {
	LoanAmount   float64
	InterestRate float64 // annual %
	TermYears    int
	TermMonths   int
	StartDate    string // 2006-01-02
	ExtraPayment float64
}

// EarlyPayoffResult compares the augmented payoff to the baseline schedule.
type EarlyPayoffResult struct {
	OriginalMonthlyPayment float64
	OriginalTotalInterest  float64
	OriginalPayoffDate     string
	NewPayoffDate          string
	NewTotalInterest       float64
	InterestSaved          float64
	TimeSavedMonths        int
}

// CalculateEarlyPayoff computes the baseline annuity schedule, simulates the
// same loan with the extra payment added, and reports months and interest
// saved. When the augmented payment cannot cover accruing interest the
// payoff date is reported as Never.
func CalculateEarlyPayoff(in EarlyPayoffInputs) EarlyPayoffResult {
	totalMonths := in.TermYears*constants.MonthsPerYear + in.TermMonths
	if in.LoanAmount <= 0 || totalMonths <= 0 {
		return EarlyPayoffResult{}
	}

	start, err := datetime.ParseDateOrNow(in.StartDate)
	if err != nil {
		return EarlyPayoffResult{}
	}

	r := annuity.PeriodicRate(in.InterestRate, constants.MonthsPerYear)
	originalPayment := annuity.Payment(in.LoanAmount, r, totalMonths)
	originalTotalInterest := originalPayment*float64(totalMonths) - in.LoanAmount
	originalPayoffDate := datetime.AddMonths(start, totalMonths).Format(constants.PayoffDateLayout)

	augmentedPayment := originalPayment + in.ExtraPayment

	// An augmented payment at or below interest-only never amortizes.
	if augmentedPayment <= in.LoanAmount*r {
		return EarlyPayoffResult{
			OriginalMonthlyPayment: originalPayment,
			OriginalTotalInterest:  originalTotalInterest,
			OriginalPayoffDate:     NeverPayoff,
			NewPayoffDate:          NeverPayoff,
		}
	}

	balance := in.LoanAmount
	newTotalInterest := 0.0
	months := 0
	for balance > constants.CurrencyEpsilon && months < constants.MaxSimulationMonths {
		interest := balance * r
		principal := augmentedPayment - interest
		if balance+interest < augmentedPayment {
			principal = balance
		}
		balance -= principal
		newTotalInterest += interest
		months++
	}

	return EarlyPayoffResult{
		OriginalMonthlyPayment: originalPayment,
		OriginalTotalInterest:  originalTotalInterest,
		OriginalPayoffDate:     originalPayoffDate,
		NewPayoffDate:          datetime.AddMonths(start, months).Format(constants.PayoffDateLayout),
		NewTotalInterest:       newTotalInterest,
		InterestSaved:          mathutil.Max(0, originalTotalInterest-newTotalInterest),
		TimeSavedMonths:        maxInt(0, totalMonths-months),
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
