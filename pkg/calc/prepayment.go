package calc

import (
	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/constants"
)

// ScenarioType selects the prepayment scenario being compared against the
// current loan.
type ScenarioType string

// Prepayment scenarios.
const (
	ScenarioRefinance    ScenarioType = "refinance"
	ScenarioExtraPayment ScenarioType = "extra-payment"
)

// PrepaymentInputs describes the current loan terms plus either a refinance
// scenario or an extra-payment scenario.
type PrepaymentInputs struct {
	CurrentBalance      float64
	CurrentRate         float64 // %
	RemainingTermMonths int

	ScenarioType ScenarioType

	// Refinance scenario; zero values fall back to the current terms.
	NewRate       float64
	NewRateSet    bool
	NewTermMonths int

	// Extra-payment scenario.
	ExtraMonthly float64
	LumpSum      float64
}

// PrepaymentResult reports interest saved by the scenario.
type PrepaymentResult struct {
	CurrentTotalInterest   float64
	ScenarioTotalInterest  float64
	InterestSaved          float64
	ScenarioMonthlyPayment float64
	ScenarioPayoffMonths   int
}

// simulatedInterest is the outcome of simulating an amortizing balance with
// optional extra recurring payments and an up-front lump sum.
type simulatedInterest struct {
	totalInterest  float64
	monthlyPayment float64
	payoffMonths   int
}

// simulateAmortizedInterest applies the lump sum to the balance, computes
// the base annuity payment for the reduced principal, then simulates payoff
// month by month with the extra amount added to each payment.
func simulateAmortizedInterest(balance, rate float64, months int, extraMonthly, lumpSum float64) simulatedInterest {
	if balance <= 0 || months <= 0 {
		return simulatedInterest{}
	}

	principal := balance - lumpSum
	if principal <= 0 {
		return simulatedInterest{}
	}

	r := annuity.PeriodicRate(rate, constants.MonthsPerYear)
	monthlyPayment := annuity.Payment(principal, r, months)
	actualPayment := monthlyPayment + extraMonthly

	current := principal
	totalInterest := 0.0
	actualMonths := 0
	for current > constants.CurrencyEpsilon && actualMonths < constants.MaxSimulationMonths {
		interest := current * r
		p := actualPayment - interest
		if current+interest < actualPayment {
			p = current
		}
		current -= p
		totalInterest += interest
		actualMonths++
	}

	return simulatedInterest{
		totalInterest:  totalInterest,
		monthlyPayment: monthlyPayment,
		payoffMonths:   actualMonths,
	}
}

// CalculatePrepaymentSavings compares the interest remaining on the current
// loan against either a refinance at new terms or the same loan with extra
// payments applied.
func CalculatePrepaymentSavings(in PrepaymentInputs) PrepaymentResult {
	current := simulateAmortizedInterest(in.CurrentBalance, in.CurrentRate, in.RemainingTermMonths, 0, 0)

	var scenario simulatedInterest
	extraInPayment := 0.0
	if in.ScenarioType == ScenarioRefinance {
		newRate := in.CurrentRate
		if in.NewRateSet {
			newRate = in.NewRate
		}
		newTerm := in.NewTermMonths
		if newTerm <= 0 {
			newTerm = in.RemainingTermMonths
		}
		scenario = simulateAmortizedInterest(in.CurrentBalance, newRate, newTerm, 0, 0)
	} else {
		scenario = simulateAmortizedInterest(in.CurrentBalance, in.CurrentRate, in.RemainingTermMonths, in.ExtraMonthly, in.LumpSum)
		extraInPayment = in.ExtraMonthly
	}

	return PrepaymentResult{
		CurrentTotalInterest:   current.totalInterest,
		ScenarioTotalInterest:  scenario.totalInterest,
		InterestSaved:          current.totalInterest - scenario.totalInterest,
		ScenarioMonthlyPayment: scenario.monthlyPayment + extraInPayment,
		ScenarioPayoffMonths:   scenario.payoffMonths,
	}
}
