package calc

import (
	"math"

	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/datetime"
)

// RefinanceInputs describes the payment change and cost of a refinance.
type RefinanceInputs struct {
	CurrentMonthlyPayment float64
	NewMonthlyPayment     float64
	ClosingCosts          float64
	StartDate             string // 2006-01-02
}

// RefinanceResult reports when the refinance pays for itself. BreakevenDate
// is empty when the new payment saves nothing.
type RefinanceResult struct {
	MonthlySavings  float64
	BreakevenMonths int
	BreakevenDate   string
}

// CalculateRefinanceBreakeven computes the months of payment savings needed
// to recover closing costs. Savings at or below zero mean there is no
// breakeven.
func CalculateRefinanceBreakeven(in RefinanceInputs) RefinanceResult {
	monthlySavings := in.CurrentMonthlyPayment - in.NewMonthlyPayment
	if monthlySavings <= 0 {
		return RefinanceResult{MonthlySavings: monthlySavings}
	}

	breakevenMonths := int(math.Ceil(in.ClosingCosts / monthlySavings))

	start, err := datetime.ParseDateOrNow(in.StartDate)
	if err != nil {
		return RefinanceResult{
			MonthlySavings:  monthlySavings,
			BreakevenMonths: breakevenMonths,
		}
	}

	return RefinanceResult{
		MonthlySavings:  monthlySavings,
		BreakevenMonths: breakevenMonths,
		BreakevenDate:   datetime.AddMonths(start, breakevenMonths).Format(constants.BreakevenDateLayout),
	}
}
