package calc

import (
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/mathutil"
)

// IncomeFrequency is how often base pay is stated.
type IncomeFrequency string

// Base income frequencies.
const (
	IncomeMonthly  IncomeFrequency = "monthly"
	IncomeAnnually IncomeFrequency = "annually"
)

// IncomeInputs lists income components. All components other than base pay
// are annual figures.
type IncomeInputs struct {
	BaseIncome          float64
	BaseIncomeFrequency IncomeFrequency
	Bonus               float64
	Overtime            float64
	Commission          float64
	Other               float64
	RentalIncome        float64
	RentalFactor        float64 // qualifying %, typically 75
}

// IncomeBreakdown holds each component normalized to a monthly figure.
type IncomeBreakdown struct {
	BaseMonthly       float64
	BonusMonthly      float64
	OvertimeMonthly   float64
	CommissionMonthly float64
	OtherMonthly      float64
	RentalMonthly     float64
}

// IncomeResult is the qualifying income summary.
type IncomeResult struct {
	TotalMonthlyIncome float64
	TotalAnnualIncome  float64
	Breakdown          IncomeBreakdown
}

// CalculateIncome normalizes every income component to a monthly figure and
// sums them. Rental income is discounted by the qualifying factor before
// being monthlyized.
func CalculateIncome(in IncomeInputs) IncomeResult {
	baseMonthly := in.BaseIncome
	if in.BaseIncomeFrequency != IncomeMonthly {
		baseMonthly = in.BaseIncome / constants.MonthsPerYear
	}

	breakdown := IncomeBreakdown{
		BaseMonthly:       baseMonthly,
		BonusMonthly:      in.Bonus / constants.MonthsPerYear,
		OvertimeMonthly:   in.Overtime / constants.MonthsPerYear,
		CommissionMonthly: in.Commission / constants.MonthsPerYear,
		OtherMonthly:      in.Other / constants.MonthsPerYear,
		RentalMonthly:     mathutil.ApplyPercentage(in.RentalIncome, in.RentalFactor) / constants.MonthsPerYear,
	}

	totalMonthly := breakdown.BaseMonthly +
		breakdown.BonusMonthly +
		breakdown.OvertimeMonthly +
		breakdown.CommissionMonthly +
		breakdown.OtherMonthly +
		breakdown.RentalMonthly

	return IncomeResult{
		TotalMonthlyIncome: totalMonthly,
		TotalAnnualIncome:  totalMonthly * constants.MonthsPerYear,
		Breakdown:          breakdown,
	}
}
