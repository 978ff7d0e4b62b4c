package calc

import "github.com/lendkit/lendkit/pkg/mathutil"

// TaxSavingsDisclaimer accompanies every tax savings estimate.
const TaxSavingsDisclaimer = "Estimate only. Consult a tax professional."

// TaxSavingsInputs is the deductible interest and marginal bracket.
type TaxSavingsInputs struct {
	AnnualInterest float64
	TaxBracket     float64 // %
}

// TaxSavingsResult is the estimated deduction value.
type TaxSavingsResult struct {
	EstimatedSavings float64
	Message          string
}

// CalculateTaxSavings estimates the value of the mortgage interest deduction
// at the given marginal bracket.
func CalculateTaxSavings(in TaxSavingsInputs) TaxSavingsResult {
	return TaxSavingsResult{
		EstimatedSavings: mathutil.ApplyPercentage(in.AnnualInterest, in.TaxBracket),
		Message:          TaxSavingsDisclaimer,
	}
}
