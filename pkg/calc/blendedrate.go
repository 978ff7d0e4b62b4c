package calc

import "github.com/lendkit/lendkit/pkg/mathutil"

// LoanBalance is one loan in a blended-rate portfolio.
type LoanBalance struct {
	Balance float64
	Rate    float64 // annual %
}

// BlendedRateInputs is the portfolio to blend.
type BlendedRateInputs struct {
	Loans []LoanBalance
}

// LoanBalanceResult is the per-loan breakdown of a blended-rate result.
type LoanBalanceResult struct {
	Balance  float64
	Rate     float64
	Interest float64
	Weight   float64 // % of total balance
}

// BlendedRateResult is the balance-weighted average rate across the
// portfolio with approximate annual interest.
type BlendedRateResult struct {
	TotalBalance  float64
	BlendedRate   float64
	TotalInterest float64
	LoanResults   []LoanBalanceResult
}

// CalculateBlendedRate computes the balance-weighted average rate. A
// non-positive total balance zeroes every weight and the blended rate.
func CalculateBlendedRate(in BlendedRateInputs) BlendedRateResult {
	totalBalance := 0.0
	for _, loan := range in.Loans {
		totalBalance += loan.Balance
	}

	if totalBalance <= 0 {
		results := make([]LoanBalanceResult, len(in.Loans))
		for i, loan := range in.Loans {
			results[i] = LoanBalanceResult{Balance: loan.Balance, Rate: loan.Rate}
		}
		return BlendedRateResult{LoanResults: results}
	}

	weightedRateSum := 0.0
	totalInterest := 0.0
	results := make([]LoanBalanceResult, len(in.Loans))
	for i, loan := range in.Loans {
		annualInterest := mathutil.ApplyPercentage(loan.Balance, loan.Rate)
		weightedRateSum += loan.Balance * loan.Rate
		totalInterest += annualInterest
		results[i] = LoanBalanceResult{
			Balance:  loan.Balance,
			Rate:     loan.Rate,
			Interest: annualInterest,
			Weight:   loan.Balance / totalBalance * 100,
		}
	}

	return BlendedRateResult{
		TotalBalance:  totalBalance,
		BlendedRate:   weightedRateSum / totalBalance,
		TotalInterest: totalInterest,
		LoanResults:   results,
	}
}
