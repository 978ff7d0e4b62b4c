// Package annuity implements the closed-form fixed-payment amortization
// primitives shared by every calculator.
package annuity

import (
	"math"

	"github.com/lendkit/lendkit/pkg/constants"
)

// PeriodicRate converts an annual percentage rate to the periodic rate for
// the given number of periods per year.
func PeriodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	return annualRatePercent / (constants.PercentageMultiplier * float64(periodsPerYear))
}

// Payment returns the fixed periodic payment that fully amortizes principal
// over n periods at periodic rate r using the standard amortization formula.
// A zero rate divides the principal evenly across the term; non-positive
// principal or term yields zero so callers never see NaN.
func Payment(principal, r float64, n int) float64 {
	if principal <= 0 || n <= 0 {
		return 0
	}
	if r == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(n)
	}
	power := math.Pow(1.00+r, float64(n))
	return principal * r * power / (power - 1.00)
}

// InterestPortion returns the interest accrued on a balance for one period
// at periodic rate r.
func InterestPortion(balance, r float64) float64 {
	return balance * r
}

// PresentValue returns the present value of an n-period annuity paying the
// given amount each period, discounted at periodic rate r.
func PresentValue(payment, r float64, n int) float64 {
	if r == 0 {
		return payment * float64(n)
	}
	return payment * (1 - math.Pow(1+r, -float64(n))) / r
}

// NumPeriods returns the number of periods required to amortize a balance
// with a fixed payment at periodic rate r (the NPER formula). The second
// return value is false when the payment can never amortize the balance.
func NumPeriods(balance, payment, r float64) (float64, bool) {
	if balance <= 0 || payment <= 0 {
		return 0, false
	}
	if r == 0 {
		return balance / payment, true
	}
	inner := 1 - balance*r/payment
	if inner <= 0 {
		return 0, false
	}
	return -math.Log(inner) / math.Log(1+r), true
}
