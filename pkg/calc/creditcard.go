package calc

import (
	"math"

	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/constants"
)

// CreditCardMode selects between solving for payoff time and solving for the
// required payment.
type CreditCardMode string

// Credit card calculator modes.
const (
	PaymentFixed CreditCardMode = "payment-fixed"
	TimeFixed    CreditCardMode = "time-fixed"
)

// defaultTimeFixedMonths is the target term assumed when time-fixed mode is
// given no month count.
const defaultTimeFixedMonths = 12

// CreditCardInputs describes a revolving balance to pay down.
type CreditCardInputs struct {
	Balance        float64
	InterestRate   float64 // APR %
	Mode           CreditCardMode
	MonthlyPayment float64 // payment-fixed
	MonthsToPayoff int     // time-fixed
}

// CreditCardResult is the payoff projection. IsPaymentTooLow reports the
// business outcome of a payment that can never amortize the balance; it is
// not an error.
type CreditCardResult struct {
	MonthsToPayoff         int
	TotalInterest          float64
	TotalPaid              float64
	RequiredMonthlyPayment float64
	IsPaymentTooLow        bool
}

// CalculateCreditCardPayoff projects paying off a credit card balance. In
// time-fixed mode the annuity formula yields the payment required to retire
// the balance in the target months. In payment-fixed mode the closed-form
// period count is confirmed by an exact month-by-month simulation so the
// interest total reflects the smaller final payment.
func CalculateCreditCardPayoff(in CreditCardInputs) CreditCardResult {
	if in.Balance <= 0 {
		return CreditCardResult{}
	}

	r := annuity.PeriodicRate(in.InterestRate, constants.MonthsPerYear)

	if in.Mode == TimeFixed {
		n := in.MonthsToPayoff
		if n <= 0 {
			n = defaultTimeFixedMonths
		}
		payment := annuity.Payment(in.Balance, r, n)
		totalPaid := payment * float64(n)
		return CreditCardResult{
			MonthsToPayoff:         n,
			TotalInterest:          totalPaid - in.Balance,
			TotalPaid:              totalPaid,
			RequiredMonthlyPayment: payment,
		}
	}

	// A payment at or below one month's interest never amortizes.
	if in.MonthlyPayment <= in.Balance*r {
		return CreditCardResult{IsPaymentTooLow: true}
	}

	periods, ok := annuity.NumPeriods(in.Balance, in.MonthlyPayment, r)
	if !ok {
		return CreditCardResult{MonthsToPayoff: 999, IsPaymentTooLow: true}
	}
	months := int(math.Ceil(periods))

	balance := in.Balance
	totalInterest := 0.0
	counted := 0
	for balance > constants.CurrencyEpsilon && counted < months {
		interest := balance * r
		principal := in.MonthlyPayment - interest
		if balance+interest < in.MonthlyPayment {
			principal = balance
		}
		balance -= principal
		totalInterest += interest
		counted++
	}

	return CreditCardResult{
		MonthsToPayoff: counted,
		TotalInterest:  totalInterest,
		TotalPaid:      in.Balance + totalInterest,
	}
}
