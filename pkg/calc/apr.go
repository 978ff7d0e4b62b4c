package calc

import (
	"math"

	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/cashflow"
	"github.com/lendkit/lendkit/pkg/constants"
)

// Frequency is a compounding or payback frequency for the general APR
// calculator.
type Frequency string

// Supported frequencies.
const (
	Daily        Frequency = "daily"
	Weekly       Frequency = "weekly"
	BiWeekly     Frequency = "bi-weekly"
	SemiMonthly  Frequency = "semi-monthly"
	MonthlyFreq  Frequency = "monthly"
	Quarterly    Frequency = "quarterly"
	SemiAnnually Frequency = "semi-annually"
	Annually     Frequency = "annually"
)

// PeriodsPerYear returns the number of periods per year for the frequency.
// Unrecognized or empty values fall back to monthly.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case Daily:
		return 365
	case Weekly:
		return 52
	case BiWeekly:
		return 26
	case SemiMonthly:
		return 24
	case Quarterly:
		return 4
	case SemiAnnually:
		return 2
	case Annually:
		return 1
	default:
		return constants.MonthsPerYear
	}
}

// aprSolverOptions pins the general and mortgage APR bisection budget.
var aprSolverOptions = cashflow.Options{Iterations: 100, Epsilon: 0.000001}

// APRInputs describes a loan with financed and cash-paid fees for the
// general APR calculator.
type APRInputs struct {
	LoanAmount           float64
	NominalInterestRate  float64 // %
	TermYears            int
	TermMonths           int
	LoanedFees           float64 // financed into the balance
	UpfrontFees          float64 // paid in cash at closing
	CompoundingFrequency Frequency
	PayBackFrequency     Frequency
}

// APRResult is the general APR calculation output. MonthlyPayment holds the
// periodic payment at the payback frequency.
type APRResult struct {
	LoanAmount         float64
	MonthlyPayment     float64
	EffectiveAPR       float64
	TotalInterest      float64
	TotalFinanceCharge float64
	TotalPaid          float64
	AmountFinanced     float64
	PayBackFrequency   Frequency
}

// CalculateAPR computes the effective APR of a loan whose compounding and
// payback frequencies may differ. The nominal rate is converted through an
// effective-annual-rate intermediate to the periodic rate of the payback
// frequency; the implied periodic IRR is then converted back through the
// same intermediate to a nominal monthly APR, which normalizes
// cross-frequency scenarios to a common display basis.
func CalculateAPR(in APRInputs) APRResult {
	payBack := in.PayBackFrequency
	if payBack == "" {
		payBack = MonthlyFreq
	}
	compounding := in.CompoundingFrequency
	if compounding == "" {
		compounding = MonthlyFreq
	}

	totalMonths := in.TermYears*constants.MonthsPerYear + in.TermMonths
	if in.LoanAmount <= 0 || totalMonths <= 0 {
		return APRResult{PayBackFrequency: payBack}
	}

	// Amount financed is the loan amount plus any financed fees.
	grossLoanAmount := in.LoanAmount + in.LoanedFees

	compPeriods := compounding.PeriodsPerYear()
	payPeriods := payBack.PeriodsPerYear()

	nominal := in.NominalInterestRate / constants.PercentageMultiplier
	ear := math.Pow(1+nominal/float64(compPeriods), float64(compPeriods)) - 1
	ratePerPeriod := math.Pow(1+ear, 1/float64(payPeriods)) - 1

	totalYears := float64(totalMonths) / constants.MonthsPerYear
	n := int(math.Ceil(totalYears * float64(payPeriods)))

	periodicPayment := annuity.Payment(grossLoanAmount, ratePerPeriod, n)

	cashFlow0 := in.LoanAmount - in.UpfrontFees
	if cashFlow0 <= 0 {
		return APRResult{
			LoanAmount:       in.LoanAmount,
			MonthlyPayment:   periodicPayment,
			AmountFinanced:   cashFlow0,
			PayBackFrequency: payBack,
		}
	}

	irr := cashflow.SolveRate(cashflow.Stream{
		Proceeds: cashFlow0,
		Segments: []cashflow.Segment{{Payment: periodicPayment, Periods: n}},
	}, aprSolverOptions)

	earActual := math.Pow(1+irr, float64(payPeriods)) - 1
	effectiveAPR := constants.MonthsPerYear * (math.Pow(1+earActual, 1.0/constants.MonthsPerYear) - 1) * constants.PercentageMultiplier

	totalPaid := periodicPayment * float64(n)

	return APRResult{
		LoanAmount:         in.LoanAmount,
		MonthlyPayment:     periodicPayment,
		EffectiveAPR:       effectiveAPR,
		TotalInterest:      totalPaid - in.LoanAmount,
		TotalFinanceCharge: totalPaid - cashFlow0,
		TotalPaid:          totalPaid,
		AmountFinanced:     grossLoanAmount,
		PayBackFrequency:   payBack,
	}
}

// MortgageAPRInputs describes a purchase mortgage with closing fees, discount
// points, and optional PMI.
type MortgageAPRInputs struct {
	HouseValue         float64
	DownPaymentPercent float64
	TermYears          int
	InterestRate       float64 // %
	LoanFees           float64
	Points             float64 // % of loan amount
	PMIPerYear         float64
}

// MortgageAPRResult is the mortgage APR calculation output. MonthlyPayment
// is principal and interest only; PMI enters the APR cash flows but not the
// displayed payment.
type MortgageAPRResult struct {
	LoanAmount         float64
	DownPaymentAmount  float64
	MonthlyPayment     float64
	EffectiveAPR       float64
	TotalPayments      float64
	TotalInterest      float64
	AllPaymentsAndFees float64
}

// CalculateMortgageAPR computes the effective APR of a purchase mortgage.
// Net proceeds deduct both loan fees and the cost of discount points; the
// "all payments and fees" disclosure total adds back loan fees but not
// points, mirroring common lender disclosures.
func CalculateMortgageAPR(in MortgageAPRInputs) MortgageAPRResult {
	downPaymentAmount := in.HouseValue * (in.DownPaymentPercent / constants.PercentageMultiplier)
	loanAmount := in.HouseValue - downPaymentAmount
	totalMonths := in.TermYears * constants.MonthsPerYear

	if loanAmount <= 0 || totalMonths <= 0 {
		return MortgageAPRResult{DownPaymentAmount: downPaymentAmount}
	}

	r := annuity.PeriodicRate(in.InterestRate, constants.MonthsPerYear)
	monthlyPI := annuity.Payment(loanAmount, r, totalMonths)
	totalMonthlyPayment := monthlyPI + in.PMIPerYear/constants.MonthsPerYear

	pointsCost := loanAmount * (in.Points / constants.PercentageMultiplier)
	netProceeds := loanAmount - in.LoanFees - pointsCost

	irr := cashflow.SolveRate(cashflow.Stream{
		Proceeds: netProceeds,
		Segments: []cashflow.Segment{{Payment: totalMonthlyPayment, Periods: totalMonths}},
	}, aprSolverOptions)
	effectiveAPR := irr * constants.MonthsPerYear * constants.PercentageMultiplier

	totalPayments := totalMonthlyPayment * float64(totalMonths)
	totalInterest := monthlyPI*float64(totalMonths) - loanAmount

	return MortgageAPRResult{
		LoanAmount:         loanAmount,
		DownPaymentAmount:  downPaymentAmount,
		MonthlyPayment:     monthlyPI,
		EffectiveAPR:       effectiveAPR,
		TotalPayments:      totalPayments,
		TotalInterest:      totalInterest,
		AllPaymentsAndFees: totalPayments + in.LoanFees,
	}
}
