package calc

import (
	"sort"

	"github.com/lendkit/lendkit/pkg/annuity"
	"github.com/lendkit/lendkit/pkg/cashflow"
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/mathutil"
)

// FeeType selects whether consolidation closing costs are a flat dollar
// amount or a percentage of the new loan.
type FeeType string

// Consolidation fee input modes.
const (
	FeeFlat    FeeType = "$"
	FeePercent FeeType = "%"
)

// DebtItem is one existing debt in a consolidation portfolio.
type DebtItem struct {
	Name         string
	Balance      float64
	InterestRate float64 // annual %
	MinPayment   float64
}

// ConsolidationInputs describes a portfolio of existing debts and the terms
// of the consolidating loan.
type ConsolidationInputs struct {
	Debts             []DebtItem
	NewLoanRate       float64 // annual %
	NewLoanTermMonths int
	ClosingCosts      float64
	FeeType           FeeType
	DesiredLoanAmount float64 // overrides the summed balance when positive
}

// ConsolidationResult compares the simulated existing-debt payoff against
// the new consolidated loan.
type ConsolidationResult struct {
	ExistingTotalMonthlyPayment float64
	ExistingTotalBalance        float64
	ExistingBlendedRate         float64 // effective APR of the simulated flows
	ExistingTimeToPayoffMonths  int
	ExistingTotalInterest       float64
	ExistingTotalPayments       float64

	NewMonthlyPayment     float64
	NewLoanAmount         float64
	NewTotalInterest      float64
	NewTotalPayments      float64
	NewTimeToPayoffMonths int
	NewAPR                float64

	MonthlySavings     float64
	ClosingCosts       float64
	NetProceeds        float64
	CashFlowDifference float64
}

// rolloverOutcome captures the existing-debt payoff simulation.
type rolloverOutcome struct {
	months          int
	totalPaid       float64
	totalInterest   float64
	monthlyPayments []float64
}

// simulateDebtRollover pays a fixed total monthly amount across the
// portfolio using the avalanche strategy: accrue interest, pay each debt's
// minimum, then roll the remainder onto the highest-rate surviving balance.
// Capped at 100 years so unpayable portfolios terminate.
func simulateDebtRollover(debts []DebtItem, totalMonthlyPayment float64) rolloverOutcome {
	current := make([]DebtItem, len(debts))
	copy(current, debts)

	order := make([]int, len(current))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return current[order[a]].InterestRate > current[order[b]].InterestRate
	})

	var out rolloverOutcome
	for out.months < constants.MaxSimulationMonths {
		totalBalance := 0.0
		for _, d := range current {
			totalBalance += d.Balance
		}
		if totalBalance <= constants.CurrencyEpsilon {
			break
		}

		out.months++
		available := totalMonthlyPayment
		monthPaid := 0.0

		// 1. Accrue interest on every open balance.
		for i := range current {
			if current[i].Balance > 0 {
				interest := current[i].Balance * annuity.PeriodicRate(current[i].InterestRate, constants.MonthsPerYear)
				current[i].Balance += interest
				out.totalInterest += interest
			}
		}

		// 2. Pay minimums, capped at each balance and at the pool.
		for i := range current {
			if current[i].Balance > 0 {
				payment := mathutil.Min(current[i].MinPayment, current[i].Balance)
				if available >= payment {
					available -= payment
				} else {
					payment = available
					available = 0
				}
				current[i].Balance -= payment
				monthPaid += payment
			}
		}

		// 3. Roll the residual onto the highest-rate remaining debt.
		if available > 0 {
			for _, idx := range order {
				if current[idx].Balance > 0 {
					payment := mathutil.Min(available, current[idx].Balance)
					current[idx].Balance -= payment
					available -= payment
					monthPaid += payment
					if available <= 0.001 {
						break
					}
				}
			}
		}

		out.totalPaid += monthPaid
		out.monthlyPayments = append(out.monthlyPayments, monthPaid)
	}

	return out
}

// newLoanSolverOptions pins the new-loan APR bisection budget. No epsilon:
// the reference bisects the full iteration budget on the PV comparison.
var newLoanSolverOptions = cashflow.Options{Iterations: 50}

// rolloverSolverOptions pins the existing-debt IRR bisection budget.
var rolloverSolverOptions = cashflow.Options{Iterations: 50, Epsilon: 0.0001}

// CalculateDebtConsolidation models the existing portfolio with a rollover
// simulation and compares it against a consolidating loan. The existing
// "blended rate" is the effective APR implied by the simulated cash flows,
// not the balance-weighted average.
func CalculateDebtConsolidation(in ConsolidationInputs) ConsolidationResult {
	existingTotalMonthlyPayment := 0.0
	existingTotalBalance := 0.0
	for _, d := range in.Debts {
		existingTotalMonthlyPayment += d.MinPayment
		existingTotalBalance += d.Balance
	}

	sim := simulateDebtRollover(in.Debts, existingTotalMonthlyPayment)

	existingIRR := cashflow.SolveRate(cashflow.Stream{
		Proceeds: existingTotalBalance,
		Payments: sim.monthlyPayments,
	}, rolloverSolverOptions)
	existingBlendedRate := existingIRR * constants.MonthsPerYear * constants.PercentageMultiplier

	principalBase := existingTotalBalance
	if in.DesiredLoanAmount > 0 {
		principalBase = in.DesiredLoanAmount
	}

	actualClosingCosts := in.ClosingCosts
	if in.FeeType == FeePercent {
		actualClosingCosts = mathutil.ApplyPercentage(principalBase, in.ClosingCosts)
	}

	netProceeds := principalBase - actualClosingCosts

	result := ConsolidationResult{
		ExistingTotalMonthlyPayment: existingTotalMonthlyPayment,
		ExistingTotalBalance:        existingTotalBalance,
		ExistingBlendedRate:         existingBlendedRate,
		ExistingTimeToPayoffMonths:  sim.months,
		ExistingTotalInterest:       sim.totalInterest,
		ExistingTotalPayments:       sim.totalPaid,
		NewLoanAmount:               principalBase,
		MonthlySavings:              existingTotalMonthlyPayment,
		ClosingCosts:                actualClosingCosts,
		NetProceeds:                 netProceeds,
		CashFlowDifference:          netProceeds - existingTotalBalance,
	}

	if principalBase <= 0 || in.NewLoanTermMonths <= 0 {
		return result
	}

	rNew := annuity.PeriodicRate(in.NewLoanRate, constants.MonthsPerYear)
	newMonthlyPayment := annuity.Payment(principalBase, rNew, in.NewLoanTermMonths)
	newTotalPayments := newMonthlyPayment * float64(in.NewLoanTermMonths)

	newIRR := cashflow.SolveRate(cashflow.Stream{
		Proceeds: netProceeds,
		Segments: []cashflow.Segment{{Payment: newMonthlyPayment, Periods: in.NewLoanTermMonths}},
	}, newLoanSolverOptions)

	result.NewMonthlyPayment = newMonthlyPayment
	result.NewTotalPayments = newTotalPayments
	result.NewTotalInterest = newTotalPayments - principalBase
	result.NewTimeToPayoffMonths = in.NewLoanTermMonths
	result.NewAPR = newIRR * constants.MonthsPerYear * constants.PercentageMultiplier
	result.MonthlySavings = existingTotalMonthlyPayment - newMonthlyPayment

	return result
}
