// Package runner executes configured calculator jobs and collects reports
// for output.
package runner

import (
	"fmt"

	"github.com/lendkit/lendkit/internal/config"
	"github.com/lendkit/lendkit/pkg/calc"
	"github.com/lendkit/lendkit/pkg/format"
	"go.uber.org/zap"
)

// Field is one labeled value in a report.
type Field struct {
	Label string
	Value string
}

// Report holds the rendered outcome of one job.
type Report struct {
	Name   string
	Type   string
	Fields []Field
}

// Run executes every job in the configuration and returns one report per
// job. Unknown job types and missing inputs produce an error naming the job.
func Run(logger *zap.Logger, conf config.Configuration) ([]Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var reports []Report
	for i, job := range conf.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("job %d", i+1)
		}

		logger.Debug("running job",
			zap.String("op", "runner.Run"),
			zap.String("job", name),
			zap.String("type", job.Type),
		)

		report, err := runJob(name, job)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func runJob(name string, job config.Job) (Report, error) {
	report := Report{Name: name, Type: job.Type}

	switch job.Type {
	case "amortization":
		if job.Amortization == nil {
			return report, fmt.Errorf("job %s: missing amortization inputs", name)
		}
		r := calc.CalculateAmortization(*job.Amortization)
		report.Fields = []Field{
			{"Monthly Payment", format.Currency(r.MonthlyPayment)},
			{"Total Interest", format.Currency(r.TotalInterest)},
			{"Total Paid", format.Currency(r.TotalPaid)},
			{"Total Extra Payments", format.Currency(r.TotalExtraPayments)},
			{"Payoff Date", r.PayoffDate},
			{"Payments", fmt.Sprintf("%d", len(r.Schedule))},
			{"Months To Payoff", fmt.Sprintf("%d", r.TotalMonths)},
		}
	case "apr":
		if job.APR == nil {
			return report, fmt.Errorf("job %s: missing apr inputs", name)
		}
		r := calc.CalculateAPR(*job.APR)
		report.Fields = []Field{
			{"Periodic Payment", format.Currency(r.MonthlyPayment)},
			{"Effective APR", format.Percent(r.EffectiveAPR)},
			{"Amount Financed", format.Currency(r.AmountFinanced)},
			{"Total Finance Charge", format.Currency(r.TotalFinanceCharge)},
			{"Total Paid", format.Currency(r.TotalPaid)},
			{"Payback Frequency", string(r.PayBackFrequency)},
		}
	case "mortgage-apr":
		if job.MortgageAPR == nil {
			return report, fmt.Errorf("job %s: missing mortgage-apr inputs", name)
		}
		r := calc.CalculateMortgageAPR(*job.MortgageAPR)
		report.Fields = []Field{
			{"Loan Amount", format.Currency(r.LoanAmount)},
			{"Down Payment", format.Currency(r.DownPaymentAmount)},
			{"Monthly P&I", format.Currency(r.MonthlyPayment)},
			{"Effective APR", format.Percent(r.EffectiveAPR)},
			{"Total Interest", format.Currency(r.TotalInterest)},
			{"All Payments And Fees", format.Currency(r.AllPaymentsAndFees)},
		}
	case "heloc":
		if job.HELOC == nil {
			return report, fmt.Errorf("job %s: missing heloc inputs", name)
		}
		r := calc.CalculateHELOC(*job.HELOC)
		report.Fields = []Field{
			{"Draw Monthly Payment", format.Currency(r.DrawMonthlyPayment)},
			{"Repayment Monthly Payment", format.Currency(r.RepaymentMonthlyPayment)},
			{"Total Interest", format.Currency(r.TotalInterest)},
			{"Total Fees", format.Currency(r.TotalFees)},
			{"Effective APR", format.Percent(r.EffectiveAPR)},
			{"Cash Received", format.Currency(r.CashReceived)},
		}
	case "credit-card":
		if job.CreditCard == nil {
			return report, fmt.Errorf("job %s: missing credit-card inputs", name)
		}
		r := calc.CalculateCreditCardPayoff(*job.CreditCard)
		report.Fields = []Field{
			{"Months To Payoff", fmt.Sprintf("%d", r.MonthsToPayoff)},
			{"Total Interest", format.Currency(r.TotalInterest)},
			{"Total Paid", format.Currency(r.TotalPaid)},
			{"Required Monthly Payment", format.Currency(r.RequiredMonthlyPayment)},
			{"Payment Too Low", fmt.Sprintf("%t", r.IsPaymentTooLow)},
		}
	case "debt-consolidation":
		if job.DebtConsolidation == nil {
			return report, fmt.Errorf("job %s: missing debt-consolidation inputs", name)
		}
		r := calc.CalculateDebtConsolidation(*job.DebtConsolidation)
		report.Fields = []Field{
			{"Existing Monthly Payment", format.Currency(r.ExistingTotalMonthlyPayment)},
			{"Existing Effective APR", format.Percent(r.ExistingBlendedRate)},
			{"Existing Months To Payoff", fmt.Sprintf("%d", r.ExistingTimeToPayoffMonths)},
			{"New Monthly Payment", format.Currency(r.NewMonthlyPayment)},
			{"New APR", format.Percent(r.NewAPR)},
			{"Monthly Savings", format.Currency(r.MonthlySavings)},
			{"Net Proceeds", format.Currency(r.NetProceeds)},
		}
	case "early-payoff":
		if job.EarlyPayoff == nil {
			return report, fmt.Errorf("job %s: missing early-payoff inputs", name)
		}
		r := calc.CalculateEarlyPayoff(*job.EarlyPayoff)
		report.Fields = []Field{
			{"Original Monthly Payment", format.Currency(r.OriginalMonthlyPayment)},
			{"Original Payoff Date", r.OriginalPayoffDate},
			{"New Payoff Date", r.NewPayoffDate},
			{"Interest Saved", format.Currency(r.InterestSaved)},
			{"Months Saved", fmt.Sprintf("%d", r.TimeSavedMonths)},
		}
	case "prepayment":
		if job.Prepayment == nil {
			return report, fmt.Errorf("job %s: missing prepayment inputs", name)
		}
		r := calc.CalculatePrepaymentSavings(*job.Prepayment)
		report.Fields = []Field{
			{"Current Total Interest", format.Currency(r.CurrentTotalInterest)},
			{"Scenario Total Interest", format.Currency(r.ScenarioTotalInterest)},
			{"Interest Saved", format.Currency(r.InterestSaved)},
			{"Scenario Monthly Payment", format.Currency(r.ScenarioMonthlyPayment)},
			{"Scenario Payoff Months", fmt.Sprintf("%d", r.ScenarioPayoffMonths)},
		}
	case "refinance":
		if job.Refinance == nil {
			return report, fmt.Errorf("job %s: missing refinance inputs", name)
		}
		r := calc.CalculateRefinanceBreakeven(*job.Refinance)
		report.Fields = []Field{
			{"Monthly Savings", format.Currency(r.MonthlySavings)},
			{"Breakeven Months", fmt.Sprintf("%d", r.BreakevenMonths)},
			{"Breakeven Date", r.BreakevenDate},
		}
	case "blended-rate":
		if job.BlendedRate == nil {
			return report, fmt.Errorf("job %s: missing blended-rate inputs", name)
		}
		r := calc.CalculateBlendedRate(*job.BlendedRate)
		report.Fields = []Field{
			{"Total Balance", format.Currency(r.TotalBalance)},
			{"Blended Rate", format.Percent(r.BlendedRate)},
			{"Annual Interest", format.Currency(r.TotalInterest)},
		}
	case "ufmip-refund":
		if job.UFMIPRefund == nil {
			return report, fmt.Errorf("job %s: missing ufmip-refund inputs", name)
		}
		r := calc.CalculateUFMIPRefund(*job.UFMIPRefund)
		report.Fields = []Field{
			{"Eligible", fmt.Sprintf("%t", r.IsEligible)},
			{"Months Since Closing", fmt.Sprintf("%d", r.MonthsSinceClosing)},
			{"Refund Percentage", format.Percent(r.RefundPercentage)},
			{"Refund Amount", format.Currency(r.RefundAmount)},
			{"Message", r.Message},
		}
	case "income":
		if job.Income == nil {
			return report, fmt.Errorf("job %s: missing income inputs", name)
		}
		r := calc.CalculateIncome(*job.Income)
		report.Fields = []Field{
			{"Qualifying Monthly Income", format.Currency(r.TotalMonthlyIncome)},
			{"Qualifying Annual Income", format.Currency(r.TotalAnnualIncome)},
			{"Rental (Monthly)", format.Currency(r.Breakdown.RentalMonthly)},
		}
	case "tax-savings":
		if job.TaxSavings == nil {
			return report, fmt.Errorf("job %s: missing tax-savings inputs", name)
		}
		r := calc.CalculateTaxSavings(*job.TaxSavings)
		report.Fields = []Field{
			{"Estimated Savings", format.Currency(r.EstimatedSavings)},
			{"Message", r.Message},
		}
	default:
		return report, fmt.Errorf("job %s: unknown job type %q", name, job.Type)
	}

	return report, nil
}
