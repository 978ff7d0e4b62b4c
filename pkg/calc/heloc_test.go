package calc

import (
	"math"
	"testing"
)

func TestCalculateHELOC(t *testing.T) {
	result := CalculateHELOC(HELOCInputs{
		LoanAmount:           30000,
		InterestRate:         10.0,
		DrawPeriodYears:      10,
		RepaymentPeriodYears: 20,
	})

	// Interest-only draw payment: 30000 * 10% / 12.
	if math.Abs(result.DrawMonthlyPayment-250.0) > 0.01 {
		t.Errorf("DrawMonthlyPayment = %.2f, expected 250.00", result.DrawMonthlyPayment)
	}
	if result.RepaymentMonthlyPayment <= result.DrawMonthlyPayment {
		t.Errorf("RepaymentMonthlyPayment = %.2f, expected above the interest-only payment",
			result.RepaymentMonthlyPayment)
	}
	if math.Abs(result.TotalDrawPayment-250.0*120) > 0.01 {
		t.Errorf("TotalDrawPayment = %.2f, expected 30000", result.TotalDrawPayment)
	}
	if math.Abs(result.TotalPayments-(result.TotalDrawPayment+result.TotalRepaymentPayment)) > 0.01 {
		t.Errorf("TotalPayments = %.2f, expected draw plus repayment totals", result.TotalPayments)
	}
	if math.Abs(result.TotalInterest-(result.TotalPayments-30000)) > 0.01 {
		t.Errorf("TotalInterest = %.2f, expected TotalPayments minus principal", result.TotalInterest)
	}

	if len(result.MonthlySchedule) != 360 {
		t.Fatalf("len(MonthlySchedule) = %d, expected 360", len(result.MonthlySchedule))
	}
	if len(result.YearlySchedule) != 30 {
		t.Errorf("len(YearlySchedule) = %d, expected 30", len(result.YearlySchedule))
	}

	// Balance stays flat through the draw period and reaches zero at the end.
	if result.MonthlySchedule[119].Balance != 30000 {
		t.Errorf("balance at end of draw = %.2f, expected 30000", result.MonthlySchedule[119].Balance)
	}
	final := result.MonthlySchedule[359]
	if final.Balance > 0.01 {
		t.Errorf("final balance = %.4f, expected ~0", final.Balance)
	}
}

func TestCalculateHELOCEffectiveAPR(t *testing.T) {
	tests := []struct {
		name        string
		inputs      HELOCInputs
		expectedAPR []float64 // [min, max]
	}{
		{
			name: "No fees solves to near the note rate",
			inputs: HELOCInputs{
				LoanAmount:           50000,
				InterestRate:         8.0,
				DrawPeriodYears:      10,
				RepaymentPeriodYears: 15,
			},
			expectedAPR: []float64{7.9, 8.2},
		},
		{
			name: "Closing costs and annual fee raise the rate",
			inputs: HELOCInputs{
				LoanAmount:           80000,
				InterestRate:         10.0,
				DrawPeriodYears:      10,
				RepaymentPeriodYears: 20,
				ClosingCostsType:     ClosingCostsAmount,
				ClosingCostsValue:    2000,
				AnnualFee:            50,
			},
			expectedAPR: []float64{10.2, 10.8},
		},
		{
			name: "Percentage closing costs",
			inputs: HELOCInputs{
				LoanAmount:           100000,
				InterestRate:         9.0,
				DrawPeriodYears:      5,
				RepaymentPeriodYears: 15,
				ClosingCostsType:     ClosingCostsPercent,
				ClosingCostsValue:    2,
			},
			expectedAPR: []float64{9.1, 9.9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateHELOC(tt.inputs)
			if result.EffectiveAPR < tt.expectedAPR[0] || result.EffectiveAPR > tt.expectedAPR[1] {
				t.Errorf("EffectiveAPR = %.4f, expected range [%.2f, %.2f]",
					result.EffectiveAPR, tt.expectedAPR[0], tt.expectedAPR[1])
			}
		})
	}
}

func TestCalculateHELOCFeeAccounting(t *testing.T) {
	result := CalculateHELOC(HELOCInputs{
		LoanAmount:           80000,
		InterestRate:         10.0,
		DrawPeriodYears:      10,
		RepaymentPeriodYears: 20,
		ClosingCostsType:     ClosingCostsAmount,
		ClosingCostsValue:    2000,
		ClosingCostsPaid:     ClosingCostsFinanced,
		AnnualFee:            50,
		IncludeFees:          true,
	})

	if result.TotalClosingCosts != 2000 {
		t.Errorf("TotalClosingCosts = %.2f, expected 2000", result.TotalClosingCosts)
	}
	// Annual fee charged once per draw year.
	if result.TotalAnnualFees != 500 {
		t.Errorf("TotalAnnualFees = %.2f, expected 500", result.TotalAnnualFees)
	}
	if result.TotalFees != 2500 {
		t.Errorf("TotalFees = %.2f, expected 2500", result.TotalFees)
	}
	if math.Abs(result.TotalOverallCost-(result.TotalInterest+2500)) > 0.01 {
		t.Errorf("TotalOverallCost = %.2f, expected interest plus fees", result.TotalOverallCost)
	}
	// Financed closing costs reduce the cash actually received.
	if result.CashReceived != 78000 {
		t.Errorf("CashReceived = %.2f, expected 78000", result.CashReceived)
	}
}

func TestCalculateHELOCClosingCostsRaiseAPR(t *testing.T) {
	base := HELOCInputs{
		LoanAmount:           80000,
		InterestRate:         10.0,
		DrawPeriodYears:      10,
		RepaymentPeriodYears: 20,
		ClosingCostsType:     ClosingCostsAmount,
		ClosingCostsValue:    1000,
	}
	lower := CalculateHELOC(base)

	higher := base
	higher.ClosingCostsValue = 3000
	result := CalculateHELOC(higher)

	if result.EffectiveAPR <= lower.EffectiveAPR {
		t.Errorf("EffectiveAPR = %.4f, expected above %.4f with higher closing costs",
			result.EffectiveAPR, lower.EffectiveAPR)
	}
}

func TestCalculateHELOCDegenerate(t *testing.T) {
	result := CalculateHELOC(HELOCInputs{
		InterestRate:         8.0,
		DrawPeriodYears:      10,
		RepaymentPeriodYears: 15,
	})

	if result.EffectiveAPR != 0 || len(result.MonthlySchedule) != 0 {
		t.Errorf("expected a zeroed result for zero loan amount, got APR %.4f", result.EffectiveAPR)
	}
}

func TestPrepaidInterestFactor(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		closingCosts  float64
		expectedRange []float64
	}{
		{"Low fee fixed factor", 50000, 400, []float64{0.13477, 0.13477}},
		{"Low fee boundary", 50000, 500, []float64{0.13477, 0.13477}},
		{"High fee at base loan amount", 50000, 2000, []float64{0.99, 0.99}},
		{"High fee interpolated", 80000, 2000, []float64{0.713, 0.715}},
		{"High fee clamps at zero", 200000, 2000, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := prepaidInterestFactor(tt.loanAmount, tt.closingCosts)
			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("prepaidInterestFactor() = %.5f, expected range [%.5f, %.5f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}
