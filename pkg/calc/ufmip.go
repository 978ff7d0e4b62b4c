package calc

import (
	"github.com/lendkit/lendkit/pkg/constants"
	"github.com/lendkit/lendkit/pkg/datetime"
	"github.com/lendkit/lendkit/pkg/mathutil"
)

// RefinanceType identifies the kind of refinance for UFMIP refund
// eligibility.
type RefinanceType string

// Refinance types. Only FHA-to-FHA qualifies for a UFMIP refund.
const (
	FHAToFHA          RefinanceType = "fha-to-fha"
	FHAToConventional RefinanceType = "fha-to-conventional"
	FHAToVA           RefinanceType = "fha-to-va"
	OtherRefinance    RefinanceType = "other"
)

// ufmipRefundSchedule maps whole months since closing to the refund
// percentage per HUD 4000.1: month 1 refunds 80%, declining two points per
// month to 10% at month 36. This is regulatory reference data, not derived.
var ufmipRefundSchedule = map[int]float64{
	1: 80, 2: 78, 3: 76, 4: 74, 5: 72, 6: 70,
	7: 68, 8: 66, 9: 64, 10: 62, 11: 60, 12: 58,
	13: 56, 14: 54, 15: 52, 16: 50, 17: 48, 18: 46,
	19: 44, 20: 42, 21: 40, 22: 38, 23: 36, 24: 34,
	25: 32, 26: 30, 27: 28, 28: 26, 29: 24, 30: 22,
	31: 20, 32: 18, 33: 16, 34: 14, 35: 12, 36: 10,
}

// UFMIPRefundInputs describes the original FHA loan and the new case.
type UFMIPRefundInputs struct {
	RefiType           RefinanceType
	BaseLoanAmount     float64
	OriginalUFMIPRate  float64 // %, typically 1.75
	ClosingDate        string  // 2006-01-02
	CaseAssignmentDate string  // 2006-01-02
}

// UFMIPRefundResult reports eligibility and the refund amount. Ineligibility
// is a business outcome carried in IsEligible and Message, not an error.
type UFMIPRefundResult struct {
	RefundAmount       float64
	RefundPercentage   float64
	MonthsSinceClosing int
	IsEligible         bool
	Message            string
}

// CalculateUFMIPRefund looks up the refundable share of the upfront mortgage
// insurance premium for an FHA-to-FHA refinance. A positive interval shorter
// than one whole month counts as month one.
func CalculateUFMIPRefund(in UFMIPRefundInputs) UFMIPRefundResult {
	if in.RefiType != FHAToFHA {
		return UFMIPRefundResult{Message: "Not eligible (must be FHA-to-FHA refinance)."}
	}

	closing, err := datetime.ParseDate(in.ClosingDate)
	if err != nil {
		return UFMIPRefundResult{Message: "Invalid closing date."}
	}
	caseDate, err := datetime.ParseDate(in.CaseAssignmentDate)
	if err != nil {
		return UFMIPRefundResult{Message: "Invalid case assignment date."}
	}

	if caseDate.Before(closing) {
		return UFMIPRefundResult{Message: "New case date cannot be before closing date."}
	}

	months := datetime.WholeMonthsBetween(closing, caseDate)
	if months < 1 {
		months = 1
	}

	if months > constants.UFMIPRefundWindowMonths {
		return UFMIPRefundResult{
			MonthsSinceClosing: months,
			Message:            "Not eligible (More than 36 months elapsed).",
		}
	}

	rate := in.OriginalUFMIPRate
	if rate == 0 {
		rate = constants.DefaultUFMIPRate
	}

	refundPct := ufmipRefundSchedule[months]
	originalUFMIP := mathutil.ApplyPercentage(in.BaseLoanAmount, rate)

	return UFMIPRefundResult{
		RefundAmount:       mathutil.Round(mathutil.ApplyPercentage(originalUFMIP, refundPct)),
		RefundPercentage:   refundPct,
		MonthsSinceClosing: months,
		IsEligible:         true,
		Message:            "Eligible for refund.",
	}
}
