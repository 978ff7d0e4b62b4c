package annuity

import (
	"math"
	"testing"
)

func TestPayment(t *testing.T) {
	tests := []struct {
		name          string
		principal     float64
		annualRate    float64
		termMonths    int
		expectedRange []float64 // [min, max] expected range
	}{
		{
			name:          "Standard 30-year mortgage",
			principal:     240000,
			annualRate:    6.0,
			termMonths:    360,
			expectedRange: []float64{1400, 1500}, // Around $1439
		},
		{
			name:          "5-year car loan",
			principal:     20000,
			annualRate:    4.0,
			termMonths:    60,
			expectedRange: []float64{360, 380}, // Around $368
		},
		{
			name:          "Zero interest loan",
			principal:     10000,
			annualRate:    0.0,
			termMonths:    60,
			expectedRange: []float64{166, 167}, // Exactly $166.67
		},
		{
			name:          "High interest loan",
			principal:     10000,
			annualRate:    18.0,
			termMonths:    36,
			expectedRange: []float64{360, 380}, // Around $372
		},
		{
			name:          "Zero principal",
			principal:     0,
			annualRate:    5.0,
			termMonths:    60,
			expectedRange: []float64{0, 0},
		},
		{
			name:          "Non-positive term",
			principal:     10000,
			annualRate:    5.0,
			termMonths:    0,
			expectedRange: []float64{0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := PeriodicRate(tt.annualRate, 12)
			result := Payment(tt.principal, r, tt.termMonths)

			if result < tt.expectedRange[0] || result > tt.expectedRange[1] {
				t.Errorf("Payment() = %.2f, expected range [%.2f, %.2f]",
					result, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}

func TestPaymentReferenceFixture(t *testing.T) {
	// 100,000 * 0.005 / (1 - 1.005^-360) = 599.55
	result := Payment(100000, PeriodicRate(6, 12), 360)
	if math.Abs(result-599.55) > 0.01 {
		t.Errorf("Payment() = %.4f, expected 599.55", result)
	}
}

func TestInterestPortion(t *testing.T) {
	tests := []struct {
		name       string
		balance    float64
		annualRate float64
		expected   float64
	}{
		{
			name:       "Standard mortgage interest",
			balance:    200000,
			annualRate: 6.0,
			expected:   1000.0, // 200000 * 0.06 / 12
		},
		{
			name:       "Zero interest",
			balance:    10000,
			annualRate: 0.0,
			expected:   0.0,
		},
		{
			name:       "High interest",
			balance:    5000,
			annualRate: 24.0,
			expected:   100.0, // 5000 * 0.24 / 12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InterestPortion(tt.balance, PeriodicRate(tt.annualRate, 12))
			if math.Abs(result-tt.expected) > 0.01 {
				t.Errorf("InterestPortion() = %.2f, expected %.2f", result, tt.expected)
			}
		})
	}
}

func TestPresentValueRoundTrip(t *testing.T) {
	// Discounting the annuity payment at the same rate recovers the principal.
	principal := 150000.0
	r := PeriodicRate(5.5, 12)
	n := 240

	payment := Payment(principal, r, n)
	pv := PresentValue(payment, r, n)

	if math.Abs(pv-principal) > 0.01 {
		t.Errorf("PresentValue() = %.4f, expected %.2f", pv, principal)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	if pv := PresentValue(100, 0, 12); pv != 1200 {
		t.Errorf("PresentValue() = %.2f, expected 1200", pv)
	}
}

func TestNumPeriods(t *testing.T) {
	tests := []struct {
		name          string
		balance       float64
		payment       float64
		annualRate    float64
		expectOK      bool
		expectedRange []float64
	}{
		{
			name:          "Credit card payoff",
			balance:       1000,
			payment:       100,
			annualRate:    12.0,
			expectOK:      true,
			expectedRange: []float64{10, 11}, // ~10.59 months
		},
		{
			name:          "Zero rate",
			balance:       1200,
			payment:       100,
			annualRate:    0,
			expectOK:      true,
			expectedRange: []float64{12, 12},
		},
		{
			name:       "Payment below interest never amortizes",
			balance:    1000,
			payment:    5,
			annualRate: 12.0,
			expectOK:   false,
		},
		{
			name:       "Zero payment",
			balance:    1000,
			payment:    0,
			annualRate: 12.0,
			expectOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := NumPeriods(tt.balance, tt.payment, PeriodicRate(tt.annualRate, 12))
			if ok != tt.expectOK {
				t.Fatalf("NumPeriods() ok = %t, expected %t", ok, tt.expectOK)
			}
			if ok && (n < tt.expectedRange[0] || n > tt.expectedRange[1]) {
				t.Errorf("NumPeriods() = %.2f, expected range [%.2f, %.2f]",
					n, tt.expectedRange[0], tt.expectedRange[1])
			}
		})
	}
}
