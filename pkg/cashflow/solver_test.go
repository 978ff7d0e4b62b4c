package cashflow

import (
	"math"
	"testing"
)

// knownRatePayment returns the level payment at rate r over n periods for the
// given principal, so tests can build streams whose implied rate is known.
func knownRatePayment(principal, r float64, n int) float64 {
	return principal * r / (1 - math.Pow(1+r, -float64(n)))
}

func TestSolveRateRecoversKnownRate(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		periods   int
	}{
		{"30-year mortgage at 0.5% monthly", 100000, 0.005, 360},
		{"Short loan at 1% monthly", 5000, 0.01, 24},
		{"Low rate", 250000, 0.0025, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := Stream{
				Proceeds: tt.principal,
				Segments: []Segment{
					{Payment: knownRatePayment(tt.principal, tt.rate, tt.periods), Periods: tt.periods},
				},
			}

			result := SolveRate(stream, Options{Iterations: 100, Epsilon: 0.000001})
			if math.Abs(result-tt.rate) > 0.0001 {
				t.Errorf("SolveRate() = %.6f, expected %.6f", result, tt.rate)
			}
		})
	}
}

func TestSolveRateExplicitPayments(t *testing.T) {
	// An explicit per-period payment list equivalent to a level annuity
	// solves to the same rate as the segment form.
	rate := 0.0075
	payment := knownRatePayment(10000, rate, 48)
	payments := make([]float64, 48)
	for i := range payments {
		payments[i] = payment
	}

	result := SolveRate(Stream{Proceeds: 10000, Payments: payments}, Options{Iterations: 100, Epsilon: 0.000001})
	if math.Abs(result-rate) > 0.0001 {
		t.Errorf("SolveRate() = %.6f, expected %.6f", result, rate)
	}
}

func TestSolveRateTwoSegments(t *testing.T) {
	// Draw phase of interest-only payments followed by a fully amortizing
	// repayment phase, as a HELOC produces. With no fees deducted from the
	// proceeds the implied rate is the note rate itself.
	principal := 50000.0
	rate := 0.006
	stream := Stream{
		Proceeds: principal,
		Segments: []Segment{
			{Payment: principal * rate, Periods: 120},
			{Payment: knownRatePayment(principal, rate, 240), Periods: 240},
		},
	}

	result := SolveRate(stream, Options{Iterations: 100, Epsilon: 0.000001})
	if math.Abs(result-rate) > 0.0001 {
		t.Errorf("SolveRate() = %.6f, expected %.6f", result, rate)
	}
}

func TestSolveRateFeesRaiseRate(t *testing.T) {
	payment := knownRatePayment(100000, 0.005, 360)
	stream := Stream{
		Proceeds: 98000, // $2,000 of fees withheld from proceeds
		Segments: []Segment{{Payment: payment, Periods: 360}},
	}

	result := SolveRate(stream, Options{Iterations: 100, Epsilon: 0.000001})
	if result <= 0.005 {
		t.Errorf("SolveRate() = %.6f, expected above the note rate 0.005", result)
	}
	if result > 0.006 {
		t.Errorf("SolveRate() = %.6f, unexpectedly far above the note rate", result)
	}
}

func TestSolveRateNonPositiveProceeds(t *testing.T) {
	tests := []struct {
		name     string
		proceeds float64
	}{
		{"Zero proceeds", 0},
		{"Negative proceeds", -500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream := Stream{
				Proceeds: tt.proceeds,
				Segments: []Segment{{Payment: 100, Periods: 12}},
			}
			if result := SolveRate(stream, Options{}); result != 0 {
				t.Errorf("SolveRate() = %.6f, expected 0", result)
			}
		})
	}
}

func TestSolveRateNeverNaN(t *testing.T) {
	// Exhausting the iteration budget without meeting any epsilon still
	// yields a finite rate inside the bracket.
	stream := Stream{
		Proceeds: 1000,
		Segments: []Segment{{Payment: 90, Periods: 12}},
	}

	result := SolveRate(stream, Options{Iterations: 5})
	if math.IsNaN(result) || math.IsInf(result, 0) {
		t.Fatalf("SolveRate() = %v, expected a finite rate", result)
	}
	if result < 0 || result > 1 {
		t.Errorf("SolveRate() = %.6f, expected within [0, 1]", result)
	}
}

func TestSolveRateZeroGuard(t *testing.T) {
	// With the guard enabled a zero-rate stream still terminates and
	// reports a rate at or below the guard's magnitude.
	payments := []float64{100, 100, 100, 100, 100, 100, 100, 100, 100, 100}
	stream := Stream{Proceeds: 1000, Payments: payments}

	result := SolveRate(stream, Options{Iterations: 50, Epsilon: 0.01, ZeroGuard: true})
	if result < 0 || result > 0.001 {
		t.Errorf("SolveRate() = %.6f, expected near zero", result)
	}
}

func TestPresentValueZeroRate(t *testing.T) {
	stream := Stream{
		Proceeds: 0,
		Segments: []Segment{
			{Payment: 100, Periods: 12},
			{Payment: 50, Periods: 6},
		},
	}
	if pv := stream.PresentValue(0); pv != 1500 {
		t.Errorf("PresentValue(0) = %.2f, expected 1500", pv)
	}
}
