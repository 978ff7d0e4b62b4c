// Package cashflow implements the shared bisection root-finder used by every
// APR and IRR calculation.
package cashflow

import "math"

// DefaultIterations bounds the bisection when the caller does not specify a
// count.
const DefaultIterations = 100

// zeroRateGuard replaces a zero midpoint so exponentiation stays defined.
const zeroRateGuard = 0.00001

// Segment is a run of equal periodic payments within a cash-flow stream.
type Segment struct {
	Payment float64
	Periods int
}

// Stream models the cash flows of a loan from the borrower's perspective:
// proceeds received up front followed by one or more back-to-back annuity
// segments. Segment k is discounted back by the periods of all earlier
// segments, which is how a HELOC repayment phase trails its draw phase.
// When Payments is non-empty it replaces Segments and holds one explicit
// amount per period.
type Stream struct {
	Proceeds float64
	Segments []Segment
	Payments []float64
}

// Options bound the bisection. Iterations defaults to DefaultIterations;
// Epsilon <= 0 disables the early exit on |NPV|; ZeroGuard substitutes a tiny
// positive rate should the midpoint land exactly on zero.
type Options struct {
	Iterations int
	Epsilon    float64
	ZeroGuard  bool
}

// PresentValue discounts the stream's payments at periodic rate r.
func (s Stream) PresentValue(r float64) float64 {
	if len(s.Payments) > 0 {
		pv := 0.0
		for i, payment := range s.Payments {
			pv += payment / math.Pow(1+r, float64(i+1))
		}
		return pv
	}

	pv := 0.0
	offset := 0
	for _, seg := range s.Segments {
		var segmentPV float64
		if r == 0 {
			segmentPV = seg.Payment * float64(seg.Periods)
		} else {
			segmentPV = seg.Payment * (1 - math.Pow(1+r, -float64(seg.Periods))) / r
		}
		pv += segmentPV * math.Pow(1+r, -float64(offset))
		offset += seg.Periods
	}
	return pv
}

// SolveRate finds the periodic rate in [0, 1] at which the present value of
// the stream's payments equals the proceeds, i.e. the root of
// NPV(r) = Proceeds - PV(payments, r). PV is a decreasing function of r, so
// a positive NPV means the midpoint rate is too high and the upper bound
// moves down. The final midpoint is always returned; the solver never
// produces NaN and degrades gracefully when the iteration budget runs out
// before the epsilon is met.
//
// Streams with no positive proceeds have no meaningful implied rate and
// report zero.
func SolveRate(s Stream, opts Options) float64 {
	if s.Proceeds <= 0 {
		return 0
	}

	iterations := opts.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}

	low, high := 0.0, 1.0
	rate := 0.0
	for i := 0; i < iterations; i++ {
		mid := (low + high) / 2
		if opts.ZeroGuard && mid == 0 {
			mid = zeroRateGuard
		}
		rate = mid

		npv := s.Proceeds - s.PresentValue(mid)
		if opts.Epsilon > 0 && math.Abs(npv) < opts.Epsilon {
			break
		}
		if npv > 0 {
			high = mid
		} else {
			low = mid
		}
	}
	return rate
}
