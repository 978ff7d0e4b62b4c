// Package calc contains the consumer-finance calculators. Every calculator
// is a pure function from an input record to a result record; nothing is
// cached or shared between invocations, so all of them are safe to call
// concurrently. Degenerate numeric inputs (non-positive principal or term)
// produce zeroed results rather than errors or NaN.
package calc
