// Package loanlimits provides the 2025 loan limit reference tables by
// program and state. The data is static and read-only; calculators and the
// API consume it for lookups only.
package loanlimits

// Program identifies a loan limit program.
type Program string

// Supported programs.
const (
	Conforming Program = "fannie"
	FHA        Program = "fha"
)

// Limit holds the limits for one state by unit count.
type Limit struct {
	OneUnit   float64
	TwoUnit   float64
	ThreeUnit float64
	FourUnit  float64
}

// Baseline and high-cost tiers for 2025.
var (
	conformingBaseline = Limit{OneUnit: 806500, TwoUnit: 1032500, ThreeUnit: 1248050, FourUnit: 1551000}
	conformingHighCost = Limit{OneUnit: 1209750, TwoUnit: 1548750, ThreeUnit: 1872100, FourUnit: 2326500}
	fhaFloor           = Limit{OneUnit: 498257, TwoUnit: 637950, ThreeUnit: 771125, FourUnit: 958350}
	fhaCeiling         = Limit{OneUnit: 1149825, TwoUnit: 1472250, ThreeUnit: 1779525, FourUnit: 2211600}
	fhaSpecial         = Limit{OneUnit: 747385, TwoUnit: 956925, ThreeUnit: 1156688, FourUnit: 1437525}
)

// conformingHighCostStates are jurisdictions at the conforming high-cost
// tier for 2025 (statewide simplification; county-level data is out of
// scope). WY reflects Teton county.
var conformingHighCostStates = map[string]bool{
	"AK": true, "CA": true, "DC": true, "HI": true,
	"NJ": true, "NY": true, "WY": true,
}

// fhaCeilingStates are jurisdictions at the FHA ceiling for 2025.
var fhaCeilingStates = map[string]bool{
	"CA": true, "DC": true, "NJ": true, "NY": true,
}

// fhaSpecialStates are the special-exception jurisdictions (AK/HI statutory
// adjustment; WY per Teton county).
var fhaSpecialStates = map[string]bool{
	"AK": true, "HI": true, "WY": true,
}

// states is every supported two-letter jurisdiction code.
var states = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// States returns every supported jurisdiction code.
func States() []string {
	out := make([]string, len(states))
	copy(out, states)
	return out
}

// Lookup returns the 2025 limits for a program and two-letter state code.
// The second return value is false for unknown programs or states.
func Lookup(program Program, state string) (Limit, bool) {
	known := false
	for _, s := range states {
		if s == state {
			known = true
			break
		}
	}
	if !known {
		return Limit{}, false
	}

	switch program {
	case Conforming:
		if conformingHighCostStates[state] {
			return conformingHighCost, true
		}
		return conformingBaseline, true
	case FHA:
		if fhaCeilingStates[state] {
			return fhaCeiling, true
		}
		if fhaSpecialStates[state] {
			return fhaSpecial, true
		}
		return fhaFloor, true
	default:
		return Limit{}, false
	}
}
