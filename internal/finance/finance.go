// Package finance holds the capital-budgeting math used to compare aerator
// investments: NPV, IRR via Newton-Raphson, payback, ROI, profitability
// index, and the equilibrium price of a non-winning aerator.
//
// Every function is pure and total: degenerate denominators return sentinel
// values (0, ±100, a saturating cap) instead of faulting, because deliberately
// broken specs are legitimate inputs to a comparative analysis. Currency
// results are rounded to cents before being returned; that rounding is part
// of the output contract, not a convenience.
package finance

import "math"

// Round2 rounds to 2 decimal places (cents).
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round3 rounds to 3 decimal places, used for cost per kg O2.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
