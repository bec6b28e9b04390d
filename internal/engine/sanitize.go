package engine

import (
	"math"

	"github.com/oxyfarm/aercomp/internal/finance"
)

// Sentinels substituted for non-finite values before external exposure.
// JSON cannot represent Inf or NaN, and consumers rank on these numbers.
const (
	// PositiveInfinitySentinel replaces +Inf (e.g. an infinite payback).
	PositiveInfinitySentinel = 1e12

	// NegativeInfinitySentinel replaces -Inf.
	NegativeInfinitySentinel = -1e12
)

// FiniteCurrency maps a float into the externally exposed form: non-finite
// values become sentinels, everything else is rounded to cents. Idempotent.
func FiniteCurrency(x float64) float64 {
	switch {
	case math.IsInf(x, 1):
		return PositiveInfinitySentinel
	case math.IsInf(x, -1):
		return NegativeInfinitySentinel
	case math.IsNaN(x):
		return 0
	default:
		return finance.Round2(x)
	}
}

// SanitizeTree walks a decoded JSON-like structure (maps, slices, floats)
// and applies FiniteCurrency to every numeric leaf. It is idempotent and is
// the last line of defense before a result document leaves the process.
func SanitizeTree(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = SanitizeTree(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = SanitizeTree(item)
		}
		return out
	case float64:
		return FiniteCurrency(val)
	default:
		return v
	}
}

// sanitize normalizes every numeric field of the outcome in place.
func (o *AeratorOutcome) sanitize() {
	o.NumAerators = FiniteCurrency(o.NumAerators)
	o.TotalPowerHP = FiniteCurrency(o.TotalPowerHP)
	o.TotalInitialCost = FiniteCurrency(o.TotalInitialCost)
	o.AnnualEnergyCost = FiniteCurrency(o.AnnualEnergyCost)
	o.AnnualMaintenanceCost = FiniteCurrency(o.AnnualMaintenanceCost)
	o.AnnualReplacementCost = FiniteCurrency(o.AnnualReplacementCost)
	o.TotalAnnualCost = FiniteCurrency(o.TotalAnnualCost)
	o.CostPercentRevenue = FiniteCurrency(o.CostPercentRevenue)
	o.NPVSavings = FiniteCurrency(o.NPVSavings)
	o.PaybackYears = FiniteCurrency(o.PaybackYears)
	o.ROIPercent = FiniteCurrency(o.ROIPercent)
	o.IRR = FiniteCurrency(o.IRR)
	o.ProfitabilityK = FiniteCurrency(o.ProfitabilityK)
	o.AeratorsPerHa = FiniteCurrency(o.AeratorsPerHa)
	o.HPPerHa = FiniteCurrency(o.HPPerHa)
	o.SAE = FiniteCurrency(o.SAE)
	// CostPerKgO2 keeps 3 decimals; only non-finite values are replaced.
	if math.IsInf(o.CostPerKgO2, 0) || math.IsNaN(o.CostPerKgO2) {
		o.CostPerKgO2 = FiniteCurrency(o.CostPerKgO2)
	}
	o.OpportunityCost = FiniteCurrency(o.OpportunityCost)
}

// sanitize normalizes the whole comparison before it is returned.
func (c *Comparison) sanitize() {
	c.TOD = FiniteCurrency(c.TOD)
	c.AnnualRevenue = FiniteCurrency(c.AnnualRevenue)
	for i := range c.AeratorResults {
		c.AeratorResults[i].sanitize()
	}
	for name, price := range c.EquilibriumPrices {
		c.EquilibriumPrices[name] = FiniteCurrency(price)
	}
}
