package finance

import "math"

// IRR sentinels and clamps. The saturating cap and the -100 floor are the
// one consistent policy across the analysis: earlier drafts disagreed on
// ±50 vs 1000, and 1000 is the published behavior.
const (
	// IRRUnattractive marks a candidate whose savings never pay anything back.
	IRRUnattractive = -100.0

	// IRRSaturationCap caps reported IRR percentages.
	IRRSaturationCap = 1000.0

	// irrLowerBound and irrUpperBound bracket the usable solver output in
	// rate terms. Outside this range the rate is reported as a sentinel.
	irrLowerBound = -0.99
	irrUpperBound = 10.0

	// irrInitialGuess seeds the Newton-Raphson iteration.
	irrInitialGuess = 0.1
)

// saturatedIRR is the capped sentinel for candidates whose avoided cost
// cannot be expressed as a conventional rate.
func saturatedIRR(efficiencyRatio float64) float64 {
	return Round2(math.Min(100*efficiencyRatio, IRRSaturationCap))
}

// IRR computes the internal rate of return, in percent, of spending
// initialInvestment to obtain cashFlows, scaled by the winner/baseline
// efficiency ratio.
//
// A candidate that costs no more than the baseline (initialInvestment <= 0)
// has no conventional IRR. When the baseline cost and the first-year saving
// are both positive, the avoided baseline cost is modeled as the notional
// investment and the flows are rescaled accordingly; otherwise the saturated
// sentinel is returned. Candidates with non-positive total savings return
// -100.
func IRR(initialInvestment float64, cashFlows []float64, efficiencyRatio, baselineCost float64) float64 {
	total := 0.0
	for _, cf := range cashFlows {
		total += cf
	}
	if total <= 0 {
		return IRRUnattractive
	}

	flows := cashFlows
	if initialInvestment <= 0 {
		if baselineCost <= 0 {
			return saturatedIRR(efficiencyRatio)
		}
		annualSaving := cashFlows[0]
		if annualSaving <= 0 {
			return 0
		}
		// Avoided cost as implicit investment: solve against the baseline
		// cost with flows scaled to the same magnitude.
		scale := baselineCost / annualSaving * efficiencyRatio
		scaled := make([]float64, len(cashFlows))
		for i, cf := range cashFlows {
			scaled[i] = cf * scale
		}
		flows = scaled
		initialInvestment = baselineCost
	}

	npv := func(rate float64) float64 {
		if rate <= -1 {
			return math.Inf(1)
		}
		result := -initialInvestment
		for i, cf := range flows {
			result += cf / math.Pow(1+rate, float64(i+1))
		}
		return result
	}
	npvPrime := func(rate float64) float64 {
		if rate <= -1 {
			return 0
		}
		result := 0.0
		for i, cf := range flows {
			result += -float64(i+1) * cf / math.Pow(1+rate, float64(i+2))
		}
		return result
	}

	rate := NewtonRaphson(npv, npvPrime, irrInitialGuess, DefaultTolerance, DefaultMaxIterations)
	switch {
	case rate > irrLowerBound && rate < irrUpperBound:
		return Round2(math.Min(rate*100*efficiencyRatio, IRRSaturationCap))
	case rate >= irrUpperBound:
		return saturatedIRR(efficiencyRatio)
	default:
		return IRRUnattractive
	}
}
