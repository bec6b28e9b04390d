package finance

import "math"

// minRelativePayback is the floor for an already-paid-back candidate. Never
// zero: a literal zero payback would dominate every ranking it appears in.
const minRelativePayback = 0.01

// Payback returns initialInvestment / annualSaving in years, or +Inf when
// there is no saving to recover the investment with. Callers sanitize the
// infinity before exposing results.
func Payback(initialInvestment, annualSaving float64) float64 {
	if annualSaving > 0 {
		return Round2(initialInvestment / annualSaving)
	}
	return math.Inf(1)
}

// RelativePayback is the winner-branch payback. A candidate that is cheaper
// than the baseline (negative investment difference) has effectively already
// paid back; it reports a small positive value shrunk further by efficiency.
func RelativePayback(initialInvestment, annualSaving, efficiencyRatio float64) float64 {
	if annualSaving <= 0 {
		return math.Inf(1)
	}
	if initialInvestment < 0 {
		if efficiencyRatio <= 0 {
			return minRelativePayback
		}
		// The rounded value must stay positive: a literal zero payback
		// would dominate every ranking it appears in.
		if p := Round2(minRelativePayback / efficiencyRatio); p > 0 {
			return p
		}
		return minRelativePayback
	}
	return Round2(initialInvestment / annualSaving)
}

// ROI returns the plain return on investment in percent, 0 when there is no
// positive investment to return on.
func ROI(annualSaving, initialInvestment float64) float64 {
	if initialInvestment <= 0 {
		return 0
	}
	return Round2(annualSaving / initialInvestment * 100)
}

// RelativeROI is the winner-branch ROI, normalized against the baseline cost
// when the investment difference is zero or negative and capped at
// 100 x efficiencyRatio in every branch.
func RelativeROI(annualSaving, initialInvestment, baselineCost, efficiencyRatio float64) float64 {
	if annualSaving <= 0 || baselineCost <= 0 {
		return 0
	}
	roiCap := 100 * efficiencyRatio
	switch {
	case initialInvestment == 0:
		roi := annualSaving / baselineCost * 100 * efficiencyRatio
		return Round2(math.Min(roi, roiCap))
	case initialInvestment < 0:
		costSavingsFactor := math.Abs(initialInvestment) / baselineCost
		roi := annualSaving / baselineCost * 100 * efficiencyRatio * (1 + costSavingsFactor)
		return Round2(math.Min(roi, roiCap))
	default:
		roi := annualSaving / initialInvestment * 100
		return Round2(math.Min(roi, roiCap))
	}
}

// ProfitabilityIndex returns npvSavings / additionalCost, the plain
// profitability index k, or 0 when there is no positive additional cost.
func ProfitabilityIndex(npvSavings, additionalCost float64) float64 {
	if additionalCost <= 0 {
		return 0
	}
	return Round2(npvSavings / additionalCost)
}

// RelativeProfitabilityIndex is the winner-branch k, normalized by the
// baseline cost. A positive additional cost damps k through a cost factor
// (diminishing attractiveness as the premium grows); a negative additional
// cost grows k (cheaper and better).
func RelativeProfitabilityIndex(npvSavings, additionalCost, efficiencyRatio, baselineCost float64) float64 {
	if npvSavings <= 0 || baselineCost <= 0 {
		return 0
	}
	kBase := npvSavings / baselineCost * efficiencyRatio
	switch {
	case additionalCost > 0:
		costFactor := baselineCost / (baselineCost + additionalCost)
		return Round2(kBase * costFactor)
	case additionalCost < 0:
		costSavingsFactor := math.Abs(additionalCost) / baselineCost
		return Round2(kBase * (1 + costSavingsFactor))
	default:
		return Round2(kBase)
	}
}
