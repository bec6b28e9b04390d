package finance

import "math"

// EquilibriumPrice solves for the unit price at which a non-winning
// aerator's annual cost disadvantage against the winner is exactly offset.
//
// The winner's replacement cost is excluded from its side of the comparison:
// the equilibrium asks what the non-winner's units would have to cost, and
// replacement is the cost component driven by unit price. The base price is
// annualized over the winner's durability and spread across its unit count,
// then scaled by the efficiency ratio and damped against the baseline cost
// so implausibly large premiums shrink toward zero.
//
// Returns 0 when the cost difference, winner unit count, or winner
// durability is non-positive, since no meaningful equilibrium exists.
func EquilibriumPrice(
	totalAnnualCostNonWinner float64,
	winnerEnergyCost float64,
	winnerMaintenanceCost float64,
	winnerUnits float64,
	winnerDurability float64,
	efficiencyRatio float64,
	baselineCost float64,
) float64 {
	winnerCostNoReplacement := winnerEnergyCost + winnerMaintenanceCost
	costDifference := totalAnnualCostNonWinner - winnerCostNoReplacement
	if costDifference <= 0 || winnerUnits <= 0 || winnerDurability <= 0 {
		return 0
	}

	basePrice := costDifference * winnerDurability / winnerUnits

	scaled := basePrice * efficiencyRatio
	if baselineCost > 0 {
		costFactor := 1.0
		if basePrice > 0 {
			costFactor = basePrice / baselineCost
		}
		scaled = basePrice * efficiencyRatio * (1 / (1 + costFactor))
	}
	return Round2(math.Max(0, scaled))
}
