package engine

import (
	"math"

	"github.com/oxyfarm/aercomp/internal/finance"
)

// Extreme-area guard. Beyond this the unit count is pinned to a large finite
// sentinel so downstream cost and IRR math stays bounded.
const (
	maxSaneAreaHa    = 1e9
	clampedUnitCount = 1e7
)

// Sizing is the unit-count result for one aerator against one farm.
type Sizing struct {
	// NumAerators is the required unit count, rounded up. Zero when the
	// aerator cannot transfer oxygen at farm temperature.
	NumAerators float64

	// TotalPowerHP is the combined nameplate power of all units.
	TotalPowerHP float64

	// TotalInitialCost is the combined purchase price of all units.
	TotalInitialCost float64

	// AeratorsPerHa and HPPerHa are per-hectare densities.
	AeratorsPerHa float64
	HPPerHa       float64
}

// ComputeSizing determines how many units of the aerator are needed to meet
// the farm's oxygen demand including the safety margin.
//
// An aerator with OTR_T <= 0 gets a unit count of zero rather than a
// division fault: it cannot meet any demand and is penalized by the
// downstream ranking instead.
func ComputeSizing(spec AeratorSpec, farm FarmParameters, safetyMarginPct, temperatureC float64) Sizing {
	otrT := AdjustedTransferRate(spec.SOTR, temperatureC)

	totalDemand := farm.TOD * farm.AreaHa * (1 + safetyMarginPct/100)

	var units float64
	switch {
	case farm.AreaHa > maxSaneAreaHa:
		units = clampedUnitCount
	case otrT > 0:
		units = math.Ceil(totalDemand / otrT)
	}

	s := Sizing{
		NumAerators:      units,
		TotalPowerHP:     finance.Round2(units * spec.PowerHP),
		TotalInitialCost: finance.Round2(units * spec.Cost),
	}
	if farm.AreaHa > 0 {
		s.AeratorsPerHa = finance.Round2(units / farm.AreaHa)
		s.HPPerHa = finance.Round2(s.TotalPowerHP / farm.AreaHa)
	}
	return s
}
