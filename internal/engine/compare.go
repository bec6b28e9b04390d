package engine

import (
	"context"
	"math"
	"time"

	"github.com/oxyfarm/aercomp/internal/finance"
	"github.com/oxyfarm/aercomp/internal/logging"
)

// requiredAeratorFields are the aerator fields that must be present in every
// request, in the order they are reported when missing.
var requiredAeratorFields = []string{"sotr", "power_hp", "cost"}

// fallbackRevenue is used when revenue cannot be computed at all (degenerate
// culture length): large sentinel for implausible prices, modest otherwise.
const (
	fallbackRevenueLarge = 1e12
	fallbackRevenueSmall = 1e6
)

// Compare runs one full comparison: validation, sizing and cost aggregation
// per aerator, winner/baseline identification, and the financial metrics of
// each aerator relative to the least efficient one.
//
// All validation failures return a structured error from this package;
// degenerate numeric conditions inside the pipeline resolve to sentinel
// values and never fail the run.
func Compare(ctx context.Context, req *ComparisonRequest) (*Comparison, error) {
	log := logging.FromContext(ctx)
	start := time.Now()

	if len(req.Aerators) < 2 {
		return nil, ErrTooFewAerators
	}
	for _, a := range req.Aerators {
		for _, field := range requiredAeratorFields {
			if missingAeratorField(a, field) {
				return nil, &MissingFieldError{Field: field}
			}
		}
	}

	// Carve-out: a non-positive TOD is only rejected when no aerator is
	// itself degenerate (zero SOTR or zero durability). Given behavior,
	// reproduced as-is.
	zeroSOTR := false
	zeroDurability := false
	for _, a := range req.Aerators {
		if a.SOTR != nil && float64(*a.SOTR) == 0 {
			zeroSOTR = true
		}
		if a.Durability != nil && float64(*a.Durability) == 0 {
			zeroDurability = true
		}
	}

	farm := req.farmParameters()
	if farm.TOD <= 0 && !zeroSOTR && !zeroDurability {
		return nil, ErrNonPositiveTOD
	}
	fin := req.financialParameters()
	specs := req.aeratorSpecs()

	allZero := true
	for _, spec := range specs {
		if spec.SOTR != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, ErrAllZeroSOTR
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "compare").
		Int("aerators", len(specs)).
		Float64("tod", farm.TOD).
		Float64("area_ha", farm.AreaHa).
		Msg("starting comparison")

	revenue, err := AnnualRevenue(farm)
	if err != nil {
		// Degenerate culture length: recover with a sentinel so the
		// comparative ranking still runs.
		revenue = fallbackRevenueSmall
		if farm.ShrimpPrice > maxSaneShrimpPrice {
			revenue = fallbackRevenueLarge
		}
		log.Warn().
			Str("component", "engine").
			Err(err).
			Float64("fallback_revenue", revenue).
			Msg("annual revenue not computable, using sentinel")
	}

	outcomes := make([]AeratorOutcome, len(specs))
	for i, spec := range specs {
		sizing := ComputeSizing(spec, farm, fin.SafetyMargin, fin.Temperature)
		costs := ComputeCosts(spec, sizing, fin, revenue)
		outcomes[i] = AeratorOutcome{
			Name:                  spec.Name,
			NumAerators:           sizing.NumAerators,
			TotalPowerHP:          sizing.TotalPowerHP,
			TotalInitialCost:      sizing.TotalInitialCost,
			AnnualEnergyCost:      costs.AnnualEnergyCost,
			AnnualMaintenanceCost: costs.AnnualMaintenanceCost,
			AnnualReplacementCost: costs.AnnualReplacementCost,
			TotalAnnualCost:       costs.TotalAnnualCost,
			CostPercentRevenue:    costs.CostPercentRevenue,
			AeratorsPerHa:         sizing.AeratorsPerHa,
			HPPerHa:               sizing.HPPerHa,
			SAE:                   costs.SAE,
			CostPerKgO2:           costs.CostPerKgO2,
		}
	}

	winnerIdx, baselineIdx := rank(outcomes)
	winner := &outcomes[winnerIdx]
	baseline := &outcomes[baselineIdx]

	// Efficiency ratio scales the winner's relative metrics; a baseline that
	// transfers no oxygen contributes no scaling.
	efficiencyRatio := 1.0
	if specs[baselineIdx].SOTR > 0 {
		efficiencyRatio = specs[winnerIdx].SOTR / specs[baselineIdx].SOTR
	}

	equilibriumPrices := make(map[string]float64)
	for i := range outcomes {
		o := &outcomes[i]

		annualSaving := finance.Round2(baseline.TotalAnnualCost - o.TotalAnnualCost)
		additionalCost := finance.Round2(o.TotalInitialCost - baseline.TotalInitialCost)
		cashFlows := escalatedSavings(annualSaving, fin.InflationRate, fin.Horizon)

		o.NPVSavings = finance.NPV(cashFlows, fin.DiscountRate, fin.InflationRate)
		o.IRR = finance.IRR(additionalCost, cashFlows, efficiencyRatio, baseline.TotalInitialCost)

		if i == baselineIdx {
			// The baseline forgoes the winner's savings stream entirely.
			winnerSaving := finance.Round2(baseline.TotalAnnualCost - winner.TotalAnnualCost)
			winnerFlows := escalatedSavings(winnerSaving, fin.InflationRate, fin.Horizon)
			o.OpportunityCost = finance.NPV(winnerFlows, fin.DiscountRate, fin.InflationRate)
		}

		if i == winnerIdx {
			o.PaybackYears = finance.RelativePayback(additionalCost, annualSaving, efficiencyRatio)
			o.ROIPercent = finance.RelativeROI(annualSaving, additionalCost, baseline.TotalInitialCost, efficiencyRatio)
			o.ProfitabilityK = finance.RelativeProfitabilityIndex(o.NPVSavings, additionalCost, efficiencyRatio, baseline.TotalInitialCost)
		} else {
			o.PaybackYears = finance.Payback(additionalCost, annualSaving)
			o.ROIPercent = finance.ROI(annualSaving, additionalCost)
			o.ProfitabilityK = finance.ProfitabilityIndex(o.NPVSavings, additionalCost)

			equilibriumPrices[o.Name] = finance.EquilibriumPrice(
				o.TotalAnnualCost,
				winner.AnnualEnergyCost,
				winner.AnnualMaintenanceCost,
				winner.NumAerators,
				specs[winnerIdx].Durability,
				efficiencyRatio,
				winner.TotalInitialCost,
			)
		}
	}

	result := &Comparison{
		TOD:               finance.Round2(farm.TOD),
		AnnualRevenue:     revenue,
		AeratorResults:    outcomes,
		WinnerLabel:       winner.Name,
		EquilibriumPrices: equilibriumPrices,
	}
	result.sanitize()

	log.Info().
		Str("component", "engine").
		Str("operation", "compare").
		Str("winner", result.WinnerLabel).
		Float64("winner_total_annual_cost", winner.TotalAnnualCost).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("comparison complete")

	return result, nil
}

// missingAeratorField reports whether the named required field is absent.
func missingAeratorField(a AeratorInput, field string) bool {
	switch field {
	case "sotr":
		return a.SOTR == nil
	case "power_hp":
		return a.PowerHP == nil
	case "cost":
		return a.Cost == nil
	default:
		return false
	}
}

// rank returns the indices of the winner (minimum total annual cost) and the
// baseline (maximum). Ties resolve to the earliest entry.
func rank(outcomes []AeratorOutcome) (winnerIdx, baselineIdx int) {
	for i := 1; i < len(outcomes); i++ {
		if outcomes[i].TotalAnnualCost < outcomes[winnerIdx].TotalAnnualCost {
			winnerIdx = i
		}
		if outcomes[i].TotalAnnualCost > outcomes[baselineIdx].TotalAnnualCost {
			baselineIdx = i
		}
	}
	return winnerIdx, baselineIdx
}

// escalatedSavings builds the inflation-escalated annual saving series for
// the analysis horizon, each year rounded to cents.
func escalatedSavings(annualSaving, inflationRate float64, horizon int) []float64 {
	flows := make([]float64, 0, horizon)
	for t := 0; t < horizon; t++ {
		flows = append(flows, finance.Round2(annualSaving*math.Pow(1+inflationRate, float64(t))))
	}
	return flows
}
