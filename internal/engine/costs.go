package engine

import (
	"errors"

	"github.com/oxyfarm/aercomp/internal/finance"
)

// Revenue guards. Prices and areas beyond these bounds clamp revenue to a
// large finite sentinel instead of overflowing downstream NPV and IRR math.
const (
	maxSaneShrimpPrice = 100.0
	revenueClamp       = 1e12

	daysPerYear = 365
)

// ErrNonPositiveCultureDays is returned by AnnualRevenue when the culture
// cycle length is zero or negative.
var ErrNonPositiveCultureDays = errors.New("culture days must be positive")

// AnnualRevenue models the farm's yearly shrimp revenue: pond density
// (kg/m³ x depth x 10 converts to ton/ha, x1000 back to kg/ha) times area,
// price, and cycles per year.
func AnnualRevenue(farm FarmParameters) (float64, error) {
	if farm.CultureDays <= 0 {
		return 0, ErrNonPositiveCultureDays
	}

	pondDensityTonHa := farm.ShrimpDensity * farm.PondDepthM * 10
	productionPerHaKg := pondDensityTonHa * 1000
	totalProductionKg := productionPerHaKg * farm.AreaHa
	revenuePerCycle := totalProductionKg * farm.ShrimpPrice
	cyclesPerYear := daysPerYear / farm.CultureDays

	if farm.ShrimpPrice > maxSaneShrimpPrice || farm.AreaHa > maxSaneAreaHa {
		return revenueClamp, nil
	}
	return finance.Round2(revenuePerCycle * cyclesPerYear), nil
}

// CostBreakdown is the annual operating cost profile of one sized aerator.
type CostBreakdown struct {
	AnnualEnergyCost      float64
	AnnualMaintenanceCost float64
	AnnualReplacementCost float64
	TotalAnnualCost       float64
	CostPercentRevenue    float64

	// SAE is the nameplate standard aeration efficiency in kg O2/kWh,
	// deliberately not temperature-adjusted.
	SAE float64

	// CostPerKgO2 is the energy cost of transferring one kg of oxygen.
	CostPerKgO2 float64
}

// ComputeCosts aggregates the annual cost of running the sized units.
//
// A durability of zero or less yields a replacement cost of zero rather
// than a division fault: the spec is degenerate and loses on ranking, not
// by crashing the run.
func ComputeCosts(spec AeratorSpec, sizing Sizing, fin FinancialParameters, annualRevenue float64) CostBreakdown {
	units := sizing.NumAerators
	powerKW := HPToKW(spec.PowerHP)
	operatingHours := fin.HoursPerNight * daysPerYear

	c := CostBreakdown{
		AnnualEnergyCost:      finance.Round2(powerKW * fin.EnergyCost * operatingHours * units),
		AnnualMaintenanceCost: finance.Round2(spec.Maintenance * units),
	}
	if spec.Durability > 0 {
		c.AnnualReplacementCost = finance.Round2(units * spec.Cost / spec.Durability)
	}
	c.TotalAnnualCost = finance.Round2(c.AnnualEnergyCost + c.AnnualMaintenanceCost + c.AnnualReplacementCost)

	if annualRevenue > 0 {
		c.CostPercentRevenue = finance.Round2(c.TotalAnnualCost / annualRevenue * 100)
	}

	if powerKW > 0 {
		c.SAE = finance.Round2(spec.SOTR / powerKW)
	}
	if c.SAE > 0 {
		c.CostPerKgO2 = finance.Round3(fin.EnergyCost / c.SAE)
	}
	return c
}
