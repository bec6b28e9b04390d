// Package engine implements the aerator comparison core: unit sizing, cost
// aggregation, and the orchestration that ranks aerators and derives the
// financial metrics of choosing each one over the least efficient option.
//
// The engine is a deterministic function of its inputs. It performs no I/O,
// holds no shared state, and never panics across its boundary: degenerate
// inputs (zero SOTR, zero durability) produce sentinel values, and invalid
// requests produce structured validation errors.
package engine

// AeratorSpec describes one aerator model as entered by the user. Immutable
// after construction.
type AeratorSpec struct {
	// Name labels the aerator in results. Not required to be unique.
	Name string

	// SOTR is the standard oxygen transfer rate in kg O2/hour, rated at 20°C.
	SOTR float64

	// PowerHP is the nameplate power draw in horsepower.
	PowerHP float64

	// Cost is the purchase price per unit.
	Cost float64

	// Durability is the expected lifespan in years. Governs how the purchase
	// price is annualized into replacement cost.
	Durability float64

	// Maintenance is the annual maintenance cost per unit.
	Maintenance float64
}

// FarmParameters describes the shrimp farm being aerated.
type FarmParameters struct {
	// TOD is the total oxygen demand in kg O2/hour/ha.
	TOD float64

	// AreaHa is the farm area in hectares.
	AreaHa float64

	// ShrimpPrice is the sale price per kg of shrimp.
	ShrimpPrice float64

	// CultureDays is the length of one culture cycle in days.
	CultureDays float64

	// ShrimpDensity is the stocking density in kg/m³.
	ShrimpDensity float64

	// PondDepthM is the average pond depth in meters.
	PondDepthM float64
}

// FinancialParameters holds the economic assumptions of the analysis.
type FinancialParameters struct {
	// EnergyCost is the electricity price per kWh.
	EnergyCost float64

	// HoursPerNight is the nightly aeration runtime in hours.
	HoursPerNight float64

	// DiscountRate is the nominal discount rate for NPV.
	DiscountRate float64

	// InflationRate escalates annual savings over the horizon.
	InflationRate float64

	// Horizon is the analysis horizon in whole years.
	Horizon int

	// SafetyMargin is the oversizing margin applied to oxygen demand, in percent.
	SafetyMargin float64

	// Temperature is the farm water temperature in °C.
	Temperature float64
}

// AeratorOutcome is the full per-aerator result of one comparison run.
// Constructed once, read-only afterwards, serialized as-is.
type AeratorOutcome struct {
	Name                  string  `json:"name"`
	NumAerators           float64 `json:"num_aerators"`
	TotalPowerHP          float64 `json:"total_power_hp"`
	TotalInitialCost      float64 `json:"total_initial_cost"`
	AnnualEnergyCost      float64 `json:"annual_energy_cost"`
	AnnualMaintenanceCost float64 `json:"annual_maintenance_cost"`
	AnnualReplacementCost float64 `json:"annual_replacement_cost"`
	TotalAnnualCost       float64 `json:"total_annual_cost"`
	CostPercentRevenue    float64 `json:"cost_percent_revenue"`
	NPVSavings            float64 `json:"npv_savings"`
	PaybackYears          float64 `json:"payback_years"`
	ROIPercent            float64 `json:"roi_percent"`
	IRR                   float64 `json:"irr"`
	ProfitabilityK        float64 `json:"profitability_k"`
	AeratorsPerHa         float64 `json:"aerators_per_ha"`
	HPPerHa               float64 `json:"hp_per_ha"`
	SAE                   float64 `json:"sae"`
	CostPerKgO2           float64 `json:"cost_per_kg_o2"`
	OpportunityCost       float64 `json:"opportunity_cost"`
}

// Comparison is the top-level comparison result.
type Comparison struct {
	// TOD echoes the farm's total oxygen demand, rounded to 2 decimals.
	TOD float64 `json:"tod"`

	// AnnualRevenue is the farm's modeled annual revenue.
	AnnualRevenue float64 `json:"annual_revenue"`

	// AeratorResults holds one outcome per input aerator, in input order.
	AeratorResults []AeratorOutcome `json:"aeratorResults"`

	// WinnerLabel is the name of the aerator with the lowest total annual cost.
	WinnerLabel string `json:"winnerLabel"`

	// EquilibriumPrices maps each non-winner name to the price at which its
	// cost disadvantage against the winner would be exactly offset.
	EquilibriumPrices map[string]float64 `json:"equilibriumPrices"`
}
