package engine

import (
	"encoding/json"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default values applied to absent request fields. These mirror the published
// scenario defaults; presets may override them wholesale.
const (
	DefaultTOD           = 5443.7675
	DefaultAreaHa        = 1000
	DefaultShrimpPrice   = 5.0
	DefaultCultureDays   = 120
	DefaultShrimpDensity = 1.0
	DefaultPondDepthM    = 1.0

	DefaultEnergyCost    = 0.05
	DefaultHoursPerNight = 8
	DefaultDiscountRate  = 0.1
	DefaultInflationRate = 0.025
	DefaultHorizon       = 9
	DefaultSafetyMargin  = 0
	DefaultTemperature   = 31.5

	DefaultAeratorName = "Unknown"
	DefaultDurability  = 1
	DefaultMaintenance = 0
)

// Number is a float64 that also accepts quoted numeric strings on decode.
// Scenario files written by hand often quote numbers; the comparison treats
// "3.5" and 3.5 identically. A non-numeric value fails decoding with
// errNotNumeric so the orchestrator can attribute it to the right section.
type Number float64

// errNotNumeric marks a decode failure as a numeric-value problem rather than
// a structural one.
type errNotNumeric struct{ raw string }

func (e *errNotNumeric) Error() string { return "not a numeric value: " + e.raw }

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return &errNotNumeric{raw: s}
		}
		s = strings.TrimSpace(str)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &errNotNumeric{raw: s}
	}
	*n = Number(f)
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler for scenario files.
func (n *Number) UnmarshalYAML(value *yaml.Node) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(value.Value), 64)
	if err != nil {
		return &errNotNumeric{raw: value.Value}
	}
	*n = Number(f)
	return nil
}

// FarmInput is the farm section of a comparison request. All fields are
// optional; nil means "use the default".
type FarmInput struct {
	TOD           *Number `json:"tod" yaml:"tod"`
	FarmAreaHa    *Number `json:"farm_area_ha" yaml:"farm_area_ha"`
	ShrimpPrice   *Number `json:"shrimp_price" yaml:"shrimp_price"`
	CultureDays   *Number `json:"culture_days" yaml:"culture_days"`
	ShrimpDensity *Number `json:"shrimp_density_kg_m3" yaml:"shrimp_density_kg_m3"`
	PondDepthM    *Number `json:"pond_depth_m" yaml:"pond_depth_m"`
}

// FinancialInput is the financial section of a comparison request.
type FinancialInput struct {
	EnergyCost    *Number `json:"energy_cost" yaml:"energy_cost"`
	HoursPerNight *Number `json:"hours_per_night" yaml:"hours_per_night"`
	DiscountRate  *Number `json:"discount_rate" yaml:"discount_rate"`
	InflationRate *Number `json:"inflation_rate" yaml:"inflation_rate"`
	Horizon       *Number `json:"horizon" yaml:"horizon"`
	SafetyMargin  *Number `json:"safety_margin" yaml:"safety_margin"`
	Temperature   *Number `json:"temperature" yaml:"temperature"`
}

// AeratorInput is one aerator entry of a comparison request. SOTR, PowerHP
// and Cost are required; the rest default per the published contract.
type AeratorInput struct {
	Name        string  `json:"name" yaml:"name"`
	SOTR        *Number `json:"sotr" yaml:"sotr"`
	PowerHP     *Number `json:"power_hp" yaml:"power_hp"`
	Cost        *Number `json:"cost" yaml:"cost"`
	Durability  *Number `json:"durability" yaml:"durability"`
	Maintenance *Number `json:"maintenance" yaml:"maintenance"`
}

// ComparisonRequest is the full input document for one comparison run.
type ComparisonRequest struct {
	Farm      *FarmInput      `json:"farm" yaml:"farm"`
	Financial *FinancialInput `json:"financial" yaml:"financial"`
	Aerators  []AeratorInput  `json:"aerators" yaml:"aerators"`
}

// value returns n dereferenced, or def when the field was absent.
func value(n *Number, def float64) float64 {
	if n == nil {
		return def
	}
	return float64(*n)
}

// farmParameters materializes the farm section with defaults applied.
func (r *ComparisonRequest) farmParameters() FarmParameters {
	f := r.Farm
	if f == nil {
		f = &FarmInput{}
	}
	return FarmParameters{
		TOD:           value(f.TOD, DefaultTOD),
		AreaHa:        value(f.FarmAreaHa, DefaultAreaHa),
		ShrimpPrice:   value(f.ShrimpPrice, DefaultShrimpPrice),
		CultureDays:   value(f.CultureDays, DefaultCultureDays),
		ShrimpDensity: value(f.ShrimpDensity, DefaultShrimpDensity),
		PondDepthM:    value(f.PondDepthM, DefaultPondDepthM),
	}
}

// financialParameters materializes the financial section with defaults applied.
func (r *ComparisonRequest) financialParameters() FinancialParameters {
	f := r.Financial
	if f == nil {
		f = &FinancialInput{}
	}
	return FinancialParameters{
		EnergyCost:    value(f.EnergyCost, DefaultEnergyCost),
		HoursPerNight: value(f.HoursPerNight, DefaultHoursPerNight),
		DiscountRate:  value(f.DiscountRate, DefaultDiscountRate),
		InflationRate: value(f.InflationRate, DefaultInflationRate),
		Horizon:       int(value(f.Horizon, DefaultHorizon)),
		SafetyMargin:  value(f.SafetyMargin, DefaultSafetyMargin),
		Temperature:   value(f.Temperature, DefaultTemperature),
	}
}

// aeratorSpecs materializes the aerator list. Required fields must already
// have been checked by the orchestrator.
func (r *ComparisonRequest) aeratorSpecs() []AeratorSpec {
	specs := make([]AeratorSpec, 0, len(r.Aerators))
	for _, a := range r.Aerators {
		name := a.Name
		if name == "" {
			name = DefaultAeratorName
		}
		specs = append(specs, AeratorSpec{
			Name:        name,
			SOTR:        value(a.SOTR, 0),
			PowerHP:     value(a.PowerHP, 0),
			Cost:        value(a.Cost, 0),
			Durability:  value(a.Durability, DefaultDurability),
			Maintenance: value(a.Maintenance, DefaultMaintenance),
		})
	}
	return specs
}
