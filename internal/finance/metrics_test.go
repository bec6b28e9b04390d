package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPayback(t *testing.T) {
	tests := []struct {
		name              string
		initialInvestment float64
		annualSaving      float64
		expected          float64
	}{
		{name: "four year payback", initialInvestment: 100, annualSaving: 25, expected: 4},
		{name: "fractional years round to cents", initialInvestment: 100, annualSaving: 30, expected: 3.33},
		{name: "zero investment pays back immediately", initialInvestment: 0, annualSaving: 25, expected: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Payback(tc.initialInvestment, tc.annualSaving), 1e-9)
		})
	}

	t.Run("no saving never pays back", func(t *testing.T) {
		assert.True(t, math.IsInf(Payback(100, 0), 1))
		assert.True(t, math.IsInf(Payback(100, -5), 1))
	})
}

// Payback x annualSaving must recover the investment up to rounding.
func TestPayback_RoundTrip(t *testing.T) {
	investments := []float64{50, 1234.56, 99999.99}
	savings := []float64{10, 250, 4321}

	for _, inv := range investments {
		for _, sav := range savings {
			p := Payback(inv, sav)
			assert.InDelta(t, inv, p*sav, sav*0.005+1e-9)
		}
	}
}

func TestRelativePayback(t *testing.T) {
	tests := []struct {
		name              string
		initialInvestment float64
		annualSaving      float64
		efficiencyRatio   float64
		expected          float64
	}{
		{
			name:              "positive investment behaves like plain payback",
			initialInvestment: 100,
			annualSaving:      25,
			efficiencyRatio:   2,
			expected:          4,
		},
		{
			name:              "cheaper candidate reports the scaled floor",
			initialInvestment: -500,
			annualSaving:      25,
			efficiencyRatio:   0.8,
			expected:          0.01,
		},
		{
			name:              "zero efficiency ratio keeps the unscaled floor",
			initialInvestment: -500,
			annualSaving:      25,
			efficiencyRatio:   0,
			expected:          0.01,
		},
		{
			name:              "huge efficiency ratio never rounds to zero",
			initialInvestment: -500,
			annualSaving:      25,
			efficiencyRatio:   10,
			expected:          0.01,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RelativePayback(tc.initialInvestment, tc.annualSaving, tc.efficiencyRatio)
			assert.InDelta(t, tc.expected, got, 1e-9)
			assert.Greater(t, got, 0.0)
		})
	}

	t.Run("no saving never pays back", func(t *testing.T) {
		assert.True(t, math.IsInf(RelativePayback(-500, 0, 2), 1))
	})
}

func TestROI(t *testing.T) {
	tests := []struct {
		name              string
		annualSaving      float64
		initialInvestment float64
		expected          float64
	}{
		{name: "quarter return", annualSaving: 50, initialInvestment: 200, expected: 25},
		{name: "no investment no ROI", annualSaving: 50, initialInvestment: 0, expected: 0},
		{name: "negative investment no ROI", annualSaving: 50, initialInvestment: -10, expected: 0},
		{name: "negative saving is a loss", annualSaving: -50, initialInvestment: 200, expected: -25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ROI(tc.annualSaving, tc.initialInvestment), 1e-9)
		})
	}
}

func TestRelativeROI(t *testing.T) {
	tests := []struct {
		name              string
		annualSaving      float64
		initialInvestment float64
		baselineCost      float64
		efficiencyRatio   float64
		expected          float64
	}{
		{
			name:              "zero investment normalizes against baseline",
			annualSaving:      50,
			initialInvestment: 0,
			baselineCost:      1000,
			efficiencyRatio:   2,
			expected:          10,
		},
		{
			name:              "negative investment amplifies through the savings factor",
			annualSaving:      50,
			initialInvestment: -100,
			baselineCost:      1000,
			efficiencyRatio:   1,
			expected:          5.5,
		},
		{
			name:              "positive investment uses the plain ratio capped",
			annualSaving:      50,
			initialInvestment: 25,
			baselineCost:      1000,
			efficiencyRatio:   1,
			expected:          100,
		},
		{
			name:              "cap scales with the efficiency ratio",
			annualSaving:      50,
			initialInvestment: 25,
			baselineCost:      1000,
			efficiencyRatio:   1.5,
			expected:          150,
		},
		{
			name:              "no saving is zero",
			annualSaving:      0,
			initialInvestment: 25,
			baselineCost:      1000,
			efficiencyRatio:   1,
			expected:          0,
		},
		{
			name:              "no baseline is zero",
			annualSaving:      50,
			initialInvestment: 25,
			baselineCost:      0,
			efficiencyRatio:   1,
			expected:          0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RelativeROI(tc.annualSaving, tc.initialInvestment, tc.baselineCost, tc.efficiencyRatio)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestProfitabilityIndex(t *testing.T) {
	assert.InDelta(t, 2, ProfitabilityIndex(500, 250), 1e-9)
	assert.InDelta(t, 0, ProfitabilityIndex(500, 0), 1e-9)
	assert.InDelta(t, 0, ProfitabilityIndex(500, -100), 1e-9)
}

func TestRelativeProfitabilityIndex(t *testing.T) {
	tests := []struct {
		name            string
		npvSavings      float64
		additionalCost  float64
		efficiencyRatio float64
		baselineCost    float64
		expected        float64
	}{
		{
			name:            "zero additional cost is the base k",
			npvSavings:      500,
			additionalCost:  0,
			efficiencyRatio: 1,
			baselineCost:    1000,
			expected:        0.5,
		},
		{
			name:            "positive premium damps k",
			npvSavings:      500,
			additionalCost:  1000,
			efficiencyRatio: 1,
			baselineCost:    1000,
			expected:        0.25,
		},
		{
			name:            "cheaper candidate grows k",
			npvSavings:      500,
			additionalCost:  -500,
			efficiencyRatio: 1,
			baselineCost:    1000,
			expected:        0.75,
		},
		{
			name:            "no NPV savings is zero",
			npvSavings:      0,
			additionalCost:  100,
			efficiencyRatio: 1,
			baselineCost:    1000,
			expected:        0,
		},
		{
			name:            "no baseline is zero",
			npvSavings:      500,
			additionalCost:  100,
			efficiencyRatio: 1,
			baselineCost:    0,
			expected:        0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := RelativeProfitabilityIndex(tc.npvSavings, tc.additionalCost, tc.efficiencyRatio, tc.baselineCost)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.23, Round2(1.2345))
	assert.Equal(t, 1.24, Round2(1.235))
	assert.Equal(t, -1.24, Round2(-1.235))
	assert.Equal(t, 0.0, Round2(0))
}

func TestRound3(t *testing.T) {
	assert.Equal(t, 0.026, Round3(0.02631578))
	assert.Equal(t, 1.235, Round3(1.2345))
}
