package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNPV(t *testing.T) {
	tests := []struct {
		name          string
		cashFlows     []float64
		discountRate  float64
		inflationRate float64
		expected      float64
		delta         float64
	}{
		{
			name:          "equal rates collapse to plain sum",
			cashFlows:     []float64{100, 200, 300},
			discountRate:  0.05,
			inflationRate: 0.05,
			expected:      600,
			delta:         1e-9,
		},
		{
			name:          "rates within epsilon collapse to plain sum",
			cashFlows:     []float64{100.5, 200.25},
			discountRate:  0.1,
			inflationRate: 0.1 + 1e-8,
			expected:      300.75,
			delta:         1e-9,
		},
		{
			name:          "single flow discounted one period",
			cashFlows:     []float64{110},
			discountRate:  0.1,
			inflationRate: 0,
			expected:      100,
			delta:         0.01,
		},
		{
			name:          "two flows at 10 percent real rate",
			cashFlows:     []float64{110, 121},
			discountRate:  0.1,
			inflationRate: 0,
			expected:      200,
			delta:         0.01,
		},
		{
			name:          "inflation partially offsets discounting",
			cashFlows:     []float64{105},
			discountRate:  0.05,
			inflationRate: 0.025,
			// real rate = 1.05/1.025 - 1, flow discounted one period
			expected: 102.5,
			delta:    0.01,
		},
		{
			name:          "empty flows",
			cashFlows:     nil,
			discountRate:  0.1,
			inflationRate: 0.025,
			expected:      0,
			delta:         1e-9,
		},
		{
			name:          "negative flows discount symmetrically",
			cashFlows:     []float64{-110},
			discountRate:  0.1,
			inflationRate: 0,
			expected:      -100,
			delta:         0.01,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := NPV(tc.cashFlows, tc.discountRate, tc.inflationRate)
			assert.InDelta(t, tc.expected, got, tc.delta)
		})
	}
}

func TestNPV_EqualRatesSkipRounding(t *testing.T) {
	// The equal-rate branch returns the raw sum; sub-cent precision must
	// survive.
	got := NPV([]float64{0.001, 0.002}, 0.1, 0.1)
	assert.InDelta(t, 0.003, got, 1e-12)
}
