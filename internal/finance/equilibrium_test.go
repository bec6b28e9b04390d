package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquilibriumPrice(t *testing.T) {
	tests := []struct {
		name             string
		nonWinnerCost    float64
		winnerEnergy     float64
		winnerMaint      float64
		winnerUnits      float64
		winnerDurability float64
		efficiencyRatio  float64
		baselineCost     float64
		expected         float64
	}{
		{
			name:             "unscaled base price when no baseline cost",
			nonWinnerCost:    1000,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      10,
			winnerDurability: 5,
			efficiencyRatio:  1,
			baselineCost:     0,
			// (1000-400) * 5 / 10
			expected: 300,
		},
		{
			name:             "baseline cost damps the premium",
			nonWinnerCost:    1000,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      10,
			winnerDurability: 5,
			efficiencyRatio:  1,
			baselineCost:     1000,
			// 300 / (1 + 300/1000)
			expected: 230.77,
		},
		{
			name:             "efficiency ratio scales before damping",
			nonWinnerCost:    1000,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      10,
			winnerDurability: 5,
			efficiencyRatio:  2,
			baselineCost:     1000,
			expected:         461.54,
		},
		{
			name:             "winner already more expensive yields zero",
			nonWinnerCost:    350,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      10,
			winnerDurability: 5,
			efficiencyRatio:  1,
			baselineCost:     1000,
			expected:         0,
		},
		{
			name:             "zero winner units yields zero",
			nonWinnerCost:    1000,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      0,
			winnerDurability: 5,
			efficiencyRatio:  1,
			baselineCost:     1000,
			expected:         0,
		},
		{
			name:             "zero winner durability yields zero",
			nonWinnerCost:    1000,
			winnerEnergy:     300,
			winnerMaint:      100,
			winnerUnits:      10,
			winnerDurability: 0,
			efficiencyRatio:  1,
			baselineCost:     1000,
			expected:         0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EquilibriumPrice(
				tc.nonWinnerCost,
				tc.winnerEnergy,
				tc.winnerMaint,
				tc.winnerUnits,
				tc.winnerDurability,
				tc.efficiencyRatio,
				tc.baselineCost,
			)
			assert.InDelta(t, tc.expected, got, 0.01)
		})
	}
}
