package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	data := []byte(`{
		"farm": {"tod": 5.47, "farm_area_ha": "1000"},
		"financial": {"energy_cost": "0.05", "horizon": 10},
		"aerators": [
			{"name": "Aerator 1", "sotr": 1.9, "power_hp": "3", "cost": 700},
			{"name": "Aerator 2", "sotr": 3.5, "power_hp": 3, "cost": 900}
		]
	}`)

	req, err := ParseRequest(data)
	require.NoError(t, err)

	require.NotNil(t, req.Farm)
	assert.Equal(t, Number(5.47), *req.Farm.TOD)
	// Quoted numbers decode the same as bare ones.
	assert.Equal(t, Number(1000), *req.Farm.FarmAreaHa)

	require.NotNil(t, req.Financial)
	assert.Equal(t, Number(0.05), *req.Financial.EnergyCost)
	assert.Equal(t, Number(10), *req.Financial.Horizon)

	require.Len(t, req.Aerators, 2)
	assert.Equal(t, "Aerator 1", req.Aerators[0].Name)
	assert.Equal(t, Number(3), *req.Aerators[0].PowerHP)
	assert.Nil(t, req.Aerators[0].Durability)
}

func TestParseRequest_SectionErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected error
	}{
		{
			name:     "non-numeric farm value",
			body:     `{"farm": {"tod": "abc"}, "aerators": []}`,
			expected: ErrInvalidFarmValue,
		},
		{
			name:     "non-numeric financial value",
			body:     `{"financial": {"energy_cost": "cheap"}, "aerators": []}`,
			expected: ErrInvalidFinancialValue,
		},
		{
			name:     "non-numeric aerator value",
			body:     `{"aerators": [{"name": "A", "sotr": "lots"}]}`,
			expected: ErrInvalidAeratorValue,
		},
		{
			name:     "boolean farm value",
			body:     `{"farm": {"tod": true}}`,
			expected: ErrInvalidFarmValue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tc.body))
			assert.ErrorIs(t, err, tc.expected)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestParseRequest_MalformedJSON(t *testing.T) {
	_, err := ParseRequest([]byte(`{not json`))
	require.Error(t, err)
	assert.False(t, IsValidationError(err))
}

func TestParseRequest_EmptySectionsUseDefaults(t *testing.T) {
	req, err := ParseRequest([]byte(`{"aerators": [{"sotr": 1, "power_hp": 1, "cost": 1}]}`))
	require.NoError(t, err)
	assert.Nil(t, req.Farm)
	assert.Nil(t, req.Financial)

	farm := req.farmParameters()
	assert.Equal(t, DefaultTOD, farm.TOD)
	assert.Equal(t, float64(DefaultAreaHa), farm.AreaHa)

	fin := req.financialParameters()
	assert.Equal(t, DefaultEnergyCost, fin.EnergyCost)
	assert.Equal(t, DefaultHorizon, fin.Horizon)
	assert.Equal(t, DefaultTemperature, fin.Temperature)
}

func TestParseRequestYAML(t *testing.T) {
	data := []byte(`
farm:
  tod: 5.47
  farm_area_ha: "1000"
financial:
  energy_cost: 0.05
aerators:
  - name: Aerator 1
    sotr: 1.9
    power_hp: 3
    cost: 700
  - name: Aerator 2
    sotr: 3.5
    power_hp: 3
    cost: 900
`)

	req, err := ParseRequestYAML(data)
	require.NoError(t, err)

	require.NotNil(t, req.Farm)
	assert.Equal(t, Number(5.47), *req.Farm.TOD)
	assert.Equal(t, Number(1000), *req.Farm.FarmAreaHa)
	require.Len(t, req.Aerators, 2)
	assert.Equal(t, "Aerator 2", req.Aerators[1].Name)
}

func TestParseRequestYAML_SectionErrors(t *testing.T) {
	_, err := ParseRequestYAML([]byte("farm:\n  tod: plenty\n"))
	assert.ErrorIs(t, err, ErrInvalidFarmValue)

	_, err = ParseRequestYAML([]byte("aerators:\n  - sotr: lots\n"))
	assert.ErrorIs(t, err, ErrInvalidAeratorValue)
}

func TestAeratorSpecs_Defaults(t *testing.T) {
	sotr, power, cost := Number(1.5), Number(2), Number(500)
	req := &ComparisonRequest{
		Aerators: []AeratorInput{{SOTR: &sotr, PowerHP: &power, Cost: &cost}},
	}

	specs := req.aeratorSpecs()
	require.Len(t, specs, 1)
	assert.Equal(t, DefaultAeratorName, specs[0].Name)
	assert.Equal(t, float64(DefaultDurability), specs[0].Durability)
	assert.Equal(t, float64(DefaultMaintenance), specs[0].Maintenance)
}
