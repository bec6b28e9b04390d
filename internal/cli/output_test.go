package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxyfarm/aercomp/internal/config"
	"github.com/oxyfarm/aercomp/internal/engine"
)

func TestInterpretIRR(t *testing.T) {
	tests := []struct {
		name     string
		irr      float64
		expected string
	}{
		{name: "above 60", irr: 75, expected: "Highly attractive"},
		{name: "above 40", irr: 55, expected: "Very attractive"},
		{name: "above 20", irr: 30, expected: "Attractive"},
		{name: "above 10", irr: 15, expected: "Moderately attractive"},
		{name: "above 5", irr: 7, expected: "Marginally attractive"},
		{name: "above 2.5", irr: 3, expected: "Slightly positive"},
		{name: "low positive", irr: 1, expected: "Unattractive"},
		{name: "unattractive sentinel", irr: -100, expected: "Unattractive"},
		{name: "saturated", irr: 1000, expected: "Highly attractive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InterpretIRR(tc.irr))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 28))
	assert.Equal(t, "exactly", truncate("exactly", 7))
	assert.Equal(t, "a long na...", truncate("a long name that overflows", 12))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}

func demoComparison(t *testing.T) *engine.Comparison {
	t.Helper()
	preset := config.BuiltinPresets()["demo-farm"]
	result, err := engine.Compare(context.Background(), &preset.Request)
	require.NoError(t, err)
	return result
}

func TestRenderJSON(t *testing.T) {
	result := demoComparison(t)

	var buf bytes.Buffer
	require.NoError(t, renderJSON(&buf, result))

	var decoded engine.Comparison
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Aerator 2", decoded.WinnerLabel)
	assert.Len(t, decoded.AeratorResults, 2)
}

func TestRenderTable(t *testing.T) {
	result := demoComparison(t)

	var buf bytes.Buffer
	renderTable(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "AERATOR COMPARISON")
	assert.Contains(t, out, "Aerator 1")
	assert.Contains(t, out, "Aerator 2")
	assert.Contains(t, out, "EQUILIBRIUM PRICES")
	// Locale-aware grouping on the big currency figures.
	assert.Contains(t, out, ",")
}

func TestRenderTable_NoEquilibriumSection(t *testing.T) {
	result := demoComparison(t)
	result.EquilibriumPrices = nil

	var buf bytes.Buffer
	renderTable(&buf, result)
	assert.NotContains(t, buf.String(), "EQUILIBRIUM PRICES")
}
