package batch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxyfarm/aercomp/internal/engine"
)

func num(v float64) *engine.Number {
	n := engine.Number(v)
	return &n
}

func validRequest() *engine.ComparisonRequest {
	return &engine.ComparisonRequest{
		Aerators: []engine.AeratorInput{
			{Name: "A", SOTR: num(1.9), PowerHP: num(3), Cost: num(700)},
			{Name: "B", SOTR: num(3.5), PowerHP: num(3), Cost: num(900)},
		},
	}
}

func TestNewRunner(t *testing.T) {
	tests := []struct {
		name        string
		concurrency int
		wantErr     bool
	}{
		{name: "default concurrency", concurrency: DefaultConcurrency},
		{name: "single worker", concurrency: 1},
		{name: "max concurrency", concurrency: MaxConcurrency},
		{name: "zero workers", concurrency: 0, wantErr: true},
		{name: "negative workers", concurrency: -1, wantErr: true},
		{name: "above the cap", concurrency: MaxConcurrency + 1, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := NewRunner(tc.concurrency)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConcurrency)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}
}

func TestRunner_Run(t *testing.T) {
	r, err := NewRunner(2)
	require.NoError(t, err)

	scenarios := make([]Scenario, 6)
	for i := range scenarios {
		scenarios[i] = Scenario{Label: fmt.Sprintf("scenario-%d", i), Request: validRequest()}
	}

	results, err := r.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, results, len(scenarios))

	// Results come back in input order regardless of completion order.
	for i, res := range results {
		assert.Equal(t, fmt.Sprintf("scenario-%d", i), res.Label)
		assert.NoError(t, res.Err)
		require.NotNil(t, res.Comparison)
		assert.Equal(t, "B", res.Comparison.WinnerLabel)
	}
}

func TestRunner_Run_RecordsScenarioErrors(t *testing.T) {
	r, err := NewRunner(DefaultConcurrency)
	require.NoError(t, err)

	broken := validRequest()
	broken.Aerators = broken.Aerators[:1]

	results, err := r.Run(context.Background(), []Scenario{
		{Label: "good", Request: validRequest()},
		{Label: "broken", Request: broken},
		{Label: "also-good", Request: validRequest()},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, engine.ErrTooFewAerators)
	assert.Nil(t, results[1].Comparison)
	assert.NoError(t, results[2].Err)
}

func TestRunner_Run_EmptyInput(t *testing.T) {
	r, err := NewRunner(1)
	require.NoError(t, err)

	_, err = r.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoScenarios)
}

func TestRunner_Run_CanceledContext(t *testing.T) {
	r, err := NewRunner(1)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx, []Scenario{{Label: "never", Request: validRequest()}})
	assert.ErrorIs(t, err, context.Canceled)
}
