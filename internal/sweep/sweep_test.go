package sweep

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/daccost/internal/model"
	"github.com/rshade/daccost/internal/params"
)

func baseline() Scenario {
	return Scenario{
		Name:     "natural gas baseline",
		Electric: SectionConfig{Source: "NGCC w/ CCS"},
		Thermal:  SectionConfig{Source: "Advanced NGCC", Direct: true},
		Overrides: map[string]float64{
			params.KeyBaseEnergy: 47,
			params.KeyTotalCapex: 1029,
		},
	}
}

func solarScenario() Scenario {
	return Scenario{
		Name:     "solar electrified",
		Electric: SectionConfig{Source: "Solar", Battery: true},
		Thermal: SectionConfig{
			Source:    "Solar",
			Battery:   true,
			Overrides: map[string]float64{params.KeyBaseEnergy: 234},
		},
	}
}

func TestEvaluateBaseline(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	rec, err := Evaluate(base, baseline())
	require.NoError(t, err)
	assert.InDelta(t, 223.80102466721357, rec.Get(model.KeyTotalCost).Float(), 1e-6)
}

func TestEvaluateSolarWithPerSectionOverrides(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	rec, err := Evaluate(base, solarScenario())
	require.NoError(t, err)
	assert.InDelta(t, 476.18669227932014, rec.Get(model.KeyTotalCost).Float(), 1e-6)
}

func TestEvaluateDoesNotMutateBase(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	_, err = Evaluate(base, baseline())
	require.NoError(t, err)

	assert.InDelta(t, 38, base.Get(params.KeyBaseEnergy).Float(), 0)
	assert.InDelta(t, 936.01, base.Get(params.KeyTotalCapex).Float(), 0)
}

func TestEvaluateInvalidSources(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	sc := baseline()
	sc.Electric.Source = "Fusion"
	_, err = Evaluate(base, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "electric section")

	sc = baseline()
	sc.Thermal.Source = "Solar" // not gas-capable, cannot be direct-fired
	_, err = Evaluate(base, sc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "thermal section")
}

func TestEvaluateUncertain(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)
	lifted := params.WithUncertainty(base, params.DefaultRelativeStdev)

	rec, err := Evaluate(lifted, baseline())
	require.NoError(t, err)

	total := rec.Get(model.KeyTotalCost)
	assert.InDelta(t, 223.80102466721357, total.V, 1e-6)
	assert.Greater(t, total.S, 0.0)
}

func TestRunnerMatchesSerialEvaluation(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	scenarios := []Scenario{baseline(), solarScenario()}
	for i := 0; i < 4; i++ {
		scenarios = append(scenarios, scenarios...)
	}

	runner := &Runner{Params: base, Workers: 8, Logger: zerolog.Nop()}
	results := runner.Run(context.Background(), scenarios)
	require.Len(t, results, len(scenarios))

	for i, res := range results {
		require.NoError(t, res.Err, "scenario %d", i)
		assert.Equal(t, scenarios[i].Name, res.Name, "results keep input order")
		assert.NotEqual(t, uuid.Nil, res.ID)

		want, err := Evaluate(base, scenarios[i])
		require.NoError(t, err)
		assert.Equal(t, want.Get(model.KeyTotalCost), res.Values.Get(model.KeyTotalCost))
	}
}

func TestRunnerCollectsFailuresWithoutAborting(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	bad := baseline()
	bad.Name = "bad"
	bad.Electric.Source = "Fusion"
	scenarios := []Scenario{baseline(), bad, solarScenario()}

	runner := &Runner{Params: base, Logger: zerolog.Nop()}
	results := runner.Run(context.Background(), scenarios)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Values)
	assert.True(t, math.IsNaN(results[1].TotalCost()))
	assert.NoError(t, results[2].Err)
}

func TestRunnerCanceledContext(t *testing.T) {
	base, err := params.Defaults()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &Runner{Params: base, Workers: 1, Logger: zerolog.Nop()}
	results := runner.Run(ctx, []Scenario{baseline(), solarScenario()})
	require.Len(t, results, 2)

	// Cancellation stops dispatch; anything not started carries the context
	// error, anything already dispatched completes normally.
	for _, res := range results {
		if res.Err != nil {
			assert.ErrorIs(t, res.Err, context.Canceled)
		} else {
			assert.NotNil(t, res.Values)
		}
	}
}
