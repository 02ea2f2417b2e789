package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/daccost/internal/params"
)

func TestNewThermalDirectBlockRejectsNonGasSources(t *testing.T) {
	p := defaultParams(t)

	for _, src := range []params.Source{params.Solar, params.Wind, params.AdvancedNuclear} {
		_, err := NewThermalDirectBlock(p, src)
		assert.Error(t, err, "%s", src)
	}

	_, err := NewThermalDirectBlock(p, params.AdvancedNGCC)
	assert.NoError(t, err)
}

func TestThermalDirectBlock(t *testing.T) {
	p := defaultParams(t)
	b, err := NewThermalDirectBlock(p, params.AdvancedNGCC)
	require.NoError(t, err)

	v := b.Compute()

	// Direct firing sizes no plant.
	for _, key := range []string{
		KeyPlantSize,
		KeyTotalCapitalCost,
		KeyCapitalRecovery,
		KeyTotalFixedOM,
		KeyTotalVariableOM,
	} {
		assert.InDelta(t, 0.0, v.Get(key).Float(), 0, "%s", key)
	}

	// 6.64 GJ/tCO2 converted to mmBTU.
	assert.InDelta(t, 6.2886776, v.Get(KeyNaturalGasUse).Float(), 1e-9)
	assert.InDelta(t, 21.570164168, v.Get(KeyNaturalGasCost).Float(), 1e-9)

	assert.InDelta(t, 0.0, v.Get(KeyEmitted).Float(), 0, "oxy-fired path captures all combustion CO2")
}

func TestThermalDirectBlockSource(t *testing.T) {
	p := defaultParams(t)
	b, err := NewThermalDirectBlock(p, params.NGCCWithCCS)
	require.NoError(t, err)
	assert.Equal(t, params.NGCCWithCCS, b.Source())
}
