package model

import (
	"fmt"

	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// ThermalDirectBlock is the energy-section variant for thermal demand met by
// direct fuel combustion: no power plant is sized, so capital and O&M are
// zero and gas use follows straight from the facility's thermal requirement.
// Combustion happens in an oxy-fired process with full CO2 capture, so the
// emitted fraction is zero.
type ThermalDirectBlock[T numeric.Number[T]] struct {
	params *params.Set[T]
	source params.Source
}

// NewThermalDirectBlock binds the block to a gas-capable technology.
func NewThermalDirectBlock[T numeric.Number[T]](p *params.Set[T], source params.Source) (*ThermalDirectBlock[T], error) {
	if !source.GasFired() {
		return nil, fmt.Errorf("invalid natural gas source %q, expected one of %v", source, params.GasSources)
	}
	return &ThermalDirectBlock[T]{params: p, source: source}, nil
}

// Source returns the bound technology name.
func (b *ThermalDirectBlock[T]) Source() params.Source { return b.source }

// Compute produces the block's value record: zeroed plant-side fields plus
// gas use and cost per ton of CO2.
func (b *ThermalDirectBlock[T]) Compute() *Record[T] {
	v := NewRecord[T]()

	zero := numeric.Lift[T](0)
	for _, key := range []string{
		KeyPlantSize,
		KeyTotalCapitalCost,
		KeyCapitalRecovery,
		KeyTotalFixedOM,
		KeyTotalVariableOM,
	} {
		v.Set(key, zero)
	}

	gj := numeric.Lift[T](GJToMMBTU)
	gasUse := b.params.Get(params.KeyRequiredThermal).Mul(gj)
	v.Set(KeyNaturalGasUse, gasUse)

	v.Set(KeyNaturalGasCost, gasUse.Mul(b.params.Get(params.KeyNaturalGasCost)))

	// Oxy-fired kiln, 100% capture.
	v.Set(KeyEmitted, zero)

	return v
}
