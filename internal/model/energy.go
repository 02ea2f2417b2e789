package model

import (
	"fmt"

	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// Section is one energy supply feeding the composite model: either a sized
// power plant (EnergyBlock) or a direct-fired fuel path (ThermalDirectBlock).
type Section[T numeric.Number[T]] interface {
	// Source returns the technology the section is bound to.
	Source() params.Source

	// Compute returns a freshly computed value record.
	Compute() *Record[T]
}

// EnergyBlock sizes and costs a power or heat plant for one bound technology,
// optionally carrying a battery for intermittent sources. The technology
// binding is fixed at construction.
type EnergyBlock[T numeric.Number[T]] struct {
	params  *params.Set[T]
	source  params.Source
	battery *BatteryBlock[T]
}

// NewEnergyBlock binds an energy block to a technology. battery may be nil;
// when present the block owns it exclusively. An unknown technology name is
// rejected immediately rather than surfacing later as NaN.
func NewEnergyBlock[T numeric.Number[T]](p *params.Set[T], source params.Source, battery *BatteryBlock[T]) (*EnergyBlock[T], error) {
	if !source.Valid() {
		return nil, fmt.Errorf("invalid energy source %q, expected one of %v", source, params.EnergySources)
	}
	return &EnergyBlock[T]{params: p, source: source, battery: battery}, nil
}

// Source returns the bound technology name.
func (b *EnergyBlock[T]) Source() params.Source { return b.source }

// Compute produces the block's full value record. Sizing accounts for the
// technology's availability and, when a battery is attached, the makeup
// capacity needed to refill it; costs follow the power-law curve off the
// technology's reference plant.
func (b *EnergyBlock[T]) Compute() *Record[T] {
	tech := b.params.Tech(b.source)
	v := NewRecord[T]()

	hoursPerYear := numeric.Lift[T](HoursPerYear)
	operationalHours := b.params.Get(params.KeyDACCapacityFactor).Mul(hoursPerYear)

	v.Set(KeyPlannedCapacityFactor, tech.Availability)
	v.Set(KeyBaseEnergy, b.params.Get(params.KeyBaseEnergy))

	if b.battery != nil {
		v.Merge(b.battery.Compute(v))
	}

	// Under-built nameplate plus battery makeup replaces full redundancy for
	// intermittent sources.
	plant := v.Get(KeyBaseEnergy).Div(v.Get(KeyPlannedCapacityFactor))
	if b.battery != nil {
		plant = plant.Add(v.Get(KeyIncreasedNeed))
	}
	v.Set(KeyPlantSize, plant)

	ratio := plant.Div(tech.PlantSize).Pow(tech.ScalingFactor)
	overnight := tech.BasePlantCost.Mul(ratio)
	v.Set(KeyOvernightCost, overnight)

	wacc := b.params.Get(params.KeyWACC)
	leadTime := LeadTimeMultiplier(wacc, tech.LeadTimeYears)
	v.Set(KeyLeadTimeMultiplier, leadTime)

	capital := overnight.Mul(leadTime)
	v.Set(KeyCapitalCost, capital)

	totalCapital := capital
	if b.battery != nil {
		totalCapital = totalCapital.Add(v.Get(KeyBatteryCapitalCost))
	}
	v.Set(KeyTotalCapitalCost, totalCapital)

	recovery := RecoveryFactor(wacc, b.params.Get(params.KeyEconomicLifetime))
	scale := b.params.Get(params.KeyScale)
	million := numeric.Lift[T](Million)
	v.Set(KeyCapitalRecovery, totalCapital.Mul(recovery).Mul(million).Div(scale))

	fixedOM := tech.BaseFixedOM.Mul(ratio).Mul(million).Div(scale)
	v.Set(KeyPowerFixedOM, fixedOM)

	variableOM := tech.VariableOM.Mul(plant).Mul(operationalHours).Div(scale)
	v.Set(KeyPowerVariableOM, variableOM)

	totalFixed := fixedOM
	totalVariable := variableOM
	if b.battery != nil {
		totalFixed = totalFixed.Add(v.Get(KeyBatteryFixedOM))
		totalVariable = totalVariable.Add(v.Get(KeyBatteryVariableOM))
	}
	v.Set(KeyTotalFixedOM, totalFixed)
	v.Set(KeyTotalVariableOM, totalVariable)

	// Fuel use only exists for heat-rate technologies; renewables and
	// nuclear carry a null heat rate.
	var gasUse T
	if tech.HeatRate != nil {
		kw := numeric.Lift[T](KWPerMW)
		gasUse = operationalHours.Mul(plant).Mul(kw).Mul(*tech.HeatRate).Div(million).Div(scale)
	} else {
		gasUse = numeric.Lift[T](0)
	}
	v.Set(KeyNaturalGasUse, gasUse)

	gasCost := gasUse.Mul(b.params.Get(params.KeyNaturalGasCost))
	v.Set(KeyNaturalGasCost, gasCost)

	// Fraction of each captured ton re-emitted by the energy supply chain.
	lb := numeric.Lift[T](LbToMetricTon)
	one := numeric.Lift[T](1)
	emitted := gasUse.Mul(tech.TotalCO2eq).Mul(lb).Mul(one.Sub(tech.CaptureEfficiency))
	v.Set(KeyEmitted, emitted)

	gross := v.Get(KeyCapitalRecovery).Add(totalFixed).Add(totalVariable)
	v.Set(KeyTotalCostGross, gross)

	// Gross up by the block's own footprint: net removal is what the
	// facility captures minus what its energy supply emits.
	v.Set(KeyTotalCostNet, gross.Div(one.Sub(emitted)))

	return v
}
