package model

import (
	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// CompositeModel blends one electric section, one thermal section, and the
// DAC fixed-cost block into the facility's total levelized cost.
//
// The combination branches on shared infrastructure: when the electric and
// thermal sections are bound to the same technology they are assumed to share
// one physical power plant sized to their combined demand, so capital and O&M
// are recomputed from the combined size (the power-law curve is sub-additive)
// and both batteries merge into one storage system. Different technologies
// get no shared economies of scale: their costs sum directly. The two paths
// produce materially different totals; the branch condition is technology
// name equality, nothing else.
type CompositeModel[T numeric.Number[T]] struct {
	params   *params.Set[T]
	electric *EnergyBlock[T]
	thermal  Section[T]
	dac      *FixedCostBlock[T]
}

// NewCompositeModel assembles the composite from its three sections. The
// thermal section may be a plant-backed EnergyBlock or a ThermalDirectBlock.
func NewCompositeModel[T numeric.Number[T]](p *params.Set[T], electric *EnergyBlock[T], thermal Section[T], dac *FixedCostBlock[T]) *CompositeModel[T] {
	return &CompositeModel[T]{params: p, electric: electric, thermal: thermal, dac: dac}
}

// combinedPowerBlock recomputes plant and battery costs for one shared power
// block sized to the electric and thermal sections' combined demand.
func (c *CompositeModel[T]) combinedPowerBlock(source params.Source, ev, tv *Record[T]) *Record[T] {
	tech := c.params.Tech(source)
	batTech := c.params.Tech(params.BatteryStorage)
	v := NewRecord[T]()

	hoursPerYear := numeric.Lift[T](HoursPerYear)
	operationalHours := c.params.Get(params.KeyDACCapacityFactor).Mul(hoursPerYear)
	million := numeric.Lift[T](Million)
	scale := c.params.Get(params.KeyScale)

	plant := ev.Get(KeyPlantSize).Add(tv.Get(KeyPlantSize))
	v.Set(KeyPlantSize, plant)

	ratio := plant.Div(tech.PlantSize).Pow(tech.ScalingFactor)
	overnight := tech.BasePlantCost.Mul(ratio)
	v.Set(KeyOvernightCost, overnight)

	wacc := c.params.Get(params.KeyWACC)
	leadTime := LeadTimeMultiplier(wacc, tech.LeadTimeYears)
	v.Set(KeyLeadTimeMultiplier, leadTime)

	v.Set(KeyCapitalCost, overnight.Mul(leadTime))

	v.Set(KeyPowerFixedOM, tech.BaseFixedOM.Mul(ratio).Mul(million).Div(scale))
	v.Set(KeyPowerVariableOM, tech.VariableOM.Mul(plant).Mul(operationalHours).Div(scale))

	if ev.Has(KeyBatteryCapacityNeeded) {
		// One storage system sized at the combined scale.
		combined := ev.Get(KeyBatteryCapacityNeeded).Add(tv.Get(KeyBatteryCapacityNeeded))
		v.Set(KeyBatteryCapacity, combined)

		batRatio := combined.Div(batTech.BatteryCapacity).Pow(batTech.ScalingFactor)
		v.Set(KeyBatteryCapitalCost, batTech.BasePlantCost.Mul(batRatio))
		v.Set(KeyBatteryFixedOM, batTech.BaseFixedOM.Mul(batRatio).Mul(million).Div(scale))

		days := numeric.Lift[T](DaysPerYear)
		v.Set(KeyBatteryVariableOM, batTech.VariableOM.Mul(combined).Div(scale).Mul(days))
	} else {
		zero := numeric.Lift[T](0)
		v.Set(KeyBatteryCapacity, zero)
		v.Set(KeyBatteryCapitalCost, zero)
		v.Set(KeyBatteryFixedOM, zero)
		v.Set(KeyBatteryVariableOM, zero)
	}

	totalCapital := v.Get(KeyCapitalCost).Add(v.Get(KeyBatteryCapitalCost))
	v.Set(KeyTotalCapitalCost, totalCapital)

	recovery := RecoveryFactor(wacc, c.params.Get(params.KeyEconomicLifetime))
	v.Set(KeyCapitalRecovery, totalCapital.Mul(recovery).Mul(million).Div(scale))

	v.Set(KeyFixedOM, v.Get(KeyPowerFixedOM).Add(v.Get(KeyBatteryFixedOM)))
	v.Set(KeyVariableOM, v.Get(KeyPowerVariableOM).Add(v.Get(KeyBatteryVariableOM)))

	return v
}

// totalEnergyShared carries demand-side totals common to both combination
// paths: combined capacity requirements, summed gas cost, net capture, and
// the energy block's all-in cost per ton.
func (c *CompositeModel[T]) totalEnergyShared(v, ev, tv *Record[T]) {
	v.Set(KeyTotalPowerCapacity, ev.Get(KeyPlantSize).Add(tv.Get(KeyPlantSize)))

	if ev.Has(KeyBatteryCapacityNeeded) {
		v.Set(KeyTotalBatteryCapacity, ev.Get(KeyBatteryCapacityNeeded).Add(tv.Get(KeyBatteryCapacityNeeded)))
	} else {
		v.Set(KeyTotalBatteryCapacity, numeric.Lift[T](0))
	}

	v.Set(KeyNaturalGasCost, ev.Get(KeyNaturalGasCost).Add(tv.Get(KeyNaturalGasCost)))

	v.Set(KeyTotalCost, v.Get(KeyCapitalRecovery).
		Add(v.Get(KeyFixedOM)).
		Add(v.Get(KeyVariableOM)).
		Add(v.Get(KeyNaturalGasCost)))

	scale := c.params.Get(params.KeyScale)
	one := numeric.Lift[T](1)
	emitted := ev.Get(KeyEmitted).Add(tv.Get(KeyEmitted))
	v.Set(KeyNetCapture, scale.Sub(scale.Mul(emitted)))
	v.Set(KeyTotalCostNetRemoved, v.Get(KeyTotalCost).Div(one.Sub(emitted)))
}

// totalEnergyIndependent sums the two sections' capital and O&M directly: no
// shared plant, no shared economies of scale.
func (c *CompositeModel[T]) totalEnergyIndependent(ev, tv *Record[T]) *Record[T] {
	v := NewRecord[T]()

	v.Set(KeyTotalCapitalCost, ev.Get(KeyTotalCapitalCost).Add(tv.Get(KeyTotalCapitalCost)))
	v.Set(KeyCapitalRecovery, ev.Get(KeyCapitalRecovery).Add(tv.Get(KeyCapitalRecovery)))
	v.Set(KeyFixedOM, ev.Get(KeyTotalFixedOM).Add(tv.Get(KeyTotalFixedOM)))
	v.Set(KeyVariableOM, ev.Get(KeyTotalVariableOM).Add(tv.Get(KeyTotalVariableOM)))

	c.totalEnergyShared(v, ev, tv)
	return v
}

// totalEnergyCombined takes capital and O&M from the combined power block
// record, keeping the per-section records only for demand and emissions.
func (c *CompositeModel[T]) totalEnergyCombined(ev, tv, cv *Record[T]) *Record[T] {
	v := NewRecord[T]()

	v.Set(KeyTotalCapitalCost, cv.Get(KeyTotalCapitalCost))
	v.Set(KeyCapitalRecovery, cv.Get(KeyCapitalRecovery))
	v.Set(KeyFixedOM, cv.Get(KeyFixedOM))
	v.Set(KeyVariableOM, cv.Get(KeyVariableOM))

	c.totalEnergyShared(v, ev, tv)
	return v
}

// Compute evaluates both sections, combines them per the shared-infrastructure
// branch, adds the DAC section, and returns the composite record. The final
// capital recovery is recomputed from the grand total capital, not summed
// from the parts, to avoid double-discounting.
func (c *CompositeModel[T]) Compute() *Record[T] {
	ev := c.electric.Compute()
	tv := c.thermal.Compute()

	var tev *Record[T]
	if c.electric.Source() == c.thermal.Source() {
		cv := c.combinedPowerBlock(c.electric.Source(), ev, tv)
		tev = c.totalEnergyCombined(ev, tv, cv)
	} else {
		tev = c.totalEnergyIndependent(ev, tv)
	}

	dv := c.dac.Compute()
	v := NewRecord[T]()

	totalCapital := tev.Get(KeyTotalCapitalCost).Add(dv.Get(KeyCapitalCostWithLeadTime))
	v.Set(KeyTotalCapitalCost, totalCapital)

	wacc := c.params.Get(params.KeyWACC)
	recovery := RecoveryFactor(wacc, c.params.Get(params.KeyEconomicLifetime))
	scale := c.params.Get(params.KeyScale)
	million := numeric.Lift[T](Million)
	v.Set(KeyCapitalRecovery, totalCapital.Mul(recovery).Mul(million).Div(scale))

	v.Set(KeyFixedOM, tev.Get(KeyFixedOM).Add(dv.Get(KeyFixedOM)))
	v.Set(KeyVariableOM, tev.Get(KeyVariableOM).Add(dv.Get(KeyVariableOM)))
	v.Set(KeyCompositeGasCost, tev.Get(KeyNaturalGasCost))

	v.Set(KeyTotalCost, v.Get(KeyCapitalRecovery).
		Add(v.Get(KeyFixedOM)).
		Add(v.Get(KeyVariableOM)).
		Add(v.Get(KeyCompositeGasCost)))

	return v
}
