package model

import (
	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// BatteryBlock sizes and costs the storage needed to carry an intermittent
// energy block through the non-generating hours of each day. It reads the
// owning block's base demand and planned capacity factor, and the Battery
// Storage technology entry for efficiency and cost curves.
type BatteryBlock[T numeric.Number[T]] struct {
	params *params.Set[T]
}

// NewBatteryBlock returns a battery block over the given parameter set.
func NewBatteryBlock[T numeric.Number[T]](p *params.Set[T]) *BatteryBlock[T] {
	return &BatteryBlock[T]{params: p}
}

// Compute derives storage sizing and cost from the owner's partial record.
// The owner record must already contain Base Energy Requirement [MW] and
// Planned Capacity Factor. The result is a fresh record; the caller merges it
// into its own explicitly.
func (b *BatteryBlock[T]) Compute(owner *Record[T]) *Record[T] {
	tech := b.params.Tech(params.BatteryStorage)
	v := NewRecord[T]()

	demand := owner.Get(KeyBaseEnergy)
	pcf := owner.Get(KeyPlannedCapacityFactor)
	one := numeric.Lift[T](1)
	hours := numeric.Lift[T](HoursPerDay)

	// Energy to bridge the hours per day the source is not generating.
	required := demand.Mul(hours.Mul(one.Sub(pcf)))
	v.Set(KeyBatteryCapacity, required)

	v.Set(KeyRoundTripEfficiency, tech.Efficiency)

	// Round-trip losses mean the battery must be built larger than the
	// energy it delivers.
	needed := required.Div(tech.Efficiency)
	v.Set(KeyBatteryCapacityNeeded, needed)

	increased := needed.Sub(required)
	v.Set(KeyIncreased, increased)

	// Extra generation capacity to refill the battery within the hours the
	// source is available.
	v.Set(KeyIncreasedNeed, increased.Div(hours.Mul(pcf)))

	// Power-law cost curve on built capacity over reference capacity.
	ratio := needed.Div(tech.BatteryCapacity).Pow(tech.ScalingFactor)
	v.Set(KeyBatteryCapitalCost, tech.BasePlantCost.Mul(ratio))

	scale := b.params.Get(params.KeyScale)
	million := numeric.Lift[T](Million)
	v.Set(KeyBatteryFixedOM, tech.BaseFixedOM.Mul(ratio).Mul(million).Div(scale))

	// Daily throughput costed per MWh across the year.
	days := numeric.Lift[T](DaysPerYear)
	v.Set(KeyBatteryVariableOM, tech.VariableOM.Mul(required).Div(scale).Mul(days))

	return v
}
