package model

import (
	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// FixedCostBlock carries the non-energy costs of the DAC facility itself:
// section capital (given directly as Total Capex), its lead-time adjustment,
// and pass-through fixed and variable O&M. No technology lookup is involved.
type FixedCostBlock[T numeric.Number[T]] struct {
	params *params.Set[T]
}

// NewFixedCostBlock returns a DAC fixed-cost block over the parameter set.
func NewFixedCostBlock[T numeric.Number[T]](p *params.Set[T]) *FixedCostBlock[T] {
	return &FixedCostBlock[T]{params: p}
}

// Compute produces the DAC section's value record.
func (b *FixedCostBlock[T]) Compute() *Record[T] {
	v := NewRecord[T]()

	capex := b.params.Get(params.KeyTotalCapex)
	v.Set(KeyTotalCapitalCost, capex)

	wacc := b.params.Get(params.KeyWACC)
	leadTime := LeadTimeMultiplier(wacc, b.params.Get(params.KeyDACLeadTime))
	v.Set(KeyLeadTimeMultiplier, leadTime)

	v.Set(KeyCapitalCostWithLeadTime, capex.Mul(leadTime))

	recovery := RecoveryFactor(wacc, b.params.Get(params.KeyEconomicLifetime))
	scale := b.params.Get(params.KeyScale)
	million := numeric.Lift[T](Million)
	v.Set(KeyCapitalRecovery, capex.Mul(recovery).Mul(million).Div(scale))

	v.Set(KeyFixedOM, b.params.Get(params.KeyFixedOM))
	v.Set(KeyVariableOM, b.params.Get(params.KeyVariableOM))

	v.Set(KeyTotalCost, v.Get(KeyCapitalRecovery).Add(v.Get(KeyFixedOM)).Add(v.Get(KeyVariableOM)))

	return v
}
