// Package params holds the model parameter table: scenario-level inputs plus
// the per-technology cost and performance entries. Defaults ship embedded in
// the binary; callers override any subset of values on top of them.
//
// Lookup follows a fail-visibly policy borrowed from the spreadsheet this
// model descends from: a missing key yields NaN, never zero, so an incomplete
// parameter set still produces a report whose garbage values are flagged by
// NaN rather than silently wrong.
package params

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/rshade/daccost/internal/numeric"
)

// Top-level parameter keys consumed by the cost model.
const (
	KeyWACC              = "WACC [%]"
	KeyEconomicLifetime  = "Economic Lifetime [years]"
	KeyScale             = "Scale [tCO2/year]"
	KeyDACCapacityFactor = "DAC Capacity Factor"
	KeyNaturalGasCost    = "Natural Gas Cost [$/mmBTU]"
	KeyTotalCapex        = "Total Capex [$]"
	KeyDACLeadTime       = "DAC Section Lead Time [years]"
	KeyFixedOM           = "Fixed O&M Costs [$/tCO2]"
	KeyVariableOM        = "Variable O&M Cost [$/tCO2]"
	KeyBaseEnergy        = "Base Energy Requirement [MW]"
	KeyRequiredThermal   = "Required Thermal Energy [GJ/tCO2]"

	technologyKey = "Technology"
)

// Technology is one entry of the Technology table: the cost and performance
// characteristics of a single generation (or storage) technology at its
// reference plant size.
type Technology[T numeric.Number[T]] struct {
	Availability      T
	BasePlantCost     T // [M$] at reference size
	PlantSize         T // [MW] reference size for power-law scaling
	ScalingFactor     T
	BaseFixedOM       T // [$M/yr] at reference size
	VariableOM        T // [$/MWh]
	LeadTimeYears     T
	HeatRate          *T // [BTU/kWh]; nil for technologies that burn no gas
	TotalCO2eq        T  // [lb/mmBTU]
	CaptureEfficiency T
	Efficiency        T // thermal or round-trip
	BatteryCapacity   T // [MWh] reference capacity (Battery Storage only)
}

// Set is a parameter table bound to one numeric kind. Scenario fields live in
// a flat name→value mapping; technology entries are typed records keyed by
// source name. A Set is treated as read-only during evaluation and may be
// shared across concurrent model instances.
type Set[T numeric.Number[T]] struct {
	fields map[string]T
	tech   map[Source]Technology[T]
}

// Get returns the named scenario parameter, or NaN if it is absent.
func (s *Set[T]) Get(key string) T {
	if v, ok := s.fields[key]; ok {
		return v
	}
	return numeric.NaN[T]()
}

// Has reports whether the named scenario parameter is present.
func (s *Set[T]) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Tech returns the technology entry for the given source. An absent entry
// comes back NaN-filled, keeping the fail-visibly lookup policy: downstream
// arithmetic produces NaN instead of panicking.
func (s *Set[T]) Tech(source Source) Technology[T] {
	if t, ok := s.tech[source]; ok {
		return t
	}
	nan := numeric.NaN[T]()
	return Technology[T]{
		Availability:      nan,
		BasePlantCost:     nan,
		PlantSize:         nan,
		ScalingFactor:     nan,
		BaseFixedOM:       nan,
		VariableOM:        nan,
		LeadTimeYears:     nan,
		TotalCO2eq:        nan,
		CaptureEfficiency: nan,
		Efficiency:        nan,
		BatteryCapacity:   nan,
	}
}

// Set assigns a scenario parameter, overriding any default.
func (s *Set[T]) Set(key string, v T) {
	s.fields[key] = v
}

// Clone returns an independent copy sharing no mutable state with s.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{
		fields: make(map[string]T, len(s.fields)),
		tech:   make(map[Source]Technology[T], len(s.tech)),
	}
	for k, v := range s.fields {
		c.fields[k] = v
	}
	for k, v := range s.tech {
		if v.HeatRate != nil {
			hr := *v.HeatRate
			v.HeatRate = &hr
		}
		c.tech[k] = v
	}
	return c
}

// rawTechnology mirrors one Technology JSON object. Field names match the
// spreadsheet-derived headers verbatim.
type rawTechnology struct {
	Availability      float64  `json:"Availability"`
	BasePlantCost     float64  `json:"Base Plant Cost [M$]"`
	PlantSize         float64  `json:"Plant Size [MW]"`
	ScalingFactor     float64  `json:"Scaling Factor"`
	BaseFixedOM       float64  `json:"Base Plant Annual Fixed O&M [$M]"`
	VariableOM        float64  `json:"Variable O&M [$/MWhr]"`
	LeadTimeYears     float64  `json:"Lead Time [Years]"`
	HeatRate          *float64 `json:"Final Heat Rate [BTU/kWh]"`
	TotalCO2eq        float64  `json:"Total CO2 eq [lb/mmbtu]"`
	CaptureEfficiency float64  `json:"Capture Efficiency"`
	Efficiency        float64  `json:"Efficiency (Thermal or Round Trip)"`
	BatteryCapacity   float64  `json:"Battery Capacity [MWhr]"`
}

func (r rawTechnology) lift() Technology[numeric.Float] {
	t := Technology[numeric.Float]{
		Availability:      numeric.F(r.Availability),
		BasePlantCost:     numeric.F(r.BasePlantCost),
		PlantSize:         numeric.F(r.PlantSize),
		ScalingFactor:     numeric.F(r.ScalingFactor),
		BaseFixedOM:       numeric.F(r.BaseFixedOM),
		VariableOM:        numeric.F(r.VariableOM),
		LeadTimeYears:     numeric.F(r.LeadTimeYears),
		TotalCO2eq:        numeric.F(r.TotalCO2eq),
		CaptureEfficiency: numeric.F(r.CaptureEfficiency),
		Efficiency:        numeric.F(r.Efficiency),
		BatteryCapacity:   numeric.F(r.BatteryCapacity),
	}
	if r.HeatRate != nil {
		hr := numeric.F(*r.HeatRate)
		t.HeatRate = &hr
	}
	return t
}

// Parse decodes a parameter document: a flat JSON object of numeric scenario
// fields plus a nested "Technology" object keyed by source name.
func Parse(data []byte) (*Set[numeric.Float], error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("parsing parameter document: %w", err)
	}

	s := &Set[numeric.Float]{
		fields: make(map[string]numeric.Float, len(top)),
		tech:   make(map[Source]Technology[numeric.Float]),
	}
	for key, raw := range top {
		if key == technologyKey {
			var techs map[Source]rawTechnology
			if err := json.Unmarshal(raw, &techs); err != nil {
				return nil, fmt.Errorf("parsing %s table: %w", technologyKey, err)
			}
			for name, rt := range techs {
				s.tech[name] = rt.lift()
			}
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parameter %q: expected a number: %w", key, err)
		}
		s.fields[key] = numeric.F(v)
	}
	return s, nil
}
