package params

import (
	"math"

	"github.com/rshade/daccost/internal/numeric"
)

// DefaultRelativeStdev is the relative standard deviation applied to every
// numeric parameter when no explicit uncertainty is supplied.
const DefaultRelativeStdev = 0.1

// WithUncertainty lifts a plain parameter set into an uncertainty-propagating
// one, giving every numeric entry a standard deviation of rel times its
// absolute value. Structural values keep their meaning: a nil heat rate stays
// nil, and technology identities are untouched.
func WithUncertainty(s *Set[numeric.Float], rel float64) *Set[numeric.Uncertain] {
	u := &Set[numeric.Uncertain]{
		fields: make(map[string]numeric.Uncertain, len(s.fields)),
		tech:   make(map[Source]Technology[numeric.Uncertain], len(s.tech)),
	}
	for k, v := range s.fields {
		u.fields[k] = spread(v, rel)
	}
	for name, t := range s.tech {
		ut := Technology[numeric.Uncertain]{
			Availability:      spread(t.Availability, rel),
			BasePlantCost:     spread(t.BasePlantCost, rel),
			PlantSize:         spread(t.PlantSize, rel),
			ScalingFactor:     spread(t.ScalingFactor, rel),
			BaseFixedOM:       spread(t.BaseFixedOM, rel),
			VariableOM:        spread(t.VariableOM, rel),
			LeadTimeYears:     spread(t.LeadTimeYears, rel),
			TotalCO2eq:        spread(t.TotalCO2eq, rel),
			CaptureEfficiency: spread(t.CaptureEfficiency, rel),
			Efficiency:        spread(t.Efficiency, rel),
			BatteryCapacity:   spread(t.BatteryCapacity, rel),
		}
		if t.HeatRate != nil {
			hr := spread(*t.HeatRate, rel)
			ut.HeatRate = &hr
		}
		u.tech[name] = ut
	}
	return u
}

func spread(v numeric.Float, rel float64) numeric.Uncertain {
	f := v.Float()
	return numeric.U(f, math.Abs(f)*rel)
}
