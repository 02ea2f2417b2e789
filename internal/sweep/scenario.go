// Package sweep assembles scenarios into composite models and evaluates many
// of them concurrently over a shared read-only parameter table. Evaluations
// are independent: each gets its own cloned parameters, so no coordination is
// needed beyond the worker pool.
package sweep

import (
	"fmt"

	"github.com/rshade/daccost/internal/model"
	"github.com/rshade/daccost/internal/numeric"
	"github.com/rshade/daccost/internal/params"
)

// SectionConfig describes one energy section of a scenario.
type SectionConfig struct {
	// Source is the technology name, e.g. "NGCC w/ CCS" or "Solar".
	Source string `yaml:"source" json:"source"`

	// Battery attaches a storage block to the section.
	Battery bool `yaml:"battery" json:"battery"`

	// Direct selects the direct-fired fuel path instead of a sized plant.
	// Only meaningful for the thermal section, with a gas-capable source.
	Direct bool `yaml:"direct" json:"direct"`

	// Overrides are parameter values applied only to this section, e.g. a
	// section-specific "Base Energy Requirement [MW]".
	Overrides map[string]float64 `yaml:"overrides" json:"overrides"`
}

// Scenario is one complete model parameterization: an electric section, a
// thermal section, and parameter overrides applied on top of the defaults.
type Scenario struct {
	Name     string        `yaml:"name" json:"name"`
	Electric SectionConfig `yaml:"electric" json:"electric"`
	Thermal  SectionConfig `yaml:"thermal" json:"thermal"`

	// Overrides apply to every section and to the composite itself.
	Overrides map[string]float64 `yaml:"overrides" json:"overrides"`
}

func applyOverrides[T numeric.Number[T]](base *params.Set[T], overrides map[string]float64) *params.Set[T] {
	if len(overrides) == 0 {
		return base
	}
	p := base.Clone()
	for key, val := range overrides {
		p.Set(key, numeric.Lift[T](val))
	}
	return p
}

// Evaluate builds the scenario's blocks against the given parameter table and
// computes the composite record. The base set is never mutated; overrides are
// applied to clones, scenario-wide first, then per section.
func Evaluate[T numeric.Number[T]](base *params.Set[T], sc Scenario) (*model.Record[T], error) {
	shared := applyOverrides(base, sc.Overrides)
	electricParams := applyOverrides(shared, sc.Electric.Overrides)
	thermalParams := applyOverrides(shared, sc.Thermal.Overrides)

	var electricBattery *model.BatteryBlock[T]
	if sc.Electric.Battery {
		electricBattery = model.NewBatteryBlock(electricParams)
	}
	electric, err := model.NewEnergyBlock(electricParams, params.Source(sc.Electric.Source), electricBattery)
	if err != nil {
		return nil, fmt.Errorf("electric section: %w", err)
	}

	var thermal model.Section[T]
	if sc.Thermal.Direct {
		thermal, err = model.NewThermalDirectBlock(thermalParams, params.Source(sc.Thermal.Source))
	} else {
		var thermalBattery *model.BatteryBlock[T]
		if sc.Thermal.Battery {
			thermalBattery = model.NewBatteryBlock(thermalParams)
		}
		thermal, err = model.NewEnergyBlock(thermalParams, params.Source(sc.Thermal.Source), thermalBattery)
	}
	if err != nil {
		return nil, fmt.Errorf("thermal section: %w", err)
	}

	dac := model.NewFixedCostBlock(shared)

	return model.NewCompositeModel(shared, electric, thermal, dac).Compute(), nil
}
