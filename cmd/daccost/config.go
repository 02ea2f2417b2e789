package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/daccost/internal/sweep"
)

// scenarioDocument is the YAML layout accepted by -scenarios. A single
// scenario may be given at the top level, or several under "scenarios".
//
//	name: solar with storage
//	electric: {source: Solar, battery: true}
//	thermal:
//	  source: Solar
//	  battery: true
//	  overrides: {"Base Energy Requirement [MW]": 234}
//	overrides: {"Total Capex [$]": 936.01}
type scenarioDocument struct {
	sweep.Scenario `yaml:",inline"`

	Scenarios []sweep.Scenario `yaml:"scenarios"`
}

// loadScenarios reads a scenario document from path. An empty path yields the
// built-in default: an NGCC w/ CCS electric block with direct-fired Advanced
// NGCC thermal supply.
func loadScenarios(path string) ([]sweep.Scenario, error) {
	if path == "" {
		return []sweep.Scenario{defaultScenario()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}

	var doc scenarioDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing scenario file %s: %w", path, err)
	}

	if len(doc.Scenarios) > 0 {
		return doc.Scenarios, nil
	}
	if doc.Electric.Source == "" {
		return nil, fmt.Errorf("scenario file %s: no scenarios defined", path)
	}
	return []sweep.Scenario{doc.Scenario}, nil
}

func defaultScenario() sweep.Scenario {
	return sweep.Scenario{
		Name:     "natural gas baseline",
		Electric: sweep.SectionConfig{Source: "NGCC w/ CCS"},
		Thermal:  sweep.SectionConfig{Source: "Advanced NGCC", Direct: true},
	}
}
