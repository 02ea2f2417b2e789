package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadScenariosDefault(t *testing.T) {
	scenarios, err := loadScenarios("")
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	assert.Equal(t, "natural gas baseline", scenarios[0].Name)
	assert.Equal(t, "NGCC w/ CCS", scenarios[0].Electric.Source)
	assert.True(t, scenarios[0].Thermal.Direct)
}

func TestLoadScenariosSingle(t *testing.T) {
	path := writeScenarioFile(t, `
name: solar with storage
electric: {source: Solar, battery: true}
thermal:
  source: Solar
  battery: true
  overrides: {"Base Energy Requirement [MW]": 234}
overrides: {"Total Capex [$]": 936.01}
`)

	scenarios, err := loadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	sc := scenarios[0]
	assert.Equal(t, "solar with storage", sc.Name)
	assert.Equal(t, "Solar", sc.Electric.Source)
	assert.True(t, sc.Electric.Battery)
	assert.InDelta(t, 234, sc.Thermal.Overrides["Base Energy Requirement [MW]"], 0)
	assert.InDelta(t, 936.01, sc.Overrides["Total Capex [$]"], 0)
}

func TestLoadScenariosList(t *testing.T) {
	path := writeScenarioFile(t, `
scenarios:
  - name: baseline
    electric: {source: NGCC w/ CCS}
    thermal: {source: Advanced NGCC, direct: true}
  - name: wind
    electric: {source: Wind, battery: true}
    thermal: {source: Wind, battery: true}
`)

	scenarios, err := loadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "baseline", scenarios[0].Name)
	assert.Equal(t, "wind", scenarios[1].Name)
	assert.True(t, scenarios[1].Electric.Battery)
}

func TestLoadScenariosErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := loadScenarios(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := loadScenarios(writeScenarioFile(t, "scenarios: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := loadScenarios(writeScenarioFile(t, "# nothing here\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no scenarios defined")
	})
}
