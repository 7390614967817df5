package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rpa-roi/service"
)

// LoadPresetTable returns the built-in presets with any rows from the YAML
// file at path written over them. An empty path returns the built-in table.
func LoadPresetTable(path string) (*service.PresetTable, error) {
	table := service.DefaultPresetTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}

	var overrides service.PresetTable
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets file: %w", err)
	}

	if err := table.Override(overrides); err != nil {
		return nil, fmt.Errorf("presets file %s: %w", path, err)
	}

	return table, nil
}
