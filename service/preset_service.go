package service

import (
	"errors"
	"fmt"

	"rpa-roi/domain"
)

var (
	ErrUnknownScenario  = errors.New("unknown scenario")
	ErrUnknownScale     = errors.New("unknown scale")
	ErrPresetOutOfRange = errors.New("preset value out of range")
)

// PresetTable holds the closed set of scenario and scale presets.
type PresetTable struct {
	Scenarios map[domain.ScenarioID]domain.InputOverride `json:"scenarios" yaml:"scenarios"`
	Scales    map[domain.ScaleID]domain.InputOverride    `json:"scales" yaml:"scales"`
}

// DefaultPresetTable returns the built-in presets.
func DefaultPresetTable() *PresetTable {
	f := domain.Float
	return &PresetTable{
		Scenarios: map[domain.ScenarioID]domain.InputOverride{
			domain.ScenarioConservative: {AutomationRate: f(30), ErrorReductionRate: f(60)},
			domain.ScenarioStandard:     {AutomationRate: f(50), ErrorReductionRate: f(80)},
			domain.ScenarioOptimistic:   {AutomationRate: f(70), ErrorReductionRate: f(90)},
		},
		Scales: map[domain.ScaleID]domain.InputOverride{
			domain.ScaleSmall: {
				NumEmployees: f(2), AnnualWorkload: f(2_400), NumBots: f(1),
				DevelopmentCost: f(10_000_000), ConsultingCost: f(0),
			},
			domain.ScaleMedium: {
				NumEmployees: f(5), AnnualWorkload: f(6_000), NumBots: f(3),
				DevelopmentCost: f(24_000_000), ConsultingCost: f(10_000_000),
			},
			domain.ScaleLarge: {
				NumEmployees: f(20), AnnualWorkload: f(24_000), NumBots: f(10),
				DevelopmentCost: f(80_000_000), ConsultingCost: f(30_000_000),
			},
		},
	}
}

var defaultPresets = DefaultPresetTable()

// ApplyPreset merges the built-in scenario preset id into current.
func ApplyPreset(current domain.CalculatorInputs, id domain.ScenarioID) (domain.CalculatorInputs, error) {
	return defaultPresets.ApplyPreset(current, id)
}

// ApplyScale merges the built-in scale preset id into current.
func ApplyScale(current domain.CalculatorInputs, id domain.ScaleID) (domain.CalculatorInputs, error) {
	return defaultPresets.ApplyScale(current, id)
}

// ApplyPreset returns current with the automation and error reduction rates
// of scenario id. Every other field is preserved.
func (t *PresetTable) ApplyPreset(current domain.CalculatorInputs, id domain.ScenarioID) (domain.CalculatorInputs, error) {
	preset, ok := t.Scenarios[id]
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrUnknownScenario, id)
	}
	return preset.Merge(current), nil
}

// ApplyScale returns current with the headcount, workload and cost fields of
// scale id.
func (t *PresetTable) ApplyScale(current domain.CalculatorInputs, id domain.ScaleID) (domain.CalculatorInputs, error) {
	preset, ok := t.Scales[id]
	if !ok {
		return current, fmt.Errorf("%w: %q", ErrUnknownScale, id)
	}
	return preset.Merge(current), nil
}

// Override copies rows of other over t. Ids outside the known enumerations
// and rows with values NormalizeInputs would clamp are rejected.
func (t *PresetTable) Override(other PresetTable) error {
	for id, row := range other.Scenarios {
		if !isScenario(id) {
			return fmt.Errorf("%w: %q", ErrUnknownScenario, id)
		}
		if !inRange(row) {
			return fmt.Errorf("%w: scenario %q", ErrPresetOutOfRange, id)
		}
		t.Scenarios[id] = row
	}
	for id, row := range other.Scales {
		if !isScale(id) {
			return fmt.Errorf("%w: %q", ErrUnknownScale, id)
		}
		if !inRange(row) {
			return fmt.Errorf("%w: scale %q", ErrPresetOutOfRange, id)
		}
		t.Scales[id] = row
	}
	return nil
}

// inRange reports whether every field set in row survives normalization
// unchanged. Unset fields merge as zero, which is always in range.
func inRange(row domain.InputOverride) bool {
	in := row.Merge(domain.CalculatorInputs{})
	return NormalizeInputs(in) == in
}

func isScenario(id domain.ScenarioID) bool {
	for _, known := range domain.ScenarioIDs {
		if id == known {
			return true
		}
	}
	return false
}

func isScale(id domain.ScaleID) bool {
	for _, known := range domain.ScaleIDs {
		if id == known {
			return true
		}
	}
	return false
}
