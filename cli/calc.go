package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"rpa-roi/config"
	"rpa-roi/domain"
	"rpa-roi/format"
	"rpa-roi/service"
)

var (
	calcInput     string
	calcScenario  string
	calcScale     string
	calcUnit      string
	calcJSON      bool
	calcBreakdown bool
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Calculate ROI, payback and cash flow for one business case",
	Long: `Calculate starts from the default inputs, merges the JSON file given with
--input (any subset of fields), applies --scale and then --scenario, and prints
the results.

Flags:
  --input      JSON file with calculator inputs
  --scale      small, medium or large
  --scenario   conservative, standard or optimistic
  --unit       won, million or korean
  --breakdown  Show how each figure was derived
  --json       Output in JSON format`,
	RunE: runCalc,
}

type calcOutput struct {
	Inputs    domain.CalculatorInputs   `json:"inputs"`
	Results   domain.CalculationResults `json:"results"`
	Workload  domain.WorkloadAnalysis   `json:"workload"`
	Breakdown []domain.BreakdownStep    `json:"breakdown,omitempty"`
}

func runCalc(cmd *cobra.Command, args []string) error {
	unit, err := format.ParseUnit(calcUnit)
	if err != nil {
		return &CLIError{Message: "invalid --unit", Err: err}
	}

	cfg, err := config.Load()
	if err != nil {
		return &CLIError{Message: "invalid configuration", Hint: "check the ROI_* environment variables", Err: err}
	}
	presets, err := config.LoadPresetTable(cfg.PresetsFile)
	if err != nil {
		return MapError(err)
	}

	input, err := loadInputs(calcInput)
	if err != nil {
		return &CLIError{Message: "cannot read inputs", Hint: "pass a JSON object with calculator fields", Err: err}
	}

	input, err = resolvePresets(presets, input, calcScale, calcScenario)
	if err != nil {
		return MapError(err)
	}

	input = service.NormalizeInputs(input)
	result := service.CalculateROI(input)
	out := calcOutput{
		Inputs:   input,
		Results:  result,
		Workload: service.AnalyzeWorkload(input, result),
	}
	if calcBreakdown {
		out.Breakdown = service.Breakdown(input, result)
	}

	if calcJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderReport(out, unit))
	return err
}

// loadInputs returns the default inputs with the fields of the JSON file at
// path merged over them.
func loadInputs(path string) (domain.CalculatorInputs, error) {
	input := domain.DefaultInputs()
	if path == "" {
		return input, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return input, err
	}

	var override domain.InputOverride
	if err := json.Unmarshal(data, &override); err != nil {
		return input, fmt.Errorf("parse %s: %w", path, err)
	}
	return override.Merge(input), nil
}

// resolvePresets applies the scale first so a scenario can still adjust the
// rates of a scaled case.
func resolvePresets(table *service.PresetTable, input domain.CalculatorInputs, scale, scenario string) (domain.CalculatorInputs, error) {
	var err error
	if scale != "" {
		if input, err = table.ApplyScale(input, domain.ScaleID(scale)); err != nil {
			return input, err
		}
	}
	if scenario != "" {
		if input, err = table.ApplyPreset(input, domain.ScenarioID(scenario)); err != nil {
			return input, err
		}
	}
	return input, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	calcCmd.Flags().StringVar(&calcInput, "input", "", "JSON file with calculator inputs")
	calcCmd.Flags().StringVar(&calcScenario, "scenario", "", "Scenario preset (conservative/standard/optimistic)")
	calcCmd.Flags().StringVar(&calcScale, "scale", "", "Scale preset (small/medium/large)")
	calcCmd.Flags().StringVar(&calcUnit, "unit", string(format.UnitKorean), "Currency unit (won/million/korean)")
	calcCmd.Flags().BoolVar(&calcBreakdown, "breakdown", false, "Show how each figure was derived")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(calcCmd)
}
