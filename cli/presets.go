package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"rpa-roi/config"
	"rpa-roi/domain"
	"rpa-roi/service"
)

var presetsJSON bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List scenario and scale presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return &CLIError{Message: "invalid configuration", Err: err}
		}
		presets, err := config.LoadPresetTable(cfg.PresetsFile)
		if err != nil {
			return MapError(err)
		}

		if presetsJSON {
			return writeJSON(cmd.OutOrStdout(), presets)
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), renderPresets(presets))
		return err
	},
}

func renderPresets(presets *service.PresetTable) string {
	var scenarios []table.Row
	for _, id := range domain.ScenarioIDs {
		p := presets.Scenarios[id]
		scenarios = append(scenarios, table.Row{string(id), optional(p.AutomationRate, "%.0f%%"), optional(p.ErrorReductionRate, "%.0f%%")})
	}

	var scales []table.Row
	for _, id := range domain.ScaleIDs {
		p := presets.Scales[id]
		scales = append(scales, table.Row{
			string(id),
			optional(p.NumEmployees, "%.0f"),
			optional(p.AnnualWorkload, "%.0f"),
			optional(p.NumBots, "%.0f"),
			optional(p.DevelopmentCost, "%.0f"),
			optional(p.ConsultingCost, "%.0f"),
		})
	}

	return titleStyle.Render("Scenarios") + "\n" +
		staticTable([]table.Column{
			{Title: "Scenario", Width: 14},
			{Title: "Automation", Width: 12},
			{Title: "Error reduction", Width: 16},
		}, scenarios) + "\n\n" +
		titleStyle.Render("Scales") + "\n" +
		staticTable([]table.Column{
			{Title: "Scale", Width: 8},
			{Title: "Employees", Width: 10},
			{Title: "Tasks/year", Width: 11},
			{Title: "Bots", Width: 6},
			{Title: "Development", Width: 13},
			{Title: "Consulting", Width: 13},
		}, scales) + "\n"
}

func optional(v *float64, layout string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(layout, *v)
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Output in JSON format")
	RootCmd.AddCommand(presetsCmd)
}
