package cli

import (
	"github.com/spf13/cobra"
)

var Version = "dev"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "roi",
	Version: Version,
	Short:   "Estimate the return on automating a manual workflow",
	Long: `roi estimates the financial return of robotic process automation.

Given staffing, workload, error rates and the planned automation investment it
reports ROI over 1, 3 and 5 years, the payback period and a 60-month cumulative
cash-flow projection. Run it as an HTTP service with 'roi serve' or compute a
single case with 'roi calc'.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
