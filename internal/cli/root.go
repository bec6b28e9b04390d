// Package cli implements the aercomp command line interface.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the aercomp CLI.
// It wires up logging and the subcommands (compare, presets, report, serve).
func NewRootCmd(ver string) *cobra.Command {
	var state *logState

	cmd := &cobra.Command{
		Use:   "aercomp",
		Short: "Aerator comparison for shrimp-farm aeration economics",
		Long: `aercomp sizes mechanical aerators against a shrimp farm's oxygen demand
and compares them financially: NPV of savings, IRR, payback, ROI,
profitability index, and the equilibrium price of each losing option.`,
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			s, err := setupLogging(cmd)
			if err != nil {
				return err
			}
			state = s
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(state)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.aercomp/config.yaml)")
	cmd.AddCommand(newCompareCmd(), newPresetsCmd(), newReportCmd(), newServeCmd())

	return cmd
}

const rootCmdExample = `  # Compare the aerators in a scenario file
  aercomp compare scenario.json

  # Run the built-in demo scenario
  aercomp compare --example

  # Compare several scenarios concurrently, JSON output
  aercomp compare --output json farm-a.yaml farm-b.yaml

  # Export a comparison as a spreadsheet
  aercomp report scenario.json --format xlsx --out comparison.xlsx

  # Serve the comparison API over HTTP
  aercomp serve

  # List available presets
  aercomp presets list`
