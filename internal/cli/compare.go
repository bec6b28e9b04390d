package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxyfarm/aercomp/internal/config"
	"github.com/oxyfarm/aercomp/internal/engine"
	"github.com/oxyfarm/aercomp/internal/engine/batch"
)

// compareParams holds the flags of the compare command.
type compareParams struct {
	preset      string
	example     bool
	output      string
	concurrency int
}

// newCompareCmd creates the "compare" subcommand.
//
// Scenarios come from positional file arguments (JSON or YAML), a named
// preset, or the built-in example. Multiple files run concurrently and are
// reported in input order.
func newCompareCmd() *cobra.Command {
	var params compareParams

	cmd := &cobra.Command{
		Use:   "compare [scenario files]",
		Short: "Compare aerators for a farm scenario",
		Long: `Compare two or more aerators against a farm's oxygen demand and report
unit counts, annual costs, and the financial metrics of choosing each
aerator over the least efficient one.`,
		Example: compareCmdExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCompare(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.preset, "preset", "", "named scenario preset to run")
	cmd.Flags().BoolVar(&params.example, "example", false, "run the built-in demo scenario")
	cmd.Flags().StringVar(&params.output, "output", "", "output format: table or json (default from config)")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", batch.DefaultConcurrency,
		"scenarios processed in parallel when several files are given")

	return cmd
}

const compareCmdExample = `  # Compare aerators from a scenario file
  aercomp compare scenario.json

  # YAML scenarios work the same way
  aercomp compare farm.yaml

  # Run a named preset
  aercomp compare --preset demo-farm

  # Built-in example scenario
  aercomp compare --example

  # Batch over several farms, JSON output
  aercomp compare --output json farm-a.json farm-b.json farm-c.yaml`

// executeCompare resolves the scenario sources, runs them, and renders the
// results in the selected output format.
func executeCompare(cmd *cobra.Command, args []string, params compareParams) error {
	ctx := cmd.Context()

	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		return err
	}
	// Piped output defaults to JSON so downstream tooling gets a parseable
	// document; interactive terminals get the configured format.
	outputFormat := params.output
	if outputFormat == "" {
		outputFormat = cfg.Output.Format
		if !isTerminal(os.Stdout) {
			outputFormat = OutputJSON
		}
	}
	if outputFormat != OutputTable && outputFormat != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be table or json", outputFormat)
	}

	scenarios, err := collectScenarios(args, params, cfg)
	if err != nil {
		return err
	}

	runner, err := batch.NewRunner(params.concurrency)
	if err != nil {
		return err
	}
	results, err := runner.Run(ctx, scenarios)
	if err != nil {
		return err
	}

	var failed int
	for _, res := range results {
		if len(results) > 1 {
			cmd.Printf("=== %s ===\n", res.Label)
		}
		if res.Err != nil {
			failed++
			cmd.PrintErrf("Error: %v\n", res.Err)
			continue
		}
		if outputFormat == OutputJSON {
			if err := renderJSON(cmd.OutOrStdout(), res.Comparison); err != nil {
				return err
			}
		} else {
			renderTable(cmd.OutOrStdout(), res.Comparison)
		}
		if len(results) > 1 {
			cmd.Println()
		}
	}

	if failed == len(results) {
		return fmt.Errorf("all %d scenario(s) failed", failed)
	}
	return nil
}

// collectScenarios builds the scenario list from files, preset, or example.
func collectScenarios(args []string, params compareParams, cfg config.Config) ([]batch.Scenario, error) {
	var scenarios []batch.Scenario

	if params.example {
		preset := config.BuiltinPresets()["demo-farm"]
		scenarios = append(scenarios, batch.Scenario{Label: preset.Name, Request: &preset.Request})
	}
	if params.preset != "" {
		preset, err := config.ResolvePreset(params.preset, cfg.PresetDir)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, batch.Scenario{Label: preset.Name, Request: &preset.Request})
	}
	for _, path := range args {
		req, err := readScenarioFile(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, batch.Scenario{Label: filepath.Base(path), Request: req})
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenario given: pass a file, --preset, or --example")
	}
	return scenarios, nil
}

// readScenarioFile parses a scenario file by extension: .yaml/.yml as YAML,
// everything else as JSON.
func readScenarioFile(path string) (*engine.ComparisonRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		req, err := engine.ParseRequestYAML(data)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
		return req, nil
	default:
		req, err := engine.ParseRequest(data)
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", path, err)
		}
		return req, nil
	}
}

// loadCommandConfig loads the config file referenced by the --config flag.
func loadCommandConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	return config.Load(configPath)
}
