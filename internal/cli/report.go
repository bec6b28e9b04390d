package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxyfarm/aercomp/internal/config"
	"github.com/oxyfarm/aercomp/internal/engine"
	"github.com/oxyfarm/aercomp/internal/report"
)

// reportParams holds the flags of the report command.
type reportParams struct {
	preset string
	format string
	out    string
}

// newReportCmd creates the "report" subcommand: run one comparison and
// export it as an XLSX workbook or PDF summary.
func newReportCmd() *cobra.Command {
	var params reportParams

	cmd := &cobra.Command{
		Use:   "report [scenario file]",
		Short: "Export a comparison as XLSX or PDF",
		Example: `  # Spreadsheet report from a scenario file
  aercomp report scenario.json --format xlsx --out comparison.xlsx

  # PDF summary of a preset
  aercomp report --preset demo-farm --format pdf --out demo.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeReport(cmd, args, params)
		},
	}

	cmd.Flags().StringVar(&params.preset, "preset", "", "named scenario preset to run")
	cmd.Flags().StringVar(&params.format, "format", "xlsx", "report format: xlsx or pdf")
	cmd.Flags().StringVar(&params.out, "out", "", "output file path (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func executeReport(cmd *cobra.Command, args []string, params reportParams) error {
	ctx := cmd.Context()

	var (
		req   *engine.ComparisonRequest
		label string
	)
	switch {
	case len(args) == 1:
		parsed, err := readScenarioFile(args[0])
		if err != nil {
			return err
		}
		req, label = parsed, args[0]
	case params.preset != "":
		cfg, err := loadCommandConfig(cmd)
		if err != nil {
			return err
		}
		preset, err := config.ResolvePreset(params.preset, cfg.PresetDir)
		if err != nil {
			return err
		}
		req, label = &preset.Request, preset.Name
	default:
		return fmt.Errorf("no scenario given: pass a file or --preset")
	}

	comparison, err := engine.Compare(ctx, req)
	if err != nil {
		return err
	}

	var payload []byte
	switch params.format {
	case "xlsx":
		payload, err = report.BuildXLSX(comparison)
	case "pdf":
		payload, err = report.BuildPDF(comparison)
	default:
		return fmt.Errorf("invalid report format %q: must be xlsx or pdf", params.format)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(params.out, payload, 0600); err != nil {
		return fmt.Errorf("writing report %s: %w", params.out, err)
	}

	logger.Info().
		Str("scenario", label).
		Str("format", params.format).
		Str("out", params.out).
		Int("bytes", len(payload)).
		Msg("report written")
	cmd.Printf("Report written to %s\n", params.out)
	return nil
}
