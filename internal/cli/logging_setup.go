package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oxyfarm/aercomp/internal/config"
	"github.com/oxyfarm/aercomp/internal/logging"
)

// logState carries the logging artifacts that need cleanup after a command.
type logState struct {
	result logging.LogResult
	cfg    config.Config
}

// setupLogging loads configuration, builds the logger, and attaches it to
// the command context together with a run trace ID.
func setupLogging(cmd *cobra.Command) (*logState, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}
	if envLevel := os.Getenv("AERCOMP_LOG_LEVEL"); envLevel != "" {
		loggingCfg.Level = envLevel
	}

	result := logging.NewLogger(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.FallbackUsed {
		cmd.PrintErrf("Warning: could not open log file, logging to stderr: %s\n", result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return &logState{result: result, cfg: cfg}, nil
}

// cleanupLogging releases the log file handle, if any.
func cleanupLogging(state *logState) error {
	if state == nil {
		return nil
	}
	return state.result.Close()
}
