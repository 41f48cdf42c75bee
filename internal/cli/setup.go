package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tablescope/tablescope/internal/config"
	"github.com/tablescope/tablescope/internal/logging"
)

// configKey is the context key for the loaded configuration.
type configKey struct{}

// logResultHolder keeps the logger's file handle for cleanup.
type logResultHolder struct {
	result logging.Result
}

// setupLogging loads the configuration, builds the logger, and attaches
// logger, trace ID, and config to the command context.
func setupLogging(cmd *cobra.Command) (*logResultHolder, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	logCfg := logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
		logCfg.Format = "console"
		logCfg.File = ""
	}

	result := logging.New(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, configKey{}, cfg)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("trace_id", traceID).
		Msg("command started")

	return &logResultHolder{result: result}, nil
}

// cleanupLogging closes the log file handle, if one was opened.
func cleanupLogging(holder *logResultHolder) error {
	if holder == nil {
		return nil
	}
	return holder.result.Close()
}

// configFromContext returns the configuration stored by setupLogging,
// falling back to defaults when the context carries none (tests).
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}
