package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/floatkit/internal/ports"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config *config.Config
	Logger ports.Logger
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	a.Config = &cfg

	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Writer: cmd.ErrOrStderr(),
		Level:  level,
		Format: logging.Format(flags.logFormat),
		Layer:  "cli",
	})
	if err != nil {
		return err
	}
	a.Logger = logger
	return nil
}

// CommandContext returns a context carrying a fresh correlation id and a
// logger scoped to the named command.
func (a *AppContext) CommandContext(cmd *cobra.Command, name string) (context.Context, ports.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	logger := a.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return ctx, logger.With("command", name)
}
