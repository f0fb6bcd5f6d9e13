package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazepath/config"
)

// app carries state shared by subcommands once the root has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	trace      string
	otlpAddr   string

	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mazepath",
		Short:         "Greedy and A* path finding on grid mazes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(context.WithoutCancel(cmd.Context()))
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file (default: built-in batch)")
	f.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	f.StringVar(&a.trace, "trace", "none", "trace exporter: none, stdout or otlp")
	f.StringVar(&a.otlpAddr, "otlp-endpoint", "localhost:4317", "OTLP gRPC endpoint for --trace=otlp")

	root.AddCommand(
		newSolveCmd(a),
		newGenerateCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
		newInitConfigCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and installs the
// logger and tracer.
func (a *app) setup(cmd *cobra.Command) error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Log.Format = a.logFormat
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = a.cfg.Log.NewLogger(cmd.ErrOrStderr())
	slog.SetDefault(a.logger)

	shutdown, err := setupTracing(cmd.Context(), a.trace, a.otlpAddr, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}
	a.shutdown = shutdown
	return nil
}

func newInitConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "mazepath.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			a.logger.Info("configuration written", slog.String("path", path))
			return nil
		},
	}
}
