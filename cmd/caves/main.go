// Command caves counts and lists the paths through a cave system.
//
//	caves solve input.txt               # both policies, puzzle-style output
//	caves count input.txt --policy 2    # one number
//	caves list input.txt --policy single
//
// Settings may also come from a YAML file passed with --config.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/caves/internal/config"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	workers    int
	order      string

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "caves",
		Short: "Enumerate every path through a cave system",
		Long: `caves reads an edge list ("LABEL-LABEL" per line) and enumerates every
path from start to end.

Caves named "start" and "end" are the entry and exit. Caves whose name starts
with an upper-case letter are big and may be visited any number of times;
all other caves are small and are limited by the policy:

  single      no small cave is visited twice
  duplicate   one small cave per path may be visited twice`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.IntVar(&a.workers, "workers", 0, "parallel workers (overrides config; 0 keeps config)")
	pf.StringVar(&a.order, "order", "", "frontier order: fifo or lifo (overrides config)")

	root.AddCommand(a.solveCmd(), a.countCmd(), a.listCmd())
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.workers > 0 {
		cfg.Workers = a.workers
	}
	if a.order != "" {
		cfg.Order = a.order
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger, err = newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func newLogger(lc config.LogConfig) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if strings.EqualFold(lc.Format, "console") {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
