// CrateCraft turns cargo dimensions into a shortlist of modular crate
// designs built from a fixed board catalog.
//
// Build:
//
//	go build -o cratecraft ./cmd/cratecraft
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/piwi3910/CrateCraft/internal/config"
	"github.com/piwi3910/CrateCraft/internal/engine"
)

// Version info set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootOpts holds the persistent flags shared by every subcommand.
type rootOpts struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	ro := &rootOpts{}
	cmd := &cobra.Command{
		Use:          "cratecraft",
		Short:        "CrateCraft - modular crate design optimizer",
		Long:         "CrateCraft tiles cargo dimensions with standard boards and shortlists the cheapest, tightest and simplest crates.",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "path to a YAML config file (defaults to the built-in catalog)")
	cmd.PersistentFlags().StringVar(&ro.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newOptimizeCmd(ro))
	cmd.AddCommand(newBatchCmd(ro))
	cmd.AddCommand(newCompareCmd(ro))
	cmd.AddCommand(newCatalogCmd(ro))
	cmd.AddCommand(newServeCmd(ro))
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cratecraft %s (commit: %s, built: %s)\n", Version, Commit, Date)
		},
	}
}

// env is the loaded configuration plus a logger writing to the command's
// stderr.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
}

func (ro *rootOpts) load(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(ro.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel()
	if ro.logLevel != "" {
		level, err = zerolog.ParseLevel(strings.ToLower(ro.logLevel))
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", ro.logLevel, err)
		}
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(level).
		With().Timestamp().Logger()
	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) optimizer() *engine.Optimizer {
	return engine.New(e.cfg.Catalog, e.cfg.Optimizer).WithLogger(e.logger)
}

func execute(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(newRootCmd()))
}
