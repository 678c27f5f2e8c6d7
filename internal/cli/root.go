// Package cli provides the command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sqlshift-labs/sqlshift/internal/cli/commands"
	"github.com/sqlshift-labs/sqlshift/internal/cli/config"
	"github.com/sqlshift-labs/sqlshift/pkg/engine"

	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/bigquery"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/hive"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/mysql"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/oracle"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/postgres"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/redshift"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/snowflake"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/sparksql"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/sqlite"
	_ "github.com/sqlshift-labs/sqlshift/pkg/dialects/tsql"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile string
		cfg     *config.Config
		eng     *engine.Engine
	)

	rootCmd := &cobra.Command{
		Use:   "sqlshift",
		Short: "Dialect-aware SQL validation, rewriting and transpilation",
		Long: `sqlshift parses SELECT statements under a chosen SQL dialect and can
validate them, attach ORDER BY / LIMIT clauses, transpile them between
dialects, list projection columns, or dump the syntax tree.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			var err error
			cfg, err = config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			setupLogging(cfg)
			eng = engine.New(engine.Options{
				CacheSize:    cfg.CacheSize,
				ReplaceOrder: cfg.ReplaceOrder,
			})
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: sqlshift.yaml)")
	pf.String("dialect", "default", "SQL dialect to parse under")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Int("cache-size", 1024, "validation cache size, negative to disable")
	pf.Bool("replace-order", false, "replace an existing ORDER BY when attaching one")
	pf.Bool("verbose", false, "verbose output")

	deps := commands.Deps{
		Engine: func() *engine.Engine { return eng },
		Config: func() *config.Config { return cfg },
	}
	rootCmd.AddCommand(
		commands.NewValidateCommand(deps),
		commands.NewManipulateCommand(deps),
		commands.NewTranspileCommand(deps),
		commands.NewColumnsCommand(deps),
		commands.NewParseCommand(deps),
		commands.NewDialectsCommand(deps),
		commands.NewServeCommand(deps),
		commands.NewReplCommand(deps),
		commands.NewVersionCommand(Version, GitCommit),
	)
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
