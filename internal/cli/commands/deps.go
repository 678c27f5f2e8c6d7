// Package commands implements the CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqlshift-labs/sqlshift/internal/cli/config"
	"github.com/sqlshift-labs/sqlshift/pkg/engine"
)

// Deps gives commands access to state built by the root command after
// configuration loading.
type Deps struct {
	Engine func() *engine.Engine
	Config func() *config.Config
}

// readSQL returns the statement from the positional argument, or from stdin
// when the argument is "-".
func readSQL(cmd *cobra.Command, args []string) (string, error) {
	if args[0] != "-" {
		return args[0], nil
	}
	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	sql := strings.TrimSpace(string(raw))
	if sql == "" {
		return "", fmt.Errorf("no SQL on stdin")
	}
	return sql, nil
}

// dialectFlag reads the persistent --dialect flag.
func dialectFlag(cmd *cobra.Command) string {
	d, _ := cmd.Flags().GetString("dialect")
	return d
}
