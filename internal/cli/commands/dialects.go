package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the registered SQL dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range deps.Engine().Dialects() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
