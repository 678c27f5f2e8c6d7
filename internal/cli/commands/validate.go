package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <sql>",
		Short: "Check that a statement parses under a dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			if err := deps.Engine().Validate(sql, dialectFlag(cmd)); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
