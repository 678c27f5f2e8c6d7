package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewParseCommand creates the parse command.
func NewParseCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <sql>",
		Short: "Dump the syntax tree of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			tree, err := deps.Engine().ParseToTree(sql, dialectFlag(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tree)
			return nil
		},
	}
}
