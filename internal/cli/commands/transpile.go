package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewTranspileCommand creates the transpile command.
func NewTranspileCommand(deps Deps) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "transpile <sql>",
		Short: "Re-render a statement in another dialect",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			out, err := deps.Engine().Transpile(sql, from, to)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "default", "source dialect")
	cmd.Flags().StringVar(&to, "to", "default", "target dialect")
	return cmd
}
