package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlshift-labs/sqlshift/pkg/engine"
)

// NewManipulateCommand creates the manipulate command.
func NewManipulateCommand(deps Deps) *cobra.Command {
	var (
		withOrder bool
		limit     int
	)
	cmd := &cobra.Command{
		Use:   "manipulate <sql>",
		Short: "Attach ORDER BY 1 and a LIMIT to a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			out, err := deps.Engine().Manipulate(sql, dialectFlag(cmd), engine.ManipulateOptions{
				WithOrder: withOrder,
				Limit:     limit,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withOrder, "with-order", false, "attach ORDER BY 1 when the statement has none")
	cmd.Flags().IntVar(&limit, "limit", 0, "attach LIMIT n (0 leaves the statement alone)")
	return cmd
}
