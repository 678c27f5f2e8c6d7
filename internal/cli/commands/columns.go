package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewColumnsCommand creates the columns command.
func NewColumnsCommand(deps Deps) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "columns <sql>",
		Short: "List the projection columns of the outermost SELECT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, err := readSQL(cmd, args)
			if err != nil {
				return err
			}
			cols, err := deps.Engine().Columns(sql, dialectFlag(cmd))
			if err != nil {
				return err
			}
			if plain {
				for _, c := range cols {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), c)
				}
				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"#", "Column"})
			for i, c := range cols {
				t.AppendRow(table.Row{i + 1, c})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print one column per line without the table")
	return cmd
}
