package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/sqlshift-labs/sqlshift/pkg/engine"
)

// NewReplCommand creates the repl command.
func NewReplCommand(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell: parse, render and inspect statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, deps)
		},
	}
}

func runRepl(cmd *cobra.Command, deps Deps) error {
	eng := deps.Engine()
	dialect := dialectFlag(cmd)

	historyFile := filepath.Join(os.TempDir(), "sqlshift_history")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlshift> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("initializing repl: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "sqlshift repl (dialect: %s)\n", dialect)
	_, _ = fmt.Fprintln(out, "Enter SQL to re-render it; .help for commands, .quit to exit")

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt("sqlshift> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") && buf.Len() == 0 {
			if quit := replDotCommand(out, eng, &dialect, line); quit {
				return nil
			}
			continue
		}

		// accumulate until a terminating semicolon
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt("     ...> ")
			continue
		}
		rl.SetPrompt("sqlshift> ")

		sql := strings.TrimSuffix(buf.String(), ";")
		buf.Reset()

		rendered, err := eng.Transpile(sql, dialect, dialect)
		if err != nil {
			_, _ = fmt.Fprintln(out, "error:", err)
			continue
		}
		_, _ = fmt.Fprintln(out, rendered)
	}
}

// replDotCommand handles a dot command and reports whether to quit.
func replDotCommand(out io.Writer, eng *engine.Engine, dialect *string, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit", ".exit":
		return true

	case ".help":
		_, _ = fmt.Fprintln(out, `Commands:
  .dialect <name>   switch the active dialect
  .dialects         list registered dialects
  .tree <sql>       dump the syntax tree of a statement
  .columns <sql>    list the projection columns of a statement
  .quit             exit`)

	case ".dialect":
		if len(fields) != 2 {
			_, _ = fmt.Fprintln(out, "usage: .dialect <name>")
			return false
		}
		if err := eng.Validate("SELECT 1", fields[1]); err != nil {
			_, _ = fmt.Fprintln(out, "error:", err)
			return false
		}
		*dialect = fields[1]
		_, _ = fmt.Fprintln(out, "dialect set to", fields[1])

	case ".dialects":
		_, _ = fmt.Fprintln(out, strings.Join(eng.Dialects(), " "))

	case ".tree":
		sql := strings.TrimSpace(strings.TrimPrefix(line, ".tree"))
		tree, err := eng.ParseToTree(strings.TrimSuffix(sql, ";"), *dialect)
		if err != nil {
			_, _ = fmt.Fprintln(out, "error:", err)
			return false
		}
		_, _ = fmt.Fprintln(out, tree)

	case ".columns":
		sql := strings.TrimSpace(strings.TrimPrefix(line, ".columns"))
		cols, err := eng.Columns(strings.TrimSuffix(sql, ";"), *dialect)
		if err != nil {
			_, _ = fmt.Fprintln(out, "error:", err)
			return false
		}
		_, _ = fmt.Fprintln(out, strings.Join(cols, ", "))

	default:
		_, _ = fmt.Fprintln(out, "unknown command; .help for help")
	}
	return false
}
