package commands_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sqlshift-labs/sqlshift/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "SELECT a FROM t")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	_, err = execute(t, "validate", "SELECT FROM")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse_error")
}

func TestValidateCommandDialectFlag(t *testing.T) {
	_, err := execute(t, "validate", "--dialect", "tsql", "SELECT TOP 5 * FROM t")
	require.NoError(t, err)

	_, err = execute(t, "validate", "--dialect", "default", "SELECT TOP 5 * FROM t")
	require.Error(t, err)
}

func TestValidateCommandStdin(t *testing.T) {
	root := cli.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader("SELECT a FROM t\n"))
	root.SetArgs([]string{"validate", "-"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "OK")
}

func TestManipulateCommand(t *testing.T) {
	out, err := execute(t, "manipulate", "--with-order", "--limit", "5", "SELECT a, b FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t ORDER BY 1 LIMIT 5\n", out)
}

func TestTranspileCommand(t *testing.T) {
	out, err := execute(t, "transpile", "--from", "tsql", "--to", "default", "SELECT TOP 5 * FROM t")
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM t LIMIT 5\n", out)
}

func TestColumnsCommandPlain(t *testing.T) {
	out, err := execute(t, "columns", "--plain", "SELECT a, b+1, c AS x FROM t")
	require.NoError(t, err)
	assert.Equal(t, "a\nb+1\nc\n", out)
}

func TestColumnsCommandTable(t *testing.T) {
	out, err := execute(t, "columns", "SELECT a FROM t")
	require.NoError(t, err)
	assert.Contains(t, out, "Column")
	assert.Contains(t, out, "a")
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "SELECT a FROM t")
	require.NoError(t, err)
	assert.Contains(t, out, "Select")
	assert.Contains(t, out, "From")
}

func TestDialectsCommand(t *testing.T) {
	out, err := execute(t, "dialects")
	require.NoError(t, err)
	for _, want := range []string{"default", "mysql", "postgres", "tsql"} {
		assert.Contains(t, out, want)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlshift v")
}
