package parser_test

import (
	"testing"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/mysql"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/oracle"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/postgres"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/snowflake"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/tsql"
	"github.com/sqlshift-labs/sqlshift/pkg/parser"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, sql string) *ast.SelectStmt {
	t.Helper()
	stmt, err := parser.Parse(sql, ansi.Default)
	require.NoError(t, err)
	return stmt
}

func firstCore(t *testing.T, stmt *ast.SelectStmt) *ast.SelectCore {
	t.Helper()
	require.NotNil(t, stmt.Body)
	require.NotNil(t, stmt.Body.Left)
	return stmt.Body.Left
}

func TestParseSimpleSelect(t *testing.T) {
	stmt := mustParse(t, "SELECT a, b FROM t")
	core := firstCore(t, stmt)

	require.Len(t, core.Columns, 2)
	col, ok := core.Columns[0].Expr.(*ast.ColumnRef)
	require.True(t, ok)
	assert.Equal(t, "a", col.Column)

	require.NotNil(t, core.From)
	tbl, ok := core.From.Source.(*ast.TableName)
	require.True(t, ok)
	assert.Equal(t, "t", tbl.Name)
}

func TestParseSelectItems(t *testing.T) {
	stmt := mustParse(t, "SELECT *, t.*, a AS x, b y, count(*) FROM t")
	core := firstCore(t, stmt)

	require.Len(t, core.Columns, 5)
	assert.True(t, core.Columns[0].Star)
	assert.Equal(t, "t", core.Columns[1].TableStar)
	assert.Equal(t, "x", core.Columns[2].Alias)
	assert.Equal(t, "y", core.Columns[3].Alias)

	fc, ok := core.Columns[4].Expr.(*ast.FuncCall)
	require.True(t, ok)
	assert.Equal(t, "count", fc.Name)
	assert.True(t, fc.Star)
}

func TestParseWhereExpressionPrecedence(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t WHERE a = 1 OR b = 2 AND c = 3")
	core := firstCore(t, stmt)

	// AND binds tighter: OR(a=1, AND(b=2, c=3))
	or, ok := core.Where.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.OR, or.Op)

	and, ok := or.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.AND, and.Op)
}

func TestParseArithmeticPrecedence(t *testing.T) {
	stmt := mustParse(t, "SELECT a + b * c FROM t")
	core := firstCore(t, stmt)

	add, ok := core.Columns[0].Expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.PLUS, add.Op)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, token.STAR, mul.Op)
}

func TestParsePredicates(t *testing.T) {
	stmt := mustParse(t, `SELECT a FROM t WHERE a IN (1, 2) AND b NOT BETWEEN 1 AND 10 AND c IS NOT NULL AND d NOT LIKE 'x%' AND NOT EXISTS (SELECT 1 FROM u)`)
	core := firstCore(t, stmt)

	in, ok := ast.FindFirst[*ast.InExpr](core.Where)
	require.True(t, ok)
	assert.Len(t, in.Values, 2)
	assert.False(t, in.Not)

	between, ok := ast.FindFirst[*ast.BetweenExpr](core.Where)
	require.True(t, ok)
	assert.True(t, between.Not)

	isNull, ok := ast.FindFirst[*ast.IsNullExpr](core.Where)
	require.True(t, ok)
	assert.True(t, isNull.Not)

	like, ok := ast.FindFirst[*ast.LikeExpr](core.Where)
	require.True(t, ok)
	assert.True(t, like.Not)
	assert.Equal(t, token.LIKE, like.Op)

	exists, ok := ast.FindFirst[*ast.ExistsExpr](core.Where)
	require.True(t, ok)
	assert.True(t, exists.Not)
}

func TestParseJoins(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want ast.JoinType
	}{
		{"inner", "SELECT * FROM a JOIN b ON a.id = b.id", ast.JoinInner},
		{"explicit inner", "SELECT * FROM a INNER JOIN b ON a.id = b.id", ast.JoinInner},
		{"left", "SELECT * FROM a LEFT JOIN b ON a.id = b.id", ast.JoinLeft},
		{"left outer", "SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.id", ast.JoinLeft},
		{"right", "SELECT * FROM a RIGHT JOIN b ON a.id = b.id", ast.JoinRight},
		{"full", "SELECT * FROM a FULL OUTER JOIN b ON a.id = b.id", ast.JoinFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core := firstCore(t, mustParse(t, tt.sql))
			require.Len(t, core.From.Joins, 1)
			assert.Equal(t, tt.want, core.From.Joins[0].Type)
			assert.NotNil(t, core.From.Joins[0].Condition)
		})
	}
}

func TestParseJoinUsingAndComma(t *testing.T) {
	core := firstCore(t, mustParse(t, "SELECT * FROM a, b JOIN c USING (id, ts)"))
	require.Len(t, core.From.Joins, 2)
	assert.Equal(t, ast.JoinComma, core.From.Joins[0].Type)
	assert.Equal(t, []string{"id", "ts"}, core.From.Joins[1].Using)
}

func TestParseCrossJoinRejectsOn(t *testing.T) {
	core := firstCore(t, mustParse(t, "SELECT * FROM a CROSS JOIN b"))
	require.Len(t, core.From.Joins, 1)
	assert.Nil(t, core.From.Joins[0].Condition)
}

func TestParseDerivedAndLateral(t *testing.T) {
	core := firstCore(t, mustParse(t, "SELECT * FROM (SELECT a FROM t) sub JOIN LATERAL (SELECT 1) l ON TRUE"))

	sub, ok := core.From.Source.(*ast.DerivedTable)
	require.True(t, ok)
	assert.Equal(t, "sub", sub.Alias)

	lat, ok := core.From.Joins[0].Right.(*ast.LateralTable)
	require.True(t, ok)
	assert.Equal(t, "l", lat.Alias)
}

func TestParseQualifiedTableName(t *testing.T) {
	core := firstCore(t, mustParse(t, "SELECT * FROM cat.sch.tbl AS x"))
	tbl := core.From.Source.(*ast.TableName)
	assert.Equal(t, "cat", tbl.Catalog)
	assert.Equal(t, "sch", tbl.Schema)
	assert.Equal(t, "tbl", tbl.Name)
	assert.Equal(t, "x", tbl.Alias)
}

func TestParseGroupHavingOrderLimit(t *testing.T) {
	stmt := mustParse(t, "SELECT a, count(*) FROM t GROUP BY a HAVING count(*) > 1 ORDER BY a DESC NULLS LAST LIMIT 10 OFFSET 5")
	core := firstCore(t, stmt)

	require.Len(t, core.GroupBy, 1)
	require.NotNil(t, core.Having)

	require.NotNil(t, core.OrderBy)
	require.Len(t, core.OrderBy.Items, 1)
	item := core.OrderBy.Items[0]
	assert.True(t, item.Desc)
	require.NotNil(t, item.NullsFirst)
	assert.False(t, *item.NullsFirst)

	require.NotNil(t, core.Limit)
	assert.Equal(t, "10", core.Limit.Count.(*ast.Literal).Value)
	assert.Equal(t, "5", core.Offset.(*ast.Literal).Value)
}

func TestParseSetOperations(t *testing.T) {
	stmt := mustParse(t, "SELECT a FROM t UNION ALL SELECT a FROM u EXCEPT SELECT a FROM v")
	require.Equal(t, ast.SetOpUnionAll, stmt.Body.Op)
	require.NotNil(t, stmt.Body.Right)
	assert.Equal(t, ast.SetOpExcept, stmt.Body.Right.Op)
}

func TestParseWithClause(t *testing.T) {
	stmt := mustParse(t, "WITH RECURSIVE x AS (SELECT 1), y AS (SELECT 2) SELECT * FROM x JOIN y ON TRUE")
	require.NotNil(t, stmt.With)
	assert.True(t, stmt.With.Recursive)
	require.Len(t, stmt.With.CTEs, 2)
	assert.Equal(t, "x", stmt.With.CTEs[0].Name)
}

func TestParseCaseCastWindow(t *testing.T) {
	stmt := mustParse(t, `SELECT CASE WHEN a > 0 THEN 'pos' ELSE 'neg' END, CAST(b AS varchar(10)), rank() OVER (PARTITION BY g ORDER BY a) FROM t`)
	core := firstCore(t, stmt)
	require.Len(t, core.Columns, 3)

	ce := core.Columns[0].Expr.(*ast.CaseExpr)
	require.Len(t, ce.Whens, 1)
	require.NotNil(t, ce.Else)

	cast := core.Columns[1].Expr.(*ast.CastExpr)
	assert.Equal(t, "varchar(10)", cast.TypeName)
	assert.False(t, cast.Operator)

	fc := core.Columns[2].Expr.(*ast.FuncCall)
	require.NotNil(t, fc.Window)
	assert.Len(t, fc.Window.PartitionBy, 1)
	require.NotNil(t, fc.Window.OrderBy)
}

func TestParseIdentifierNormalization(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{"postgres folds lower", "postgres", "name"},
		{"oracle folds upper", "oracle", "NAME"},
		{"mysql preserves", "mysql", "Name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stmt *ast.SelectStmt
			var err error
			switch tt.dialect {
			case "postgres":
				stmt, err = parser.Parse("SELECT Name FROM t", postgres.Postgres)
			case "oracle":
				stmt, err = parser.Parse("SELECT Name FROM t", oracle.Oracle)
			default:
				stmt, err = parser.Parse("SELECT Name FROM t", mysql.MySQL)
			}
			require.NoError(t, err)
			col := stmt.Body.Left.Columns[0].Expr.(*ast.ColumnRef)
			assert.Equal(t, tt.want, col.Column)
		})
	}
}

func TestParseQuotedIdentifierSkipsNormalization(t *testing.T) {
	stmt, err := parser.Parse(`SELECT "Name" FROM t`, postgres.Postgres)
	require.NoError(t, err)
	col := stmt.Body.Left.Columns[0].Expr.(*ast.ColumnRef)
	assert.Equal(t, "Name", col.Column)
}

func TestParseTopTSQL(t *testing.T) {
	stmt, err := parser.Parse("SELECT TOP 5 * FROM t", tsql.TSQL)
	require.NoError(t, err)
	core := stmt.Body.Left
	require.NotNil(t, core.Limit)
	assert.Equal(t, "5", core.Limit.Count.(*ast.Literal).Value)
}

func TestParseLimitRejectedUnderTSQL(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM t LIMIT 5", tsql.TSQL)
	require.Error(t, err)
	var unsup *parser.UnsupportedError
	require.ErrorAs(t, err, &unsup)
	assert.Contains(t, err.Error(), "LIMIT is not supported in tsql dialect")
}

func TestParseFetchClause(t *testing.T) {
	stmt, err := parser.Parse("SELECT a FROM t OFFSET 10 ROWS FETCH NEXT 5 ROWS ONLY", oracle.Oracle)
	require.NoError(t, err)
	core := stmt.Body.Left
	require.NotNil(t, core.Limit)
	assert.Equal(t, "5", core.Limit.Count.(*ast.Literal).Value)
	assert.Equal(t, "10", core.Offset.(*ast.Literal).Value)
}

func TestParseFetchWithTiesRejected(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM t FETCH FIRST 5 ROWS WITH TIES", oracle.Oracle)
	require.Error(t, err)
	var unsup *parser.UnsupportedError
	require.ErrorAs(t, err, &unsup)
}

func TestParseQualify(t *testing.T) {
	stmt, err := parser.Parse("SELECT a FROM t QUALIFY row_number() OVER (ORDER BY a) = 1", snowflake.Snowflake)
	require.NoError(t, err)
	require.NotNil(t, stmt.Body.Left.Qualify)

	// QUALIFY is an identifier elsewhere, so this reads as an alias and
	// the window function fails to parse.
	_, err = parser.Parse("SELECT a FROM t QUALIFY row_number() OVER (ORDER BY a) = 1", ansi.Default)
	require.Error(t, err)
}

func TestParseCastOperatorPostgres(t *testing.T) {
	stmt, err := parser.Parse("SELECT a::numeric(10, 2) FROM t", postgres.Postgres)
	require.NoError(t, err)
	cast := stmt.Body.Left.Columns[0].Expr.(*ast.CastExpr)
	assert.True(t, cast.Operator)
	assert.Equal(t, "numeric(10, 2)", cast.TypeName)
}

func TestParseIlike(t *testing.T) {
	stmt, err := parser.Parse("SELECT a FROM t WHERE a ILIKE '%x%'", postgres.Postgres)
	require.NoError(t, err)
	like := stmt.Body.Left.Where.(*ast.LikeExpr)
	assert.Equal(t, token.ILIKE, like.Op)
}

func TestParseTrailingSemicolon(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM t;", ansi.Default)
	require.NoError(t, err)
}

func TestParseMultiStatementRejected(t *testing.T) {
	_, err := parser.Parse("SELECT a FROM t; SELECT b FROM u", ansi.Default)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multi-statement")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"empty input", ""},
		{"missing from target", "SELECT a FROM"},
		{"dangling operator", "SELECT a + FROM t"},
		{"unbalanced paren", "SELECT (a FROM t"},
		{"missing on", "SELECT * FROM a JOIN b"},
		{"case without when", "SELECT CASE END FROM t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.sql, ansi.Default)
			require.Error(t, err)
			var pe *parser.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Greater(t, pe.Pos.Line, 0)
		})
	}
}

func TestParseLexErrorSurfaces(t *testing.T) {
	_, err := parser.Parse("SELECT 'oops FROM t", ansi.Default)
	require.Error(t, err)
	var le *parser.LexError
	require.ErrorAs(t, err, &le)
}
