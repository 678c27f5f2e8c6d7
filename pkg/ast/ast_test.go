package ast_test

import (
	"testing"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleSelect(cols ...ast.SelectItem) *ast.SelectStmt {
	return &ast.SelectStmt{
		Body: &ast.SelectBody{
			Left: &ast.SelectCore{
				Columns: cols,
				From:    &ast.FromClause{Source: &ast.TableName{Name: "t"}},
			},
		},
	}
}

func col(name string) ast.SelectItem {
	return ast.SelectItem{Expr: &ast.ColumnRef{Column: name}}
}

func TestWalkVisitsChildren(t *testing.T) {
	stmt := simpleSelect(col("a"), col("b"))
	stmt.Body.Left.Where = &ast.BinaryExpr{
		Left:  &ast.ColumnRef{Column: "a"},
		Op:    token.EQ,
		Right: &ast.Literal{Type: ast.LiteralNumber, Value: "1"},
	}

	var cols, tables int
	ast.Walk(stmt, func(n ast.Node) bool {
		switch n.(type) {
		case *ast.ColumnRef:
			cols++
		case *ast.TableName:
			tables++
		}
		return true
	})
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1, tables)
}

func TestWalkPrune(t *testing.T) {
	stmt := simpleSelect(col("a"))
	var visited int
	ast.Walk(stmt, func(n ast.Node) bool {
		visited++
		_, isCore := n.(*ast.SelectCore)
		return !isCore // stop below the core
	})
	// SelectStmt, SelectBody, SelectCore only
	assert.Equal(t, 3, visited)
}

func TestFindFirst(t *testing.T) {
	stmt := simpleSelect(col("a"))

	_, ok := ast.FindFirst[*ast.OrderByClause](stmt)
	assert.False(t, ok)

	stmt.Body.Left.OrderBy = &ast.OrderByClause{Items: ast.PositionalOrderBy(1)}
	ob, ok := ast.FindFirst[*ast.OrderByClause](stmt)
	require.True(t, ok)
	assert.Len(t, ob.Items, 1)

	tbl, ok := ast.FindFirst[*ast.TableName](stmt)
	require.True(t, ok)
	assert.Equal(t, "t", tbl.Name)
}

func TestAttachOrderByNoOpWhenPresent(t *testing.T) {
	stmt := simpleSelect(col("a"))
	existing := &ast.OrderByClause{Items: []ast.OrderByItem{{
		Expr: &ast.ColumnRef{Column: "a"}, Desc: true,
	}}}
	stmt.Body.Left.OrderBy = existing

	require.NoError(t, ast.AttachOrderBy(stmt, ast.PositionalOrderBy(1), false))
	assert.Same(t, existing, stmt.Body.Left.OrderBy)
	assert.True(t, stmt.Body.Left.OrderBy.Items[0].Desc)
}

func TestAttachOrderByReplace(t *testing.T) {
	stmt := simpleSelect(col("a"))
	stmt.Body.Left.OrderBy = &ast.OrderByClause{Items: []ast.OrderByItem{{
		Expr: &ast.ColumnRef{Column: "a"},
	}}}

	require.NoError(t, ast.AttachOrderBy(stmt, ast.PositionalOrderBy(2), true))
	lit := stmt.Body.Left.OrderBy.Items[0].Expr.(*ast.Literal)
	assert.Equal(t, "2", lit.Value)
}

func TestAttachOrderByTrailingCore(t *testing.T) {
	stmt := simpleSelect(col("a"))
	right := &ast.SelectBody{Left: &ast.SelectCore{
		Columns: []ast.SelectItem{col("b")},
	}}
	stmt.Body.Op = ast.SetOpUnion
	stmt.Body.Right = right

	require.NoError(t, ast.AttachOrderBy(stmt, ast.PositionalOrderBy(1), false))
	assert.Nil(t, stmt.Body.Left.OrderBy)
	assert.NotNil(t, right.Left.OrderBy)
}

func TestAttachOrderByWindowOrderCountsAsPresent(t *testing.T) {
	// an ORDER BY inside an OVER clause counts as an existing ORDER BY
	stmt := simpleSelect(ast.SelectItem{Expr: &ast.FuncCall{
		Name: "rank",
		Window: &ast.WindowSpec{
			OrderBy: &ast.OrderByClause{Items: ast.PositionalOrderBy(1)},
		},
	}})

	require.NoError(t, ast.AttachOrderBy(stmt, ast.PositionalOrderBy(1), false))
	// the window clause was found, so the no-op path was taken
	assert.Nil(t, stmt.Body.Left.OrderBy)
}

func TestAttachLimitIdempotent(t *testing.T) {
	stmt := simpleSelect(col("a"))
	require.NoError(t, ast.AttachLimit(stmt, 5))
	require.NoError(t, ast.AttachLimit(stmt, 5))

	require.NotNil(t, stmt.Body.Left.Limit)
	lit := stmt.Body.Left.Limit.Count.(*ast.Literal)
	assert.Equal(t, "5", lit.Value)
}

func TestAttachLimitRejectsNonPositive(t *testing.T) {
	stmt := simpleSelect(col("a"))
	for _, count := range []int{0, -1} {
		err := ast.AttachLimit(stmt, count)
		var se *ast.StructuralError
		require.ErrorAs(t, err, &se)
	}
	assert.Nil(t, stmt.Body.Left.Limit)
}

func TestAttachToEmptyStatement(t *testing.T) {
	err := ast.AttachLimit(&ast.SelectStmt{}, 5)
	require.Error(t, err)
	var se *ast.StructuralError
	require.ErrorAs(t, err, &se)

	err = ast.AttachOrderBy(&ast.SelectStmt{}, ast.PositionalOrderBy(1), false)
	require.Error(t, err)
}

func TestProjectionColumns(t *testing.T) {
	stmt := simpleSelect(
		col("a"),
		ast.SelectItem{Expr: &ast.BinaryExpr{
			Left:  &ast.ColumnRef{Column: "b"},
			Op:    token.PLUS,
			Right: &ast.Literal{Type: ast.LiteralNumber, Value: "1"},
		}},
		ast.SelectItem{Expr: &ast.ColumnRef{Column: "c"}, Alias: "x"},
		ast.SelectItem{Star: true},
		ast.SelectItem{TableStar: "t"},
	)

	cols, err := ast.ProjectionColumns(stmt)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b+1", "c", "*", "t.*"}, cols)
}

func TestProjectionColumnsEmptyStatement(t *testing.T) {
	_, err := ast.ProjectionColumns(&ast.SelectStmt{})
	require.Error(t, err)
	var se *ast.StructuralError
	require.ErrorAs(t, err, &se)
}

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{
			"tight arithmetic",
			&ast.BinaryExpr{
				Left:  &ast.ColumnRef{Column: "b"},
				Op:    token.PLUS,
				Right: &ast.Literal{Type: ast.LiteralNumber, Value: "1"},
			},
			"b+1",
		},
		{
			"spaced comparison",
			&ast.BinaryExpr{
				Left:  &ast.ColumnRef{Column: "a"},
				Op:    token.GE,
				Right: &ast.Literal{Type: ast.LiteralNumber, Value: "2"},
			},
			"a >= 2",
		},
		{
			"qualified column",
			&ast.ColumnRef{Table: "t", Column: "a"},
			"t.a",
		},
		{
			"string literal",
			&ast.Literal{Type: ast.LiteralString, Value: "it's"},
			"'it''s'",
		},
		{
			"function call",
			&ast.FuncCall{Name: "coalesce", Args: []ast.Expr{
				&ast.ColumnRef{Column: "a"},
				&ast.Literal{Type: ast.LiteralNumber, Value: "0"},
			}},
			"coalesce(a, 0)",
		},
		{
			"count star",
			&ast.FuncCall{Name: "count", Star: true},
			"count(*)",
		},
		{
			"paren kept",
			&ast.ParenExpr{Expr: &ast.ColumnRef{Column: "a"}},
			"(a)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ast.ExprString(tt.expr))
		})
	}
}

func TestDump(t *testing.T) {
	stmt := simpleSelect(col("a"))
	stmt.Body.Left.Where = &ast.IsNullExpr{Expr: &ast.ColumnRef{Column: "a"}}

	out := ast.Dump(stmt)
	assert.Contains(t, out, "Select")
	assert.Contains(t, out, "Projection")
	assert.Contains(t, out, "From")
	assert.Contains(t, out, "Where")
}
