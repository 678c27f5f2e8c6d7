package ast

// ProjectionColumns returns the textual form of each top-level projected
// expression of the outermost SELECT core, in source order. It never
// descends into subqueries. Aliased items report the underlying expression;
// wildcards render as "*" (or "t.*"). Returns a StructuralError for
// statements without a SELECT core.
func ProjectionColumns(stmt *SelectStmt) ([]string, error) {
	if stmt == nil || stmt.Body == nil || stmt.Body.Left == nil {
		return nil, &StructuralError{Message: "statement has no SELECT core"}
	}

	core := stmt.Body.Left
	columns := make([]string, 0, len(core.Columns))
	for _, item := range core.Columns {
		switch {
		case item.Star:
			columns = append(columns, "*")
		case item.TableStar != "":
			columns = append(columns, item.TableStar+".*")
		default:
			columns = append(columns, ExprString(item.Expr))
		}
	}
	return columns, nil
}
