package ast

// Walk traverses the tree rooted at n in depth-first pre-order, calling
// visit for each node. If visit returns false the walk stops.
func Walk(n Node, visit func(Node) bool) {
	walk(n, visit)
}

// walk reports whether traversal should continue.
func walk(n Node, visit func(Node) bool) bool {
	if n == nil || isNilNode(n) {
		return true
	}
	if !visit(n) {
		return false
	}

	switch v := n.(type) {
	case *SelectStmt:
		if v.With != nil && !walk(v.With, visit) {
			return false
		}
		if v.Body != nil && !walk(v.Body, visit) {
			return false
		}

	case *WithClause:
		for _, cte := range v.CTEs {
			if !walk(cte, visit) {
				return false
			}
		}

	case *CTE:
		if v.Select != nil && !walk(v.Select, visit) {
			return false
		}

	case *SelectBody:
		if v.Left != nil && !walk(v.Left, visit) {
			return false
		}
		if v.Right != nil && !walk(v.Right, visit) {
			return false
		}

	case *SelectCore:
		for i := range v.Columns {
			if v.Columns[i].Expr != nil && !walk(v.Columns[i].Expr, visit) {
				return false
			}
		}
		if v.From != nil && !walk(v.From, visit) {
			return false
		}
		for _, e := range []Expr{v.Where, v.Having, v.Qualify, v.Offset} {
			if e != nil && !walk(e, visit) {
				return false
			}
		}
		for _, e := range v.GroupBy {
			if !walk(e, visit) {
				return false
			}
		}
		if v.OrderBy != nil && !walk(v.OrderBy, visit) {
			return false
		}
		if v.Limit != nil && !walk(v.Limit, visit) {
			return false
		}

	case *OrderByClause:
		for i := range v.Items {
			if v.Items[i].Expr != nil && !walk(v.Items[i].Expr, visit) {
				return false
			}
		}

	case *LimitClause:
		if v.Count != nil && !walk(v.Count, visit) {
			return false
		}

	case *FromClause:
		if v.Source != nil && !walk(v.Source, visit) {
			return false
		}
		for _, j := range v.Joins {
			if !walk(j, visit) {
				return false
			}
		}

	case *Join:
		if v.Right != nil && !walk(v.Right, visit) {
			return false
		}
		if v.Condition != nil && !walk(v.Condition, visit) {
			return false
		}

	case *DerivedTable:
		if v.Select != nil && !walk(v.Select, visit) {
			return false
		}

	case *LateralTable:
		if v.Select != nil && !walk(v.Select, visit) {
			return false
		}

	case *BinaryExpr:
		if !walk(v.Left, visit) || !walk(v.Right, visit) {
			return false
		}

	case *UnaryExpr:
		if !walk(v.Expr, visit) {
			return false
		}

	case *FuncCall:
		for _, a := range v.Args {
			if !walk(a, visit) {
				return false
			}
		}
		if v.Window != nil && !walk(v.Window, visit) {
			return false
		}

	case *WindowSpec:
		for _, e := range v.PartitionBy {
			if !walk(e, visit) {
				return false
			}
		}
		if v.OrderBy != nil && !walk(v.OrderBy, visit) {
			return false
		}

	case *CaseExpr:
		if v.Operand != nil && !walk(v.Operand, visit) {
			return false
		}
		for i := range v.Whens {
			if !walk(v.Whens[i].Condition, visit) || !walk(v.Whens[i].Result, visit) {
				return false
			}
		}
		if v.Else != nil && !walk(v.Else, visit) {
			return false
		}

	case *CastExpr:
		if !walk(v.Expr, visit) {
			return false
		}

	case *InExpr:
		if !walk(v.Expr, visit) {
			return false
		}
		for _, e := range v.Values {
			if !walk(e, visit) {
				return false
			}
		}
		if v.Query != nil && !walk(v.Query, visit) {
			return false
		}

	case *BetweenExpr:
		if !walk(v.Expr, visit) || !walk(v.Low, visit) || !walk(v.High, visit) {
			return false
		}

	case *IsNullExpr:
		if !walk(v.Expr, visit) {
			return false
		}

	case *IsBoolExpr:
		if !walk(v.Expr, visit) {
			return false
		}

	case *LikeExpr:
		if !walk(v.Expr, visit) || !walk(v.Pattern, visit) {
			return false
		}

	case *ParenExpr:
		if !walk(v.Expr, visit) {
			return false
		}

	case *SubqueryExpr:
		if v.Select != nil && !walk(v.Select, visit) {
			return false
		}

	case *ExistsExpr:
		if v.Select != nil && !walk(v.Select, visit) {
			return false
		}
	}

	return true
}

// FindFirst returns the first node of type T in depth-first pre-order,
// or the zero value and false when no node matches.
func FindFirst[T Node](root Node) (T, bool) {
	var found T
	ok := false
	Walk(root, func(n Node) bool {
		if t, match := n.(T); match {
			found = t
			ok = true
			return false
		}
		return true
	})
	return found, ok
}

// isNilNode guards against typed-nil interface values reaching visitors.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *SelectStmt:
		return v == nil
	case *SelectBody:
		return v == nil
	case *SelectCore:
		return v == nil
	default:
		return false
	}
}
