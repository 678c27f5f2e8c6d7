package ast

import (
	"fmt"
	"strconv"
)

// StructuralError reports a tree mutation that is not applicable to the
// statement's shape.
type StructuralError struct {
	Message string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s", e.Message)
}

// trailingCore returns the SELECT core in trailing-clause position: the last
// core of the set-operation chain, where a textual ORDER BY or LIMIT would
// bind. Returns a StructuralError for statements with no body.
func trailingCore(stmt *SelectStmt) (*SelectCore, error) {
	if stmt == nil || stmt.Body == nil {
		return nil, &StructuralError{Message: "statement has no SELECT body"}
	}
	body := stmt.Body
	for body.Right != nil {
		body = body.Right
	}
	if body.Left == nil {
		return nil, &StructuralError{Message: "statement has no SELECT core"}
	}
	return body.Left, nil
}

// AttachOrderBy attaches an ORDER BY clause with the given keys to the
// statement. When the statement already carries an ORDER BY anywhere, the
// call is a no-op unless replace is set, in which case the outermost clause
// is replaced. Items must be non-empty.
func AttachOrderBy(stmt *SelectStmt, items []OrderByItem, replace bool) error {
	if len(items) == 0 {
		return &StructuralError{Message: "ORDER BY requires at least one key"}
	}
	core, err := trailingCore(stmt)
	if err != nil {
		return err
	}
	if _, ok := FindFirst[*OrderByClause](stmt); ok {
		if !replace {
			return nil
		}
		// Replace the statement-level clause in place; ORDER BYs inside
		// window specs deeper in the tree are never touched.
		if core.OrderBy != nil {
			core.OrderBy.Items = items
			return nil
		}
	}
	core.OrderBy = &OrderByClause{Items: items}
	return nil
}

// PositionalOrderBy returns an ORDER BY key list referring to the n-th
// projected column by position (ORDER BY n).
func PositionalOrderBy(position int) []OrderByItem {
	return []OrderByItem{{
		Expr: &Literal{Type: LiteralNumber, Value: strconv.Itoa(position)},
	}}
}

// AttachLimit sets or replaces the statement's LIMIT to count, which must be
// positive. Applying the same count twice yields the same tree as applying it
// once.
func AttachLimit(stmt *SelectStmt, count int) error {
	if count < 1 {
		return &StructuralError{Message: fmt.Sprintf("LIMIT requires a positive count, got %d", count)}
	}
	core, err := trailingCore(stmt)
	if err != nil {
		return err
	}
	lit := &Literal{Type: LiteralNumber, Value: strconv.Itoa(count)}
	if core.Limit != nil {
		core.Limit.Count = lit
		return nil
	}
	core.Limit = &LimitClause{Count: lit}
	return nil
}
