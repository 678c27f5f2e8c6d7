package ast

import (
	"fmt"
	"strings"
)

// Dump returns an indented debug representation of the tree. The output is
// stable for a given tree and meant for humans and tests, not for parsing.
func Dump(stmt *SelectStmt) string {
	d := &dumper{}
	d.stmt(stmt)
	return strings.TrimRight(d.b.String(), "\n")
}

type dumper struct {
	b     strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...any) {
	d.b.WriteString(strings.Repeat("  ", d.depth))
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) nested(fn func()) {
	d.depth++
	fn()
	d.depth--
}

func (d *dumper) stmt(stmt *SelectStmt) {
	if stmt == nil {
		d.line("(nil)")
		return
	}
	d.line("Select")
	d.nested(func() {
		if stmt.With != nil {
			label := "With"
			if stmt.With.Recursive {
				label = "With recursive"
			}
			d.line("%s", label)
			d.nested(func() {
				for _, cte := range stmt.With.CTEs {
					d.line("Cte %s", cte.Name)
					d.nested(func() { d.stmt(cte.Select) })
				}
			})
		}
		d.body(stmt.Body)
	})
}

func (d *dumper) body(body *SelectBody) {
	for body != nil {
		d.core(body.Left)
		if body.Op != SetOpNone {
			d.line("SetOp %s", body.Op)
		}
		body = body.Right
	}
}

func (d *dumper) core(core *SelectCore) {
	if core == nil {
		return
	}
	if core.Distinct {
		d.line("Projection distinct")
	} else {
		d.line("Projection")
	}
	d.nested(func() {
		for _, item := range core.Columns {
			switch {
			case item.Star:
				d.line("Star")
			case item.TableStar != "":
				d.line("Star %s.*", item.TableStar)
			case item.Alias != "":
				d.line("Expr %s AS %s", ExprString(item.Expr), item.Alias)
			default:
				d.line("Expr %s", ExprString(item.Expr))
			}
		}
	})

	if core.From != nil {
		d.line("From")
		d.nested(func() {
			d.tableRef(core.From.Source)
			for _, j := range core.From.Joins {
				if j.Type == JoinComma {
					d.line("Join comma")
				} else {
					d.line("Join %s", j.Type)
				}
				d.nested(func() {
					d.tableRef(j.Right)
					if j.Condition != nil {
						d.line("On %s", ExprString(j.Condition))
					}
					if len(j.Using) > 0 {
						d.line("Using (%s)", strings.Join(j.Using, ", "))
					}
				})
			}
		})
	}

	if core.Where != nil {
		d.line("Where %s", ExprString(core.Where))
	}
	if len(core.GroupBy) > 0 {
		keys := make([]string, len(core.GroupBy))
		for i, e := range core.GroupBy {
			keys[i] = ExprString(e)
		}
		d.line("GroupBy %s", strings.Join(keys, ", "))
	}
	if core.Having != nil {
		d.line("Having %s", ExprString(core.Having))
	}
	if core.Qualify != nil {
		d.line("Qualify %s", ExprString(core.Qualify))
	}
	if core.OrderBy != nil {
		keys := make([]string, len(core.OrderBy.Items))
		for i, item := range core.OrderBy.Items {
			key := ExprString(item.Expr)
			if item.Desc {
				key += " DESC"
			}
			keys[i] = key
		}
		d.line("OrderBy %s", strings.Join(keys, ", "))
	}
	if core.Limit != nil {
		d.line("Limit %s", ExprString(core.Limit.Count))
	}
	if core.Offset != nil {
		d.line("Offset %s", ExprString(core.Offset))
	}
}

func (d *dumper) tableRef(ref TableRef) {
	switch t := ref.(type) {
	case *TableName:
		name := t.Name
		if t.Schema != "" {
			name = t.Schema + "." + name
		}
		if t.Catalog != "" {
			name = t.Catalog + "." + name
		}
		if t.Alias != "" {
			d.line("Table %s AS %s", name, t.Alias)
		} else {
			d.line("Table %s", name)
		}
	case *DerivedTable:
		d.line("Subquery AS %s", t.Alias)
		d.nested(func() { d.stmt(t.Select) })
	case *LateralTable:
		d.line("Lateral AS %s", t.Alias)
		d.nested(func() { d.stmt(t.Select) })
	}
}
