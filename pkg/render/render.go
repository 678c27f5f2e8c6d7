// Package render turns a syntax tree back into SQL text for a target
// dialect. Output is a single line with canonical spacing and uppercase
// keywords; identifiers are quoted only when the target dialect requires it,
// and the row-limit clause is spelled in the target's style.
package render

import (
	"fmt"
	"strings"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
)

// UnsupportedError reports a tree construct the target dialect cannot express.
type UnsupportedError struct {
	Message string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Message)
}

// SQL renders a statement as SQL text for the given dialect.
func SQL(stmt *ast.SelectStmt, d *dialect.Dialect) (string, error) {
	if stmt == nil || stmt.Body == nil {
		return "", &UnsupportedError{Message: "statement has no SELECT body"}
	}
	p := &printer{d: d}
	if err := p.stmt(stmt); err != nil {
		return "", err
	}
	return p.b.String(), nil
}

type printer struct {
	d *dialect.Dialect
	b strings.Builder
}

func (p *printer) write(s string)   { p.b.WriteString(s) }
func (p *printer) space()           { p.b.WriteByte(' ') }
func (p *printer) keyword(s string) { p.b.WriteString(s) }

func (p *printer) ident(name string) {
	p.write(p.d.QuoteIdentifierIfNeeded(name))
}

func (p *printer) stmt(stmt *ast.SelectStmt) error {
	if stmt.With != nil {
		if err := p.withClause(stmt.With); err != nil {
			return err
		}
		p.space()
	}
	return p.body(stmt.Body)
}

func (p *printer) withClause(with *ast.WithClause) error {
	p.keyword("WITH")
	if with.Recursive {
		p.write(" RECURSIVE")
	}
	p.space()
	for i, cte := range with.CTEs {
		if i > 0 {
			p.write(", ")
		}
		p.ident(cte.Name)
		p.write(" AS (")
		if err := p.stmt(cte.Select); err != nil {
			return err
		}
		p.write(")")
	}
	return nil
}

func (p *printer) body(body *ast.SelectBody) error {
	if err := p.core(body.Left); err != nil {
		return err
	}
	if body.Op == ast.SetOpNone || body.Right == nil {
		return nil
	}
	p.space()
	p.keyword(string(body.Op))
	p.space()
	return p.body(body.Right)
}

func (p *printer) core(core *ast.SelectCore) error {
	if core == nil {
		return &UnsupportedError{Message: "statement has no SELECT core"}
	}
	p.keyword("SELECT")
	if core.Distinct {
		p.write(" DISTINCT")
	}

	if core.Limit != nil && p.d.Limit == dialect.LimitTop {
		p.write(" TOP ")
		if err := p.expr(core.Limit.Count); err != nil {
			return err
		}
	}

	for i, item := range core.Columns {
		if i > 0 {
			p.write(",")
		}
		p.space()
		if err := p.selectItem(item); err != nil {
			return err
		}
	}

	if core.From != nil {
		p.write(" FROM ")
		if err := p.from(core.From); err != nil {
			return err
		}
	}

	if core.Where != nil {
		p.write(" WHERE ")
		if err := p.expr(core.Where); err != nil {
			return err
		}
	}

	if len(core.GroupBy) > 0 {
		p.write(" GROUP BY ")
		for i, e := range core.GroupBy {
			if i > 0 {
				p.write(", ")
			}
			if err := p.expr(e); err != nil {
				return err
			}
		}
	}

	if core.Having != nil {
		p.write(" HAVING ")
		if err := p.expr(core.Having); err != nil {
			return err
		}
	}

	if core.Qualify != nil {
		if !p.d.SupportsQualify {
			return &UnsupportedError{
				Message: fmt.Sprintf("QUALIFY is not supported in %s dialect", p.d.Name),
			}
		}
		p.write(" QUALIFY ")
		if err := p.expr(core.Qualify); err != nil {
			return err
		}
	}

	if core.OrderBy != nil {
		p.write(" ORDER BY ")
		if err := p.orderItems(core.OrderBy.Items); err != nil {
			return err
		}
	}

	return p.limit(core)
}

// limit emits the row-limit tail in the target dialect's style. Under the
// TOP style the count has already been emitted after SELECT.
func (p *printer) limit(core *ast.SelectCore) error {
	switch p.d.Limit {
	case dialect.LimitTop:
		if core.Offset != nil {
			return &UnsupportedError{
				Message: fmt.Sprintf("OFFSET is not supported in %s dialect", p.d.Name),
			}
		}
		return nil

	case dialect.LimitFetch:
		if core.Offset != nil {
			p.write(" OFFSET ")
			if err := p.expr(core.Offset); err != nil {
				return err
			}
			p.write(" ROWS")
		}
		if core.Limit != nil {
			p.write(" FETCH FIRST ")
			if err := p.expr(core.Limit.Count); err != nil {
				return err
			}
			p.write(" ROWS ONLY")
		}
		return nil

	default:
		if core.Limit != nil {
			p.write(" LIMIT ")
			if err := p.expr(core.Limit.Count); err != nil {
				return err
			}
		}
		if core.Offset != nil {
			p.write(" OFFSET ")
			if err := p.expr(core.Offset); err != nil {
				return err
			}
		}
		return nil
	}
}

func (p *printer) selectItem(item ast.SelectItem) error {
	switch {
	case item.Star:
		p.write("*")
		return nil
	case item.TableStar != "":
		p.ident(item.TableStar)
		p.write(".*")
		return nil
	}
	if err := p.expr(item.Expr); err != nil {
		return err
	}
	if item.Alias != "" {
		p.write(" AS ")
		p.ident(item.Alias)
	}
	return nil
}

func (p *printer) orderItems(items []ast.OrderByItem) error {
	for i, item := range items {
		if i > 0 {
			p.write(", ")
		}
		if err := p.expr(item.Expr); err != nil {
			return err
		}
		if item.Desc {
			p.write(" DESC")
		}
		if item.NullsFirst != nil {
			if *item.NullsFirst {
				p.write(" NULLS FIRST")
			} else {
				p.write(" NULLS LAST")
			}
		}
	}
	return nil
}

func (p *printer) from(from *ast.FromClause) error {
	if err := p.tableRef(from.Source); err != nil {
		return err
	}
	for _, join := range from.Joins {
		if err := p.join(join); err != nil {
			return err
		}
	}
	return nil
}

func (p *printer) join(join *ast.Join) error {
	switch join.Type {
	case ast.JoinComma:
		p.write(", ")
	case ast.JoinCross:
		p.write(" CROSS JOIN ")
	case ast.JoinInner:
		p.write(" JOIN ")
	default:
		p.space()
		p.keyword(string(join.Type))
		p.write(" JOIN ")
	}
	if err := p.tableRef(join.Right); err != nil {
		return err
	}
	switch {
	case join.Condition != nil:
		p.write(" ON ")
		return p.expr(join.Condition)
	case len(join.Using) > 0:
		p.write(" USING (")
		for i, col := range join.Using {
			if i > 0 {
				p.write(", ")
			}
			p.ident(col)
		}
		p.write(")")
	}
	return nil
}

func (p *printer) tableRef(ref ast.TableRef) error {
	switch v := ref.(type) {
	case *ast.TableName:
		if v.Catalog != "" {
			p.ident(v.Catalog)
			p.write(".")
		}
		if v.Schema != "" {
			p.ident(v.Schema)
			p.write(".")
		}
		p.ident(v.Name)
		if v.Alias != "" {
			p.write(" AS ")
			p.ident(v.Alias)
		}
		return nil

	case *ast.DerivedTable:
		p.write("(")
		if err := p.stmt(v.Select); err != nil {
			return err
		}
		p.write(")")
		if v.Alias != "" {
			p.write(" AS ")
			p.ident(v.Alias)
		}
		return nil

	case *ast.LateralTable:
		p.write("LATERAL (")
		if err := p.stmt(v.Select); err != nil {
			return err
		}
		p.write(")")
		if v.Alias != "" {
			p.write(" AS ")
			p.ident(v.Alias)
		}
		return nil

	default:
		return &UnsupportedError{Message: fmt.Sprintf("table reference %T", ref)}
	}
}
