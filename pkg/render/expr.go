package render

import (
	"fmt"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

func (p *printer) expr(e ast.Expr) error {
	switch v := e.(type) {
	case *ast.ColumnRef:
		if v.Table != "" {
			p.ident(v.Table)
			p.write(".")
		}
		p.ident(v.Column)
		return nil

	case *ast.Literal:
		return p.literal(v)

	case *ast.BinaryExpr:
		if err := p.expr(v.Left); err != nil {
			return err
		}
		p.space()
		p.write(v.Op.String())
		p.space()
		return p.expr(v.Right)

	case *ast.UnaryExpr:
		p.write(v.Op.String())
		if v.Op == token.NOT {
			p.space()
		}
		return p.expr(v.Expr)

	case *ast.FuncCall:
		return p.funcCall(v)

	case *ast.CaseExpr:
		return p.caseExpr(v)

	case *ast.CastExpr:
		return p.castExpr(v)

	case *ast.InExpr:
		return p.inExpr(v)

	case *ast.BetweenExpr:
		if err := p.expr(v.Expr); err != nil {
			return err
		}
		if v.Not {
			p.write(" NOT")
		}
		p.write(" BETWEEN ")
		if err := p.expr(v.Low); err != nil {
			return err
		}
		p.write(" AND ")
		return p.expr(v.High)

	case *ast.IsNullExpr:
		if err := p.expr(v.Expr); err != nil {
			return err
		}
		if v.Not {
			p.write(" IS NOT NULL")
		} else {
			p.write(" IS NULL")
		}
		return nil

	case *ast.IsBoolExpr:
		if err := p.expr(v.Expr); err != nil {
			return err
		}
		p.write(" IS ")
		if v.Not {
			p.write("NOT ")
		}
		if v.Value {
			p.write("TRUE")
		} else {
			p.write("FALSE")
		}
		return nil

	case *ast.LikeExpr:
		return p.likeExpr(v)

	case *ast.ParenExpr:
		p.write("(")
		if err := p.expr(v.Expr); err != nil {
			return err
		}
		p.write(")")
		return nil

	case *ast.StarExpr:
		if v.Table != "" {
			p.ident(v.Table)
			p.write(".")
		}
		p.write("*")
		return nil

	case *ast.SubqueryExpr:
		p.write("(")
		if err := p.stmt(v.Select); err != nil {
			return err
		}
		p.write(")")
		return nil

	case *ast.ExistsExpr:
		if v.Not {
			p.write("NOT ")
		}
		p.write("EXISTS (")
		if err := p.stmt(v.Select); err != nil {
			return err
		}
		p.write(")")
		return nil

	default:
		return &UnsupportedError{Message: fmt.Sprintf("expression %T", e)}
	}
}

func (p *printer) literal(lit *ast.Literal) error {
	switch lit.Type {
	case ast.LiteralString:
		p.write("'")
		p.write(p.d.EscapeString(lit.Value))
		p.write("'")
	case ast.LiteralNull:
		p.write("NULL")
	case ast.LiteralBool:
		p.write(lit.Value)
	default:
		p.write(lit.Value)
	}
	return nil
}

func (p *printer) funcCall(fc *ast.FuncCall) error {
	p.write(fc.Name)
	p.write("(")
	switch {
	case fc.Star:
		p.write("*")
	default:
		if fc.Distinct {
			p.write("DISTINCT ")
		}
		for i, arg := range fc.Args {
			if i > 0 {
				p.write(", ")
			}
			if err := p.expr(arg); err != nil {
				return err
			}
		}
	}
	p.write(")")

	if fc.Window == nil {
		return nil
	}
	p.write(" OVER (")
	if len(fc.Window.PartitionBy) > 0 {
		p.write("PARTITION BY ")
		for i, e := range fc.Window.PartitionBy {
			if i > 0 {
				p.write(", ")
			}
			if err := p.expr(e); err != nil {
				return err
			}
		}
		if fc.Window.OrderBy != nil {
			p.space()
		}
	}
	if fc.Window.OrderBy != nil {
		p.write("ORDER BY ")
		if err := p.orderItems(fc.Window.OrderBy.Items); err != nil {
			return err
		}
	}
	p.write(")")
	return nil
}

func (p *printer) caseExpr(ce *ast.CaseExpr) error {
	p.write("CASE")
	if ce.Operand != nil {
		p.space()
		if err := p.expr(ce.Operand); err != nil {
			return err
		}
	}
	for i := range ce.Whens {
		p.write(" WHEN ")
		if err := p.expr(ce.Whens[i].Condition); err != nil {
			return err
		}
		p.write(" THEN ")
		if err := p.expr(ce.Whens[i].Result); err != nil {
			return err
		}
	}
	if ce.Else != nil {
		p.write(" ELSE ")
		if err := p.expr(ce.Else); err != nil {
			return err
		}
	}
	p.write(" END")
	return nil
}

// castExpr renders the :: form only when the target dialect has the
// operator; the functional CAST form is the lossless fallback.
func (p *printer) castExpr(ce *ast.CastExpr) error {
	if ce.Operator && p.d.SupportsCastOperator {
		if err := p.expr(ce.Expr); err != nil {
			return err
		}
		p.write("::")
		p.write(ce.TypeName)
		return nil
	}
	p.write("CAST(")
	if err := p.expr(ce.Expr); err != nil {
		return err
	}
	p.write(" AS ")
	p.write(ce.TypeName)
	p.write(")")
	return nil
}

func (p *printer) inExpr(in *ast.InExpr) error {
	if err := p.expr(in.Expr); err != nil {
		return err
	}
	if in.Not {
		p.write(" NOT")
	}
	p.write(" IN (")
	if in.Query != nil {
		if err := p.stmt(in.Query); err != nil {
			return err
		}
	} else {
		for i, v := range in.Values {
			if i > 0 {
				p.write(", ")
			}
			if err := p.expr(v); err != nil {
				return err
			}
		}
	}
	p.write(")")
	return nil
}

func (p *printer) likeExpr(le *ast.LikeExpr) error {
	if le.Op == token.ILIKE && !p.d.SupportsIlike {
		return &UnsupportedError{
			Message: fmt.Sprintf("ILIKE is not supported in %s dialect", p.d.Name),
		}
	}
	if err := p.expr(le.Expr); err != nil {
		return err
	}
	if le.Not {
		p.write(" NOT")
	}
	p.space()
	p.write(le.Op.String())
	p.space()
	return p.expr(le.Pattern)
}
