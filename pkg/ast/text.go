package ast

import (
	"strings"

	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// ExprString returns a dialect-neutral textual form of an expression, close
// to how it was written in the source. Arithmetic and concatenation bind
// tightly and are printed without surrounding spaces; keyword operators and
// comparisons keep their spaces.
func ExprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e)
	return b.String()
}

func tightOp(op token.Type) bool {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENTOP, token.DPIPE:
		return true
	}
	return false
}

func writeExpr(b *strings.Builder, e Expr) {
	switch v := e.(type) {
	case nil:

	case *ColumnRef:
		if v.Table != "" {
			b.WriteString(v.Table)
			b.WriteByte('.')
		}
		b.WriteString(v.Column)

	case *Literal:
		switch v.Type {
		case LiteralString:
			b.WriteByte('\'')
			b.WriteString(strings.ReplaceAll(v.Value, "'", "''"))
			b.WriteByte('\'')
		case LiteralBool:
			b.WriteString(strings.ToUpper(v.Value))
		case LiteralNull:
			b.WriteString("NULL")
		default:
			b.WriteString(v.Value)
		}

	case *BinaryExpr:
		writeExpr(b, v.Left)
		if tightOp(v.Op) {
			b.WriteString(v.Op.String())
		} else {
			b.WriteByte(' ')
			b.WriteString(v.Op.String())
			b.WriteByte(' ')
		}
		writeExpr(b, v.Right)

	case *UnaryExpr:
		b.WriteString(v.Op.String())
		if v.Op == token.NOT {
			b.WriteByte(' ')
		}
		writeExpr(b, v.Expr)

	case *FuncCall:
		b.WriteString(v.Name)
		b.WriteByte('(')
		if v.Star {
			b.WriteByte('*')
		} else {
			if v.Distinct {
				b.WriteString("DISTINCT ")
			}
			for i, a := range v.Args {
				if i > 0 {
					b.WriteString(", ")
				}
				writeExpr(b, a)
			}
		}
		b.WriteByte(')')

	case *CaseExpr:
		b.WriteString("CASE")
		if v.Operand != nil {
			b.WriteByte(' ')
			writeExpr(b, v.Operand)
		}
		for i := range v.Whens {
			b.WriteString(" WHEN ")
			writeExpr(b, v.Whens[i].Condition)
			b.WriteString(" THEN ")
			writeExpr(b, v.Whens[i].Result)
		}
		if v.Else != nil {
			b.WriteString(" ELSE ")
			writeExpr(b, v.Else)
		}
		b.WriteString(" END")

	case *CastExpr:
		if v.Operator {
			writeExpr(b, v.Expr)
			b.WriteString("::")
			b.WriteString(v.TypeName)
		} else {
			b.WriteString("CAST(")
			writeExpr(b, v.Expr)
			b.WriteString(" AS ")
			b.WriteString(v.TypeName)
			b.WriteByte(')')
		}

	case *InExpr:
		writeExpr(b, v.Expr)
		if v.Not {
			b.WriteString(" NOT")
		}
		b.WriteString(" IN (")
		for i, val := range v.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeExpr(b, val)
		}
		if v.Query != nil {
			b.WriteString("...")
		}
		b.WriteByte(')')

	case *BetweenExpr:
		writeExpr(b, v.Expr)
		if v.Not {
			b.WriteString(" NOT")
		}
		b.WriteString(" BETWEEN ")
		writeExpr(b, v.Low)
		b.WriteString(" AND ")
		writeExpr(b, v.High)

	case *IsNullExpr:
		writeExpr(b, v.Expr)
		if v.Not {
			b.WriteString(" IS NOT NULL")
		} else {
			b.WriteString(" IS NULL")
		}

	case *IsBoolExpr:
		writeExpr(b, v.Expr)
		b.WriteString(" IS ")
		if v.Not {
			b.WriteString("NOT ")
		}
		if v.Value {
			b.WriteString("TRUE")
		} else {
			b.WriteString("FALSE")
		}

	case *LikeExpr:
		writeExpr(b, v.Expr)
		if v.Not {
			b.WriteString(" NOT")
		}
		b.WriteByte(' ')
		b.WriteString(v.Op.String())
		b.WriteByte(' ')
		writeExpr(b, v.Pattern)

	case *ParenExpr:
		b.WriteByte('(')
		writeExpr(b, v.Expr)
		b.WriteByte(')')

	case *StarExpr:
		if v.Table != "" {
			b.WriteString(v.Table)
			b.WriteByte('.')
		}
		b.WriteByte('*')

	case *SubqueryExpr:
		b.WriteString("(...)")

	case *ExistsExpr:
		if v.Not {
			b.WriteString("NOT ")
		}
		b.WriteString("EXISTS (...)")
	}
}
