package parser

import (
	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Type {
	case token.NUMBER:
		lit := p.cur.Literal
		p.next()
		return &ast.Literal{Type: ast.LiteralNumber, Value: lit}, nil

	case token.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.Literal{Type: ast.LiteralString, Value: lit}, nil

	case token.TRUE:
		p.next()
		return &ast.Literal{Type: ast.LiteralBool, Value: "TRUE"}, nil

	case token.FALSE:
		p.next()
		return &ast.Literal{Type: ast.LiteralBool, Value: "FALSE"}, nil

	case token.NULL:
		p.next()
		return &ast.Literal{Type: ast.LiteralNull, Value: "NULL"}, nil

	case token.CASE:
		return p.parseCase()

	case token.CAST:
		return p.parseCast()

	case token.EXISTS:
		return p.parseExists(false)

	case token.LPAREN:
		p.next()
		if p.cur.Type == token.SELECT || p.cur.Type == token.WITH {
			sel, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if err := p.expect(token.RPAREN); err != nil {
				return nil, err
			}
			return &ast.SubqueryExpr{Select: sel}, nil
		}
		inner, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Expr: inner}, nil

	case token.IDENT:
		return p.parseIdentExpr()

	default:
		return nil, p.unexpected("expression")
	}
}

// parseIdentExpr parses an expression starting with an identifier: a function
// call, a possibly qualified column reference, or a qualified star.
func (p *Parser) parseIdentExpr() (ast.Expr, error) {
	if p.peek.Type == token.LPAREN && !p.cur.Quoted {
		return p.parseFuncCall()
	}

	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != token.DOT {
		return &ast.ColumnRef{Column: first}, nil
	}
	p.next() // consume .

	if p.cur.Type == token.STAR {
		p.next()
		return &ast.StarExpr{Table: first}, nil
	}
	second, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	return &ast.ColumnRef{Table: first, Column: second}, nil
}

func (p *Parser) parseFuncCall() (ast.Expr, error) {
	name := p.cur.Literal
	p.next() // name
	p.next() // (

	fc := &ast.FuncCall{Name: name}

	switch {
	case p.cur.Type == token.RPAREN:
		// no arguments
	case p.cur.Type == token.STAR:
		p.next()
		fc.Star = true
	default:
		fc.Distinct = p.accept(token.DISTINCT)
		for {
			arg, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			fc.Args = append(fc.Args, arg)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}

	if p.cur.Type == token.OVER {
		win, err := p.parseWindowSpec()
		if err != nil {
			return nil, err
		}
		fc.Window = win
	}
	return fc, nil
}

func (p *Parser) parseWindowSpec() (*ast.WindowSpec, error) {
	p.next() // consume OVER
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	win := &ast.WindowSpec{}

	if p.cur.Type == token.PARTITION {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		for {
			e, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			win.PartitionBy = append(win.PartitionBy, e)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}

	if p.cur.Type == token.ORDER {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		items, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		win.OrderBy = &ast.OrderByClause{Items: items}
	}

	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return win, nil
}

func (p *Parser) parseCase() (ast.Expr, error) {
	p.next() // consume CASE
	ce := &ast.CaseExpr{}

	if p.cur.Type != token.WHEN {
		operand, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		ce.Operand = operand
	}

	for p.accept(token.WHEN) {
		cond, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.THEN); err != nil {
			return nil, err
		}
		result, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		ce.Whens = append(ce.Whens, ast.WhenClause{Condition: cond, Result: result})
	}
	if len(ce.Whens) == 0 {
		return nil, p.unexpected("WHEN")
	}

	if p.accept(token.ELSE) {
		elseExpr, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		ce.Else = elseExpr
	}
	if err := p.expect(token.END); err != nil {
		return nil, err
	}
	return ce, nil
}

func (p *Parser) parseCast() (ast.Expr, error) {
	p.next() // consume CAST
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AS); err != nil {
		return nil, err
	}
	typeName, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.CastExpr{Expr: expr, TypeName: typeName}, nil
}

func (p *Parser) parseExists(not bool) (ast.Expr, error) {
	p.next() // consume EXISTS
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	sel, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ExistsExpr{Not: not, Select: sel}, nil
}
