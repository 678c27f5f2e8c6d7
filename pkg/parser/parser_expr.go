package parser

import (
	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// Expression precedence levels, lowest first.
const (
	precLowest = iota
	precOr
	precAnd
	precNot
	precComparison // = != < > <= >= IS IN BETWEEN LIKE ILIKE
	precAddition   // + - ||
	precMultiply   // * / %
	precUnary      // unary - +
	precPostfix    // ::
)

// precedence returns the binding power of the current token as an infix
// operator, or precLowest when it is not one.
func (p *Parser) precedence() int {
	switch p.cur.Type {
	case token.OR:
		return precOr
	case token.AND:
		return precAnd
	case token.EQ, token.NE, token.LT, token.GT, token.LE, token.GE,
		token.IS, token.IN, token.BETWEEN, token.LIKE, token.ILIKE:
		return precComparison
	case token.NOT:
		// NOT in infix position introduces NOT IN / NOT BETWEEN / NOT LIKE.
		switch p.peek.Type {
		case token.IN, token.BETWEEN, token.LIKE, token.ILIKE:
			return precComparison
		}
		return precLowest
	case token.PLUS, token.MINUS, token.DPIPE:
		return precAddition
	case token.STAR, token.SLASH, token.PERCENTOP:
		return precMultiply
	case token.DCOLON:
		return precPostfix
	default:
		return precLowest
	}
}

// parseExpr parses an expression with precedence climbing: it keeps folding
// infix operators while they bind tighter than minPrec.
func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec := p.precedence()
		if prec <= minPrec {
			return left, nil
		}
		left, err = p.parseInfix(left, prec)
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.cur.Type {
	case token.NOT:
		if p.peek.Type == token.EXISTS {
			p.next()
			return p.parseExists(true)
		}
		p.next()
		expr, err := p.parseExpr(precNot)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: token.NOT, Expr: expr}, nil
	case token.MINUS, token.PLUS:
		op := p.cur.Type
		p.next()
		expr, err := p.parseExpr(precUnary)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Expr: expr}, nil
	default:
		return p.parsePrimary()
	}
}

func (p *Parser) parseInfix(left ast.Expr, prec int) (ast.Expr, error) {
	switch p.cur.Type {
	case token.IS:
		return p.parseIs(left)
	case token.IN:
		return p.parseIn(left, false)
	case token.BETWEEN:
		return p.parseBetween(left, false)
	case token.LIKE, token.ILIKE:
		return p.parseLike(left, false)
	case token.NOT:
		p.next()
		switch p.cur.Type {
		case token.IN:
			return p.parseIn(left, true)
		case token.BETWEEN:
			return p.parseBetween(left, true)
		case token.LIKE, token.ILIKE:
			return p.parseLike(left, true)
		default:
			return nil, p.unexpected("IN, BETWEEN or LIKE")
		}
	case token.DCOLON:
		return p.parseCastOperator(left)
	default:
		op := p.cur.Type
		p.next()
		right, err := p.parseExpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
	}
}

func (p *Parser) parseIs(left ast.Expr) (ast.Expr, error) {
	p.next() // consume IS
	not := p.accept(token.NOT)
	switch {
	case p.accept(token.NULL):
		return &ast.IsNullExpr{Expr: left, Not: not}, nil
	case p.accept(token.TRUE):
		return &ast.IsBoolExpr{Expr: left, Not: not, Value: true}, nil
	case p.accept(token.FALSE):
		return &ast.IsBoolExpr{Expr: left, Not: not, Value: false}, nil
	default:
		return nil, p.unexpected("NULL, TRUE or FALSE")
	}
}

func (p *Parser) parseIn(left ast.Expr, not bool) (ast.Expr, error) {
	p.next() // consume IN
	if err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	in := &ast.InExpr{Expr: left, Not: not}

	if p.cur.Type == token.SELECT || p.cur.Type == token.WITH {
		sub, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		in.Query = sub
	} else {
		for {
			v, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			in.Values = append(in.Values, v)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}
	if err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return in, nil
}

func (p *Parser) parseBetween(left ast.Expr, not bool) (ast.Expr, error) {
	p.next() // consume BETWEEN
	// bounds bind above AND so the range's own AND is not folded
	low, err := p.parseExpr(precComparison)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.AND); err != nil {
		return nil, err
	}
	high, err := p.parseExpr(precComparison)
	if err != nil {
		return nil, err
	}
	return &ast.BetweenExpr{Expr: left, Not: not, Low: low, High: high}, nil
}

func (p *Parser) parseLike(left ast.Expr, not bool) (ast.Expr, error) {
	op := p.cur.Type
	p.next()
	pattern, err := p.parseExpr(precComparison)
	if err != nil {
		return nil, err
	}
	return &ast.LikeExpr{Expr: left, Not: not, Pattern: pattern, Op: op}, nil
}

// parseCastOperator parses the :: postfix cast. The token only exists under
// dialects that support the operator.
func (p *Parser) parseCastOperator(left ast.Expr) (ast.Expr, error) {
	p.next() // consume ::
	typeName, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	return &ast.CastExpr{Expr: left, TypeName: typeName, Operator: true}, nil
}

// parseTypeName parses a type name: an identifier with an optional
// parenthesized precision list, e.g. varchar(10) or numeric(10, 2).
func (p *Parser) parseTypeName() (string, error) {
	if p.cur.Type != token.IDENT {
		return "", p.unexpected("type name")
	}
	name := p.cur.Literal
	p.next()

	if p.cur.Type != token.LPAREN {
		return name, nil
	}
	name += "("
	p.next()
	for {
		if p.cur.Type != token.NUMBER {
			return "", p.unexpected("precision")
		}
		name += p.cur.Literal
		p.next()
		if !p.accept(token.COMMA) {
			break
		}
		name += ", "
	}
	if err := p.expect(token.RPAREN); err != nil {
		return "", err
	}
	return name + ")", nil
}
