package parser

import (
	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

func (p *Parser) parseFromClause() (*ast.FromClause, error) {
	source, err := p.parseTableRef()
	if err != nil {
		return nil, err
	}
	from := &ast.FromClause{Source: source}

	for {
		join, ok, err := p.parseJoin()
		if err != nil {
			return nil, err
		}
		if !ok {
			return from, nil
		}
		from.Joins = append(from.Joins, join)
	}
}

// parseJoin parses one join step if the current token starts one.
func (p *Parser) parseJoin() (*ast.Join, bool, error) {
	var jt ast.JoinType
	withCondition := true

	switch p.cur.Type {
	case token.COMMA:
		p.next()
		jt = ast.JoinComma
		withCondition = false
	case token.CROSS:
		p.next()
		if err := p.expect(token.JOIN); err != nil {
			return nil, false, err
		}
		jt = ast.JoinCross
		withCondition = false
	case token.JOIN:
		p.next()
		jt = ast.JoinInner
	case token.INNER:
		p.next()
		if err := p.expect(token.JOIN); err != nil {
			return nil, false, err
		}
		jt = ast.JoinInner
	case token.LEFT, token.RIGHT, token.FULL:
		switch p.cur.Type {
		case token.LEFT:
			jt = ast.JoinLeft
		case token.RIGHT:
			jt = ast.JoinRight
		default:
			jt = ast.JoinFull
		}
		p.next()
		p.accept(token.OUTER)
		if err := p.expect(token.JOIN); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, nil
	}

	right, err := p.parseTableRef()
	if err != nil {
		return nil, false, err
	}
	join := &ast.Join{Type: jt, Right: right}

	if !withCondition {
		return join, true, nil
	}

	switch {
	case p.accept(token.ON):
		join.Condition, err = p.parseExpr(precLowest)
		if err != nil {
			return nil, false, err
		}
	case p.accept(token.USING):
		if err := p.expect(token.LPAREN); err != nil {
			return nil, false, err
		}
		for {
			col, err := p.parseIdent()
			if err != nil {
				return nil, false, err
			}
			join.Using = append(join.Using, col)
			if !p.accept(token.COMMA) {
				break
			}
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, false, err
		}
	default:
		return nil, false, p.unexpected("ON or USING")
	}
	return join, true, nil
}

func (p *Parser) parseTableRef() (ast.TableRef, error) {
	switch p.cur.Type {
	case token.LATERAL:
		p.next()
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
		alias, err := p.parseTableAlias()
		if err != nil {
			return nil, err
		}
		return &ast.LateralTable{Select: sel, Alias: alias}, nil

	case token.LPAREN:
		p.next()
		sel, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		alias, err := p.parseTableAlias()
		if err != nil {
			return nil, err
		}
		return &ast.DerivedTable{Select: sel, Alias: alias}, nil

	case token.IDENT:
		return p.parseTableName()

	default:
		return nil, p.unexpected("table reference")
	}
}

// parseTableName parses a table name of up to three dot-separated parts,
// followed by an optional alias.
func (p *Parser) parseTableName() (*ast.TableName, error) {
	var parts []string
	for {
		part, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
		if len(parts) == 3 || p.cur.Type != token.DOT {
			break
		}
		p.next()
	}

	t := &ast.TableName{}
	switch len(parts) {
	case 1:
		t.Name = parts[0]
	case 2:
		t.Schema, t.Name = parts[0], parts[1]
	case 3:
		t.Catalog, t.Schema, t.Name = parts[0], parts[1], parts[2]
	}

	alias, err := p.parseTableAlias()
	if err != nil {
		return nil, err
	}
	t.Alias = alias
	return t, nil
}

// parseTableAlias parses an optional [AS] alias after a table reference.
func (p *Parser) parseTableAlias() (string, error) {
	if p.accept(token.AS) {
		return p.parseIdent()
	}
	if p.cur.Type == token.IDENT {
		return p.parseIdent()
	}
	return "", nil
}
