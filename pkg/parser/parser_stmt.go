package parser

import (
	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

func (p *Parser) parseStatement() (*ast.SelectStmt, error) {
	stmt := &ast.SelectStmt{}

	if p.cur.Type == token.WITH {
		with, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		stmt.With = with
	}

	body, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	stmt.Body = body
	return stmt, nil
}

func (p *Parser) parseWithClause() (*ast.WithClause, error) {
	if err := p.expect(token.WITH); err != nil {
		return nil, err
	}
	with := &ast.WithClause{Recursive: p.accept(token.RECURSIVE)}

	for {
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.AS); err != nil {
			return nil, err
		}
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
		with.CTEs = append(with.CTEs, &ast.CTE{Name: name, Select: sel})

		if !p.accept(token.COMMA) {
			break
		}
	}
	return with, nil
}

// parseSelectBody parses a SELECT core and any chained set operations.
// The chain is right-nested; trailing ORDER BY and LIMIT clauses bind to the
// last core, which is where they sit in the source text.
func (p *Parser) parseSelectBody() (*ast.SelectBody, error) {
	core, err := p.parseSelectCore()
	if err != nil {
		return nil, err
	}
	body := &ast.SelectBody{Left: core}

	var op ast.SetOpType
	switch p.cur.Type {
	case token.UNION:
		p.next()
		op = ast.SetOpUnion
		if p.accept(token.ALL) {
			op = ast.SetOpUnionAll
		} else {
			p.accept(token.DISTINCT)
		}
	case token.INTERSECT:
		p.next()
		op = ast.SetOpIntersect
	case token.EXCEPT:
		p.next()
		op = ast.SetOpExcept
	default:
		return body, nil
	}

	right, err := p.parseSelectBody()
	if err != nil {
		return nil, err
	}
	body.Op = op
	body.Right = right
	return body, nil
}

func (p *Parser) parseSelectCore() (*ast.SelectCore, error) {
	if err := p.expect(token.SELECT); err != nil {
		return nil, err
	}
	core := &ast.SelectCore{}

	if p.accept(token.DISTINCT) {
		core.Distinct = true
	} else {
		p.accept(token.ALL)
	}

	// TOP is only tokenized as a keyword under dialects with the TOP
	// limit style, so no dialect check is needed here.
	if p.cur.Type == token.TOP {
		p.next()
		count, err := p.parseTopCount()
		if err != nil {
			return nil, err
		}
		if p.cur.Type == token.PERCENT {
			return nil, p.unsupported("TOP ... PERCENT")
		}
		if p.cur.Type == token.WITH && p.peek.Type == token.TIES {
			return nil, p.unsupported("TOP ... WITH TIES")
		}
		core.Limit = &ast.LimitClause{Count: count}
	}

	items, err := p.parseSelectItems()
	if err != nil {
		return nil, err
	}
	core.Columns = items

	if p.cur.Type == token.FROM {
		p.next()
		from, err := p.parseFromClause()
		if err != nil {
			return nil, err
		}
		core.From = from
	}

	if p.accept(token.WHERE) {
		core.Where, err = p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
	}

	if p.cur.Type == token.GROUP {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		for {
			e, err := p.parseExpr(precLowest)
			if err != nil {
				return nil, err
			}
			core.GroupBy = append(core.GroupBy, e)
			if !p.accept(token.COMMA) {
				break
			}
		}
	}

	if p.accept(token.HAVING) {
		core.Having, err = p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
	}

	// QUALIFY is only tokenized under dialects that support it.
	if p.accept(token.QUALIFY) {
		core.Qualify, err = p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
	}

	if p.cur.Type == token.ORDER {
		p.next()
		if err := p.expect(token.BY); err != nil {
			return nil, err
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		core.OrderBy = &ast.OrderByClause{Items: ob}
	}

	if err := p.parseLimitClauses(core); err != nil {
		return nil, err
	}
	return core, nil
}

// parseTopCount parses the count of a TOP clause: a number literal or a
// parenthesized expression. A full expression would be ambiguous against a
// following * select item.
func (p *Parser) parseTopCount() (ast.Expr, error) {
	switch p.cur.Type {
	case token.NUMBER:
		lit := p.cur.Literal
		p.next()
		return &ast.Literal{Type: ast.LiteralNumber, Value: lit}, nil
	case token.LPAREN:
		p.next()
		inner, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Expr: inner}, nil
	default:
		return nil, p.unexpected("row count")
	}
}

// parseLimitClauses parses the row-limiting tail of a SELECT core: LIMIT and
// OFFSET, or the OFFSET ... FETCH form, depending on the dialect.
func (p *Parser) parseLimitClauses(core *ast.SelectCore) error {
	for {
		switch p.cur.Type {
		case token.LIMIT:
			if p.d.Limit == dialect.LimitTop || p.d.Limit == dialect.LimitFetch {
				return p.unsupported("LIMIT")
			}
			p.next()
			count, err := p.parseExpr(precLowest)
			if err != nil {
				return err
			}
			core.Limit = &ast.LimitClause{Count: count}

		case token.OFFSET:
			p.next()
			off, err := p.parseExpr(precLowest)
			if err != nil {
				return err
			}
			if !p.accept(token.ROWS) {
				p.accept(token.ROW)
			}
			core.Offset = off

		case token.FETCH:
			if err := p.parseFetchClause(core); err != nil {
				return err
			}

		default:
			return nil
		}
	}
}

// parseFetchClause parses FETCH {FIRST|NEXT} n ROWS ONLY. The PERCENT and
// WITH TIES variants are recognized and rejected.
func (p *Parser) parseFetchClause(core *ast.SelectCore) error {
	p.next() // consume FETCH
	if !p.accept(token.FIRST) && !p.accept(token.NEXT) {
		return p.unexpected("FIRST or NEXT")
	}
	count, err := p.parseExpr(precLowest)
	if err != nil {
		return err
	}
	if p.cur.Type == token.PERCENT {
		return p.unsupported("FETCH ... PERCENT")
	}
	if !p.accept(token.ROWS) && !p.accept(token.ROW) {
		return p.unexpected("ROW or ROWS")
	}
	if p.cur.Type == token.WITH {
		return p.unsupported("FETCH ... WITH TIES")
	}
	if err := p.expect(token.ONLY); err != nil {
		return err
	}
	core.Limit = &ast.LimitClause{Count: count}
	return nil
}

func (p *Parser) parseSelectItems() ([]ast.SelectItem, error) {
	var items []ast.SelectItem
	for {
		item, err := p.parseSelectItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.accept(token.COMMA) {
			break
		}
	}
	return items, nil
}

func (p *Parser) parseSelectItem() (ast.SelectItem, error) {
	if p.cur.Type == token.STAR {
		p.next()
		return ast.SelectItem{Star: true}, nil
	}
	if p.cur.Type == token.IDENT && p.peek.Type == token.DOT && p.peek2.Type == token.STAR {
		table, err := p.parseIdent()
		if err != nil {
			return ast.SelectItem{}, err
		}
		p.next() // .
		p.next() // *
		return ast.SelectItem{TableStar: table}, nil
	}

	expr, err := p.parseExpr(precLowest)
	if err != nil {
		return ast.SelectItem{}, err
	}
	item := ast.SelectItem{Expr: expr}

	if p.accept(token.AS) {
		item.Alias, err = p.parseIdent()
		if err != nil {
			return ast.SelectItem{}, err
		}
	} else if p.cur.Type == token.IDENT {
		item.Alias, err = p.parseIdent()
		if err != nil {
			return ast.SelectItem{}, err
		}
	}
	return item, nil
}

func (p *Parser) parseOrderByItems() ([]ast.OrderByItem, error) {
	var items []ast.OrderByItem
	for {
		expr, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		item := ast.OrderByItem{Expr: expr}

		if p.accept(token.DESC) {
			item.Desc = true
		} else {
			p.accept(token.ASC)
		}

		if p.accept(token.NULLS) {
			switch {
			case p.accept(token.FIRST):
				v := true
				item.NullsFirst = &v
			case p.accept(token.LAST):
				v := false
				item.NullsFirst = &v
			default:
				return nil, p.unexpected("FIRST or LAST")
			}
		}

		items = append(items, item)
		if !p.accept(token.COMMA) {
			break
		}
	}
	return items, nil
}
