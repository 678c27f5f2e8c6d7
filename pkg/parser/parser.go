// Package parser implements a recursive descent parser for the SELECT subset
// of SQL. Dialect decision points (identifier quoting, limit clause style,
// ILIKE, QUALIFY, the :: cast operator) are driven by the dialect descriptor
// passed at parse time; everything else is shared grammar.
package parser

import (
	"fmt"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// Parser parses a SQL statement under a fixed dialect.
type Parser struct {
	lexer *Lexer
	d     *dialect.Dialect

	cur   token.Token
	peek  token.Token
	peek2 token.Token
}

// Parse parses a single SELECT statement under the given dialect. A trailing
// semicolon is accepted; any further input is an error. The returned tree
// shares no nodes with any other tree and is safe to mutate in place.
func Parse(sql string, d *dialect.Dialect) (*ast.SelectStmt, error) {
	p := newParser(sql, d)
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == token.SEMICOLON {
		p.next()
	}
	if p.cur.Type != token.EOF {
		if p.cur.Type == token.SELECT || p.cur.Type == token.WITH {
			return nil, &ParseError{
				Pos:     p.cur.Pos,
				Message: "multi-statement input is not supported",
			}
		}
		return nil, p.unexpected("end of statement")
	}
	return stmt, nil
}

func newParser(sql string, d *dialect.Dialect) *Parser {
	p := &Parser{lexer: NewLexer(sql, d), d: d}
	// prime the three-token window
	p.next()
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.peek2
	p.peek2 = p.lexer.NextToken()
}

// expect consumes the current token if it has the given type, otherwise it
// returns a ParseError.
func (p *Parser) expect(t token.Type) error {
	if p.cur.Type != t {
		return p.unexpected(t.String())
	}
	p.next()
	return nil
}

// accept consumes the current token if it has the given type.
func (p *Parser) accept(t token.Type) bool {
	if p.cur.Type == t {
		p.next()
		return true
	}
	return false
}

// unexpected builds the error for an unexpected current token. A pending
// lexer error takes precedence: an ILLEGAL token can only be reached through
// a lexical failure.
func (p *Parser) unexpected(expected string) error {
	if err := p.lexer.Err(); err != nil {
		return err
	}
	found := describe(p.cur)
	return &ParseError{
		Pos:      p.cur.Pos,
		Expected: expected,
		Found:    found,
		Message:  fmt.Sprintf(errUnexpectedToken, found, expected),
	}
}

func (p *Parser) unsupported(what string) error {
	return &UnsupportedError{
		Pos:     p.cur.Pos,
		Message: fmt.Sprintf(errClauseUnsupported, what, p.d.Name),
	}
}

func describe(tok token.Token) string {
	switch tok.Type {
	case token.IDENT:
		return fmt.Sprintf("identifier %q", tok.Literal)
	case token.NUMBER, token.STRING:
		return fmt.Sprintf("%s %q", tok.Type, tok.Literal)
	default:
		return tok.Type.String()
	}
}

// parseIdent consumes an identifier and returns its normalized name.
// Unquoted identifiers go through the dialect's case normalization; quoted
// identifiers are taken verbatim.
func (p *Parser) parseIdent() (string, error) {
	if p.cur.Type != token.IDENT {
		return "", p.unexpected("identifier")
	}
	name := p.cur.Literal
	if !p.cur.Quoted {
		name = p.d.NormalizeName(name)
	}
	p.next()
	return name, nil
}
