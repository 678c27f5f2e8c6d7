package parser

import (
	"fmt"
	"strings"

	"github.com/sqlshift-labs/sqlshift/pkg/dialect"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// Lexer performs lexical analysis on SQL input. Quote characters, string
// escape rules, and extended keyword recognition come from the dialect.
type Lexer struct {
	input   string
	dialect *dialect.Dialect

	pos     int  // current position in input (points to ch)
	readPos int  // next reading position (after ch)
	ch      byte // current char under examination

	line int // current line (1-based)
	col  int // current column (1-based)

	err *LexError // first lexical error, if any
}

// NewLexer creates a lexer for the given input and dialect.
func NewLexer(input string, d *dialect.Dialect) *Lexer {
	l := &Lexer{input: input, dialect: d, line: 1, col: 0}
	l.readChar()
	return l
}

// Err returns the first lexical error encountered, or nil.
func (l *Lexer) Err() *LexError { return l.err }

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) position() token.Position {
	return token.Position{Line: l.line, Column: l.col, Offset: l.pos}
}

// NextToken scans and returns the next token. After a lexical error it
// returns an ILLEGAL token; the error detail is available via Err.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()
	l.skipComments()

	pos := l.position()
	var tok token.Token
	tok.Pos = pos

	switch {
	case l.ch == 0:
		tok.Type = token.EOF
	case l.ch == '\'':
		return l.readString(pos)
	case l.ch == l.identQuote():
		return l.readQuotedIdent(pos)
	case isDigit(l.ch):
		return l.readNumber(pos)
	case isIdentStart(l.ch):
		return l.readIdent(pos)
	default:
		return l.readOperator(pos)
	}

	l.readChar()
	return tok
}

func (l *Lexer) identQuote() byte {
	q := l.dialect.Identifiers.Quote
	if len(q) == 0 {
		return '"'
	}
	return q[0]
}

func (l *Lexer) identQuoteEnd() byte {
	q := l.dialect.Identifiers.QuoteEnd
	if len(q) == 0 {
		return '"'
	}
	return q[0]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipComments consumes -- line comments and /* block comments, plus any
// whitespace between them.
func (l *Lexer) skipComments() {
	for {
		if l.ch == '-' && l.peekChar() == '-' {
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
			l.skipWhitespace()
			continue
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			for !(l.ch == '*' && l.peekChar() == '/') && l.ch != 0 {
				l.readChar()
			}
			if l.ch != 0 {
				l.readChar()
				l.readChar()
			}
			l.skipWhitespace()
			continue
		}
		return
	}
}

func (l *Lexer) readString(pos token.Position) token.Token {
	var sb strings.Builder
	l.readChar() // consume opening quote
	for {
		switch {
		case l.ch == 0:
			return l.fail(pos, errUnterminatedString)
		case l.ch == '\\' && l.dialect.BackslashStrings:
			l.readChar()
			if l.ch == 0 {
				return l.fail(pos, errUnterminatedString)
			}
			sb.WriteByte(unescape(l.ch))
			l.readChar()
		case l.ch == '\'':
			if l.peekChar() == '\'' {
				sb.WriteByte('\'')
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // consume closing quote
			return token.Token{Type: token.STRING, Literal: sb.String(), Pos: pos}
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return ch
	}
}

func (l *Lexer) readQuotedIdent(pos token.Position) token.Token {
	end := l.identQuoteEnd()
	var sb strings.Builder
	l.readChar() // consume opening quote
	for {
		switch {
		case l.ch == 0:
			return l.fail(pos, errUnterminatedIdent)
		case l.ch == end:
			if l.peekChar() == end {
				sb.WriteByte(end)
				l.readChar()
				l.readChar()
				continue
			}
			l.readChar() // consume closing quote
			return token.Token{Type: token.IDENT, Literal: sb.String(), Pos: pos, Quoted: true}
		default:
			sb.WriteByte(l.ch)
			l.readChar()
		}
	}
}

func (l *Lexer) readNumber(pos token.Position) token.Token {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if isDigit(next) || next == '+' || next == '-' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return token.Token{Type: token.NUMBER, Literal: l.input[start:l.pos], Pos: pos}
}

func (l *Lexer) readIdent(pos token.Position) token.Token {
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.pos]

	lower := strings.ToLower(lit)
	if typ := token.LookupIdent(lower); typ != token.IDENT {
		return token.Token{Type: typ, Literal: lit, Pos: pos}
	}
	if typ, ok := l.dialect.LookupKeyword(lower); ok {
		return token.Token{Type: typ, Literal: lit, Pos: pos}
	}
	return token.Token{Type: token.IDENT, Literal: lit, Pos: pos}
}

func (l *Lexer) readOperator(pos token.Position) token.Token {
	mk := func(t token.Type, lit string) token.Token {
		for range lit {
			l.readChar()
		}
		return token.Token{Type: t, Literal: lit, Pos: pos}
	}

	switch l.ch {
	case '+':
		return mk(token.PLUS, "+")
	case '-':
		return mk(token.MINUS, "-")
	case '*':
		return mk(token.STAR, "*")
	case '/':
		return mk(token.SLASH, "/")
	case '%':
		return mk(token.PERCENTOP, "%")
	case '=':
		return mk(token.EQ, "=")
	case '.':
		return mk(token.DOT, ".")
	case ',':
		return mk(token.COMMA, ",")
	case '(':
		return mk(token.LPAREN, "(")
	case ')':
		return mk(token.RPAREN, ")")
	case ';':
		return mk(token.SEMICOLON, ";")
	case '<':
		switch l.peekChar() {
		case '=':
			return mk(token.LE, "<=")
		case '>':
			return mk(token.NE, "<>")
		}
		return mk(token.LT, "<")
	case '>':
		if l.peekChar() == '=' {
			return mk(token.GE, ">=")
		}
		return mk(token.GT, ">")
	case '!':
		if l.peekChar() == '=' {
			return mk(token.NE, "!=")
		}
	case '|':
		if l.peekChar() == '|' {
			return mk(token.DPIPE, "||")
		}
	case ':':
		if l.peekChar() == ':' && l.dialect.SupportsCastOperator {
			return mk(token.DCOLON, "::")
		}
	}
	return l.fail(pos, fmt.Sprintf(errIllegalChar, l.ch))
}

func (l *Lexer) fail(pos token.Position, msg string) token.Token {
	if l.err == nil {
		l.err = &LexError{Pos: pos, Message: msg}
	}
	// stop making progress: park at EOF so the parser surfaces the error
	l.ch = 0
	l.readPos = len(l.input) + 1
	return token.Token{Type: token.ILLEGAL, Pos: pos}
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch) || ch == '$'
}
