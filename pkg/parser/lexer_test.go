package parser_test

import (
	"testing"

	"github.com/sqlshift-labs/sqlshift/pkg/dialects/ansi"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/mysql"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/postgres"
	"github.com/sqlshift-labs/sqlshift/pkg/dialects/tsql"
	"github.com/sqlshift-labs/sqlshift/pkg/parser"
	"github.com/sqlshift-labs/sqlshift/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, l *parser.Lexer) []token.Token {
	t.Helper()
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			return toks
		}
	}
}

func TestLexerBasicTokens(t *testing.T) {
	l := parser.NewLexer("SELECT a, b FROM t WHERE x >= 1.5", ansi.Default)
	toks := lexAll(t, l)
	require.NoError(t, errOrNil(l.Err()))

	want := []token.Type{
		token.SELECT, token.IDENT, token.COMMA, token.IDENT,
		token.FROM, token.IDENT, token.WHERE, token.IDENT,
		token.GE, token.NUMBER, token.EOF,
	}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func errOrNil(e *parser.LexError) error {
	if e == nil {
		return nil
	}
	return e
}

func TestLexerPositions(t *testing.T) {
	l := parser.NewLexer("SELECT\n  name", ansi.Default)
	toks := lexAll(t, l)

	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Pos.Line)
	assert.Equal(t, 1, toks[0].Pos.Column)
	assert.Equal(t, 0, toks[0].Pos.Offset)
	assert.Equal(t, 2, toks[1].Pos.Line)
	assert.Equal(t, 3, toks[1].Pos.Column)
	assert.Equal(t, 9, toks[1].Pos.Offset)
}

func TestLexerStringLiterals(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "'hello'", "hello"},
		{"doubled quote", "'it''s'", "it's"},
		{"empty", "''", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := parser.NewLexer(tt.input, ansi.Default)
			tok := l.NextToken()
			require.Equal(t, token.STRING, tok.Type)
			assert.Equal(t, tt.want, tok.Literal)
		})
	}
}

func TestLexerBackslashEscapes(t *testing.T) {
	// live under mysql
	l := parser.NewLexer(`'a\'b'`, mysql.MySQL)
	tok := l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, "a'b", tok.Literal)

	// inert under ansi: the backslash is data and '' doubles
	l = parser.NewLexer(`'a\b'`, ansi.Default)
	tok = l.NextToken()
	require.Equal(t, token.STRING, tok.Type)
	assert.Equal(t, `a\b`, tok.Literal)
}

func TestLexerUnterminatedString(t *testing.T) {
	l := parser.NewLexer("SELECT 'oops", ansi.Default)
	toks := lexAll(t, l)
	require.Equal(t, token.ILLEGAL, toks[len(toks)-1].Type)
	require.NotNil(t, l.Err())
	assert.Contains(t, l.Err().Error(), "unterminated string")
}

func TestLexerQuotedIdentifiers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		dialect string
		want    string
	}{
		{"double quotes", `"Order"`, "ansi", "Order"},
		{"embedded quote", `"a""b"`, "ansi", `a"b`},
		{"backticks", "`from`", "mysql", "from"},
		{"brackets", "[select]", "tsql", "select"},
		{"bracket escape", "[a]]b]", "tsql", "a]b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l *parser.Lexer
			switch tt.dialect {
			case "mysql":
				l = parser.NewLexer(tt.input, mysql.MySQL)
			case "tsql":
				l = parser.NewLexer(tt.input, tsql.TSQL)
			default:
				l = parser.NewLexer(tt.input, ansi.Default)
			}
			tok := l.NextToken()
			require.Equal(t, token.IDENT, tok.Type)
			assert.True(t, tok.Quoted)
			assert.Equal(t, tt.want, tok.Literal)
		})
	}
}

func TestLexerDialectKeywords(t *testing.T) {
	// ILIKE is a keyword under postgres, a plain identifier elsewhere
	l := parser.NewLexer("ilike", postgres.Postgres)
	assert.Equal(t, token.ILIKE, l.NextToken().Type)

	l = parser.NewLexer("ilike", ansi.Default)
	assert.Equal(t, token.IDENT, l.NextToken().Type)

	// TOP only exists under tsql
	l = parser.NewLexer("top", tsql.TSQL)
	assert.Equal(t, token.TOP, l.NextToken().Type)

	l = parser.NewLexer("top", mysql.MySQL)
	assert.Equal(t, token.IDENT, l.NextToken().Type)
}

func TestLexerCastOperator(t *testing.T) {
	l := parser.NewLexer("a::text", postgres.Postgres)
	toks := lexAll(t, l)
	require.Len(t, toks, 4)
	assert.Equal(t, token.DCOLON, toks[1].Type)

	// :: is not an operator under mysql
	l = parser.NewLexer("a::text", mysql.MySQL)
	toks = lexAll(t, l)
	require.Equal(t, token.ILLEGAL, toks[len(toks)-1].Type)
	require.NotNil(t, l.Err())
}

func TestLexerComments(t *testing.T) {
	l := parser.NewLexer("SELECT -- trailing\n a /* block */ FROM t", ansi.Default)
	toks := lexAll(t, l)

	want := []token.Type{token.SELECT, token.IDENT, token.FROM, token.IDENT, token.EOF}
	require.Len(t, toks, len(want))
	for i, typ := range want {
		assert.Equal(t, typ, toks[i].Type, "token %d", i)
	}
}

func TestLexerIllegalChar(t *testing.T) {
	l := parser.NewLexer("SELECT a ~ b", ansi.Default)
	toks := lexAll(t, l)
	require.Equal(t, token.ILLEGAL, toks[len(toks)-1].Type)
	require.NotNil(t, l.Err())
	assert.Contains(t, l.Err().Error(), "unrecognized character")
}
