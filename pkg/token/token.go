// Package token defines the lexical token types for SQL parsing.
//
// ANSI core tokens are defined as constants for switch performance. Keywords
// that only exist in some dialects (TOP, QUALIFY, ILIKE, ...) are also
// constants; whether the lexer classifies them as keywords or plain
// identifiers is decided by the active dialect's keyword set.
package token

import "fmt"

// Type represents the type of a lexical token.
type Type int32

const (
	// Special tokens
	EOF Type = iota
	ILLEGAL

	// Literals
	IDENT  // identifier (quoted or not)
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	PERCENTOP // %
	DPIPE     // ||
	EQ        // =
	NE        // != or <>
	LT        // <
	GT        // >
	LE        // <=
	GE        // >=
	DCOLON    // :: (dialect cast operator)

	// Punctuation
	DOT       // .
	COMMA     // ,
	LPAREN    // (
	RPAREN    // )
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;

	// ANSI keywords (alphabetical)
	ALL
	AND
	AS
	ASC
	BETWEEN
	BY
	CASE
	CAST
	CROSS
	DESC
	DISTINCT
	ELSE
	END
	EXCEPT
	EXISTS
	FALSE
	FIRST
	FROM
	FULL
	GROUP
	HAVING
	IN
	INNER
	INTERSECT
	IS
	JOIN
	LAST
	LATERAL
	LEFT
	LIKE
	LIMIT
	NOT
	NULL
	NULLS
	OFFSET
	ON
	OR
	ORDER
	OUTER
	OVER
	PARTITION
	RECURSIVE
	RIGHT
	ROW
	ROWS
	SELECT
	THEN
	TRUE
	UNION
	USING
	WHEN
	WHERE
	WITH

	// Dialect keywords. These are real tokens only under dialects whose
	// keyword set includes them; elsewhere the lexer yields IDENT.
	FETCH   // FETCH FIRST n ROWS ONLY (oracle, ansi)
	ILIKE   // case-insensitive LIKE (postgres, redshift, snowflake)
	NEXT    // FETCH NEXT
	ONLY    // FETCH ... ROWS ONLY
	PERCENT // FETCH FIRST n PERCENT (recognized, rejected as unsupported)
	QUALIFY // window filter clause (snowflake, bigquery)
	TIES    // WITH TIES (recognized, rejected as unsupported)
	TOP     // SELECT TOP n (tsql)
)

// String returns a human-readable representation of the token type.
func (t Type) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[Type]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:      "+",
	MINUS:     "-",
	STAR:      "*",
	SLASH:     "/",
	PERCENTOP: "%",
	DPIPE:     "||",
	EQ:        "=",
	NE:        "!=",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	DCOLON:    "::",
	DOT:       ".",
	COMMA:     ",",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACKET:  "[",
	RBRACKET:  "]",
	SEMICOLON: ";",

	ALL:       "ALL",
	AND:       "AND",
	AS:        "AS",
	ASC:       "ASC",
	BETWEEN:   "BETWEEN",
	BY:        "BY",
	CASE:      "CASE",
	CAST:      "CAST",
	CROSS:     "CROSS",
	DESC:      "DESC",
	DISTINCT:  "DISTINCT",
	ELSE:      "ELSE",
	END:       "END",
	EXCEPT:    "EXCEPT",
	EXISTS:    "EXISTS",
	FALSE:     "FALSE",
	FIRST:     "FIRST",
	FROM:      "FROM",
	FULL:      "FULL",
	GROUP:     "GROUP",
	HAVING:    "HAVING",
	IN:        "IN",
	INNER:     "INNER",
	INTERSECT: "INTERSECT",
	IS:        "IS",
	JOIN:      "JOIN",
	LAST:      "LAST",
	LATERAL:   "LATERAL",
	LEFT:      "LEFT",
	LIKE:      "LIKE",
	LIMIT:     "LIMIT",
	NOT:       "NOT",
	NULL:      "NULL",
	NULLS:     "NULLS",
	OFFSET:    "OFFSET",
	ON:        "ON",
	OR:        "OR",
	ORDER:     "ORDER",
	OUTER:     "OUTER",
	OVER:      "OVER",
	PARTITION: "PARTITION",
	RECURSIVE: "RECURSIVE",
	RIGHT:     "RIGHT",
	ROW:       "ROW",
	ROWS:      "ROWS",
	SELECT:    "SELECT",
	THEN:      "THEN",
	TRUE:      "TRUE",
	UNION:     "UNION",
	USING:     "USING",
	WHEN:      "WHEN",
	WHERE:     "WHERE",
	WITH:      "WITH",

	FETCH:   "FETCH",
	ILIKE:   "ILIKE",
	NEXT:    "NEXT",
	ONLY:    "ONLY",
	PERCENT: "PERCENT",
	QUALIFY: "QUALIFY",
	TIES:    "TIES",
	TOP:     "TOP",
}

// keywords maps lowercase ANSI keyword strings to their token types.
var keywords = map[string]Type{
	"all":       ALL,
	"and":       AND,
	"as":        AS,
	"asc":       ASC,
	"between":   BETWEEN,
	"by":        BY,
	"case":      CASE,
	"cast":      CAST,
	"cross":     CROSS,
	"desc":      DESC,
	"distinct":  DISTINCT,
	"else":      ELSE,
	"end":       END,
	"except":    EXCEPT,
	"exists":    EXISTS,
	"false":     FALSE,
	"first":     FIRST,
	"from":      FROM,
	"full":      FULL,
	"group":     GROUP,
	"having":    HAVING,
	"in":        IN,
	"inner":     INNER,
	"intersect": INTERSECT,
	"is":        IS,
	"join":      JOIN,
	"last":      LAST,
	"lateral":   LATERAL,
	"left":      LEFT,
	"like":      LIKE,
	"limit":     LIMIT,
	"not":       NOT,
	"null":      NULL,
	"nulls":     NULLS,
	"offset":    OFFSET,
	"on":        ON,
	"or":        OR,
	"order":     ORDER,
	"outer":     OUTER,
	"over":      OVER,
	"partition": PARTITION,
	"recursive": RECURSIVE,
	"right":     RIGHT,
	"row":       ROW,
	"rows":      ROWS,
	"select":    SELECT,
	"then":      THEN,
	"true":      TRUE,
	"union":     UNION,
	"using":     USING,
	"when":      WHEN,
	"where":     WHERE,
	"with":      WITH,
}

// extended maps lowercase dialect keyword strings to their token types.
// A dialect opts into a subset of these through its keyword set.
var extended = map[string]Type{
	"fetch":   FETCH,
	"ilike":   ILIKE,
	"next":    NEXT,
	"only":    ONLY,
	"percent": PERCENT,
	"qualify": QUALIFY,
	"ties":    TIES,
	"top":     TOP,
}

// LookupIdent returns the token type for the given lowercase identifier.
// If the identifier is an ANSI keyword, the keyword token type is returned;
// otherwise IDENT. Dialect keywords are resolved separately via
// LookupExtended against the active dialect's keyword set.
func LookupIdent(ident string) Type {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupExtended returns the token type for a dialect keyword.
func LookupExtended(ident string) (Type, bool) {
	tok, ok := extended[ident]
	return tok, ok
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t Type) bool {
	return (t >= ALL && t <= WITH) || (t >= FETCH && t <= TOP)
}

// IsOperator returns true if the token type is an operator.
func IsOperator(t Type) bool {
	return t >= PLUS && t <= DCOLON
}

// Token represents a lexical token with position information.
// Quoted marks identifiers that were written with the dialect's quote
// characters; unquoted identifiers are subject to case normalization.
type Token struct {
	Type    Type
	Literal string
	Pos     Position
	Quoted  bool
}
