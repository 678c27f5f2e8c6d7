package parser

import (
	"fmt"

	"github.com/sqlshift-labs/sqlshift/pkg/token"
)

// LexError represents a lexical analysis failure: an unterminated string or
// quoted identifier, or a character the dialect cannot start a token with.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexer error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// ParseError represents a syntax error with position information.
// Expected and Found are token descriptions when the failure was a token
// mismatch; Message always carries the full detail.
type ParseError struct {
	Pos      token.Position
	Expected string
	Found    string
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// UnsupportedError reports syntax that is recognized as SQL but not covered
// by the implemented grammar for the active dialect.
type UnsupportedError struct {
	Pos     token.Position
	Message string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Common error messages.
const (
	errUnexpectedToken    = "unexpected token %s, expected %s"
	errUnterminatedString = "unterminated string literal"
	errUnterminatedIdent  = "unterminated quoted identifier"
	errIllegalChar        = "unrecognized character %q"
	errClauseUnsupported  = "%s is not supported in %s dialect"
)
