package engine

import (
	"errors"
	"fmt"

	"github.com/sqlshift-labs/sqlshift/pkg/ast"
	"github.com/sqlshift-labs/sqlshift/pkg/parser"
	"github.com/sqlshift-labs/sqlshift/pkg/render"
)

// Kind discriminates engine error categories. The values are stable API:
// clients (and the HTTP layer) branch on them.
type Kind string

// Error kinds.
const (
	KindLexError        Kind = "lex_error"
	KindParseError      Kind = "parse_error"
	KindStructuralError Kind = "structural_error"
	KindInvalidArgument Kind = "invalid_argument"
	KindUnsupported     Kind = "unsupported_construct"
)

// Error is the uniform error type returned by engine operations.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying parser/render/ast error, if any
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// invalidArgf builds an invalid_argument error.
func invalidArgf(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// classify wraps an error from a lower layer into an *Error with the right
// kind. Errors that are already *Error pass through.
func classify(err error) *Error {
	var ee *Error
	if errors.As(err, &ee) {
		return ee
	}

	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		return &Error{Kind: KindLexError, Message: lexErr.Message, Err: err}
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return &Error{Kind: KindParseError, Message: parseErr.Message, Err: err}
	}
	var parseUnsup *parser.UnsupportedError
	if errors.As(err, &parseUnsup) {
		return &Error{Kind: KindUnsupported, Message: parseUnsup.Message, Err: err}
	}
	var renderUnsup *render.UnsupportedError
	if errors.As(err, &renderUnsup) {
		return &Error{Kind: KindUnsupported, Message: renderUnsup.Message, Err: err}
	}
	var structErr *ast.StructuralError
	if errors.As(err, &structErr) {
		return &Error{Kind: KindStructuralError, Message: structErr.Message, Err: err}
	}
	return &Error{Kind: KindStructuralError, Message: err.Error(), Err: err}
}
