package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies generator construction and sampling failures.
type ErrorCode string

const (
	// ErrFacetConflict indicates a facet combination that cannot be resolved,
	// such as length together with minLength.
	ErrFacetConflict ErrorCode = "xsdgen-facet-conflict"
	// ErrEmptyRange indicates resolved bounds that admit no value.
	ErrEmptyRange ErrorCode = "xsdgen-empty-range"
	// ErrLexical indicates a facet value that is not valid for the value type.
	ErrLexical ErrorCode = "xsdgen-lexical"
	// ErrPatternSyntax indicates a pattern facet that is not a valid XSD 1.0 regex.
	ErrPatternSyntax ErrorCode = "xsdgen-pattern-syntax"
	// ErrUnknownType indicates a type name with no builtin generator.
	ErrUnknownType ErrorCode = "xsdgen-unknown-type"
	// ErrExhausted indicates a draw that kept failing its filter.
	ErrExhausted ErrorCode = "xsdgen-exhausted"
	// ErrFacetDocument indicates a malformed facet document.
	ErrFacetDocument ErrorCode = "xsdgen-facet-document"
)

// Error describes a generator failure with a code and the facet involved.
//
//nolint:errname // public API name, kept short.
type Error struct {
	Err     error
	Code    string
	Facet   string
	Message string
}

// Error formats the error for display, including code, facet, and cause.
func (e *Error) Error() string {
	if e == nil {
		return "xsdgen error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] ", e.Code))
	if e.Facet != "" {
		b.WriteString(e.Facet)
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New builds an Error with a code, facet name, and message.
func New(code ErrorCode, facet, msg string) *Error {
	return &Error{Code: string(code), Facet: facet, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code ErrorCode, facet, format string, args ...any) *Error {
	return New(code, facet, fmt.Sprintf(format, args...))
}

// Wrap builds an Error that carries err as its cause.
func Wrap(code ErrorCode, facet, msg string, err error) *Error {
	return &Error{Code: string(code), Facet: facet, Message: msg, Err: err}
}

// As extracts the first Error in err's chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var target *Error
	if errors.As(err, &target) && target != nil {
		return target, true
	}
	return nil, false
}

// HasCode reports whether err carries an Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := As(err)
	return ok && e.Code == string(code)
}
