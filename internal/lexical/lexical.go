// Package lexical maps XSD lexical forms to ordered Go values and back.
package lexical

import "fmt"

// Domain is an ordered value space with a lexical mapping.
//
// Succ and Pred step by the domain's epsilon, the smallest representable
// increment. They report false when no such value exists.
type Domain[T any] interface {
	Name() string
	Parse(lexical string) (T, error)
	Format(v T) string
	Compare(a, b T) int
	Succ(v T) (T, bool)
	Pred(v T) (T, bool)
}

// Error reports a lexical form that is not valid for a domain.
type Error struct {
	Err     error
	Type    string
	Lexical string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s lexical form %q: %v", e.Type, e.Lexical, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a numeric parse failure.
type ParseError struct {
	Kind ParseErrKind
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return e.Kind.String()
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseBadChar
	ParseMultipleSigns
	ParseMultipleDots
	ParseNoDigits
	ParseOutOfRange
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty"
	case ParseBadChar:
		return "bad character"
	case ParseMultipleSigns:
		return "multiple signs"
	case ParseMultipleDots:
		return "multiple dots"
	case ParseNoDigits:
		return "no digits"
	case ParseOutOfRange:
		return "out of range"
	default:
		return "invalid"
	}
}

func fail(typ, lexical string, kind ParseErrKind) *Error {
	return &Error{Type: typ, Lexical: lexical, Err: &ParseError{Kind: kind}}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// splitSign strips one optional leading sign.
func splitSign(s string) (negative bool, rest string, kind ParseErrKind, ok bool) {
	if s == "" {
		return false, "", ParseEmpty, false
	}
	switch s[0] {
	case '+':
		rest = s[1:]
	case '-':
		negative = true
		rest = s[1:]
	default:
		rest = s
	}
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		return false, "", ParseMultipleSigns, false
	}
	return negative, rest, 0, true
}
