// Package facets resolves XSD constraining facets into generation bounds.
package facets

import (
	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

// Set is the facets declared on one simple type. Absent facets are nil or empty.
type Set struct {
	WhiteSpace   *whitespace.Mode
	Length       *int
	MinLength    *int
	MaxLength    *int
	MinInclusive *string
	MinExclusive *string
	MaxInclusive *string
	MaxExclusive *string
	// Patterns holds one list per derivation step. A value must match one
	// pattern of a list.
	Patterns    [][]string
	Enumeration []string
}

// HasBounds reports whether any ordering facet is set.
func (s Set) HasBounds() bool {
	return s.MinInclusive != nil || s.MinExclusive != nil || s.MaxInclusive != nil || s.MaxExclusive != nil
}

// HasLength reports whether any length facet is set.
func (s Set) HasLength() bool {
	return s.Length != nil || s.MinLength != nil || s.MaxLength != nil
}

// WhiteSpaceOr returns the declared whiteSpace mode or def.
func (s Set) WhiteSpaceOr(def whitespace.Mode) whitespace.Mode {
	if s.WhiteSpace != nil {
		return *s.WhiteSpace
	}
	return def
}

// Validate reports facet combinations that cannot be resolved.
func (s Set) Validate() error {
	if s.Length != nil && s.MinLength != nil {
		return xsdgenerrors.New(xsdgenerrors.ErrFacetConflict, "length", "length and minLength cannot both be specified")
	}
	if s.Length != nil && s.MaxLength != nil {
		return xsdgenerrors.New(xsdgenerrors.ErrFacetConflict, "length", "length and maxLength cannot both be specified")
	}
	for _, f := range []struct {
		v    *int
		name string
	}{
		{s.Length, "length"},
		{s.MinLength, "minLength"},
		{s.MaxLength, "maxLength"},
	} {
		if f.v != nil && *f.v < 0 {
			return xsdgenerrors.Newf(xsdgenerrors.ErrFacetConflict, f.name, "must be non-negative, got %d", *f.v)
		}
	}
	if s.MinInclusive != nil && s.MinExclusive != nil {
		return xsdgenerrors.New(xsdgenerrors.ErrFacetConflict, "minInclusive", "minInclusive and minExclusive cannot both be specified")
	}
	if s.MaxInclusive != nil && s.MaxExclusive != nil {
		return xsdgenerrors.New(xsdgenerrors.ErrFacetConflict, "maxInclusive", "maxInclusive and maxExclusive cannot both be specified")
	}
	return nil
}

// Ptr returns a pointer to v, for building Sets in code.
func Ptr[T any](v T) *T {
	return &v
}
