package facets

import (
	"fmt"
	"math"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/lexical"
)

// Bound is one resolved side of an ordered range.
type Bound[T any] struct {
	// Value is the inclusive generation bound, already stepped by epsilon
	// for exclusive facets.
	Value T
	// Limit is the declared facet value the predicate compares against.
	Limit T
	// Exclusive selects a strict comparison against Limit.
	Exclusive bool
	// Set is false when the bound came from the caller default.
	Set bool
}

// Range is a resolved pair of bounds over a lexical domain.
type Range[T any] struct {
	domain lexical.Domain[T]
	Lower  Bound[T]
	Upper  Bound[T]
}

// AboveLower reports whether v satisfies the lower comparison.
func (r Range[T]) AboveLower(v T) bool {
	c := r.domain.Compare(v, r.Lower.Limit)
	if r.Lower.Exclusive {
		return c > 0
	}
	return c >= 0
}

// BelowUpper reports whether v satisfies the upper comparison.
func (r Range[T]) BelowUpper(v T) bool {
	c := r.domain.Compare(v, r.Upper.Limit)
	if r.Upper.Exclusive {
		return c < 0
	}
	return c <= 0
}

// Contains reports whether v satisfies both comparisons.
func (r Range[T]) Contains(v T) bool {
	return r.AboveLower(v) && r.BelowUpper(v)
}

// Domain returns the lexical domain the range was resolved in.
func (r Range[T]) Domain() lexical.Domain[T] {
	return r.domain
}

// String renders the range in interval notation, e.g. (3, 10].
func (r Range[T]) String() string {
	open, closing := "[", "]"
	if r.Lower.Exclusive {
		open = "("
	}
	if r.Upper.Exclusive {
		closing = ")"
	}
	return fmt.Sprintf("%s%s, %s%s", open, r.domain.Format(r.Lower.Limit), r.domain.Format(r.Upper.Limit), closing)
}

// ResolveRange resolves the ordering facets of s in domain d.
// Sides without a facet fall back to defMin and defMax.
func ResolveRange[T any](s Set, d lexical.Domain[T], defMin, defMax T) (Range[T], error) {
	r := Range[T]{domain: d}
	if err := s.Validate(); err != nil {
		return r, err
	}

	lower, err := resolveSide(d, s.MinInclusive, s.MinExclusive, defMin, "minInclusive", "minExclusive", d.Succ)
	if err != nil {
		return r, err
	}
	upper, err := resolveSide(d, s.MaxInclusive, s.MaxExclusive, defMax, "maxInclusive", "maxExclusive", d.Pred)
	if err != nil {
		return r, err
	}
	r.Lower, r.Upper = lower, upper

	if d.Compare(lower.Value, upper.Value) > 0 {
		return r, xsdgenerrors.Newf(xsdgenerrors.ErrEmptyRange, "", "%s range %s admits no value (resolved [%s, %s])",
			d.Name(), r, d.Format(lower.Value), d.Format(upper.Value))
	}
	return r, nil
}

func resolveSide[T any](
	d lexical.Domain[T],
	inclusive, exclusive *string,
	def T,
	inclusiveName, exclusiveName string,
	step func(T) (T, bool),
) (Bound[T], error) {
	switch {
	case inclusive != nil:
		v, err := d.Parse(*inclusive)
		if err != nil {
			return Bound[T]{}, xsdgenerrors.Wrap(xsdgenerrors.ErrLexical, inclusiveName, "invalid bound", err)
		}
		if unordered(v) {
			return Bound[T]{}, xsdgenerrors.Newf(xsdgenerrors.ErrEmptyRange, inclusiveName,
				"%s bound %s admits no value", d.Name(), *inclusive)
		}
		return Bound[T]{Value: v, Limit: v, Set: true}, nil
	case exclusive != nil:
		v, err := d.Parse(*exclusive)
		if err != nil {
			return Bound[T]{}, xsdgenerrors.Wrap(xsdgenerrors.ErrLexical, exclusiveName, "invalid bound", err)
		}
		if unordered(v) {
			return Bound[T]{}, xsdgenerrors.Newf(xsdgenerrors.ErrEmptyRange, exclusiveName,
				"%s bound %s admits no value", d.Name(), *exclusive)
		}
		stepped, ok := step(v)
		if !ok {
			return Bound[T]{}, xsdgenerrors.Newf(xsdgenerrors.ErrEmptyRange, exclusiveName,
				"no %s value beyond %s", d.Name(), *exclusive)
		}
		return Bound[T]{Value: stepped, Limit: v, Exclusive: true, Set: true}, nil
	default:
		return Bound[T]{Value: def, Limit: def}, nil
	}
}

// unordered reports bounds no value compares against. NaN is the only one.
func unordered[T any](v T) bool {
	f, ok := any(v).(float64)
	return ok && math.IsNaN(f)
}
