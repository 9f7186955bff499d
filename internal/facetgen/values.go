package facetgen

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/lexical"
	"github.com/jacoelho/xsdgen/internal/xmlchar"
)

const (
	commonCharWeight = 98
	legalCharWeight  = 2
)

// Enumeration draws one of values uniformly. It reports false for an empty list.
func Enumeration(values []string) (Generator[string], bool) {
	if len(values) == 0 {
		return Generator[string]{}, false
	}
	consts := make([]any, len(values))
	members := make(map[string]struct{}, len(values))
	for i, v := range values {
		consts[i] = v
		members[v] = struct{}{}
	}
	return Generator[string]{
		Gen: gen.OneConstOf(consts...),
		Prop: func(v string) bool {
			_, ok := members[v]
			return ok
		},
		Description: fmt.Sprintf("enumeration %q", values),
	}, true
}

// LengthString draws strings whose character count lies in the resolved
// length bounds of s. Characters come mostly from xmlchar.Common with rare
// excursions into the whole of xmlchar.Legal.
func LengthString(s facets.Set, defaultMin, defaultMax int) (Generator[string], error) {
	lo, hi, err := facets.LengthBounds(s, defaultMin, defaultMax)
	if err != nil {
		return Generator[string]{}, err
	}
	chars := gen.Weighted([]gen.WeightedGen{
		{Weight: commonCharWeight, Gen: gen.UnicodeChar(xmlchar.Common)},
		{Weight: legalCharWeight, Gen: gen.UnicodeChar(xmlchar.Legal)},
	})
	runes := gen.IntRange(lo, hi).FlatMap(func(n any) gopter.Gen {
		return gen.SliceOfN(n.(int), chars)
	}, reflect.TypeOf([]rune(nil)))
	return Generator[string]{
		Gen: runes.Map(func(rs []rune) string { return string(rs) }),
		Prop: func(v string) bool {
			n := utf8.RuneCountInString(v)
			return n >= lo && n <= hi
		},
		Description: fmt.Sprintf("length [%d, %d]", lo, hi),
	}, nil
}

// Bounded clamps draws of base into r and formats them. A draw below the
// lower bound becomes r.Lower.Value; otherwise a draw above the upper bound
// becomes r.Upper.Value.
func Bounded[T any](base gopter.Gen, r facets.Range[T]) Generator[string] {
	d := r.Domain()
	clamp := func(v T) T {
		if !r.AboveLower(v) {
			return r.Lower.Value
		}
		if !r.BelowUpper(v) {
			return r.Upper.Value
		}
		return v
	}
	return Generator[string]{
		Gen: base.Map(clamp).Map(d.Format),
		Prop: func(v string) bool {
			parsed, err := d.Parse(v)
			return err == nil && r.Contains(parsed)
		},
		Description: fmt.Sprintf("%s in %s", d.Name(), r),
	}
}

// BoundedFacets resolves the ordering facets of s and builds a Bounded generator.
func BoundedFacets[T any](base gopter.Gen, d lexical.Domain[T], s facets.Set, defMin, defMax T) (Generator[string], error) {
	r, err := facets.ResolveRange(s, d, defMin, defMax)
	if err != nil {
		return Generator[string]{}, err
	}
	return Bounded(base, r), nil
}

// Lexical formats draws of base with d. Its predicate accepts any valid lexical form.
func Lexical[T any](base gopter.Gen, d lexical.Domain[T]) Generator[string] {
	return Generator[string]{
		Gen: base.Map(d.Format),
		Prop: func(v string) bool {
			_, err := d.Parse(v)
			return err == nil
		},
		Description: d.Name(),
	}
}
