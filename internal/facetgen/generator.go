// Package facetgen builds gopter generators for values constrained by XSD facets.
//
// Every Generator pairs a gopter.Gen with the predicate its values must
// satisfy. Composition does not filter: a composed Gen may draw values that
// fail Prop. Draw and Settled check Prop once for the whole composition, so a
// draw costs at most RetryLimit attempts however deeply generators nest.
package facetgen

import (
	"strings"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
)

// RetryLimit bounds the attempts of one draw.
const RetryLimit = 1000

// Generator is a gopter generator together with the predicate its values satisfy.
type Generator[T any] struct {
	Gen         gopter.Gen
	Prop        func(T) bool
	Description string
}

// Draw runs up to RetryLimit attempts with params and returns the first value
// satisfying Prop. It reports false when every attempt failed.
func (g Generator[T]) Draw(params *gopter.GenParameters) (T, bool) {
	for range RetryLimit {
		v, ok := g.Gen(params).Retrieve()
		if !ok {
			continue
		}
		if t, ok := v.(T); ok && g.Prop(t) {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Settled returns Gen restricted to values satisfying Prop. An exhausted draw
// yields an empty gopter result.
func (g Generator[T]) Settled() gopter.Gen {
	return gen.RetryUntil(g.Gen, g.Prop, RetryLimit)
}

// Filter restricts g to values that also satisfy keep.
func Filter[T any](g Generator[T], description string, keep func(T) bool) Generator[T] {
	return Generator[T]{
		Gen: g.Gen,
		Prop: func(v T) bool {
			return keep(v) && g.Prop(v)
		},
		Description: description,
	}
}

// Union draws from one of gens, each selected with equal weight.
// A value satisfies the union when it satisfies any member.
// Union panics when gens is empty.
func Union[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		panic("facetgen: Union of no generators")
	}
	weighted := make([]gen.WeightedGen, len(gens))
	props := make([]func(T) bool, len(gens))
	descriptions := make([]string, len(gens))
	for i, g := range gens {
		weighted[i] = gen.WeightedGen{Weight: 1, Gen: g.Gen}
		props[i] = g.Prop
		descriptions[i] = g.Description
	}
	return Generator[T]{
		Gen: gen.Weighted(weighted),
		Prop: func(v T) bool {
			for _, p := range props {
				if p(v) {
					return true
				}
			}
			return false
		},
		Description: strings.Join(descriptions, " | "),
	}
}
