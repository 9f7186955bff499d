package facetgen

import (
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

// ApplyTextFacets unions base with the pattern and enumeration generators of
// s, then applies the whiteSpace preimage transform. The mode is taken from s,
// falling back to defaultMode. Pattern and enumeration values are drawn in
// addition to base values; they do not restrict what base draws.
func ApplyTextFacets(s facets.Set, defaultMode whitespace.Mode, base Generator[string]) (Generator[string], error) {
	union, err := textUnion(s, base)
	if err != nil {
		return Generator[string]{}, err
	}
	return ApplyWhitespace(s.WhiteSpaceOr(defaultMode), union), nil
}

// ApplyTextFacetsCollapsed is ApplyTextFacets for types whose reference
// validator does not collapse all-whitespace values. The union is restricted
// to values already canonical under Collapse instead of being expanded.
func ApplyTextFacetsCollapsed(s facets.Set, base Generator[string]) (Generator[string], error) {
	union, err := textUnion(s, base)
	if err != nil {
		return Generator[string]{}, err
	}
	return Filter(union, union.Description+" (collapsed)", whitespace.IsCollapsed), nil
}

func textUnion(s facets.Set, base Generator[string]) (Generator[string], error) {
	gens, err := PatternSteps(s.Patterns)
	if err != nil {
		return Generator[string]{}, err
	}
	if enum, ok := Enumeration(s.Enumeration); ok {
		gens = append(gens, enum)
	}
	gens = append(gens, base)
	return Union(gens...), nil
}
