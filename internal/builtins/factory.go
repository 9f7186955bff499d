// Package builtins maps XSD built-in simple types to facet-aware generators.
package builtins

import (
	"math"
	"math/big"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/facetgen"
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/lexical"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

const (
	// weight of values near zero against the whole value space
	smallValueWeight = 3
	smallSpan        = 1000
	decimalSpan      = 1_000_000_000_000_000
	// MaxDecimalScale is the largest supported Limits.DecimalScale.
	MaxDecimalScale = 9
)

// Limits bounds generation where facets leave the value space open.
type Limits struct {
	MinLength    int
	MaxLength    int
	DecimalScale int
}

// DefaultLimits returns the limits used when the caller sets none.
func DefaultLimits() Limits {
	return Limits{MinLength: 0, MaxLength: 16, DecimalScale: 2}
}

// Builtin is a built-in simple type that can build generators.
type Builtin struct {
	build      func(b *Builtin, s facets.Set, limits Limits) (facetgen.Generator[string], error)
	Name       TypeName
	WhiteSpace whitespace.Mode
}

// New builds a generator of lexical values of b restricted by s.
func (b *Builtin) New(s facets.Set, limits Limits) (facetgen.Generator[string], error) {
	if err := s.Validate(); err != nil {
		return facetgen.Generator[string]{}, err
	}
	return b.build(b, s, limits)
}

func buildText(b *Builtin, s facets.Set, limits Limits) (facetgen.Generator[string], error) {
	if err := rejectBounds(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	base, err := facetgen.LengthString(s, limits.MinLength, limits.MaxLength)
	if err != nil {
		return facetgen.Generator[string]{}, err
	}
	return facetgen.ApplyTextFacets(s, b.WhiteSpace, base)
}

func buildAnyURI(b *Builtin, s facets.Set, limits Limits) (facetgen.Generator[string], error) {
	if err := rejectBounds(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	base, err := facetgen.LengthString(s, limits.MinLength, limits.MaxLength)
	if err != nil {
		return facetgen.Generator[string]{}, err
	}
	return facetgen.ApplyTextFacetsCollapsed(s, base)
}

func buildBoolean(b *Builtin, s facets.Set, _ Limits) (facetgen.Generator[string], error) {
	if err := rejectBounds(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	if err := rejectLength(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	base, _ := facetgen.Enumeration([]string{"true", "false", "1", "0"})
	base.Description = string(b.Name)
	return facetgen.ApplyTextFacets(s, b.WhiteSpace, base)
}

func integerBuilder(name string, lo, hi int64) func(*Builtin, facets.Set, Limits) (facetgen.Generator[string], error) {
	d := lexical.Integer(name, lo, hi)
	values := gen.Weighted([]gen.WeightedGen{
		{Weight: smallValueWeight, Gen: gen.Int64Range(max(lo, -smallSpan), min(hi, smallSpan))},
		{Weight: 1, Gen: gen.Int64Range(lo, hi)},
	})
	return func(b *Builtin, s facets.Set, _ Limits) (facetgen.Generator[string], error) {
		if err := rejectLength(b, s); err != nil {
			return facetgen.Generator[string]{}, err
		}
		bounded, err := facetgen.BoundedFacets(values, lexical.Domain[int64](d), s, d.Min(), d.Max())
		if err != nil {
			return facetgen.Generator[string]{}, err
		}
		return facetgen.ApplyTextFacets(s, b.WhiteSpace, bounded)
	}
}

func buildFloat(b *Builtin, s facets.Set, _ Limits) (facetgen.Generator[string], error) {
	if err := rejectLength(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	d := lexical.Double()
	if b.Name == TypeNameFloat {
		d = lexical.Float()
	}
	values := floatValues(d.Bits())
	var base facetgen.Generator[string]
	if s.HasBounds() {
		var err error
		base, err = facetgen.BoundedFacets(values, lexical.Domain[float64](d), s, math.Inf(-1), math.Inf(1))
		if err != nil {
			return facetgen.Generator[string]{}, err
		}
	} else {
		base = facetgen.Lexical(values, lexical.Domain[float64](d))
	}
	return facetgen.ApplyTextFacets(s, b.WhiteSpace, base)
}

func floatValues(bits int) gopter.Gen {
	round := func(v float64) float64 { return v }
	whole := gen.Float64()
	if bits == 32 {
		round = func(v float64) float64 { return float64(float32(v)) }
		whole = gen.Float32().Map(func(v float32) float64 { return float64(v) })
	}
	return gen.Weighted([]gen.WeightedGen{
		{Weight: smallValueWeight, Gen: gen.Float64Range(-smallSpan, smallSpan).Map(round)},
		{Weight: 1, Gen: whole},
		{Weight: 1, Gen: gen.OneConstOf(math.Inf(1), math.Inf(-1), math.NaN(), 0.0)},
	})
}

func buildDecimal(b *Builtin, s facets.Set, limits Limits) (facetgen.Generator[string], error) {
	if err := rejectLength(b, s); err != nil {
		return facetgen.Generator[string]{}, err
	}
	d := lexical.Decimal(min(limits.DecimalScale, MaxDecimalScale))
	denom := int64(math.Pow10(d.Scale()))
	values := gen.Weighted([]gen.WeightedGen{
		{Weight: smallValueWeight, Gen: gen.Int64Range(-smallSpan*denom, smallSpan*denom)},
		{Weight: 1, Gen: gen.Int64Range(-decimalSpan, decimalSpan)},
	}).Map(func(n int64) *big.Rat { return big.NewRat(n, denom) })

	if !s.HasBounds() {
		return facetgen.ApplyTextFacets(s, b.WhiteSpace, facetgen.Lexical(values, lexical.Domain[*big.Rat](d)))
	}
	lo, hi := decimalDefaults(d, s)
	base, err := facetgen.BoundedFacets(values, lexical.Domain[*big.Rat](d), s, lo, hi)
	if err != nil {
		return facetgen.Generator[string]{}, err
	}
	return facetgen.ApplyTextFacets(s, b.WhiteSpace, base)
}

// decimalDefaults keeps the open side of a half-bounded range decimalSpan
// beyond the declared side.
func decimalDefaults(d lexical.DecimalDomain, s facets.Set) (*big.Rat, *big.Rat) {
	span := big.NewRat(decimalSpan, 1)
	lo, hi := new(big.Rat).Neg(span), new(big.Rat).Set(span)
	if v, ok := parseEither(d, s.MinInclusive, s.MinExclusive); ok && v.Cmp(hi) >= 0 {
		hi.Add(v, span)
	}
	if v, ok := parseEither(d, s.MaxInclusive, s.MaxExclusive); ok && v.Cmp(lo) <= 0 {
		lo.Sub(v, span)
	}
	return lo, hi
}

func parseEither(d lexical.DecimalDomain, inclusive, exclusive *string) (*big.Rat, bool) {
	lexicalForm := inclusive
	if lexicalForm == nil {
		lexicalForm = exclusive
	}
	if lexicalForm == nil {
		return nil, false
	}
	v, err := d.Parse(*lexicalForm)
	return v, err == nil
}

func rejectBounds(b *Builtin, s facets.Set) error {
	if s.HasBounds() {
		return xsdgenerrors.Newf(xsdgenerrors.ErrFacetConflict, "minInclusive",
			"ordering facets do not apply to %s", b.Name)
	}
	return nil
}

func rejectLength(b *Builtin, s facets.Set) error {
	if s.HasLength() {
		return xsdgenerrors.Newf(xsdgenerrors.ErrFacetConflict, "length",
			"length facets do not apply to %s", b.Name)
	}
	return nil
}
