// Package xsdgen generates lexical values of XSD built-in simple types
// restricted by constraining facets.
//
// A Generator only produces values its own predicate accepts. Values are
// drawn deterministically from a seed:
//
//	g, err := xsdgen.New("xs:token", xsdgen.Facets{
//		Patterns: [][]string{{`[A-Z]{3}-\d{4}`}},
//	})
//	if err != nil {
//		return err
//	}
//	v, err := g.Sample(42)
package xsdgen

import (
	"iter"

	"github.com/leanovate/gopter"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/builtins"
	"github.com/jacoelho/xsdgen/internal/facetgen"
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

// Facets holds the constraining facets of a restriction. Nil fields are absent.
type Facets = facets.Set

// WhiteSpace is the value of the whiteSpace facet.
type WhiteSpace = whitespace.Mode

const (
	WhiteSpacePreserve = whitespace.Preserve
	WhiteSpaceReplace  = whitespace.Replace
	WhiteSpaceCollapse = whitespace.Collapse
)

// Ptr returns a pointer to v, for filling optional Facets fields.
func Ptr[T any](v T) *T {
	return &v
}

// Generator draws lexical values of one restricted built-in type.
type Generator struct {
	gen         facetgen.Generator[string]
	typeName    string
	limits      builtins.Limits
	maxDiscards int
}

// New builds a generator for the built-in type named typeName restricted by f.
// typeName may be a local name, an xs: or xsd: prefixed name, or an expanded
// {http://www.w3.org/2001/XMLSchema}name.
func New(typeName string, f Facets, opts ...Options) (*Generator, error) {
	resolved, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	b := builtins.Lookup(typeName)
	if b == nil {
		return nil, xsdgenerrors.Newf(xsdgenerrors.ErrUnknownType, "", "no generator for type %q", typeName)
	}
	g, err := b.New(f, resolved.limits)
	if err != nil {
		return nil, err
	}
	return &Generator{
		gen:         g,
		typeName:    string(b.Name),
		limits:      resolved.limits,
		maxDiscards: resolved.maxDiscards,
	}, nil
}

// Types lists the supported built-in type names.
func Types() []string {
	items := builtins.List()
	names := make([]string, len(items))
	for i, b := range items {
		names[i] = string(b.Name)
	}
	return names
}

// TypeName returns the resolved built-in type name.
func (g *Generator) TypeName() string {
	return g.typeName
}

// Description describes the constraint the generator satisfies.
func (g *Generator) Description() string {
	return g.gen.Description
}

// Check reports whether value satisfies the generator's constraint.
func (g *Generator) Check(value string) bool {
	return g.gen.Prop(value)
}

// Gen returns the underlying gopter generator for use in property tests.
// Its results may be empty when a filter is exhausted.
func (g *Generator) Gen() gopter.Gen {
	return g.gen.Settled()
}

// Sample draws one value from seed.
func (g *Generator) Sample(seed int64) (string, error) {
	return g.draw(g.params(seed))
}

// Values yields an endless deterministic sequence of values drawn from seed.
// The sequence ends early if a draw is exhausted.
func (g *Generator) Values(seed int64) iter.Seq[string] {
	return func(yield func(string) bool) {
		params := g.params(seed)
		for {
			v, err := g.draw(params)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Take draws n values from seed. It yields the same values as the first n of Values(seed).
func (g *Generator) Take(seed int64, n int) ([]string, error) {
	params := g.params(seed)
	out := make([]string, 0, max(n, 0))
	for range n {
		v, err := g.draw(params)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (g *Generator) params(seed int64) *gopter.GenParameters {
	params := gopter.DefaultGenParameters().CloneWithSeed(seed)
	params.MaxSize = g.limits.MaxLength
	return params
}

func (g *Generator) draw(params *gopter.GenParameters) (string, error) {
	for range g.maxDiscards {
		if v, ok := g.gen.Draw(params); ok && g.gen.Prop(v) {
			return v, nil
		}
	}
	return "", xsdgenerrors.Newf(xsdgenerrors.ErrExhausted, "",
		"%s: no value after %d draws", g.gen.Description, g.maxDiscards)
}
