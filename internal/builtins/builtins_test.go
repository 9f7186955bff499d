package builtins

import (
	"math"
	"math/big"
	"strconv"
	"testing"

	"github.com/leanovate/gopter"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/facetgen"
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/whitespace"
	"github.com/jacoelho/xsdgen/internal/xmlchar"
)

func sample(t *testing.T, g facetgen.Generator[string], n int) []string {
	t.Helper()
	params := gopter.DefaultGenParameters().CloneWithSeed(99)
	params.MaxSize = 8
	out := make([]string, 0, n)
	for range n {
		v, ok := g.Draw(params)
		if !ok {
			t.Fatalf("%s: draw exhausted", g.Description)
		}
		if !g.Prop(v) {
			t.Fatalf("%s: drew %q which fails its own predicate", g.Description, v)
		}
		out = append(out, v)
	}
	return out
}

func TestGetReturnsCanonicalBuiltinPointer(t *testing.T) {
	t.Parallel()

	got := Get(TypeNameString)
	if got == nil {
		t.Fatal("Get(string) returned nil")
	}
	if got != Get(TypeNameString) {
		t.Fatal("Get(string) did not return canonical builtin pointer")
	}
}

func TestLookupForms(t *testing.T) {
	t.Parallel()

	for _, ref := range []string{"int", "xs:int", "xsd:int", "{" + XSDNamespace + "}int"} {
		if got := Lookup(ref); got != Get(TypeNameInt) {
			t.Fatalf("Lookup(%q) = %v, want int", ref, got)
		}
	}
	for _, ref := range []string{"", "date", "foo:int", "{urn:other}int", "{" + XSDNamespace + "int"} {
		if got := Lookup(ref); got != nil {
			t.Fatalf("Lookup(%q) = %v, want nil", ref, got.Name)
		}
	}
}

func TestMustGetPanicsOnUnknown(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("MustGet(unknown) did not panic")
		}
	}()
	MustGet("unknown")
}

func TestListIsOrderedAndCopied(t *testing.T) {
	t.Parallel()

	items := List()
	if len(items) == 0 || items[0].Name != TypeNameString {
		t.Fatalf("List()[0] = %v, want string first", items)
	}
	items[0] = nil
	if List()[0] == nil {
		t.Fatal("List() exposed registry storage")
	}
}

func TestEveryBuiltinGeneratesSoundValues(t *testing.T) {
	t.Parallel()

	for _, b := range List() {
		g, err := b.New(facets.Set{}, DefaultLimits())
		if err != nil {
			t.Fatalf("%s.New() error = %v", b.Name, err)
		}
		for _, v := range sample(t, g, 50) {
			if !whitespace.IsCanonical(b.WhiteSpace, whitespace.Normalize(b.WhiteSpace, v)) {
				t.Fatalf("%s: %q does not normalize", b.Name, v)
			}
		}
	}
}

func TestIntegerValueSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name TypeName
		lo   int64
		hi   int64
	}{
		{TypeNameByte, math.MinInt8, math.MaxInt8},
		{TypeNameUnsignedByte, 0, math.MaxUint8},
		{TypeNameNegativeInteger, math.MinInt64, -1},
		{TypeNamePositiveInteger, 1, math.MaxInt64},
		{TypeNameUnsignedLong, 0, math.MaxInt64},
	}
	for _, tc := range tests {
		g, err := MustGet(tc.name).New(facets.Set{}, DefaultLimits())
		if err != nil {
			t.Fatalf("%s.New() error = %v", tc.name, err)
		}
		for _, v := range sample(t, g, 100) {
			n, err := strconv.ParseInt(whitespace.Normalize(whitespace.Collapse, v), 10, 64)
			if err != nil {
				t.Fatalf("%s: %q is not an integer", tc.name, v)
			}
			if n < tc.lo || n > tc.hi {
				t.Fatalf("%s: %d outside [%d, %d]", tc.name, n, tc.lo, tc.hi)
			}
		}
	}
}

func TestIntegerFacets(t *testing.T) {
	t.Parallel()

	s := facets.Set{MinExclusive: facets.Ptr("10"), MaxInclusive: facets.Ptr("20")}
	g, err := MustGet(TypeNameShort).New(s, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, v := range sample(t, g, 200) {
		n, err := strconv.Atoi(whitespace.Normalize(whitespace.Collapse, v))
		if err != nil || n <= 10 || n > 20 {
			t.Fatalf("drew %q, want integer in (10, 20]", v)
		}
	}

	_, err = MustGet(TypeNameByte).New(facets.Set{MaxInclusive: facets.Ptr("300")}, DefaultLimits())
	if !xsdgenerrors.HasCode(err, xsdgenerrors.ErrLexical) {
		t.Fatalf("byte maxInclusive=300 error = %v, want lexical error", err)
	}
}

func TestDecimalFacets(t *testing.T) {
	t.Parallel()

	s := facets.Set{MinInclusive: facets.Ptr("2.5"), MaxExclusive: facets.Ptr("3")}
	g, err := MustGet(TypeNameDecimal).New(s, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	lo, hi := big.NewRat(5, 2), big.NewRat(3, 1)
	for _, v := range sample(t, g, 200) {
		r, ok := new(big.Rat).SetString(whitespace.Normalize(whitespace.Collapse, v))
		if !ok || r.Cmp(lo) < 0 || r.Cmp(hi) >= 0 {
			t.Fatalf("drew %q, want decimal in [2.5, 3)", v)
		}
	}
}

func TestDecimalHalfOpenFarBound(t *testing.T) {
	t.Parallel()

	s := facets.Set{MinInclusive: facets.Ptr("1000000000000000000000")}
	g, err := MustGet(TypeNameDecimal).New(s, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	sample(t, g, 20)
}

func TestFloatFacets(t *testing.T) {
	t.Parallel()

	s := facets.Set{MinInclusive: facets.Ptr("-1"), MaxExclusive: facets.Ptr("1")}
	g, err := MustGet(TypeNameFloat).New(s, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, v := range sample(t, g, 200) {
		f, err := strconv.ParseFloat(whitespace.Normalize(whitespace.Collapse, v), 32)
		if err != nil || f < -1 || f >= 1 {
			t.Fatalf("drew %q, want float in [-1, 1)", v)
		}
	}
}

func TestTextTypes(t *testing.T) {
	t.Parallel()

	s := facets.Set{Length: facets.Ptr(5)}
	for _, name := range []TypeName{TypeNameString, TypeNameNormalizedString, TypeNameToken} {
		b := MustGet(name)
		g, err := b.New(s, DefaultLimits())
		if err != nil {
			t.Fatalf("%s.New() error = %v", name, err)
		}
		for _, v := range sample(t, g, 100) {
			norm := whitespace.Normalize(b.WhiteSpace, v)
			if n := len([]rune(norm)); n != 5 {
				t.Fatalf("%s: normalized %q has length %d, want 5", name, norm, n)
			}
		}
	}
}

func TestTokenWithLongPatterns(t *testing.T) {
	t.Parallel()

	for _, p := range []string{`.{30}`, `\S{20}`, `.{1,255}`} {
		g, err := MustGet(TypeNameToken).New(facets.Set{Patterns: [][]string{{p}}}, DefaultLimits())
		if err != nil {
			t.Fatalf("token{%s}.New() error = %v", p, err)
		}
		for _, v := range sample(t, g, 50) {
			if !xmlchar.IsLegalString(v) {
				t.Fatalf("token{%s} drew illegal %q", p, v)
			}
		}
	}
}

func TestAnyURIStaysCollapsed(t *testing.T) {
	t.Parallel()

	s := facets.Set{Enumeration: []string{"   ", "http://example.com/a"}}
	g, err := MustGet(TypeNameAnyURI).New(s, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, v := range sample(t, g, 100) {
		if !whitespace.IsCollapsed(v) {
			t.Fatalf("anyURI drew %q, want collapsed form", v)
		}
	}
}

func TestBooleanEnumeration(t *testing.T) {
	t.Parallel()

	g, err := MustGet(TypeNameBoolean).New(facets.Set{Patterns: [][]string{{"true|false"}}}, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	for _, v := range sample(t, g, 50) {
		switch whitespace.Normalize(whitespace.Collapse, v) {
		case "true", "false", "1", "0":
		default:
			t.Fatalf("boolean drew %q", v)
		}
	}
}

func TestEnumerationAddsToBaseValues(t *testing.T) {
	t.Parallel()

	g, err := MustGet(TypeNameBoolean).New(facets.Set{Enumeration: []string{"true"}}, DefaultLimits())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	seen := map[string]bool{}
	for _, v := range sample(t, g, 200) {
		seen[whitespace.Normalize(whitespace.Collapse, v)] = true
	}
	if !seen["true"] || !seen["false"] {
		t.Fatalf("boolean{enumeration: true} drew %v, want base values alongside the enumeration", seen)
	}
}

func TestInapplicableFacets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name TypeName
		set  facets.Set
	}{
		{TypeNameString, facets.Set{MinInclusive: facets.Ptr("a")}},
		{TypeNameInt, facets.Set{MaxLength: facets.Ptr(3)}},
		{TypeNameBoolean, facets.Set{Length: facets.Ptr(4)}},
		{TypeNameDouble, facets.Set{MinLength: facets.Ptr(1)}},
	}
	for _, tc := range tests {
		_, err := MustGet(tc.name).New(tc.set, DefaultLimits())
		if !xsdgenerrors.HasCode(err, xsdgenerrors.ErrFacetConflict) {
			t.Fatalf("%s.New() error = %v, want facet conflict", tc.name, err)
		}
	}
}
