package facetfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

const yamlDoc = `
types:
  - name: sku
    base: xs:token
    facets:
      patterns:
        - ['[A-Z]{3}-\d{4}']
      maxLength: 8
  - name: percent
    base: decimal
    facets:
      minInclusive: "0"
      maxExclusive: "100"
      whiteSpace: collapse
`

const jsonDoc = `{
  "types": [
    {"name": "sku", "base": "xs:token", "facets": {"patterns": [["[A-Z]{3}-\\d{4}"]], "maxLength": 8}},
    {"name": "percent", "base": "decimal", "facets": {"minInclusive": "0", "maxExclusive": "100", "whiteSpace": "collapse"}}
  ]
}`

func wantDocument() *Document {
	return &Document{Types: []Type{
		{
			Name: "sku",
			Base: "xs:token",
			Facets: Facets{
				Patterns:  [][]string{{`[A-Z]{3}-\d{4}`}},
				MaxLength: facets.Ptr(8),
			},
		},
		{
			Name: "percent",
			Base: "decimal",
			Facets: Facets{
				MinInclusive: facets.Ptr("0"),
				MaxExclusive: facets.Ptr("100"),
				WhiteSpace:   "collapse",
			},
		},
	}}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{name: "yaml", input: yamlDoc, format: FormatYAML},
		{name: "json", input: jsonDoc, format: FormatJSON},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse(strings.NewReader(tc.input), tc.format)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(wantDocument(), got); diff != "" {
				t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{name: "unknown yaml field", input: "types:\n  - name: a\n    base: int\n    facets:\n      totalDigits: 3\n", format: FormatYAML},
		{name: "unknown json field", input: `{"types": [], "extra": 1}`, format: FormatJSON},
		{name: "missing name", input: "types:\n  - base: int\n", format: FormatYAML},
		{name: "missing base", input: "types:\n  - name: a\n", format: FormatYAML},
		{name: "duplicate", input: "types:\n  - {name: a, base: int}\n  - {name: a, base: byte}\n", format: FormatYAML},
		{name: "malformed json", input: `{"types": [`, format: FormatJSON},
		{name: "unknown format", input: "", format: "toml"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(strings.NewReader(tc.input), tc.format)
			if !xsdgenerrors.HasCode(err, xsdgenerrors.ErrFacetDocument) {
				t.Fatalf("Parse() error = %v, want facet document error", err)
			}
		})
	}
}

func TestParseEmptyYAML(t *testing.T) {
	t.Parallel()

	doc, err := Parse(strings.NewReader(""), FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Types) != 0 {
		t.Fatalf("Parse() types = %d, want 0", len(doc.Types))
	}
}

func TestFacetsSet(t *testing.T) {
	t.Parallel()

	doc := wantDocument()
	got, err := doc.Types[1].Facets.Set()
	if err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	want := facets.Set{
		WhiteSpace:   facets.Ptr(whitespace.Collapse),
		MinInclusive: facets.Ptr("0"),
		MaxExclusive: facets.Ptr("100"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Set() mismatch (-want +got):\n%s", diff)
	}

	_, err = Facets{WhiteSpace: "squash"}.Set()
	if !xsdgenerrors.HasCode(err, xsdgenerrors.ErrFacetDocument) {
		t.Fatalf("Set() error = %v, want facet document error", err)
	}
}

func TestLoadPicksFormatFromExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for name, content := range map[string]string{"types.yaml": yamlDoc, "types.json": jsonDoc} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		doc, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) error = %v", name, err)
		}
		if _, ok := doc.Lookup("percent"); !ok {
			t.Fatalf("Load(%s) missing type percent", name)
		}
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	if !xsdgenerrors.HasCode(err, xsdgenerrors.ErrFacetDocument) {
		t.Fatalf("Load(missing) error = %v, want facet document error", err)
	}
}

func TestFormatFor(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"a.json": FormatJSON,
		"a.JSON": FormatJSON,
		"a.yaml": FormatYAML,
		"a.yml":  FormatYAML,
		"a":      FormatYAML,
	}
	for path, want := range tests {
		if got := FormatFor(path); got != want {
			t.Fatalf("FormatFor(%q) = %q, want %q", path, got, want)
		}
	}
}
