// Package facetfile reads facet documents that declare restricted simple types.
package facetfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/facets"
	"github.com/jacoelho/xsdgen/internal/whitespace"
)

// Format selects the document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension. Unknown extensions are YAML.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

// Document is a list of restricted types.
type Document struct {
	Types []Type `yaml:"types" json:"types"`
}

// Type is one named restriction of a built-in base type.
type Type struct {
	Name   string `yaml:"name" json:"name"`
	Base   string `yaml:"base" json:"base"`
	Facets Facets `yaml:"facets" json:"facets"`
}

// Facets is the encoded form of facets.Set.
type Facets struct {
	WhiteSpace   string     `yaml:"whiteSpace,omitempty" json:"whiteSpace,omitempty"`
	Length       *int       `yaml:"length,omitempty" json:"length,omitempty"`
	MinLength    *int       `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength    *int       `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinInclusive *string    `yaml:"minInclusive,omitempty" json:"minInclusive,omitempty"`
	MinExclusive *string    `yaml:"minExclusive,omitempty" json:"minExclusive,omitempty"`
	MaxInclusive *string    `yaml:"maxInclusive,omitempty" json:"maxInclusive,omitempty"`
	MaxExclusive *string    `yaml:"maxExclusive,omitempty" json:"maxExclusive,omitempty"`
	Patterns     [][]string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Enumeration  []string   `yaml:"enumeration,omitempty" json:"enumeration,omitempty"`
}

// Set converts f to a facets.Set.
func (f Facets) Set() (facets.Set, error) {
	s := facets.Set{
		Length:       f.Length,
		MinLength:    f.MinLength,
		MaxLength:    f.MaxLength,
		MinInclusive: f.MinInclusive,
		MinExclusive: f.MinExclusive,
		MaxInclusive: f.MaxInclusive,
		MaxExclusive: f.MaxExclusive,
		Patterns:     f.Patterns,
		Enumeration:  f.Enumeration,
	}
	if f.WhiteSpace != "" {
		mode, err := whitespace.ParseMode(f.WhiteSpace)
		if err != nil {
			return facets.Set{}, xsdgenerrors.Wrap(xsdgenerrors.ErrFacetDocument, "whiteSpace", "decode facets", err)
		}
		s.WhiteSpace = &mode
	}
	return s, nil
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, xsdgenerrors.Wrap(xsdgenerrors.ErrFacetDocument, "", "read "+path, err)
	}
	doc, err := Parse(bytes.NewReader(data), FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document from r. Unknown fields are rejected and every type
// must carry a unique name and a base.
func Parse(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, xsdgenerrors.Wrap(xsdgenerrors.ErrFacetDocument, "", "decode yaml", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, xsdgenerrors.Wrap(xsdgenerrors.ErrFacetDocument, "", "decode json", err)
		}
	default:
		return nil, xsdgenerrors.Newf(xsdgenerrors.ErrFacetDocument, "", "unknown format %q", format)
	}
	if err := doc.validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) validate() error {
	seen := make(map[string]struct{}, len(d.Types))
	for i, t := range d.Types {
		if t.Name == "" {
			return xsdgenerrors.Newf(xsdgenerrors.ErrFacetDocument, "", "types[%d]: missing name", i)
		}
		if t.Base == "" {
			return xsdgenerrors.Newf(xsdgenerrors.ErrFacetDocument, "", "type %q: missing base", t.Name)
		}
		if _, dup := seen[t.Name]; dup {
			return xsdgenerrors.Newf(xsdgenerrors.ErrFacetDocument, "", "duplicate type %q", t.Name)
		}
		seen[t.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the type with the given name.
func (d *Document) Lookup(name string) (Type, bool) {
	for _, t := range d.Types {
		if t.Name == name {
			return t, true
		}
	}
	return Type{}, false
}
