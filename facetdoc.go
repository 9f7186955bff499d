package xsdgen

import (
	"fmt"
	"io"

	"github.com/jacoelho/xsdgen/internal/facetfile"
)

// FacetDocument is a parsed facet document.
type FacetDocument = facetfile.Document

// FacetType is one named restriction in a FacetDocument.
type FacetType = facetfile.Type

// FacetFormat selects the encoding of a facet document.
type FacetFormat = facetfile.Format

const (
	FacetFormatYAML = facetfile.FormatYAML
	FacetFormatJSON = facetfile.FormatJSON
)

// LoadFacetFile reads a facet document. Files ending in .json are JSON,
// anything else is YAML.
func LoadFacetFile(path string) (*FacetDocument, error) {
	return facetfile.Load(path)
}

// ParseFacetDocument decodes a facet document from r.
func ParseFacetDocument(r io.Reader, format FacetFormat) (*FacetDocument, error) {
	return facetfile.Parse(r, format)
}

// NewFromFacetType builds a generator for a type declared in a facet document.
func NewFromFacetType(t FacetType, opts ...Options) (*Generator, error) {
	f, err := t.Facets.Set()
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", t.Name, err)
	}
	g, err := New(t.Base, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", t.Name, err)
	}
	return g, nil
}
