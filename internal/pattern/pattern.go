// Package pattern compiles XSD 1.0 pattern facets into Go regular expressions.
package pattern

import (
	"fmt"
	"regexp"
)

// Pattern is a compiled pattern facet. Matching is anchored to the whole value.
type Pattern struct {
	regex     *regexp.Regexp
	Value     string
	GoPattern string
	// GenPattern matches a subset of GoPattern whose character classes
	// draw only XML characters.
	GenPattern string
}

// Compile translates and compiles an XSD pattern.
func Compile(xsd string) (*Pattern, error) {
	goPattern, err := Translate(xsd)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", xsd, err)
	}
	regex, err := regexp.Compile(goPattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: compile %q: %w", xsd, goPattern, err)
	}
	genPattern, err := generationForm(goPattern)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", xsd, err)
	}
	return &Pattern{Value: xsd, GoPattern: goPattern, GenPattern: genPattern, regex: regex}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(xsd string) *Pattern {
	p, err := Compile(xsd)
	if err != nil {
		panic(err)
	}
	return p
}

// MatchString reports whether s matches the pattern in its entirety.
func (p *Pattern) MatchString(s string) bool {
	return p.regex.MatchString(s)
}

// String returns the XSD form of the pattern.
func (p *Pattern) String() string {
	return p.Value
}
