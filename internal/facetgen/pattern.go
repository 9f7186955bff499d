package facetgen

import (
	"fmt"
	"strings"

	"github.com/leanovate/gopter/gen"

	xsdgenerrors "github.com/jacoelho/xsdgen/errors"
	"github.com/jacoelho/xsdgen/internal/pattern"
	"github.com/jacoelho/xsdgen/internal/xmlchar"
)

// UnsupportedPlaceholder is drawn instead of a match for patterns the regex
// generator cannot serve.
const UnsupportedPlaceholder = "unsupported-pattern"

// engineeringUnitPattern makes the regex generator blow up on its nested optional groups.
const engineeringUnitPattern = `[+-]?[0-9]+(\.[0-9]+)?([eE][+-]?[0-9]+)?\s?[yzafpnumcdhkMGTPEZY]?[A-Za-z]+`

// Unsupported reports whether generation for p is replaced by UnsupportedPlaceholder.
func Unsupported(p string) bool {
	switch {
	case strings.Contains(p, ".*.*"):
		return true
	case strings.Contains(p, ":") && strings.Contains(p, "|"):
		return true
	default:
		return p == engineeringUnitPattern
	}
}

// Patterns generates values matching at least one pattern of list.
func Patterns(list []string) (Generator[string], error) {
	if len(list) == 0 {
		return Generator[string]{}, xsdgenerrors.New(xsdgenerrors.ErrPatternSyntax, "pattern", "empty pattern list")
	}
	branches := make([]Generator[string], 0, len(list))
	for _, p := range list {
		g, err := patternGenerator(p)
		if err != nil {
			return Generator[string]{}, err
		}
		branches = append(branches, g)
	}
	return Union(branches...), nil
}

// PatternSteps builds one generator per non-empty pattern list.
func PatternSteps(steps [][]string) ([]Generator[string], error) {
	var out []Generator[string]
	for _, list := range steps {
		if len(list) == 0 {
			continue
		}
		g, err := Patterns(list)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

func patternGenerator(p string) (Generator[string], error) {
	compiled, err := pattern.Compile(p)
	if Unsupported(p) {
		// The placeholder stands in for a match; untranslatable patterns accept nothing else.
		return Generator[string]{
			Gen: gen.Const(UnsupportedPlaceholder),
			Prop: func(v string) bool {
				return v == UnsupportedPlaceholder || (err == nil && compiled.MatchString(v))
			},
			Description: fmt.Sprintf("pattern %q (unsupported)", p),
		}, nil
	}
	if err != nil {
		return Generator[string]{}, xsdgenerrors.Wrap(xsdgenerrors.ErrPatternSyntax, "pattern", "invalid pattern", err)
	}
	return Generator[string]{
		Gen: gen.RegexMatch(compiled.GenPattern),
		Prop: func(v string) bool {
			return xmlchar.IsLegalString(v) && compiled.MatchString(v)
		},
		Description: fmt.Sprintf("pattern %q", p),
	}, nil
}
