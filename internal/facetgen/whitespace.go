package facetgen

import (
	"strings"

	"github.com/leanovate/gopter"

	"github.com/jacoelho/xsdgen/internal/whitespace"
)

const (
	spaceWeight     = 6
	keepEdgeWeight  = 4
	singleGapWeight = 4
	maxRun          = 3
)

var whitespaceChars = [...]byte{' ', '\t', '\n', '\r'}

// Denormalize draws values of g canonical under Replace and turns each space
// into a space, tab, line feed or carriage return. Replace maps the result
// back to the drawn value.
func Denormalize(g Generator[string]) Generator[string] {
	canonical := Filter(g, g.Description, whitespace.IsReplaced)
	return Generator[string]{
		Gen:         canonical.Gen.Map(denormalize),
		Prop:        normalizedProp(whitespace.Replace, canonical.Prop),
		Description: g.Description + " (whiteSpace=replace)",
	}
}

// Expand draws values of g canonical under Collapse and widens the gaps
// between tokens, optionally padding both ends. Collapse maps the result back
// to the drawn value.
func Expand(g Generator[string]) Generator[string] {
	canonical := Filter(g, g.Description, whitespace.IsCollapsed)
	return Generator[string]{
		Gen:         canonical.Gen.Map(expand),
		Prop:        normalizedProp(whitespace.Collapse, canonical.Prop),
		Description: g.Description + " (whiteSpace=collapse)",
	}
}

// ApplyWhitespace selects the preimage transform for mode.
func ApplyWhitespace(mode whitespace.Mode, g Generator[string]) Generator[string] {
	switch mode {
	case whitespace.Replace:
		return Denormalize(g)
	case whitespace.Collapse:
		return Expand(g)
	default:
		return g
	}
}

func normalizedProp(mode whitespace.Mode, prop func(string) bool) func(string) bool {
	return func(v string) bool {
		return prop(whitespace.Normalize(mode, v))
	}
}

func denormalize(s string, params *gopter.GenParameters) string {
	if strings.IndexByte(s, ' ') < 0 {
		return s
	}
	out := []byte(s)
	for i, b := range out {
		if b != ' ' {
			continue
		}
		// weight spaceWeight for a space, 1 for each of tab, LF, CR
		if n := params.Rng.Intn(spaceWeight + 3); n >= spaceWeight {
			out[i] = whitespaceChars[n-spaceWeight+1]
		}
	}
	return string(out)
}

func expand(s string, params *gopter.GenParameters) string {
	if s == "" {
		return s
	}
	tokens := strings.Split(s, " ")
	var b strings.Builder
	b.Grow(len(s) + 2*maxRun)
	b.WriteString(edgeRun(params))
	b.WriteString(tokens[0])
	for _, tok := range tokens[1:] {
		b.WriteString(gapRun(params))
		b.WriteString(tok)
	}
	b.WriteString(edgeRun(params))
	return b.String()
}

func edgeRun(params *gopter.GenParameters) string {
	if params.Rng.Intn(keepEdgeWeight+1) < keepEdgeWeight {
		return ""
	}
	return randomRun(params)
}

func gapRun(params *gopter.GenParameters) string {
	if params.Rng.Intn(singleGapWeight+1) < singleGapWeight {
		return " "
	}
	return randomRun(params)
}

// randomRun returns 1 to maxRun whitespace characters.
func randomRun(params *gopter.GenParameters) string {
	n := 1 + params.Rng.Intn(maxRun)
	run := make([]byte, n)
	for i := range run {
		run[i] = whitespaceChars[params.Rng.Intn(len(whitespaceChars))]
	}
	return string(run)
}
