package pattern

import (
	"regexp/syntax"
	"unicode"

	"github.com/jacoelho/xsdgen/internal/xmlchar"
)

var (
	legalRanges = tablePairs(xmlchar.Legal)
	// printableRanges is legalRanges without tab, line feed and carriage return.
	printableRanges = intersectRanges(legalRanges, []rune{0x20, unicode.MaxRune})
	anyCharRanges   = []rune{0, unicode.MaxRune}
	anyNotNLRanges  = []rune{0, '\n' - 1, '\n' + 1, unicode.MaxRune}
)

// generationForm rewrites goPattern so every character class holds only XML
// characters. Tab, line feed and carriage return are kept only in classes
// that hold nothing else. The result matches a subset of goPattern.
func generationForm(goPattern string) (string, error) {
	re, err := syntax.Parse(goPattern, syntax.Perl)
	if err != nil {
		return "", err
	}
	restrictClasses(re)
	return re.String(), nil
}

func restrictClasses(re *syntax.Regexp) {
	switch re.Op {
	case syntax.OpAnyChar:
		re.Op, re.Rune = syntax.OpCharClass, drawable(anyCharRanges)
	case syntax.OpAnyCharNotNL:
		re.Op, re.Rune = syntax.OpCharClass, drawable(anyNotNLRanges)
	case syntax.OpCharClass:
		re.Rune = drawable(re.Rune)
	}
	for _, sub := range re.Sub {
		restrictClasses(sub)
	}
}

// drawable narrows class to printableRanges, then to legalRanges. A class
// with no legal character is left as is.
func drawable(class []rune) []rune {
	if r := intersectRanges(class, printableRanges); len(r) > 0 {
		return r
	}
	if r := intersectRanges(class, legalRanges); len(r) > 0 {
		return r
	}
	return class
}

// intersectRanges intersects two sorted lists of inclusive [lo, hi] pairs.
func intersectRanges(a, b []rune) []rune {
	var out []rune
	for i, j := 0, 0; i+1 < len(a) && j+1 < len(b); {
		lo, hi := max(a[i], b[j]), min(a[i+1], b[j+1])
		if lo <= hi {
			out = append(out, lo, hi)
		}
		if a[i+1] < b[j+1] {
			i += 2
		} else {
			j += 2
		}
	}
	return out
}

func tablePairs(t *unicode.RangeTable) []rune {
	var out []rune
	add := func(lo, hi, stride rune) {
		if stride == 1 {
			out = append(out, lo, hi)
			return
		}
		for r := lo; r <= hi; r += stride {
			out = append(out, r, r)
		}
	}
	for _, r := range t.R16 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range t.R32 {
		add(rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return out
}
