package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// maxRepeat is the largest repeat count RE2 accepts.
	maxRepeat = 1000
	// XSD \d is Unicode Nd, not ASCII digits.
	digitClassContent = `\p{Nd}`
	digitClass        = "[" + digitClassContent + "]"
	notDigitClass     = "[^" + digitClassContent + "]"
	wordClass         = `[^\p{P}\p{Z}\p{C}]`
	notWordClass      = `[\p{P}\p{Z}\p{C}]`
	spaceClassContent = `\x20\t\n\r`
	spaceClass        = "[" + spaceClassContent + "]"
	notSpaceClass     = "[^" + spaceClassContent + "]"
	// XML 1.0 NameStartChar and NameChar (XSD \i and \c).
	nameStartContent = `:A-Z_a-z` +
		`\x{C0}-\x{D6}\x{D8}-\x{F6}\x{F8}-\x{2FF}\x{370}-\x{37D}\x{37F}-\x{1FFF}` +
		`\x{200C}-\x{200D}\x{2070}-\x{218F}\x{2C00}-\x{2FEF}\x{3001}-\x{D7FF}` +
		`\x{F900}-\x{FDCF}\x{FDF0}-\x{FFFD}\x{10000}-\x{EFFFF}`
	nameContent = nameStartContent +
		`\-.\x30-\x39\x{B7}\x{0300}-\x{036F}\x{203F}-\x{2040}`
	nameStartClass    = "[" + nameStartContent + "]"
	nameClass         = "[" + nameContent + "]"
	notNameStartClass = "[^" + nameStartContent + "]"
	notNameClass      = "[^" + nameContent + "]"
)

func syntaxErrorf(format string, args ...any) error {
	return fmt.Errorf("pattern-syntax-error: "+format, args...)
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("pattern-unsupported: "+format, args...)
}

// Translate converts an XSD 1.0 regular expression to an anchored RE2 expression.
// Constructs RE2 cannot express are rejected rather than approximated.
func Translate(xsd string) (string, error) {
	if xsd == "" {
		return `^(?:)$`, nil
	}
	return newTranslator(xsd).run()
}

type step func(*translator) (bool, error)

var (
	classSteps = []step{
		(*translator).closeClass,
		(*translator).rejectSubtraction,
		(*translator).classDash,
	}
	outsideSteps = []step{
		(*translator).repeat,
		(*translator).meta,
		(*translator).rejectGroupPrefix,
	}
)

type translator struct {
	src        string
	out        strings.Builder
	class      classBuilder
	pos        int
	groups     int
	quantified bool
}

func newTranslator(src string) *translator {
	t := &translator{src: src}
	t.out.Grow(len(src) * 4)
	return t
}

func (t *translator) run() (string, error) {
	for t.pos < len(t.src) {
		if handled, err := t.escape(); err != nil {
			return "", err
		} else if handled {
			continue
		}

		if t.class.open {
			if handled, err := t.runSteps(classSteps); err != nil {
				return "", err
			} else if handled {
				continue
			}
			if err := t.classChar(); err != nil {
				return "", err
			}
			continue
		}

		if handled, err := t.openClass(); err != nil {
			return "", err
		} else if handled {
			continue
		}
		if err := t.rejectLazy(); err != nil {
			return "", err
		}
		if handled, err := t.runSteps(outsideSteps); err != nil {
			return "", err
		} else if handled {
			continue
		}
		if err := t.trackGroup(); err != nil {
			return "", err
		}

		t.out.WriteByte(t.src[t.pos])
		t.pos++
		t.quantified = false
	}

	if t.class.open {
		return "", syntaxErrorf("unclosed character class")
	}
	if t.groups > 0 {
		return "", syntaxErrorf("unclosed '(' in pattern")
	}
	return `^(?:` + t.out.String() + `)$`, nil
}

func (t *translator) runSteps(steps []step) (bool, error) {
	for _, s := range steps {
		handled, err := s(t)
		if err != nil {
			return true, err
		}
		if handled {
			return true, nil
		}
	}
	return false, nil
}

func (t *translator) emit(s string, quantifier bool) {
	t.out.WriteString(s)
	t.pos++
	t.quantified = quantifier
}

func (t *translator) meta() (bool, error) {
	switch t.src[t.pos] {
	case '^':
		t.emit(`\^`, false)
	case '$':
		t.emit(`\$`, false)
	case '.':
		t.emit(`[^\n\r]`, false)
	case '*', '+', '?':
		t.emit(string(t.src[t.pos]), true)
	case ']':
		return true, syntaxErrorf("']' is not valid outside a character class")
	default:
		return false, nil
	}
	return true, nil
}

func (t *translator) rejectLazy() error {
	if !t.quantified {
		return nil
	}
	if t.src[t.pos] == '?' {
		start := max(t.pos-2, 0)
		end := min(t.pos+1, len(t.src))
		return unsupportedf("non-greedy quantifier not supported in XSD 1.0 (e.g., %q)", t.src[start:end])
	}
	t.quantified = false
	return nil
}

func (t *translator) repeat() (bool, error) {
	if t.src[t.pos] != '{' {
		return false, nil
	}
	quantifier, next, err := parseRepeat(t.src, t.pos)
	if err != nil {
		return true, err
	}
	t.out.WriteString(quantifier)
	t.pos = next
	if t.pos < len(t.src) && t.src[t.pos] == '?' {
		start := max(t.pos-10, 0)
		end := min(t.pos+1, len(t.src))
		return true, unsupportedf("non-greedy quantifier not supported in XSD 1.0 (e.g., %q)", t.src[start:end])
	}
	t.quantified = true
	return true, nil
}

func (t *translator) rejectGroupPrefix() (bool, error) {
	if t.src[t.pos] != '(' || t.pos+1 >= len(t.src) || t.src[t.pos+1] != '?' {
		return false, nil
	}
	end := t.pos + 2
	for end < len(t.src) && t.src[end] != ')' && t.src[end] != ':' {
		end++
	}
	return true, syntaxErrorf("group prefix (?%s) is not valid XSD 1.0 syntax", t.src[t.pos+2:end])
}

func (t *translator) trackGroup() error {
	switch t.src[t.pos] {
	case '(':
		t.groups++
	case ')':
		if t.groups == 0 {
			return syntaxErrorf("unbalanced ')' in pattern")
		}
		t.groups--
	}
	return nil
}

// parseRepeat validates {m}, {m,} or {m,n} starting at start.
func parseRepeat(src string, start int) (string, int, error) {
	end := start + 1
	for end < len(src) && src[end] != '}' {
		end++
	}
	if end >= len(src) {
		return "", start, syntaxErrorf("unclosed repeat quantifier")
	}

	body := src[start+1 : end]
	lo, hi, hasMax, err := parseRepeatBody(body)
	if err != nil {
		return "", start, err
	}
	if lo < 0 {
		return "", start, syntaxErrorf("repeat quantifier min must be non-negative")
	}
	if hasMax && hi < lo {
		return "", start, syntaxErrorf("repeat quantifier max must be >= min")
	}
	if lo > maxRepeat || (hasMax && hi > maxRepeat) {
		return "", start, unsupportedf("repeat {%s} exceeds RE2 limit of %d", body, maxRepeat)
	}
	return src[start : end+1], end + 1, nil
}

func parseRepeatBody(body string) (lo, hi int, hasMax bool, err error) {
	minPart, maxPart, ranged := strings.Cut(body, ",")
	lo, err = strconv.Atoi(strings.TrimSpace(minPart))
	if err != nil {
		return 0, 0, false, syntaxErrorf("invalid repeat quantifier {%s}", body)
	}
	if !ranged {
		return lo, lo, true, nil
	}
	maxPart = strings.TrimSpace(maxPart)
	if maxPart == "" {
		return lo, 0, false, nil
	}
	hi, err = strconv.Atoi(maxPart)
	if err != nil {
		return 0, 0, false, syntaxErrorf("invalid repeat quantifier max in {%s}", body)
	}
	return lo, hi, true, nil
}
