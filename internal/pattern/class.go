package pattern

import (
	"strings"
	"unicode/utf8"
)

// classBuilder accumulates one bracketed character class.
type classBuilder struct {
	buf strings.Builder
	classState
}

type classState struct {
	start        int
	last         rune
	open         bool
	negated      bool
	first        bool
	lastRange    bool
	lastDash     bool
	lastIsChar   bool
	hasWord      bool
	hasNotSpace  bool
	hasNotDigit  bool
	hasNotStart  bool
	hasNotNameCh bool
}

func (c *classBuilder) reset(start int) {
	c.buf.Reset()
	c.classState = classState{start: start, open: true, first: true}
}

func (c *classBuilder) hasNegatedEscape() bool {
	return c.hasWord || c.hasNotSpace || c.hasNotDigit || c.hasNotStart || c.hasNotNameCh
}

// markNonChar records a multi-character escape; a following '-' cannot form a range.
func (c *classBuilder) markNonChar() {
	c.lastDash = false
	c.lastRange = false
	c.lastIsChar = false
	c.first = false
}

func (c *classBuilder) char(r rune, src string) error {
	if c.lastDash {
		if c.last > r {
			return syntaxErrorf("invalid range '%c-%c' (start > end) in character class starting at position %d in %q",
				c.last, r, c.start, src)
		}
		c.lastRange = true
		c.lastDash = false
	} else {
		c.lastRange = false
	}
	c.last = r
	c.lastIsChar = true
	c.first = false
	return nil
}

func (c *classBuilder) literalDash() {
	c.last = '-'
	c.lastRange = false
	c.lastDash = false
	c.lastIsChar = true
	c.first = false
	c.buf.WriteByte('-')
}

func (t *translator) openClass() (bool, error) {
	if t.src[t.pos] != '[' {
		return false, nil
	}
	t.class.reset(t.pos)
	t.pos++
	if t.pos < len(t.src) && t.src[t.pos] == '^' {
		t.class.negated = true
		t.pos++
	}
	return true, nil
}

func (t *translator) closeClass() (bool, error) {
	c := &t.class
	if t.src[t.pos] != ']' {
		return false, nil
	}
	if c.first && !c.hasWord && !c.hasNotSpace && !c.hasNotDigit {
		return true, syntaxErrorf("empty character class")
	}
	content := c.buf.String()
	c.open = false
	t.pos++

	if c.hasNotDigit && c.negated {
		// [^\D] is \d; anything mixed in with it is not expressible.
		if c.hasWord || c.hasNotSpace || c.hasNotStart || c.hasNotNameCh || content != "" {
			return true, unsupportedf("\\D inside negated character class not expressible in RE2")
		}
		t.out.WriteString(digitClass)
		return true, nil
	}

	if !c.hasNegatedEscape() {
		if c.negated {
			t.out.WriteString(`[^` + content + `]`)
		} else {
			t.out.WriteString(`[` + content + `]`)
		}
		return true, nil
	}

	if c.negated {
		return true, unsupportedf("negated character class with \\w, \\S, \\I, or \\C is not expressible in RE2")
	}
	var parts []string
	if c.hasNotDigit {
		parts = append(parts, notDigitClass)
	}
	if c.hasNotStart {
		parts = append(parts, notNameStartClass)
	}
	if c.hasNotNameCh {
		parts = append(parts, notNameClass)
	}
	if c.hasNotSpace {
		parts = append(parts, notSpaceClass)
	}
	if c.hasWord {
		parts = append(parts, wordClass)
	}
	if content != "" {
		parts = append(parts, "["+content+"]")
	}
	if len(parts) == 1 {
		t.out.WriteString(parts[0])
	} else {
		t.out.WriteString(`(?:` + strings.Join(parts, "|") + `)`)
	}
	return true, nil
}

func (t *translator) rejectSubtraction() (bool, error) {
	if t.src[t.pos] == '-' && t.pos+1 < len(t.src) && t.src[t.pos+1] == '[' {
		return true, unsupportedf("character-class subtraction (-[) not supported in %q", t.src)
	}
	return false, nil
}

func (t *translator) classDash() (bool, error) {
	c := &t.class
	if t.src[t.pos] != '-' {
		return false, nil
	}
	// leading or trailing '-' is a literal
	if c.first || (t.pos+1 < len(t.src) && t.src[t.pos+1] == ']') {
		c.literalDash()
		t.pos++
		return true, nil
	}
	switch {
	case c.lastRange:
		return true, syntaxErrorf("'-' cannot follow a range in character class at position %d in %q", t.pos, t.src)
	case c.lastDash:
		return true, syntaxErrorf("consecutive dashes in character class at position %d in %q", t.pos, t.src)
	case !c.lastIsChar:
		return true, syntaxErrorf("'-' cannot follow a non-character item in character class at position %d in %q", t.pos, t.src)
	}
	c.lastDash = true
	c.buf.WriteByte('-')
	t.pos++
	return true, nil
}

func (t *translator) classChar() error {
	if t.src[t.pos] == '[' {
		return unsupportedf("nested character classes not supported")
	}
	r, size := utf8.DecodeRuneInString(t.src[t.pos:])
	if err := t.class.char(r, t.src); err != nil {
		return err
	}
	t.class.buf.WriteString(t.src[t.pos : t.pos+size])
	t.pos += size
	return nil
}
