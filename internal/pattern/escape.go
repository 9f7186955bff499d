package pattern

import (
	"regexp"
	"strings"
)

func (t *translator) escape() (bool, error) {
	if t.src[t.pos] != '\\' {
		return false, nil
	}
	if t.pos+1 >= len(t.src) {
		return true, syntaxErrorf("escape sequence at end of pattern")
	}
	next := t.src[t.pos+1]

	switch next {
	case 'u':
		return true, syntaxErrorf("\\u escape is not valid XSD 1.0 syntax (use a character reference instead)")
	case 'p', 'P':
		translated, end, err := translateProperty(t.src, t.pos, t.class.open)
		if err != nil {
			return true, err
		}
		t.writeMulti(translated)
		t.pos = end
		t.quantified = false
		return true, nil
	case 'A', 'Z', 'z', 'B':
		return true, syntaxErrorf("\\%c is not valid XSD 1.0 syntax (XSD patterns are implicitly anchored)", next)
	}

	if handled, err := t.classEscape(next); handled {
		return true, err
	}
	if handled, err := t.singleCharEscape(next); handled {
		return true, err
	}
	if next >= '0' && next <= '9' {
		return true, syntaxErrorf("\\%c backreference is not valid XSD 1.0 syntax", next)
	}
	return true, syntaxErrorf("\\%c is not a valid XSD 1.0 escape sequence", next)
}

// writeMulti emits a multi-character escape either into the open class or the output.
func (t *translator) writeMulti(content string) {
	if t.class.open {
		t.class.buf.WriteString(content)
		t.class.markNonChar()
		return
	}
	t.out.WriteString(content)
}

// classEscape handles \d \D \s \S \w \W \i \I \c \C.
func (t *translator) classEscape(next byte) (bool, error) {
	c := &t.class
	switch next {
	case 'd':
		t.writeClass(digitClassContent, digitClass)
	case 'D':
		t.setClassFlag(&c.hasNotDigit, notDigitClass)
	case 's':
		t.writeClass(spaceClassContent, spaceClass)
	case 'S':
		if c.open && c.negated {
			return true, unsupportedf("\\S inside negated character class not expressible in RE2")
		}
		t.setClassFlag(&c.hasNotSpace, notSpaceClass)
	case 'w':
		if c.open && c.negated {
			return true, unsupportedf("\\w inside negated character class not expressible in RE2")
		}
		t.setClassFlag(&c.hasWord, wordClass)
	case 'W':
		t.writeClass(`\p{P}\p{Z}\p{C}`, notWordClass)
	case 'i':
		t.writeClass(nameStartContent, nameStartClass)
	case 'I':
		t.setClassFlag(&c.hasNotStart, notNameStartClass)
	case 'c':
		t.writeClass(nameContent, nameClass)
	case 'C':
		t.setClassFlag(&c.hasNotNameCh, notNameClass)
	default:
		return false, nil
	}
	t.pos += 2
	t.quantified = false
	return true, nil
}

func (t *translator) writeClass(inClass, outside string) {
	if t.class.open {
		t.writeMulti(inClass)
		return
	}
	t.out.WriteString(outside)
}

// setClassFlag defers negated escapes inside a class; RE2 cannot nest them.
func (t *translator) setClassFlag(flag *bool, outside string) {
	if t.class.open {
		*flag = true
		t.class.markNonChar()
		return
	}
	t.out.WriteString(outside)
}

// singleCharEscape handles control escapes and escaped metacharacters.
func (t *translator) singleCharEscape(next byte) (bool, error) {
	var r rune
	switch next {
	case 'n':
		r = '\n'
	case 'r':
		r = '\r'
	case 't':
		r = '\t'
	case 'f':
		r = '\f'
	case 'v':
		r = '\v'
	case 'a':
		r = '\a'
	case 'b':
		if !t.class.open {
			return true, syntaxErrorf("\\b (word boundary) is not valid XSD 1.0 syntax")
		}
		r = '\b'
	case '\\', '[', ']', '(', ')', '{', '}', '*', '+', '?', '|', '^', '$', '.', '-':
		r = rune(next)
	default:
		return false, nil
	}

	escaped := `\` + string(next)
	if next == 'b' {
		// RE2 has no backspace escape
		escaped = `\x08`
	}
	if t.class.open {
		if err := t.class.char(r, t.src); err != nil {
			return true, err
		}
		t.class.buf.WriteString(escaped)
	} else {
		t.out.WriteString(escaped)
	}
	t.pos += 2
	t.quantified = false
	return true, nil
}

// translateProperty translates \p{...} or \P{...} starting at start.
func translateProperty(src string, start int, inClass bool) (string, int, error) {
	if start+2 >= len(src) || src[start+2] != '{' {
		return "", start, syntaxErrorf("invalid Unicode property escape")
	}
	end := strings.IndexByte(src[start+3:], '}')
	if end < 0 {
		return "", start, syntaxErrorf("incomplete Unicode property escape")
	}
	end += start + 3
	name := src[start+3 : end]

	if strings.HasPrefix(name, "Is") || strings.HasPrefix(name, "In") {
		return "", start, unsupportedf("Unicode block escape %q not supported by Go regexp", `\p{`+name+`}`)
	}
	probe := `\p{` + name + `}`
	if inClass {
		probe = `[` + probe + `]`
	}
	if _, err := regexp.Compile(probe); err != nil {
		return "", start, unsupportedf("Unicode property %q not supported by Go regexp", name)
	}
	return `\` + string(src[start+1]) + `{` + name + `}`, end + 1, nil
}
