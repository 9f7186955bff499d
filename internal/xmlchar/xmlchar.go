// Package xmlchar describes the character repertoire of XML 1.0 text.
package xmlchar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Legal is the XML 1.0 Char production (section 2.2).
var Legal = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x9, Hi: 0xA, Stride: 1},
		{Lo: 0xD, Hi: 0xD, Stride: 1},
		{Lo: 0x20, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xE000, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0x10FFFF, Stride: 1},
	},
}

// Common is the subset of Legal that typical document text is drawn from:
// printable ASCII plus Latin-1 letters.
var Common = rangetable.Merge(
	rangetable.New(asciiPrintable()...),
	latin1Letters(),
)

func asciiPrintable() []rune {
	runes := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r < 0x7F; r++ {
		runes = append(runes, r)
	}
	return runes
}

func latin1Letters() *unicode.RangeTable {
	var runes []rune
	rangetable.Visit(unicode.Latin, func(r rune) {
		if r >= 0xC0 && r <= 0xFF && r != 0xD7 && r != 0xF7 {
			runes = append(runes, r)
		}
	})
	return rangetable.New(runes...)
}

// IsLegal reports whether r is a valid XML 1.0 character.
func IsLegal(r rune) bool {
	switch {
	case r == 0x9 || r == 0xA || r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// IsLegalString reports whether s is valid UTF-8 made only of XML 1.0 characters.
func IsLegalString(s string) bool {
	for i := 0; i < len(s); {
		if s[i] < utf8.RuneSelf {
			if !IsLegal(rune(s[i])) {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if !IsLegal(r) {
			return false
		}
		i += size
	}
	return true
}
