package whitespace

import (
	"fmt"
	"strings"
)

// Mode is the whiteSpace facet value.
type Mode uint8

const (
	// Preserve leaves the value unchanged.
	Preserve Mode = iota
	// Replace maps each tab, line feed, and carriage return to a space.
	Replace
	// Collapse applies Replace, collapses space runs, and trims both ends.
	Collapse
)

// String returns the facet spelling of the mode.
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Collapse:
		return "collapse"
	default:
		return "preserve"
	}
}

// ParseMode parses a whiteSpace facet value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "preserve":
		return Preserve, nil
	case "replace":
		return Replace, nil
	case "collapse":
		return Collapse, nil
	default:
		return Preserve, fmt.Errorf("invalid whiteSpace value %q", s)
	}
}

// Normalize applies the mode to s.
// It returns s unchanged when no normalization is needed.
func Normalize(mode Mode, s string) string {
	switch mode {
	case Replace:
		return replace(s)
	case Collapse:
		return collapse(s)
	default:
		return s
	}
}

// IsReplaced reports whether s is canonical under Replace.
func IsReplaced(s string) bool {
	return strings.IndexAny(s, "\t\n\r") < 0
}

// IsCollapsed reports whether s is canonical under Collapse.
func IsCollapsed(s string) bool {
	return !needsCollapse(s)
}

// IsCanonical reports whether Normalize(mode, s) == s.
func IsCanonical(mode Mode, s string) bool {
	switch mode {
	case Replace:
		return IsReplaced(s)
	case Collapse:
		return IsCollapsed(s)
	default:
		return true
	}
}

// IsXMLWhitespaceByte reports whether the byte is XML whitespace.
func IsXMLWhitespaceByte(b byte) bool {
	if b > ' ' {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func replace(s string) string {
	if IsReplaced(s) {
		return s
	}
	out := []byte(s)
	for i, b := range out {
		if IsXMLWhitespaceByte(b) {
			out[i] = ' '
		}
	}
	return string(out)
}

func collapse(s string) string {
	if !needsCollapse(s) {
		return s
	}
	out := make([]byte, 0, len(s))
	i := 0
	for i < len(s) && IsXMLWhitespaceByte(s[i]) {
		i++
	}
	pendingSpace := false
	for ; i < len(s); i++ {
		b := s[i]
		if IsXMLWhitespaceByte(b) {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(out) > 0 {
			out = append(out, ' ')
		}
		pendingSpace = false
		out = append(out, b)
	}
	return string(out)
}

func needsCollapse(s string) bool {
	if s == "" {
		return false
	}
	if IsXMLWhitespaceByte(s[0]) || IsXMLWhitespaceByte(s[len(s)-1]) {
		return true
	}
	if !IsReplaced(s) {
		return true
	}
	return strings.Contains(s, "  ")
}
