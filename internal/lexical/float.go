package lexical

import (
	"cmp"
	"errors"
	"math"
	"strconv"
)

// FloatDomain is xs:float or xs:double.
type FloatDomain struct {
	name string
	bits int
}

// Double returns the xs:double domain.
func Double() FloatDomain { return FloatDomain{name: "double", bits: 64} }

// Float returns the xs:float domain. Values are float32 held in a float64.
func Float() FloatDomain { return FloatDomain{name: "float", bits: 32} }

// Name returns the XSD type name.
func (d FloatDomain) Name() string { return d.name }

// Bits returns the IEEE 754 width of the domain.
func (d FloatDomain) Bits() int { return d.bits }

// Parse parses an XSD float/double lexical form, including INF, -INF and NaN.
func (d FloatDomain) Parse(lexical string) (float64, error) {
	switch lexical {
	case "":
		return 0, fail(d.name, lexical, ParseEmpty)
	case "INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !isFloatLexical(lexical) {
		return 0, fail(d.name, lexical, ParseBadChar)
	}
	f, err := strconv.ParseFloat(lexical, d.bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fail(d.name, lexical, ParseBadChar)
	}
	return f, nil
}

// Format returns the canonical lexical form.
func (d FloatDomain) Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	}
	return strconv.FormatFloat(v, 'E', -1, d.bits)
}

// Compare orders two values; NaN sorts before every other value.
func (d FloatDomain) Compare(a, b float64) int {
	return cmp.Compare(a, b)
}

// Succ returns the next representable value towards +INF.
func (d FloatDomain) Succ(v float64) (float64, bool) {
	return d.step(v, math.Inf(1))
}

// Pred returns the next representable value towards -INF.
func (d FloatDomain) Pred(v float64) (float64, bool) {
	return d.step(v, math.Inf(-1))
}

func (d FloatDomain) step(v, toward float64) (float64, bool) {
	if math.IsNaN(v) || v == toward {
		return 0, false
	}
	if d.bits == 32 {
		return float64(math.Nextafter32(float32(v), float32(toward))), true
	}
	return math.Nextafter(v, toward), true
}

func isFloatLexical(value string) bool {
	i := 0
	if value[i] == '+' || value[i] == '-' {
		i++
		if i == len(value) {
			return false
		}
	}
	startDigits := 0
	for i < len(value) && isDigit(value[i]) {
		i++
		startDigits++
	}
	if i < len(value) && value[i] == '.' {
		i++
		fracDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			fracDigits++
		}
		if startDigits == 0 && fracDigits == 0 {
			return false
		}
	} else if startDigits == 0 {
		return false
	}
	if i < len(value) && (value[i] == 'e' || value[i] == 'E') {
		i++
		if i == len(value) {
			return false
		}
		if value[i] == '+' || value[i] == '-' {
			i++
		}
		expDigits := 0
		for i < len(value) && isDigit(value[i]) {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(value)
}
