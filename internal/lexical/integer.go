package lexical

import (
	"cmp"
	"math"
	"strconv"
)

// IntegerDomain is xs:integer or one of its derived types, restricted to int64.
type IntegerDomain struct {
	name string
	min  int64
	max  int64
}

// Integer returns an integer domain whose value space is [min, max].
func Integer(name string, min, max int64) IntegerDomain {
	return IntegerDomain{name: name, min: min, max: max}
}

// Name returns the XSD type name.
func (d IntegerDomain) Name() string { return d.name }

// Min returns the smallest value of the value space.
func (d IntegerDomain) Min() int64 { return d.min }

// Max returns the largest value of the value space.
func (d IntegerDomain) Max() int64 { return d.max }

// Parse parses an XSD integer lexical form.
func (d IntegerDomain) Parse(lexical string) (int64, error) {
	_, digits, kind, ok := splitSign(lexical)
	if !ok {
		return 0, fail(d.name, lexical, kind)
	}
	if digits == "" {
		return 0, fail(d.name, lexical, ParseNoDigits)
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, fail(d.name, lexical, ParseBadChar)
		}
	}
	v, err := strconv.ParseInt(lexical, 10, 64)
	if err != nil {
		return 0, fail(d.name, lexical, ParseOutOfRange)
	}
	if v < d.min || v > d.max {
		return 0, fail(d.name, lexical, ParseOutOfRange)
	}
	return v, nil
}

// Format returns the canonical lexical form.
func (d IntegerDomain) Format(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Compare orders two integers.
func (d IntegerDomain) Compare(a, b int64) int {
	return cmp.Compare(a, b)
}

// Succ returns v+1.
func (d IntegerDomain) Succ(v int64) (int64, bool) {
	if v == math.MaxInt64 {
		return 0, false
	}
	return v + 1, true
}

// Pred returns v-1.
func (d IntegerDomain) Pred(v int64) (int64, bool) {
	if v == math.MinInt64 {
		return 0, false
	}
	return v - 1, true
}
