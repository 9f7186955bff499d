package lexical

import (
	"math/big"
	"strings"
)

// maxFractionDigits bounds Format for values without a terminating decimal expansion.
const maxFractionDigits = 32

var bigTen = big.NewInt(10)

// DecimalDomain is xs:decimal over exact rationals. Its epsilon is 10^-scale.
type DecimalDomain struct {
	epsilon *big.Rat
	scale   int
}

// Decimal returns a decimal domain whose epsilon is 10^-scale.
func Decimal(scale int) DecimalDomain {
	scale = max(scale, 0)
	denom := new(big.Int).Exp(bigTen, big.NewInt(int64(scale)), nil)
	return DecimalDomain{scale: scale, epsilon: new(big.Rat).SetFrac(big.NewInt(1), denom)}
}

// Name returns the XSD type name.
func (d DecimalDomain) Name() string { return "decimal" }

// Scale returns the number of fraction digits of the epsilon.
func (d DecimalDomain) Scale() int { return d.scale }

// Parse parses an XSD decimal lexical form: optional sign, digits, optional fraction.
func (d DecimalDomain) Parse(lexical string) (*big.Rat, error) {
	negative, body, kind, ok := splitSign(lexical)
	if !ok {
		return nil, fail(d.Name(), lexical, kind)
	}
	intPart, fracPart, hasDot := strings.Cut(body, ".")
	if hasDot && strings.IndexByte(fracPart, '.') >= 0 {
		return nil, fail(d.Name(), lexical, ParseMultipleDots)
	}
	if intPart == "" && fracPart == "" {
		return nil, fail(d.Name(), lexical, ParseNoDigits)
	}
	digits := intPart + fracPart
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return nil, fail(d.Name(), lexical, ParseBadChar)
		}
	}
	num, _ := new(big.Int).SetString(digits, 10)
	if negative {
		num.Neg(num)
	}
	denom := new(big.Int).Exp(bigTen, big.NewInt(int64(len(fracPart))), nil)
	return new(big.Rat).SetFrac(num, denom), nil
}

// Format returns the shortest exact lexical form, without trailing fraction zeros.
func (d DecimalDomain) Format(v *big.Rat) string {
	s := v.FloatString(fractionDigits(v))
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Compare orders two decimals.
func (d DecimalDomain) Compare(a, b *big.Rat) int {
	return a.Cmp(b)
}

// Succ returns v + 10^-scale.
func (d DecimalDomain) Succ(v *big.Rat) (*big.Rat, bool) {
	return new(big.Rat).Add(v, d.epsilon), true
}

// Pred returns v - 10^-scale.
func (d DecimalDomain) Pred(v *big.Rat) (*big.Rat, bool) {
	return new(big.Rat).Sub(v, d.epsilon), true
}

// fractionDigits returns the number of digits of v's terminating decimal expansion.
func fractionDigits(v *big.Rat) int {
	denom := new(big.Int).Set(v.Denom())
	twos, fives := 0, 0
	two, five := big.NewInt(2), big.NewInt(5)
	var rem big.Int
	for {
		q, r := new(big.Int).QuoRem(denom, two, &rem)
		if r.Sign() != 0 {
			break
		}
		denom = q
		twos++
	}
	for {
		q, r := new(big.Int).QuoRem(denom, five, &rem)
		if r.Sign() != 0 {
			break
		}
		denom = q
		fives++
	}
	if denom.Cmp(big.NewInt(1)) != 0 {
		return maxFractionDigits
	}
	return max(twos, fives)
}
