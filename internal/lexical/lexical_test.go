package lexical

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestIntegerParse(t *testing.T) {
	byteDomain := Integer("byte", -128, 127)
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
		errKind ParseErrKind
	}{
		{name: "zero", input: "0", want: 0},
		{name: "plus sign", input: "+12", want: 12},
		{name: "minus sign", input: "-128", want: -128},
		{name: "leading zeros", input: "007", want: 7},
		{name: "empty", input: "", wantErr: true, errKind: ParseEmpty},
		{name: "sign only", input: "-", wantErr: true, errKind: ParseNoDigits},
		{name: "double sign", input: "+-1", wantErr: true, errKind: ParseMultipleSigns},
		{name: "fraction", input: "1.0", wantErr: true, errKind: ParseBadChar},
		{name: "space", input: " 1", wantErr: true, errKind: ParseBadChar},
		{name: "above value space", input: "128", wantErr: true, errKind: ParseOutOfRange},
		{name: "below value space", input: "-129", wantErr: true, errKind: ParseOutOfRange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := byteDomain.Parse(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %d, want error", tc.input, got)
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Fatalf("Parse(%q) error = %T, want *ParseError inside", tc.input, err)
				}
				if perr.Kind != tc.errKind {
					t.Fatalf("error kind = %v, want %v", perr.Kind, tc.errKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestIntegerOverflowIsOutOfRange(t *testing.T) {
	d := Integer("integer", math.MinInt64, math.MaxInt64)
	_, err := d.Parse("99999999999999999999")
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != ParseOutOfRange {
		t.Fatalf("Parse(huge) error = %v, want out of range", err)
	}
	if _, ok := d.Succ(math.MaxInt64); ok {
		t.Fatalf("Succ(MaxInt64) ok = true, want false")
	}
	if _, ok := d.Pred(math.MinInt64); ok {
		t.Fatalf("Pred(MinInt64) ok = true, want false")
	}
	if got, ok := d.Succ(3); !ok || got != 4 {
		t.Fatalf("Succ(3) = %d, %v, want 4, true", got, ok)
	}
}

func TestLexicalErrorMessage(t *testing.T) {
	_, err := Integer("int", math.MinInt32, math.MaxInt32).Parse("x")
	if got, want := err.Error(), `invalid int lexical form "x": bad character`; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestFloatParseFormat(t *testing.T) {
	tests := []struct {
		domain FloatDomain
		input  string
		want   string
	}{
		{domain: Double(), input: "INF", want: "INF"},
		{domain: Double(), input: "-INF", want: "-INF"},
		{domain: Double(), input: "NaN", want: "NaN"},
		{domain: Double(), input: "1.25", want: "1.25E+00"},
		{domain: Double(), input: "-0.5e3", want: "-5E+02"},
		{domain: Double(), input: ".5", want: "5E-01"},
		{domain: Float(), input: "0.1", want: "1E-01"},
		{domain: Double(), input: "1e400", want: "INF"},
	}
	for _, tc := range tests {
		v, err := tc.domain.Parse(tc.input)
		if err != nil {
			t.Fatalf("%s.Parse(%q) unexpected error: %v", tc.domain.Name(), tc.input, err)
		}
		if got := tc.domain.Format(v); got != tc.want {
			t.Fatalf("%s.Format(Parse(%q)) = %q, want %q", tc.domain.Name(), tc.input, got, tc.want)
		}
	}

	for _, bad := range []string{"", "+INF", "inf", "1e", "e1", ".", "1.2.3", "0x10", "1_0"} {
		if _, err := Double().Parse(bad); err == nil {
			t.Fatalf("Double().Parse(%q) expected error", bad)
		}
	}
}

func TestFloatSucc(t *testing.T) {
	d := Float()
	one, _ := d.Parse("1")
	next, ok := d.Succ(one)
	if !ok {
		t.Fatalf("Succ(1) not ok")
	}
	if want := float64(math.Nextafter32(1, 2)); next != want {
		t.Fatalf("Succ(1) = %v, want %v", next, want)
	}
	if _, ok := d.Succ(math.Inf(1)); ok {
		t.Fatalf("Succ(INF) ok = true, want false")
	}
	if _, ok := d.Pred(math.NaN()); ok {
		t.Fatalf("Pred(NaN) ok = true, want false")
	}
}

func TestDecimalParseFormat(t *testing.T) {
	d := Decimal(2)
	tests := []struct {
		input string
		want  string
	}{
		{input: "0", want: "0"},
		{input: "-0.0", want: "0"},
		{input: "+1.50", want: "1.5"},
		{input: "1.", want: "1"},
		{input: ".25", want: "0.25"},
		{input: "-123.456789", want: "-123.456789"},
		{input: "0010.010", want: "10.01"},
	}
	for _, tc := range tests {
		v, err := d.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
		}
		if got := d.Format(v); got != tc.want {
			t.Fatalf("Format(Parse(%q)) = %q, want %q", tc.input, got, tc.want)
		}
	}

	bad := map[string]ParseErrKind{
		"":      ParseEmpty,
		".":     ParseNoDigits,
		"-":     ParseNoDigits,
		"1.2.3": ParseMultipleDots,
		"1e3":   ParseBadChar,
		"--1":   ParseMultipleSigns,
	}
	for input, kind := range bad {
		_, err := d.Parse(input)
		var perr *ParseError
		if !errors.As(err, &perr) || perr.Kind != kind {
			t.Fatalf("Parse(%q) error = %v, want %v", input, err, kind)
		}
	}
}

func TestDecimalEpsilon(t *testing.T) {
	d := Decimal(2)
	v, _ := d.Parse("1.5")
	next, _ := d.Succ(v)
	prev, _ := d.Pred(v)
	if got := d.Format(next); got != "1.51" {
		t.Fatalf("Succ(1.5) = %q, want 1.51", got)
	}
	if got := d.Format(prev); got != "1.49" {
		t.Fatalf("Pred(1.5) = %q, want 1.49", got)
	}
	third := big.NewRat(1, 3)
	if got := d.Format(third); len(got) != 2+maxFractionDigits {
		t.Fatalf("Format(1/3) = %q, want %d fraction digits", got, maxFractionDigits)
	}
}

func TestRoundTripProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParametersWithSeed(1234))

	integer := Integer("long", math.MinInt64, math.MaxInt64)
	properties.Property("integer format parses back", prop.ForAll(
		func(v int64) bool {
			got, err := integer.Parse(integer.Format(v))
			return err == nil && got == v
		},
		gen.Int64(),
	))

	double := Double()
	properties.Property("double format parses back", prop.ForAll(
		func(v float64) bool {
			got, err := double.Parse(double.Format(v))
			return err == nil && (got == v || (math.IsNaN(got) && math.IsNaN(v)))
		},
		gen.Float64(),
	))

	decimal := Decimal(3)
	properties.Property("decimal format parses back", prop.ForAll(
		func(n int64) bool {
			v := big.NewRat(n, 1000)
			got, err := decimal.Parse(decimal.Format(v))
			return err == nil && got.Cmp(v) == 0
		},
		gen.Int64Range(-1_000_000_000, 1_000_000_000),
	))

	properties.Property("succ is strictly greater", prop.ForAll(
		func(n int64) bool {
			v := big.NewRat(n, 100)
			next, ok := decimal.Succ(v)
			return ok && decimal.Compare(next, v) > 0
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
