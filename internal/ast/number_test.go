package ast_test

import (
	"testing"

	"github.com/vovakirdan/mf2/internal/ast"
)

func TestNumber_FullForm(t *testing.T) {
	// "-12.34e-5" placed mid-source to catch relative/absolute mixups.
	n := &ast.Number{
		Start:         10,
		Raw:           "-12.34e-5",
		IsNegative:    true,
		IntegralLen:   2,
		FractionalLen: 2,
		HasFractional: true,
		Exponent:      ast.Exponent{Sign: ast.ExponentMinus, Len: 1},
		HasExponent:   true,
	}

	if got := n.Span(); got != sp(10, 19) {
		t.Fatalf("Span = %s, want 10-19", got)
	}

	if got := n.IntegralSpan(); got != sp(11, 13) {
		t.Fatalf("IntegralSpan = %s, want 11-13", got)
	}
	if got := n.IntegralPart(); got != "12" {
		t.Fatalf("IntegralPart = %q, want %q", got, "12")
	}

	fsp, ok := n.FractionalSpan()
	if !ok || fsp != sp(14, 16) {
		t.Fatalf("FractionalSpan = %s, %v, want 14-16, true", fsp, ok)
	}
	frac, ok := n.FractionalPart()
	if !ok || frac != "34" {
		t.Fatalf("FractionalPart = %q, %v, want %q, true", frac, ok, "34")
	}

	esp, ok := n.ExponentSpan()
	if !ok || esp != sp(18, 19) {
		t.Fatalf("ExponentSpan = %s, %v, want 18-19, true", esp, ok)
	}
	sign, exp, ok := n.ExponentPart()
	if !ok || sign != ast.ExponentMinus || exp != "5" {
		t.Fatalf("ExponentPart = %v, %q, %v, want minus, %q, true", sign, exp, ok, "5")
	}

	// Reassembling the pieces must reproduce the raw text byte for byte.
	rebuilt := "-" + n.IntegralPart() + "." + frac + "e" + sign.String() + exp
	if rebuilt != n.Raw {
		t.Fatalf("rebuilt %q != raw %q", rebuilt, n.Raw)
	}
}

func TestNumber_IntegerOnly(t *testing.T) {
	n := &ast.Number{Start: 5, Raw: "42", IntegralLen: 2}

	if got := n.IntegralPart(); got != "42" {
		t.Fatalf("IntegralPart = %q, want %q", got, "42")
	}
	if _, ok := n.FractionalSpan(); ok {
		t.Fatal("FractionalSpan must report absent")
	}
	if _, ok := n.FractionalPart(); ok {
		t.Fatal("FractionalPart must report absent")
	}
	if _, ok := n.ExponentSpan(); ok {
		t.Fatal("ExponentSpan must report absent")
	}
	if _, _, ok := n.ExponentPart(); ok {
		t.Fatal("ExponentPart must report absent")
	}
}

func TestNumber_Fraction(t *testing.T) {
	n := &ast.Number{
		Start:         0,
		Raw:           "3.14",
		IntegralLen:   1,
		FractionalLen: 2,
		HasFractional: true,
	}
	if got := n.IntegralPart(); got != "3" {
		t.Fatalf("IntegralPart = %q, want %q", got, "3")
	}
	frac, ok := n.FractionalPart()
	if !ok || frac != "14" {
		t.Fatalf("FractionalPart = %q, %v, want %q, true", frac, ok, "14")
	}
}

func TestNumber_ExponentSigns(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		sign    ast.ExponentSign
		expWant string
	}{
		// An unsigned exponent marker consumes no sign character.
		{name: "no sign", raw: "1e5", sign: ast.ExponentNone, expWant: "5"},
		{name: "explicit plus", raw: "1e+5", sign: ast.ExponentPlus, expWant: "5"},
		{name: "explicit minus", raw: "1e-5", sign: ast.ExponentMinus, expWant: "5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &ast.Number{
				Start:       0,
				Raw:         tt.raw,
				IntegralLen: 1,
				Exponent:    ast.Exponent{Sign: tt.sign, Len: 1},
				HasExponent: true,
			}
			sign, exp, ok := n.ExponentPart()
			if !ok || sign != tt.sign || exp != tt.expWant {
				t.Fatalf("ExponentPart = %v, %q, %v, want %v, %q, true", sign, exp, ok, tt.sign, tt.expWant)
			}
			rebuilt := n.IntegralPart() + "e" + sign.String() + exp
			if rebuilt != tt.raw {
				t.Fatalf("rebuilt %q != raw %q", rebuilt, tt.raw)
			}
		})
	}
}

func TestNumber_FractionAndExponent(t *testing.T) {
	// "6.02e23": fractional shifts the exponent start past ".02".
	n := &ast.Number{
		Start:         100,
		Raw:           "6.02e23",
		IntegralLen:   1,
		FractionalLen: 2,
		HasFractional: true,
		Exponent:      ast.Exponent{Sign: ast.ExponentNone, Len: 2},
		HasExponent:   true,
	}
	esp, ok := n.ExponentSpan()
	if !ok || esp != sp(105, 107) {
		t.Fatalf("ExponentSpan = %s, %v, want 105-107, true", esp, ok)
	}
	_, exp, ok := n.ExponentPart()
	if !ok || exp != "23" {
		t.Fatalf("ExponentPart = %q, %v, want %q, true", exp, ok, "23")
	}
}
