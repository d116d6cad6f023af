package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// ExponentSign is the explicit sign of a number literal's exponent.
// ExponentNone means the exponent was written without one; it takes no
// source width.
type ExponentSign uint8

const (
	ExponentNone ExponentSign = iota
	ExponentPlus
	ExponentMinus
)

func (s ExponentSign) String() string {
	switch s {
	case ExponentPlus:
		return "+"
	case ExponentMinus:
		return "-"
	default:
		return ""
	}
}

// Exponent records the structure of an exponent suffix: its sign and
// the digit count after it.
type Exponent struct {
	Sign ExponentSign
	Len  source.LengthShort
}

// Number is a number literal kept exactly as written. The numeric
// value is never computed here; only the raw text plus enough
// structure to slice it back into sign, integral, fractional, and
// exponent pieces on demand. That keeps leading zeros and exponent
// formatting intact for round-tripping and leaves value
// interpretation (and its precision trade-offs) to the consumer.
type Number struct {
	Start         source.Location
	Raw           string
	IsNegative    bool
	IntegralLen   source.LengthShort
	FractionalLen source.LengthShort // meaningful only when HasFractional
	HasFractional bool
	Exponent      Exponent // meaningful only when HasExponent
	HasExponent   bool
}

func (n *Number) Span() source.Span {
	return source.NewSpan(n.Start, n.Start.AdvanceString(n.Raw))
}

func (n *Number) ApplyVisitor(v Visitor) { v.VisitNumber(n) }
func (n *Number) ApplyVisitorToChildren(v Visitor) {}

func (*Number) aLiteral() {}
func (*Number) aLiteralOrVariable() {}
func (*Number) aKey() {}

// slice cuts the sub-span out of Raw. Spans are absolute, Raw starts
// at n.Start.
func (n *Number) slice(sp source.Span) string {
	return n.Raw[sp.Start-n.Start : sp.End-n.Start]
}

func (n *Number) integralStart() source.Location {
	if n.IsNegative {
		return n.Start.AdvanceRune('-')
	}
	return n.Start
}

func (n *Number) integralEnd() source.Location {
	return n.integralStart().Advance(n.IntegralLen)
}

// IntegralSpan is the range of the integral digits, past the minus
// sign if there is one.
func (n *Number) IntegralSpan() source.Span {
	return source.NewSpan(n.integralStart(), n.integralEnd())
}

// IntegralPart is the integral digits as written.
func (n *Number) IntegralPart() string {
	return n.slice(n.IntegralSpan())
}

// FractionalSpan is the range of the fractional digits, past the
// decimal point. ok is false when the literal has no fraction.
func (n *Number) FractionalSpan() (sp source.Span, ok bool) {
	if !n.HasFractional {
		return source.Span{}, false
	}
	start := n.integralEnd().AdvanceRune('.')
	return source.NewSpan(start, start.Advance(n.FractionalLen)), true
}

// FractionalPart is the fractional digits as written. ok is false when
// the literal has no fraction.
func (n *Number) FractionalPart() (s string, ok bool) {
	sp, ok := n.FractionalSpan()
	if !ok {
		return "", false
	}
	return n.slice(sp), true
}

// ExponentSpan is the range of the exponent digits, past the marker
// and past the sign when one was written. ok is false when the literal
// has no exponent.
func (n *Number) ExponentSpan() (sp source.Span, ok bool) {
	if !n.HasExponent {
		return source.Span{}, false
	}
	start := n.integralEnd()
	if n.HasFractional {
		start = start.AdvanceRune('.').Advance(n.FractionalLen)
	}
	start = start.AdvanceRune('e')
	if n.Exponent.Sign != ExponentNone {
		start = start.AdvanceRune('-')
	}
	return source.NewSpan(start, start.Advance(n.Exponent.Len)), true
}

// ExponentPart is the exponent sign and digits as written. ok is false
// when the literal has no exponent.
func (n *Number) ExponentPart() (sign ExponentSign, s string, ok bool) {
	sp, ok := n.ExponentSpan()
	if !ok {
		return ExponentNone, "", false
	}
	return n.Exponent.Sign, n.slice(sp), true
}
