package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// MatchKeyword is the literal text that introduces a matcher.
const MatchKeyword = ".match"

// Matcher is the `.match` construct: selector expressions followed by
// keyed variants. Start sits on the '.' of the keyword.
type Matcher struct {
	Start     source.Location
	Selectors []Expression
	Variants  []*Variant
}

// Span ends at the last variant, else the last selector, else just
// past the keyword, so even a degenerate matcher points somewhere
// real.
func (m *Matcher) Span() source.Span {
	end := m.Start.AdvanceString(MatchKeyword)
	if n := len(m.Selectors); n > 0 {
		end = m.Selectors[n-1].Span().End
	}
	if n := len(m.Variants); n > 0 {
		end = m.Variants[n-1].Span().End
	}
	return source.NewSpan(m.Start, end)
}

func (m *Matcher) ApplyVisitor(v Visitor) { v.VisitMatcher(m) }

func (m *Matcher) ApplyVisitorToChildren(v Visitor) {
	for _, sel := range m.Selectors {
		sel.ApplyVisitor(v)
	}
	for _, variant := range m.Variants {
		variant.ApplyVisitor(v)
	}
}

func (*Matcher) aComplexMessageBody() {}

// Variant is one matcher alternative: its keys and the quoted pattern
// they select.
type Variant struct {
	Keys    []Key
	Pattern *QuotedPattern
}

func (x *Variant) Span() source.Span {
	start := x.Pattern.Span().Start
	if len(x.Keys) > 0 {
		start = x.Keys[0].Span().Start
	}
	return source.NewSpan(start, x.Pattern.Span().End)
}

func (x *Variant) ApplyVisitor(v Visitor) { v.VisitVariant(x) }

func (x *Variant) ApplyVisitorToChildren(v Visitor) {
	for _, key := range x.Keys {
		key.ApplyVisitor(v)
	}
	x.Pattern.ApplyVisitor(v)
}

// Star is the '*' wildcard variant key.
type Star struct {
	Start source.Location
}

func (s *Star) Span() source.Span {
	return source.NewSpan(s.Start, s.Start.AdvanceRune('*'))
}

func (s *Star) ApplyVisitor(v Visitor) { v.VisitStar(s) }
func (s *Star) ApplyVisitorToChildren(v Visitor) {}

func (*Star) aKey() {}
