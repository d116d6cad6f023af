package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// Pattern is the ordered content of one renderable message body.
type Pattern struct {
	Parts []PatternPart
}

// Span covers the first through last part. A pattern with no parts
// has no location at all; both ends collapse to DummyLocation.
func (p *Pattern) Span() source.Span {
	if len(p.Parts) == 0 {
		return source.NewSpan(source.DummyLocation, source.DummyLocation)
	}
	return source.NewSpan(p.Parts[0].Span().Start, p.Parts[len(p.Parts)-1].Span().End)
}

func (p *Pattern) ApplyVisitor(v Visitor) { v.VisitPattern(p) }

func (p *Pattern) ApplyVisitorToChildren(v Visitor) {
	for _, part := range p.Parts {
		part.ApplyVisitor(v)
	}
}

func (*Pattern) aMessage() {}

// Text is a run of literal characters with no escapes inside.
type Text struct {
	Start   source.Location
	Content string
}

func (t *Text) Span() source.Span {
	return source.NewSpan(t.Start, t.Start.AdvanceString(t.Content))
}

func (t *Text) ApplyVisitor(v Visitor) { v.VisitText(t) }
func (t *Text) ApplyVisitorToChildren(v Visitor) {}

func (*Text) aPatternPart() {}
func (*Text) aReservedBodyPart() {}
func (*Text) aLiteral() {}
func (*Text) aQuotedPart() {}
func (*Text) aLiteralOrVariable() {}
func (*Text) aKey() {}

// Escape is a backslash followed by one escaped character. Only the
// escaped character is stored; the backslash is implicit in the span.
type Escape struct {
	Start   source.Location
	Escaped rune
}

func (e *Escape) Span() source.Span {
	return source.NewSpan(e.Start, e.Start.AdvanceRune('\\').AdvanceRune(e.Escaped))
}

func (e *Escape) ApplyVisitor(v Visitor) { v.VisitEscape(e) }
func (e *Escape) ApplyVisitorToChildren(v Visitor) {}

func (*Escape) aPatternPart() {}
func (*Escape) aReservedBodyPart() {}
func (*Escape) aQuotedPart() {}

// QuotedPattern is a pattern wrapped in {{...}} inside a complex
// message body or variant. The span is stored by the parser and
// includes the braces.
type QuotedPattern struct {
	Loc     source.Span
	Pattern *Pattern
}

func (q *QuotedPattern) Span() source.Span { return q.Loc }

func (q *QuotedPattern) ApplyVisitor(v Visitor) { v.VisitQuotedPattern(q) }

func (q *QuotedPattern) ApplyVisitorToChildren(v Visitor) {
	q.Pattern.ApplyVisitor(v)
}

func (*QuotedPattern) aComplexMessageBody() {}
