package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// Quoted is a |...| quoted literal. The parser stores the span; it
// includes the delimiters.
type Quoted struct {
	Loc   source.Span
	Parts []QuotedPart
}

func (q *Quoted) Span() source.Span { return q.Loc }

func (q *Quoted) ApplyVisitor(v Visitor) { v.VisitQuoted(q) }

func (q *Quoted) ApplyVisitorToChildren(v Visitor) {
	for _, part := range q.Parts {
		part.ApplyVisitor(v)
	}
}

func (*Quoted) aReservedBodyPart() {}
func (*Quoted) aLiteral() {}
func (*Quoted) aLiteralOrVariable() {}
func (*Quoted) aKey() {}
