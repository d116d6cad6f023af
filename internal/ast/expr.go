package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// LiteralExpression is a {literal} placeholder, optionally annotated.
// The parser stores the span; it includes the braces, which no child
// covers.
type LiteralExpression struct {
	Loc        source.Span
	Literal    Literal
	Annotation Annotation // nil when absent
	Attributes []*Attribute
}

func (e *LiteralExpression) Span() source.Span { return e.Loc }

func (e *LiteralExpression) ApplyVisitor(v Visitor) { v.VisitLiteralExpression(e) }

func (e *LiteralExpression) ApplyVisitorToChildren(v Visitor) {
	e.Literal.ApplyVisitor(v)
	if e.Annotation != nil {
		e.Annotation.ApplyVisitor(v)
	}
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

func (*LiteralExpression) aPatternPart() {}
func (*LiteralExpression) aExpression() {}

// VariableExpression is a {$variable} placeholder, optionally
// annotated.
type VariableExpression struct {
	Loc        source.Span
	Variable   *Variable
	Annotation Annotation // nil when absent
	Attributes []*Attribute
}

func (e *VariableExpression) Span() source.Span { return e.Loc }

func (e *VariableExpression) ApplyVisitor(v Visitor) { v.VisitVariableExpression(e) }

func (e *VariableExpression) ApplyVisitorToChildren(v Visitor) {
	e.Variable.ApplyVisitor(v)
	if e.Annotation != nil {
		e.Annotation.ApplyVisitor(v)
	}
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

func (*VariableExpression) aPatternPart() {}
func (*VariableExpression) aExpression() {}

// AnnotationExpression is a placeholder with a bare annotation and no
// operand, e.g. {:func}.
type AnnotationExpression struct {
	Loc        source.Span
	Annotation Annotation
	Attributes []*Attribute
}

func (e *AnnotationExpression) Span() source.Span { return e.Loc }

func (e *AnnotationExpression) ApplyVisitor(v Visitor) { v.VisitAnnotationExpression(e) }

func (e *AnnotationExpression) ApplyVisitorToChildren(v Visitor) {
	e.Annotation.ApplyVisitor(v)
	for _, attr := range e.Attributes {
		attr.ApplyVisitor(v)
	}
}

func (*AnnotationExpression) aPatternPart() {}
func (*AnnotationExpression) aExpression() {}

// Variable is a $name reference. The sigil is not stored; the span
// accounts for it, like the backslash of an Escape.
type Variable struct {
	Start source.Location
	Name  string
}

func (x *Variable) Span() source.Span {
	return source.NewSpan(x.Start, x.Start.AdvanceRune('$').AdvanceString(x.Name))
}

func (x *Variable) ApplyVisitor(v Visitor) { v.VisitVariable(x) }
func (x *Variable) ApplyVisitorToChildren(v Visitor) {}

func (*Variable) aLiteralOrVariable() {}
