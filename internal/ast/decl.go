package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// ComplexMessage is a message with declarations followed by a quoted
// pattern or matcher body.
type ComplexMessage struct {
	Declarations []Declaration
	Body         ComplexMessageBody
}

// Span covers the declarations and the body, whichever order they
// landed in the source.
func (m *ComplexMessage) Span() source.Span {
	body := m.Body.Span()
	start, end := body.Start, body.End
	if n := len(m.Declarations); n > 0 {
		start = m.Declarations[0].Span().Start.Min(start)
		end = m.Declarations[n-1].Span().End.Max(end)
	}
	return source.NewSpan(start, end)
}

func (m *ComplexMessage) ApplyVisitor(v Visitor) { v.VisitComplexMessage(m) }

func (m *ComplexMessage) ApplyVisitorToChildren(v Visitor) {
	for _, decl := range m.Declarations {
		decl.ApplyVisitor(v)
	}
	m.Body.ApplyVisitor(v)
}

func (*ComplexMessage) aMessage() {}

// InputDeclaration is a `.input {$var}` declaration. Start sits on the
// '.' of the keyword.
type InputDeclaration struct {
	Start      source.Location
	Expression *VariableExpression
}

func (d *InputDeclaration) Span() source.Span {
	return source.NewSpan(d.Start, d.Expression.Span().End)
}

func (d *InputDeclaration) ApplyVisitor(v Visitor) { v.VisitInputDeclaration(d) }

func (d *InputDeclaration) ApplyVisitorToChildren(v Visitor) {
	d.Expression.ApplyVisitor(v)
}

func (*InputDeclaration) aDeclaration() {}

// LocalDeclaration is a `.local $var = {...}` declaration.
type LocalDeclaration struct {
	Start      source.Location
	Variable   *Variable
	Expression Expression
}

func (d *LocalDeclaration) Span() source.Span {
	return source.NewSpan(d.Start, d.Expression.Span().End)
}

func (d *LocalDeclaration) ApplyVisitor(v Visitor) { v.VisitLocalDeclaration(d) }

func (d *LocalDeclaration) ApplyVisitorToChildren(v Visitor) {
	d.Variable.ApplyVisitor(v)
	d.Expression.ApplyVisitor(v)
}

func (*LocalDeclaration) aDeclaration() {}

// ReservedStatement preserves a `.name` statement whose syntax is
// reserved for the future: the name after the dot, a raw body, and any
// trailing expressions. Judgment on it is deferred to semantic
// analysis.
type ReservedStatement struct {
	Start       source.Location
	Name        string
	Body        []ReservedBodyPart
	Expressions []Expression
}

// Span ends at the last expression, else the last body part, else
// just past ".name".
func (d *ReservedStatement) Span() source.Span {
	end := d.Start.AdvanceRune('.').AdvanceString(d.Name)
	if n := len(d.Body); n > 0 {
		end = d.Body[n-1].Span().End
	}
	if n := len(d.Expressions); n > 0 {
		end = d.Expressions[n-1].Span().End
	}
	return source.NewSpan(d.Start, end)
}

func (d *ReservedStatement) ApplyVisitor(v Visitor) { v.VisitReservedStatement(d) }

func (d *ReservedStatement) ApplyVisitorToChildren(v Visitor) {
	for _, part := range d.Body {
		part.ApplyVisitor(v)
	}
	for _, expr := range d.Expressions {
		expr.ApplyVisitor(v)
	}
}

func (*ReservedStatement) aDeclaration() {}
