package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// Identifier is an optionally namespaced name, e.g. ns:name. An empty
// Namespace means the identifier has none.
type Identifier struct {
	Start     source.Location
	Namespace string
	Name      string
}

func (id *Identifier) Span() source.Span {
	end := id.Start
	if id.Namespace != "" {
		end = end.AdvanceString(id.Namespace).AdvanceRune(':')
	}
	return source.NewSpan(id.Start, end.AdvanceString(id.Name))
}

func (id *Identifier) ApplyVisitor(v Visitor) { v.VisitIdentifier(id) }
func (id *Identifier) ApplyVisitorToChildren(v Visitor) {}

// Function is a :ns:name annotation with ordered options. Start sits
// on the ':' sigil, ahead of the identifier.
type Function struct {
	Start   source.Location
	ID      *Identifier
	Options []*FnOrMarkupOption
}

// Span ends at the last option, or at the identifier when there are
// none.
func (f *Function) Span() source.Span {
	end := f.ID.Span().End
	if n := len(f.Options); n > 0 {
		end = f.Options[n-1].Span().End
	}
	return source.NewSpan(f.Start, end)
}

func (f *Function) ApplyVisitor(v Visitor) { v.VisitFunction(f) }

func (f *Function) ApplyVisitorToChildren(v Visitor) {
	f.ID.ApplyVisitor(v)
	for _, opt := range f.Options {
		opt.ApplyVisitor(v)
	}
}

func (*Function) aAnnotation() {}

// FnOrMarkupOption is one key=value option of a function or markup.
type FnOrMarkupOption struct {
	Key   *Identifier
	Value LiteralOrVariable
}

func (o *FnOrMarkupOption) Span() source.Span {
	return source.NewSpan(o.Key.Span().Start, o.Value.Span().End)
}

func (o *FnOrMarkupOption) ApplyVisitor(v Visitor) { v.VisitFnOrMarkupOption(o) }

func (o *FnOrMarkupOption) ApplyVisitorToChildren(v Visitor) {
	o.Key.ApplyVisitor(v)
	o.Value.ApplyVisitor(v)
}

// Attribute is an @key or @key=value attached to an expression or
// markup. The parser stores the span (it includes the '@').
type Attribute struct {
	Loc   source.Span
	Key   *Identifier
	Value LiteralOrVariable // nil when the attribute has no value
}

func (a *Attribute) Span() source.Span { return a.Loc }

func (a *Attribute) ApplyVisitor(v Visitor) { v.VisitAttribute(a) }

func (a *Attribute) ApplyVisitorToChildren(v Visitor) {
	a.Key.ApplyVisitor(v)
	if a.Value != nil {
		a.Value.ApplyVisitor(v)
	}
}

// PrivateUseAnnotation preserves a private-use annotation (sigil '^'
// or '&') without interpreting it.
type PrivateUseAnnotation struct {
	Start source.Location
	Sigil rune
	Body  []ReservedBodyPart
}

// Span ends at the last body part; an empty body leaves just the
// sigil, so diagnostics still get a real range.
func (p *PrivateUseAnnotation) Span() source.Span {
	end := p.Start.AdvanceRune(p.Sigil)
	if n := len(p.Body); n > 0 {
		end = p.Body[n-1].Span().End
	}
	return source.NewSpan(p.Start, end)
}

func (p *PrivateUseAnnotation) ApplyVisitor(v Visitor) { v.VisitPrivateUseAnnotation(p) }

func (p *PrivateUseAnnotation) ApplyVisitorToChildren(v Visitor) {
	for _, part := range p.Body {
		part.ApplyVisitor(v)
	}
}

func (*PrivateUseAnnotation) aAnnotation() {}

// ReservedAnnotation preserves an annotation with a sigil reserved for
// future syntax, without interpreting it.
type ReservedAnnotation struct {
	Start source.Location
	Sigil rune
	Body  []ReservedBodyPart
}

func (r *ReservedAnnotation) Span() source.Span {
	end := r.Start.AdvanceRune(r.Sigil)
	if n := len(r.Body); n > 0 {
		end = r.Body[n-1].Span().End
	}
	return source.NewSpan(r.Start, end)
}

func (r *ReservedAnnotation) ApplyVisitor(v Visitor) { v.VisitReservedAnnotation(r) }

func (r *ReservedAnnotation) ApplyVisitorToChildren(v Visitor) {
	for _, part := range r.Body {
		part.ApplyVisitor(v)
	}
}

func (*ReservedAnnotation) aAnnotation() {}
