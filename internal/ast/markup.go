package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// MarkupKind distinguishes the three tag forms.
type MarkupKind uint8

const (
	MarkupOpen MarkupKind = iota
	MarkupStandalone
	MarkupClose
)

func (k MarkupKind) String() string {
	switch k {
	case MarkupOpen:
		return "open"
	case MarkupStandalone:
		return "standalone"
	case MarkupClose:
		return "close"
	default:
		return "unknown"
	}
}

// Markup is a {#tag}, {#tag/}, or {/tag} construct embedded in a
// pattern. The parser stores the span; it includes the braces and
// sigils.
type Markup struct {
	Loc        source.Span
	Kind       MarkupKind
	ID         *Identifier
	Options    []*FnOrMarkupOption
	Attributes []*Attribute
}

func (m *Markup) Span() source.Span { return m.Loc }

func (m *Markup) ApplyVisitor(v Visitor) { v.VisitMarkup(m) }

func (m *Markup) ApplyVisitorToChildren(v Visitor) {
	m.ID.ApplyVisitor(v)
	for _, opt := range m.Options {
		opt.ApplyVisitor(v)
	}
	for _, attr := range m.Attributes {
		attr.ApplyVisitor(v)
	}
}

func (*Markup) aPatternPart() {}
