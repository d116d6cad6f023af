package ast

import (
	"github.com/vovakirdan/mf2/internal/source"
)

// Node is the interface implemented by every AST node.
type Node interface {
	// Span reports the exact source range the node occupies.
	Span() source.Span

	// ApplyVisitor invokes the single v callback matching the node's
	// concrete type.
	ApplyVisitor(v Visitor)

	// ApplyVisitorToChildren applies v to every structural child in
	// source order. Leaves do nothing. Recursion stays with the
	// caller: a callback decides whether and when to descend.
	ApplyVisitorToChildren(v Visitor)
}

// Message is the top level of a parsed message: either a simple
// Pattern or a ComplexMessage with declarations and a body.
type Message interface {
	Node
	aMessage()
}

// PatternPart is one element of a Pattern: Text, Escape, any of the
// three expression nodes, or Markup.
type PatternPart interface {
	Node
	aPatternPart()
}

// Expression is a substitution point: LiteralExpression,
// VariableExpression, or AnnotationExpression.
type Expression interface {
	Node
	aExpression()
}

// Annotation is attached to an expression: Function,
// PrivateUseAnnotation, or ReservedAnnotation.
type Annotation interface {
	Node
	aAnnotation()
}

// LiteralOrVariable is an option or attribute value: any Literal, or a
// Variable.
type LiteralOrVariable interface {
	Node
	aLiteralOrVariable()
}

// ReservedBodyPart is one element of a private-use or reserved body:
// Text, Escape, or Quoted.
type ReservedBodyPart interface {
	Node
	aReservedBodyPart()
}

// Literal is Quoted, Text, or Number.
type Literal interface {
	Node
	aLiteral()
}

// QuotedPart is one element of a Quoted literal: Text or Escape.
type QuotedPart interface {
	Node
	aQuotedPart()
}

// ComplexMessageBody is the body of a ComplexMessage: QuotedPattern or
// Matcher.
type ComplexMessageBody interface {
	Node
	aComplexMessageBody()
}

// Declaration precedes the body of a ComplexMessage:
// InputDeclaration, LocalDeclaration, or ReservedStatement.
type Declaration interface {
	Node
	aDeclaration()
}

// Key is one variant key: any Literal, or the Star wildcard.
type Key interface {
	Node
	aKey()
}
