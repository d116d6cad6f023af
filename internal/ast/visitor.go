package ast

// Visitor has one callback per concrete node type. A traversal calls
// ApplyVisitor on a root; each callback decides whether to descend by
// calling ApplyVisitorToChildren on the node it received, so a pass can
// skip subtrees or wrap work around the recursive call.
//
// Embed NoopVisitor and override only the callbacks a pass cares
// about.
type Visitor interface {
	VisitPattern(*Pattern)
	VisitText(*Text)
	VisitEscape(*Escape)
	VisitLiteralExpression(*LiteralExpression)
	VisitVariableExpression(*VariableExpression)
	VisitAnnotationExpression(*AnnotationExpression)
	VisitVariable(*Variable)
	VisitIdentifier(*Identifier)
	VisitFunction(*Function)
	VisitFnOrMarkupOption(*FnOrMarkupOption)
	VisitAttribute(*Attribute)
	VisitPrivateUseAnnotation(*PrivateUseAnnotation)
	VisitReservedAnnotation(*ReservedAnnotation)
	VisitQuoted(*Quoted)
	VisitNumber(*Number)
	VisitMarkup(*Markup)
	VisitComplexMessage(*ComplexMessage)
	VisitInputDeclaration(*InputDeclaration)
	VisitLocalDeclaration(*LocalDeclaration)
	VisitReservedStatement(*ReservedStatement)
	VisitQuotedPattern(*QuotedPattern)
	VisitMatcher(*Matcher)
	VisitVariant(*Variant)
	VisitStar(*Star)
}

// NoopVisitor implements Visitor with empty callbacks.
type NoopVisitor struct{}

func (NoopVisitor) VisitPattern(*Pattern) {}
func (NoopVisitor) VisitText(*Text) {}
func (NoopVisitor) VisitEscape(*Escape) {}
func (NoopVisitor) VisitLiteralExpression(*LiteralExpression) {}
func (NoopVisitor) VisitVariableExpression(*VariableExpression) {}
func (NoopVisitor) VisitAnnotationExpression(*AnnotationExpression) {}
func (NoopVisitor) VisitVariable(*Variable) {}
func (NoopVisitor) VisitIdentifier(*Identifier) {}
func (NoopVisitor) VisitFunction(*Function) {}
func (NoopVisitor) VisitFnOrMarkupOption(*FnOrMarkupOption) {}
func (NoopVisitor) VisitAttribute(*Attribute) {}
func (NoopVisitor) VisitPrivateUseAnnotation(*PrivateUseAnnotation) {}
func (NoopVisitor) VisitReservedAnnotation(*ReservedAnnotation) {}
func (NoopVisitor) VisitQuoted(*Quoted) {}
func (NoopVisitor) VisitNumber(*Number) {}
func (NoopVisitor) VisitMarkup(*Markup) {}
func (NoopVisitor) VisitComplexMessage(*ComplexMessage) {}
func (NoopVisitor) VisitInputDeclaration(*InputDeclaration) {}
func (NoopVisitor) VisitLocalDeclaration(*LocalDeclaration) {}
func (NoopVisitor) VisitReservedStatement(*ReservedStatement) {}
func (NoopVisitor) VisitQuotedPattern(*QuotedPattern) {}
func (NoopVisitor) VisitMatcher(*Matcher) {}
func (NoopVisitor) VisitVariant(*Variant) {}
func (NoopVisitor) VisitStar(*Star) {}
