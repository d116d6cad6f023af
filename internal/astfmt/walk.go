package astfmt

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/mf2/internal/ast"
)

// walker drives a full traversal and hands every node to enter/leave
// with a display kind and an optional one-line detail. Both formatters
// in this package are built on it so node labeling lives in one place.
type walker struct {
	enter func(n ast.Node, kind, detail string)
	leave func()
}

func (w *walker) step(n ast.Node, kind, detail string) {
	w.enter(n, kind, detail)
	n.ApplyVisitorToChildren(w)
	w.leave()
}

func identLabel(id *ast.Identifier) string {
	if id.Namespace != "" {
		return id.Namespace + ":" + id.Name
	}
	return id.Name
}

func (w *walker) VisitPattern(n *ast.Pattern) { w.step(n, "Pattern", "") }
func (w *walker) VisitText(n *ast.Text)       { w.step(n, "Text", strconv.Quote(n.Content)) }
func (w *walker) VisitEscape(n *ast.Escape)   { w.step(n, "Escape", strconv.QuoteRune(n.Escaped)) }
func (w *walker) VisitLiteralExpression(n *ast.LiteralExpression) {
	w.step(n, "LiteralExpression", "")
}
func (w *walker) VisitVariableExpression(n *ast.VariableExpression) {
	w.step(n, "VariableExpression", "")
}
func (w *walker) VisitAnnotationExpression(n *ast.AnnotationExpression) {
	w.step(n, "AnnotationExpression", "")
}
func (w *walker) VisitVariable(n *ast.Variable)     { w.step(n, "Variable", "$"+n.Name) }
func (w *walker) VisitIdentifier(n *ast.Identifier) { w.step(n, "Identifier", identLabel(n)) }
func (w *walker) VisitFunction(n *ast.Function)     { w.step(n, "Function", "") }
func (w *walker) VisitFnOrMarkupOption(n *ast.FnOrMarkupOption) {
	w.step(n, "Option", identLabel(n.Key))
}
func (w *walker) VisitAttribute(n *ast.Attribute) { w.step(n, "Attribute", "@"+identLabel(n.Key)) }
func (w *walker) VisitPrivateUseAnnotation(n *ast.PrivateUseAnnotation) {
	w.step(n, "PrivateUseAnnotation", strconv.QuoteRune(n.Sigil))
}
func (w *walker) VisitReservedAnnotation(n *ast.ReservedAnnotation) {
	w.step(n, "ReservedAnnotation", strconv.QuoteRune(n.Sigil))
}
func (w *walker) VisitQuoted(n *ast.Quoted) { w.step(n, "Quoted", "") }
func (w *walker) VisitNumber(n *ast.Number) { w.step(n, "Number", n.Raw) }
func (w *walker) VisitMarkup(n *ast.Markup) {
	w.step(n, "Markup", fmt.Sprintf("%s %s", n.Kind, identLabel(n.ID)))
}
func (w *walker) VisitComplexMessage(n *ast.ComplexMessage) { w.step(n, "ComplexMessage", "") }
func (w *walker) VisitInputDeclaration(n *ast.InputDeclaration) {
	w.step(n, "InputDeclaration", "")
}
func (w *walker) VisitLocalDeclaration(n *ast.LocalDeclaration) {
	w.step(n, "LocalDeclaration", "")
}
func (w *walker) VisitReservedStatement(n *ast.ReservedStatement) {
	w.step(n, "ReservedStatement", "."+n.Name)
}
func (w *walker) VisitQuotedPattern(n *ast.QuotedPattern) { w.step(n, "QuotedPattern", "") }
func (w *walker) VisitMatcher(n *ast.Matcher)             { w.step(n, "Matcher", "") }
func (w *walker) VisitVariant(n *ast.Variant)             { w.step(n, "Variant", "") }
func (w *walker) VisitStar(n *ast.Star)                   { w.step(n, "Star", "*") }
