// Package testkit provides invariant checks and traversal helpers
// shared by tests.
package testkit

import (
	"github.com/vovakirdan/mf2/internal/ast"
)

// Children collects the structural children of n in source order.
func Children(n ast.Node) []ast.Node {
	c := &collector{}
	n.ApplyVisitorToChildren(c)
	return c.nodes
}

// CountNodes reports how many nodes a full pre-order traversal of the
// tree under root visits.
func CountNodes(root ast.Node) int {
	count := 1
	for _, kid := range Children(root) {
		count += CountNodes(kid)
	}
	return count
}

// collector records each node it is applied to. Running it through
// ApplyVisitorToChildren yields exactly the direct children.
type collector struct {
	nodes []ast.Node
}

func (c *collector) add(n ast.Node) { c.nodes = append(c.nodes, n) }

func (c *collector) VisitPattern(n *ast.Pattern)                           { c.add(n) }
func (c *collector) VisitText(n *ast.Text)                                 { c.add(n) }
func (c *collector) VisitEscape(n *ast.Escape)                             { c.add(n) }
func (c *collector) VisitLiteralExpression(n *ast.LiteralExpression)       { c.add(n) }
func (c *collector) VisitVariableExpression(n *ast.VariableExpression)     { c.add(n) }
func (c *collector) VisitAnnotationExpression(n *ast.AnnotationExpression) { c.add(n) }
func (c *collector) VisitVariable(n *ast.Variable)                         { c.add(n) }
func (c *collector) VisitIdentifier(n *ast.Identifier)                     { c.add(n) }
func (c *collector) VisitFunction(n *ast.Function)                         { c.add(n) }
func (c *collector) VisitFnOrMarkupOption(n *ast.FnOrMarkupOption)         { c.add(n) }
func (c *collector) VisitAttribute(n *ast.Attribute)                       { c.add(n) }
func (c *collector) VisitPrivateUseAnnotation(n *ast.PrivateUseAnnotation) { c.add(n) }
func (c *collector) VisitReservedAnnotation(n *ast.ReservedAnnotation)     { c.add(n) }
func (c *collector) VisitQuoted(n *ast.Quoted)                             { c.add(n) }
func (c *collector) VisitNumber(n *ast.Number)                             { c.add(n) }
func (c *collector) VisitMarkup(n *ast.Markup)                             { c.add(n) }
func (c *collector) VisitComplexMessage(n *ast.ComplexMessage)             { c.add(n) }
func (c *collector) VisitInputDeclaration(n *ast.InputDeclaration)         { c.add(n) }
func (c *collector) VisitLocalDeclaration(n *ast.LocalDeclaration)         { c.add(n) }
func (c *collector) VisitReservedStatement(n *ast.ReservedStatement)       { c.add(n) }
func (c *collector) VisitQuotedPattern(n *ast.QuotedPattern)               { c.add(n) }
func (c *collector) VisitMatcher(n *ast.Matcher)                           { c.add(n) }
func (c *collector) VisitVariant(n *ast.Variant)                           { c.add(n) }
func (c *collector) VisitStar(n *ast.Star)                                 { c.add(n) }
