// Package astfmt renders syntax trees and spans for debugging: an
// indented tree dump, a structural JSON dump, and a caret preview of a
// span against its source line. Output goes to an explicit io.Writer;
// nothing here mutates the tree.
package astfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/mf2/internal/ast"
)

// Tree writes an indented dump of the tree under root, one node per
// line with its kind and span:
//
//	Pattern (span: 0-23)
//	  Text "Hi " (span: 0-3)
//	  ...
func Tree(w io.Writer, root ast.Node) error {
	depth := 0
	var firstErr error
	wk := &walker{}
	wk.enter = func(n ast.Node, kind, detail string) {
		if firstErr == nil {
			label := kind
			if detail != "" {
				label += " " + detail
			}
			_, err := fmt.Fprintf(w, "%s%s (span: %s)\n", strings.Repeat("  ", depth), label, n.Span())
			firstErr = err
		}
		depth++
	}
	wk.leave = func() { depth-- }
	root.ApplyVisitor(wk)
	return firstErr
}
