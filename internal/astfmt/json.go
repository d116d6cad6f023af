package astfmt

import (
	"encoding/json"
	"io"

	"github.com/vovakirdan/mf2/internal/ast"
	"github.com/vovakirdan/mf2/internal/source"
)

// SpanJSON carries a span in JSON output.
type SpanJSON struct {
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Dummy     bool   `json:"dummy,omitempty"`
}

// NodeJSON is one node of the structural JSON dump.
type NodeJSON struct {
	Kind     string      `json:"kind"`
	Detail   string      `json:"detail,omitempty"`
	Span     SpanJSON    `json:"span"`
	Children []*NodeJSON `json:"children,omitempty"`
}

func makeSpanJSON(sp source.Span) SpanJSON {
	if sp.IsDummy() {
		return SpanJSON{Dummy: true}
	}
	return SpanJSON{StartByte: uint32(sp.Start), EndByte: uint32(sp.End)}
}

// BuildJSON converts the tree under root into its JSON shape.
func BuildJSON(root ast.Node) *NodeJSON {
	var top *NodeJSON
	stack := make([]*NodeJSON, 0, 8)
	wk := &walker{}
	wk.enter = func(n ast.Node, kind, detail string) {
		jn := &NodeJSON{Kind: kind, Detail: detail, Span: makeSpanJSON(n.Span())}
		if len(stack) == 0 {
			top = jn
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, jn)
		}
		stack = append(stack, jn)
	}
	wk.leave = func() { stack = stack[:len(stack)-1] }
	root.ApplyVisitor(wk)
	return top
}

// JSON writes the tree under root as indented JSON.
func JSON(w io.Writer, root ast.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(root))
}
