package astfmt_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vovakirdan/mf2/internal/ast"
	"github.com/vovakirdan/mf2/internal/astfmt"
	"github.com/vovakirdan/mf2/internal/source"
)

func sp(start, end source.Location) source.Span {
	return source.NewSpan(start, end)
}

// simpleFixture hand-positions a pattern against its source:
//
//	Hi {$name :upper} {#b}!
//	01234567890123456789012
func simpleFixture() (string, *ast.Pattern) {
	src := "Hi {$name :upper} {#b}!"
	p := &ast.Pattern{Parts: []ast.PatternPart{
		&ast.Text{Start: 0, Content: "Hi "},
		&ast.VariableExpression{
			Loc:      sp(3, 17),
			Variable: &ast.Variable{Start: 4, Name: "name"},
			Annotation: &ast.Function{
				Start: 10,
				ID:    &ast.Identifier{Start: 11, Name: "upper"},
			},
		},
		&ast.Text{Start: 17, Content: " "},
		&ast.Markup{
			Loc:  sp(18, 22),
			Kind: ast.MarkupOpen,
			ID:   &ast.Identifier{Start: 20, Name: "b"},
		},
		&ast.Text{Start: 22, Content: "!"},
	}}
	return src, p
}

func TestTree(t *testing.T) {
	_, p := simpleFixture()
	var buf bytes.Buffer
	if err := astfmt.Tree(&buf, p); err != nil {
		t.Fatalf("Tree: %v", err)
	}
	expected := `Pattern (span: 0-23)
  Text "Hi " (span: 0-3)
  VariableExpression (span: 3-17)
    Variable $name (span: 4-9)
    Function (span: 10-16)
      Identifier upper (span: 11-16)
  Text " " (span: 17-18)
  Markup open b (span: 18-22)
    Identifier b (span: 20-21)
  Text "!" (span: 22-23)
`
	if buf.String() != expected {
		t.Fatalf("Tree output mismatch:\n got:\n%s\nwant:\n%s", buf.String(), expected)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestTree_WriterError(t *testing.T) {
	_, p := simpleFixture()
	if err := astfmt.Tree(failWriter{}, p); err == nil {
		t.Fatal("expected writer error")
	}
}
