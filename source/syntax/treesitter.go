package syntax

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// SitterParser parses source with a tree-sitter grammar and converts the
// concrete tree into Nodes, keeping named nodes only
type SitterParser struct {
	Name     string
	Language *sitter.Language
}

// NewSitterParser creates a parser for the given grammar
func NewSitterParser(name string, language *sitter.Language) *SitterParser {
	return &SitterParser{Name: name, Language: language}
}

// Parse parses src; a tree containing ERROR or MISSING nodes is reported as *SyntaxError
func (p *SitterParser) Parse(ctx context.Context, src []byte) (*Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.Language)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", p.Name, err)
	}
	root := tree.RootNode()
	if root.HasError() {
		return nil, p.syntaxError(root)
	}
	return FromSitter(root), nil
}

func (p *SitterParser) syntaxError(root *sitter.Node) error {
	ret := &SyntaxError{Language: p.Name, Message: "invalid syntax", Position: Point{Line: 1, Column: 1}}
	bad := firstError(root)
	if bad == nil {
		return ret
	}
	ret.Position = pointOf(bad.StartPoint())
	if bad.IsMissing() {
		ret.Message = fmt.Sprintf("missing %s", bad.Type())
	} else {
		ret.Message = "unexpected input"
	}
	return ret
}

// firstError returns the first ERROR or MISSING node in pre-order
func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !(child.HasError() || child.IsMissing()) {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

// FromSitter converts a tree-sitter node and its named descendants
func FromSitter(root *sitter.Node) *Node {
	return fromSitter(root, "")
}

func fromSitter(n *sitter.Node, field string) *Node {
	node := &Node{
		Type:  n.Type(),
		Field: field,
		Span: Span{
			StartByte: int(n.StartByte()),
			EndByte:   int(n.EndByte()),
			Start:     pointOf(n.StartPoint()),
			End:       pointOf(n.EndPoint()),
		},
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		node.Children = append(node.Children, fromSitter(child, n.FieldNameForChild(i)))
	}
	return node
}

func pointOf(p sitter.Point) Point {
	return Point{Line: int(p.Row) + 1, Column: int(p.Column) + 1}
}
