package python

import "github.com/viant/astmarkov/source/syntax"

// Normalizer erases Python type hints
type Normalizer struct{}

// Normalize drops return annotations, parameter annotations and the
// annotation of annotated assignments (x: int = 1 becomes x = 1)
func (Normalizer) Normalize(root *syntax.Node) *syntax.Node {
	return syntax.Rewrite(root, normalize)
}

func normalize(node *syntax.Node) *syntax.Node {
	switch node.Type {
	case "function_definition":
		return node.Without("return_type")
	case "assignment":
		return node.Without("type")
	case "typed_parameter":
		// x: int, *args: int, **kw: int
		for _, child := range node.Children {
			if child.Field != "type" {
				return child.WithField(node.Field)
			}
		}
		return node
	case "typed_default_parameter":
		clone := *node.Without("type")
		clone.Type = "default_parameter"
		return &clone
	}
	return node
}
