package jsx

import "github.com/viant/astmarkov/source/syntax"

// annotations are the TypeScript nodes attaching a type to a parameter,
// return position, variable declarator or field
var annotations = map[string]bool{
	"type_annotation":           true,
	"type_predicate_annotation": true,
	"asserts_annotation":        true,
}

// TypeScriptNormalizer erases TypeScript type annotations
type TypeScriptNormalizer struct{}

// Normalize removes every annotation node; the annotated construct keeps its span
func (TypeScriptNormalizer) Normalize(root *syntax.Node) *syntax.Node {
	return syntax.Rewrite(root, func(node *syntax.Node) *syntax.Node {
		if annotations[node.Type] {
			return nil
		}
		return node
	})
}
