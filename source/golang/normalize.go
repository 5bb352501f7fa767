package golang

import "github.com/viant/astmarkov/source/syntax"

// Normalizer erases Go type annotations that only restate types
type Normalizer struct{}

// Normalize drops result lists and parameter types of function signatures, and the
// explicit type of value specs that carry values (var x int = 1 becomes var x = 1)
func (Normalizer) Normalize(root *syntax.Node) *syntax.Node {
	return syntax.Rewrite(root, normalize)
}

func normalize(node *syntax.Node) *syntax.Node {
	switch node.Type {
	case "FuncType":
		ret := node.Without("Results")
		if params := ret.Child("Params"); params != nil {
			ret = ret.Replace(params, untypedParams(params))
		}
		return ret
	case "ValueSpec":
		if node.Child("Values") != nil {
			return node.Without("Type")
		}
	}
	return node
}

func untypedParams(params *syntax.Node) *syntax.Node {
	ret := params
	for _, field := range params.Children {
		if field.Type != "Field" {
			continue
		}
		ret = ret.Replace(field, field.Without("Type"))
	}
	return ret
}
