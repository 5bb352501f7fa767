package syntax

// Point represents a 1-based line and column position in the source
type Point struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

// Span represents the source range covered by a node
type Span struct {
	StartByte int   `yaml:"startByte"`
	EndByte   int   `yaml:"endByte"`
	Start     Point `yaml:"start"`
	End       Point `yaml:"end"`
}

// Node represents a parsed syntactic construct.
// Nodes are treated as read-only once produced by a Parser; transformations
// build new nodes and share unchanged subtrees.
type Node struct {
	Type     string  // Syntactic category, e.g. "assignment", "FuncDecl"
	Field    string  // Field name under the parent, empty when unnamed
	Span     Span    // Source position
	Children []*Node // Ordered children
}

// NewNode creates a node with the given type and children
func NewNode(nodeType string, children ...*Node) *Node {
	return &Node{Type: nodeType, Children: children}
}

// WithField returns a shallow copy of n carrying the given field name
func (n *Node) WithField(field string) *Node {
	clone := *n
	clone.Field = field
	return &clone
}

// Child returns the first child carrying the field name, or nil
func (n *Node) Child(field string) *Node {
	for _, child := range n.Children {
		if child.Field == field {
			return child
		}
	}
	return nil
}

// Walk visits n and its descendants in pre-order; returning false from fn skips the subtree
func (n *Node) Walk(fn func(node *Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes reachable from n, revisits included
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}

// Types returns node types in pre-order
func (n *Node) Types() []string {
	var result []string
	n.Walk(func(node *Node) bool {
		result = append(result, node.Type)
		return true
	})
	return result
}

// Rewrite applies fn bottom-up and returns the resulting tree.
// fn receives a node whose children were already rewritten and returns its
// replacement; returning nil removes the node from its parent. Nodes are
// copied only along paths where something changed, so an identity fn returns root itself.
func Rewrite(root *Node, fn func(node *Node) *Node) *Node {
	if root == nil {
		return nil
	}
	var children []*Node
	changed := false
	for i, child := range root.Children {
		updated := Rewrite(child, fn)
		if updated != child && !changed {
			changed = true
			children = append(make([]*Node, 0, len(root.Children)), root.Children[:i]...)
		}
		if changed && updated != nil {
			children = append(children, updated)
		}
	}
	node := root
	if changed {
		clone := *root
		clone.Children = children
		node = &clone
	}
	return fn(node)
}

// Without returns a copy of n minus the children carrying the field, or n itself when there are none
func (n *Node) Without(field string) *Node {
	if n.Child(field) == nil {
		return n
	}
	children := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		if child.Field != field {
			children = append(children, child)
		}
	}
	clone := *n
	clone.Children = children
	return &clone
}

// Replace returns a copy of n with child swapped for replacement, or n itself when nothing changes
func (n *Node) Replace(child, replacement *Node) *Node {
	if child == replacement {
		return n
	}
	children := make([]*Node, len(n.Children))
	copy(children, n.Children)
	found := false
	for i, candidate := range children {
		if candidate == child {
			children[i] = replacement
			found = true
		}
	}
	if !found {
		return n
	}
	clone := *n
	clone.Children = children
	return &clone
}
