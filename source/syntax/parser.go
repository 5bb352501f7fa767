package syntax

import "context"

// Parser parses source code into a syntax tree
type Parser interface {
	// Parse parses src and returns the tree root; syntax errors are reported as *SyntaxError
	Parse(ctx context.Context, src []byte) (*Node, error)
}

// Normalizer erases constructs that do not change runtime meaning (type annotations).
// Implementations must not modify their input and must be idempotent.
type Normalizer interface {
	Normalize(root *Node) *Node
}

// NormalizerFunc adapts a function to the Normalizer interface
type NormalizerFunc func(root *Node) *Node

// Normalize calls fn(root)
func (fn NormalizerFunc) Normalize(root *Node) *Node {
	return fn(root)
}

// Identity is a Normalizer for languages without annotations
var Identity Normalizer = NormalizerFunc(func(root *Node) *Node { return root })
