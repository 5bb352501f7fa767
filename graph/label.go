package graph

import (
	"slices"
	"strings"
)

const labelSeparator = "/"

// Label is a tuple of node types; base vertices carry one element, lifted ones one more per lift
type Label string

// NewLabel creates a label from node types
func NewLabel(types ...string) Label {
	return Label(strings.Join(types, labelSeparator))
}

// Parts returns the node types
func (l Label) Parts() []string {
	if l == "" {
		return nil
	}
	return strings.Split(string(l), labelSeparator)
}

// Len returns the tuple size
func (l Label) Len() int {
	return len(l.Parts())
}

// Last returns the last node type
func (l Label) Last() string {
	raw := string(l)
	if idx := strings.LastIndex(raw, labelSeparator); idx != -1 {
		return raw[idx+1:]
	}
	return raw
}

// Append returns l extended with a node type
func (l Label) Append(nodeType string) Label {
	if l == "" {
		return Label(nodeType)
	}
	return l + Label(labelSeparator+nodeType)
}

// CompareLabels orders labels as tuples, element by element
func CompareLabels(a, b Label) int {
	return slices.Compare(a.Parts(), b.Parts())
}

// SortLabels sorts labels in tuple order
func SortLabels(labels []Label) {
	slices.SortFunc(labels, CompareLabels)
}
