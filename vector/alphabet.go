package vector

import (
	"github.com/viant/astmarkov/graph"
)

// Alphabet is the sorted, corpus-wide set of type labels; it fixes the
// row/column order of adjacency matrices and the meaning of vector coordinates
type Alphabet struct {
	labels []graph.Label
	index  map[graph.Label]int
}

// NewAlphabet returns the sorted union of the given label sets
func NewAlphabet(sets ...[]graph.Label) *Alphabet {
	ret := &Alphabet{index: map[graph.Label]int{}}
	for _, set := range sets {
		for _, label := range set {
			if _, ok := ret.index[label]; ok {
				continue
			}
			ret.index[label] = -1
			ret.labels = append(ret.labels, label)
		}
	}
	graph.SortLabels(ret.labels)
	for i, label := range ret.labels {
		ret.index[label] = i
	}
	return ret
}

// Len returns the number of labels
func (a *Alphabet) Len() int {
	return len(a.labels)
}

// Dimension returns the length of vectors rendered against a
func (a *Alphabet) Dimension() int {
	return len(a.labels) * len(a.labels)
}

// Labels returns a copy of the sorted labels
func (a *Alphabet) Labels() []graph.Label {
	return append([]graph.Label(nil), a.labels...)
}

// Index returns the row/column of label
func (a *Alphabet) Index(label graph.Label) (int, bool) {
	i, ok := a.index[label]
	return i, ok
}

// Contains reports whether label belongs to a
func (a *Alphabet) Contains(label graph.Label) bool {
	_, ok := a.index[label]
	return ok
}

// Coordinates names every vector coordinate as "source->dest", row-major
func (a *Alphabet) Coordinates() []string {
	ret := make([]string, 0, a.Dimension())
	for _, source := range a.labels {
		for _, dest := range a.labels {
			ret = append(ret, string(source)+"->"+string(dest))
		}
	}
	return ret
}
