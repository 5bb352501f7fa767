package graph

import (
	"errors"
	"fmt"

	"github.com/viant/astmarkov/lineage"
)

// ErrOrphan is returned when a non-root lineage record has no parent
var ErrOrphan = errors.New("graph: non-root node without parent")

// Build creates an order-0 graph from a lineage.
// A node with one distinct parent becomes vertex (id). A node attached under several
// parents becomes one composite vertex (id, parent) per distinct parent, so every
// attachment context stays a separate vertex. Edges run from every key of the parent.
// Parents are counted distinct: repeat attachments to the same parent keep the plain key.
func Build(l *lineage.Lineage) (*Graph, error) {
	g := New(0)
	root, ok := l.Root()
	if !ok {
		return g, nil
	}
	for _, record := range l.Records {
		label := NewLabel(record.Type)
		if record.ID == root {
			g.AddVertex(NewKey(record.ID), label)
			continue
		}
		parents := record.Parents()
		switch len(parents) {
		case 0:
			return nil, fmt.Errorf("%w: %s (id %d)", ErrOrphan, record.Type, record.ID)
		case 1:
			key := NewKey(record.ID)
			g.AddVertex(key, label)
			for _, parentKey := range keysOf(l, parents[0]) {
				g.AddEdge(parentKey, key)
			}
		default:
			for _, parent := range parents {
				key := NewKey(record.ID, parent)
				if g.HasVertex(key) {
					continue
				}
				g.AddVertex(key, label)
				for _, parentKey := range keysOf(l, parent) {
					g.AddEdge(parentKey, key)
				}
			}
		}
	}
	return g, nil
}

// keysOf returns the vertex keys Build assigns to id
func keysOf(l *lineage.Lineage, id lineage.ID) []Key {
	record := l.Record(id)
	if record == nil {
		return nil
	}
	parents := record.Parents()
	if len(parents) <= 1 {
		return []Key{NewKey(id)}
	}
	ret := make([]Key, len(parents))
	for i, parent := range parents {
		ret[i] = NewKey(id, parent)
	}
	return ret
}
