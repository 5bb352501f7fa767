package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDanglingEdge is returned when an edge references a missing vertex
var ErrDanglingEdge = errors.New("graph: edge endpoint is not a vertex")

// Edge represents a directed edge between vertices
type Edge struct {
	Source Key `yaml:"source"`
	Dest   Key `yaml:"dest"`
}

// Graph is a directed graph of typed vertices. Order is 0 for graphs built from a
// lineage and grows by one with each Lift.
type Graph struct {
	Order    int           `yaml:"order"`
	Vertices map[Key]Label `yaml:"vertices"`
	Edges    []Edge        `yaml:"edges"`
	edgeSet  map[Edge]bool
}

// New creates an empty graph of the given order
func New(order int) *Graph {
	return &Graph{
		Order:    order,
		Vertices: map[Key]Label{},
		edgeSet:  map[Edge]bool{},
	}
}

// AddVertex adds or relabels a vertex
func (g *Graph) AddVertex(key Key, label Label) {
	if g.Vertices == nil {
		g.Vertices = map[Key]Label{}
	}
	g.Vertices[key] = label
}

// HasVertex reports whether key is a vertex
func (g *Graph) HasVertex(key Key) bool {
	_, ok := g.Vertices[key]
	return ok
}

// AddEdge adds a directed edge; duplicates are ignored and reported as false
func (g *Graph) AddEdge(source, dest Key) bool {
	edge := Edge{Source: source, Dest: dest}
	if g.edgeSet == nil {
		g.edgeSet = map[Edge]bool{}
		for _, existing := range g.Edges {
			g.edgeSet[existing] = true
		}
	}
	if g.edgeSet[edge] {
		return false
	}
	g.edgeSet[edge] = true
	g.Edges = append(g.Edges, edge)
	return true
}

// HasEdge reports whether the edge exists
func (g *Graph) HasEdge(source, dest Key) bool {
	edge := Edge{Source: source, Dest: dest}
	if g.edgeSet == nil {
		for _, existing := range g.Edges {
			if existing == edge {
				return true
			}
		}
		return false
	}
	return g.edgeSet[edge]
}

// Outgoing returns destinations of edges leaving key, in insertion order
func (g *Graph) Outgoing(key Key) []Key {
	var ret []Key
	for _, edge := range g.Edges {
		if edge.Source == key {
			ret = append(ret, edge.Dest)
		}
	}
	return ret
}

// Keys returns vertex keys sorted
func (g *Graph) Keys() []Key {
	ret := make([]Key, 0, len(g.Vertices))
	for key := range g.Vertices {
		ret = append(ret, key)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// Projection returns the projection reading vertex labels; unknown keys and empty labels are absent
func (g *Graph) Projection() Projection {
	return func(key Key) (Label, bool) {
		label, ok := g.Vertices[key]
		return label, ok && label != ""
	}
}

// LabelEdges returns the (source label, dest label) pair of every edge, sorted.
// Unlike keys, the result is stable across runs for the same input.
func (g *Graph) LabelEdges() [][2]Label {
	ret := make([][2]Label, 0, len(g.Edges))
	for _, edge := range g.Edges {
		ret = append(ret, [2]Label{g.Vertices[edge.Source], g.Vertices[edge.Dest]})
	}
	sort.Slice(ret, func(i, j int) bool {
		if c := CompareLabels(ret[i][0], ret[j][0]); c != 0 {
			return c < 0
		}
		return CompareLabels(ret[i][1], ret[j][1]) < 0
	})
	return ret
}

// Validate checks that every edge endpoint is a vertex
func (g *Graph) Validate() error {
	for _, edge := range g.Edges {
		if !g.HasVertex(edge.Source) {
			return fmt.Errorf("%w: %s", ErrDanglingEdge, edge.Source)
		}
		if !g.HasVertex(edge.Dest) {
			return fmt.Errorf("%w: %s", ErrDanglingEdge, edge.Dest)
		}
	}
	return nil
}
