package graph

// Lift returns the graph of length-2 paths of g, one order higher.
// For edges s->m and m->d it adds vertex s+node(m) labeled p(s)+last(p(m)),
// vertex m+node(d) labeled p(m)+last(p(d)), and an edge between them, where node(v)
// is the lineage ID of the syntax node v stands for. Every attachment of a shared
// node keeps its own lifted vertex. Paths touching a vertex that projects to absent are skipped.
func Lift(g *Graph, p Projection) *Graph {
	ret := New(g.Order + 1)
	outgoing := map[Key][]Key{}
	for _, edge := range g.Edges {
		outgoing[edge.Source] = append(outgoing[edge.Source], edge.Dest)
	}
	for _, edge := range g.Edges {
		source, middle := edge.Source, edge.Dest
		sourceLabel, ok := p(source)
		if !ok {
			continue
		}
		middleLabel, ok := p(middle)
		if !ok {
			continue
		}
		middleNode, ok := nodeOf(g.Order, middle)
		if !ok {
			continue
		}
		for _, dest := range outgoing[middle] {
			destLabel, ok := p(dest)
			if !ok {
				continue
			}
			destNode, ok := nodeOf(g.Order, dest)
			if !ok {
				continue
			}
			liftedSource := source.Append(middleNode)
			liftedDest := middle.Append(destNode)
			ret.AddVertex(liftedSource, sourceLabel.Append(middleLabel.Last()))
			ret.AddVertex(liftedDest, middleLabel.Append(destLabel.Last()))
			ret.AddEdge(liftedSource, liftedDest)
		}
	}
	return ret
}
