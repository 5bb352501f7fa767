package markov

import (
	"fmt"

	"github.com/viant/astmarkov/graph"
)

// Estimate reduces g to a Markov chain over projected types.
// Types lists every present vertex type; for each source type the weight of
// source->dest is the share of its qualifying outgoing edges landing on dest.
// Edges with an absent endpoint do not qualify.
func Estimate(g *graph.Graph, p graph.Projection) (*Chain, error) {
	types := map[graph.Label]bool{}
	for key := range g.Vertices {
		if label, ok := p(key); ok {
			types[label] = true
		}
	}

	counts := map[graph.Label]map[graph.Label]int{}
	totals := map[graph.Label]int{}
	for _, edge := range g.Edges {
		source, ok := p(edge.Source)
		if !ok {
			continue
		}
		dest, ok := p(edge.Dest)
		if !ok {
			continue
		}
		if counts[source] == nil {
			counts[source] = map[graph.Label]int{}
		}
		counts[source][dest]++
		totals[source]++
	}

	chain := &Chain{Order: g.Order, Types: sortedLabels(types)}
	for _, source := range sortedKeys(counts) {
		total := totals[source]
		if total == 0 {
			return nil, fmt.Errorf("%w: no outgoing edges counted for %s", ErrInvariant, source)
		}
		for _, dest := range sortedKeys(counts[source]) {
			chain.Transitions = append(chain.Transitions, Transition{
				Source: source,
				Dest:   dest,
				Weight: float64(counts[source][dest]) / float64(total),
			})
		}
	}
	return chain, nil
}

func sortedLabels(set map[graph.Label]bool) []graph.Label {
	ret := make([]graph.Label, 0, len(set))
	for label := range set {
		ret = append(ret, label)
	}
	graph.SortLabels(ret)
	return ret
}

func sortedKeys[V any](m map[graph.Label]V) []graph.Label {
	ret := make([]graph.Label, 0, len(m))
	for label := range m {
		ret = append(ret, label)
	}
	graph.SortLabels(ret)
	return ret
}
