package markov

import (
	"errors"
	"fmt"
	"math"

	"github.com/viant/astmarkov/graph"
)

// ErrInvariant is returned when a chain violates normalization or uniqueness
var ErrInvariant = errors.New("markov: chain invariant violated")

// Tolerance bounds the accepted deviation of outgoing weight sums from 1
const Tolerance = 1e-9

// Transition is a weighted edge between type labels
type Transition struct {
	Source graph.Label `yaml:"source"`
	Dest   graph.Label `yaml:"dest"`
	Weight float64     `yaml:"weight"`
}

// Chain is a first-order Markov chain over type labels
type Chain struct {
	Order       int           `yaml:"order"`
	Types       []graph.Label `yaml:"types"`
	Transitions []Transition  `yaml:"transitions"`
}

// Weight returns the weight of the source->dest transition
func (c *Chain) Weight(source, dest graph.Label) (float64, bool) {
	for _, transition := range c.Transitions {
		if transition.Source == source && transition.Dest == dest {
			return transition.Weight, true
		}
	}
	return 0, false
}

// Outgoing returns transitions leaving source
func (c *Chain) Outgoing(source graph.Label) []Transition {
	var ret []Transition
	for _, transition := range c.Transitions {
		if transition.Source == source {
			ret = append(ret, transition)
		}
	}
	return ret
}

// Validate checks weight range, pair uniqueness and per-source normalization
func (c *Chain) Validate() error {
	sums := map[graph.Label]float64{}
	seen := map[[2]graph.Label]bool{}
	for _, transition := range c.Transitions {
		pair := [2]graph.Label{transition.Source, transition.Dest}
		if seen[pair] {
			return fmt.Errorf("%w: duplicate transition %s->%s", ErrInvariant, transition.Source, transition.Dest)
		}
		seen[pair] = true
		if transition.Weight <= 0 || transition.Weight > 1+Tolerance {
			return fmt.Errorf("%w: weight %v of %s->%s out of (0, 1]", ErrInvariant, transition.Weight, transition.Source, transition.Dest)
		}
		sums[transition.Source] += transition.Weight
	}
	for source, sum := range sums {
		if math.Abs(sum-1) > Tolerance {
			return fmt.Errorf("%w: outgoing weights of %s sum to %v", ErrInvariant, source, sum)
		}
	}
	return nil
}
