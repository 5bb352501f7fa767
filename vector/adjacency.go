package vector

import (
	"errors"
	"fmt"

	"github.com/viant/astmarkov/markov"
	"gonum.org/v1/gonum/mat"
)

// ErrDimension is returned when a chain or vector does not fit the alphabet
var ErrDimension = errors.New("vector: dimension mismatch")

// Matrix is a square adjacency matrix indexed by an alphabet
type Matrix struct {
	size  int
	dense *mat.Dense // nil for an empty alphabet
}

// Adjacency renders chain as a matrix whose cell (i, j) holds the weight of
// alphabet[i]->alphabet[j], 0 when absent. Should a pair repeat, the first weight wins.
func Adjacency(chain *markov.Chain, alphabet *Alphabet) (*Matrix, error) {
	if chain == nil {
		return nil, fmt.Errorf("%w: nil chain", markov.ErrInvariant)
	}
	n := alphabet.Len()
	ret := &Matrix{size: n}
	if n == 0 {
		if len(chain.Transitions) > 0 {
			return nil, fmt.Errorf("%w: %d transitions for an empty alphabet", ErrDimension, len(chain.Transitions))
		}
		return ret, nil
	}
	ret.dense = mat.NewDense(n, n, nil)
	written := map[[2]int]bool{}
	for _, transition := range chain.Transitions {
		i, ok := alphabet.Index(transition.Source)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not in the alphabet", ErrDimension, transition.Source)
		}
		j, ok := alphabet.Index(transition.Dest)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not in the alphabet", ErrDimension, transition.Dest)
		}
		if written[[2]int{i, j}] {
			continue
		}
		written[[2]int{i, j}] = true
		ret.dense.Set(i, j, transition.Weight)
	}
	return ret, nil
}

// Size returns the row (and column) count
func (m *Matrix) Size() int {
	return m.size
}

// At returns cell (i, j)
func (m *Matrix) At(i, j int) float64 {
	return m.dense.At(i, j)
}

// Flatten linearizes m row-major into a vector of Size()^2 entries
func (m *Matrix) Flatten() []float64 {
	n := m.size
	ret := make([]float64, n*n)
	if n == 0 {
		return ret
	}
	raw := m.dense.RawMatrix()
	for i := 0; i < n; i++ {
		copy(ret[i*n:(i+1)*n], raw.Data[i*raw.Stride:i*raw.Stride+n])
	}
	return ret
}

// Vector is a shortcut for Adjacency followed by Flatten
func Vector(chain *markov.Chain, alphabet *Alphabet) ([]float64, error) {
	matrix, err := Adjacency(chain, alphabet)
	if err != nil {
		return nil, err
	}
	return matrix.Flatten(), nil
}
