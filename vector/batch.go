package vector

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/viant/astmarkov/graph"
	"github.com/viant/astmarkov/markov"
)

// ErrConsumed is returned when the vectors of a batch are iterated a second time
var ErrConsumed = errors.New("vector: batch already consumed")

// ChainFunc computes the Markov chain of one snippet
type ChainFunc func(ctx context.Context, snippet string) (*markov.Chain, error)

// SnippetError reports the snippet whose processing failed
type SnippetError struct {
	Index int
	Err   error
}

func (e *SnippetError) Error() string {
	return fmt.Sprintf("snippet %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *SnippetError) Unwrap() error {
	return e.Err
}

// Batch holds the chains of a corpus and the alphabet unioned across them.
// Vectors can be read once, in input order.
type Batch struct {
	alphabet *Alphabet
	chains   []*markov.Chain
	options  options
	consumed bool
}

// Collect runs pass 1: it computes every snippet's chain in order and unions their types.
// The first failing snippet aborts the batch with a *SnippetError so labels never drift.
func Collect(ctx context.Context, snippets iter.Seq[string], fn ChainFunc, opts ...Option) (*Batch, error) {
	ret := &Batch{options: newOptions(opts)}
	types := map[graph.Label]bool{}
	index := 0
	for snippet := range snippets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		chain, err := fn(ctx, snippet)
		if err == nil && chain == nil {
			err = fmt.Errorf("%w: no chain produced", markov.ErrInvariant)
		}
		if err != nil {
			return nil, &SnippetError{Index: index, Err: err}
		}
		ret.chains = append(ret.chains, chain)
		for _, label := range chain.Types {
			types[label] = true
		}
		index++
		ret.options.report(PhaseCollecting, index)
	}

	labels := make([]graph.Label, 0, len(types))
	for label := range types {
		labels = append(labels, label)
	}
	ret.alphabet = NewAlphabet(labels)
	return ret, nil
}

// Alphabet returns the coordinate legend shared by every vector of the batch
func (b *Batch) Alphabet() *Alphabet {
	return b.alphabet
}

// Len returns the number of snippets
func (b *Batch) Len() int {
	return len(b.chains)
}

// Vectors runs pass 2 lazily, yielding one vector per snippet in input order.
// Each chain is released once rendered; iterating again yields ErrConsumed.
func (b *Batch) Vectors() iter.Seq2[[]float64, error] {
	return func(yield func([]float64, error) bool) {
		if b.consumed {
			yield(nil, ErrConsumed)
			return
		}
		b.consumed = true
		dimension := b.alphabet.Dimension()
		for i, chain := range b.chains {
			b.chains[i] = nil
			vector, err := Vector(chain, b.alphabet)
			if err == nil && len(vector) != dimension {
				err = fmt.Errorf("%w: vector of %d entries, expected %d", ErrDimension, len(vector), dimension)
			}
			if err != nil {
				yield(nil, &SnippetError{Index: i, Err: err})
				return
			}
			b.options.report(PhaseVectorizing, i+1)
			if !yield(vector, nil) {
				return
			}
		}
	}
}

// Emit writes the alphabet, then every vector, to emitter
func (b *Batch) Emit(emitter Emitter) error {
	if err := emitter.Alphabet(b.alphabet); err != nil {
		return fmt.Errorf("failed to emit alphabet: %w", err)
	}
	index := 0
	for vector, err := range b.Vectors() {
		if err != nil {
			return err
		}
		if err := emitter.Vector(index, vector); err != nil {
			return fmt.Errorf("failed to emit vector %d: %w", index, err)
		}
		index++
	}
	return emitter.Flush()
}
