package vector_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/astmarkov/graph"
	"github.com/viant/astmarkov/markov"
	"github.com/viant/astmarkov/vector"
)

// chains maps snippet text to a prepared chain
var chains = map[string]*markov.Chain{
	"assign": {
		Types: []graph.Label{"assignment", "constant", "module", "name"},
		Transitions: []markov.Transition{
			{Source: "assignment", Dest: "constant", Weight: 0.5},
			{Source: "assignment", Dest: "name", Weight: 0.5},
			{Source: "module", Dest: "assignment", Weight: 1},
		},
	},
	"call": {
		Types: []graph.Label{"call", "module", "name"},
		Transitions: []markov.Transition{
			{Source: "call", Dest: "name", Weight: 1},
			{Source: "module", Dest: "call", Weight: 1},
		},
	},
	"empty": {},
}

func lookup(_ context.Context, snippet string) (*markov.Chain, error) {
	chain, ok := chains[snippet]
	if !ok {
		return nil, fmt.Errorf("unknown snippet %q", snippet)
	}
	return chain, nil
}

func collect(t *testing.T, snippets ...string) *vector.Batch {
	t.Helper()
	batch, err := vector.Collect(context.Background(), slices.Values(snippets), lookup)
	require.NoError(t, err)
	return batch
}

func vectors(t *testing.T, batch *vector.Batch) [][]float64 {
	t.Helper()
	var ret [][]float64
	for v, err := range batch.Vectors() {
		require.NoError(t, err)
		ret = append(ret, v)
	}
	return ret
}

func TestAlphabet(t *testing.T) {
	alphabet := vector.NewAlphabet(
		[]graph.Label{"name", "module"},
		[]graph.Label{"call", "name"},
	)
	assert.Equal(t, []graph.Label{"call", "module", "name"}, alphabet.Labels())
	assert.Equal(t, 3, alphabet.Len())
	assert.Equal(t, 9, alphabet.Dimension())
	index, ok := alphabet.Index("module")
	assert.True(t, ok)
	assert.Equal(t, 1, index)
	assert.False(t, alphabet.Contains("assignment"))
	assert.Equal(t, "call->call", alphabet.Coordinates()[0])
	assert.Equal(t, "module->name", alphabet.Coordinates()[5])
}

func TestAdjacency(t *testing.T) {
	alphabet := vector.NewAlphabet(chains["assign"].Types)
	matrix, err := vector.Adjacency(chains["assign"], alphabet)
	require.NoError(t, err)
	assert.Equal(t, 4, matrix.Size())
	assert.Equal(t, 0.5, matrix.At(0, 1))
	assert.Equal(t, 0.5, matrix.At(0, 3))
	assert.Equal(t, 1.0, matrix.At(2, 0))
	assert.Equal(t, []float64{
		0, 0.5, 0, 0.5,
		0, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
	}, matrix.Flatten())
}

func TestAdjacency_Errors(t *testing.T) {
	t.Run("label outside alphabet", func(t *testing.T) {
		_, err := vector.Adjacency(chains["assign"], vector.NewAlphabet([]graph.Label{"module"}))
		assert.ErrorIs(t, err, vector.ErrDimension)
	})
	t.Run("empty alphabet", func(t *testing.T) {
		_, err := vector.Adjacency(chains["call"], vector.NewAlphabet())
		assert.ErrorIs(t, err, vector.ErrDimension)

		v, err := vector.Vector(chains["empty"], vector.NewAlphabet())
		require.NoError(t, err)
		assert.Empty(t, v)
	})
	t.Run("duplicate pair keeps first weight", func(t *testing.T) {
		chain := &markov.Chain{Transitions: []markov.Transition{
			{Source: "a", Dest: "b", Weight: 0.25},
			{Source: "a", Dest: "b", Weight: 0.75},
		}}
		matrix, err := vector.Adjacency(chain, vector.NewAlphabet([]graph.Label{"a", "b"}))
		require.NoError(t, err)
		assert.Equal(t, 0.25, matrix.At(0, 1))
	})
}

func TestCollect(t *testing.T) {
	batch := collect(t, "assign", "call", "empty")
	assert.Equal(t, 3, batch.Len())
	assert.Equal(t, []graph.Label{"assignment", "call", "constant", "module", "name"}, batch.Alphabet().Labels())

	actual := vectors(t, batch)
	require.Len(t, actual, 3)
	for _, v := range actual {
		assert.Len(t, v, batch.Alphabet().Dimension())
	}
	// module->call lives at row 3, column 1
	assert.Equal(t, 1.0, actual[1][3*5+1])
	assert.Equal(t, make([]float64, 25), actual[2])
}

func TestCollect_EmptyCorpus(t *testing.T) {
	batch := collect(t)
	assert.Equal(t, 0, batch.Len())
	assert.Equal(t, 0, batch.Alphabet().Len())
	assert.Empty(t, vectors(t, batch))
}

func TestCollect_ReorderStable(t *testing.T) {
	forward := collect(t, "assign", "call")
	backward := collect(t, "call", "assign")
	assert.Equal(t, forward.Alphabet().Labels(), backward.Alphabet().Labels())

	forwardVectors := vectors(t, forward)
	backwardVectors := vectors(t, backward)
	assert.Equal(t, forwardVectors[0], backwardVectors[1])
	assert.Equal(t, forwardVectors[1], backwardVectors[0])
}

func TestCollect_SnippetError(t *testing.T) {
	_, err := vector.Collect(context.Background(), slices.Values([]string{"assign", "broken"}), lookup)
	var snippetErr *vector.SnippetError
	require.True(t, errors.As(err, &snippetErr))
	assert.Equal(t, 1, snippetErr.Index)
	assert.Contains(t, err.Error(), "snippet 1")
}

func TestCollect_NilChain(t *testing.T) {
	nilChain := func(_ context.Context, snippet string) (*markov.Chain, error) {
		if snippet == "assign" {
			return chains[snippet], nil
		}
		return nil, nil
	}
	_, err := vector.Collect(context.Background(), slices.Values([]string{"assign", "missing"}), nilChain)
	var snippetErr *vector.SnippetError
	require.True(t, errors.As(err, &snippetErr))
	assert.Equal(t, 1, snippetErr.Index)
	assert.ErrorIs(t, err, markov.ErrInvariant)

	_, err = vector.Adjacency(nil, vector.NewAlphabet())
	assert.ErrorIs(t, err, markov.ErrInvariant)
}

func TestCollect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := vector.Collect(ctx, slices.Values([]string{"assign"}), lookup)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatch_Consumed(t *testing.T) {
	batch := collect(t, "assign")
	assert.Len(t, vectors(t, batch), 1)
	for v, err := range batch.Vectors() {
		assert.Nil(t, v)
		assert.ErrorIs(t, err, vector.ErrConsumed)
	}
}

func TestProgress(t *testing.T) {
	var updates []vector.Progress
	batch, err := vector.Collect(context.Background(),
		slices.Values([]string{"assign", "call", "empty", "assign"}), lookup,
		vector.WithProgress(func(progress vector.Progress) { updates = append(updates, progress) }),
		vector.WithProgressInterval(2, 3),
	)
	require.NoError(t, err)
	vectors(t, batch)
	assert.Equal(t, []vector.Progress{
		{Phase: vector.PhaseCollecting, Processed: 2},
		{Phase: vector.PhaseCollecting, Processed: 4},
		{Phase: vector.PhaseVectorizing, Processed: 3},
	}, updates)
	assert.Equal(t, "vectorizing", vector.PhaseVectorizing.String())
}

func TestEmitter(t *testing.T) {
	chains["edge"] = &markov.Chain{
		Types:       []graph.Label{"a", "b"},
		Transitions: []markov.Transition{{Source: "a", Dest: "b", Weight: 1}},
	}
	defer delete(chains, "edge")

	var testCases = []struct {
		description string
		format      string
		classes     []int
		expect      string
	}{
		{
			description: "csv with classes",
			format:      "csv",
			classes:     []int{7},
			expect:      "index,class,a->a,a->b,b->a,b->b\n0,7,0,1,0,0\n",
		},
		{
			description: "csv without classes",
			format:      "",
			expect:      "index,a->a,a->b,b->a,b->b\n0,0,1,0,0\n",
		},
		{
			description: "yaml",
			format:      "yaml",
			classes:     []int{7},
			expect:      "alphabet:\n    - a\n    - b\n---\nindex: 0\nclass: 7\nvalues: [0, 1, 0, 0]\n",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			buf := &bytes.Buffer{}
			emitter, err := vector.NewEmitter(testCase.format, buf, testCase.classes)
			require.NoError(t, err)
			require.NoError(t, collect(t, "edge").Emit(emitter))
			assert.Equal(t, testCase.expect, buf.String())
		})
	}
}

func TestEmitter_Errors(t *testing.T) {
	_, err := vector.NewEmitter("parquet", &bytes.Buffer{}, nil)
	assert.Error(t, err)

	emitter, err := vector.NewEmitter("csv", &bytes.Buffer{}, []int{})
	require.NoError(t, err)
	assert.ErrorIs(t, collect(t, "assign").Emit(emitter), vector.ErrDimension)
}
