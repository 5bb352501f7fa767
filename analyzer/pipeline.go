package analyzer

import (
	"context"
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/viant/astmarkov/graph"
	"github.com/viant/astmarkov/lineage"
	"github.com/viant/astmarkov/markov"
	"github.com/viant/astmarkov/source"
	"github.com/viant/astmarkov/source/syntax"
	"github.com/viant/astmarkov/vector"
)

// Analyzer turns snippets of one language into Markov chains and feature vectors
type Analyzer struct {
	language          *source.Language
	exclusions        []string
	skipDefaults      bool
	order             int
	logger            *logrus.Logger
	progress          vector.ProgressFunc
	collectInterval   int
	vectorizeInterval int
	cache             bool
}

// New creates an analyzer for language
func New(language *source.Language, opts ...Option) *Analyzer {
	ret := &Analyzer{
		language: language,
		logger:   logrus.StandardLogger(),
		cache:    true,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Language returns the analyzed language
func (a *Analyzer) Language() *source.Language {
	return a.language
}

// Exclusions returns the node types dropped from the lineage
func (a *Analyzer) Exclusions() []string {
	var ret []string
	if !a.skipDefaults {
		ret = append(ret, a.language.Exclusions...)
	}
	return append(ret, a.exclusions...)
}

// Tree parses and normalizes src
func (a *Analyzer) Tree(ctx context.Context, src []byte) (*syntax.Node, error) {
	root, err := a.language.Parser.Parse(ctx, src)
	if err != nil {
		return nil, err
	}
	if a.language.Normalizer == nil {
		return root, nil
	}
	return a.language.Normalizer.Normalize(root), nil
}

// Lineage parses, normalizes and annotates src
func (a *Analyzer) Lineage(ctx context.Context, src []byte) (*lineage.Lineage, error) {
	root, err := a.Tree(ctx, src)
	if err != nil {
		return nil, err
	}
	return lineage.Annotate(root, a.Exclusions()...)
}

// Graph builds the order-0 graph of src
func (a *Analyzer) Graph(ctx context.Context, src []byte) (*graph.Graph, error) {
	l, err := a.Lineage(ctx, src)
	if err != nil {
		return nil, err
	}
	return graph.Build(l)
}

// Chain builds the graph of src, lifts it to the configured order and estimates its chain
func (a *Analyzer) Chain(ctx context.Context, src []byte) (*markov.Chain, error) {
	g, err := a.Graph(ctx, src)
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.order; i++ {
		g = graph.Lift(g, g.Projection())
	}
	chain, err := markov.Estimate(g, g.Projection())
	if err != nil {
		return nil, fmt.Errorf("failed to estimate chain: %w", err)
	}
	return chain, nil
}

// Vectorize runs pass 1 over snippets and returns the batch holding the alphabet;
// vectors are produced lazily by Batch.Vectors
func (a *Analyzer) Vectorize(ctx context.Context, snippets iter.Seq[string]) (*vector.Batch, error) {
	chainFn := func(ctx context.Context, snippet string) (*markov.Chain, error) {
		return a.Chain(ctx, []byte(snippet))
	}
	if a.cache {
		chainFn = cached(chainFn)
	}
	progress := a.progress
	if progress == nil {
		progress = a.logProgress
	}
	return vector.Collect(ctx, snippets, chainFn,
		vector.WithProgress(progress),
		vector.WithProgressInterval(a.collectInterval, a.vectorizeInterval),
	)
}

func (a *Analyzer) logProgress(progress vector.Progress) {
	entry := a.logger.WithFields(logrus.Fields{
		"language":  a.language.Name,
		"phase":     progress.Phase.String(),
		"processed": progress.Processed,
	})
	switch progress.Phase {
	case vector.PhaseCollecting:
		entry.Infof("Processed %d snippets...", progress.Processed)
	default:
		entry.Infof("Vectorized %d chains...", progress.Processed)
	}
}

// cached reuses the chain of identical snippets; chains are never mutated downstream
func cached(fn vector.ChainFunc) vector.ChainFunc {
	chains := map[uint64]*markov.Chain{}
	return func(ctx context.Context, snippet string) (*markov.Chain, error) {
		digest := Hash([]byte(snippet))
		if chain, ok := chains[digest]; ok {
			return chain, nil
		}
		chain, err := fn(ctx, snippet)
		if err != nil {
			return nil, err
		}
		chains[digest] = chain
		return chain, nil
	}
}
