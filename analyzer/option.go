package analyzer

import (
	"github.com/sirupsen/logrus"
	"github.com/viant/astmarkov/vector"
)

type Option func(*Analyzer)

// WithExclusions adds node types dropped from the lineage on top of the language defaults
func WithExclusions(types ...string) Option {
	return func(a *Analyzer) {
		a.exclusions = append(a.exclusions, types...)
	}
}

// WithoutDefaultExclusions drops the language default exclusions
func WithoutDefaultExclusions() Option {
	return func(a *Analyzer) {
		a.skipDefaults = true
	}
}

// WithOrder sets how many times the graph is lifted before chain estimation
func WithOrder(order int) Option {
	return func(a *Analyzer) {
		if order >= 0 {
			a.order = order
		}
	}
}

// WithLogger sets the logger used for progress reports
func WithLogger(logger *logrus.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithProgress replaces the logging progress reporter
func WithProgress(fn vector.ProgressFunc) Option {
	return func(a *Analyzer) {
		a.progress = fn
	}
}

// WithProgressInterval sets how many snippets (pass 1) and chains (pass 2) pass between reports
func WithProgressInterval(collect, vectorize int) Option {
	return func(a *Analyzer) {
		a.collectInterval = collect
		a.vectorizeInterval = vectorize
	}
}

// WithCache enables reuse of chains for identical snippets within a batch
func WithCache(enabled bool) Option {
	return func(a *Analyzer) {
		a.cache = enabled
	}
}
