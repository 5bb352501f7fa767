package vector

// Phase identifies the batch pass being reported
type Phase int

const (
	// PhaseCollecting is pass 1: chains are computed and the alphabet accumulated
	PhaseCollecting Phase = iota
	// PhaseVectorizing is pass 2: chains are rendered against the alphabet
	PhaseVectorizing
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseVectorizing:
		return "vectorizing"
	default:
		return "unknown"
	}
}

// Progress is a periodic, observational batch update
type Progress struct {
	Phase     Phase
	Processed int
}

// ProgressFunc receives progress updates
type ProgressFunc func(progress Progress)

const (
	// DefaultCollectInterval is the number of snippets between pass 1 reports
	DefaultCollectInterval = 500
	// DefaultVectorizeInterval is the number of chains between pass 2 reports
	DefaultVectorizeInterval = 100
)

type options struct {
	progress          ProgressFunc
	collectInterval   int
	vectorizeInterval int
}

// Option configures a batch
type Option func(*options)

// WithProgress sets the progress callback
func WithProgress(fn ProgressFunc) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// WithProgressInterval sets how often each pass reports; non-positive values keep the default
func WithProgressInterval(collect, vectorize int) Option {
	return func(o *options) {
		if collect > 0 {
			o.collectInterval = collect
		}
		if vectorize > 0 {
			o.vectorizeInterval = vectorize
		}
	}
}

func newOptions(opts []Option) options {
	ret := options{
		collectInterval:   DefaultCollectInterval,
		vectorizeInterval: DefaultVectorizeInterval,
	}
	for _, opt := range opts {
		opt(&ret)
	}
	return ret
}

func (o *options) report(phase Phase, processed int) {
	if o.progress == nil {
		return
	}
	interval := o.collectInterval
	if phase == PhaseVectorizing {
		interval = o.vectorizeInterval
	}
	if processed%interval == 0 {
		o.progress(Progress{Phase: phase, Processed: processed})
	}
}
