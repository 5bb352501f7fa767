package corpus

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"sort"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"golang.org/x/sync/errgroup"
)

// ErrNoFiles is returned when a corpus folder holds no matching files
var ErrNoFiles = errors.New("corpus: no matching files")

const (
	// DefaultPattern selects corpus files by name
	DefaultPattern = "task"
	// DefaultConcurrency caps parallel file reads
	DefaultConcurrency = 4
)

// Sample is one labeled snippet
type Sample struct {
	Code   string `yaml:"code"`
	Label  int    `yaml:"label"`
	Source string `yaml:"source"`
}

type options struct {
	pattern     string
	concurrency int
	fs          afs.Service
}

// Option configures Load
type Option func(*options)

// WithPattern sets the substring a file name must contain
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithConcurrency caps how many files are read at once; non-positive values keep the default
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithFS sets the storage service
func WithFS(fs afs.Service) Option {
	return func(o *options) {
		o.fs = fs
	}
}

// Load reads a corpus folder: every file directly under URL whose name contains the
// pattern is one class, labeled by its position in name order. Files are CSV with a
// header row and one snippet per row. Files are read concurrently; samples keep file order.
func Load(ctx context.Context, URL string, opts ...Option) ([]*Sample, error) {
	o := &options{pattern: DefaultPattern, concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(o)
	}
	if o.fs == nil {
		o.fs = afs.New()
	}

	files, err := list(ctx, o, URL)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s (pattern %q)", ErrNoFiles, URL, o.pattern)
	}

	classes := make([][]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for label, name := range files {
		g.Go(func() error {
			location := url.Join(URL, name)
			data, err := o.fs.DownloadWithURL(ctx, location)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", location, err)
			}
			snippets, err := ReadCSV(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", location, err)
			}
			classes[label] = snippets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var samples []*Sample
	for label, snippets := range classes {
		for _, code := range snippets {
			samples = append(samples, &Sample{Code: code, Label: label, Source: files[label]})
		}
	}
	return samples, nil
}

// list returns the sorted names of matching files directly under URL
func list(ctx context.Context, o *options, URL string) ([]string, error) {
	var names []string
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		if info.IsDir() {
			return true, nil
		}
		if parent != "" {
			return true, nil
		}
		if strings.Contains(info.Name(), o.pattern) {
			names = append(names, info.Name())
		}
		return true, nil
	}
	if err := o.fs.Walk(ctx, URL, visitor); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", URL, err)
	}
	sort.Strings(names)
	return names, nil
}

// ReadCSV reads the first column of every row after the header
func ReadCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	var ret []string
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		ret = append(ret, record[0])
	}
	return ret, nil
}

// Snippets adapts samples to a snippet sequence
func Snippets(samples []*Sample) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, sample := range samples {
			if !yield(sample.Code) {
				return
			}
		}
	}
}

// Labels returns the class label of every sample
func Labels(samples []*Sample) []int {
	ret := make([]int, len(samples))
	for i, sample := range samples {
		ret[i] = sample.Label
	}
	return ret
}
