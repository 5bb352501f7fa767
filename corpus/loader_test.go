package corpus_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/astmarkov/corpus"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		location := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"task_b.csv":        "code\n\"print(x)\"\n",
		"task_a.csv":        "code,author\n\"x = 1\",ann\n\"def f():\n    return 1\",bob\n",
		"notes.csv":         "code\nignored\n",
		"nested/task_c.csv": "code\nnested\n",
	})

	samples, err := corpus.Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, "x = 1", samples[0].Code)
	assert.Equal(t, 0, samples[0].Label)
	assert.Equal(t, "task_a.csv", samples[0].Source)
	assert.Equal(t, "def f():\n    return 1", samples[1].Code)
	assert.Equal(t, 0, samples[1].Label)
	assert.Equal(t, "print(x)", samples[2].Code)
	assert.Equal(t, 1, samples[2].Label)

	assert.Equal(t, []int{0, 0, 1}, corpus.Labels(samples))
	assert.Equal(t, []string{"x = 1", "def f():\n    return 1", "print(x)"}, slices.Collect(corpus.Snippets(samples)))
}

func TestLoad_Pattern(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"task_a.csv":  "code\nx = 1\n",
		"class_a.csv": "code\ny = 2\n",
	})
	samples, err := corpus.Load(context.Background(), dir, corpus.WithPattern("class"))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, "y = 2", samples[0].Code)
}

func TestLoad_Concurrency(t *testing.T) {
	files := map[string]string{}
	for i := 0; i < 12; i++ {
		files[fmt.Sprintf("task_%02d.csv", i)] = fmt.Sprintf("code\nx = %d\n", i)
	}
	dir := writeFiles(t, files)

	for _, concurrency := range []int{1, 3, 0} {
		samples, err := corpus.Load(context.Background(), dir, corpus.WithConcurrency(concurrency))
		require.NoError(t, err)
		require.Len(t, samples, 12)
		for i, sample := range samples {
			assert.Equal(t, i, sample.Label)
			assert.Equal(t, fmt.Sprintf("x = %d", i), sample.Code)
		}
	}
}

func TestLoad_NoFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{"notes.csv": "code\nx\n"})
	_, err := corpus.Load(context.Background(), dir)
	assert.ErrorIs(t, err, corpus.ErrNoFiles)
}

func TestReadCSV(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []string
		expectErr   bool
	}{
		{description: "empty", input: ""},
		{description: "header only", input: "code\n"},
		{description: "ragged rows", input: "code,label\na\nb,1\n", expect: []string{"a", "b"}},
		{description: "quoted newline", input: "code\n\"a\nb\"\n", expect: []string{"a\nb"}},
		{description: "bad quote", input: "code\n\"a\n", expectErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			actual, err := corpus.ReadCSV(strings.NewReader(testCase.input))
			if testCase.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.expect, actual)
		})
	}
}
