package vector

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Emitter renders a batch: the alphabet legend first, then one vector per snippet
type Emitter interface {
	Alphabet(alphabet *Alphabet) error
	Vector(index int, vector []float64) error
	Flush() error
}

// NewEmitter returns the emitter for format ("csv" or "yaml"); classes, when set,
// holds the class label of every snippet
func NewEmitter(format string, w io.Writer, classes []int) (Emitter, error) {
	switch format {
	case "", "csv":
		return NewCSVEmitter(w, classes), nil
	case "yaml", "yml":
		return NewYAMLEmitter(w, classes), nil
	}
	return nil, fmt.Errorf("unsupported output format: %s", format)
}

// CSVEmitter writes a header of coordinate names followed by one row per snippet
type CSVEmitter struct {
	writer  *csv.Writer
	classes []int
}

// NewCSVEmitter creates a CSV emitter
func NewCSVEmitter(w io.Writer, classes []int) *CSVEmitter {
	return &CSVEmitter{writer: csv.NewWriter(w), classes: classes}
}

// Alphabet writes the header row
func (e *CSVEmitter) Alphabet(alphabet *Alphabet) error {
	header := []string{"index"}
	if e.classes != nil {
		header = append(header, "class")
	}
	header = append(header, alphabet.Coordinates()...)
	return e.writer.Write(header)
}

// Vector writes one row
func (e *CSVEmitter) Vector(index int, vector []float64) error {
	record := make([]string, 0, len(vector)+2)
	record = append(record, strconv.Itoa(index))
	if e.classes != nil {
		class, err := classOf(e.classes, index)
		if err != nil {
			return err
		}
		record = append(record, strconv.Itoa(class))
	}
	for _, value := range vector {
		record = append(record, strconv.FormatFloat(value, 'g', -1, 64))
	}
	return e.writer.Write(record)
}

// Flush flushes buffered rows
func (e *CSVEmitter) Flush() error {
	e.writer.Flush()
	return e.writer.Error()
}

// YAMLEmitter writes a multi-document stream: the alphabet, then one document per vector
type YAMLEmitter struct {
	encoder *yaml.Encoder
	classes []int
}

type alphabetDocument struct {
	Alphabet []string `yaml:"alphabet"`
}

type vectorDocument struct {
	Index  int       `yaml:"index"`
	Class  *int      `yaml:"class,omitempty"`
	Values []float64 `yaml:"values,flow"`
}

// NewYAMLEmitter creates a YAML emitter
func NewYAMLEmitter(w io.Writer, classes []int) *YAMLEmitter {
	return &YAMLEmitter{encoder: yaml.NewEncoder(w), classes: classes}
}

// Alphabet writes the alphabet document
func (e *YAMLEmitter) Alphabet(alphabet *Alphabet) error {
	doc := alphabetDocument{Alphabet: []string{}}
	for _, label := range alphabet.Labels() {
		doc.Alphabet = append(doc.Alphabet, string(label))
	}
	return e.encoder.Encode(doc)
}

// Vector writes one vector document
func (e *YAMLEmitter) Vector(index int, vector []float64) error {
	doc := vectorDocument{Index: index, Values: vector}
	if e.classes != nil {
		class, err := classOf(e.classes, index)
		if err != nil {
			return err
		}
		doc.Class = &class
	}
	return e.encoder.Encode(doc)
}

// Flush closes the YAML stream
func (e *YAMLEmitter) Flush() error {
	return e.encoder.Close()
}

func classOf(classes []int, index int) (int, error) {
	if index >= len(classes) {
		return 0, fmt.Errorf("%w: no class for snippet %d of %d", ErrDimension, index, len(classes))
	}
	return classes[index], nil
}
