package lineage

import (
	"errors"
	"fmt"

	"github.com/viant/astmarkov/source/syntax"
)

// ErrCycle is returned when a node is reachable from itself
var ErrCycle = errors.New("lineage: cycle in syntax tree")

// ID identifies a retained node within one annotation pass
type ID int

// Attachment records one event of a node being reached under a parent
type Attachment struct {
	Parent ID  `yaml:"parent"`
	Order  int `yaml:"order"` // pass-wide attachment sequence number
}

// Record holds lineage metadata of one retained node
type Record struct {
	ID          ID           `yaml:"id"`
	Type        string       `yaml:"type"`
	Attachments []Attachment `yaml:"attachments,omitempty"`
}

// Parents returns distinct parent IDs in first-attachment order
func (r *Record) Parents() []ID {
	var ret []ID
	seen := map[ID]bool{}
	for _, attachment := range r.Attachments {
		if seen[attachment.Parent] {
			continue
		}
		seen[attachment.Parent] = true
		ret = append(ret, attachment.Parent)
	}
	return ret
}

// Lineage is the side table produced by Annotate: an arena of records indexed by ID,
// plus a lookup from tree nodes to IDs. The annotated tree is left untouched.
type Lineage struct {
	Records []*Record
	root    ID
	index   map[*syntax.Node]ID
}

// Root returns the traversal root ID, false when the root was excluded
func (l *Lineage) Root() (ID, bool) {
	if len(l.Records) == 0 {
		return 0, false
	}
	return l.root, true
}

// Record returns the record for id, or nil
func (l *Lineage) Record(id ID) *Record {
	if id < 0 || int(id) >= len(l.Records) {
		return nil
	}
	return l.Records[id]
}

// Lookup returns the ID assigned to node
func (l *Lineage) Lookup(node *syntax.Node) (ID, bool) {
	id, ok := l.index[node]
	return id, ok
}

// Len returns the number of retained nodes
func (l *Lineage) Len() int {
	return len(l.Records)
}

// Annotator assigns IDs and parent lineage to syntax nodes
type Annotator struct {
	exclude map[string]bool
}

// NewAnnotator creates an annotator dropping the given node types
func NewAnnotator(exclude ...string) *Annotator {
	ret := &Annotator{exclude: map[string]bool{}}
	for _, nodeType := range exclude {
		ret.exclude[nodeType] = true
	}
	return ret
}

// Annotate is a shortcut for NewAnnotator(exclude...).Annotate(root)
func Annotate(root *syntax.Node, exclude ...string) (*Lineage, error) {
	return NewAnnotator(exclude...).Annotate(root)
}

// Annotate walks root top-down. Excluded nodes are dropped with their whole subtree;
// a node reached more than once keeps its ID and gains one attachment per visit.
func (a *Annotator) Annotate(root *syntax.Node) (*Lineage, error) {
	p := &pass{
		exclude: a.exclude,
		active:  map[*syntax.Node]bool{},
		lineage: &Lineage{index: map[*syntax.Node]ID{}},
	}
	if err := p.visit(root, 0, false); err != nil {
		return nil, err
	}
	return p.lineage, nil
}

type pass struct {
	exclude map[string]bool
	active  map[*syntax.Node]bool
	lineage *Lineage
	order   int
}

func (p *pass) visit(node *syntax.Node, parent ID, hasParent bool) error {
	if node == nil || p.exclude[node.Type] {
		return nil
	}
	if p.active[node] {
		return fmt.Errorf("%w: %s at %d:%d", ErrCycle, node.Type, node.Span.Start.Line, node.Span.Start.Column)
	}
	id, seen := p.lineage.index[node]
	if !seen {
		id = ID(len(p.lineage.Records))
		p.lineage.Records = append(p.lineage.Records, &Record{ID: id, Type: node.Type})
		p.lineage.index[node] = id
		if !hasParent {
			p.lineage.root = id
		}
	}
	if hasParent {
		record := p.lineage.Records[id]
		record.Attachments = append(record.Attachments, Attachment{Parent: parent, Order: p.order})
		p.order++
	}

	p.active[node] = true
	for _, child := range node.Children {
		if err := p.visit(child, id, true); err != nil {
			return err
		}
	}
	delete(p.active, node)
	return nil
}
