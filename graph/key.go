package graph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/viant/astmarkov/lineage"
)

const keySeparator = ":"

// Key identifies a vertex as an ordered sequence of lineage IDs.
// Base vertices carry one ID (two for composite keys); each lift appends one more.
type Key string

// NewKey creates a key from IDs
func NewKey(ids ...lineage.ID) Key {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(int(id))
	}
	return Key(strings.Join(parts, keySeparator))
}

// IDs returns the underlying IDs; a part that is not an ID fails the whole key
func (k Key) IDs() ([]lineage.ID, error) {
	if k == "" {
		return nil, nil
	}
	parts := strings.Split(string(k), keySeparator)
	ret := make([]lineage.ID, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", k, err)
		}
		ret = append(ret, lineage.ID(id))
	}
	return ret, nil
}

// Len returns the number of IDs
func (k Key) Len() int {
	if k == "" {
		return 0
	}
	return strings.Count(string(k), keySeparator) + 1
}

// First returns the first ID, false for an empty or malformed key
func (k Key) First() (lineage.ID, bool) {
	raw := string(k)
	if idx := strings.Index(raw, keySeparator); idx != -1 {
		raw = raw[:idx]
	}
	return parseID(raw)
}

// Last returns the last ID, false for an empty or malformed key
func (k Key) Last() (lineage.ID, bool) {
	raw := string(k)
	if idx := strings.LastIndex(raw, keySeparator); idx != -1 {
		raw = raw[idx+1:]
	}
	return parseID(raw)
}

// Append returns k extended with id
func (k Key) Append(id lineage.ID) Key {
	if k == "" {
		return NewKey(id)
	}
	return k + Key(keySeparator+strconv.Itoa(int(id)))
}

// nodeOf returns the lineage ID of the syntax node a vertex of a graph of the given order ends on.
// Order-0 keys lead with the node ID, composite (id, parent) keys included; lifted keys end with it.
func nodeOf(order int, k Key) (lineage.ID, bool) {
	if order == 0 {
		return k.First()
	}
	return k.Last()
}

func parseID(raw string) (lineage.ID, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return lineage.ID(id), true
}
