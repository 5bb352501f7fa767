package graph

// Projection maps a vertex key to its type label; false marks the vertex as absent,
// which keeps it out of chain estimation and lifting
type Projection func(key Key) (Label, bool)

// Without wraps p so that the given labels project to absent (root or sentinel types)
func Without(p Projection, labels ...Label) Projection {
	skip := map[Label]bool{}
	for _, label := range labels {
		skip[label] = true
	}
	return func(key Key) (Label, bool) {
		label, ok := p(key)
		if !ok || skip[label] {
			return "", false
		}
		return label, true
	}
}

// Suffix wraps p keeping only the last n elements of every label
func Suffix(p Projection, n int) Projection {
	return func(key Key) (Label, bool) {
		label, ok := p(key)
		if !ok {
			return "", false
		}
		parts := label.Parts()
		if n > 0 && len(parts) > n {
			parts = parts[len(parts)-n:]
		}
		return NewLabel(parts...), true
	}
}
