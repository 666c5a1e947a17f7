package network

import "fmt"

// Builder assembles a Network from string labels. Labels are interned to
// dense ids in first-seen order; a label may be referenced by AddEdge before
// it is defined by AddVertex, but every referenced label must be defined by
// the time Build is called.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	ids     map[string]int
	labels  []string
	edges   [][]int
	rates   []int64
	defined []bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{ids: make(map[string]int)}
}

// intern returns the id of label, allocating one on first sight.
func (b *Builder) intern(label string) int {
	if id, ok := b.ids[label]; ok {
		return id
	}
	id := len(b.labels)
	b.ids[label] = id
	b.labels = append(b.labels, label)
	b.edges = append(b.edges, nil)
	b.rates = append(b.rates, 0)
	b.defined = append(b.defined, false)
	return id
}

// AddVertex defines label with the given reward rate.
// Returns ErrEmptyLabel, ErrDuplicateLabel or ErrNegativeRate.
func (b *Builder) AddVertex(label string, rate int64) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if rate < 0 {
		return fmt.Errorf("%w: %q rate=%d", ErrNegativeRate, label, rate)
	}
	id := b.intern(label)
	if b.defined[id] {
		return fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	b.defined[id] = true
	b.rates[id] = rate
	return nil
}

// AddEdge appends the one-way link from→to.
func (b *Builder) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyLabel
	}
	u, v := b.intern(from), b.intern(to)
	b.edges[u] = append(b.edges[u], v)
	return nil
}

// Connect links u and v in both directions.
func (b *Builder) Connect(u, v string) error {
	if err := b.AddEdge(u, v); err != nil {
		return err
	}
	return b.AddEdge(v, u)
}

// Build validates the collected definitions and returns the Network.
func (b *Builder) Build() (*Network, error) {
	for id, ok := range b.defined {
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, b.labels[id])
		}
	}
	return New(b.edges, b.rates, b.labels)
}
