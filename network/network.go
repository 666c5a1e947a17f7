package network

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bitset"
)

// New validates the given tables and returns a Network that owns copies of
// them. labels may be nil; otherwise it must have one entry per node.
//
// Validation order: shape, neighbour ids, rate signs, activatable count.
//
// Complexity: O(V + E).
func New(edges [][]int, rates []int64, labels []string) (*Network, error) {
	n := len(edges)
	if len(rates) != n || (labels != nil && len(labels) != n) {
		return nil, fmt.Errorf("%w: edges=%d rates=%d labels=%d", ErrShapeMismatch, n, len(rates), len(labels))
	}

	nw := &Network{
		edges:  make([][]int, n),
		rates:  make([]int64, n),
		labels: make([]string, n),
		index:  make([]int, n),
	}
	for v, nbrs := range edges {
		for _, u := range nbrs {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%w: %d→%d (order %d)", ErrNeighborOutOfRange, v, u, n)
			}
		}
		nw.edges[v] = append([]int(nil), nbrs...)
	}
	copy(nw.rates, rates)
	if labels != nil {
		copy(nw.labels, labels)
		nw.ids = make(map[string]int, n)
		for v, l := range labels {
			if l != "" {
				nw.ids[l] = v
			}
		}
	}

	for v, r := range nw.rates {
		if r < 0 {
			return nil, fmt.Errorf("%w: node %d rate=%d", ErrNegativeRate, v, r)
		}
		if r == 0 {
			nw.index[v] = -1
			continue
		}
		nw.index[v] = len(nw.nodes)
		nw.nodes = append(nw.nodes, v)
	}
	if len(nw.nodes) > bitset.MaxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyActivatable, len(nw.nodes), bitset.MaxSize)
	}

	return nw, nil
}

// Order returns the number of nodes.
func (nw *Network) Order() int { return len(nw.edges) }

// Neighbors returns the adjacency list of v. The slice must not be modified.
func (nw *Network) Neighbors(v int) []int { return nw.edges[v] }

// Rate returns the reward per minute of v once activated.
func (nw *Network) Rate(v int) int64 { return nw.rates[v] }

// Label returns the label of v, or "" for unlabelled networks.
func (nw *Network) Label(v int) string { return nw.labels[v] }

// ID resolves a label to its node id.
func (nw *Network) ID(label string) (int, error) {
	v, ok := nw.ids[label]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLabel, label)
	}
	return v, nil
}

// Activatable returns the universe of activatable nodes as small indices.
func (nw *Network) Activatable() bitset.Set64 {
	return bitset.Full(len(nw.nodes))
}

// Index returns the small index of node v, or -1 when v has no reward.
func (nw *Network) Index(v int) int { return nw.index[v] }

// Node returns the node id of small index i.
func (nw *Network) Node(i int) int { return nw.nodes[i] }

// Labels renders a set of small indices as node labels (or ids when the
// network is unlabelled), in ascending small-index order.
func (nw *Network) Labels(s bitset.Set64) []string {
	out := make([]string, 0, s.Len())
	for i := range s.Elements() {
		v := nw.nodes[i]
		if l := nw.labels[v]; l != "" {
			out = append(out, l)
		} else {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}
