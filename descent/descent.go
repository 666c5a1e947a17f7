package descent

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/bfs"
	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/network"
)

// Sentinel errors for Best.
var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("descent: network is nil")

	// ErrStartOutOfRange is returned when start is not a node id.
	ErrStartOutOfRange = errors.New("descent: start node out of range")

	// ErrNegativeBudget is returned for a budget below zero.
	ErrNegativeBudget = errors.New("descent: negative time budget")
)

// Plan is the best single-agent schedule found.
type Plan struct {
	// Reward is the total reward released by the deadline.
	Reward int64

	// Order lists the opened node ids in activation order.
	Order []int
}

// searcher holds the compressed network and the running best plan.
type searcher struct {
	rates []int64 // by small index
	nodes []int   // small index → node id
	dist  [][]int // dist[row][i]: hops from row to target i, -1 if unreachable; row k is the start
	stack []int
	best  Plan
}

// Best returns the best single-agent plan from start within budget minutes.
func Best(nw *network.Network, start, budget int) (Plan, error) {
	if nw == nil {
		return Plan{}, ErrNilNetwork
	}
	if start < 0 || start >= nw.Order() {
		return Plan{}, fmt.Errorf("%w: %d", ErrStartOutOfRange, start)
	}
	if budget < 0 {
		return Plan{}, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}

	s, err := compress(nw, start, budget)
	if err != nil {
		return Plan{}, err
	}
	k := len(s.nodes)
	s.descend(k, nw.Activatable(), budget, 0)
	return s.best, nil
}

// compress computes hop distances from the start and from every
// activatable node to every activatable node. For budget > 0, targets more
// than budget hops away can never be opened in time and are left at -1.
func compress(nw *network.Network, start, budget int) (*searcher, error) {
	universe := nw.Activatable()
	k := universe.Len()
	s := &searcher{
		rates: make([]int64, k),
		nodes: make([]int, k),
		dist:  make([][]int, k+1),
	}
	for i := range universe.Elements() {
		s.nodes[i] = nw.Node(i)
		s.rates[i] = nw.Rate(s.nodes[i])
	}

	sources := append(append([]int(nil), s.nodes...), start)
	for row, src := range sources {
		res, err := bfs.BFS(nw, src, bfs.WithMaxDepth(budget))
		if err != nil {
			return nil, fmt.Errorf("descent: distances from %d: %w", src, err)
		}
		s.dist[row] = make([]int, k)
		for i, v := range s.nodes {
			s.dist[row][i] = res.Depth[v]
		}
	}
	return s, nil
}

// descend extends the current plan from row with left minutes remaining.
func (s *searcher) descend(row int, closed bitset.Set64, left int, released int64) {
	if released > s.best.Reward {
		s.best.Reward = released
		s.best.Order = s.best.Order[:0]
		for _, i := range s.stack {
			s.best.Order = append(s.best.Order, s.nodes[i])
		}
	}
	for i := range closed.Elements() {
		d := s.dist[row][i]
		if d < 0 {
			continue
		}
		after := left - d - 1
		if after <= 0 {
			continue
		}
		rest := closed
		rest.Remove(i)
		s.stack = append(s.stack, i)
		s.descend(i, rest, after, released+s.rates[i]*int64(after))
		s.stack = s.stack[:len(s.stack)-1]
	}
}
