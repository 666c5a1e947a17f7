package frontier

import (
	"fmt"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/network"
)

// key is the domination key of a search state.
type key struct {
	node   int
	closed bitset.Set64
}

// state is an immutable snapshot of one search path.
type state struct {
	node     int
	closed   bitset.Set64 // activatable small indices not yet opened
	released int64        // reward credited up to the end of the budget
}

// relaxer encapsulates the mutable state of one BestPerSet run.
type relaxer struct {
	nw      *network.Network
	seen    map[key]int64
	current []state
	next    []state
}

// BestPerSet explores every schedule of a single agent that starts at node
// start and has budget minutes, and returns the best reward per activated
// set. See the package documentation for the transition rules.
//
// Returns ErrNilNetwork, ErrStartOutOfRange, ErrNegativeBudget, or the
// context error if cancelled between levels.
func BestPerSet(nw *network.Network, start, budget int, opts ...Option) (Table, error) {
	if nw == nil {
		return Table{}, ErrNilNetwork
	}
	if start < 0 || start >= nw.Order() {
		return Table{}, fmt.Errorf("%w: %d (order %d)", ErrStartOutOfRange, start, nw.Order())
	}
	if budget < 0 {
		return Table{}, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	universe := nw.Activatable()
	r := &relaxer{
		nw:   nw,
		seen: make(map[key]int64),
	}
	r.offer(state{node: start, closed: universe})
	r.current, r.next = r.next, nil

	// minutesLeft = budget-minute-1 must stay positive
	for minute := 0; minute+1 < budget && len(r.current) > 0; minute++ {
		select {
		case <-o.Ctx.Done():
			return Table{}, o.Ctx.Err()
		default:
		}

		left := int64(budget - minute - 1)
		for _, s := range r.current {
			r.expand(s, left)
		}
		r.current, r.next = r.next, r.current[:0]
		o.OnLevel(minute+1, len(r.current))
	}

	return r.fold(universe), nil
}

// expand generates the activation successor (if the current node is still
// closed) and one move successor per neighbour.
func (r *relaxer) expand(s state, left int64) {
	if i := r.nw.Index(s.node); i >= 0 {
		closed := s.closed
		if closed.Remove(i) {
			r.offer(state{
				node:     s.node,
				closed:   closed,
				released: s.released + r.nw.Rate(s.node)*left,
			})
		}
	}
	for _, u := range r.nw.Neighbors(s.node) {
		r.offer(state{node: u, closed: s.closed, released: s.released})
	}
}

// offer records s if it strictly improves its key and queues it for the
// next level unless nothing is left to open.
func (r *relaxer) offer(s state) {
	k := key{node: s.node, closed: s.closed}
	if best, ok := r.seen[k]; ok && best >= s.released {
		return
	}
	r.seen[k] = s.released
	if !s.closed.IsEmpty() {
		r.next = append(r.next, s)
	}
}

// fold collapses the recorded states into the per-activated-set table.
func (r *relaxer) fold(universe bitset.Set64) Table {
	best := make(map[bitset.Set64]int64)
	for k, v := range r.seen {
		opened := universe.Difference(k.closed)
		if cur, ok := best[opened]; !ok || v > cur {
			best[opened] = v
		}
	}
	return Table{Universe: universe, Best: best}
}
