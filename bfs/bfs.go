package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/valvenet/network"
)

// queueItem pairs a node id with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	nw    *network.Network
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on nw starting from start.
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// a wrapped OnVisit error, or the context error.
func BFS(nw *network.Network, start int, opts ...Option) (*Result, error) {
	if nw == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := nw.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		nw:    nw,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)
	return w.res, w.loop()
}

// enqueue marks id seen at depth d and records its parent.
func (w *walker) enqueue(id, d, parent int) {
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, nbr := range w.nw.Neighbors(item.id) {
			if w.res.Depth[nbr] >= 0 || !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			w.enqueue(nbr, next, item.id)
		}
	}
	return nil
}
