package frontier

import (
	"context"
	"errors"

	"github.com/katalvlaran/valvenet/bitset"
)

// Sentinel errors for BestPerSet.
var (
	// ErrNilNetwork is returned when a nil *network.Network is passed.
	ErrNilNetwork = errors.New("frontier: network is nil")

	// ErrStartOutOfRange is returned when the start node is not in the network.
	ErrStartOutOfRange = errors.New("frontier: start node out of range")

	// ErrNegativeBudget is returned for a time budget below zero.
	ErrNegativeBudget = errors.New("frontier: negative time budget")
)

// Option configures BestPerSet.
type Option func(*Options)

// Options holds the tunables of BestPerSet.
type Options struct {
	// Ctx is checked once per level; defaults to context.Background().
	Ctx context.Context

	// OnLevel is called after each level is expanded with the elapsed minute
	// (1-based) and the number of states carried into the next level.
	OnLevel func(minute, live int)
}

// DefaultOptions returns background context and a no-op OnLevel hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLevel: func(int, int) {},
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLevel registers a per-level observer.
func WithOnLevel(fn func(minute, live int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}

// Table maps an activated set to the best reward of any schedule that
// activates exactly that set within the budget. It is read-only once
// returned by BestPerSet.
type Table struct {
	// Universe is the set of all activatable small indices.
	Universe bitset.Set64

	// Best holds the best reward per activated set.
	Best map[bitset.Set64]int64
}

// Len returns the number of activated sets in t.
func (t Table) Len() int { return len(t.Best) }

// Lookup returns the best reward for exactly the activated set s.
func (t Table) Lookup(s bitset.Set64) (int64, bool) {
	v, ok := t.Best[s]
	return v, ok
}

// BestSingle returns the maximum reward across all entries of t, or 0 for
// an empty table.
func BestSingle(t Table) int64 {
	var best int64
	for _, v := range t.Best {
		if v > best {
			best = v
		}
	}
	return best
}
