package dual

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/frontier"
	"github.com/katalvlaran/valvenet/network"
)

// ErrNegativeDelay is returned by Solve for a setup delay below zero.
var ErrNegativeDelay = errors.New("dual: negative setup delay")

// BestPair returns the best total reward of two agents whose activated sets
// are disjoint, each achieving its entry in t. It returns 0 for an empty
// table; with the empty set present it is never below frontier.BestSingle(t).
func BestPair(t frontier.Table) int64 {
	var (
		best    int64
		subsets []bitset.Set64
	)
	for opened, mine := range t.Best {
		complement := t.Universe.Difference(opened)
		subsets = complement.AllSubsets(subsets[:0])
		for _, s := range subsets {
			if theirs, ok := t.Best[s]; ok && mine+theirs > best {
				best = mine + theirs
			}
		}
	}
	return best
}

// Solve builds the single-agent table with budget-setupDelay minutes
// (clamped at zero) and returns BestPair of it.
func Solve(nw *network.Network, start, budget, setupDelay int, opts ...frontier.Option) (int64, error) {
	if setupDelay < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeDelay, setupDelay)
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", frontier.ErrNegativeBudget, budget)
	}
	t, err := frontier.BestPerSet(nw, start, max(budget-setupDelay, 0), opts...)
	if err != nil {
		return 0, err
	}
	return BestPair(t), nil
}
