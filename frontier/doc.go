// Package frontier computes, for one agent walking a network under a time
// budget, the best reward achievable for every set of activated nodes.
//
// What
//
//	BestPerSet runs a level-synchronous relaxation, one level per elapsed
//	minute, over states (node, remaining set, released reward). From every
//	live state an agent may either
//	  - activate the current node if it is still closed, earning
//	    rate × minutesLeft, or
//	  - move to any neighbour.
//	Each transition costs one minute; minutesLeft is counted after that
//	minute is spent, and transitions with no minute left are not generated.
//
// Domination
//
//	States are deduplicated on (node, remaining set). A successor is kept
//	only when it strictly improves the best reward recorded for its key.
//	The record spans all levels: reward is credited up front for the rest of
//	the budget, so an earlier arrival with at least the same reward can do
//	anything a later one can. States whose remaining set is empty are
//	recorded but not expanded.
//
// Result
//
//	Every recorded (node, remaining) → reward is folded into a Table keyed by
//	the activated set (universe minus remaining), keeping the maximum. The
//	empty set is always present, so BestSingle of any Table built here is
//	at least 0.
//
// Options
//
//   - WithContext(ctx):   cancel between levels.
//   - WithOnLevel(fn):    observe each level (minute, live state count).
//
// Errors
//
//   - ErrNilNetwork        if the network pointer is nil.
//   - ErrStartOutOfRange   if start is not a node id.
//   - ErrNegativeBudget    if budget < 0.
//   - ctx.Err()            if the context is cancelled.
//
// Complexity
//
//	Time and memory are bounded by the number of distinct (node, remaining)
//	keys reached within the budget, at most V·2^k for k activatable nodes.
package frontier
