// Package dual combines two independent single-agent schedules into the
// best cooperative result.
//
// Two agents never interfere except through the nodes they open: their
// schedules are compatible iff their activated sets are disjoint. Given a
// frontier.Table, BestPair takes every entry (opened, a), enumerates every
// subset s of Universe−opened, and keeps the best a + Table[s]. Because the
// agents are symmetric the same table serves both.
//
// The second agent usually costs setup time (the original narrative spends
// four minutes teaching it). Solve subtracts that delay from the budget
// before running the single-agent search once.
//
// Complexity: O(|table| · 2^|complement|) lookups in the worst case; in
// practice far fewer sets are reachable than 2^k and the complement shrinks
// as the opened set grows.
package dual
