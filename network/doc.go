// Package network holds the graph model consumed by the activation search:
// a dense adjacency list over integer node ids plus a per-node reward rate.
//
// What
//
//   - Network: immutable Edges/Rates/Labels tables, one entry per node.
//   - Builder: label-interning construction (AddVertex, AddEdge, Build).
//   - Parse:   reads the textual valve report format into a Network.
//
// Activatable nodes
//
//	A node is activatable when its rate is non-zero. Activatable nodes are
//	numbered 0..k-1 in ascending node-id order ("small indices"); bit i of a
//	bitset.Set64 always refers to small index i. Index and Node convert in
//	both directions. At most bitset.MaxSize activatable nodes are allowed;
//	New rejects larger inputs with ErrTooManyActivatable.
//
// Errors
//
//   - ErrShapeMismatch       if Edges, Rates and Labels differ in length.
//   - ErrNeighborOutOfRange  if an adjacency entry names no node.
//   - ErrNegativeRate        if a rate is below zero.
//   - ErrTooManyActivatable  if more than 64 nodes carry a reward.
//   - ErrDuplicateLabel, ErrEmptyLabel, ErrUnknownLabel from Builder.
//   - ErrSyntax              from Parse, wrapped with the offending line.
//
// A Network is read-only after construction and safe for concurrent readers.
package network
