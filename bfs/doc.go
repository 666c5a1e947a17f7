// Package bfs provides breadth-first search over a network.Network,
// returning hop distances, parent links and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Result holds Order (visit sequence), Depth (hops, -1 if unreached)
//     and Parent (predecessor in the BFS tree, -1 for the root and
//     unreached nodes).
//   - OnVisit hook may abort the search with an error.
//   - FilterNeighbor may drop individual links.
//   - MaxDepth limits exploration (d>0) or disables the limit (d==0).
//
// Why
//
//	The descent solver compresses a network to hop distances between the
//	start node and every activatable node; one BFS per source gives exactly
//	that, in O(V + E) each.
//
// Determinism
//
//	Neighbours are enqueued in adjacency order, so Order is reproducible.
//
// Errors
//
//   - ErrGraphNil             if the network pointer is nil.
//   - ErrStartVertexNotFound  if start is not a node id.
//   - ErrOptionViolation      for a negative MaxDepth.
//   - Wrapped OnVisit errors and ctx.Err() on cancellation.
package bfs
