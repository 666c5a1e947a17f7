// Package descent is an exhaustive single-agent solver over a compressed
// network. It answers the same question as frontier.BestSingle by a
// different route, and serves as a cross-check for it.
//
// The network is first compressed to hop distances between the start node
// and every activatable node (one BFS per source). A depth-first search
// then tries every activation order: reaching target i from the current
// position costs dist+1 minutes (walk, then open), and opening credits
// rate(i) × minutes left afterwards. Branches that would leave no minute
// after opening are cut.
//
// Complexity: O(k!) orders in the worst case for k activatable nodes,
// pruned heavily by the budget. Intended for small inputs and tests.
package descent
