// Package valvenet finds the best activation schedule in a valve network:
// a graph whose nodes release a reward per minute once opened, walked by
// one or two agents under a fixed time budget.
//
// What is inside
//
//	bitset/   - Set64, a set of up to 64 small integers in one word, with
//	            complete subset enumeration
//	network/  - the graph model (dense adjacency + rates), a label-interning
//	            Builder and the valve report parser
//	frontier/ - the level-synchronous relaxation that yields the best reward
//	            per activated set (the BestPerSet table)
//	dual/     - pairs disjoint activated sets for two cooperating agents
//	bfs/      - breadth-first hop distances over a network
//	descent/  - an exhaustive solver over the compressed network, used to
//	            cross-check frontier
//	cmd/valvenet - the command-line front end
//
// Quick example:
//
//	    AA───BB(13)
//	    │
//	    DD(20)───EE(3)
//
//	nw, _ := network.ParseString(report)
//	aa, _ := nw.ID("AA")
//	tbl, _ := frontier.BestPerSet(nw, aa, 30)
//	alone := frontier.BestSingle(tbl)
//	together, _ := dual.Solve(nw, aa, 30, 4)
//
// The core is single-threaded and pure: no I/O, no shared state. At most
// 64 nodes may carry a reward; any number may not.
package valvenet
