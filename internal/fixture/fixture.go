// Package fixture provides shared test networks.
package fixture

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/valvenet/network"
)

// Example is the canonical ten-valve report. From AA it yields 1651 alone
// in 30 minutes and 1707 for two agents in 26 minutes.
const Example = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// ExampleNetwork parses Example, panicking on failure.
func ExampleNetwork() *network.Network {
	nw, err := network.ParseString(Example)
	if err != nil {
		panic(err)
	}
	return nw
}

// Random builds a connected undirected network of n nodes labelled v0..v{n-1}.
// Each node after the first links to a random earlier node, extra links are
// added with probability density, and roughly half the nodes get a rate in
// [1, 25]. Node v0 always has rate 0.
func Random(seed int64, n int, density float64) *network.Network {
	rng := rand.New(rand.NewSource(seed))
	b := network.NewBuilder()
	label := func(i int) string { return fmt.Sprintf("v%d", i) }
	for i := 0; i < n; i++ {
		var rate int64
		if i > 0 && rng.Intn(2) == 0 {
			rate = int64(1 + rng.Intn(25))
		}
		if err := b.AddVertex(label(i), rate); err != nil {
			panic(err)
		}
	}
	for i := 1; i < n; i++ {
		if err := b.Connect(label(i), label(rng.Intn(i))); err != nil {
			panic(err)
		}
		for j := 0; j < i-1; j++ {
			if rng.Float64() < density {
				if err := b.Connect(label(i), label(j)); err != nil {
					panic(err)
				}
			}
		}
	}
	nw, err := b.Build()
	if err != nil {
		panic(err)
	}
	return nw
}
