package network_test

import (
	"testing"

	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Example(t *testing.T) {
	nw, err := network.ParseString(fixture.Example)
	require.NoError(t, err)
	require.Equal(t, 10, nw.Order())
	assert.Equal(t, 6, nw.Activatable().Len())

	want := map[string]struct {
		rate int64
		nbrs []string
	}{
		"AA": {0, []string{"DD", "II", "BB"}},
		"DD": {20, []string{"CC", "AA", "EE"}},
		"HH": {22, []string{"GG"}},
		"JJ": {21, []string{"II"}},
	}
	for label, w := range want {
		id, err := nw.ID(label)
		require.NoError(t, err)
		assert.Equal(t, w.rate, nw.Rate(id), label)
		got := make([]string, 0, len(nw.Neighbors(id)))
		for _, u := range nw.Neighbors(id) {
			got = append(got, nw.Label(u))
		}
		assert.Equal(t, w.nbrs, got, label)
	}
	// small indices follow interning order, not label order
	assert.Equal(t, []string{"DD", "BB", "CC", "EE", "HH", "JJ"}, nw.Labels(nw.Activatable()))
}

func TestParse_BlankLinesAndWhitespace(t *testing.T) {
	nw, err := network.ParseString("\n  Valve A has flow rate=3; tunnel leads to valve B  \n\nValve B has flow rate=0; tunnel leads to valve A\n")
	require.NoError(t, err)
	assert.Equal(t, 2, nw.Order())
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		input string
		want  error
	}{
		"no prefix":      {"Pipe AA has flow rate=0; tunnel leads to valve BB", network.ErrSyntax},
		"no rate":        {"Valve AA has pressure=0; tunnel leads to valve BB", network.ErrSyntax},
		"bad rate":       {"Valve AA has flow rate=x; tunnel leads to valve BB", network.ErrSyntax},
		"no tunnels":     {"Valve AA has flow rate=1", network.ErrSyntax},
		"bad tunnels":    {"Valve AA has flow rate=1; pipes go to BB", network.ErrSyntax},
		"empty target":   {"Valve AA has flow rate=1; tunnels lead to valves BB, , CC", network.ErrSyntax},
		"negative rate":  {"Valve AA has flow rate=-1; tunnel leads to valve AA", network.ErrNegativeRate},
		"duplicate":      {"Valve AA has flow rate=1; tunnel leads to valve AA\nValve AA has flow rate=2; tunnel leads to valve AA", network.ErrDuplicateLabel},
		"undefined peer": {"Valve AA has flow rate=1; tunnel leads to valve BB", network.ErrUnknownLabel},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := network.ParseString(tc.input)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
