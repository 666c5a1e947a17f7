package frontier_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/katalvlaran/valvenet/descent"
	"github.com/katalvlaran/valvenet/frontier"
	"github.com/katalvlaran/valvenet/internal/fixture"
	"github.com/katalvlaran/valvenet/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustID(t *testing.T, nw *network.Network, label string) int {
	t.Helper()
	id, err := nw.ID(label)
	require.NoError(t, err)
	return id
}

func TestBestPerSet_Errors(t *testing.T) {
	_, err := frontier.BestPerSet(nil, 0, 10)
	require.ErrorIs(t, err, frontier.ErrNilNetwork)

	nw := fixture.ExampleNetwork()
	_, err = frontier.BestPerSet(nw, -1, 10)
	require.ErrorIs(t, err, frontier.ErrStartOutOfRange)
	_, err = frontier.BestPerSet(nw, nw.Order(), 10)
	require.ErrorIs(t, err, frontier.ErrStartOutOfRange)
	_, err = frontier.BestPerSet(nw, 0, -1)
	require.ErrorIs(t, err, frontier.ErrNegativeBudget)
}

func TestBestPerSet_Example(t *testing.T) {
	nw := fixture.ExampleNetwork()
	tbl, err := frontier.BestPerSet(nw, mustID(t, nw, "AA"), 30)
	require.NoError(t, err)

	assert.Equal(t, nw.Activatable(), tbl.Universe)
	assert.Equal(t, int64(1651), frontier.BestSingle(tbl))
	assert.Equal(t, frontier.BestSingle(tbl), frontier.BestSingle(tbl))

	v, ok := tbl.Lookup(0)
	require.True(t, ok, "empty activated set must be present")
	assert.Equal(t, int64(0), v)

	// opening only DD, one step away: 20 × (30-2)
	dd := nw.Index(mustID(t, nw, "DD"))
	v, ok = tbl.Lookup(bitset.Of(dd))
	require.True(t, ok)
	assert.Equal(t, int64(20*28), v)
}

func TestBestPerSet_SingleNode(t *testing.T) {
	const rate = 7
	nw, err := network.New([][]int{nil}, []int64{rate}, nil)
	require.NoError(t, err)

	for _, budget := range []int{2, 3, 10, 30} {
		tbl, err := frontier.BestPerSet(nw, 0, budget)
		require.NoError(t, err)
		assert.Equal(t, int64(rate*(budget-1)), frontier.BestSingle(tbl), "budget %d", budget)
	}
	for _, budget := range []int{0, 1} {
		tbl, err := frontier.BestPerSet(nw, 0, budget)
		require.NoError(t, err)
		assert.Equal(t, int64(0), frontier.BestSingle(tbl))
		assert.Equal(t, 1, tbl.Len())
	}
}

func TestBestPerSet_ZeroRewards(t *testing.T) {
	nw, err := network.New([][]int{{1, 2}, {0, 2}, {0, 1}}, []int64{0, 0, 0}, nil)
	require.NoError(t, err)
	for _, budget := range []int{0, 1, 5, 30} {
		tbl, err := frontier.BestPerSet(nw, 1, budget)
		require.NoError(t, err)
		assert.Equal(t, int64(0), frontier.BestSingle(tbl))
		assert.Equal(t, map[bitset.Set64]int64{0: 0}, tbl.Best)
	}
}

func TestBestPerSet_Unreachable(t *testing.T) {
	// node 2 carries all the reward but is cut off
	nw, err := network.New([][]int{{1}, {0}, nil}, []int64{0, 0, 50}, nil)
	require.NoError(t, err)
	tbl, err := frontier.BestPerSet(nw, 0, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, int64(0), frontier.BestSingle(tbl))
}

func TestBestPerSet_MonotoneInBudget(t *testing.T) {
	nw := fixture.ExampleNetwork()
	start := mustID(t, nw, "AA")
	prev, err := frontier.BestPerSet(nw, start, 1)
	require.NoError(t, err)
	for budget := 2; budget <= 20; budget++ {
		cur, err := frontier.BestPerSet(nw, start, budget)
		require.NoError(t, err)
		for set, v := range prev.Best {
			got, ok := cur.Lookup(set)
			require.True(t, ok, "budget %d lost set %v", budget, set)
			require.GreaterOrEqual(t, got, v, "budget %d set %v", budget, set)
		}
		prev = cur
	}
}

func TestBestPerSet_MatchesDescent(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		nw := fixture.Random(seed, 10, 0.15)
		for start := 0; start < nw.Order(); start++ {
			for _, budget := range []int{0, 4, 9, 16} {
				tbl, err := frontier.BestPerSet(nw, start, budget)
				require.NoError(t, err)
				plan, err := descent.Best(nw, start, budget)
				require.NoError(t, err)
				require.Equal(t, plan.Reward, frontier.BestSingle(tbl),
					"seed %d start %d budget %d", seed, start, budget)
			}
		}
	}
}

func TestBestPerSet_OnLevelAndCancel(t *testing.T) {
	nw := fixture.ExampleNetwork()
	start := mustID(t, nw, "AA")

	var minutes []int
	_, err := frontier.BestPerSet(nw, start, 6, frontier.WithOnLevel(func(minute, live int) {
		minutes = append(minutes, minute)
		assert.Positive(t, live)
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, minutes)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = frontier.BestPerSet(nw, start, 30, frontier.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBestSingle_EmptyTable(t *testing.T) {
	assert.Equal(t, int64(0), frontier.BestSingle(frontier.Table{}))
}
