// Package dijkstra_test validates shortest-path results on the reference
// floor, option handling and edge cases.
package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cafeteria/dijkstra"
	"github.com/katalvlaran/cafeteria/facility"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestShortestPaths_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPaths(nil, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPaths_NoSource(t *testing.T) {
	_, err := dijkstra.ShortestPaths(facility.Sample())
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestShortestPaths_SourceOutOfRange(t *testing.T) {
	g := facility.Sample()
	_, err := dijkstra.ShortestPaths(g, dijkstra.Source(6))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.ShortestPaths(g, dijkstra.Source(-2))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestShortestPaths_NegativeWeight(t *testing.T) {
	g, err := facility.New(2)
	require.NoError(t, err)
	g.AddEdge(0, 1, -5)
	_, err = dijkstra.ShortestPaths(g, dijkstra.Source(0))
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
}

func TestShortestPaths_BadOptions(t *testing.T) {
	g := facility.Sample()
	_, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, err = dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Reference floor
// ------------------------------------------------------------------------

func TestShortestPaths_SampleFromZero(t *testing.T) {
	res, err := dijkstra.ShortestPaths(facility.Sample(), dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 2, 4, 10, 9}, res.Dist)
	assert.Nil(t, res.Prev)
}

func TestShortestPaths_SampleSymmetric(t *testing.T) {
	g := facility.Sample()
	all := make([][]int64, g.Order())
	for s := 0; s < g.Order(); s++ {
		res, err := dijkstra.ShortestPaths(g, dijkstra.Source(s))
		require.NoError(t, err)
		all[s] = res.Dist
	}
	for u := range all {
		assert.Zero(t, all[u][u])
		for v := range all {
			assert.Equal(t, all[u][v], all[v][u], "d(%d,%d)", u, v)
		}
	}
}

func TestShortestPaths_SamplePath(t *testing.T) {
	res, err := dijkstra.ShortestPaths(facility.Sample(), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)

	path, err := res.Path(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 4}, path)

	path, err = res.Path(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestShortestPaths_Unreachable(t *testing.T) {
	g, err := facility.New(4)
	require.NoError(t, err)
	g.AddEdge(0, 1, 2)
	g.AddEdge(2, 3, 1)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.True(t, res.Reachable(1))
	assert.False(t, res.Reachable(2))
	assert.Equal(t, dijkstra.Unreachable, res.Dist[3])

	d, ok := res.Distance(3)
	assert.False(t, ok)
	assert.Equal(t, dijkstra.Unreachable, d)

	_, err = res.Path(2)
	assert.ErrorIs(t, err, dijkstra.ErrNoPath)
}

func TestShortestPaths_PathNotTracked(t *testing.T) {
	res, err := dijkstra.ShortestPaths(facility.Sample(), dijkstra.Source(0))
	require.NoError(t, err)
	_, err = res.Path(3)
	assert.ErrorIs(t, err, dijkstra.ErrPathNotTracked)
}

func TestShortestPaths_ParallelEdgesLightestWins(t *testing.T) {
	g, err := facility.New(2)
	require.NoError(t, err)
	g.AddEdge(0, 1, 9)
	g.AddEdge(0, 1, 4)
	g.AddEdge(1, 0, 6)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(1))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Dist[0])
}

func TestShortestPaths_SingleNodeAndSelfLoop(t *testing.T) {
	g, err := facility.New(1)
	require.NoError(t, err)
	g.AddEdge(0, 0, 3)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0}, res.Dist)
}

func TestShortestPaths_ZeroWeights(t *testing.T) {
	g, err := facility.New(3)
	require.NoError(t, err)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0}, res.Dist)
}

func TestShortestPaths_MaxDistance(t *testing.T) {
	res, err := dijkstra.ShortestPaths(facility.Sample(), dijkstra.Source(0), dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 2, 4, dijkstra.Unreachable, dijkstra.Unreachable}, res.Dist)
}

func TestShortestPaths_InfEdgeThreshold(t *testing.T) {
	// closing every corridor of weight >= 6 cuts off nodes 4 and 5
	res, err := dijkstra.ShortestPaths(facility.Sample(), dijkstra.Source(0), dijkstra.WithInfEdgeThreshold(6))
	require.NoError(t, err)
	assert.False(t, res.Reachable(4))
	assert.False(t, res.Reachable(5))
	assert.Equal(t, int64(4), res.Dist[3])
}

func TestShortestPaths_StaleEntriesSkipped(t *testing.T) {
	// 0→2 is first discovered at 10, later improved to 2 via 1; the stale
	// entry must not overwrite or re-relax from the worse distance.
	g, err := facility.New(4)
	require.NoError(t, err)
	g.AddEdge(0, 2, 10)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	res, err := dijkstra.ShortestPaths(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, res.Dist)
	path, err := res.Path(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}
