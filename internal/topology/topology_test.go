package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikts27/thesis-rover-planner/internal/topology"
)

func chain(n int, directed bool) *topology.Graph {
	g := topology.NewGraph(n, directed)
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1, 8)
	}
	return g
}

func TestShortestPathsAccumulatesAlongAChain(t *testing.T) {
	g := chain(4, true)
	dist := topology.ShortestPaths(g)
	require.Equal(t, int64(0), dist[0][0])
	require.Equal(t, int64(8), dist[0][1])
	require.Equal(t, int64(24), dist[0][3])
}

func TestShortestPathsReportsInfForUnreachableVertex(t *testing.T) {
	g := topology.NewGraph(3, true)
	g.AddEdge(0, 1, 5)
	dist := topology.ShortestPaths(g)
	require.Equal(t, topology.Inf, dist[0][2])
	require.Equal(t, topology.Inf, dist[2][0])
}

func TestSingleSourceMatchesShortestPathsOnAChain(t *testing.T) {
	g := chain(4, true)
	dist := topology.SingleSource(g, 0)
	require.Equal(t, int64(0), dist[0])
	require.Equal(t, int64(24), dist[3])
}

func TestSingleSourceOmitsUnreachableVertices(t *testing.T) {
	g := topology.NewGraph(3, true)
	g.AddEdge(0, 1, 1)
	dist := topology.SingleSource(g, 0)
	_, ok := dist[2]
	require.False(t, ok)
}

func TestBFSDepthsCountsHops(t *testing.T) {
	g := chain(4, false)
	depth := topology.BFSDepths(g, 0)
	require.Equal(t, 0, depth[0])
	require.Equal(t, 3, depth[3])
}

func TestDFSOrderStartsAtSourceAndVisitsEveryReachableVertex(t *testing.T) {
	g := chain(4, false)
	order := topology.DFSOrder(g, 0)
	require.Equal(t, 0, order[0])
	require.Len(t, order, 4)
}

func TestMSTConnectsAllVerticesWithMinimumWeight(t *testing.T) {
	g := topology.NewGraph(3, false)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 3)
	g.AddEdge(0, 2, 100)

	mst, total, err := topology.MST(g)
	require.NoError(t, err)
	require.Len(t, mst, 2)
	require.Equal(t, int64(8), total)
}

func TestMSTReturnsErrDisconnectedWhenNoSpanningTreeExists(t *testing.T) {
	g := topology.NewGraph(3, false)
	g.AddEdge(0, 1, 1)
	// vertex 2 is isolated.
	_, _, err := topology.MST(g)
	require.ErrorIs(t, err, topology.ErrDisconnected)
}

func TestRandomCompleteIsDeterministicForAFixedSeed(t *testing.T) {
	g1 := topology.RandomComplete(5, 42, 1, 100)
	g2 := topology.RandomComplete(5, 42, 1, 100)
	require.Equal(t, g1.Edges(), g2.Edges())
	require.Len(t, g1.Edges(), 10)
}

func TestRandomCompleteWeightsStayInRange(t *testing.T) {
	g := topology.RandomComplete(6, 7, 10, 20)
	for _, e := range g.Edges() {
		require.GreaterOrEqual(t, e.Weight, int64(10))
		require.LessOrEqual(t, e.Weight, int64(20))
	}
}
