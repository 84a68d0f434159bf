package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/shortestpath"
)

// pathGraph builds the undirected path v1-v2-v3-v4-v5.
func pathGraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"v1", "v2"}))
	require.NoError(t, g.AddEdge("e2", []string{"v2", "v3"}))
	require.NoError(t, g.AddEdge("e3", []string{"v3", "v4"}))
	require.NoError(t, g.AddEdge("e4", []string{"v4", "v5"}))

	return g
}

func TestRunBFS_PathDistances(t *testing.T) {
	g := pathGraph(t)
	tr, err := shortestpath.RunBFS(g, "v1")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"v1": 0, "v2": 1, "v3": 2, "v4": 3, "v5": 4}, tr.Distance)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, tr.Order)
}

func TestRunBFS_UnknownSource(t *testing.T) {
	g := pathGraph(t)
	_, err := shortestpath.RunBFS(g, "missing")
	assert.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

func TestRunDijkstra_MatchesBFSOnUnitWeights(t *testing.T) {
	g := pathGraph(t)
	unit := func(string) float64 { return 1 }

	bfsTr, err := shortestpath.RunBFS(g, "v1")
	require.NoError(t, err)
	dijTr, err := shortestpath.RunDijkstra(g, "v1", unit)
	require.NoError(t, err)

	assert.Equal(t, bfsTr.Distance, dijTr.Distance)
}

func TestRunDijkstra_NegativeWeightRejected(t *testing.T) {
	g := pathGraph(t)
	weight := func(e string) float64 {
		if e == "e2" {
			return -1
		}

		return 1
	}
	_, err := shortestpath.RunDijkstra(g, "v1", weight)
	assert.ErrorIs(t, err, shortestpath.ErrNegativeWeight)
}

func TestRunDijkstra_MultiplePredecessorsOnTie(t *testing.T) {
	// Diamond: v1-v2, v1-v3, v2-v4, v3-v4, all weight 1: two shortest
	// paths from v1 to v4.
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("a", []string{"v1", "v2"}))
	require.NoError(t, g.AddEdge("b", []string{"v1", "v3"}))
	require.NoError(t, g.AddEdge("c", []string{"v2", "v4"}))
	require.NoError(t, g.AddEdge("d", []string{"v3", "v4"}))

	tr, err := shortestpath.RunDijkstra(g, "v1", func(string) float64 { return 1 })
	require.NoError(t, err)
	assert.Equal(t, float64(2), tr.PathCount["v4"])
	assert.Len(t, tr.Predecessors["v4"], 2)
}

func TestOracle_MemoizesBySource(t *testing.T) {
	g := pathGraph(t)
	o := shortestpath.NewOracle(g, nil)

	d, ok, err := o.GetDistance("v1", "v5")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float64(4), d)

	_, ok, err = o.GetDistance("v5", "v1")
	require.NoError(t, err)
	assert.True(t, ok)
}
