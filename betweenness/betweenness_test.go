package betweenness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szisiu/jung/betweenness"
	"github.com/szisiu/jung/hypergraph"
)

// starGraph builds the undirected star K1,5 centered on "hub".
func starGraph(t *testing.T) *hypergraph.Hypergraph {
	t.Helper()
	g := hypergraph.New()
	leaves := []string{"l1", "l2", "l3", "l4", "l5"}
	for _, l := range leaves {
		require.NoError(t, g.AddEdge("hub-"+l, []string{"hub", l}))
	}

	return g
}

func TestBetweennessCentrality_Star(t *testing.T) {
	g := starGraph(t)
	vertexScores, edgeScores, err := betweenness.BetweennessCentrality(g)
	require.NoError(t, err)

	// Every pair of leaves routes through the hub; no path runs through
	// a leaf, so only the hub accrues any score.
	assert.Equal(t, float64(10), vertexScores["hub"])
	for _, l := range []string{"l1", "l2", "l3", "l4", "l5"} {
		assert.Zero(t, vertexScores[l])
	}
	for _, e := range g.Edges() {
		assert.Equal(t, float64(5), edgeScores[e])
	}
}

func TestBetweennessCentrality_Path(t *testing.T) {
	// v1-v2-v3-v4-v5: v3 sits on every pair that straddles it, v2 and v4
	// sit on fewer.
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"v1", "v2"}))
	require.NoError(t, g.AddEdge("e2", []string{"v2", "v3"}))
	require.NoError(t, g.AddEdge("e3", []string{"v3", "v4"}))
	require.NoError(t, g.AddEdge("e4", []string{"v4", "v5"}))

	vertexScores, _, err := betweenness.BetweennessCentrality(g)
	require.NoError(t, err)

	assert.Zero(t, vertexScores["v1"])
	assert.Zero(t, vertexScores["v5"])
	assert.Equal(t, float64(3), vertexScores["v2"])
	assert.Equal(t, float64(4), vertexScores["v3"])
	assert.Equal(t, float64(3), vertexScores["v4"])
}

func TestBetweennessCentrality_DirectedTriangle(t *testing.T) {
	// A->B->C->A: with no chords, reaching the non-adjacent vertex of
	// a pair always relays through the third, so every vertex and edge
	// carries exactly one such pair.
	g := hypergraph.New(hypergraph.WithDirected())
	require.NoError(t, g.AddDirectedEdge("ab", []string{"A"}, []string{"B"}))
	require.NoError(t, g.AddDirectedEdge("bc", []string{"B"}, []string{"C"}))
	require.NoError(t, g.AddDirectedEdge("ca", []string{"C"}, []string{"A"}))

	vertexScores, edgeScores, err := betweenness.BetweennessCentrality(g)
	require.NoError(t, err)

	for _, v := range g.Vertices() {
		assert.Equal(t, float64(1), vertexScores[v])
	}
	for _, e := range g.Edges() {
		assert.Equal(t, float64(3), edgeScores[e])
	}
}

func TestBetweennessCentrality_DisconnectedDirected(t *testing.T) {
	// A->B and C (isolated): no path can pass through C, and the
	// unreachable component contributes nothing.
	g := hypergraph.New(hypergraph.WithDirected())
	require.NoError(t, g.AddDirectedEdge("ab", []string{"A"}, []string{"B"}))
	g.AddVertex("C")

	vertexScores, _, err := betweenness.BetweennessCentrality(g)
	require.NoError(t, err)
	assert.Zero(t, vertexScores["A"])
	assert.Zero(t, vertexScores["B"])
	assert.Zero(t, vertexScores["C"])
}

func TestBetweennessCentrality_Normalize(t *testing.T) {
	g := starGraph(t)
	vertexScores, edgeScores, err := betweenness.BetweennessCentrality(g, betweenness.WithNormalize())
	require.NoError(t, err)

	// n=6: vertex denom (n-1)(n-2)=20, edge denom n(n-1)=30.
	assert.InDelta(t, 10.0/20.0, vertexScores["hub"], 1e-9)
	for _, e := range g.Edges() {
		assert.InDelta(t, 5.0/30.0, edgeScores[e], 1e-9)
	}
}

func TestBetweennessCentrality_Weighted(t *testing.T) {
	// A-B (weight 1), B-C (weight 1), A-C (weight 5): the direct A-C
	// edge is never the shortest path, so B carries all through-traffic.
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("ab", []string{"A", "B"}))
	require.NoError(t, g.AddEdge("bc", []string{"B", "C"}))
	require.NoError(t, g.AddEdge("ac", []string{"A", "C"}))

	weight := map[string]float64{"ab": 1, "bc": 1, "ac": 5}
	vertexScores, _, err := betweenness.BetweennessCentrality(g, betweenness.WithWeight(func(e string) float64 { return weight[e] }))
	require.NoError(t, err)

	assert.Equal(t, float64(1), vertexScores["B"])
	assert.Zero(t, vertexScores["A"])
	assert.Zero(t, vertexScores["C"])
}
