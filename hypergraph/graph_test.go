package hypergraph_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szisiu/jung/hypergraph"
)

func TestAddEdge_OrdinaryAndHyper(t *testing.T) {
	g := hypergraph.New()

	id, err := "e1", g.AddEdge("e1", []string{"a", "b"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, g.Endpoints(id))

	require.NoError(t, g.AddEdge("e2", []string{"b", "c", "d"}))
	assert.ElementsMatch(t, []string{"b", "c", "d"}, g.Endpoints("e2"))

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, g.Vertices())
	assert.Equal(t, 2, len(g.Edges()))
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("loop", []string{"a"}))
	assert.Equal(t, []string{"a"}, g.Endpoints("loop"))
}

func TestAddEdge_Errors(t *testing.T) {
	g := hypergraph.New()
	_, errEmpty := "", g.AddEdge("", []string{"a"})
	assert.ErrorIs(t, errEmpty, hypergraph.ErrEmptyEdgeID)

	assert.ErrorIs(t, g.AddEdge("e", nil), hypergraph.ErrNoEndpoints)

	require.NoError(t, g.AddEdge("e", []string{"a", "b"}))
	assert.ErrorIs(t, g.AddEdge("e", []string{"c", "d"}), hypergraph.ErrDuplicateEdge)

	dg := hypergraph.New(hypergraph.WithDirected())
	assert.ErrorIs(t, dg.AddEdge("e", []string{"a", "b"}), hypergraph.ErrDirectedGraph)
}

func TestAddDirectedEdge(t *testing.T) {
	g := hypergraph.New(hypergraph.WithDirected())
	require.NoError(t, g.AddDirectedEdge("arc", []string{"a"}, []string{"b"}))
	assert.Equal(t, []string{"a"}, g.SourceSet("arc"))
	assert.Equal(t, []string{"b"}, g.DestSet("arc"))
	assert.ElementsMatch(t, []string{"a", "b"}, g.Endpoints("arc"))

	require.NoError(t, g.AddDirectedEdge("hyper", []string{"x", "y"}, []string{"y", "z"}))
	assert.ElementsMatch(t, []string{"x", "y", "z"}, g.Endpoints("hyper"))

	assert.ErrorIs(t, g.AddDirectedEdge("bad", []string{"a"}, nil), hypergraph.ErrBadPartition)

	ug := hypergraph.New()
	assert.ErrorIs(t, ug.AddDirectedEdge("e", []string{"a"}, []string{"b"}), hypergraph.ErrUndirectedGraph)
}

func TestInOutIncidentEdges_Directed(t *testing.T) {
	g := hypergraph.New(hypergraph.WithDirected())
	require.NoError(t, g.AddDirectedEdge("e1", []string{"a"}, []string{"b"}))
	require.NoError(t, g.AddDirectedEdge("e2", []string{"b"}, []string{"a"}))

	assert.Equal(t, []string{"e1"}, g.OutEdges("a"))
	assert.Equal(t, []string{"e2"}, g.InEdges("a"))
	assert.ElementsMatch(t, []string{"e1", "e2"}, g.IncidentEdges("a"))
}

func TestInOutIncidentEdges_Undirected(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"a", "b"}))

	assert.Equal(t, g.IncidentEdges("a"), g.InEdges("a"))
	assert.Equal(t, g.IncidentEdges("a"), g.OutEdges("a"))
}

func TestVerticesSortedDeterministic(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"z", "a", "m"}))
	got := g.Vertices()
	want := append([]string(nil), got...)
	sort.Strings(want)
	assert.Equal(t, want, got)
}

func TestUnknownVertexOrEdgeYieldsEmpty(t *testing.T) {
	g := hypergraph.New()
	assert.Nil(t, g.Endpoints("missing"))
	assert.Nil(t, g.IncidentEdges("missing"))
	assert.False(t, g.HasVertex("missing"))
}
