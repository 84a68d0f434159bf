package graphdistance_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/szisiu/jung/graphdistance"
	"github.com/szisiu/jung/hypergraph"
)

func TestGraphDistance_InvalidTolerance(t *testing.T) {
	g := hypergraph.New()
	_, err := graphdistance.NewGraphDistance(g, nil, 0)
	assert.ErrorIs(t, err, graphdistance.ErrInvalidTolerance)
}

func TestGraphDistance_EmptyGraph(t *testing.T) {
	g := hypergraph.New()
	gd, err := graphdistance.NewGraphDistance(g, nil, graphdistance.DefaultTolerance)
	require.NoError(t, err)

	diameter, err := gd.Diameter()
	require.NoError(t, err)
	assert.Zero(t, diameter)

	radius, err := gd.Radius()
	require.NoError(t, err)
	assert.Zero(t, radius)
}

func TestGraphDistance_PathGraph(t *testing.T) {
	// v1-v2-v3-v4-v5: standard path graph metrics.
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"v1", "v2"}))
	require.NoError(t, g.AddEdge("e2", []string{"v2", "v3"}))
	require.NoError(t, g.AddEdge("e3", []string{"v3", "v4"}))
	require.NoError(t, g.AddEdge("e4", []string{"v4", "v5"}))

	gd, err := graphdistance.NewGraphDistance(g, nil, graphdistance.DefaultTolerance)
	require.NoError(t, err)

	diameter, err := gd.Diameter()
	require.NoError(t, err)
	assert.Equal(t, float64(4), diameter)

	radius, err := gd.Radius()
	require.NoError(t, err)
	assert.Equal(t, float64(2), radius)

	center, err := gd.Center()
	require.NoError(t, err)
	assert.Equal(t, []string{"v3"}, center)

	periphery, err := gd.Periphery()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v5"}, periphery)
}

func TestGraphDistance_Disconnected(t *testing.T) {
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("ab", []string{"A", "B"}))
	require.NoError(t, g.AddVertex("C"))

	gd, err := graphdistance.NewGraphDistance(g, nil, graphdistance.DefaultTolerance)
	require.NoError(t, err)

	diameter, err := gd.Diameter()
	require.NoError(t, err)
	assert.True(t, math.IsInf(diameter, 1))

	ecc, err := gd.Eccentricity("C")
	require.NoError(t, err)
	assert.True(t, math.IsInf(ecc, 1))
}

func TestGraphDistance_PseudoPeriphery(t *testing.T) {
	// On a path, both endpoints are pseudo-peripheral: each one's
	// farthest vertex is the other endpoint, and their eccentricities
	// (both equal the diameter) match.
	g := hypergraph.New()
	require.NoError(t, g.AddEdge("e1", []string{"v1", "v2"}))
	require.NoError(t, g.AddEdge("e2", []string{"v2", "v3"}))

	gd, err := graphdistance.NewGraphDistance(g, nil, graphdistance.DefaultTolerance)
	require.NoError(t, err)

	pseudo, err := gd.PseudoPeriphery()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"v1", "v3"}, pseudo)
}
