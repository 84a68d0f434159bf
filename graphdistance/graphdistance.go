package graphdistance

import (
	"math"

	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/shortestpath"
)

// GraphDistance derives eccentricity, diameter, radius, center, periphery,
// and pseudo-periphery from an Oracle, computing the eccentricity map once
// and caching it for the remaining derivations.
type GraphDistance struct {
	g         hypergraph.Graph
	oracle    *shortestpath.Oracle
	tolerance float64

	eccentricity map[string]float64
	diameter     float64
	radius       float64
}

// NewGraphDistance returns a GraphDistance over g. If weight is nil,
// distances come from unweighted BFS; otherwise from weighted Dijkstra.
// Returns ErrInvalidTolerance if tolerance <= 0.
func NewGraphDistance(g hypergraph.Graph, weight shortestpath.EdgeWeight, tolerance float64) (*GraphDistance, error) {
	if tolerance <= 0 {
		return nil, ErrInvalidTolerance
	}

	return &GraphDistance{
		g:         g,
		oracle:    shortestpath.NewOracle(g, weight),
		tolerance: tolerance,
	}, nil
}

// compute lazily fills in the eccentricity map, diameter, and radius.
func (gd *GraphDistance) compute() error {
	if gd.eccentricity != nil {
		return nil
	}

	vertices := gd.g.Vertices()
	ecc := make(map[string]float64, len(vertices))

	for _, v := range vertices {
		distances, err := gd.oracle.GetDistanceMap(v)
		if err != nil {
			return err
		}

		if len(distances) < len(vertices) {
			ecc[v] = math.Inf(1)
			continue
		}

		var max float64
		for _, d := range distances {
			if d > max {
				max = d
			}
		}
		ecc[v] = max
	}

	var diameter float64
	radius := math.Inf(1)
	for _, v := range vertices {
		if ecc[v] > diameter {
			diameter = ecc[v]
		}
		if ecc[v] < radius {
			radius = ecc[v]
		}
	}
	if len(vertices) == 0 {
		diameter, radius = 0, 0
	}

	gd.eccentricity = ecc
	gd.diameter = diameter
	gd.radius = radius

	return nil
}

// Eccentricity returns v's eccentricity: the greatest shortest-path
// distance from v to any other vertex, or +Inf if v cannot reach every
// vertex in the graph.
func (gd *GraphDistance) Eccentricity(v string) (float64, error) {
	if err := gd.compute(); err != nil {
		return 0, err
	}

	return gd.eccentricity[v], nil
}

// Diameter returns max_v Eccentricity(v); 0 for the empty graph.
func (gd *GraphDistance) Diameter() (float64, error) {
	if err := gd.compute(); err != nil {
		return 0, err
	}

	return gd.diameter, nil
}

// Radius returns min_v Eccentricity(v); 0 for the empty graph.
func (gd *GraphDistance) Radius() (float64, error) {
	if err := gd.compute(); err != nil {
		return 0, err
	}

	return gd.radius, nil
}

// Center returns every vertex whose eccentricity equals the radius,
// within the instance's tolerance.
func (gd *GraphDistance) Center() ([]string, error) {
	if err := gd.compute(); err != nil {
		return nil, err
	}

	return gd.filterByEccentricity(gd.radius), nil
}

// Periphery returns every vertex whose eccentricity equals the diameter,
// within the instance's tolerance.
func (gd *GraphDistance) Periphery() ([]string, error) {
	if err := gd.compute(); err != nil {
		return nil, err
	}

	return gd.filterByEccentricity(gd.diameter), nil
}

// PseudoPeriphery returns every vertex u such that every vertex v at
// distance Eccentricity(u) from u itself has eccentricity equal to
// Eccentricity(u).
func (gd *GraphDistance) PseudoPeriphery() ([]string, error) {
	if err := gd.compute(); err != nil {
		return nil, err
	}

	var out []string
	for _, u := range gd.g.Vertices() {
		distances, err := gd.oracle.GetDistanceMap(u)
		if err != nil {
			return nil, err
		}

		pseudo := true
		for v, d := range distances {
			if !gd.almostEqual(d, gd.eccentricity[u]) {
				continue
			}
			if !gd.almostEqual(gd.eccentricity[u], gd.eccentricity[v]) {
				pseudo = false
				break
			}
		}
		if pseudo {
			out = append(out, u)
		}
	}

	return out, nil
}

// filterByEccentricity returns every vertex whose cached eccentricity is
// within tolerance of target.
func (gd *GraphDistance) filterByEccentricity(target float64) []string {
	var out []string
	for _, v := range gd.g.Vertices() {
		if gd.almostEqual(gd.eccentricity[v], target) {
			out = append(out, v)
		}
	}

	return out
}

// almostEqual reports whether a and b differ by less than the instance's
// tolerance, treating two infinities of the same sign as equal.
func (gd *GraphDistance) almostEqual(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}

	return math.Abs(a-b) < gd.tolerance
}
