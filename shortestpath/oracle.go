package shortestpath

import "github.com/szisiu/jung/hypergraph"

// Oracle is a map-like "distance from any source to everywhere" object: a
// cache keyed by source vertex, returning (vertex -> distance) maps. It
// lazily runs RunDijkstra or RunBFS the first time a given source is
// queried and memoizes the result — an instance-owned cache, not
// thread-safe, matching the memoization discipline degree/closeness
// centrality also use.
type Oracle struct {
	g      hypergraph.Graph
	weight EdgeWeight
	cache  map[string]*Traversal
}

// NewOracle returns an Oracle over g. If weight is nil, distances are
// computed via unweighted BFS (RunBFS); otherwise via weighted Dijkstra
// (RunDijkstra) using weight to cost each edge.
func NewOracle(g hypergraph.Graph, weight EdgeWeight) *Oracle {
	return &Oracle{g: g, weight: weight, cache: make(map[string]*Traversal)}
}

// traversal returns the (possibly cached) Traversal rooted at s.
func (o *Oracle) traversal(s string) (*Traversal, error) {
	if t, ok := o.cache[s]; ok {
		return t, nil
	}
	var t *Traversal
	var err error
	if o.weight == nil {
		t, err = RunBFS(o.g, s)
	} else {
		t, err = RunDijkstra(o.g, s, o.weight)
	}
	if err != nil {
		return nil, err
	}
	o.cache[s] = t

	return t, nil
}

// GetDistanceMap returns the map of vertex -> shortest distance from s.
// Unreachable vertices are simply absent from the returned map. Returns an
// error if s is not a vertex of the graph or, for a weighted Oracle, if
// any edge has a negative weight.
func (o *Oracle) GetDistanceMap(s string) (map[string]float64, error) {
	t, err := o.traversal(s)
	if err != nil {
		return nil, err
	}

	return t.Distance, nil
}

// GetDistance returns the shortest distance from s to dst, and whether dst
// is reachable from s at all.
func (o *Oracle) GetDistance(s, dst string) (float64, bool, error) {
	dm, err := o.GetDistanceMap(s)
	if err != nil {
		return 0, false, err
	}
	d, ok := dm[dst]

	return d, ok, nil
}
