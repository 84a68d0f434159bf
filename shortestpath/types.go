package shortestpath

import (
	"errors"

	"github.com/szisiu/jung/hypergraph"
)

// Sentinel errors returned by this package.
var (
	// ErrVertexNotFound indicates the requested source vertex is not in the graph.
	ErrVertexNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight indicates an edge with weight < 0 was found during
	// Dijkstra's up-front pre-scan: negative weights are rejected before the
	// algorithm enters its main loop, rather than letting them silently
	// corrupt a shortest-path result Dijkstra's invariants don't hold for.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")
)

// EdgeWeight is a pure, total, non-negative weight function over edge IDs.
// RunBFS does not take one — every edge has implicit weight 1.
type EdgeWeight func(edge string) float64

// PredEdge is one entry of a vertex's predecessor list: the edge traversed
// and the predecessor vertex reached via it, i.e. a point on some shortest
// path from the traversal's source.
type PredEdge struct {
	Edge   string
	Vertex string
}

// Traversal is the per-source state a single run of RunDijkstra or RunBFS
// produces. It is owned exclusively by the caller and never mutated after
// the run returns.
type Traversal struct {
	Source string

	// Distance maps a reached vertex to its shortest distance from Source.
	// An absent entry means unreachable — this is also the Distance
	// oracle's unreachability convention.
	Distance map[string]float64

	// PathCount is σ(Source, v): the number of distinct shortest paths
	// from Source to v. σ(Source, Source) = 1.
	PathCount map[string]float64

	// Predecessors lists, for each reached v, every (edge, vertex) pair
	// lying on some shortest path from Source to v.
	Predecessors map[string][]PredEdge

	// Order lists reached vertices in non-decreasing distance from
	// Source — the settle order Brandes' forward phase pushes onto its
	// stack S, so popping Order in reverse yields non-increasing distance.
	Order []string
}

// newTraversal allocates an empty Traversal sized for a graph with the
// given vertex count.
func newTraversal(source string, n int) *Traversal {
	return &Traversal{
		Source:       source,
		Distance:     make(map[string]float64, n),
		PathCount:    make(map[string]float64, n),
		Predecessors: make(map[string][]PredEdge, n),
		Order:        make([]string, 0, n),
	}
}

// hasVertex reports whether id names a vertex of g. The Graph interface
// deliberately exposes no HasVertex accessor, keeping the contract to the
// operations algorithms actually need; a linear scan here is O(V),
// acceptable since it runs once per RunDijkstra/RunBFS call, not per
// relaxation.
func hasVertex(g hypergraph.Graph, id string) bool {
	for _, v := range g.Vertices() {
		if v == id {
			return true
		}
	}

	return false
}
