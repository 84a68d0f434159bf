package shortestpath

import (
	"fmt"

	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/pqueue"
)

// RunDijkstra computes single-source shortest paths from source over g
// using weight to cost each traversed edge. Its relax step: a strictly
// shorter alt replaces distance[w] and resets its predecessor list; an
// exactly equal alt appends an additional predecessor and accumulates σ.
//
// Errors:
//   - ErrVertexNotFound if source is not a vertex of g.
//   - ErrNegativeWeight if any edge has weight < 0 (detected by an O(E)
//     pre-scan before the main loop runs).
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func RunDijkstra(g hypergraph.Graph, source string, weight EdgeWeight) (*Traversal, error) {
	if !hasVertex(g, source) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		if w := weight(e); w < 0 {
			return nil, fmt.Errorf("%w: edge %s weight=%g", ErrNegativeWeight, e, w)
		}
	}

	t := newTraversal(source, g.VertexCount())
	t.Distance[source] = 0
	t.PathCount[source] = 1

	settled := make(map[string]bool, g.VertexCount())
	pq := pqueue.NewBinaryHeap()
	pq.Insert(source, 0)

	for !pq.IsEmpty() {
		v, _ := pq.Remove()
		if settled[v] {
			continue
		}
		settled[v] = true
		t.Order = append(t.Order, v)

		dv := t.Distance[v]
		for _, n := range hypergraph.ResolveNeighbors(g, v, g.OutEdges(v)) {
			w, e := n.Vertex, n.Edge
			alt := dv + weight(e)

			cur, reached := t.Distance[w]
			switch {
			case !reached || alt < cur:
				t.Distance[w] = alt
				t.PathCount[w] = t.PathCount[v]
				t.Predecessors[w] = []PredEdge{{Edge: e, Vertex: v}}
				pq.Insert(w, alt)
			case alt == cur:
				t.PathCount[w] += t.PathCount[v]
				t.Predecessors[w] = append(t.Predecessors[w], PredEdge{Edge: e, Vertex: v})
			}
		}
	}

	return t, nil
}
