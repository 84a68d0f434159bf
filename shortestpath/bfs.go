package shortestpath

import (
	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/pqueue"
)

// RunBFS computes single-source shortest paths from source over g treating
// every edge as unit weight: the same state machine as RunDijkstra, but
// with unit edge weights, a FIFO, and no decrease-key. The first enqueue of
// w fixes its distance; subsequent discoveries at the same layer only
// accumulate predecessors.
//
// Errors: ErrVertexNotFound if source is not a vertex of g.
// Complexity: O(V+E) time and space.
func RunBFS(g hypergraph.Graph, source string) (*Traversal, error) {
	if !hasVertex(g, source) {
		return nil, ErrVertexNotFound
	}

	t := newTraversal(source, g.VertexCount())
	t.Distance[source] = 0
	t.PathCount[source] = 1

	q := pqueue.NewFIFO()
	q.Insert(source, 0)

	for !q.IsEmpty() {
		v, _ := q.Remove()
		t.Order = append(t.Order, v)
		dv := t.Distance[v]

		for _, n := range hypergraph.ResolveNeighbors(g, v, g.OutEdges(v)) {
			w, e := n.Vertex, n.Edge
			if _, reached := t.Distance[w]; !reached {
				t.Distance[w] = dv + 1
				q.Insert(w, 0)
			}
			if t.Distance[w] == dv+1 {
				t.PathCount[w] += t.PathCount[v]
				t.Predecessors[w] = append(t.Predecessors[w], PredEdge{Edge: e, Vertex: v})
			}
		}
	}

	return t, nil
}
