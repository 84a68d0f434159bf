package betweenness

import (
	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/shortestpath"
)

// BetweennessCentrality computes vertex and edge betweenness scores over g.
// Every vertex and edge of g is present in the returned maps, defaulting to
// 0 if it carries no through-traffic.
//
// Complexity: O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted — one
// shortest-path traversal per source vertex.
func BetweennessCentrality(g hypergraph.Graph, opts ...Option) (vertexScores, edgeScores map[string]float64, err error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := g.Vertices()
	edges := g.Edges()
	vertexScores = make(map[string]float64, len(vertices))
	edgeScores = make(map[string]float64, len(edges))
	for _, v := range vertices {
		vertexScores[v] = 0
	}
	for _, e := range edges {
		edgeScores[e] = 0
	}

	for _, s := range vertices {
		tr, terr := forward(g, s, cfg.Weight)
		if terr != nil {
			return nil, nil, terr
		}
		accumulate(tr, vertexScores, edgeScores)
	}

	if !g.IsDirected() {
		halve(vertexScores)
		halve(edgeScores)
	}

	if cfg.Normalize {
		normalize(vertexScores, edgeScores, len(vertices))
	}

	return vertexScores, edgeScores, nil
}

// forward runs the unweighted or weighted shortest-path engine from s,
// depending on whether weight was supplied.
func forward(g hypergraph.Graph, s string, weight shortestpath.EdgeWeight) (*shortestpath.Traversal, error) {
	if weight == nil {
		return shortestpath.RunBFS(g, s)
	}

	return shortestpath.RunDijkstra(g, s, weight)
}

// accumulate runs Brandes' backward dependency-accumulation pass for one
// source's traversal, adding its contribution into vertexScores and
// edgeScores in place.
func accumulate(tr *shortestpath.Traversal, vertexScores, edgeScores map[string]float64) {
	delta := make(map[string]float64, len(tr.Order))

	for i := len(tr.Order) - 1; i >= 0; i-- {
		w := tr.Order[i]
		sigmaW := tr.PathCount[w]
		if sigmaW == 0 {
			// w was never actually reached with a positive path count;
			// skip to avoid a 0/0 division below.
			continue
		}
		for _, pred := range tr.Predecessors[w] {
			v, e := pred.Vertex, pred.Edge
			d := (tr.PathCount[v] / sigmaW) * (1 + delta[w])
			if d == 0 {
				continue
			}
			delta[v] += d
			edgeScores[e] += d
		}
		if w != tr.Source {
			vertexScores[w] += delta[w]
		}
	}
}

// halve divides every value in scores by 2 in place, undoing the
// double-count every pair contributes on an undirected graph.
func halve(scores map[string]float64) {
	for k := range scores {
		scores[k] /= 2
	}
}

// normalize divides vertexScores by (n-1)(n-2) and edgeScores by n(n-1),
// skipping the division when the denominator would be non-positive (n<3
// for vertices, n<2 for edges).
func normalize(vertexScores, edgeScores map[string]float64, n int) {
	fn := float64(n)
	if n >= 3 {
		vDenom := (fn - 1) * (fn - 2)
		for k := range vertexScores {
			vertexScores[k] /= vDenom
		}
	}
	if n >= 2 {
		eDenom := fn * (fn - 1)
		for k := range edgeScores {
			edgeScores[k] /= eDenom
		}
	}
}
