package hypergraph

// Neighbor pairs a vertex reachable from some origin vertex with the edge
// that reaches it.
type Neighbor struct {
	Vertex string
	Edge   string
}

// Opposite returns the "other side" of edge e as seen from v:
//
//   - ordinary edge (two endpoints): the single non-v endpoint.
//   - undirected hyperedge: every endpoint except v.
//   - directed hyperedge: if v is in Source(e), Dest(e); if v is in
//     Dest(e), Source(e); if v is in both (a loop through e), the union of
//     both sets minus v.
//
// Returns nil if e does not exist or does not touch v.
func Opposite(g Graph, v, e string) []string {
	ends := g.Endpoints(e)
	if len(ends) == 0 || !contains(ends, v) {
		return nil
	}
	if !g.IsDirected() {
		return excluding(ends, v)
	}

	src := g.SourceSet(e)
	dst := g.DestSet(e)
	inSrc := contains(src, v)
	inDst := contains(dst, v)

	switch {
	case inSrc && inDst:
		return excluding(unionDedup(src, dst), v)
	case inSrc:
		return excluding(dst, v)
	case inDst:
		return excluding(src, v)
	default:
		return nil
	}
}

// ResolveNeighbors expands v's incidence to a chosen edge collection
// (typically OutEdges(v), InEdges(v), or IncidentEdges(v)) into a
// deduplicated slice of (neighbor, edge) pairs. Self-loops are suppressed
// (a pair's Vertex is never v), and the same (w, e) pair is emitted at
// most once even if w appears multiple times among e's endpoints. Factoring
// this out as a free function lets every algorithm that walks the graph
// (Brandes, Dijkstra, BFS, Gabow) share one implementation of hyperedge
// fan-out and loop/duplicate suppression.
func ResolveNeighbors(g Graph, v string, edges []string) []Neighbor {
	seen := make(map[Neighbor]struct{})
	out := make([]Neighbor, 0, len(edges))
	for _, e := range edges {
		for _, w := range Opposite(g, v, e) {
			if w == v {
				continue
			}
			n := Neighbor{Vertex: w, Edge: e}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}

	return out
}

// contains reports whether ids contains target.
func contains(ids []string, target string) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}

	return false
}

// excluding returns a copy of ids with every occurrence of target removed.
func excluding(ids []string, target string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != target {
			out = append(out, id)
		}
	}

	return out
}
