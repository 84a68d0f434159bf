package connectivity

import "github.com/szisiu/jung/hypergraph"

// GetConnectedSubgraphs derives one induced hypergraph.Hypergraph per weak
// component of g: every vertex of a component, and every edge of g whose
// full endpoint set lies inside that component. Directedness is copied
// from g. This is a pure derivation from WeakComponents and g's read-view,
// so it is computed eagerly rather than left for callers to assemble
// themselves.
func GetConnectedSubgraphs(g hypergraph.Graph) []*hypergraph.Hypergraph {
	components := WeakComponents(g)
	subgraphs := make([]*hypergraph.Hypergraph, 0, len(components))

	for _, component := range components {
		in := make(map[string]struct{}, len(component))
		for _, v := range component {
			in[v] = struct{}{}
		}

		var sub *hypergraph.Hypergraph
		if g.IsDirected() {
			sub = hypergraph.New(hypergraph.WithDirected())
		} else {
			sub = hypergraph.New()
		}
		for _, v := range component {
			_ = sub.AddVertex(v)
		}

		for _, e := range g.Edges() {
			if !allIn(g.Endpoints(e), in) {
				continue
			}
			if g.IsDirected() {
				_ = sub.AddDirectedEdge(e, g.SourceSet(e), g.DestSet(e))
			} else {
				_ = sub.AddEdge(e, g.Endpoints(e))
			}
		}

		subgraphs = append(subgraphs, sub)
	}

	return subgraphs
}

// allIn reports whether every id in ids is a key of set.
func allIn(ids []string, set map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; !ok {
			return false
		}
	}

	return true
}
