package connectivity

import (
	"sort"

	"github.com/szisiu/jung/hypergraph"
)

// WeakComponents partitions g's vertices into weakly connected components:
// two vertices share a component if some path of incident edges connects
// them, with edge direction ignored. Each component is returned sorted,
// and components are ordered by their smallest member, for determinism.
func WeakComponents(g hypergraph.Graph) [][]string {
	visited := make(map[string]bool)
	var components [][]string

	for _, start := range g.Vertices() {
		if visited[start] {
			continue
		}

		component := []string{start}
		visited[start] = true
		queue := []string{start}

		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]

			for _, nb := range hypergraph.ResolveNeighbors(g, v, g.IncidentEdges(v)) {
				if visited[nb.Vertex] {
					continue
				}
				visited[nb.Vertex] = true
				component = append(component, nb.Vertex)
				queue = append(queue, nb.Vertex)
			}
		}

		sort.Strings(component)
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})

	return components
}
