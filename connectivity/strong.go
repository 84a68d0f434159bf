package connectivity

import (
	"sort"

	"github.com/szisiu/jung/hypergraph"
)

// StrongComponents partitions a directed g's vertices into strongly
// connected components using Gabow's path-based algorithm: a single DFS
// pass maintains a stack of unfinished vertices and a second stack, B, of
// candidate component boundaries, popping B whenever a back-edge proves
// the current frontier can't be its own component. Runs in O(V+E).
//
// Returns ErrDirectednessMismatch if g is undirected.
func StrongComponents(g hypergraph.Graph) ([][]string, error) {
	if !g.IsDirected() {
		return nil, ErrDirectednessMismatch
	}

	s := &gabowState{
		g:      g,
		number: make(map[string]int, g.VertexCount()),
		c:      g.VertexCount(),
	}

	for _, v := range g.Vertices() {
		if _, seen := s.number[v]; !seen {
			s.visit(v)
		}
	}

	sort.Slice(s.components, func(i, j int) bool {
		return s.components[i][0] < s.components[j][0]
	})

	return s.components, nil
}

// gabowState carries the two stacks and running counters Gabow's
// algorithm threads through its recursive visits.
type gabowState struct {
	g hypergraph.Graph

	number map[string]int // absent means unvisited; otherwise path-stack index, later rewritten to its component number
	stack  []string       // path stack of vertices not yet assigned to a component
	b      []int          // stack of candidate boundary indices into stack

	c          int
	components [][]string
}

// visit runs Gabow's DFS from v, numbering it, exploring its neighbors,
// and closing off a new strongly connected component whenever v turns out
// to be the root of one.
func (s *gabowState) visit(v string) {
	s.stack = append(s.stack, v)
	idx := len(s.stack) - 1
	s.number[v] = idx
	s.b = append(s.b, idx)

	for _, nb := range hypergraph.ResolveNeighbors(s.g, v, s.g.OutEdges(v)) {
		w := nb.Vertex
		if _, seen := s.number[w]; !seen {
			s.visit(w)
		} else {
			for len(s.b) > 0 && s.number[w] < s.b[len(s.b)-1] {
				s.b = s.b[:len(s.b)-1]
			}
		}
	}

	if idx == s.b[len(s.b)-1] {
		s.b = s.b[:len(s.b)-1]
		s.c++

		var component []string
		for idx <= len(s.stack)-1 {
			r := s.stack[len(s.stack)-1]
			s.stack = s.stack[:len(s.stack)-1]
			component = append(component, r)
			s.number[r] = s.c
		}
		sort.Strings(component)
		s.components = append(s.components, component)
	}
}
