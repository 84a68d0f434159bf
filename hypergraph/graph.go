package hypergraph

import (
	"sort"
	"sync"
)

// Option configures a Hypergraph at construction time.
type Option func(*Hypergraph)

// WithDirected marks every edge added to this graph as directed, requiring
// callers to use AddDirectedEdge and supply an explicit source/dest
// partition. Without it, the graph is undirected and AddEdge is used.
func WithDirected() Option {
	return func(g *Hypergraph) { g.directed = true }
}

// Hypergraph is a thread-safe, in-memory implementation of Graph.
//
// Vertices and edges live in separate maps guarded by separate RWMutexes
// (muVert, muEdge): most call patterns touch only one of the two catalogs, so
// splitting the locks reduces contention without any additional
// bookkeeping. incident/in/out indices are maintained incrementally on
// AddEdge so that IncidentEdges/InEdges/OutEdges are O(deg) lookups rather
// than O(E) scans.
type Hypergraph struct {
	muVert sync.RWMutex
	muEdge sync.RWMutex

	directed bool

	vertices map[string]struct{}
	edges    map[string]*Edge

	incident map[string]map[string]struct{} // vertex -> edge IDs touching it
	inIdx    map[string]map[string]struct{} // vertex -> edge IDs where v is in Dest
	outIdx   map[string]map[string]struct{} // vertex -> edge IDs where v is in Source
}

// New constructs an empty Hypergraph. By default the graph is undirected;
// pass WithDirected() to require directed edges.
func New(opts ...Option) *Hypergraph {
	g := &Hypergraph{
		vertices: make(map[string]struct{}),
		edges:    make(map[string]*Edge),
		incident: make(map[string]map[string]struct{}),
		inIdx:    make(map[string]map[string]struct{}),
		outIdx:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex inserts a vertex with the given ID. Re-adding an existing ID is
// a no-op. Complexity: O(1).
func (g *Hypergraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdge.Lock()
	g.ensureIndices(id)
	g.muEdge.Unlock()

	return nil
}

// HasVertex reports whether id names a vertex in the graph.
func (g *Hypergraph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an undirected edge with the given ID connecting endpoints.
// Endpoints that do not yet exist as vertices are created automatically
// (AddVertex is idempotent). An ordinary
// edge has two endpoints; one endpoint denotes a self-loop; more than two
// makes it a genuine hyperedge.
//
// Errors: ErrEmptyEdgeID, ErrNoEndpoints, ErrDuplicateEdge, ErrDirectedGraph
// (the graph was constructed with WithDirected; use AddDirectedEdge).
// Complexity: O(k) where k = len(endpoints).
func (g *Hypergraph) AddEdge(id string, endpoints []string) error {
	if g.directed {
		return ErrDirectedGraph
	}
	if id == "" {
		return ErrEmptyEdgeID
	}
	if len(endpoints) == 0 {
		return ErrNoEndpoints
	}
	for _, v := range endpoints {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdge
	}

	e := &Edge{ID: id, Endpoints: dedupCopy(endpoints), Directed: false}
	e.Source = e.Endpoints
	e.Dest = e.Endpoints
	g.edges[id] = e
	g.indexEdge(e)

	return nil
}

// AddDirectedEdge inserts a directed hyperedge with the given ID. source
// and dest partition the edge's endpoint set: their union is Endpoints,
// both must be non-empty, and a vertex present in both denotes a loop
// through this edge. The common arc case is len(source)==len(dest)==1.
//
// Errors: ErrEmptyEdgeID, ErrNoEndpoints (both source and dest empty),
// ErrBadPartition (either side empty), ErrDuplicateEdge, ErrUndirectedGraph
// (the graph was constructed without WithDirected; use AddEdge).
// Complexity: O(k) where k = len(source)+len(dest).
func (g *Hypergraph) AddDirectedEdge(id string, source, dest []string) error {
	if !g.directed {
		return ErrUndirectedGraph
	}
	if id == "" {
		return ErrEmptyEdgeID
	}
	if len(source) == 0 && len(dest) == 0 {
		return ErrNoEndpoints
	}
	if len(source) == 0 || len(dest) == 0 {
		return ErrBadPartition
	}
	for _, v := range source {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	for _, v := range dest {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdge
	}

	e := &Edge{
		ID:       id,
		Source:   dedupCopy(source),
		Dest:     dedupCopy(dest),
		Directed: true,
	}
	e.Endpoints = unionDedup(e.Source, e.Dest)
	g.edges[id] = e
	g.indexEdge(e)

	return nil
}

// Vertices returns every vertex ID, sorted for determinism.
func (g *Hypergraph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Edges returns every edge ID, sorted for determinism.
func (g *Hypergraph) Edges() []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	out := make([]string, 0, len(g.edges))
	for id := range g.edges {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices without allocating a slice.
func (g *Hypergraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Endpoints returns a copy of edge e's endpoint set, or nil if e is unknown.
func (g *Hypergraph) Endpoints(e string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	edge, ok := g.edges[e]
	if !ok {
		return nil
	}

	return append([]string(nil), edge.Endpoints...)
}

// SourceSet returns a copy of edge e's source set, or nil if e is unknown.
func (g *Hypergraph) SourceSet(e string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	edge, ok := g.edges[e]
	if !ok {
		return nil
	}

	return append([]string(nil), edge.Source...)
}

// DestSet returns a copy of edge e's destination set, or nil if e is unknown.
func (g *Hypergraph) DestSet(e string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	edge, ok := g.edges[e]
	if !ok {
		return nil
	}

	return append([]string(nil), edge.Dest...)
}

// IncidentEdges returns every edge touching v, sorted for determinism.
func (g *Hypergraph) IncidentEdges(v string) []string {
	return g.sortedIdx(g.incident, v)
}

// InEdges returns edges where v is in the destination set (IncidentEdges
// for an undirected graph).
func (g *Hypergraph) InEdges(v string) []string {
	if !g.directed {
		return g.IncidentEdges(v)
	}

	return g.sortedIdx(g.inIdx, v)
}

// OutEdges returns edges where v is in the source set (IncidentEdges for an
// undirected graph).
func (g *Hypergraph) OutEdges(v string) []string {
	if !g.directed {
		return g.IncidentEdges(v)
	}

	return g.sortedIdx(g.outIdx, v)
}

// IsDirected reports the graph-wide directedness flag.
func (g *Hypergraph) IsDirected() bool { return g.directed }

// sortedIdx snapshots idx[v] into a sorted slice under a read lock.
func (g *Hypergraph) sortedIdx(idx map[string]map[string]struct{}, v string) []string {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	set := idx[v]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for eid := range set {
		out = append(out, eid)
	}
	sort.Strings(out)

	return out
}

// ensureIndices makes incident/inIdx/outIdx[id] non-nil. Caller holds muEdge.
func (g *Hypergraph) ensureIndices(id string) {
	if _, ok := g.incident[id]; !ok {
		g.incident[id] = make(map[string]struct{})
	}
	if _, ok := g.inIdx[id]; !ok {
		g.inIdx[id] = make(map[string]struct{})
	}
	if _, ok := g.outIdx[id]; !ok {
		g.outIdx[id] = make(map[string]struct{})
	}
}

// indexEdge records e in the incident/in/out indices of all its endpoints.
// Caller holds muEdge.
func (g *Hypergraph) indexEdge(e *Edge) {
	for _, v := range e.Endpoints {
		g.ensureIndices(v)
		g.incident[v][e.ID] = struct{}{}
	}
	if !e.Directed {
		return
	}
	for _, v := range e.Source {
		g.outIdx[v][e.ID] = struct{}{}
	}
	for _, v := range e.Dest {
		g.inIdx[v][e.ID] = struct{}{}
	}
}

// dedupCopy returns a deduplicated copy of ids, preserving first-seen order.
func dedupCopy(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// unionDedup returns the deduplicated union of a and b.
func unionDedup(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, id := range a {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	for _, id := range b {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}
