// Package hypergraph defines the read-only (hyper)graph contract that every
// traversal algorithm in this module consumes, plus a concrete, thread-safe
// implementation of it.
//
// A hypergraph generalizes an ordinary graph by letting an edge connect any
// number of vertices (its "endpoints"), not just two. A directed hyperedge
// additionally partitions its endpoints into a source set and a destination
// set; an ordinary directed arc is the special case where both sets have
// exactly one vertex.
//
// Algorithms never see a concrete struct — they depend only on the Graph
// interface (vertices, edges, endpoint/source/dest sets, incident/in/out
// edge listings, and a single directedness flag) plus the free functions
// Opposite and ResolveNeighbors that turn "edges incident to v" into
// "(neighbor, edge) pairs reachable from v". This is deliberate: the same
// Brandes, Dijkstra, BFS, and Gabow implementations run unmodified over a
// plain directed graph, an undirected graph, and a hypergraph with
// ten-way edges, because all three only ever call through Graph.
//
// Vertex and edge identity is a caller-supplied string, compared only by
// equality — matching the rest of this module's string-keyed idiom rather
// than introducing a generic type parameter.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrEmptyEdgeID     - edge ID is the empty string.
//	ErrDuplicateEdge   - an edge with this ID already exists.
//	ErrNoEndpoints     - an edge was added with zero endpoints.
//	ErrBadPartition    - a directed edge's source/dest sets don't partition its endpoints.
//	ErrUndirectedGraph - AddDirectedEdge called on a graph built without WithDirected.
//	ErrDirectedGraph   - AddEdge called on a graph built with WithDirected.
package hypergraph
