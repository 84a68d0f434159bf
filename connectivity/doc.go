// Package connectivity groups the vertices of a hypergraph.Graph into
// weakly and (for directed graphs) strongly connected components.
//
// WeakComponents treats every edge as undirected — two vertices are in the
// same weak component if a hyperedge-respecting path connects them,
// irrespective of direction. StrongComponents additionally requires edge
// direction to be respected on the way out and the way back, computed with
// Gabow's path-based algorithm (Gabow, "Path-based depth-first search for
// strong and biconnected components", 2000), run in O(V+E).
package connectivity
