// Package centrality provides degree and closeness centrality scorers
// over a hypergraph.Graph.
//
// Both scorers memoize per vertex with a per-instance, not thread-safe
// cache: construct one DegreeCentrality or ClosenessCentrality per graph
// snapshot, and discard it if the graph mutates.
package centrality
