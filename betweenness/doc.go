// Package betweenness computes vertex and edge betweenness centrality via
// Brandes' algorithm, in both unweighted and non-negative weighted forms,
// over any hypergraph.Graph.
//
// For every source vertex s, a forward pass (shortestpath.RunBFS or
// RunDijkstra, chosen by whether an EdgeWeight was supplied) produces the
// shortest-path DAG rooted at s: distances, path counts (σ), a
// predecessor list per vertex, and the settle order. Brandes' insight is
// that popping the settle order in reverse — non-increasing distance from
// s — lets the pair-dependency accumulation δ(v) = Σ (σ(s,v)/σ(s,w))·(1+δ(w))
// be computed in a single backward pass per source, giving O(VE) total
// instead of the O(V³) a naive all-pairs-shortest-paths approach would
// cost.
//
// Every pair (s,t) is counted once for each direction; on an undirected
// graph this double-counts every pair, so scores are halved once at the
// end. An additional caller-requested normalization divides by (n-1)(n-2)
// for vertices and n(n-1) for edges.
package betweenness
