// Package shortestpath implements the two single-source shortest-path
// engines the rest of this module is built on: weighted Dijkstra over a
// non-negative EdgeWeight function, and unweighted BFS. Both populate the
// same Traversal shape — distance, shortest-path count (σ), predecessor
// DAG, and settle order — so Brandes' betweenness algorithm (package
// betweenness) can run its accumulation phase identically regardless of
// which engine produced the forward pass.
//
// Oracle wraps either engine behind a memoizing "distance from s to
// everywhere" cache, the contract closeness centrality and graph-distance
// metrics consume.
//
// Errors:
//
//	ErrVertexNotFound - the requested source vertex does not exist.
//	ErrNegativeWeight  - an edge with weight < 0 was found during Dijkstra's pre-scan.
package shortestpath
