// Package jung computes centrality and connectivity measures over
// hypergraphs — graphs whose edges may connect more than two vertices,
// and whose directed edges partition their endpoints into a source set
// and a destination set rather than a single ordered pair.
//
// What is jung?
//
//	A synchronous, I/O-free algorithm library that brings together:
//		• Graph abstraction: a minimal read contract any hypergraph
//		  implementation can satisfy, plus a concrete, thread-safe-to-
//		  construct Hypergraph type
//		• Shortest paths: unified Dijkstra/BFS traversal state, shared
//		  by every algorithm that needs distances, path counts, or
//		  predecessor DAGs
//		• Betweenness: Brandes' algorithm, vertex and edge scores,
//		  weighted or unweighted
//		• Connectivity: weak (BFS) and strong (Gabow's path-based
//		  algorithm) components
//		• Degree & closeness centrality, memoized per vertex
//		• Graph distance metrics: eccentricity, diameter, radius,
//		  center, periphery, pseudo-periphery
//
// Everything is organized under one subpackage per component:
//
//	hypergraph/    — Graph interface, Hypergraph type, neighbor resolution
//	pqueue/        — the priority-queue protocol shortest-path engines share
//	shortestpath/  — RunDijkstra, RunBFS, and the memoizing Oracle
//	betweenness/   — Brandes' vertex and edge betweenness
//	connectivity/  — WeakComponents, StrongComponents, GetConnectedSubgraphs
//	centrality/    — DegreeCentrality, ClosenessCentrality
//	graphdistance/ — eccentricity, diameter, radius, center, periphery
//
// Every algorithm here is CPU-bound and side-effect-free: construct a
// graph, run an algorithm against it, read the result. There is no
// drawing, no persistence, and no network surface — see each
// subpackage's doc.go for its exact contract.
package jung
