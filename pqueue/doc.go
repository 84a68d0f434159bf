// Package pqueue provides the two priority-queue shapes Dijkstra and
// Brandes drive their main loops with:
//
//   - BinaryHeap: a decrease-key-capable min-heap keyed by float64, used by
//     the weighted shortest-path engine. Decrease-key and extract-min are
//     both O(log n); a Fibonacci heap would shave decrease-key to O(1)
//     amortized, but the constant-factor and bookkeeping overhead isn't
//     worth it at the scale this package targets, so it settles for a
//     binary heap with a real (non-lazy) decrease-key: the index bookkeeping
//     that needs is the same bookkeeping Update needs anyway.
//   - FIFO: a trivial queue for the unweighted BFS variant of Brandes,
//     where the first enqueue of a vertex already fixes its distance and
//     no key ever decreases.
//
// Both implement Queue. shortestpath.RunDijkstra drives a BinaryHeap and
// shortestpath.RunBFS drives a FIFO; the Brandes forward phase picks one
// engine or the other.
package pqueue
