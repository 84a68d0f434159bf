package connectivity

import "errors"

// ErrDirectednessMismatch is returned by StrongComponents when called on
// an undirected hypergraph.Graph — strong connectivity is only meaningful
// when edge direction is respected.
var ErrDirectednessMismatch = errors.New("connectivity: strong components require a directed graph")
