package betweenness

import "github.com/szisiu/jung/shortestpath"

// Options configures BetweennessCentrality.
type Options struct {
	// Weight, if non-nil, selects the weighted (Dijkstra-backed) variant.
	// Nil selects unweighted BFS-backed Brandes.
	Weight shortestpath.EdgeWeight

	// Normalize divides vertex scores by (n-1)(n-2) and edge scores by
	// n(n-1), rescaling them to [0,1] regardless of graph size. Disabled
	// by default: raw accumulated scores are returned.
	Normalize bool
}

// Option configures Options.
type Option func(*Options)

// WithWeight selects the weighted variant, costing each edge via weight.
func WithWeight(weight shortestpath.EdgeWeight) Option {
	return func(o *Options) { o.Weight = weight }
}

// WithNormalize enables the (n-1)(n-2) / n(n-1) normalization.
func WithNormalize() Option {
	return func(o *Options) { o.Normalize = true }
}

// DefaultOptions returns the unweighted, unnormalized configuration.
func DefaultOptions() Options {
	return Options{Weight: nil, Normalize: false}
}
