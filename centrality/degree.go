package centrality

import "github.com/szisiu/jung/hypergraph"

// DegreeOptions configures a DegreeCentrality instance.
type DegreeOptions struct {
	// Weight, if non-nil, sums w(e) over the vertex's edge collection
	// instead of counting it.
	Weight func(edge string) float64

	// Normalize divides the raw score by |V|-1.
	Normalize bool
}

// DegreeOption configures DegreeOptions.
type DegreeOption func(*DegreeOptions)

// WithDegreeWeight sums w(e) instead of counting edges.
func WithDegreeWeight(weight func(edge string) float64) DegreeOption {
	return func(o *DegreeOptions) { o.Weight = weight }
}

// WithDegreeNormalize divides the result by |V|-1.
func WithDegreeNormalize() DegreeOption {
	return func(o *DegreeOptions) { o.Normalize = true }
}

// DefaultDegreeOptions returns the unweighted, unnormalized configuration.
func DefaultDegreeOptions() DegreeOptions {
	return DegreeOptions{Weight: nil, Normalize: false}
}

// DegreeCentrality scores each vertex by the size (or weight sum) of one
// of its edge collections, selected by mode.
type DegreeCentrality struct {
	g     hypergraph.Graph
	mode  CentralityMode
	opts  DegreeOptions
	cache map[string]float64
}

// NewDegreeCentrality returns a DegreeCentrality over g scoring vertices
// per mode.
func NewDegreeCentrality(g hypergraph.Graph, mode CentralityMode, opts ...DegreeOption) *DegreeCentrality {
	cfg := DefaultDegreeOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DegreeCentrality{g: g, mode: mode, opts: cfg, cache: make(map[string]float64)}
}

// Score returns v's degree-centrality score, computing and memoizing it
// on first access. A vertex absent from the graph scores 0 — its edge
// collections are empty by hypergraph.Graph's contract.
func (d *DegreeCentrality) Score(v string) float64 {
	if score, ok := d.cache[v]; ok {
		return score
	}

	var edges []string
	switch d.mode {
	case DegreeIn:
		edges = d.g.InEdges(v)
	case DegreeOut:
		edges = d.g.OutEdges(v)
	default:
		edges = d.g.IncidentEdges(v)
	}

	var score float64
	if d.opts.Weight != nil {
		for _, e := range edges {
			score += d.opts.Weight(e)
		}
	} else {
		score = float64(len(edges))
	}

	if d.opts.Normalize {
		if n := d.g.VertexCount() - 1; n > 0 {
			score /= float64(n)
		}
	}

	d.cache[v] = score

	return score
}

// Scores returns the score of every vertex currently in the graph.
func (d *DegreeCentrality) Scores() map[string]float64 {
	out := make(map[string]float64, d.g.VertexCount())
	for _, v := range d.g.Vertices() {
		out[v] = d.Score(v)
	}

	return out
}
