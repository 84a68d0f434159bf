package centrality

import (
	"errors"
	"math"

	"github.com/szisiu/jung/hypergraph"
	"github.com/szisiu/jung/shortestpath"
)

// ClosenessOptions configures a ClosenessCentrality instance.
type ClosenessOptions struct {
	// Averaging divides the summed reachable distance by the count of
	// reachable vertices instead of using the raw sum.
	Averaging bool

	// NullInfiniteDistances, when true, makes any missing (unreachable)
	// distance undefine the whole score rather than simply excluding it.
	NullInfiniteDistances bool

	// IgnoreSelfDistances excludes v's distance to itself (always 0) from
	// its own score.
	IgnoreSelfDistances bool
}

// ClosenessOption configures ClosenessOptions.
type ClosenessOption func(*ClosenessOptions)

// WithAveraging enables mean-distance (instead of summed-distance) scoring.
func WithAveraging() ClosenessOption {
	return func(o *ClosenessOptions) { o.Averaging = true }
}

// WithoutNullInfiniteDistances leaves unreachable vertices out of the sum
// instead of leaving the vertex's score undefined; a vertex with no
// reachable distances at all then scores 0.
func WithoutNullInfiniteDistances() ClosenessOption {
	return func(o *ClosenessOptions) { o.NullInfiniteDistances = false }
}

// WithSelfDistances includes v's distance to itself in its own score.
func WithSelfDistances() ClosenessOption {
	return func(o *ClosenessOptions) { o.IgnoreSelfDistances = false }
}

// DefaultClosenessOptions matches the original JUNG defaults: null
// infinite distances and ignore self distances both true, averaging false.
func DefaultClosenessOptions() ClosenessOptions {
	return ClosenessOptions{Averaging: false, NullInfiniteDistances: true, IgnoreSelfDistances: true}
}

// ClosenessCentrality scores each vertex by the inverse of its (optionally
// averaged) summed distance to the rest of the graph, using an injected
// shortestpath.Oracle for distances.
type ClosenessCentrality struct {
	g      hypergraph.Graph
	oracle *shortestpath.Oracle
	opts   ClosenessOptions
	cache  map[string]closenessResult
}

type closenessResult struct {
	score   float64
	defined bool
}

// NewClosenessCentrality returns a ClosenessCentrality over g. If weight is
// nil, distances come from unweighted BFS; otherwise from weighted
// Dijkstra.
func NewClosenessCentrality(g hypergraph.Graph, weight shortestpath.EdgeWeight, opts ...ClosenessOption) *ClosenessCentrality {
	cfg := DefaultClosenessOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ClosenessCentrality{
		g:      g,
		oracle: shortestpath.NewOracle(g, weight),
		opts:   cfg,
		cache:  make(map[string]closenessResult),
	}
}

// Score returns v's closeness score and whether it is defined. Under
// NullInfiniteDistances (the default) the score is undefined when v has
// no reachable distances or any vertex is unreachable from v; without it,
// a vertex with no reachable distances scores 0 and is defined. A vertex
// not in the graph is reported as undefined with a nil error.
func (c *ClosenessCentrality) Score(v string) (float64, bool, error) {
	if cached, ok := c.cache[v]; ok {
		return cached.score, cached.defined, nil
	}

	distances, err := c.oracle.GetDistanceMap(v)
	if errors.Is(err, shortestpath.ErrVertexNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	reachable := make(map[string]float64, len(distances))
	for w, d := range distances {
		if c.opts.IgnoreSelfDistances && w == v {
			continue
		}
		reachable[w] = d
	}

	if len(reachable) == 0 {
		result := closenessResult{score: 0, defined: !c.opts.NullInfiniteDistances}
		c.cache[v] = result

		return result.score, result.defined, nil
	}

	var sum float64
	for _, w := range c.g.Vertices() {
		if w == v && c.opts.IgnoreSelfDistances {
			continue
		}
		d, ok := reachable[w]
		if !ok {
			if c.opts.NullInfiniteDistances {
				result := closenessResult{score: 0, defined: false}
				c.cache[v] = result

				return result.score, result.defined, nil
			}
			continue
		}
		sum += d
	}

	value := sum
	if c.opts.Averaging {
		value /= float64(len(reachable))
	}

	score := math.Inf(1)
	if value != 0 {
		score = 1 / value
	}

	result := closenessResult{score: score, defined: true}
	c.cache[v] = result

	return result.score, result.defined, nil
}

// Scores returns the score and defined-flag of every vertex in the graph.
func (c *ClosenessCentrality) Scores() (map[string]float64, map[string]bool, error) {
	scores := make(map[string]float64, c.g.VertexCount())
	defined := make(map[string]bool, c.g.VertexCount())
	for _, v := range c.g.Vertices() {
		score, ok, err := c.Score(v)
		if err != nil {
			return nil, nil, err
		}
		scores[v] = score
		defined[v] = ok
	}

	return scores, defined, nil
}
