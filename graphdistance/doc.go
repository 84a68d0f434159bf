// Package graphdistance derives whole-graph distance metrics —
// eccentricity, diameter, radius, center, periphery, and pseudo-periphery
// — from a shortestpath.Oracle. Every metric is computed lazily on first
// request and memoized on the GraphDistance instance.
//
// Center/periphery/pseudo-periphery compare floating-point eccentricities
// with an absolute tolerance (DefaultTolerance, 1e-9) rather than exact
// equality.
package graphdistance
