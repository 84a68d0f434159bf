package graphdistance

import "errors"

// ErrInvalidTolerance is returned by NewGraphDistance when tolerance <= 0.
var ErrInvalidTolerance = errors.New("graphdistance: tolerance must be positive")

// DefaultTolerance is the absolute tolerance used for floating-point
// equality comparisons between eccentricities.
const DefaultTolerance = 1e-9
