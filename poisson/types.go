package poisson

import "errors"

// ErrInvalidRadius indicates a non-positive radius was supplied to Sample.
var ErrInvalidRadius = errors.New("poisson: radius must be positive")

// DefaultAttempts is the default number of annulus candidates tried per
// active sample before it is retired from the active list.
const DefaultAttempts = 30

// Point is a 2D coordinate in the sampling region, (0,0) at the top-left.
type Point struct {
	X, Y float64
}

// Params configures a single Sample call.
type Params struct {
	// Width and Height bound the sampling region: points fall in
	// [0, Width) x [0, Height).
	Width, Height float64

	// Radius is the minimum allowed distance between any two points.
	Radius float64

	// Attempts is the number of candidates drawn per active sample before
	// giving up on it. Zero means DefaultAttempts.
	Attempts int

	// Seed drives the RNG; identical Params with identical Seed always
	// produce an identical point sequence.
	Seed uint64
}
