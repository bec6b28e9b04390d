package finance

import "math"

// Root-finder defaults. The iteration bound keeps worst-case cost fixed;
// non-convergence is reported by returning the last iterate, which the IRR
// clamping downstream is written to tolerate.
const (
	// DefaultTolerance is the step-size convergence threshold.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds the Newton-Raphson loop.
	DefaultMaxIterations = 100

	// derivativeFloor is the smallest derivative magnitude we divide by.
	derivativeFloor = 1e-10
)

// NewtonRaphson finds a root of f starting from x0 using the derivative
// fprime. It stops when the step falls below tol and returns the last
// iterate when maxIter is exhausted without converging.
//
// When |fprime(x)| drops below 1e-10 the solver returns 0 immediately: the
// iteration would blow up, and callers treat 0 as "no usable rate".
func NewtonRaphson(f, fprime func(float64) float64, x0, tol float64, maxIter int) float64 {
	x := x0
	for i := 0; i < maxIter; i++ {
		fx := f(x)
		fpx := fprime(x)
		if math.Abs(fpx) < derivativeFloor {
			return 0
		}
		step := fx / fpx
		x -= step
		if math.Abs(step) < tol {
			return x
		}
	}
	return x
}
