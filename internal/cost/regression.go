package cost

import "math"

// LeastSquares penalizes the squared error (p - y)².
//
// Optimizing a Constant model for LeastSquares yields the mean of the
// truth.
type LeastSquares struct{}

// OuterDerivative returns 2(p - y).
func (LeastSquares) OuterDerivative(prediction, truth float64) float64 {
	return 2 * (prediction - truth)
}

// Cost returns (p - y)².
func (LeastSquares) Cost(prediction, truth float64) float64 {
	d := prediction - truth
	return d * d
}

// LeastAbsoluteDeviation penalizes the absolute error |p - y|.
//
// Optimizing a Constant model for LeastAbsoluteDeviation yields the median
// of the truth.
type LeastAbsoluteDeviation struct{}

// OuterDerivative returns the sign of p - y, and 0 when p == y so the
// model does not oscillate around the optimum.
func (LeastAbsoluteDeviation) OuterDerivative(prediction, truth float64) float64 {
	switch d := prediction - truth; {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Cost returns |p - y|.
func (LeastAbsoluteDeviation) Cost(prediction, truth float64) float64 {
	return math.Abs(prediction - truth)
}
