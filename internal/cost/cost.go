// Package cost implements the functions whose value training minimizes.
//
// A cost describes how deviations of a prediction from the observed truth
// are penalized. Optimizers never use the cost value itself; they combine
// the outer derivative of the cost with the gradient of the model (chain
// rule) through Chain.
//
// This package provides:
//   - LeastSquares: (p - y)², converges to the mean
//   - LeastAbsoluteDeviation: |p - y|, converges to the median
//   - MaxLikelihood / MaxLikelihoodBool: cross entropy for probabilities
//   - Classes: lifts a binary cost to one-vs-rest class indices
package cost

import (
	"fmt"

	"github.com/born-ml/online/internal/vector"
)

// Target is the set of prediction types a Cost can be defined over.
type Target interface {
	float64 | vector.Dense
}

// Cost is a function of a prediction and the observed truth.
//
// Y is the truth type (float64, bool or a class index), T the prediction
// type of the model being trained.
type Cost[Y any, T Target] interface {
	// OuterDerivative returns the derivative of the cost with respect to
	// the prediction.
	OuterDerivative(prediction T, truth Y) T

	// Cost returns the value of the cost function. It is diagnostic only.
	Cost(prediction T, truth Y) float64
}

// Chain combines the outer derivative of a cost with the inner derivative
// of a model with respect to one coefficient.
//
// For scalar targets this is the product of both; for vector targets it is
// their dot product.
func Chain[T Target](outer, inner T) float64 {
	switch o := any(outer).(type) {
	case float64:
		return o * any(inner).(float64)
	case vector.Dense:
		return o.Dot(any(inner).(vector.Dense))
	default:
		panic(fmt.Sprintf("cost: unsupported target type %T", outer))
	}
}

// Gradient returns the derivative of c with respect to one coefficient,
// given the model's derivative of the prediction with respect to it.
func Gradient[Y any, T Target](c Cost[Y, T], prediction T, truth Y, inner T) float64 {
	return Chain(c.OuterDerivative(prediction, truth), inner)
}
