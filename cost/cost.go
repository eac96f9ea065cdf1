// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cost provides the cost functions minimized while training.
package cost

import (
	"github.com/born-ml/online/internal/cost"
)

// Target is the type of a model prediction: float64 or vector.Dense.
type Target = cost.Target

// Cost measures the error of a prediction against the truth.
type Cost[Y any, T Target] = cost.Cost[Y, T]

// LeastSquares penalizes the squared error (p - y)².
type LeastSquares = cost.LeastSquares

// LeastAbsoluteDeviation penalizes the absolute error |p - y|.
type LeastAbsoluteDeviation = cost.LeastAbsoluteDeviation

// MaxLikelihood is the negative log likelihood of a probability against a
// real truth in [0, 1].
type MaxLikelihood = cost.MaxLikelihood

// MaxLikelihoodBool is MaxLikelihood against a boolean truth.
type MaxLikelihoodBool = cost.MaxLikelihoodBool

// Classes applies a binary cost to every class score of a OneVsRest model.
//
// Example:
//
//	c := cost.Classes[cost.MaxLikelihoodBool]{}
type Classes[C Cost[bool, float64]] = cost.Classes[C]

// Chain combines an outer derivative with a model gradient.
func Chain[T Target](outer, inner T) float64 {
	return cost.Chain(outer, inner)
}

// Gradient returns the derivative of c by one coefficient.
func Gradient[Y any, T Target](c Cost[Y, T], prediction T, truth Y, inner T) float64 {
	return cost.Gradient(c, prediction, truth, inner)
}
