// Package crisp converts continuous predictions into class decisions.
//
// Crisp values have the same type as the truth used during training: a
// bool for binary classifiers, a class index for one-vs-rest models. They
// are used to evaluate accuracy, never for training.
package crisp

import (
	"iter"

	"github.com/born-ml/online/internal/vector"
)

// Threshold separates the two classes of a binary prediction.
const Threshold = 0.5

// Bool returns true if the predicted probability p is greater than 0.5.
func Bool(p float64) bool {
	return p > Threshold
}

// Class returns the index of the largest score. The first index wins ties.
//
// Panics if scores is empty.
func Class(scores vector.Vector) int {
	n := scores.Dimension()
	if n == 0 {
		panic("crisp: no scores")
	}
	best, top := 0, scores.At(0)
	for i := 1; i < n; i++ {
		if v := scores.At(i); v > top {
			best, top = i, v
		}
	}
	return best
}

// Errors counts the events of history whose crisp prediction differs from
// the truth.
//
// Example:
//
//	misses := crisp.Errors(model.Predict, crisp.Bool, train.Slice(history))
func Errors[F any, T any, Y comparable](predict func(F) T, decide func(T) Y, history iter.Seq2[F, Y]) int {
	errors := 0
	for features, truth := range history {
		if decide(predict(features)) != truth {
			errors++
		}
	}
	return errors
}
