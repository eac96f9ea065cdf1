package cost

import (
	"math"

	"github.com/born-ml/online/internal/vector"
)

// MaxLikelihood is the cross entropy of a predicted probability p against
// a true probability y:
//
//	C = -y·ln(p) - (1-y)·ln(1-p)
//
// Minimizing it maximizes the likelihood of the observed truth. Predictions
// of exactly 0 or 1 are outside its domain; the result is then ±Inf or NaN
// and is passed on unchanged.
type MaxLikelihood struct{}

// OuterDerivative returns (1-y)/(1-p) - y/p.
func (MaxLikelihood) OuterDerivative(prediction, truth float64) float64 {
	return (1-truth)/(1-prediction) - truth/prediction
}

// Cost returns -y·ln(p) - (1-y)·ln(1-p).
func (MaxLikelihood) Cost(prediction, truth float64) float64 {
	return -truth*math.Log(prediction) - (1-truth)*math.Log(1-prediction)
}

// MaxLikelihoodBool is MaxLikelihood for boolean truth: true is read as
// probability 1, false as 0.
type MaxLikelihoodBool struct{}

// OuterDerivative returns -1/p if truth holds, else 1/(1-p).
func (MaxLikelihoodBool) OuterDerivative(prediction float64, truth bool) float64 {
	if truth {
		return 1 / -prediction
	}
	return 1 / (1 - prediction)
}

// Cost returns -ln(p) if truth holds, else -ln(1-p).
func (MaxLikelihoodBool) Cost(prediction float64, truth bool) float64 {
	if truth {
		return -math.Log(prediction)
	}
	return -math.Log(1 - prediction)
}

// Classes lifts a binary cost to a multi-class prediction holding one score
// per class, with the truth given as class index.
//
// Entry k of the prediction is scored by Binary against truth == k. The cost
// value is the sum over all classes.
//
// Example (training a OneVsRest model of logistic classifiers):
//
//	c := cost.Classes[cost.MaxLikelihoodBool]{}
type Classes[C Cost[bool, float64]] struct {
	Binary C
}

// OuterDerivative returns the derivative of Binary for each class.
func (c Classes[C]) OuterDerivative(prediction vector.Dense, truth int) vector.Dense {
	out := vector.Zero(len(prediction))
	for k, p := range prediction {
		out[k] = c.Binary.OuterDerivative(p, truth == k)
	}
	return out
}

// Cost returns the sum of Binary over all classes.
func (c Classes[C]) Cost(prediction vector.Dense, truth int) float64 {
	var sum float64
	for k, p := range prediction {
		sum += c.Binary.Cost(p, truth == k)
	}
	return sum
}
