package model

import (
	"fmt"

	"github.com/born-ml/online/internal/vector"
)

// OneVsRest combines K binary models into a multi-class model.
//
// Each sub-model scores one class independently; Predict returns the K
// scores without normalization. Use crisp.Class to pick a class.
//
// All sub-models must have the same number of coefficients. Coefficients
// are interleaved: for sub-models a, b, c with coefficients 0, 1, 2 the
// combined order is a0, b0, c0, a1, b1, c1, a2, b2, c2. Index i therefore
// addresses sub-model i % K at local index i / K.
//
// Example:
//
//	ovr := model.NewOneVsRest[vector.Dense](
//	    model.NewLogistic[vector.Dense](4),
//	    model.NewLogistic[vector.Dense](4),
//	    model.NewLogistic[vector.Dense](4),
//	)
type OneVsRest[F any] struct {
	models []Model[F, float64]
	per    int // Coefficients per sub-model
}

// NewOneVsRest creates a OneVsRest model over the given sub-models.
//
// Panics if no model is given or the coefficient counts differ.
func NewOneVsRest[F any](models ...Model[F, float64]) *OneVsRest[F] {
	if len(models) == 0 {
		panic("OneVsRest: at least one model required")
	}
	per := models[0].NumCoefficients()
	for k, m := range models[1:] {
		if n := m.NumCoefficients(); n != per {
			panic(fmt.Sprintf("OneVsRest: model %d has %d coefficients, model 0 has %d", k+1, n, per))
		}
	}
	return &OneVsRest[F]{models: models, per: per}
}

// Classes returns the number of sub-models.
func (o *OneVsRest[F]) Classes() int {
	return len(o.models)
}

// Model returns the sub-model scoring class k.
func (o *OneVsRest[F]) Model(k int) Model[F, float64] {
	return o.models[k]
}

// Locate maps a combined coefficient index to its sub-model and local index.
func (o *OneVsRest[F]) Locate(i int) (class, local int) {
	if i < 0 || i >= o.NumCoefficients() {
		panic(outOfRange("OneVsRest", i, o.NumCoefficients()))
	}
	k := len(o.models)
	return i % k, i / k
}

// NumCoefficients returns K times the coefficient count of one sub-model.
func (o *OneVsRest[F]) NumCoefficients() int {
	return len(o.models) * o.per
}

// Coefficient returns a pointer to the i-th interleaved coefficient.
func (o *OneVsRest[F]) Coefficient(i int) *float64 {
	class, local := o.Locate(i)
	return o.models[class].Coefficient(local)
}

// Predict returns one independent score per class.
func (o *OneVsRest[F]) Predict(features F) vector.Dense {
	out := vector.Zero(len(o.models))
	for k, m := range o.models {
		out[k] = m.Predict(features)
	}
	return out
}

// Gradient returns a K-vector which is zero except at the class owning
// coefficient i.
func (o *OneVsRest[F]) Gradient(i int, features F) vector.Dense {
	class, local := o.Locate(i)
	out := vector.Zero(len(o.models))
	out[class] = o.models[class].Gradient(local, features)
	return out
}
