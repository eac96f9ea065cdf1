// Package model implements parameterized predictors trained by the optim
// package.
//
// This package provides:
//   - Model: contract shared by every predictor
//   - Constant: y = c
//   - Linear: y = m·x + c
//   - Logistic: y = 1 / (1 + e^(m·x + c))
//   - GeneralizedLinearModel: y = g(m·x + c)
//   - OneVsRest: K binary models combined into a multi-class model
//
// Gradients are derived by hand for each model. A Model exposes its
// coefficients by index so optimizers can adapt them without knowing the
// concrete type.
package model

import "fmt"

// Parameters is the coefficient view of a model.
//
// Optimizers only need this much: how many coefficients there are and a
// way to read and write each one.
type Parameters interface {
	// NumCoefficients returns the number of coefficients. It never changes
	// during the lifetime of the model.
	NumCoefficients() int

	// Coefficient returns a pointer to the i-th coefficient.
	//
	// Panics if i is not in [0, NumCoefficients()).
	Coefficient(i int) *float64
}

// Model is a parameterized predictor.
//
// F is the feature type consumed by Predict and Gradient. T is the target
// type: float64 for regressors and binary classifiers, vector.Dense with
// one entry per class for multi-class models.
type Model[F, T any] interface {
	Parameters

	// Predict returns the target predicted for features based on the
	// current coefficients.
	Predict(features F) T

	// Gradient returns the partial derivative of Predict with respect to
	// the i-th coefficient, evaluated at features.
	Gradient(i int, features F) T
}

// Coefficients returns a snapshot of all coefficients of p, in index order.
func Coefficients(p Parameters) []float64 {
	out := make([]float64, p.NumCoefficients())
	for i := range out {
		out[i] = *p.Coefficient(i)
	}
	return out
}

// SetCoefficients assigns all coefficients of p from values.
//
// Panics if len(values) differs from p.NumCoefficients().
func SetCoefficients(p Parameters, values []float64) {
	if len(values) != p.NumCoefficients() {
		panic(fmt.Sprintf("model: expected %d coefficients, got %d", p.NumCoefficients(), len(values)))
	}
	for i, v := range values {
		*p.Coefficient(i) = v
	}
}

func outOfRange(kind string, i, n int) string {
	return fmt.Sprintf("%s: coefficient index %d out of range [0, %d)", kind, i, n)
}
