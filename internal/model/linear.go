package model

import (
	"math"

	"github.com/born-ml/online/internal/vector"
)

// Linear models the target as y = m·x + c.
//
// Coefficients are indexed m_0..m_{n-1} followed by c, so a model over
// n-dimensional features has n+1 coefficients.
//
// Example:
//
//	m := model.NewLinear[vector.Dense](2)
//	y := m.Predict(vector.Dense{0.5, 1.5})
type Linear[F vector.Vector] struct {
	M vector.Dense // Slope
	C float64      // Offset
}

// NewLinear creates a Linear model for features of the given dimension with
// all coefficients set to zero.
func NewLinear[F vector.Vector](dimension int) *Linear[F] {
	return &Linear[F]{M: vector.Zero(dimension)}
}

// NumCoefficients returns dim(x) + 1.
func (l *Linear[F]) NumCoefficients() int {
	return len(l.M) + 1
}

// Coefficient returns a pointer to m_i, or to c for i == dim(x).
func (l *Linear[F]) Coefficient(i int) *float64 {
	switch {
	case i == len(l.M):
		return &l.C
	case i >= 0 && i < len(l.M):
		return &l.M[i]
	default:
		panic(outOfRange("Linear", i, l.NumCoefficients()))
	}
}

// Predict returns m·x + c.
func (l *Linear[F]) Predict(x F) float64 {
	return l.M.Dot(x) + l.C
}

// Gradient returns x_i for slope coefficients and 1 for the offset.
func (l *Linear[F]) Gradient(i int, x F) float64 {
	switch {
	case i == len(l.M):
		return 1
	case i >= 0 && i < len(l.M):
		return x.At(i)
	default:
		panic(outOfRange("Linear", i, l.NumCoefficients()))
	}
}

// Logistic models the target as y = 1 / (1 + e^(m·x + c)).
//
// Predictions lie in (0, 1) and are read as the probability of the
// positive class. Note the sign convention: growing m·x + c lowers y.
type Logistic[F vector.Vector] struct {
	Linear Linear[F]
}

// NewLogistic creates a Logistic model for features of the given dimension
// with all coefficients set to zero.
func NewLogistic[F vector.Vector](dimension int) *Logistic[F] {
	return &Logistic[F]{Linear: *NewLinear[F](dimension)}
}

// NumCoefficients returns the coefficient count of the linear term.
func (l *Logistic[F]) NumCoefficients() int {
	return l.Linear.NumCoefficients()
}

// Coefficient returns a pointer to the i-th coefficient of the linear term.
func (l *Logistic[F]) Coefficient(i int) *float64 {
	return l.Linear.Coefficient(i)
}

// Predict returns 1 / (1 + e^(m·x + c)).
func (l *Logistic[F]) Predict(x F) float64 {
	return 1 / (1 + math.Exp(l.Linear.Predict(x)))
}

// Gradient returns -y(1-y) times the gradient of the linear term.
func (l *Logistic[F]) Gradient(i int, x F) float64 {
	p := l.Predict(x)
	return -p * (1 - p) * l.Linear.Gradient(i, x)
}

// GeneralizedLinearModel models the target as y = g(m·x + c).
//
// GDerivative must be the derivative of G; it is not checked.
//
// Example (logistic regression expressed as a generalized linear model):
//
//	m := model.NewGeneralizedLinearModel[vector.Dense](2,
//	    func(x float64) float64 { return 1 / (1 + math.Exp(x)) },
//	    func(x float64) float64 { return -math.Exp(x) / math.Pow(1+math.Exp(x), 2) },
//	)
type GeneralizedLinearModel[F vector.Vector] struct {
	Linear      Linear[F]
	G           func(float64) float64
	GDerivative func(float64) float64
}

// NewGeneralizedLinearModel creates a generalized linear model for features
// of the given dimension with all coefficients set to zero.
func NewGeneralizedLinearModel[F vector.Vector](dimension int, g, gDerivative func(float64) float64) *GeneralizedLinearModel[F] {
	return &GeneralizedLinearModel[F]{
		Linear:      *NewLinear[F](dimension),
		G:           g,
		GDerivative: gDerivative,
	}
}

// NumCoefficients returns the coefficient count of the linear term.
func (g *GeneralizedLinearModel[F]) NumCoefficients() int {
	return g.Linear.NumCoefficients()
}

// Coefficient returns a pointer to the i-th coefficient of the linear term.
func (g *GeneralizedLinearModel[F]) Coefficient(i int) *float64 {
	return g.Linear.Coefficient(i)
}

// Predict returns g(m·x + c).
func (g *GeneralizedLinearModel[F]) Predict(x F) float64 {
	return g.G(g.Linear.Predict(x))
}

// Gradient returns g'(m·x + c) times the gradient of the linear term.
func (g *GeneralizedLinearModel[F]) Gradient(i int, x F) float64 {
	return g.GDerivative(g.Linear.Predict(x)) * g.Linear.Gradient(i, x)
}
