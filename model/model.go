// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model provides the models trained by package train.
//
// A model predicts a target from features and exposes its coefficients and
// the derivative of the prediction by each of them:
//   - Constant: a single coefficient, features ignored
//   - Linear: m·x + c
//   - Logistic: 1 / (1 + e^(m·x + c))
//   - GeneralizedLinearModel: g(m·x + c) for a caller supplied g
//   - OneVsRest: one binary model per class, scores as a vector
package model

import (
	"github.com/born-ml/online/internal/model"
	"github.com/born-ml/online/internal/vector"
)

// Parameters is the coefficient view of a model used by optimizers.
type Parameters = model.Parameters

// Model predicts targets of type T from features of type F.
type Model[F, T any] = model.Model[F, T]

// Constant predicts its single coefficient for every input.
type Constant[F any] = model.Constant[F]

// NewConstant creates a Constant model predicting c.
func NewConstant[F any](c float64) *Constant[F] {
	return model.NewConstant[F](c)
}

// Linear models y = m·x + c.
type Linear[F vector.Vector] = model.Linear[F]

// NewLinear creates a zero Linear model over features of the given dimension.
//
// Example:
//
//	m := model.NewLinear[vector.Dense](2)
func NewLinear[F vector.Vector](dimension int) *Linear[F] {
	return model.NewLinear[F](dimension)
}

// Logistic models y = 1 / (1 + e^(m·x + c)).
type Logistic[F vector.Vector] = model.Logistic[F]

// NewLogistic creates a zero Logistic model.
func NewLogistic[F vector.Vector](dimension int) *Logistic[F] {
	return model.NewLogistic[F](dimension)
}

// GeneralizedLinearModel models y = g(m·x + c).
type GeneralizedLinearModel[F vector.Vector] = model.GeneralizedLinearModel[F]

// NewGeneralizedLinearModel creates a zero GeneralizedLinearModel with link g
// and its derivative.
func NewGeneralizedLinearModel[F vector.Vector](dimension int, g, gDerivative func(float64) float64) *GeneralizedLinearModel[F] {
	return model.NewGeneralizedLinearModel[F](dimension, g, gDerivative)
}

// OneVsRest combines one binary model per class.
type OneVsRest[F any] = model.OneVsRest[F]

// NewOneVsRest creates a OneVsRest model over models, one per class.
func NewOneVsRest[F any](models ...Model[F, float64]) *OneVsRest[F] {
	return model.NewOneVsRest(models...)
}

// Coefficients returns a copy of every coefficient of p.
func Coefficients(p Parameters) []float64 {
	return model.Coefficients(p)
}

// SetCoefficients overwrites every coefficient of p with values.
func SetCoefficients(p Parameters, values []float64) {
	model.SetCoefficients(p, values)
}
