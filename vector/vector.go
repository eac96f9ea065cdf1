// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector provides the feature vectors consumed by linear models.
//
// Scalar, Dense and Gonum all satisfy Vector:
//
//	x := vector.Dense{1, 2}
//	y := vector.NewGonum(3, 4)
//	x.Dot(y) // 11
package vector

import (
	"github.com/born-ml/online/internal/vector"
)

// Vector is a read-only vector of float64 with a fixed dimension.
type Vector = vector.Vector

// MutableVector is a Vector whose entries can be set.
type MutableVector = vector.MutableVector

// Scalar is a single float64 treated as a vector of dimension 1.
type Scalar = vector.Scalar

// Dense is a runtime sized vector backed by a slice.
type Dense = vector.Dense

// Gonum wraps a gonum *mat.VecDense.
type Gonum = vector.Gonum

// Zero returns a Dense vector of the given dimension with all entries 0.
func Zero(dimension int) Dense {
	return vector.Zero(dimension)
}

// ZeroScalar returns a zero Scalar. It panics unless dimension is 1.
func ZeroScalar(dimension int) Scalar {
	return vector.ZeroScalar(dimension)
}

// ZeroGonum returns a zero Gonum vector of the given dimension.
func ZeroGonum(dimension int) Gonum {
	return vector.ZeroGonum(dimension)
}

// NewGonum returns a Gonum vector holding values.
func NewGonum(values ...float64) Gonum {
	return vector.NewGonum(values...)
}

// Fixed returns a Dense vector and panics unless len(values) == dimension.
func Fixed(dimension int, values ...float64) Dense {
	return vector.Fixed(dimension, values...)
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector) float64 {
	return vector.Dot(a, b)
}

// Equal reports whether a and b have the same dimension and entries.
func Equal(a, b Vector) bool {
	return vector.Equal(a, b)
}

// Copy returns the entries of v as a new Dense vector.
func Copy(v Vector) Dense {
	return vector.Copy(v)
}
