// Package vector implements the numeric tuples models consume as features.
//
// This package provides:
//   - Vector: read-only contract (Dimension, At, Dot)
//   - MutableVector: Vector with element assignment
//   - Scalar: a single float64 treated as a vector of dimension 1
//   - Dense: runtime-sized vector backed by a float64 slice
//   - Gonum: adapter over gonum's *mat.VecDense
//
// Models are written against Vector, so the same Linear model accepts a
// Scalar, a Dense or a Gonum feature vector without changes.
//
// Index and dimension violations are programmer errors and panic.
package vector

import "fmt"

// Vector is a tuple of numbers representing projections along orthogonal
// base vectors.
type Vector interface {
	// Dimension returns the number of elements. Valid indices for At are
	// 0..Dimension()-1.
	Dimension() int

	// At returns the projection along the i-th base.
	At(i int) float64

	// Dot returns the scalar product with other.
	//
	// Panics if the dimensions differ.
	Dot(other Vector) float64
}

// MutableVector is a Vector whose elements can be assigned in place.
type MutableVector interface {
	Vector

	// Set assigns the projection along the i-th base.
	Set(i int, v float64)
}

// Dot computes the scalar product of two vectors using At and Dimension.
//
// It serves as the fallback for Vector implementations which have no
// faster path for a given pair of operands.
func Dot(a, b Vector) float64 {
	checkDimensions(a, b)
	var sum float64
	for i := range a.Dimension() {
		sum += a.At(i) * b.At(i)
	}
	return sum
}

// Equal reports whether two vectors have the same dimension and elements.
func Equal(a, b Vector) bool {
	if a.Dimension() != b.Dimension() {
		return false
	}
	for i := range a.Dimension() {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// Copy returns a Dense copy of v.
func Copy(v Vector) Dense {
	out := Zero(v.Dimension())
	for i := range out {
		out[i] = v.At(i)
	}
	return out
}

func checkDimensions(a, b Vector) {
	if a.Dimension() != b.Dimension() {
		panic(fmt.Sprintf("vector: dimension mismatch: %d != %d", a.Dimension(), b.Dimension()))
	}
}

func checkIndex(kind string, i, dimension int) {
	if i < 0 || i >= dimension {
		panic(fmt.Sprintf("%s: index %d out of range [0, %d)", kind, i, dimension))
	}
}
