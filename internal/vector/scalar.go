package vector

// Scalar is a real number viewed as a vector of dimension 1.
//
// Scalar is a value type; it satisfies Vector but not MutableVector.
// Use *Scalar where element assignment is required.
type Scalar float64

// ZeroScalar returns the zero Scalar.
//
// The dimension argument exists so callers generic over the vector kind
// can pass a size hint. Panics unless dimension is 1.
func ZeroScalar(dimension int) Scalar {
	if dimension != 1 {
		panic("Scalar: dimension must be 1")
	}
	return 0
}

// Dimension always returns 1.
func (s Scalar) Dimension() int {
	return 1
}

// At returns the scalar itself. Panics unless i is 0.
func (s Scalar) At(i int) float64 {
	checkIndex("Scalar", i, 1)
	return float64(s)
}

// Dot returns the product of both scalars if other is a Scalar.
func (s Scalar) Dot(other Vector) float64 {
	if o, ok := other.(Scalar); ok {
		return float64(s) * float64(o)
	}
	return Dot(s, other)
}

// Set assigns the scalar. Panics unless i is 0.
func (s *Scalar) Set(i int, v float64) {
	checkIndex("Scalar", i, 1)
	*s = Scalar(v)
}
