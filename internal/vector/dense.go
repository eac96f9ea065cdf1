package vector

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Dense is a vector whose dimension is known at runtime.
//
// Dense is a slice, so Set on a Dense value writes through to the shared
// backing array.
//
// Example:
//
//	x := vector.Dense{2.7, 2.5}
//	y := vector.Zero(2)
//	y.Set(0, 1)
//	x.Dot(y) // 2.7
type Dense []float64

// Zero returns a Dense vector of the given dimension with all elements set
// to zero.
func Zero(dimension int) Dense {
	if dimension < 0 {
		panic(fmt.Sprintf("Dense: invalid dimension %d", dimension))
	}
	return make(Dense, dimension)
}

// Fixed returns values as a Dense vector after checking it has exactly
// the expected dimension.
//
// Fixed takes the role of compile-time sized tuples: feature vectors of a
// model are built through it so a wrongly sized record fails at
// construction instead of inside a dot product.
func Fixed(dimension int, values ...float64) Dense {
	if len(values) != dimension {
		panic(fmt.Sprintf("Dense: expected dimension %d, got %d values", dimension, len(values)))
	}
	out := make(Dense, dimension)
	copy(out, values)
	return out
}

// Dimension returns the number of elements.
func (d Dense) Dimension() int {
	return len(d)
}

// At returns the i-th element.
func (d Dense) At(i int) float64 {
	checkIndex("Dense", i, len(d))
	return d[i]
}

// Set assigns the i-th element.
func (d Dense) Set(i int, v float64) {
	checkIndex("Dense", i, len(d))
	d[i] = v
}

// Dot returns the scalar product with other.
func (d Dense) Dot(other Vector) float64 {
	if o, ok := other.(Dense); ok {
		checkDimensions(d, o)
		return floats.Dot(d, o)
	}
	return Dot(d, other)
}

// Clone returns a copy of d with its own backing array.
func (d Dense) Clone() Dense {
	out := make(Dense, len(d))
	copy(out, d)
	return out
}
