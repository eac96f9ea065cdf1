package vector

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum adapts a gonum column vector to the Vector contract.
//
// It lets feature matrices loaded with gonum feed models row by row
// without copying into a Dense first:
//
//	row := mat.NewVecDense(4, nil)
//	row.CopyVec(features.RowView(i))
//	model.Predict(vector.Gonum{VecDense: row})
type Gonum struct {
	*mat.VecDense
}

// ZeroGonum returns a Gonum vector of the given dimension with all
// elements set to zero.
//
// Dimension 0 yields an empty vector; mat.NewVecDense rejects it.
func ZeroGonum(dimension int) Gonum {
	if dimension < 0 {
		panic(fmt.Sprintf("Gonum: invalid dimension %d", dimension))
	}
	if dimension == 0 {
		return Gonum{VecDense: &mat.VecDense{}}
	}
	return Gonum{VecDense: mat.NewVecDense(dimension, nil)}
}

// NewGonum wraps a copy of values.
func NewGonum(values ...float64) Gonum {
	if len(values) == 0 {
		return ZeroGonum(0)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Gonum{VecDense: mat.NewVecDense(len(data), data)}
}

// Dimension returns the length of the underlying vector.
func (g Gonum) Dimension() int {
	return g.Len()
}

// At returns the i-th element.
func (g Gonum) At(i int) float64 {
	checkIndex("Gonum", i, g.Len())
	return g.AtVec(i)
}

// Set assigns the i-th element.
func (g Gonum) Set(i int, v float64) {
	checkIndex("Gonum", i, g.Len())
	g.SetVec(i, v)
}

// Dot returns the scalar product with other, using mat.Dot when both
// operands are gonum vectors.
func (g Gonum) Dot(other Vector) float64 {
	if o, ok := other.(Gonum); ok {
		checkDimensions(g, o)
		if g.Len() == 0 {
			return 0
		}
		return mat.Dot(g.VecDense, o.VecDense)
	}
	return Dot(g, other)
}
