package model

// Constant models the target as a single number, ignoring the features.
//
// Trained with cost.LeastSquares it converges to the mean of the truth,
// with cost.LeastAbsoluteDeviation to the median.
//
// The type parameter F only fixes the feature type the model accepts; any
// type works, struct{} included.
type Constant[F any] struct {
	C float64
}

// NewConstant creates a Constant model with the given start value.
func NewConstant[F any](c float64) *Constant[F] {
	return &Constant[F]{C: c}
}

// NumCoefficients always returns 1.
func (m *Constant[F]) NumCoefficients() int {
	return 1
}

// Coefficient returns a pointer to C. Panics unless i is 0.
func (m *Constant[F]) Coefficient(i int) *float64 {
	if i != 0 {
		panic(outOfRange("Constant", i, 1))
	}
	return &m.C
}

// Predict returns C.
func (m *Constant[F]) Predict(_ F) float64 {
	return m.C
}

// Gradient returns 1 for the only coefficient.
func (m *Constant[F]) Gradient(i int, _ F) float64 {
	if i != 0 {
		panic(outOfRange("Constant", i, 1))
	}
	return 1
}
