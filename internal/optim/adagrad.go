package optim

import (
	"math"

	"github.com/born-ml/online/internal/model"
)

// Adagrad implements the Adagrad (adaptive gradient) optimizer.
//
// Every coefficient gets its own learning rate, shrinking with the sum of
// its squared gradients so far:
//
//	c_i = c_i - lr * g_i / sqrt(s_i)
//	s_i = s_i + g_i²
//
// The accumulator s_i starts at epsilon rather than zero so the first event
// does not divide by zero. The update uses s_i from before the event.
//
// Reference: "Adaptive Subgradient Methods for Online Learning and
// Stochastic Optimization" (Duchi, Hazan & Singer, 2011)
//
// Example:
//
//	teacher := optim.NewAdagrad(optim.AdagradConfig{LR: 0.5, Epsilon: 1e-8})
type Adagrad struct {
	lr  float64
	eps float64
}

// AdagradConfig holds configuration for Adagrad optimizer.
type AdagradConfig struct {
	LR      float64 // Learning rate (default: 0.01)
	Epsilon float64 // Start value of the accumulators (default: 1e-8)
}

// NewAdagrad creates a new Adagrad optimizer.
//
// Default hyperparameters:
//   - LR: 0.01
//   - Epsilon: 1e-8
func NewAdagrad(config AdagradConfig) *Adagrad {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.Epsilon == 0 {
		config.Epsilon = 1e-8
	}
	return &Adagrad{lr: config.LR, eps: config.Epsilon}
}

// NewTraining returns a Training with every accumulator set to epsilon.
func (a *Adagrad) NewTraining(model model.Parameters) Training {
	squared := make([]float64, model.NumCoefficients())
	for i := range squared {
		squared[i] = a.eps
	}
	return &AdagradTraining{lr: a.lr, squared: squared}
}

// AdagradTraining is the Training of Adagrad. Its state is the accumulated
// squared gradient of every coefficient.
type AdagradTraining struct {
	lr      float64
	squared []float64
}

// TeachEvent scales each gradient step by the inverse root of the
// coefficient's accumulator, then adds the squared gradient to it.
func (tr *AdagradTraining) TeachEvent(event Event) {
	checkCoefficients("AdagradTraining", event, len(tr.squared))

	for ci := range event.NumCoefficients() {
		g := event.Gradient(ci)
		*event.Coefficient(ci) -= tr.lr * g / math.Sqrt(tr.squared[ci])
		tr.squared[ci] += g * g
	}
}

// LearningRate returns the base learning rate. The effective rate of
// coefficient i is LearningRate() / sqrt(Accumulated()[i]).
func (tr *AdagradTraining) LearningRate() float64 {
	return tr.lr
}

// Accumulated returns a copy of the accumulated squared gradients.
func (tr *AdagradTraining) Accumulated() []float64 {
	return clone(tr.squared)
}
