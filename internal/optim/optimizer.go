// Package optim implements the algorithms used to adapt model coefficients.
//
// This package provides:
//   - Teacher interface: factory for per-run optimizer state
//   - Training interface: mutable optimizer state applying per-event updates
//   - GradientDescent: fixed learning rate
//   - GradientDescentAnnealed: learning rate l0 / (1 + n/t)
//   - Momentum: annealed rate with a velocity term
//   - Nesterov: annealed rate with a look-ahead velocity term
//   - Adagrad: per-coefficient rate scaled by accumulated squared gradients
//
// A Teacher never owns the model. All mutable state lives in the Training
// it creates, so one model can be handed to different teachers one after
// another without resetting its coefficients.
//
// Example usage:
//
//	teacher := optim.NewNesterov(optim.AnnealedConfig{LR: 0.0001, T: 1000}, 0.99)
//	training := teacher.NewTraining(model)
//
//	for features, truth := range history {
//	    train.TeachEvent(training, model, cost, features, truth)
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/online/internal/model"
)

// Event is a single training event as seen by an optimizer.
//
// The prediction for the event has been evaluated before the optimizer
// runs. Gradient combines the cost's outer derivative at that prediction
// with the model's gradient for coefficient i and is computed on each call,
// so it reflects coefficients already changed during the same event.
type Event interface {
	model.Parameters

	// Gradient returns the derivative of the cost with respect to the i-th
	// coefficient.
	Gradient(i int) float64
}

// Teacher is the base interface for all optimization algorithms.
type Teacher interface {
	// NewTraining creates the mutable state for one training run of model.
	//
	// Vectors held by the returned Training have one entry per coefficient
	// of model.
	NewTraining(model model.Parameters) Training
}

// Training holds the state of one training run and applies the update rule
// of the Teacher that created it.
type Training interface {
	// TeachEvent changes the coefficients of event so they decrease the cost
	// (hopefully).
	TeachEvent(event Event)

	// LearningRate returns the base learning rate used for the next event.
	//
	// Useful for monitoring annealing schedules.
	LearningRate() float64
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float64 // Learning rate
}

// AnnealedConfig configures optimizers whose learning rate decays with the
// number of events seen.
type AnnealedConfig struct {
	LR float64 // Start learning rate l0 (default: 0.01)
	T  float64 // Events until the rate has halved (default: 1000)
}

func (c AnnealedConfig) withDefaults() AnnealedConfig {
	if c.LR == 0 {
		c.LR = 0.01
	}
	if c.T == 0 {
		c.T = 1000
	}
	return c
}

// AnnealedLearningRate calculates the learning rate for event number
// numEvents (counting from 0).
//
// Smaller t decreases the learning rate faster. After t events the rate is
// half of start, after 2t events one third of start, and so on. It never
// reaches zero.
func AnnealedLearningRate(numEvents int, start, t float64) float64 {
	return start / (1 + float64(numEvents)/t)
}

// annealing counts events and derives the annealed learning rate from them.
type annealing struct {
	l0     float64
	t      float64
	events int
}

// LearningRate returns the learning rate for the next event.
func (a *annealing) LearningRate() float64 {
	return AnnealedLearningRate(a.events, a.l0, a.t)
}

// Events returns the number of events learned so far.
func (a *annealing) Events() int {
	return a.events
}

// checkCoefficients panics if event does not belong to the model a state
// vector of length n was created for.
func checkCoefficients(kind string, event Event, n int) {
	if event.NumCoefficients() != n {
		panic(fmt.Sprintf("%s: training created for %d coefficients, event has %d",
			kind, n, event.NumCoefficients()))
	}
}

func zeros(n int) []float64 {
	return make([]float64, n)
}

func clone(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	return out
}
