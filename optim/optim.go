// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/online/internal/optim"
)

// Teacher creates the Training that holds an optimizer's per-run state.
type Teacher = optim.Teacher

// Training applies one event at a time to a model's coefficients.
type Training = optim.Training

// Event is a single training event as seen by a Training.
type Event = optim.Event

// Stateful is implemented by trainings whose state can be saved and restored.
type Stateful = optim.Stateful

// Config represents the base configuration for optimizers.
type Config = optim.Config

// AnnealedConfig configures optimizers with a decaying learning rate.
type AnnealedConfig = optim.AnnealedConfig

// Gradient descent

// GradientDescent is stochastic gradient descent with a fixed learning rate.
type GradientDescent = optim.GradientDescent

// GradientDescentTraining is the Training of GradientDescent.
type GradientDescentTraining = optim.GradientDescentTraining

// NewGradientDescent creates a new GradientDescent optimizer.
//
// Example:
//
//	teacher := optim.NewGradientDescent(optim.Config{LR: 0.2})
func NewGradientDescent(config Config) *GradientDescent {
	return optim.NewGradientDescent(config)
}

// GradientDescentAnnealed is gradient descent with an annealed learning rate.
type GradientDescentAnnealed = optim.GradientDescentAnnealed

// AnnealedTraining is the Training of GradientDescentAnnealed.
type AnnealedTraining = optim.AnnealedTraining

// NewGradientDescentAnnealed creates a new GradientDescentAnnealed optimizer.
func NewGradientDescentAnnealed(config AnnealedConfig) *GradientDescentAnnealed {
	return optim.NewGradientDescentAnnealed(config)
}

// AnnealedLearningRate returns start / (1 + numEvents/t).
func AnnealedLearningRate(numEvents int, start, t float64) float64 {
	return optim.AnnealedLearningRate(numEvents, start, t)
}

// Momentum

// Momentum is annealed gradient descent with a velocity per coefficient.
type Momentum = optim.Momentum

// MomentumTraining is the Training of Momentum.
type MomentumTraining = optim.MomentumTraining

// NewMomentum creates a new Momentum optimizer.
//
// Example:
//
//	teacher := optim.NewMomentum(optim.AnnealedConfig{LR: 0.009, T: 1000}, 0.995)
func NewMomentum(config AnnealedConfig, inertia float64) *Momentum {
	return optim.NewMomentum(config, inertia)
}

// Nesterov is Momentum evaluating the gradient at the look-ahead point.
type Nesterov = optim.Nesterov

// NesterovTraining is the Training of Nesterov.
type NesterovTraining = optim.NesterovTraining

// NewNesterov creates a new Nesterov optimizer.
func NewNesterov(config AnnealedConfig, inertia float64) *Nesterov {
	return optim.NewNesterov(config, inertia)
}

// Adagrad

// Adagrad scales the step of every coefficient by its accumulated squared
// gradients.
type Adagrad = optim.Adagrad

// AdagradConfig contains configuration for Adagrad optimizer.
type AdagradConfig = optim.AdagradConfig

// AdagradTraining is the Training of Adagrad.
type AdagradTraining = optim.AdagradTraining

// NewAdagrad creates a new Adagrad optimizer.
//
// Example:
//
//	teacher := optim.NewAdagrad(optim.AdagradConfig{LR: 0.5, Epsilon: 1})
func NewAdagrad(config AdagradConfig) *Adagrad {
	return optim.NewAdagrad(config)
}
