// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides online optimization algorithms.
//
// # Overview
//
// This package contains:
//   - GradientDescent: fixed learning rate
//   - GradientDescentAnnealed: learning rate l0 / (1 + n/t)
//   - Momentum and Nesterov: annealed rate with inertia
//   - Adagrad: per coefficient adaptive rate
//
// A Teacher holds hyperparameters only. Everything that changes while
// learning (event counters, velocities, accumulated gradients) lives in the
// Training returned by Teacher.NewTraining, so one Teacher can drive any
// number of independent runs.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/online/cost"
//	    "github.com/born-ml/online/model"
//	    "github.com/born-ml/online/optim"
//	    "github.com/born-ml/online/train"
//	    "github.com/born-ml/online/vector"
//	)
//
//	func main() {
//	    m := model.NewLinear[vector.Dense](2)
//	    teacher := optim.NewNesterov(optim.AnnealedConfig{LR: 0.009, T: 1000}, 0.995)
//
//	    training := train.LearnHistory(teacher, cost.LeastSquares{}, m, history)
//	    fmt.Println(training.LearningRate())
//	}
//
// # Saving optimizer state
//
// Trainings implementing Stateful can be paused and resumed:
//
//	state := training.(optim.Stateful).StateDict()
//	resumed := teacher.NewTraining(m)
//	err := resumed.(optim.Stateful).LoadStateDict(state)
package optim
