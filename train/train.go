// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package train drives optimizers over a history of training events.
//
// Example:
//
//	history := []train.Pair[vector.Dense, float64]{
//	    {Features: vector.Dense{0}, Truth: 3},
//	    {Features: vector.Dense{1}, Truth: 4},
//	}
//	m := model.NewLinear[vector.Dense](1)
//	train.LearnHistory(optim.NewGradientDescent(optim.Config{LR: 0.2}), cost.LeastSquares{}, m, train.Cycle(history, 20))
package train

import (
	"iter"

	"github.com/born-ml/online/internal/cost"
	"github.com/born-ml/online/internal/model"
	"github.com/born-ml/online/internal/optim"
	"github.com/born-ml/online/internal/train"
)

// Pair is one history event.
type Pair[F, Y any] = train.Pair[F, Y]

// Option configures LearnHistory.
type Option = train.Option

// TeachEvent teaches m a single event using training.
func TeachEvent[F, Y any, T cost.Target](training optim.Training, m model.Model[F, T], c cost.Cost[Y, T], features F, truth Y) {
	train.TeachEvent(training, m, c, features, truth)
}

// LearnHistory teaches m every event of history and returns the training.
func LearnHistory[F, Y any, T cost.Target](
	teacher optim.Teacher,
	c cost.Cost[Y, T],
	m model.Model[F, T],
	history iter.Seq2[F, Y],
	opts ...Option,
) optim.Training {
	return train.LearnHistory(teacher, c, m, history, opts...)
}

// WithObserver calls fn after every event.
func WithObserver(fn func(n int, training optim.Training)) Option {
	return train.WithObserver(fn)
}

// Slice yields every pair once, in order.
func Slice[F, Y any](pairs []Pair[F, Y]) iter.Seq2[F, Y] {
	return train.Slice(pairs)
}

// Cycle repeats pairs and yields the first n events.
func Cycle[F, Y any](pairs []Pair[F, Y], n int) iter.Seq2[F, Y] {
	return train.Cycle(pairs, n)
}

// Take yields at most the first n events of seq.
func Take[F, Y any](seq iter.Seq2[F, Y], n int) iter.Seq2[F, Y] {
	return train.Take(seq, n)
}
