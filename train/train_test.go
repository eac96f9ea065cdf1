// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package train_test

import (
	"testing"

	"github.com/born-ml/online/cost"
	"github.com/born-ml/online/crisp"
	"github.com/born-ml/online/model"
	"github.com/born-ml/online/optim"
	"github.com/born-ml/online/train"
	"github.com/born-ml/online/vector"
)

// TestPublicAPI_Line trains y = 3 + x through the public packages only.
func TestPublicAPI_Line(t *testing.T) {
	history := []train.Pair[vector.Dense, float64]{
		{Features: vector.Dense{0}, Truth: 3},
		{Features: vector.Dense{1}, Truth: 4},
		{Features: vector.Dense{2}, Truth: 5},
	}
	m := model.NewLinear[vector.Dense](1)

	var events int
	training := train.LearnHistory(
		optim.NewGradientDescent(optim.Config{LR: 0.2}),
		cost.LeastSquares{},
		m,
		train.Cycle(history, 20),
		train.WithObserver(func(n int, _ optim.Training) { events = n }),
	)

	if events != 20 {
		t.Errorf("observer saw %d events, want 20", events)
	}
	if lr := training.LearningRate(); lr != 0.2 {
		t.Errorf("LearningRate() = %v, want 0.2", lr)
	}
	for _, p := range history {
		if diff := m.Predict(p.Features) - p.Truth; diff > 0.1 || diff < -0.1 {
			t.Errorf("Predict(%v) = %v, want %v", p.Features, m.Predict(p.Features), p.Truth)
		}
	}
}

// TestPublicAPI_Classifier verifies the aliases compose for a logistic
// classifier.
func TestPublicAPI_Classifier(t *testing.T) {
	history := []train.Pair[vector.Dense, bool]{
		{Features: vector.Dense{2.5}, Truth: true},
		{Features: vector.Dense{-1.0}, Truth: false},
		{Features: vector.Dense{3.0}, Truth: true},
		{Features: vector.Dense{-2.0}, Truth: false},
	}
	m := model.NewLogistic[vector.Dense](1)
	teacher := optim.NewAdagrad(optim.AdagradConfig{LR: 0.5, Epsilon: 1})

	training := train.LearnHistory(teacher, cost.MaxLikelihoodBool{}, m, train.Cycle(history, 40))

	if errs := crisp.Errors(m.Predict, crisp.Bool, train.Slice(history)); errs != 0 {
		t.Errorf("Errors() = %d, want 0", errs)
	}
	if _, ok := training.(optim.Stateful); !ok {
		t.Errorf("%T does not implement optim.Stateful", training)
	}
}
