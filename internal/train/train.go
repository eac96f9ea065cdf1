// Package train drives optimizers over a history of training events.
//
// It ties the three independent parts together: a Model (what is
// predicted), a Cost (what is penalized) and a Teacher (how coefficients
// are adapted). Any combination can be used as long as the model's target
// type matches the cost.
//
// Example:
//
//	history := []train.Pair[vector.Dense, float64]{
//	    {Features: vector.Dense{0}, Truth: 3},
//	    {Features: vector.Dense{1}, Truth: 4},
//	    {Features: vector.Dense{2}, Truth: 5},
//	}
//	m := model.NewLinear[vector.Dense](1)
//	train.LearnHistory(
//	    optim.NewGradientDescent(optim.Config{LR: 0.2}),
//	    cost.LeastSquares{},
//	    m,
//	    train.Cycle(history, 20),
//	)
package train

import (
	"iter"

	"github.com/born-ml/online/internal/cost"
	"github.com/born-ml/online/internal/model"
	"github.com/born-ml/online/internal/optim"
)

// TeachEvent teaches model a single event using training.
//
// The prediction for features is evaluated once, before any coefficient
// changes. The training then sees the gradient of c for each coefficient
// as the chain-rule product of the cost's outer derivative at that
// prediction and the model's gradient.
func TeachEvent[F, Y any, T cost.Target](training optim.Training, m model.Model[F, T], c cost.Cost[Y, T], features F, truth Y) {
	prediction := m.Predict(features)
	training.TeachEvent(&event[F, T]{
		model:    m,
		features: features,
		outer:    c.OuterDerivative(prediction, truth),
	})
}

// LearnHistory teaches model every event of history, in order.
//
// One Training is created from teacher before the first event and returned
// after the last one, so its state can be inspected or used to continue.
// History is consumed lazily; it may be infinite if it is bounded with
// Take before being passed in.
func LearnHistory[F, Y any, T cost.Target](
	teacher optim.Teacher,
	c cost.Cost[Y, T],
	m model.Model[F, T],
	history iter.Seq2[F, Y],
	opts ...Option,
) optim.Training {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	training := teacher.NewTraining(m)
	n := 0
	for features, truth := range history {
		TeachEvent(training, m, c, features, truth)
		n++
		if o.observer != nil {
			o.observer(n, training)
		}
	}
	return training
}

// event adapts one (model, features, outer derivative) triple to the
// optim.Event interface.
type event[F any, T cost.Target] struct {
	model    model.Model[F, T]
	features F
	outer    T
}

func (e *event[F, T]) NumCoefficients() int {
	return e.model.NumCoefficients()
}

func (e *event[F, T]) Coefficient(i int) *float64 {
	return e.model.Coefficient(i)
}

// Gradient is evaluated against the model's current coefficients, which
// may already have been changed earlier in the same event.
func (e *event[F, T]) Gradient(i int) float64 {
	return cost.Chain(e.outer, e.model.Gradient(i, e.features))
}
