package optim

import "github.com/born-ml/online/internal/model"

// GradientDescent implements stochastic gradient descent with a fixed
// learning rate.
//
// Update rule:
//
//	c_i = c_i - lr * g_i
//
// It keeps no state between events.
//
// Example:
//
//	teacher := optim.NewGradientDescent(optim.Config{LR: 0.2})
type GradientDescent struct {
	lr float64
}

// NewGradientDescent creates a new GradientDescent optimizer.
//
// A zero LR is replaced by the default 0.01.
func NewGradientDescent(config Config) *GradientDescent {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &GradientDescent{lr: config.LR}
}

// NewTraining returns a Training applying the fixed learning rate.
func (g *GradientDescent) NewTraining(_ model.Parameters) Training {
	return &GradientDescentTraining{lr: g.lr}
}

// GradientDescentTraining is the (stateless) Training of GradientDescent.
type GradientDescentTraining struct {
	lr float64
}

// TeachEvent applies c_i -= lr * g_i to every coefficient.
func (tr *GradientDescentTraining) TeachEvent(event Event) {
	for ci := range event.NumCoefficients() {
		*event.Coefficient(ci) -= tr.lr * event.Gradient(ci)
	}
}

// LearningRate returns the fixed learning rate.
func (tr *GradientDescentTraining) LearningRate() float64 {
	return tr.lr
}

// GradientDescentAnnealed implements stochastic gradient descent with a
// learning rate decaying as l0 / (1 + n/t) over the events n.
//
// Example:
//
//	teacher := optim.NewGradientDescentAnnealed(optim.AnnealedConfig{LR: 0.3, T: 4})
type GradientDescentAnnealed struct {
	config AnnealedConfig
}

// NewGradientDescentAnnealed creates a new GradientDescentAnnealed optimizer.
func NewGradientDescentAnnealed(config AnnealedConfig) *GradientDescentAnnealed {
	return &GradientDescentAnnealed{config: config.withDefaults()}
}

// NewTraining returns a Training starting at event 0.
func (g *GradientDescentAnnealed) NewTraining(_ model.Parameters) Training {
	return &AnnealedTraining{annealing: annealing{l0: g.config.LR, t: g.config.T}}
}

// AnnealedTraining is the Training of GradientDescentAnnealed. Its state is
// the number of events learned.
type AnnealedTraining struct {
	annealing
}

// TeachEvent applies c_i -= lr(n) * g_i to every coefficient, then counts
// the event.
func (tr *AnnealedTraining) TeachEvent(event Event) {
	lr := tr.LearningRate()
	for ci := range event.NumCoefficients() {
		*event.Coefficient(ci) -= lr * event.Gradient(ci)
	}
	tr.events++
}

// Momentum implements stochastic gradient descent with an annealed learning
// rate and a velocity term.
//
// Update rule:
//
//	v_i = inertia * v_i - lr(n) * g_i
//	c_i = c_i + v_i
//
// Inertia simulates friction. Values in [0, 1) dampen oscillation; values
// of 1 or more diverge and are not rejected.
//
// Example:
//
//	teacher := optim.NewMomentum(optim.AnnealedConfig{LR: 0.009, T: 1000}, 0.995)
type Momentum struct {
	config  AnnealedConfig
	inertia float64
}

// NewMomentum creates a new Momentum optimizer.
func NewMomentum(config AnnealedConfig, inertia float64) *Momentum {
	return &Momentum{config: config.withDefaults(), inertia: inertia}
}

// NewTraining returns a Training with zero velocity for every coefficient of
// model.
func (m *Momentum) NewTraining(model model.Parameters) Training {
	return &MomentumTraining{velocityTraining: newVelocityTraining(m.config, m.inertia, model)}
}

// velocityTraining is the state shared by Momentum and Nesterov: the event
// counter and one velocity per coefficient.
type velocityTraining struct {
	annealing
	inertia  float64
	velocity []float64
}

func newVelocityTraining(config AnnealedConfig, inertia float64, model model.Parameters) velocityTraining {
	return velocityTraining{
		annealing: annealing{l0: config.LR, t: config.T},
		inertia:   inertia,
		velocity:  zeros(model.NumCoefficients()),
	}
}

// Velocity returns a copy of the current velocity of every coefficient.
func (v *velocityTraining) Velocity() []float64 {
	return clone(v.velocity)
}

// MomentumTraining is the Training of Momentum.
type MomentumTraining struct {
	velocityTraining
}

// TeachEvent updates the velocity of every coefficient and moves the
// coefficient by it.
func (tr *MomentumTraining) TeachEvent(event Event) {
	checkCoefficients("MomentumTraining", event, len(tr.velocity))

	lr := tr.LearningRate()
	for ci := range event.NumCoefficients() {
		tr.velocity[ci] = tr.inertia*tr.velocity[ci] - lr*event.Gradient(ci)
		*event.Coefficient(ci) += tr.velocity[ci]
	}
	tr.events++
}

// Nesterov implements Nesterov accelerated gradient descent with an
// annealed learning rate.
//
// Like Momentum it keeps a velocity per coefficient, but the velocity is
// applied before the gradient step:
//
//  1. c_i = c_i + v_i for every coefficient
//  2. delta = -lr(n) * g_i, c_i = c_i + delta
//  3. v_i = inertia * v_i + delta
//
// The prediction entering g_i is the one evaluated before step 1.
//
// Source: G. Hinton, lecture 6c,
// http://www.cs.toronto.edu/~tijmen/csc321/slides/lecture_slides_lec6.pdf
type Nesterov struct {
	config  AnnealedConfig
	inertia float64
}

// NewNesterov creates a new Nesterov optimizer.
func NewNesterov(config AnnealedConfig, inertia float64) *Nesterov {
	return &Nesterov{config: config.withDefaults(), inertia: inertia}
}

// NewTraining returns a Training with zero velocity for every coefficient of
// model.
func (n *Nesterov) NewTraining(model model.Parameters) Training {
	return &NesterovTraining{velocityTraining: newVelocityTraining(n.config, n.inertia, model)}
}

// NesterovTraining is the Training of Nesterov.
type NesterovTraining struct {
	velocityTraining
}

// TeachEvent applies the look-ahead velocity to all coefficients, then the
// gradient step, then blends the step into the velocity.
func (tr *NesterovTraining) TeachEvent(event Event) {
	checkCoefficients("NesterovTraining", event, len(tr.velocity))

	lr := tr.LearningRate()
	n := event.NumCoefficients()
	for ci := range n {
		*event.Coefficient(ci) += tr.velocity[ci]
	}
	for ci := range n {
		delta := -lr * event.Gradient(ci)
		*event.Coefficient(ci) += delta
		tr.velocity[ci] = tr.inertia*tr.velocity[ci] + delta
	}
	tr.events++
}
