package optim

import (
	"math"

	"github.com/pkg/errors"
)

// Stateful is implemented by every Training of this package. It lets an
// online run be paused and resumed with the same optimizer state.
//
// Only optimizer state is exported; model coefficients are not part of it.
type Stateful interface {
	// StateDict returns a copy of the optimizer state.
	StateDict() map[string][]float64

	// LoadStateDict restores state produced by StateDict.
	LoadStateDict(state map[string][]float64) error
}

// State keys.
const (
	stateEvents      = "events"
	stateVelocity    = "velocity"
	stateAccumulated = "accumulated"
)

// StateDict returns an empty state; GradientDescent keeps none.
func (tr *GradientDescentTraining) StateDict() map[string][]float64 {
	return map[string][]float64{}
}

// LoadStateDict accepts any state and ignores it.
func (tr *GradientDescentTraining) LoadStateDict(_ map[string][]float64) error {
	return nil
}

// StateDict exports the event counter.
//
// State keys: "events" -> [n].
func (a *annealing) StateDict() map[string][]float64 {
	return map[string][]float64{
		stateEvents: {float64(a.events)},
	}
}

// LoadStateDict restores the event counter. A missing key leaves the
// counter unchanged.
func (a *annealing) LoadStateDict(state map[string][]float64) error {
	values, ok := state[stateEvents]
	if !ok {
		return nil
	}
	if len(values) != 1 {
		return errors.Errorf("events: expected 1 value, got %d", len(values))
	}
	n := values[0]
	if n < 0 || n != math.Trunc(n) {
		return errors.Errorf("events: invalid count %v", n)
	}
	a.events = int(n)
	return nil
}

// StateDict exports the event counter and the velocity buffer.
//
// State keys: "events" -> [n], "velocity" -> one value per coefficient.
func (v *velocityTraining) StateDict() map[string][]float64 {
	state := v.annealing.StateDict()
	state[stateVelocity] = clone(v.velocity)
	return state
}

// LoadStateDict restores the event counter and the velocity buffer.
//
// Returns an error if the velocity length does not match the number of
// coefficients the training was created for.
func (v *velocityTraining) LoadStateDict(state map[string][]float64) error {
	if velocity, ok := state[stateVelocity]; ok {
		if len(velocity) != len(v.velocity) {
			return errors.Errorf("velocity length mismatch: expected %d, got %d", len(v.velocity), len(velocity))
		}
	}
	if err := v.annealing.LoadStateDict(state); err != nil {
		return err
	}
	if velocity, ok := state[stateVelocity]; ok {
		copy(v.velocity, velocity)
	}
	return nil
}

// StateDict exports the accumulated squared gradients.
//
// State keys: "accumulated" -> one value per coefficient.
func (tr *AdagradTraining) StateDict() map[string][]float64 {
	return map[string][]float64{
		stateAccumulated: clone(tr.squared),
	}
}

// LoadStateDict restores the accumulated squared gradients.
//
// Returns an error on a length mismatch or a non-positive accumulator.
func (tr *AdagradTraining) LoadStateDict(state map[string][]float64) error {
	squared, ok := state[stateAccumulated]
	if !ok {
		return nil
	}
	if len(squared) != len(tr.squared) {
		return errors.Errorf("accumulated length mismatch: expected %d, got %d", len(tr.squared), len(squared))
	}
	for i, s := range squared {
		if !(s > 0) {
			return errors.Errorf("accumulated %d: must be > 0, got %v", i, s)
		}
	}
	copy(tr.squared, squared)
	return nil
}
