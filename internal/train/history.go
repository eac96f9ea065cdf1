package train

import (
	"iter"

	"github.com/born-ml/online/internal/optim"
)

// Pair is one history event: the features and the observed truth.
type Pair[F, Y any] struct {
	Features F
	Truth    Y
}

// Slice yields every pair once, in order.
func Slice[F, Y any](pairs []Pair[F, Y]) iter.Seq2[F, Y] {
	return func(yield func(F, Y) bool) {
		for _, p := range pairs {
			if !yield(p.Features, p.Truth) {
				return
			}
		}
	}
}

// Cycle repeats pairs endlessly and yields the first n events.
//
// An empty pairs slice yields nothing.
func Cycle[F, Y any](pairs []Pair[F, Y], n int) iter.Seq2[F, Y] {
	return func(yield func(F, Y) bool) {
		if len(pairs) == 0 {
			return
		}
		for i := range n {
			p := pairs[i%len(pairs)]
			if !yield(p.Features, p.Truth) {
				return
			}
		}
	}
}

// Take yields at most the first n events of seq.
func Take[F, Y any](seq iter.Seq2[F, Y], n int) iter.Seq2[F, Y] {
	return func(yield func(F, Y) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for f, y := range seq {
			if !yield(f, y) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	}
}

// Option configures LearnHistory.
type Option func(*options)

type options struct {
	observer func(n int, training optim.Training)
}

// WithObserver calls fn after every event with the number of events taught
// so far (starting at 1) and the training state.
func WithObserver(fn func(n int, training optim.Training)) Option {
	return func(o *options) {
		o.observer = fn
	}
}
