// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package crisp turns model predictions into decisions.
package crisp

import (
	"iter"

	"github.com/born-ml/online/internal/crisp"
	"github.com/born-ml/online/internal/vector"
)

// Threshold is the probability above which Bool returns true.
const Threshold = crisp.Threshold

// Bool reports whether the probability p is above Threshold.
func Bool(p float64) bool {
	return crisp.Bool(p)
}

// Class returns the index of the highest score.
func Class(scores vector.Vector) int {
	return crisp.Class(scores)
}

// Errors counts the events of history whose decided prediction differs from
// the truth.
func Errors[F, T any, Y comparable](predict func(F) T, decide func(T) Y, history iter.Seq2[F, Y]) int {
	return crisp.Errors(predict, decide, history)
}
