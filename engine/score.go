// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// score.go defines the evaluation's scalar types: Score holds a tuned
// middle game/end game weight pair, Accum accumulates scores while walking
// a position.

package engine

// Score is a tuned weight, valid for both middle game (M) and end game (E).
// The final evaluation blends the two based on Phase.
type Score struct {
	M, E int32
}

// Accum accumulates Scores while evaluating a position.
type Accum struct {
	M, E int32
}

// add adds s to the accumulator.
func (a *Accum) add(s Score) {
	a.M += s.M
	a.E += s.E
}

// addN adds s, scaled by n, to the accumulator.
func (a *Accum) addN(s Score, n int32) {
	a.M += s.M * n
	a.E += s.E * n
}

// merge adds another accumulator's value into a.
func (a *Accum) merge(b Accum) {
	a.M += b.M
	a.E += b.E
}

// deduct subtracts another accumulator's value from a.
func (a *Accum) deduct(b Accum) {
	a.M -= b.M
	a.E -= b.E
}
