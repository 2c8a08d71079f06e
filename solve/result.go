// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

// YieldLine is one output record for the viewer, spec.md §6: the
// resolved discontinuity kinematics plus its endpoints.
type YieldLine struct {
	PhiN, PhiT, Delta, PlasticMultiplier float64
	X1, Y1, X2, Y2                       float64
}

// Result is the outcome of a converged Solve call.
type Result struct {
	Lambda     float64
	Solves     int // total LP solves performed, including the first
	Iterations int // number of activation rounds (Solves-1)
	YieldLines []YieldLine
}
