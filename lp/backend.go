// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lp assembles the sparse column-oriented linear program that
// realises a set of active discontinuities' equilibrium and yield
// conditions, and defines the abstract solver contract the outer
// constraint-generation loop drives.
package lp

import "math"

// Backend is the abstract LP solver contract of spec.md §6: a sparse,
// column-based minimisation with row and column bounds and dual
// recovery. Two independent implementations existed in the reference
// source (an interior-point solver and a commercial conic LP); both
// were swappable behind this shape, and so is this one.
type Backend interface {
	// Resize prepares the backend for a problem with the given number
	// of constraint rows. Must be called before any other method.
	Resize(numRows int)

	// SetRowBounds fixes row idx's bounds; lo==hi encodes an equality.
	SetRowBounds(idx int, lo, hi float64)

	// AddColumn appends a new structural column with the given sparse
	// coefficients (rows[k], vals[k]) and returns its 0-based index.
	// Columns must be added in the order they will be referenced by
	// SetObjective/SetColumnBounds and in the order the model assigns
	// them meaning (insertion order is part of the contract).
	AddColumn(rows []int, vals []float64) int

	// SetObjective sets column col's coefficient in the minimised
	// objective cᵀx.
	SetObjective(col int, value float64)

	// SetColumnBounds sets column col's bounds (lo may be -Inf, hi +Inf).
	SetColumnBounds(col int, lo, hi float64)

	// Solve returns the primal objective value, the primal solution
	// vector (one entry per column, in AddColumn order), and the dual
	// values of every row (one entry per row, indexed by row number).
	Solve() (objective float64, primal []float64, dual []float64, err error)
}

// Inf is the sentinel used for an unbounded column or row bound.
var Inf = math.Inf(1)
