// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

import (
	"fmt"
	"math"
)

// SimplexBackend is a dependency-free reference Backend, a two-phase
// dense tableau simplex with Bland's rule for anti-cycling. No example
// in the retrieved corpus imports a third-party LP solver (interior-
// point or simplex), so this is implemented directly against the
// standard library; see DESIGN.md. It only supports equality rows
// (lo==hi), which is all Assemble ever produces, and column bounds
// that are either free (-Inf,+Inf) or a half-line [lo,+Inf) — again
// the only shapes Assemble produces.
type SimplexBackend struct {
	nRows int
	rowLo []float64
	rowHi []float64

	colRows [][]int
	colVals [][]float64
	colObj  []float64
	colLo   []float64
	colHi   []float64
}

// NewSimplexBackend returns an empty SimplexBackend.
func NewSimplexBackend() *SimplexBackend {
	return &SimplexBackend{}
}

func (s *SimplexBackend) Resize(numRows int) {
	s.nRows = numRows
	s.rowLo = make([]float64, numRows)
	s.rowHi = make([]float64, numRows)
}

func (s *SimplexBackend) SetRowBounds(idx int, lo, hi float64) {
	s.rowLo[idx] = lo
	s.rowHi[idx] = hi
}

func (s *SimplexBackend) AddColumn(rows []int, vals []float64) int {
	rc := append([]int(nil), rows...)
	vc := append([]float64(nil), vals...)
	s.colRows = append(s.colRows, rc)
	s.colVals = append(s.colVals, vc)
	s.colObj = append(s.colObj, 0)
	s.colLo = append(s.colLo, math.Inf(-1))
	s.colHi = append(s.colHi, math.Inf(1))
	return len(s.colRows) - 1
}

func (s *SimplexBackend) SetObjective(col int, value float64) { s.colObj[col] = value }

func (s *SimplexBackend) SetColumnBounds(col int, lo, hi float64) {
	s.colLo[col] = lo
	s.colHi[col] = hi
}

// internalVar describes how one of the solver's own nonnegative
// tableau variables maps back to a structural column added via
// AddColumn.
type internalVar struct {
	col   int
	sign  float64 // +1 for the column itself or its positive split half, -1 for the negative split half
	shift float64 // value added back after solving (for a finite-lower-bound shift)
}

// Solve runs two-phase simplex and returns the primal objective, the
// primal vector in AddColumn order, and the dual vector indexed by row
// number.
func (s *SimplexBackend) Solve() (objective float64, primal []float64, dual []float64, err error) {
	m := s.nRows
	for i := 0; i < m; i++ {
		if s.rowLo[i] != s.rowHi[i] {
			return 0, nil, nil, fmt.Errorf("lp: SimplexBackend only supports equality rows, row %d has [%g,%g]", i, s.rowLo[i], s.rowHi[i])
		}
	}
	b := append([]float64(nil), s.rowLo...)

	// Build the internal nonnegative-variable set: free columns split
	// into plus/minus halves, half-line columns shifted to start at 0,
	// anything else rejected (not produced by Assemble).
	var vars []internalVar
	var A [][]float64 // one row per internal var: sparse (row,val) pairs
	var Arows [][]int
	var cost []float64

	addVar := func(col int, sign, shift float64) int {
		vars = append(vars, internalVar{col: col, sign: sign, shift: shift})
		rows := s.colRows[col]
		vals := make([]float64, len(rows))
		for i, v := range s.colVals[col] {
			vals[i] = v * sign
		}
		Arows = append(Arows, append([]int(nil), rows...))
		A = append(A, vals)
		cost = append(cost, s.colObj[col]*sign)
		if shift != 0 {
			for i, r := range rows {
				b[r] -= s.colVals[col][i] * sign * shift
			}
		}
		return len(vars) - 1
	}

	for col := range s.colRows {
		lo, hi := s.colLo[col], s.colHi[col]
		switch {
		case math.IsInf(lo, -1) && math.IsInf(hi, 1):
			addVar(col, 1, 0)
			addVar(col, -1, 0)
		case hi == math.Inf(1):
			addVar(col, 1, lo)
		default:
			return 0, nil, nil, fmt.Errorf("lp: SimplexBackend does not support finite upper bound on column %d", col)
		}
	}
	n := len(vars)

	// Flip rows with negative RHS so every artificial starts at a
	// nonnegative basic value.
	flip := make([]bool, m)
	for i := 0; i < m; i++ {
		if b[i] < 0 {
			flip[i] = true
			b[i] = -b[i]
		}
	}

	// Dense tableau: n structural + m artificial columns, m rows, plus RHS.
	total := n + m
	tab := make([][]float64, m)
	for i := range tab {
		tab[i] = make([]float64, total+1)
		tab[i][total] = b[i]
	}
	for j := 0; j < n; j++ {
		for k, r := range Arows[j] {
			v := A[j][k]
			if flip[r] {
				v = -v
			}
			tab[r][j] += v
		}
	}
	basis := make([]int, m)
	for i := 0; i < m; i++ {
		tab[i][n+i] = 1
		basis[i] = n + i
	}

	const tol = 1e-9

	pivot := func(costRow []float64, allowArtificial bool) error {
		for iter := 0; iter < 20000; iter++ {
			enter := -1
			for j := 0; j < total; j++ {
				if !allowArtificial && j >= n {
					continue
				}
				if costRow[j] < -tol {
					enter = j
					break // Bland's rule: first eligible column
				}
			}
			if enter == -1 {
				return nil
			}
			leave := -1
			best := math.Inf(1)
			for i := 0; i < m; i++ {
				if tab[i][enter] > tol {
					ratio := tab[i][total] / tab[i][enter]
					if ratio < best-1e-12 || (ratio < best+1e-12 && (leave == -1 || basis[i] < basis[leave])) {
						best = ratio
						leave = i
					}
				}
			}
			if leave == -1 {
				return fmt.Errorf("lp: unbounded")
			}
			piv := tab[leave][enter]
			for j := 0; j <= total; j++ {
				tab[leave][j] /= piv
			}
			for i := 0; i < m; i++ {
				if i == leave {
					continue
				}
				f := tab[i][enter]
				if f == 0 {
					continue
				}
				for j := 0; j <= total; j++ {
					tab[i][j] -= f * tab[leave][j]
				}
			}
			cf := costRow[enter]
			if cf != 0 {
				for j := 0; j <= total; j++ {
					costRow[j] -= cf * tab[leave][j]
				}
			}
			basis[leave] = enter
		}
		return fmt.Errorf("lp: simplex iteration limit exceeded")
	}

	// Phase 1: minimise the sum of artificials.
	phase1 := make([]float64, total+1)
	for j := n; j < total; j++ {
		phase1[j] = 1
	}
	for i := 0; i < m; i++ {
		f := phase1[basis[i]]
		if f != 0 {
			for j := 0; j <= total; j++ {
				phase1[j] -= f * tab[i][j]
			}
		}
	}
	if err := pivot(phase1, true); err != nil {
		return 0, nil, nil, err
	}
	if phase1[total] < -tol {
		return 0, nil, nil, fmt.Errorf("lp: infeasible (phase 1 objective %g)", -phase1[total])
	}
	// Drive out any artificial left in the basis at zero level.
	for i := 0; i < m; i++ {
		if basis[i] >= n {
			pivotCol := -1
			for j := 0; j < n; j++ {
				if math.Abs(tab[i][j]) > tol {
					pivotCol = j
					break
				}
			}
			if pivotCol == -1 {
				continue // redundant row
			}
			piv := tab[i][pivotCol]
			for j := 0; j <= total; j++ {
				tab[i][j] /= piv
			}
			for r := 0; r < m; r++ {
				if r == i {
					continue
				}
				f := tab[r][pivotCol]
				if f == 0 {
					continue
				}
				for j := 0; j <= total; j++ {
					tab[r][j] -= f * tab[i][j]
				}
			}
			basis[i] = pivotCol
		}
	}

	// Phase 2: minimise the real cost over structural columns only.
	phase2 := make([]float64, total+1)
	for j := 0; j < n; j++ {
		phase2[j] = cost[j]
	}
	for i := 0; i < m; i++ {
		f := phase2[basis[i]]
		if f != 0 {
			for j := 0; j <= total; j++ {
				phase2[j] -= f * tab[i][j]
			}
		}
	}
	if err := pivot(phase2, false); err != nil {
		return 0, nil, nil, err
	}

	x := make([]float64, n)
	for i := 0; i < m; i++ {
		if basis[i] < n {
			x[basis[i]] = tab[i][total]
		}
	}

	primal = make([]float64, len(s.colRows))
	for vi, v := range vars {
		primal[v.col] += v.sign * x[vi]
		if v.shift != 0 {
			primal[v.col] += v.shift
		}
	}

	objective = 0
	for col, p := range primal {
		objective += s.colObj[col] * p
	}

	// The reduced cost of artificial column n+i in the final phase-2
	// tableau is -y'_i, where y'_i is the shadow price of the row as
	// actually solved (after any sign flip). Flipping a row's equation
	// negates its multiplier relative to the original row, so the two
	// negations cancel for flipped rows and compound for unflipped ones.
	dual = make([]float64, m)
	for i := 0; i < m; i++ {
		y := -phase2[n+i]
		if flip[i] {
			y = -y
		}
		dual[i] = y
	}

	return objective, primal, dual, nil
}
