// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/reniercloete/OpenDLO/dlo"
)

// rowEps is the threshold below which a compatibility-matrix or UDL
// coefficient is treated as structurally zero and left out of the
// sparse column, mirroring the reference source's sparse-assembly
// tolerance.
const rowEps = 1e-12

// Model is the sparse column-oriented linear program assembled from a
// domain's active edge set, per spec.md §4.4: 3N nodal equilibrium
// rows, one yield-balance row per yielding edge, and one normalising
// row; a free displacement column per edge DOF and a pair of
// non-negative plastic-multiplier columns per yielding edge.
type Model struct {
	Domain *dlo.Domain
	Edges  []*dlo.Edge // the edges this model was assembled over, in column order

	NumNodes int
	NumRows  int
	YieldRow map[*dlo.Edge]int
	NormRow  int
	DispCol  map[*dlo.Edge][]int // edge -> displacement column index per DOF
	PlusCol  map[*dlo.Edge]int   // edge -> p+ column (yielding edges only)
	MinusCol map[*dlo.Edge]int   // edge -> p- column (yielding edges only)

	// Matrix is the same coefficient matrix handed to Backend, assembled
	// in parallel as a gosl sparse matrix (the idiom fem/essenbcs.go uses
	// for its own constraint matrix: build a la.Triplet column by
	// column, then compress it once). Backend never reads this field;
	// it exists for diagnostics and for any future Backend that wants a
	// ready-made gosl matrix instead of raw column slices.
	Matrix *la.CCMatrix
}

// nodeRow returns the global equilibrium row for node n's k-th DOF
// (k in {0:x, 1:y, 2:θ}), n being the domain's 1-based node ID.
func nodeRow(n, k int) int { return 3*(n-1) + k }

// Assemble builds the LP for every edge in d.Edges with Added set true,
// wiring the resulting columns into backend, and returns the Model the
// outer constraint-generation loop uses to recover duals and activate
// new columns. Columns are added strictly in d.Edges order, DOF by
// DOF, then one plastic-multiplier pair per yielding edge in the same
// order, matching spec.md §4.4's column-order contract.
func Assemble(backend Backend, d *dlo.Domain) (*Model, error) {
	m := &Model{
		Domain:   d,
		NumNodes: len(d.Nodes),
		YieldRow: make(map[*dlo.Edge]int),
		DispCol:  make(map[*dlo.Edge][]int),
		PlusCol:  make(map[*dlo.Edge]int),
		MinusCol: make(map[*dlo.Edge]int),
	}

	for _, e := range d.Edges {
		if e.Added {
			m.Edges = append(m.Edges, e)
		}
	}

	numYield := 0
	for _, e := range m.Edges {
		if e.Type.Yields() {
			m.YieldRow[e] = 3*m.NumNodes + numYield
			numYield++
		}
	}
	m.NormRow = 3*m.NumNodes + numYield
	m.NumRows = m.NormRow + 1

	backend.Resize(m.NumRows)
	for r := 0; r < 3*m.NumNodes; r++ {
		backend.SetRowBounds(r, 0, 0)
	}
	for _, row := range m.YieldRow {
		backend.SetRowBounds(row, 0, 0)
	}
	backend.SetRowBounds(m.NormRow, 1, 1)

	var triRows, triCols []int
	var triVals []float64
	nextCol := 0

	for _, e := range m.Edges {
		b := e.CompatibilityMatrix(d, true)
		yields := e.Type.Yields()
		udl := e.UDLVector(d, d.Poly)

		for j := 0; j < e.DOF(); j++ {
			var rows []int
			var vals []float64
			for row := 0; row < 6; row++ {
				v := b[row][j]
				if math.Abs(v) < rowEps {
					continue
				}
				node := e.N1
				k := row
				if row >= 3 {
					node = e.N2
					k = row - 3
				}
				rows = append(rows, nodeRow(node, k))
				vals = append(vals, v)
			}

			if yields {
				rows = append(rows, m.YieldRow[e])
				vals = append(vals, -1)
			}

			fL := d.LiveLoad * udl[j]
			if math.Abs(fL) > rowEps {
				rows = append(rows, m.NormRow)
				vals = append(vals, fL)
			}

			col := backend.AddColumn(rows, vals)
			backend.SetColumnBounds(col, -Inf, Inf)
			backend.SetObjective(col, d.DeadLoad*udl[j])
			m.DispCol[e] = append(m.DispCol[e], col)

			for k, r := range rows {
				triRows = append(triRows, r)
				triCols = append(triCols, col)
				triVals = append(triVals, vals[k])
			}
			nextCol++
		}
	}

	for _, e := range m.Edges {
		if e.Type.Yields() {
			row := m.YieldRow[e]

			plus := backend.AddColumn([]int{row}, []float64{1})
			backend.SetColumnBounds(plus, 0, Inf)
			backend.SetObjective(plus, e.MpPos*e.Length)
			m.PlusCol[e] = plus
			triRows = append(triRows, row)
			triCols = append(triCols, plus)
			triVals = append(triVals, 1)
			nextCol++

			minus := backend.AddColumn([]int{row}, []float64{-1})
			backend.SetColumnBounds(minus, 0, Inf)
			backend.SetObjective(minus, e.MpNeg*e.Length)
			m.MinusCol[e] = minus
			triRows = append(triRows, row)
			triCols = append(triCols, minus)
			triVals = append(triVals, -1)
			nextCol++
		}
	}

	var triplet la.Triplet
	triplet.Init(m.NumRows, nextCol, len(triVals))
	for i := range triVals {
		triplet.Put(triRows[i], triCols[i], triVals[i])
	}
	m.Matrix = triplet.ToMatrix(nil)

	return m, nil
}

// NodalForce recovers the dual-force triple (Fx, Fy, M) on node n from a
// solved dual vector, reading the three equilibrium rows belonging to
// that node.
func (m *Model) NodalForce(dual []float64, n int) (fx, fy, mom float64) {
	return dual[nodeRow(n, 0)], dual[nodeRow(n, 1)], dual[nodeRow(n, 2)]
}

// RawNodalForce recomputes the unconstrained (no boundary-condition
// zeroing) nodal force an edge's resolved dual forces imply, used by
// the outer loop's violation test (spec.md §4.5 step 3: yield checking
// uses the raw compatibility matrix).
func RawNodalForce(e *dlo.Edge, d *dlo.Domain, dual []float64) [3]float64 {
	b := e.CompatibilityMatrix(d, false)
	var f [3]float64
	for j := 0; j < 3; j++ {
		for row := 0; row < 6; row++ {
			node := e.N1
			k := row
			if row >= 3 {
				node = e.N2
				k = row - 3
			}
			f[j] += b[row][j] * dual[nodeRow(node, k)]
		}
	}
	return f
}
