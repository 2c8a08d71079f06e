// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_simplex01 solves min x+y s.t. x+y=4 (x,y>=0). The optimum
// objective 4 is reached at any split of x and y, so the test checks the
// sum x+y and the row's dual rather than the individual values.
func Test_simplex01(tst *testing.T) {

	chk.PrintTitle("simplex01: minimise over a single equality row")

	b := NewSimplexBackend()
	b.Resize(1)
	b.SetRowBounds(0, 4, 4)

	x := b.AddColumn([]int{0}, []float64{1})
	b.SetColumnBounds(x, 0, Inf)
	b.SetObjective(x, 1)

	y := b.AddColumn([]int{0}, []float64{1})
	b.SetColumnBounds(y, 0, Inf)
	b.SetObjective(y, 1)

	obj, primal, dual, err := b.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Scalar(tst, "objective", 1e-8, obj, 4.0)
	chk.Scalar(tst, "x+y", 1e-8, primal[0]+primal[1], 4.0)
	chk.Scalar(tst, "dual[0]", 1e-8, dual[0], 1.0)
}

// Test_simplex02 exercises a free variable x alongside s>=0: the rows
// x - s = -3 and x + s = 1 admit only x=-1, s=2, so minimising s must
// return that unique solution with x negative.
func Test_simplex02(tst *testing.T) {

	chk.PrintTitle("simplex02: a free column split into plus/minus halves")

	b := NewSimplexBackend()
	b.Resize(2)
	b.SetRowBounds(0, -3, -3)
	b.SetRowBounds(1, 1, 1)

	x := b.AddColumn([]int{0, 1}, []float64{1, 1})
	b.SetColumnBounds(x, -Inf, Inf)
	b.SetObjective(x, 0)

	s := b.AddColumn([]int{0, 1}, []float64{-1, 1})
	b.SetColumnBounds(s, 0, Inf)
	b.SetObjective(s, 1)

	_, primal, _, err := b.Solve()
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	chk.Scalar(tst, "x", 1e-8, primal[0], -1.0)
	chk.Scalar(tst, "s", 1e-8, primal[1], 2.0)
}

func Test_simplex03(tst *testing.T) {

	chk.PrintTitle("simplex03: inequality rows are rejected")

	b := NewSimplexBackend()
	b.Resize(1)
	b.SetRowBounds(0, 0, 1)
	c := b.AddColumn([]int{0}, []float64{1})
	b.SetColumnBounds(c, 0, Inf)

	if _, _, _, err := b.Solve(); err == nil {
		tst.Errorf("expected an error for a non-equality row")
	}
}
