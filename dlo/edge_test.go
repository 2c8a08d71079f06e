// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/reniercloete/OpenDLO/geom"
)

func Test_edge01(tst *testing.T) {

	chk.PrintTitle("edge01: DOF by edge type")

	if Free.DOF() != 3 {
		tst.Errorf("FREE should carry 3 DOF, got %d", Free.DOF())
	}
	if Symmetry.DOF() != 3 {
		tst.Errorf("SYMMETRY should carry 3 DOF, got %d", Symmetry.DOF())
	}
	if Fixed.DOF() != 1 {
		tst.Errorf("FIXED should carry 1 DOF, got %d", Fixed.DOF())
	}
	if Free.Yields() {
		tst.Errorf("FREE edges should not participate in yield balance")
	}
	if SimpleAnchored.Yields() {
		tst.Errorf("SIMPLE_ANCHORED edges should not participate in yield balance")
	}
	if !Fixed.Yields() {
		tst.Errorf("FIXED edges should participate in yield balance")
	}
}

func Test_edge02(tst *testing.T) {

	chk.PrintTitle("edge02: compatibility matrix for a horizontal FREE edge")

	d := NewDomain()
	n1 := d.AddNode(geom.Pt(0, 0))
	n2 := d.AddNode(geom.Pt(2, 0))
	e := NewEdge(d, n1, n2, Free, 1, 1, 1, 1)

	m := e.CompatibilityMatrix(d, true)

	chk.Scalar(tst, "B[0][0] (c)", 1e-12, m[0][0], 1.0)
	chk.Scalar(tst, "B[1][0] (s)", 1e-12, m[1][0], 0.0)
	chk.Scalar(tst, "B[2][1] (L/2)", 1e-12, m[2][1], 1.0)
	chk.Scalar(tst, "B[5][2]", 1e-12, m[5][2], -1.0)
}

func Test_edge03(tst *testing.T) {

	chk.PrintTitle("edge03: boundary conditions zero phi_t and delta columns on non-FREE edges")

	d := NewDomain()
	n1 := d.AddNode(geom.Pt(0, 0))
	n2 := d.AddNode(geom.Pt(1, 0))
	e := NewEdge(d, n1, n2, Fixed, 1, 1, 1, 1)

	m := e.CompatibilityMatrix(d, true)
	for row := 0; row < 6; row++ {
		chk.Scalar(tst, "phi_t column zeroed", 1e-12, m[row][1], 0.0)
		chk.Scalar(tst, "delta column zeroed", 1e-12, m[row][2], 0.0)
	}

	mFree := e.CompatibilityMatrix(d, false)
	if mFree[2][1] == 0 {
		tst.Errorf("without boundary conditions applied, phi_t column should not be zeroed")
	}
}

func Test_edge04(tst *testing.T) {

	chk.PrintTitle("edge04: SetYieldMoments updates resolved moments (bug not preserved)")

	d := NewDomain()
	n1 := d.AddNode(geom.Pt(0, 0))
	n2 := d.AddNode(geom.Pt(1, 0))
	e := NewEdge(d, n1, n2, Fixed, 1, 1, 1, 1)

	e.SetYieldMoments(d, 9, 9, 9, 9)
	chk.Scalar(tst, "MpPos after update", 1e-12, e.MpPos, 9.0)
	chk.Scalar(tst, "MpNeg after update", 1e-12, e.MpNeg, 9.0)
}
