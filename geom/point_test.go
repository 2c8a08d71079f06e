// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_point01(tst *testing.T) {

	chk.PrintTitle("point01: vector algebra")

	a := Pt(3, 4)
	b := Pt(1, 2)

	chk.Scalar(tst, "a.Length", 1e-15, a.Length(), 5.0)
	chk.Scalar(tst, "a.Dot(b)", 1e-15, a.Dot(b), 11.0)
	chk.Scalar(tst, "a.Cross(b)", 1e-15, a.Cross(b), 2.0)

	sum := a.Add(b)
	chk.Scalar(tst, "sum.X", 1e-15, sum.X, 4.0)
	chk.Scalar(tst, "sum.Y", 1e-15, sum.Y, 6.0)

	u := a.Normalize()
	chk.Scalar(tst, "|u|", 1e-15, u.Length(), 1.0)
}

func Test_point02(tst *testing.T) {

	chk.PrintTitle("point02: normalize guards against near-zero length")

	z := Pt(1e-12, 0)
	n := z.Normalize()
	if n != z {
		tst.Errorf("Normalize of a near-zero vector should be a no-op, got %+v", n)
	}
}

func Test_point03(tst *testing.T) {

	chk.PrintTitle("point03: equality and distance")

	a := Pt(1, 1)
	b := Pt(1+1e-12, 1)
	if !a.Equal(b) {
		tst.Errorf("points within Eps should compare equal")
	}

	c := Pt(4, 5)
	chk.Scalar(tst, "distance", 1e-15, a.DistanceTo(c), math.Sqrt(9+16))
}
