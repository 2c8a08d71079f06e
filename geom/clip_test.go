// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_clip01(tst *testing.T) {

	chk.PrintTitle("clip01: splitting a square down the middle gives two halves")

	sq := unitSquare()
	cut := NewSegment(Pt(-5, 5), Pt(15, 5))

	left := sq.ClipLeft(cut)
	right := sq.ClipRight(cut)

	if len(left) != 1 {
		tst.Fatalf("expected ClipLeft to produce one polygon, got %d", len(left))
	}
	if len(right) != 1 {
		tst.Fatalf("expected ClipRight to produce one polygon, got %d", len(right))
	}

	chk.Scalar(tst, "left area", 1e-6, left[0].Area(), 50.0)
	chk.Scalar(tst, "right area", 1e-6, right[0].Area(), 50.0)

	total := left[0].Area() + right[0].Area()
	chk.Scalar(tst, "areas sum to whole", 1e-6, total, sq.Area())
}

func Test_clip02(tst *testing.T) {

	chk.PrintTitle("clip02: a cut entirely outside the polygon keeps or drops it wholesale")

	sq := unitSquare()
	above := NewSegment(Pt(-5, 20), Pt(15, 20))

	left := sq.ClipLeft(above)
	right := sq.ClipRight(above)

	// exactly one side should retain the whole square, the other none
	if len(left) == len(right) {
		tst.Fatalf("expected ClipLeft and ClipRight to disagree on a non-crossing cut, got %d vs %d", len(left), len(right))
	}
}

func Test_clip03(tst *testing.T) {

	chk.PrintTitle("clip03: GetByPoint finds the containing polygon")

	sq := unitSquare()
	cut := NewSegment(Pt(-5, 5), Pt(15, 5))
	left := sq.ClipLeft(cut)
	right := sq.ClipRight(cut)

	all := append(append([]Polygon{}, left...), right...)

	bottom := GetByPoint(Pt(5, 2), all)
	if bottom.NumPoints() == 0 {
		tst.Fatalf("expected to find a polygon containing (5,2)")
	}

	none := GetByPoint(Pt(500, 500), all)
	if none.NumPoints() != 0 {
		tst.Errorf("expected no polygon to contain a far-away point, got %+v", none)
	}
}
