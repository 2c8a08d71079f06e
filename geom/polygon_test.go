// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func unitSquare() *Polygon {
	sq := NewPolygon()
	sq.AddPoint(Pt(0, 0), false)
	sq.AddPoint(Pt(10, 0), false)
	sq.AddPoint(Pt(10, 10), false)
	sq.AddPoint(Pt(0, 10), false)
	return sq
}

func Test_polygon01(tst *testing.T) {

	chk.PrintTitle("polygon01: area and centroid of a 10x10 square")

	sq := unitSquare()
	chk.Scalar(tst, "area", 1e-9, sq.Area(), 100.0)

	c := sq.Centroid()
	chk.Scalar(tst, "cx", 1e-9, c.X, 5.0)
	chk.Scalar(tst, "cy", 1e-9, c.Y, 5.0)
}

func Test_polygon02(tst *testing.T) {

	chk.PrintTitle("polygon02: winding reversal")

	sq := unitSquare()
	if sq.Area() <= 0 {
		tst.Fatalf("expected the fixture square to be anti-clockwise")
	}
	sq.Reverse()
	if sq.Area() >= 0 {
		tst.Errorf("expected reversed winding to flip the area sign")
	}
	sq.MakeAntiClockwise()
	if sq.Area() <= 0 {
		tst.Errorf("MakeAntiClockwise should restore positive area")
	}
}

func Test_polygon03(tst *testing.T) {

	chk.PrintTitle("polygon03: point-in and point-on an L-shaped polygon")

	l := NewPolygon()
	l.AddPoint(Pt(0, 0), false)
	l.AddPoint(Pt(10, 0), false)
	l.AddPoint(Pt(10, 5), false)
	l.AddPoint(Pt(5, 5), false)
	l.AddPoint(Pt(5, 10), false)
	l.AddPoint(Pt(0, 10), false)

	if !l.PointIn(Pt(2, 2)) {
		tst.Errorf("(2,2) should be inside the L")
	}
	if l.PointIn(Pt(8, 8)) {
		tst.Errorf("(8,8) sits in the L's notch and should be outside")
	}

	if idx := l.PointOn(Pt(5, 0)); idx != 0 {
		tst.Errorf("(5,0) should lie on edge 0, got %d", idx)
	}
	if idx := l.PointOn(Pt(1, 1)); idx != -1 {
		tst.Errorf("(1,1) is interior and should not be on any edge, got %d", idx)
	}
}

func Test_polygon04(tst *testing.T) {

	chk.PrintTitle("polygon04: AddPoint de-duplication")

	p := NewPolygon()
	i0, added0 := p.AddPoint(Pt(1, 1), true)
	i1, added1 := p.AddPoint(Pt(1, 1), true)
	if !added0 || added1 {
		tst.Errorf("second AddPoint of the same point should be de-duplicated")
	}
	if i0 != i1 {
		tst.Errorf("de-duplicated AddPoint should return the existing index")
	}
	chk.Scalar(tst, "num points", 1e-15, float64(p.NumPoints()), 1.0)
}

func Test_polygon05(tst *testing.T) {

	chk.PrintTitle("polygon05: ordered intersections across a square's horizontal cut")

	sq := unitSquare()
	cut := NewSegment(Pt(-5, 5), Pt(15, 5))
	pts := sq.OrderedIntersections(cut)

	if len(pts) < 2 {
		tst.Fatalf("expected at least the two boundary crossings, got %d: %+v", len(pts), pts)
	}
	// nearest to cut.P1=(-5,5) must come first
	for i := 1; i < len(pts); i++ {
		d0 := cut.P1.DistanceTo(pts[i-1])
		d1 := cut.P1.DistanceTo(pts[i])
		if d0 > d1 {
			tst.Errorf("intersections not sorted by distance from line.P1: %+v", pts)
		}
	}
}
