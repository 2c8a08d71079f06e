// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Colinear reports whether a and b are parallel: their unit direction
// vectors are equal or opposite within Eps per component. It does not
// check that the two segments lie on the same line.
func Colinear(a, b Segment) bool {
	va, vb := a.Dir(), b.Dir()
	same := math.Abs(va.X-vb.X) < Eps && math.Abs(va.Y-vb.Y) < Eps
	opp := math.Abs(va.X+vb.X) < Eps && math.Abs(va.Y+vb.Y) < Eps
	return same || opp
}

// Intersect computes the intersection of two segments using origin/
// direction form. It returns:
//   - 0 points if the segments are parallel-but-not-colinear, or colinear
//     but not overlapping, or colinear-and-crossing but with no shared
//     point;
//   - 1 point if the segments meet at a single point (a crossing, or
//     contact at an endpoint);
//   - 2 points if the segments overlap colinearly, giving the endpoints
//     of the overlap interval.
//
// Colinear overlap is detected with the tighter EpsIntersect tolerance
// (1.1e-11); point deduplication of the result uses the looser Eps.
func Intersect(a, b Segment) []Point {
	oa, ob := a.P1, b.P1
	da, db := a.P2.Sub(a.P1), b.P2.Sub(b.P1)

	crossAB := da.Cross(db)
	crossOriginA := ob.Sub(oa).Cross(da)

	if math.Abs(crossAB) < EpsIntersect && math.Abs(crossOriginA) < EpsIntersect {
		// colinear
		var pts []Point
		if onSegment(b.P1, a) && onSegment(b.P2, a) {
			pts = append(pts, b.P1, b.P2)
			return uniquePoints(pts)
		}
		if onSegment(a.P1, b) && onSegment(a.P2, b) {
			pts = append(pts, a.P1, a.P2)
			return uniquePoints(pts)
		}
		if onSegment(a.P1, b) {
			pts = append(pts, a.P1)
		}
		if onSegment(a.P2, b) {
			pts = append(pts, a.P2)
		}
		if onSegment(b.P1, a) {
			pts = append(pts, b.P1)
		}
		if onSegment(b.P2, a) {
			pts = append(pts, b.P2)
		}
		return uniquePoints(pts)
	}

	if math.Abs(crossAB) < EpsIntersect {
		// parallel, not colinear
		return nil
	}

	sa := ob.Sub(oa).Cross(db) / da.Cross(db)
	sb := oa.Sub(ob).Cross(da) / db.Cross(da)

	inUnit := func(s float64) bool {
		return (0 < s || math.Abs(s) < EpsIntersect) && (s < 1 || math.Abs(s-1) < EpsIntersect)
	}

	if inUnit(sa) && inUnit(sb) {
		return []Point{oa.Add(da.Scale(sa))}
	}

	return nil
}

// uniquePoints removes near-duplicate points (squared distance < Eps)
// preserving first-seen order, matching the reference implementation's
// MakeUnique which compares squared length against EPSILON.
func uniquePoints(pts []Point) []Point {
	out := pts[:0:0]
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Sub(q).LengthSquared() < Eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
