// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// Segment is a finite line segment between two endpoints with derived
// quantities (unit direction, axis-aligned bounds, slope) cached at
// construction and refreshed explicitly via Update when an endpoint
// changes. The cache mirrors the teacher's shape-function caches in
// gofem/shp: computed once, invalidated on demand rather than recomputed
// on every read.
type Segment struct {
	P1, P2 Point

	dir        Point // cached unit direction P2-P1
	min, max   Point // cached axis-aligned bounding box
	slope      float64
	slopeIsInf bool
}

// NewSegment builds a Segment and populates its cache.
func NewSegment(p1, p2 Point) Segment {
	s := Segment{P1: p1, P2: p2}
	s.Update()
	return s
}

// Update recomputes the cached direction, bounds, and slope from the
// current endpoints. Call it after mutating P1/P2 directly.
func (s *Segment) Update() {
	if s.P1.X < s.P2.X {
		s.min.X, s.max.X = s.P1.X, s.P2.X
	} else {
		s.min.X, s.max.X = s.P2.X, s.P1.X
	}
	if s.P1.Y < s.P2.Y {
		s.min.Y, s.max.Y = s.P1.Y, s.P2.Y
	} else {
		s.min.Y, s.max.Y = s.P2.Y, s.P1.Y
	}

	s.dir = s.P2.Sub(s.P1).Normalize()

	dx := s.P2.X - s.P1.X
	if math.Abs(dx) > EpsIntersect {
		s.slope = (s.P2.Y - s.P1.Y) / dx
		s.slopeIsInf = false
	} else {
		s.slope = math.Inf(1)
		s.slopeIsInf = true
	}
}

// Min returns the cached axis-aligned lower bound.
func (s Segment) Min() Point { return s.min }

// Max returns the cached axis-aligned upper bound.
func (s Segment) Max() Point { return s.max }

// Dir returns the cached unit direction vector P2-P1.
func (s Segment) Dir() Point { return s.dir }

// Slope returns dy/dx, or +Inf when |dx| <= EpsIntersect.
func (s Segment) Slope() float64 { return s.slope }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.P2.Sub(s.P1).Length() }

// DistanceTo returns the perpendicular distance from p to the segment's
// line. Only when p lies on that line (within Eps) beyond an endpoint is
// the result clamped to the nearer endpoint's distance; for a point off
// the line whose perpendicular foot falls outside the segment, the
// distance to the infinite line is returned unclamped.
func (s Segment) DistanceTo(p Point) float64 {
	v1 := s.P2.Sub(s.P1).Normalize()
	v2 := p.Sub(s.P1)
	l := v2.Length()
	v2 = v2.Normalize()

	sinTheta := math.Abs(v2.Cross(v1))
	result := l * sinTheta

	if math.Abs(result) < Eps {
		segLen := s.P1.Sub(s.P2).Length()
		l1 := s.P1.Sub(p).Length()
		l2 := s.P2.Sub(p).Length()
		if l1 > segLen || l2 > segLen {
			result = math.Min(l1, l2)
		}
	}

	return result
}

// onSegment reports whether p, assumed colinear with line, falls between
// its two endpoints (inclusive, within Eps).
func onSegment(p Point, line Segment) bool {
	ma := p.Sub(line.P1).Length()
	mb := p.Sub(line.P2).Length()
	ml := line.P2.Sub(line.P1).Length()
	return ma+mb <= ml+Eps
}
