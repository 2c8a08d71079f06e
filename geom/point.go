// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the 2D geometric primitives used to lay out
// discontinuities over a slab's boundary polygon: points, line segments
// with cached derived quantities, segment intersection, and polygon
// clipping against a directed line.
package geom

import "math"

// Eps is the general-purpose tolerance used for point equality, colinearity,
// and most distance comparisons. Intersection uses a tighter, asymmetric
// tolerance (EpsIntersect) inherited from the original implementation;
// the two are kept distinct rather than unified (see EpsIntersect).
const Eps = 1e-9

// EpsIntersect is the tolerance used inside Intersect's parallel/colinear
// tests. It is roughly two orders of magnitude tighter than Eps. The
// asymmetry is inherited unchanged from the reference implementation.
const EpsIntersect = 11e-12

// Point is a point in the plane. It also doubles as a 2D vector: Sub
// produces a Point that callers use as a displacement, and all the usual
// vector operations (Dot, Cross, Length, Normalize) are defined on it.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Div returns p divided component-wise by s.
func (p Point) Div(s float64) Point { return Point{p.X / s, p.Y / s} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the scalar 2D cross product p.X*q.Y - p.Y*q.X.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// LengthSquared returns the squared Euclidean norm of p, avoiding a sqrt.
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Normalize returns p scaled to unit length. It is a no-op (returns p
// unchanged) when p's length is at or below Eps, matching the reference
// implementation's guard against dividing by a near-zero length.
func (p Point) Normalize() Point {
	l := p.Length()
	if l <= Eps {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Equal reports whether p and q are within Eps of each other componentwise.
func (p Point) Equal(q Point) bool {
	return math.Abs(p.X-q.X) < Eps && math.Abs(p.Y-q.Y) < Eps
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 { return p.Sub(q).Length() }

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point { return p.Add(q).Scale(0.5) }
