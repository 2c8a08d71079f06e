// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import "github.com/reniercloete/OpenDLO/geom"

// Edge is a candidate discontinuity between two domain nodes. Endpoint
// coordinates are resolved through the owning Domain's node arena (see
// DESIGN.md: this replaces the source's process-wide node-list pointer
// with an explicit, domain-owned index).
type Edge struct {
	N1, N2 int // 1-based node IDs
	Type   EdgeType
	Length float64

	MpPosX, MpNegX, MpPosY, MpNegY float64 // raw orthotropic yield moments
	MpPos, MpNeg                   float64 // resolved onto the edge direction

	Line geom.Segment

	Added      bool
	Removeable bool
	Delete     bool

	YieldRatio float64

	udlVector   [3]float64
	udlComputed bool
}

// NewEdge constructs an edge between two nodes in d's arena and
// resolves its yield moments onto the edge direction. Mirrors the
// reference constructor's c²/s² resolution exactly.
func NewEdge(d *Domain, n1, n2 int, typ EdgeType, mpPosX, mpNegX, mpPosY, mpNegY float64) *Edge {
	p1, p2 := d.NodePoint(n1), d.NodePoint(n2)
	length := p1.DistanceTo(p2)

	e := &Edge{
		N1: n1, N2: n2, Type: typ, Length: length,
		MpPosX: mpPosX, MpNegX: mpNegX, MpPosY: mpPosY, MpNegY: mpNegY,
		Line: geom.NewSegment(p1, p2),
	}

	c, s := e.direction(d)
	e.MpPos = mpPosX*c*c + mpPosY*s*s
	e.MpNeg = mpNegX*c*c + mpNegY*s*s
	return e
}

// direction returns the edge's unit direction cosines (c,s) = (cos,sin)
// of the angle from the global x-axis.
func (e *Edge) direction(d *Domain) (c, s float64) {
	p1, p2 := d.NodePoint(e.N1), d.NodePoint(e.N2)
	v := p2.Sub(p1).Div(e.Length)
	return v.X, v.Y
}

// SetYieldMoments stores new raw yield moments and re-resolves MpPos/
// MpNeg onto the edge direction. The reference implementation's
// constructor-era bug assigned each field to itself here, silently
// freezing yield moments after construction; this re-implementation
// stores the passed values, per spec.md §9.
func (e *Edge) SetYieldMoments(d *Domain, mpPosX, mpNegX, mpPosY, mpNegY float64) {
	e.MpPosX, e.MpNegX, e.MpPosY, e.MpNegY = mpPosX, mpNegX, mpPosY, mpNegY
	c, s := e.direction(d)
	e.MpPos = mpPosX*c*c + mpPosY*s*s
	e.MpNeg = mpNegX*c*c + mpNegY*s*s
}

// DOF returns the number of kinematic variables this edge carries.
func (e *Edge) DOF() int { return e.Type.DOF() }

// CompatibilityMatrix returns the 6x3 linear map from (φn, φt, δ) to the
// six nodal DOFs (N1.x, N1.y, N1.θ, N2.x, N2.y, N2.θ), per spec.md §4.3.
// When applyBC is true and the edge is neither FREE nor SYMMETRY, the φt
// and δ columns are zeroed (those DOFs are suppressed by the support).
func (e *Edge) CompatibilityMatrix(d *Domain, applyBC bool) [6][3]float64 {
	c, s := e.direction(d)
	l := e.Length

	m := [6][3]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, l / 2, 1},
		{-c, s, 0},
		{-s, -c, 0},
		{0, l / 2, -1},
	}

	if applyBC && e.Type != Free && e.Type != Symmetry {
		for row := 0; row < 6; row++ {
			m[row][1] = 0
			m[row][2] = 0
		}
	}
	return m
}
