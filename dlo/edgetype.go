// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dlo builds the candidate discontinuity graph over a slab's
// boundary polygon: nodes, edges, their kinematic and load data, and the
// discretisation pipeline (tessellate, mesh, prune, integrate) that turns
// a boundary polygon and support conditions into the edge set the LP
// assembler consumes.
package dlo

// EdgeType classifies a discontinuity candidate's support condition.
// Values match the persisted integer encoding (spec.md §6) exactly, so
// they also double as the on-disk edge-type code.
type EdgeType int

const (
	Free EdgeType = iota
	Symmetry
	Fixed
	SimpleAnchored
	SimpleNonAnchored
	KnifeEdgeAnchored
	KnifeEdgeUnanchored
	Internal
)

func (t EdgeType) String() string {
	switch t {
	case Free:
		return "FREE"
	case Symmetry:
		return "SYMMETRY"
	case Fixed:
		return "FIXED"
	case SimpleAnchored:
		return "SIMPLE_ANCHORED"
	case SimpleNonAnchored:
		return "SIMPLE_NONANCHORED"
	case KnifeEdgeAnchored:
		return "KNIFE_EDGE_ANCHORED"
	case KnifeEdgeUnanchored:
		return "KNIFE_EDGE_UNANCHORED"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}

// DOF returns the number of free kinematic variables an edge of this
// type carries: 3 (φn, φt, δ) for FREE/SYMMETRY, 1 (φn only) otherwise.
func (t EdgeType) DOF() int {
	if t == Free || t == Symmetry {
		return 3
	}
	return 1
}

// Yields reports whether an edge of this type participates in the
// yield-balance rows of the LP (every type except FREE and
// SIMPLE_ANCHORED, per spec.md §4.4).
func (t EdgeType) Yields() bool {
	return t != Free && t != SimpleAnchored
}
