// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"fmt"

	"github.com/iceisfun/gomesh/cdt"
	"github.com/iceisfun/gomesh/types"

	"github.com/reniercloete/OpenDLO/geom"
)

// MeshEdge is one edge returned by a Mesher: the two endpoint
// coordinates, de-duplicated into the domain's node arena by the
// caller. This is the only part of a triangulator's output the core
// consumes (spec.md §6: "The core uses only the edge list").
type MeshEdge struct {
	P1, P2 geom.Point
}

// Mesher is the external constrained-Delaunay-triangulation contract
// (spec.md §6): given a planar straight-line graph (boundary points in
// order plus their connecting segments), it returns the edges of a
// triangulation seeded by those points. The implementation is
// swappable, mirroring how the LP backend is abstracted.
type Mesher interface {
	Triangulate(boundary []geom.Point, targetSize float64) ([]MeshEdge, error)
}

// CDTMesher adapts github.com/iceisfun/gomesh's cdt.Build to the Mesher
// contract, matching the reference implementation's own call to the
// Triangle library (fCreateNodes): a PSLG built from the boundary ring,
// triangulated, its edges returned for the domain to fold back into
// its own node store by ε-distance.
type CDTMesher struct {
	Opts cdt.BuildOptions
}

// NewCDTMesher returns a CDTMesher with gomesh's default build options.
func NewCDTMesher() *CDTMesher {
	return &CDTMesher{Opts: cdt.DefaultBuildOptions()}
}

// Triangulate builds a constrained Delaunay triangulation over boundary
// (closed, anti-clockwise) and returns every triangle edge as a
// MeshEdge. The domain folds duplicate endpoints and already-present
// boundary edges back out via its own node de-duplication, boundary-edge
// check and adjacency check, exactly as the reference implementation
// does with Triangle's raw edge list.
func (m *CDTMesher) Triangulate(boundary []geom.Point, targetSize float64) ([]MeshEdge, error) {
	if len(boundary) < 3 {
		return nil, fmt.Errorf("dlo: triangulation needs at least 3 boundary points, got %d", len(boundary))
	}

	outer := make([]types.Point, len(boundary))
	for i, p := range boundary {
		outer[i] = types.Point{X: p.X, Y: p.Y}
	}

	mesh, err := cdt.Build(outer, nil, nil, m.Opts)
	if err != nil {
		return nil, fmt.Errorf("dlo: triangulation failed: %w", err)
	}

	seen := make(map[[2]int]bool)
	var edges []MeshEdge
	addEdge := func(a, b int) {
		key := [2]int{a, b}
		if a > b {
			key = [2]int{b, a}
		}
		if seen[key] {
			return
		}
		seen[key] = true
		pa, pb := mesh.Vertices[a], mesh.Vertices[b]
		edges = append(edges, MeshEdge{
			P1: geom.Pt(pa.X, pa.Y),
			P2: geom.Pt(pb.X, pb.Y),
		})
	}

	for _, t := range mesh.Triangles {
		addEdge(t.A, t.B)
		addEdge(t.B, t.C)
		addEdge(t.C, t.A)
	}

	return edges, nil
}
