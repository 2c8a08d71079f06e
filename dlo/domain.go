// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"fmt"

	"github.com/reniercloete/OpenDLO/geom"
)

// Support is an explicit support line independent of the boundary ring
// (spec.md §6 persistence only carries boundary-edge types, but the
// reference implementation's AddSupport lets a caller impose a support
// condition along an arbitrary line; kept here as a SPEC_FULL.md
// supplement, not yet folded into Discretize's edge set).
type Support struct {
	Line geom.Segment
	Type EdgeType
}

// Domain owns the node arena, the boundary polygon, support conditions,
// and every edge produced by discretisation. All cross-references are
// indices into Domain's own slices (spec.md §9: "model as arena +
// indices" — no process-wide counters, no pointer back into a
// statically-owned node list).
type Domain struct {
	Nodes []Node

	Poly     *geom.Polygon
	Openings []geom.Polygon
	Supports []Support

	BoundaryEdges   []*Edge
	MeshEdges       []*Edge
	AdditionalEdges []*Edge
	Edges           []*Edge // insertion order: boundary, mesh, additional

	MpPosX, MpNegX, MpPosY, MpNegY float64
	LiveLoad, DeadLoad             float64

	Mesher Mesher

	nodeMap map[int]map[int]bool
}

// NewDomain returns an empty domain with isotropic unit yield moments,
// matching the reference constructor's defaults, and the gomesh-backed
// mesher wired in by default.
func NewDomain() *Domain {
	return &Domain{
		Poly:        geom.NewPolygon(),
		MpPosX:      1, MpNegX: 1, MpPosY: 1, MpNegY: 1,
		Mesher:      NewCDTMesher(),
		nodeMap:     make(map[int]map[int]bool),
	}
}

// AddBoundaryPoint appends a vertex to the domain's boundary polygon
// (de-duplicated) and tags the edge leading into it with typ.
func (d *Domain) AddBoundaryPoint(p geom.Point, typ EdgeType) {
	idx, _ := d.Poly.AddPoint(p, true)
	d.Poly.SetEdgeType(idx, int(typ))
}

// AddOpeningPoint appends a vertex to the index-th opening polygon,
// growing Openings as needed. Openings admit the data shape spec.md §1
// names as a non-goal to implement clipping logic for; nothing in the
// discretisation pipeline yet consumes them.
func (d *Domain) AddOpeningPoint(index int, p geom.Point) {
	for len(d.Openings) <= index {
		d.Openings = append(d.Openings, *geom.NewPolygon())
	}
	d.Openings[index].AddPoint(p, true)
}

// AddSupport records an explicit support condition along the line p1-p2.
func (d *Domain) AddSupport(p1, p2 geom.Point, typ EdgeType) {
	d.Supports = append(d.Supports, Support{Line: geom.NewSegment(p1, p2), Type: typ})
}

// SetLoads sets the live and dead load multipliers applied to the UDL
// tributary vectors during LP assembly.
func (d *Domain) SetLoads(live, dead float64) {
	d.LiveLoad, d.DeadLoad = live, dead
}

// SetYieldMoments stores the domain-wide default orthotropic yield
// moments applied to every edge created during discretisation. The
// reference implementation's setter assigned each field to itself here
// (an observable bug, spec.md §9); this one stores the passed values.
func (d *Domain) SetYieldMoments(mpPosX, mpNegX, mpPosY, mpNegY float64) {
	d.MpPosX, d.MpNegX, d.MpPosY, d.MpNegY = mpPosX, mpNegX, mpPosY, mpNegY
}

// edgeAdded reports whether n1-n2 (in either direction) is already
// present in the adjacency map.
func (d *Domain) edgeAdded(n1, n2 int) bool {
	if m, ok := d.nodeMap[n1]; ok {
		return m[n2]
	}
	return false
}

// markAdjacent records n1-n2 as connected in both directions.
func (d *Domain) markAdjacent(n1, n2 int) {
	if d.nodeMap[n1] == nil {
		d.nodeMap[n1] = make(map[int]bool)
	}
	if d.nodeMap[n2] == nil {
		d.nodeMap[n2] = make(map[int]bool)
	}
	d.nodeMap[n1][n2] = true
	d.nodeMap[n2][n1] = true
}

// addEdge builds and appends an edge between n1 and n2 to dst, using
// the domain's current default yield moments.
func (d *Domain) addEdge(n1, n2 int, typ EdgeType, dst *[]*Edge) *Edge {
	e := NewEdge(d, n1, n2, typ, d.MpPosX, d.MpNegX, d.MpPosY, d.MpNegY)
	*dst = append(*dst, e)
	return e
}

// Discretize resets the domain's nodes and edges, tessellates the
// boundary at the given target segment size, and triangulates the
// interior, following the reference implementation's Discretize.
func (d *Domain) Discretize(size float64) error {
	d.Nodes = nil
	d.BoundaryEdges = nil
	d.MeshEdges = nil
	d.AdditionalEdges = nil
	d.Edges = nil
	d.nodeMap = make(map[int]map[int]bool)

	d.tessellate(size)
	return d.createMeshEdges(size)
}

// createMeshEdges invokes the external mesher over the boundary
// polygon's vertices (not the tessellated nodes), folding each returned
// edge back into
// the node arena (de-duplicated) and adding it as an INTERNAL,
// non-removeable mesh edge when its endpoints are not already connected.
func (d *Domain) createMeshEdges(size float64) error {
	boundary := d.Poly.Points()
	meshEdges, err := d.Mesher.Triangulate(boundary, size)
	if err != nil {
		return err
	}

	onBoundary := make(map[[2]int]bool)
	for _, e := range d.BoundaryEdges {
		onBoundary[[2]int{e.N1, e.N2}] = true
		onBoundary[[2]int{e.N2, e.N1}] = true
	}

	for _, me := range meshEdges {
		n1 := d.AddNode(me.P1)
		n2 := d.AddNode(me.P2)
		if n1 == n2 || onBoundary[[2]int{n1, n2}] {
			continue
		}
		if !d.edgeAdded(n1, n2) {
			d.markAdjacent(n1, n2)
			e := d.addEdge(n1, n2, Internal, &d.MeshEdges)
			e.Removeable = false
		}
	}
	return nil
}

// BuildEdges assembles the final candidate edge set: boundary and mesh
// edges (non-removeable, pre-activated), plus one additional removeable
// INTERNAL edge for every node pair not already connected. It then runs
// overlap pruning, exterior pruning, and parallel UDL tributary
// precomputation, per spec.md §4.2/§5.
func (d *Domain) BuildEdges() error {
	for _, e := range d.BoundaryEdges {
		e.Removeable = false
		if d.edgeAdded(e.N1, e.N2) {
			return fmt.Errorf("dlo: boundary edge %d-%d already present", e.N1, e.N2)
		}
		d.markAdjacent(e.N1, e.N2)
	}

	n := len(d.Nodes)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if !d.edgeAdded(i, j) {
				d.markAdjacent(i, j)
				e := d.addEdge(i, j, Internal, &d.AdditionalEdges)
				e.Removeable = true
			}
		}
	}

	d.Edges = make([]*Edge, 0, len(d.BoundaryEdges)+len(d.MeshEdges)+len(d.AdditionalEdges))
	for _, e := range d.BoundaryEdges {
		e.Added = true
		d.Edges = append(d.Edges, e)
	}
	for _, e := range d.MeshEdges {
		e.Added = true
		d.Edges = append(d.Edges, e)
	}
	d.Edges = append(d.Edges, d.AdditionalEdges...)

	d.removeOverlappedEdges()
	d.removeExteriorEdges()
	d.precomputeUDL()

	return nil
}
