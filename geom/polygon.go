// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"sort"
)

// dedupSq is the squared-distance threshold below which two points are
// treated as the same vertex. It matches the node/vertex dedup threshold
// used throughout the domain model (spec'd as 1e-20 on squared distance,
// i.e. 1e-10 on the distance itself — much tighter than Eps).
const dedupSq = 1e-20

// vertex is a polygon vertex tagged with the "mark" flag the clipping
// walk uses to recognise inserted intersection points, instead of
// mutating geom.Point itself (see Design Notes in DESIGN.md: clipping
// vertices are modelled as a list of tagged variants rather than an
// in-place mutable field on Point).
type vertex struct {
	pt   Point
	mark bool
}

// Polygon is an ordered, implicitly-closed list of points (the edge from
// the last point back to the first closes the ring), with a per-edge
// type tag and a cached bounding box. The system canonicalises polygons
// to anti-clockwise winding by the sign of the shoelace area.
type Polygon struct {
	verts   []vertex
	edgeTag []int

	min, max   Point
	haveBounds bool

	// Holes admits the data shape for openings (spec Non-goal: no
	// clipping logic consumes it). Kept as plain sub-polygons rather
	// than a richer type since nothing reads them yet.
	Holes []Polygon
}

// NewPolygon returns an empty polygon.
func NewPolygon() *Polygon {
	return &Polygon{min: Pt(math.MaxFloat64, math.MaxFloat64), max: Pt(-math.MaxFloat64, -math.MaxFloat64), haveBounds: true}
}

// AddPoint appends p to the polygon. When dedup is true and p is within
// dedupSq of an existing vertex, the existing index is returned and no
// point is added. A newly added vertex's edge tag defaults to 0 (FREE);
// a matched vertex keeps its existing tag.
func (p *Polygon) AddPoint(pt Point, dedup bool) (index int, added bool) {
	if dedup {
		for i, v := range p.verts {
			if v.pt.Sub(pt).LengthSquared() < dedupSq {
				return i, false
			}
		}
	}

	if pt.X < p.min.X {
		p.min.X = pt.X
	}
	if pt.X > p.max.X {
		p.max.X = pt.X
	}
	if pt.Y < p.min.Y {
		p.min.Y = pt.Y
	}
	if pt.Y > p.max.Y {
		p.max.Y = pt.Y
	}

	p.verts = append(p.verts, vertex{pt: pt})
	p.edgeTag = append(p.edgeTag, 0)
	return len(p.verts) - 1, true
}

// InsertPoint inserts p at index, shifting subsequent vertices right.
func (p *Polygon) InsertPoint(index int, pt Point) {
	p.verts = append(p.verts, vertex{})
	copy(p.verts[index+1:], p.verts[index:])
	p.verts[index] = vertex{pt: pt}
}

// NumPoints returns the number of vertices.
func (p *Polygon) NumPoints() int { return len(p.verts) }

// Point returns the vertex at index.
func (p *Polygon) Point(index int) Point { return p.verts[index].pt }

// Points returns a plain copy of the polygon's vertices in order.
func (p *Polygon) Points() []Point {
	out := make([]Point, len(p.verts))
	for i, v := range p.verts {
		out[i] = v.pt
	}
	return out
}

// SetPoints replaces the vertex list wholesale (marks are cleared).
func (p *Polygon) SetPoints(pts []Point) {
	p.verts = make([]vertex, len(pts))
	for i, pt := range pts {
		p.verts[i] = vertex{pt: pt}
	}
}

// EdgeType returns the tag of the edge starting at vertex index.
func (p *Polygon) EdgeType(index int) int { return p.edgeTag[index] }

// SetEdgeType sets the tag of the edge starting at vertex index.
func (p *Polygon) SetEdgeType(index, tag int) {
	for len(p.edgeTag) <= index {
		p.edgeTag = append(p.edgeTag, 0)
	}
	p.edgeTag[index] = tag
}

// Clone returns a deep copy of the polygon.
func (p *Polygon) Clone() *Polygon {
	q := &Polygon{
		verts:      append([]vertex(nil), p.verts...),
		edgeTag:    append([]int(nil), p.edgeTag...),
		min:        p.min,
		max:        p.max,
		haveBounds: p.haveBounds,
	}
	return q
}

// edge returns the i-th polygon edge as a segment (implicitly closing
// the ring when i is the last index).
func (p *Polygon) edge(i int) Segment {
	j := i + 1
	if j >= len(p.verts) {
		j = 0
	}
	return NewSegment(p.verts[i].pt, p.verts[j].pt)
}

// Area returns the signed shoelace area. Positive for anti-clockwise
// winding, negative for clockwise.
func (p *Polygon) Area() float64 {
	n := len(p.verts)
	if n < 3 {
		return 0
	}
	a := 0.0
	for i := 0; i < n; i++ {
		p1 := p.verts[i].pt
		p2 := p.verts[(i+1)%n].pt
		a += p1.X*p2.Y - p2.X*p1.Y
	}
	return a * 0.5
}

// Centroid returns the polygon's area centroid.
func (p *Polygon) Centroid() Point {
	n := len(p.verts)
	a := p.Area()
	var cx, cy float64
	for i := 0; i < n; i++ {
		p1 := p.verts[i].pt
		p2 := p.verts[(i+1)%n].pt
		cross := p1.X*p2.Y - p2.X*p1.Y
		cx += (p1.X + p2.X) * cross
		cy += (p1.Y + p2.Y) * cross
	}
	return Point{cx / (6 * a), cy / (6 * a)}
}

// Reverse reverses the vertex order in place.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.verts)-1; i < j; i, j = i+1, j-1 {
		p.verts[i], p.verts[j] = p.verts[j], p.verts[i]
	}
}

// MakeAntiClockwise reverses the polygon if its signed area is negative.
func (p *Polygon) MakeAntiClockwise() {
	if p.Area() < 0 {
		p.Reverse()
	}
}

// PointIn reports whether p lies strictly inside the polygon using an
// even-odd horizontal ray test.
func (p *Polygon) PointIn(pt Point) bool {
	n := len(p.verts)
	odd := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi, vj := p.verts[i].pt, p.verts[j].pt
		if (vi.Y < pt.Y && vj.Y >= pt.Y || vj.Y < pt.Y && vi.Y >= pt.Y) &&
			(vi.X <= pt.X || vj.X <= pt.X) {
			if vi.X+(pt.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X) < pt.X {
				odd = !odd
			}
		}
		j = i
	}
	return odd
}

// PointOn returns the index of the edge pt lies on (distance < Eps), or
// -1 if pt is not on any edge.
func (p *Polygon) PointOn(pt Point) int {
	n := len(p.verts)
	for i := 0; i < n; i++ {
		if p.edge(i).DistanceTo(pt) < Eps {
			return i
		}
	}
	return -1
}

// addUniqueByDistance appends p to pts unless a point within Eps already
// exists in pts.
func addUniqueByDistance(pts []Point, p Point) []Point {
	for _, q := range pts {
		if q.Sub(p).Length() < Eps {
			return pts
		}
	}
	return append(pts, p)
}

// OrderedIntersections returns every distinct point where line crosses
// the polygon boundary, plus line's own two endpoints, all sorted by
// distance from line.P1. It does not mutate the polygon.
func (p *Polygon) OrderedIntersections(line Segment) []Point {
	var pts []Point
	n := len(p.verts)
	for i := 0; i < n; i++ {
		for _, ip := range Intersect(p.edge(i), line) {
			pts = addUniqueByDistance(pts, ip)
		}
	}
	pts = addUniqueByDistance(pts, line.P1)
	pts = addUniqueByDistance(pts, line.P2)

	sort.Slice(pts, func(i, j int) bool {
		return line.P1.Sub(pts[i]).Length() < line.P1.Sub(pts[j]).Length()
	})
	return pts
}

// IntersectWith computes every distinct point where line crosses the
// polygon boundary. Unlike OrderedIntersections, it mutates the polygon:
// intersection points that do not already coincide with a vertex are
// inserted into the vertex ring and marked, so a subsequent clip walk
// can find them. Returns the distinct intersection points sorted by
// distance from line.P1.
func (p *Polygon) IntersectWith(line Segment) []Point {
	var result []Point

	// Mirrors the reference implementation's for-loop exactly: the
	// upper bound is re-read every iteration, so a point inserted mid-
	// walk extends the loop and its own trailing edge gets tested too.
	i := 0
	for i < len(p.verts)-1 {
		seg := NewSegment(p.verts[i].pt, p.verts[i+1].pt)
		for _, ip := range Intersect(seg, line) {
			switch {
			case ip.DistanceTo(p.verts[i].pt) < Eps:
				p.verts[i].mark = true
			case ip.DistanceTo(p.verts[i+1].pt) < Eps:
				p.verts[i+1].mark = true
			default:
				p.InsertPoint(i+1, ip)
				p.verts[i+1].mark = true
			}
			result = addUniqueByDistance(result, ip)
		}
		i++
	}

	if len(p.verts) > 0 {
		last := len(p.verts) - 1
		seg := NewSegment(p.verts[last].pt, p.verts[0].pt)
		for _, ip := range Intersect(seg, line) {
			switch {
			case ip.DistanceTo(p.verts[last].pt) < Eps:
				p.verts[last].mark = true
			case ip.DistanceTo(p.verts[0].pt) < Eps:
				p.verts[0].mark = true
			default:
				p.verts = append(p.verts, vertex{pt: ip, mark: true})
			}
			result = addUniqueByDistance(result, ip)
		}
	}

	sort.Slice(result, func(a, b int) bool {
		return line.P1.Sub(result[a]).Length() < line.P1.Sub(result[b]).Length()
	})
	return result
}
