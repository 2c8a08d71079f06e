// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"math"
	"sync"

	"github.com/reniercloete/OpenDLO/geom"
)

// rayLength is the half-length of the "infinitely tall" vertical rays
// cast through edge endpoints and sub-polygon vertices while isolating
// an edge's tributary region, matching the reference implementation's
// literal 1e6 constant.
const rayLength = 1e6

// verticalThrough returns an oversized vertical segment centred on p,
// used as a clipping line or a query ray.
func verticalThrough(p geom.Point) geom.Segment {
	return geom.NewSegment(geom.Pt(p.X, p.Y-rayLength), geom.Pt(p.X, p.Y+rayLength))
}

// UDLVector returns the cached (normal, tangential, area) tributary
// load vector for a unit uniformly distributed load over outline,
// computing it on first access. Grounded on the reference
// implementation's Edge::GetUDLLoadVector.
func (e *Edge) UDLVector(d *Domain, outline *geom.Polygon) [3]float64 {
	if e.udlComputed {
		return e.udlVector
	}
	e.udlVector = [3]float64{}

	p1, p2 := d.NodePoint(e.N1), d.NodePoint(e.N2)

	if math.Abs(p1.X-p2.X) > geom.Eps {
		left, right := p1, p2
		if left.X > right.X {
			left, right = right, left
		}

		lineLeft := verticalThrough(left)
		lineRight := verticalThrough(right)
		edgeLine := geom.NewSegment(left, right)
		mid := left.Add(right).Scale(0.5)

		polies := outline.ClipRight(lineRight)
		stage := geom.GetByPoint(mid, polies)
		polies = stage.ClipLeft(lineLeft)
		stage = geom.GetByPoint(mid, polies)
		polies = stage.ClipRight(edgeLine)
		tributary := geom.GetByPoint(mid, polies)

		pts := tributary.Points()
		kept := pts[:0:0]
		for _, v := range pts {
			if !createsDownwardCavity(&tributary, v) {
				kept = append(kept, v)
			}
		}

		if len(kept) > 0 {
			tributary.SetPoints(kept)

			area := tributary.Area()
			c := tributary.Centroid()

			edgeLine2 := geom.NewSegment(p1, p2)
			midOriginal := p1.Add(p2).Scale(0.5)

			dn := edgeLine2.DistanceTo(c)
			dt := edgeLine2.Dir().Dot(c.Sub(midOriginal))

			e.udlVector[0] = area * dn
			e.udlVector[1] = area * dt
			e.udlVector[2] = area
		}
	}

	if e.Type != Free && e.Type != Symmetry {
		e.udlVector[1] = 0
		e.udlVector[2] = 0
	}

	e.udlComputed = true
	return e.udlVector
}

// createsDownwardCavity reports whether casting a vertical ray through v
// crosses, immediately below v, a gap that lies outside the polygon —
// i.e. v sits on a downward spike that is not real tributary area.
func createsDownwardCavity(poly *geom.Polygon, v geom.Point) bool {
	ray := verticalThrough(v)
	crossings := poly.OrderedIntersections(ray)

	for k := 0; k < len(crossings)-1; k++ {
		if crossings[k].Y-v.Y < 0 {
			mid := crossings[k].Add(crossings[k+1]).Scale(0.5)
			if poly.PointOn(mid) == -1 && !poly.PointIn(mid) {
				return true
			}
		}
	}
	return false
}

// precomputeUDL computes the UDL tributary vector of every edge in
// d.Edges, Added or not, split into four contiguous equal-sized chunks
// across goroutines: each worker only ever writes the cache of the edges
// in its own slice.
func (d *Domain) precomputeUDL() {
	n := len(d.Edges)
	if n == 0 {
		return
	}
	quarter := (n + 3) / 4

	var wg sync.WaitGroup
	for start := 0; start < n; start += quarter {
		end := start + quarter
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				d.Edges[i].UDLVector(d, d.Poly)
			}
		}(start, end)
	}
	wg.Wait()
}
