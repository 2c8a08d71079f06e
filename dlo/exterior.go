// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

// removeExteriorEdges deletes every Removeable edge whose line, when
// intersected with the boundary polygon, produces a consecutive
// midpoint lying neither on nor inside the polygon — i.e. the edge cuts
// through the exterior, grounded on the reference implementation's
// fRemoveExteriorEdges.
func (d *Domain) removeExteriorEdges() {
	for _, e := range d.Edges {
		if !e.Removeable {
			continue
		}

		pts := d.Poly.OrderedIntersections(e.Line)
		for k := 0; k < len(pts)-1; k++ {
			mid := pts[k].Add(pts[k+1]).Scale(0.5)
			if d.Poly.PointOn(mid) == -1 && !d.Poly.PointIn(mid) {
				e.Delete = true
				break
			}
		}
	}

	kept := d.Edges[:0]
	for _, e := range d.Edges {
		if !e.Delete {
			kept = append(kept, e)
		}
	}
	d.Edges = kept
}
