// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import "math"

// tessellate walks the boundary polygon edge by edge and places equally
// spaced interior nodes along each, emitting one boundary Edge per
// resulting sub-segment carrying that boundary edge's type. Placement
// count follows spec.md §4.2: ⌊L/(S/2) + 0.5⌋ interior divisions.
func (d *Domain) tessellate(size float64) {
	pts := d.Poly.Points()
	if len(pts) == 0 {
		return
	}
	pts = append(pts, pts[0])

	for i := 1; i < len(pts); i++ {
		p1, p2 := pts[i-1], pts[i]
		typ := EdgeType(d.Poly.EdgeType(i - 1))

		v := p2.Sub(p1)
		length := v.Length()
		dir := v.Normalize()

		number := int(math.Floor(length/(size/2) + 0.5))
		if number < 1 {
			number = 1
		}
		spacing := length / float64(number)

		n1 := d.AddNode(p1)
		for j := 0; j < number; j++ {
			n2 := d.AddNode(p1.Add(dir.Scale(float64(j+1) * spacing)))
			e := d.addEdge(n1, n2, typ, &d.BoundaryEdges)
			e.Removeable = false
			n1 = n2
		}
	}
}
