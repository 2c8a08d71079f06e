// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// ClipLeft splits the polygon along line and returns the anti-clockwise
// piece(s) lying on the negative-cross side of line's direction (the
// "left" half as defined by the reference implementation's own sign
// convention — see the keep predicate passed to clipWalk below).
func (p *Polygon) ClipLeft(line Segment) []Polygon {
	poly := p.Clone()
	points := poly.IntersectWith(line)
	return clipWalk(poly, points, line, func(d float64) bool { return d < 0 && absf(d) > Eps })
}

// ClipRight splits the polygon along line and returns the anti-clockwise
// piece(s) lying on the positive-cross side of line's direction. The
// polygon is reversed before walking, mirroring the reference
// implementation exactly (ClipRight walks the ring backwards, then
// re-canonicalises winding at the end like ClipLeft does).
func (p *Polygon) ClipRight(line Segment) []Polygon {
	poly := p.Clone()
	poly.Reverse()
	points := poly.IntersectWith(line)
	return clipWalk(poly, points, line, func(d float64) bool { return d > 0 && absf(d) > Eps })
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clipWalk implements the shared core of ClipLeft/ClipRight: given a
// polygon already intersected with line (vertices marked, new vertices
// inserted at crossing points) and the ordered list of distinct
// crossing points, it walks the marked ring to carve out the resulting
// sub-polygon(s). When line crosses the ring at 0 or 1 points, the whole
// polygon is kept or dropped wholesale based on keep, which tests the
// signed cross-track distance of each vertex from line.
func clipWalk(poly *Polygon, points []Point, line Segment, keep func(d float64) bool) []Polygon {
	var result []Polygon

	if len(points) > 1 {
		var lastPoint Point
		for len(points) > 0 {
			pBegin := points[0]
			points = points[1:]

			sz := poly.NumPoints()
			polyIndex := -1
			for i := 0; i < sz; i++ {
				if pBegin.DistanceTo(poly.Point(i)) < Eps {
					polyIndex = i
					break
				}
			}
			if polyIndex == -1 {
				// Degenerate input (crossing point dropped by prior
				// dedup); nothing sane to do but skip this run.
				continue
			}
			polyStart := polyIndex
			poly.verts[polyIndex].mark = false

			newPoly := NewPolygon()
			newPoly.AddPoint(pBegin, false)

			polyIndex++
			if polyIndex >= sz {
				polyIndex = 0
			}

			for {
				v := &poly.verts[polyIndex]

				if v.mark {
					pointIndex := -1
					for i := range points {
						if points[i].DistanceTo(v.pt) < Eps {
							pointIndex = i
							break
						}
					}
					if pointIndex == -1 {
						// Should not happen for well-formed input; treat
						// as an unmarked pass-through to stay safe.
						newPoly.AddPoint(v.pt, false)
					} else {
						v.mark = false
						newPoly.AddPoint(v.pt, false)

						if pointIndex == 0 {
							lastPoint = points[0]
							points = points[1:]
							break
						}

						pointIndex--

						next := -1
						for i := 0; i < sz; i++ {
							if points[pointIndex].DistanceTo(poly.Point(i)) < Eps {
								next = i
								break
							}
						}
						if next == -1 {
							break
						}
						poly.verts[next].mark = false
						newPoly.AddPoint(points[pointIndex], false)
						points = removeAt(points, pointIndex)
						points = removeAt(points, pointIndex)
						polyIndex = next
					}
				} else {
					newPoly.AddPoint(v.pt, false)
				}

				polyIndex++
				if polyIndex >= sz {
					polyIndex = 0
				}
				if polyIndex == polyStart {
					break
				}
			}

			if newPoly.NumPoints() > 2 {
				result = append(result, *newPoly)
			} else if len(points) > 0 {
				points = append([]Point{lastPoint}, points...)
			}
		}
	} else {
		vl := line.P2.Sub(line.P1).Normalize()
		entirelyOutside := true
		for i := 0; i < poly.NumPoints(); i++ {
			v := poly.Point(i).Sub(line.P1)
			d := vl.Cross(v)
			if keep(d) {
				entirelyOutside = false
				break
			}
		}
		if !entirelyOutside {
			whole := NewPolygon()
			for i := 0; i < poly.NumPoints(); i++ {
				whole.AddPoint(poly.Point(i), false)
			}
			result = append(result, *whole)
		}
	}

	for i := range result {
		result[i].MakeAntiClockwise()
	}
	return result
}

func removeAt(pts []Point, i int) []Point {
	return append(pts[:i:i], pts[i+1:]...)
}

// GetByPoint returns the first polygon among polies that has point on or
// inside it, or the zero Polygon if none matches.
func GetByPoint(point Point, polies []Polygon) Polygon {
	for _, poly := range polies {
		if poly.PointOn(point) > -1 || poly.PointIn(point) {
			return poly
		}
	}
	return Polygon{}
}
