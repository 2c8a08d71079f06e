// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"math"
	"sort"
	"sync"

	"github.com/reniercloete/OpenDLO/geom"
)

// slopeEps is the tolerance used when grouping edges by slope for
// overlap pruning, matching the reference implementation's
// fMoveToEndOfPartition/fOverlapInternal (distinct from geom.Eps).
const slopeEps = 1e-9

// removeOverlappedEdges sorts d.Edges by slope, splits the sorted list
// into four contiguous partitions whose boundaries are pushed forward
// until the slope strictly changes (so no partition boundary falls
// inside a run of colinear-candidate edges), prunes each partition
// concurrently, then physically erases every edge marked Delete. The
// surviving edges keep their original insertion order in d.Edges.
//
// Overlap rule: of two colinearly-overlapping edges, the LONGER one is
// deleted. This is preserved as observed in the reference
// implementation rather than "fixed" to the usual DLO convention of
// deleting the shorter — see spec.md §4.2's open question.
func (d *Domain) removeOverlappedEdges() {
	inserted := append([]*Edge(nil), d.Edges...)
	sort.Slice(d.Edges, func(i, j int) bool {
		return d.Edges[i].Line.Slope() < d.Edges[j].Line.Slope()
	})

	n := len(d.Edges)
	if n == 0 {
		return
	}

	count := n / 4
	extend := func(end int) int {
		i := end
		for i < n && math.Abs(d.Edges[i-1].Line.Slope()-d.Edges[i].Line.Slope()) < slopeEps {
			i++
		}
		return i
	}

	start1, end1 := 0, extend(count)
	start2, end2 := end1, extend(end1+count)
	start3, end3 := end2, extend(end2+count)
	start4, end4 := end3, n

	var wg sync.WaitGroup
	ranges := [][2]int{{start1, end1}, {start2, end2}, {start3, end3}, {start4, end4}}
	for _, r := range ranges {
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			d.overlapInternal(start, end)
		}(r[0], r[1])
	}
	wg.Wait()

	kept := inserted[:0]
	for _, e := range inserted {
		if !e.Delete {
			kept = append(kept, e)
		}
	}
	d.Edges = kept
}

// overlapInternal tests every ordered pair (i<j) of undeleted edges in
// [start,end) with equal slope for colinear overlap, marking the longer
// of the two for deletion. Edges outside [start,end) are never touched,
// so concurrent calls over disjoint ranges need no synchronisation.
func (d *Domain) overlapInternal(start, end int) {
	for i := start; i < end; i++ {
		edgeI := d.Edges[i]
		if edgeI.Delete {
			continue
		}
		lineI := edgeI.Line
		minI, maxI := lineI.Min(), lineI.Max()

		for j := i + 1; j < end; j++ {
			edgeJ := d.Edges[j]
			lineJ := edgeJ.Line

			if math.Abs(lineI.Slope()-lineJ.Slope()) > slopeEps {
				break
			}
			if edgeJ.Delete {
				continue
			}

			minJ, maxJ := lineJ.Min(), lineJ.Max()
			skip := maxJ.X < minI.X || minJ.X > maxI.X || maxJ.Y < minI.Y || minJ.Y > maxI.Y
			skip = skip || !geom.Colinear(lineI, lineJ)
			if skip {
				continue
			}

			if pts := geom.Intersect(lineI, lineJ); len(pts) > 1 {
				if edgeI.Length > edgeJ.Length {
					edgeI.Delete = true
					break
				}
				edgeJ.Delete = true
			}
		}
	}
}
