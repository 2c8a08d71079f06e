// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/reniercloete/OpenDLO/dlo"
	"github.com/reniercloete/OpenDLO/lp"
)

// plasticTol is the threshold below which a resolved plastic multiplier
// is treated as zero (the edge did not actually yield), spec.md §4.6.
const plasticTol = 1e-3

// ExtractYieldLines walks d.Edges in insertion order and emits one
// record per Added edge carrying a non-trivial kinematic result,
// grounded on the reference implementation's GetEdgeData.
func ExtractYieldLines(d *dlo.Domain, model *lp.Model, primal []float64) []YieldLine {
	var out []YieldLine

	for _, e := range d.Edges {
		if !e.Added {
			continue
		}
		cols := model.DispCol[e]
		if len(cols) == 0 {
			continue
		}
		phiN := primal[cols[0]]
		p1, p2 := d.NodePoint(e.N1), d.NodePoint(e.N2)

		base := YieldLine{PhiN: phiN, X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}

		switch {
		case e.Type == dlo.Free:
			base.PhiT = primal[cols[1]]
			base.Delta = primal[cols[2]]
			out = append(out, base)

		case e.Type == dlo.SimpleAnchored:
			out = append(out, base)

		default:
			plusCol, okPlus := model.PlusCol[e]
			minusCol, okMinus := model.MinusCol[e]
			if !okPlus || !okMinus {
				continue
			}
			pPlus, pMinus := primal[plusCol], primal[minusCol]
			if pPlus <= plasticTol && pMinus <= plasticTol {
				continue
			}
			if pPlus > plasticTol {
				base.PlasticMultiplier = pPlus
			} else {
				base.PlasticMultiplier = -pMinus
			}
			out = append(out, base)
		}
	}

	return out
}
