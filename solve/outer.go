// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/reniercloete/OpenDLO/dlo"
	"github.com/reniercloete/OpenDLO/lp"
)

// violation holds one Removeable, not-yet-Added edge's computed yield
// ratio for a single outer-loop round.
type violation struct {
	edge  *dlo.Edge
	ratio float64
}

// Solve runs the lazy constraint-generation loop of spec.md §4.5: it
// re-assembles and re-solves the LP over the Added edge set, finds the
// worst violators among the inactive Removeable edges, activates the
// top fraction, and repeats until no edge violates or λ stagnates.
// newBackend is called once per solve so every round gets a fresh
// Backend (the reference SimplexBackend does not support warm starts).
func Solve(d *dlo.Domain, cfg Config, newBackend func() lp.Backend) (Result, error) {
	var history []float64
	stagnant := 0
	solves := 0

	var lastModel *lp.Model
	var lastPrimal []float64
	var lastLambda float64

	for {
		backend := newBackend()
		model, err := lp.Assemble(backend, d)
		if err != nil {
			return Result{}, chk.Err("solve: assembly failed: %v", err)
		}

		obj, primal, dual, err := backend.Solve()
		solves++
		if err != nil {
			return Result{}, chk.Err("solve: LP infeasible or unbounded after %d solves: %v", solves, err)
		}

		lastModel, lastPrimal, lastLambda = model, primal, obj
		history = append(history, obj)
		io.Pf("outer loop: solve %d, lambda=%g, added=%d\n", solves, obj, len(model.Edges))

		violators := findViolators(d, model, dual, obj, cfg.ViolationTol)
		if len(violators) == 0 {
			break
		}

		if len(history) > 1 {
			prev := history[len(history)-2]
			if math.Abs(obj-prev) < cfg.StagnationTol {
				stagnant++
			} else {
				stagnant = 0
			}
			if stagnant >= cfg.StagnationWindow {
				io.Pfyel("outer loop: stagnation guard triggered after %d solves\n", solves)
				break
			}
		}

		activate(violators, cfg, len(model.Edges))
	}

	return Result{
		Lambda:     lastLambda,
		Solves:     solves,
		Iterations: solves - 1,
		YieldLines: ExtractYieldLines(d, lastModel, lastPrimal),
	}, nil
}

// findViolators computes, for every Removeable inactive edge, the raw
// normal moment implied by the current dual nodal forces plus its own
// direct load contributions (spec.md §4.5 step 3), and returns every
// edge whose yield ratio exceeds 1 by more than tol.
func findViolators(d *dlo.Domain, model *lp.Model, dual []float64, lambda, tol float64) []violation {
	var out []violation
	for _, e := range d.Edges {
		if !e.Removeable || e.Added {
			continue
		}
		raw := lp.RawNodalForce(e, d, dual)
		udl := e.UDLVector(d, d.Poly)
		mn := raw[0] + lambda*d.LiveLoad*udl[0] + d.DeadLoad*udl[0]

		var capacity float64
		if mn < 0 {
			capacity = e.MpNeg * e.Length
		} else {
			capacity = e.MpPos * e.Length
		}
		if capacity <= 0 {
			continue
		}
		ratio := math.Abs(mn) / capacity
		e.YieldRatio = ratio
		if ratio-1 > tol {
			out = append(out, violation{edge: e, ratio: ratio})
		}
	}
	return out
}

// activate sorts violators by descending ratio (selecting the running
// maximum with utl.DblArgMinMax, the same argmin/argmax idiom the
// teacher uses for extremum bookkeeping) and sets Added=true on the
// worst min(max(1, floor(activationFraction*numAdded)), len(violators)).
func activate(violators []violation, cfg Config, numAdded int) {
	k := int(cfg.ActivationFraction * float64(numAdded))
	if k < cfg.ActivationFloor {
		k = cfg.ActivationFloor
	}
	if k > len(violators) {
		k = len(violators)
	}

	remaining := append([]violation(nil), violators...)

	for i := 0; i < k; i++ {
		rs := make([]float64, len(remaining))
		for j, v := range remaining {
			rs[j] = v.ratio
		}
		_, imax := utl.DblArgMinMax(rs)
		remaining[imax].edge.Added = true
		remaining = append(remaining[:imax], remaining[imax+1:]...)
	}
}
