// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/reniercloete/OpenDLO/dlo"
	"github.com/reniercloete/OpenDLO/geom"
)

// noMesh returns no interior edges, keeping the assembled problem small
// and deterministic.
type noMesh struct{}

func (noMesh) Triangulate(boundary []geom.Point, targetSize float64) ([]dlo.MeshEdge, error) {
	return nil, nil
}

func fixedSquare() *dlo.Domain {
	d := dlo.NewDomain()
	d.Mesher = noMesh{}
	d.AddBoundaryPoint(geom.Pt(0, 0), dlo.Fixed)
	d.AddBoundaryPoint(geom.Pt(1, 0), dlo.Fixed)
	d.AddBoundaryPoint(geom.Pt(1, 1), dlo.Fixed)
	d.AddBoundaryPoint(geom.Pt(0, 1), dlo.Fixed)
	d.SetYieldMoments(1, 1, 1, 1)
	d.SetLoads(1, 0)
	return d
}

func Test_assemble01(tst *testing.T) {

	chk.PrintTitle("assemble01: row and column counts for a fully-fixed square")

	d := fixedSquare()
	if err := d.Discretize(0.25); err != nil {
		tst.Fatalf("Discretize: %v", err)
	}
	if err := d.BuildEdges(); err != nil {
		tst.Fatalf("BuildEdges: %v", err)
	}

	backend := NewSimplexBackend()
	model, err := Assemble(backend, d)
	if err != nil {
		tst.Fatalf("Assemble: %v", err)
	}

	wantRows := 3*model.NumNodes + len(model.YieldRow) + 1
	if model.NumRows != wantRows {
		tst.Errorf("NumRows = %d, want %d", model.NumRows, wantRows)
	}
	for _, e := range model.Edges {
		if e.Type.Yields() && len(model.DispCol[e]) != 1 {
			tst.Errorf("fixed edge should carry exactly one displacement column, got %d", len(model.DispCol[e]))
		}
		if e.Type.Yields() {
			if _, ok := model.PlusCol[e]; !ok {
				tst.Errorf("yielding edge missing a p+ column")
			}
			if _, ok := model.MinusCol[e]; !ok {
				tst.Errorf("yielding edge missing a p- column")
			}
		}
	}
}

// Test_assemble02 is a single-solve smoke test over only the initially
// Added edge set (the outer loop's diagonals are never activated here,
// so this cannot reach the literal lambda=24 of spec.md §8 scenario 1 —
// that full geometry-to-outer-loop pipeline is covered by
// solve.Test_solve01_fixedSquareLambda24). This test only checks that a
// single static LP over a fully-fixed boundary is feasible and bounded.
func Test_assemble02(tst *testing.T) {

	chk.PrintTitle("assemble02: a fully-fixed unit square solves to a positive load factor")

	d := fixedSquare()
	if err := d.Discretize(0.25); err != nil {
		tst.Fatalf("Discretize: %v", err)
	}
	if err := d.BuildEdges(); err != nil {
		tst.Fatalf("BuildEdges: %v", err)
	}

	backend := NewSimplexBackend()
	_, err := Assemble(backend, d)
	if err != nil {
		tst.Fatalf("Assemble: %v", err)
	}

	obj, _, _, err := backend.Solve()
	if err != nil {
		tst.Fatalf("Solve: %v", err)
	}
	if obj <= 0 {
		tst.Errorf("expected a strictly positive collapse load factor, got %v", obj)
	}
}
