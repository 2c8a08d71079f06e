// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"

	"github.com/reniercloete/OpenDLO/geom"
)

// Load reads a domain from the whitespace-separated text format of
// spec.md §6: a boundary-point count, that many (x, y, edge-type)
// triples, the four orthotropic yield moments, and a target mesh
// density. It then discretises at that density and applies a default
// unit live load, matching the reference implementation's
// Load-Discretize-SetLoads(1,0) sequence.
func (d *Domain) Load(path string) error {
	raw, err := io.ReadFile(path)
	if err != nil {
		return fmt.Errorf("dlo: cannot read domain file %q: %w", path, err)
	}

	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Split(bufio.ScanWords)
	next := func() (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("dlo: unexpected end of domain file %q", path)
		}
		return sc.Text(), nil
	}
	nextFloat := func() (float64, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(tok, 64)
	}
	nextInt := func() (int, error) {
		tok, err := next()
		if err != nil {
			return 0, err
		}
		return strconv.Atoi(tok)
	}

	n, err := nextInt()
	if err != nil {
		return err
	}

	d.Poly = geom.NewPolygon()
	for i := 0; i < n; i++ {
		x, err := nextFloat()
		if err != nil {
			return err
		}
		y, err := nextFloat()
		if err != nil {
			return err
		}
		typ, err := nextInt()
		if err != nil {
			return err
		}
		d.AddBoundaryPoint(geom.Pt(x, y), EdgeType(typ))
	}

	mpPosX, err := nextFloat()
	if err != nil {
		return err
	}
	mpNegX, err := nextFloat()
	if err != nil {
		return err
	}
	mpPosY, err := nextFloat()
	if err != nil {
		return err
	}
	mpNegY, err := nextFloat()
	if err != nil {
		return err
	}
	density, err := nextFloat()
	if err != nil {
		return err
	}

	d.SetYieldMoments(mpPosX, mpNegX, mpPosY, mpNegY)
	if err := d.Discretize(density); err != nil {
		return err
	}
	d.SetLoads(1, 0)
	return nil
}

// Save writes a domain in the same format Load reads, at the given
// target mesh density, so Load(Save(density)) round-trips a domain's
// boundary and material description (SPEC_FULL.md §6.7 supplement; the
// reference implementation's own Save writes a different, internally
// inconsistent layout that its own Load cannot parse back — this one
// keeps Load and Save in lockstep).
func (d *Domain) Save(path string, density float64) error {
	pts := d.Poly.Points()

	var b strings.Builder
	fmt.Fprintf(&b, "%d ", len(pts))
	for i, p := range pts {
		fmt.Fprintf(&b, "%g %g %d ", p.X, p.Y, d.Poly.EdgeType(i))
	}
	fmt.Fprintf(&b, "%g %g %g %g %g", d.MpPosX, d.MpNegX, d.MpPosY, d.MpNegY, density)

	io.WriteFileSD(pathDir(path), pathBase(path), b.String())
	return nil
}

func pathDir(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[:i]
	}
	return "."
}

func pathBase(p string) string {
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		return p[i+1:]
	}
	return p
}
