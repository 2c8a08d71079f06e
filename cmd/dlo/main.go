// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dlo runs discontinuity layout optimisation over a domain
// description file and writes the resulting yield-line record set.
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/reniercloete/OpenDLO/dlo"
	"github.com/reniercloete/OpenDLO/lp"
	"github.com/reniercloete/OpenDLO/solve"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	io.PfWhite("\nOpenDLO -- Discontinuity Layout Optimisation\n\n")

	configPath := flag.String("config", "", "optional YAML config file")
	outPath := flag.String("o", "", "output yield-line file (defaults to <input>.yld)")
	flag.Parse()

	if len(flag.Args()) < 1 {
		chk.Panic("Please, provide a domain filename. Ex.: square.dlo")
	}
	fnamepath := flag.Arg(0)
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".dlo"
	}

	cfg := solve.DefaultConfig()
	if *configPath != "" {
		loaded, err := solve.LoadConfig(*configPath)
		if err != nil {
			chk.Panic("cannot read config %q: %v", *configPath, err)
		}
		cfg = loaded
	}

	d := dlo.NewDomain()
	if err := d.Load(fnamepath); err != nil {
		chk.Panic("cannot load domain %q: %v", fnamepath, err)
	}
	if err := d.BuildEdges(); err != nil {
		chk.Panic("cannot build edge set: %v", err)
	}

	result, err := solve.Solve(d, cfg, func() lp.Backend { return lp.NewSimplexBackend() })
	if err != nil {
		chk.Panic("solve failed: %v", err)
	}

	io.Pf("\nlambda = %v (%d solves, %d iterations)\n", result.Lambda, result.Solves, result.Iterations)

	out := *outPath
	if out == "" {
		out = fnamepath[:len(fnamepath)-len(io.FnExt(fnamepath))] + ".yld"
	}
	writeYieldLines(out, result.YieldLines)
}

// writeYieldLines writes the 8-double-per-line yield-line record
// format of spec.md §6.
func writeYieldLines(path string, lines []solve.YieldLine) {
	var b []byte
	for _, l := range lines {
		b = append(b, io.Sf("%g %g %g %g %g %g %g %g\n",
			l.PhiN, l.PhiT, l.Delta, l.PlasticMultiplier, l.X1, l.Y1, l.X2, l.Y2)...)
	}
	io.WriteFileSD(dirOf(path), baseOf(path), string(b))
	io.Pf("wrote %d yield lines to %s\n", len(lines), path)
}

func dirOf(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[:i]
		}
	}
	return "."
}

func baseOf(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
