// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/cpmech/gosl/io"
)

// Config carries the outer constraint-generation loop's tunables,
// YAML-decodable the way gazed/vu's load package decodes shader
// configs into a small typed struct.
type Config struct {
	MeshSize           float64 `yaml:"mesh_size"`
	ActivationFraction float64 `yaml:"activation_fraction"`
	ActivationFloor    int     `yaml:"activation_floor"`
	StagnationWindow   int     `yaml:"stagnation_window"`
	StagnationTol      float64 `yaml:"stagnation_tol"`
	ViolationTol       float64 `yaml:"violation_tol"`
	Parallelism        int     `yaml:"parallelism"`
}

// DefaultConfig returns spec.md §4.5's literal defaults: a 5% activation
// fraction with a floor of one edge, a ten-iteration stagnation window
// at 1e-6 tolerance, and a 1e-6 violation tolerance.
func DefaultConfig() Config {
	return Config{
		MeshSize:           0.25,
		ActivationFraction: 0.05,
		ActivationFloor:    1,
		StagnationWindow:   10,
		StagnationTol:      1e-6,
		ViolationTol:       1e-6,
		Parallelism:        runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML config file, filling any zero-valued field
// from DefaultConfig so a partial file still runs, matching the
// teacher's tolerance for a sparse .sim input.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := io.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var parsed Config
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return cfg, err
	}
	if parsed.MeshSize != 0 {
		cfg.MeshSize = parsed.MeshSize
	}
	if parsed.ActivationFraction != 0 {
		cfg.ActivationFraction = parsed.ActivationFraction
	}
	if parsed.ActivationFloor != 0 {
		cfg.ActivationFloor = parsed.ActivationFloor
	}
	if parsed.StagnationWindow != 0 {
		cfg.StagnationWindow = parsed.StagnationWindow
	}
	if parsed.StagnationTol != 0 {
		cfg.StagnationTol = parsed.StagnationTol
	}
	if parsed.ViolationTol != 0 {
		cfg.ViolationTol = parsed.ViolationTol
	}
	if parsed.Parallelism != 0 {
		cfg.Parallelism = parsed.Parallelism
	}
	return cfg, nil
}
