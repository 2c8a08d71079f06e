// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dlo

import "github.com/reniercloete/OpenDLO/geom"

// nodeDedupSq is the squared-distance threshold below which two nodes
// are considered the same point (spec.md §3: "de-duplicated on insert
// by squared distance < 10⁻²⁰").
const nodeDedupSq = 1e-20

// Node is a point in the domain's node arena. Its ID is 1-based and
// dense (ID = index+1 in Domain.Nodes); edges reference nodes by this
// ID rather than holding a pointer back into the arena, so the arena
// can grow and reallocate freely during discretisation.
type Node struct {
	Point geom.Point
	ID    int
}

// AddNode inserts p into the domain's node arena, de-duplicating by
// squared distance against every existing node. It returns the 1-based
// ID of the matched or newly created node.
func (d *Domain) AddNode(p geom.Point) int {
	for _, n := range d.Nodes {
		if n.Point.Sub(p).LengthSquared() < nodeDedupSq {
			return n.ID
		}
	}
	id := len(d.Nodes) + 1
	d.Nodes = append(d.Nodes, Node{Point: p, ID: id})
	return id
}

// NodePoint resolves a 1-based node ID to its coordinates.
func (d *Domain) NodePoint(id int) geom.Point {
	return d.Nodes[id-1].Point
}
