// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_segment01(tst *testing.T) {

	chk.PrintTitle("segment01: cache and slope")

	s := NewSegment(Pt(0, 0), Pt(4, 3))
	chk.Scalar(tst, "length", 1e-15, s.Length(), 5.0)
	chk.Scalar(tst, "slope", 1e-15, s.Slope(), 0.75)

	vertical := NewSegment(Pt(2, -1), Pt(2, 5))
	if !math.IsInf(vertical.Slope(), 1) {
		tst.Errorf("vertical segment should report +Inf slope, got %v", vertical.Slope())
	}
}

func Test_segment02(tst *testing.T) {

	chk.PrintTitle("segment02: perpendicular distance")

	s := NewSegment(Pt(0, 0), Pt(10, 0))
	chk.Scalar(tst, "on-axis point", 1e-12, s.DistanceTo(Pt(5, 3)), 3.0)

	// beyond the segment's extent: distance falls back to nearest endpoint
	far := s.DistanceTo(Pt(15, 0))
	chk.Scalar(tst, "beyond endpoint", 1e-12, far, 5.0)
}
