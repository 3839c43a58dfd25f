// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestCircleInsideAndBoundary(tst *testing.T) {
	chk.PrintTitle("circle inside/boundary")
	c := &Circle{C: Vec3{0, 0, 0}, R: 2.0}
	chk.Scalar(tst, "volume", 1e-10, c.Volume(), math.Pi*4)
	if !c.IsInside(Vec3{1, 0, 0}) {
		tst.Errorf("expected (1,0,0) inside circle of radius 2")
	}
	if c.IsInside(Vec3{3, 0, 0}) {
		tst.Errorf("expected (3,0,0) outside circle of radius 2")
	}
	if !c.IsNearBoundary(Vec3{2.0001, 0, 0}, 1e-3) {
		tst.Errorf("expected point just outside boundary to be near-boundary")
	}
}

func TestRectangleBox(tst *testing.T) {
	chk.PrintTitle("rectangle box")
	r := &Rectangle{C: Vec3{1, 1, 0}, Lx: 2, Ly: 4}
	lo, hi := r.Box()
	chk.Scalar(tst, "lo.x", 1e-12, lo[0], 0)
	chk.Scalar(tst, "hi.y", 1e-12, hi[1], 3)
	chk.Scalar(tst, "volume", 1e-12, r.Volume(), 8)
}

func TestAnnulusVolume(tst *testing.T) {
	chk.PrintTitle("annulus volume")
	a := &Annulus{
		Inner: &Circle{C: Vec3{0, 0, 0}, R: 1},
		Outer: &Circle{C: Vec3{0, 0, 0}, R: 2},
	}
	chk.Scalar(tst, "volume", 1e-10, a.Volume(), math.Pi*3)
	if a.IsInside(Vec3{0, 0, 0}) {
		tst.Errorf("center should be excluded from annulus")
	}
	if !a.IsInside(Vec3{1.5, 0, 0}) {
		tst.Errorf("(1.5,0,0) should be inside annulus")
	}
}

func TestTransformTranslatesAndScales(tst *testing.T) {
	chk.PrintTitle("transform circle")
	c := &Circle{C: Vec3{0, 0, 0}, R: 1}
	t := c.Transform(Vec3{5, 0, 0}, 2.0, Vec3{0, 0, 1}, 0)
	tc, ok := t.(*Circle)
	if !ok {
		tst.Fatalf("expected *Circle after transform")
	}
	chk.Scalar(tst, "R", 1e-12, tc.R, 2.0)
	chk.Scalar(tst, "C.x", 1e-12, tc.C[0], 5.0)
}
