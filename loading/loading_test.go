// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loading

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/geometry"
)

func TestNeedToProcessParticleIncludeList(tst *testing.T) {
	chk.PrintTitle("BC particle selection: include list")
	bc := BCBaseDeck{SelectionType: SelectionParticle, ParticleList: []int{1, 3}}
	if !NeedToProcessParticle(1, bc) {
		tst.Fatal("particle 1 should be processed")
	}
	if NeedToProcessParticle(2, bc) {
		tst.Fatal("particle 2 should be skipped")
	}
}

func TestNeedToProcessParticleExcludeList(tst *testing.T) {
	chk.PrintTitle("BC particle selection: exclude list")
	bc := BCBaseDeck{SelectionType: SelectionRegionWithExclude, ExcludeList: []int{2}}
	if NeedToProcessParticle(2, bc) {
		tst.Fatal("particle 2 should be skipped (excluded)")
	}
	if !NeedToProcessParticle(5, bc) {
		tst.Fatal("particle 5 should be processed")
	}
}

func TestNeedToComputeDofRegion(tst *testing.T) {
	chk.PrintTitle("BC dof selection: region")
	circle, _ := geometry.New("circle", []float64{0, 0, 0, 1})
	bc := BCBaseDeck{SelectionType: SelectionRegion, IsRegionActive: true, Region: circle}
	if !NeedToComputeDof(geometry.Vec3{0.1, 0, 0}, 0, bc) {
		tst.Fatal("point inside region should compute dof")
	}
	if NeedToComputeDof(geometry.Vec3{5, 5, 0}, 0, bc) {
		tst.Fatal("point outside region should not compute dof")
	}
}

func TestLinearStepFunc(tst *testing.T) {
	chk.PrintTitle("linear step time function")
	chk.Scalar(tst, "before", 1e-15, linearStepFunc(0, 1, 2), 0)
	chk.Scalar(tst, "mid", 1e-15, linearStepFunc(1.5, 1, 2), 0.5)
	chk.Scalar(tst, "after", 1e-15, linearStepFunc(3, 1, 2), 1)
}

func TestHatFunctionPeaksAtMidpoint(tst *testing.T) {
	chk.PrintTitle("hat function")
	chk.Scalar(tst, "lo", 1e-15, hatFunction(0, 0, 2), 0)
	chk.Scalar(tst, "mid", 1e-15, hatFunction(1, 0, 2), 1)
	chk.Scalar(tst, "hi", 1e-15, hatFunction(2, 0, 2), 0)
}
