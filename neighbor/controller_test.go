// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neighbor

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/mesh"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

func oneNodeSetup() (*particle.Registry, *state.Store) {
	m := &mesh.Mesh{Dim: 1, Nodes: [][3]float64{{0, 0, 0}}, Volumes: []float64{1}}
	geom, _ := geometry.New("sphere", []float64{0, 0, 0, 1e-3})
	cache := particle.NewRefParticleCache()
	rp := cache.Add(geom, m, 1e-3, 1.0)
	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Identity()})
	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)
	return reg, s
}

func TestSimpleAllAlwaysRebuilds(tst *testing.T) {
	chk.PrintTitle("neighbor controller: simple_all")
	reg, s := oneNodeSetup()
	c := NewController(SimpleAll{}, 1)
	if !c.Tick(reg, s) {
		tst.Fatal("expected rebuild on first tick")
	}
	if !c.Tick(reg, s) {
		tst.Fatal("expected rebuild every tick under simple_all")
	}
}

func TestMaxDistanceTravelSkipsSmallMoves(tst *testing.T) {
	chk.PrintTitle("neighbor controller: max_distance_travel")
	reg, s := oneNodeSetup()
	policy := &MaxDistanceTravel{SearchFactor: 0.1, Horizon: 1e-3}
	c := NewController(policy, 1)
	if !c.Tick(reg, s) {
		tst.Fatal("expected rebuild on first tick")
	}
	// move center a tiny amount, well under the tolerance (0.1*1e-3)
	s.SetX(0, [3]float64{1e-6, 0, 0})
	if c.Tick(reg, s) {
		tst.Fatal("expected no rebuild for a sub-tolerance move")
	}
	// move center far beyond tolerance
	s.SetX(0, [3]float64{1e-2, 0, 0})
	if !c.Tick(reg, s) {
		tst.Fatal("expected rebuild for a large move")
	}
}
