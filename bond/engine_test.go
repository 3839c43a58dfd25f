// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bond

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/material"
	"github.com/prashjha/PeriDEM-sub001/mesh"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// twoNodeMesh returns a trivial 1D-like two-node mesh separated by gap
// along x, equal volumes, used to exercise a single bond in isolation.
func twoNodeMesh(gap float64) *mesh.Mesh {
	return &mesh.Mesh{
		Dim:     1,
		Nodes:   [][3]float64{{0, 0, 0}, {gap, 0, 0}},
		Volumes: []float64{1e-9, 1e-9},
	}
}

func TestEvalForcesOppositeOnBothNodes(tst *testing.T) {
	chk.PrintTitle("bond engine: Newton's third law within a bond")

	m := twoNodeMesh(1e-3)
	geom, _ := geometry.New("line", []float64{0, 0, 0, 1e-3, 0, 0})
	cache := particle.NewRefParticleCache()
	rp := cache.Add(geom, m, 2e-3, 1.0)

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Identity()})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)
	// stretch the bond: move node 1 further away
	s.SetX(1, [3]float64{1.5e-3, 0, 0})

	mat, err := material.New("PMBBond")
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	if err := mat.Init(material.Params{
		"BulkModulus":     1e6,
		"Horizon":         2e-3,
		"CriticalStretch": 10, // never breaks for this test
		"Dimension":       1,
	}); err != nil {
		tst.Fatalf("Init: %v", err)
	}

	eng := NewEngine(reg)
	eng.Build(s, []float64{2e-3}, []material.BondMaterial{mat})
	eng.EvalForces(s)

	f0 := s.GetF(0)
	f1 := s.GetF(1)
	chk.Vector(tst, "opposite forces", 1e-18, []float64{f0[0] + f1[0], f0[1] + f1[1], f0[2] + f1[2]}, []float64{0, 0, 0})
	if f0[0] <= 0 {
		tst.Fatalf("expected node 0 pulled toward node 1 (positive x), got %v", f0[0])
	}
}

func TestEvalForcesBreaksAboveCriticalStretch(tst *testing.T) {
	chk.PrintTitle("bond engine: breakage")

	m := twoNodeMesh(1e-3)
	geom, _ := geometry.New("line", []float64{0, 0, 0, 1e-3, 0, 0})
	cache := particle.NewRefParticleCache()
	rp := cache.Add(geom, m, 2e-3, 1.0)

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Identity()})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)
	s.SetX(1, [3]float64{2e-3, 0, 0}) // stretch = 1.0, way above critical

	mat, _ := material.New("PMBBond")
	mat.Init(material.Params{
		"BulkModulus":     1e6,
		"Horizon":         2e-3,
		"CriticalStretch": 0.01,
		"Dimension":       1,
	})

	eng := NewEngine(reg)
	eng.Build(s, []float64{2e-3}, []material.BondMaterial{mat})
	eng.EvalForces(s)

	chk.Scalar(tst, "node0 damage", 1e-15, s.Z[0], 1.0)
	chk.Scalar(tst, "node0 force (broken, zero)", 1e-15, s.GetF(0)[0], 0)
}
