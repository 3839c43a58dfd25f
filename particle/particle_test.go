// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/mesh"
	"github.com/prashjha/PeriDEM-sub001/state"
)

func unitSquareMesh() *mesh.Mesh {
	m := &mesh.Mesh{
		Dim: 2,
		Nodes: [][3]float64{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		},
		Volumes: []float64{0.25, 0.25, 0.25, 0.25},
	}
	return m
}

func TestBuildXRefTranslatesAndScales(tst *testing.T) {
	chk.PrintTitle("particle registry BuildXRef")

	m := unitSquareMesh()
	geom, err := geometry.New("square", []float64{0.5, 0.5, 0, 1.0})
	if err != nil {
		tst.Fatalf("geometry.New: %v", err)
	}

	cache := NewRefParticleCache()
	rp := cache.Add(geom, m, 0.1, 1.0)

	reg := NewRegistry(cache)
	tform := Transform{Translation: geometry.Vec3{10, 0, 0}, Axis: geometry.Vec3{0, 0, 1}, Scale: 2}
	reg.Add(&Info{ID: 0, RefID: rp.ID, Transform: tform})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	// node 0 of reference mesh is (0,0,0) -> scaled by 2, translated by (10,0,0)
	chk.Vector(tst, "node0", 1e-12, s.X[0][:], []float64{10, 0, 0})
	// node 2 is (1,1,0) -> scaled (2,2,0), translated (12,2,0)
	chk.Vector(tst, "node2", 1e-12, s.X[2][:], []float64{12, 2, 0})
	// a 2D mesh's nodal volume is an area, so it scales by Scale^2, not Scale^3
	chk.Scalar(tst, "vol0", 1e-12, s.Vol[0], 0.25*4)
}

func TestCenterNodeIsClosestToGeometryCenter(tst *testing.T) {
	chk.PrintTitle("particle ref center node")
	m := unitSquareMesh()
	geom, _ := geometry.New("square", []float64{0.5, 0.5, 0, 1.0})
	cache := NewRefParticleCache()
	rp := cache.Add(geom, m, 0.1, 1.0)
	// none of the four corner nodes sits exactly at the center (0.5,0.5) but
	// the closest one should be deterministic
	if rp.CenterNodeID < 0 || rp.CenterNodeID >= m.NumNodes() {
		tst.Fatalf("center node id out of range: %d", rp.CenterNodeID)
	}
	c := geom.Center()
	d2 := func(i int) float64 {
		x := m.Nodes[i]
		return (x[0]-c[0])*(x[0]-c[0]) + (x[1]-c[1])*(x[1]-c[1]) + (x[2]-c[2])*(x[2]-c[2])
	}
	for i := 0; i < m.NumNodes(); i++ {
		if d2(i) < d2(rp.CenterNodeID) {
			tst.Fatalf("node %d is closer to the center than chosen center node %d", i, rp.CenterNodeID)
		}
	}
}
