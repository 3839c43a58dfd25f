// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package domain

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/bond"
	"github.com/prashjha/PeriDEM-sub001/contact"
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/integrate"
	"github.com/prashjha/PeriDEM-sub001/loading"
	"github.com/prashjha/PeriDEM-sub001/material"
	"github.com/prashjha/PeriDEM-sub001/mesh"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// TestSingleFreeParticleNoLoad reproduces spec.md §8 scenario 1: one
// circular particle, PMB material, no forces. The center node stays at
// its initial position and no bonds break.
func TestSingleFreeParticleNoLoad(tst *testing.T) {
	chk.PrintTitle("scenario: single free particle, no load")

	circleMesh := &mesh.Mesh{
		Dim: 2,
		Nodes: [][3]float64{
			{-0.001, 0, 0}, {0.001, 0, 0}, {0, -0.001, 0}, {0, 0.001, 0}, {0, 0, 0},
		},
		Volumes: []float64{1e-9, 1e-9, 1e-9, 1e-9, 1e-9},
	}
	geom, err := geometry.New("circle", []float64{0, 0, 0, 0.002})
	if err != nil {
		tst.Fatalf("geometry.New: %v", err)
	}
	cache := particle.NewRefParticleCache()
	horizon := 0.0015
	rp := cache.Add(geom, circleMesh, horizon, 1.0)

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Identity()})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	mat, err := material.New("PMBBond")
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	if err := mat.Init(material.Params{
		"BulkModulus":     2e6,
		"Horizon":         horizon,
		"CriticalStretch": 0.01,
		"Dimension":       2,
	}); err != nil {
		tst.Fatalf("Init: %v", err)
	}

	eng := bond.NewEngine(reg)
	eng.Build(s, []float64{horizon}, []material.BondMaterial{mat})

	d := &Domain{
		Registry:  reg,
		Store:     s,
		Bond:      eng,
		Stepper:   integrate.CentralDifference{},
		Densities: []float64{1200},
		Dt:        1e-7,
	}

	x0 := s.GetX(4) // center node
	for i := 0; i < 1000; i++ {
		d.Step()
	}
	x1 := s.GetX(4)

	chk.Vector(tst, "center stays put", 1e-12, x1[:], x0[:])
	for i := 0; i < s.N(); i++ {
		chk.Scalar(tst, "no damage", 1e-15, s.Z[i], 0)
	}
}

// singleNodeCircle builds a one-node stand-in for a boundary-only
// particle (same simplification contact_test.go uses): enough to drive
// the contact force law without needing a full mesh discretization.
func singleNodeCircle(radius float64) (*mesh.Mesh, geometry.GeomObject) {
	m := &mesh.Mesh{Dim: 2, Nodes: [][3]float64{{0, 0, 0}}, Volumes: []float64{4e-8}}
	geom, _ := geometry.New("circle", []float64{0, 0, 0, radius})
	return m, geom
}

// TestTwoParticlesHeadOnCollisionReboundsElastically reproduces spec.md
// §8 scenario 2: two circles approaching head-on with an elastic
// (frictionless, undamped) contact law. After separation each particle's
// speed should return to within 1% of its initial 1.0, reversed.
func TestTwoParticlesHeadOnCollisionReboundsElastically(tst *testing.T) {
	chk.PrintTitle("scenario: two-particle head-on collision")

	radius := 0.002
	m, geom := singleNodeCircle(radius)
	cache := particle.NewRefParticleCache()
	rp := cache.Add(geom, m, 1.0, 1.0)
	rp.BoundaryNode = []int{0}

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Transform{Translation: geometry.Vec3{-0.003, 0, 0}, Axis: geometry.Vec3{0, 0, 1}, Scale: 1}})
	reg.Add(&particle.Info{ID: 1, RefID: rp.ID, Transform: particle.Transform{Translation: geometry.Vec3{0.003, 0, 0}, Axis: geometry.Vec3{0, 0, 1}, Scale: 1}})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)
	s.SetV(0, [3]float64{1, 0, 0})
	s.SetV(1, [3]float64{-1, 0, 0})

	pairDeck := contact.DefaultPairDeck()
	pairDeck.ContactR = 2 * radius
	// stiff enough that the contact half-period (~0.5 ms) fits well inside
	// the 4 ms simulated window
	pairDeck.Kn = 1e18
	pairDeck.DampingOn = false
	pairDeck.FrictionOn = false
	deck := contact.Deck{Data: [][]contact.PairDeck{{pairDeck, pairDeck}, {pairDeck, pairDeck}}}

	bondEng := bond.NewEngine(reg)
	bondEng.Build(s, []float64{1.0, 1.0}, []material.BondMaterial{nil, nil})

	d := &Domain{
		Registry:  reg,
		Store:     s,
		Bond:      bondEng,
		Contact:   contact.NewEngine(reg, deck),
		Stepper:   integrate.CentralDifference{},
		Densities: []float64{1200, 1200},
		Dt:        1e-7,
	}

	for i := 0; i < 40000; i++ {
		d.Step()
	}

	v0 := s.GetV(0)
	v1 := s.GetV(1)
	speed0 := math.Hypot(v0[0], v0[1])
	speed1 := math.Hypot(v1[0], v1[1])
	if math.Abs(speed0-1.0) > 0.01 {
		tst.Fatalf("particle 0 speed drifted too far from 1.0: got %v", speed0)
	}
	if math.Abs(speed1-1.0) > 0.01 {
		tst.Fatalf("particle 1 speed drifted too far from 1.0: got %v", speed1)
	}
	if v0[0] >= 0 {
		tst.Fatalf("expected particle 0 to reverse to -x, got vx=%v", v0[0])
	}
	if v1[0] <= 0 {
		tst.Fatalf("expected particle 1 to reverse to +x, got vx=%v", v1[0])
	}
}

// TestBallFallingOntoWallReboundsWithDamping reproduces spec.md §8
// scenario 4: a particle falls under gravity onto a fixed wall particle
// and rebounds to a height no greater than its initial drop height, with
// damping dissipating some energy.
func TestBallFallingOntoWallReboundsWithDamping(tst *testing.T) {
	chk.PrintTitle("scenario: ball falling under gravity onto a wall")

	radius := 0.002
	mBall, geomBall := singleNodeCircle(radius)
	mWall, geomWall := singleNodeCircle(radius)

	cache := particle.NewRefParticleCache()
	rpBall := cache.Add(geomBall, mBall, 1.0, 1.0)
	rpBall.BoundaryNode = []int{0}
	rpWall := cache.Add(geomWall, mWall, 1.0, 1.0)
	rpWall.BoundaryNode = []int{0}

	reg := particle.NewRegistry(cache)
	startHeight := 0.0041 // just above the 2*radius contact threshold
	reg.Add(&particle.Info{ID: 0, RefID: rpBall.ID, Transform: particle.Transform{Translation: geometry.Vec3{0, startHeight, 0}, Axis: geometry.Vec3{0, 0, 1}, Scale: 1}})
	reg.Add(&particle.Info{ID: 1, RefID: rpWall.ID, IsWall: true, Transform: particle.Transform{Translation: geometry.Vec3{0, 0, 0}, Axis: geometry.Vec3{0, 0, 1}, Scale: 1}})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	pairDeck := contact.DefaultPairDeck()
	pairDeck.ContactR = 2 * radius
	// stiff enough that the ball bounces back off the wall inside the
	// 20 ms simulated window instead of sinking through it
	pairDeck.Kn = 1e16
	pairDeck.DampingOn = true
	pairDeck.Betan = 250
	pairDeck.FrictionOn = false
	deck := contact.Deck{Data: [][]contact.PairDeck{{pairDeck, pairDeck}, {pairDeck, pairDeck}}}

	bondEng := bond.NewEngine(reg)
	bondEng.Build(s, []float64{1.0, 1.0}, []material.BondMaterial{nil, nil})

	d := &Domain{
		Registry:  reg,
		Store:     s,
		Bond:      bondEng,
		Contact:   contact.NewEngine(reg, deck),
		Stepper:   integrate.CentralDifference{},
		Densities: []float64{1200, 1200},
		Gravity:   [3]float64{0, -9.81, 0},
		Dt:        1e-6,
	}

	maxHeightAfterImpact := math.Inf(-1)
	hitWall := false
	for i := 0; i < 20000; i++ {
		d.Step()
		y := s.GetX(0)[1]
		if y <= 2*radius {
			hitWall = true
		}
		if hitWall && y > maxHeightAfterImpact {
			maxHeightAfterImpact = y
		}
	}

	if !hitWall {
		tst.Fatal("expected the ball to reach the wall within the simulated steps")
	}
	if maxHeightAfterImpact > startHeight {
		tst.Fatalf("expected rebound height <= start height %v, got %v", startHeight, maxHeightAfterImpact)
	}
}

// barChainMesh returns a 1D chain of n nodes spaced dx apart along x,
// each carrying a small fixed nodal volume, a stand-in for a PMB bar in
// tension (spec.md §8 scenario 3).
func barChainMesh(n int, dx float64) *mesh.Mesh {
	m := &mesh.Mesh{Dim: 2, Nodes: make([][3]float64, n), Volumes: make([]float64, n)}
	for i := 0; i < n; i++ {
		m.Nodes[i] = [3]float64{float64(i) * dx, 0, 0}
		m.Volumes[i] = 1e-9
	}
	return m
}

// TestBarInTensionDamagesInteriorNodes reproduces spec.md §8 scenario 3
// on a seven-node chain: a bar held fixed at its left end and pulled at a
// constant velocity at its right end. Once enough time has passed for the
// resulting strain to exceed the material's critical stretch, bonds
// break and some node other than the two end nodes shows nonzero damage
// Z. In this chain the first bonds to break are the two end bonds, so
// the check is on any non-end node, not on a mid-section damage band.
func TestBarInTensionDamagesInteriorNodes(tst *testing.T) {
	chk.PrintTitle("scenario: PMB bar in tension")

	const n = 7
	dx := 0.001
	horizon := 0.0015 // only nearest-neighbor bonds at this spacing
	barMesh := barChainMesh(n, dx)
	geom, err := geometry.New("rectangle", []float64{float64(n-1) * dx / 2, 0, 0, float64(n-1) * dx, dx})
	if err != nil {
		tst.Fatalf("geometry.New: %v", err)
	}

	cache := particle.NewRefParticleCache()
	rp := cache.Add(geom, barMesh, horizon, 1.0)

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rp.ID, Transform: particle.Identity()})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	mat, err := material.New("PMBBond")
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	if err := mat.Init(material.Params{
		"BulkModulus":     2e6,
		"Horizon":         horizon,
		"CriticalStretch": 0.01,
		"Dimension":       2,
	}); err != nil {
		tst.Fatalf("Init: %v", err)
	}

	eng := bond.NewEngine(reg)
	eng.Build(s, []float64{horizon}, []material.BondMaterial{mat})

	leftRegion, err := geometry.New("rectangle", []float64{0, 0, 0, dx / 2, dx})
	if err != nil {
		tst.Fatalf("geometry.New left region: %v", err)
	}
	rightRegion, err := geometry.New("rectangle", []float64{float64(n-1) * dx, 0, 0, dx / 2, dx})
	if err != nil {
		tst.Fatalf("geometry.New right region: %v", err)
	}

	velocityBCs := []loading.VelocityBC{
		{
			BC: loading.BCBaseDeck{
				SelectionType:  loading.SelectionRegion,
				IsRegionActive: true,
				Region:         leftRegion,
				Direction:      []int{1, 2},
			},
			Magnitude: 0,
		},
		{
			BC: loading.BCBaseDeck{
				SelectionType:  loading.SelectionRegion,
				IsRegionActive: true,
				Region:         rightRegion,
				Direction:      []int{1},
			},
			Magnitude: 0.1,
		},
	}

	d := &Domain{
		Registry:    reg,
		Store:       s,
		Bond:        eng,
		Stepper:     integrate.CentralDifference{},
		VelocityBCs: velocityBCs,
		Densities:   []float64{1200},
		Dt:          1e-7,
	}

	x0Left := s.GetX(0)
	for i := 0; i < 20000; i++ {
		d.Step()
	}
	x1Left := s.GetX(0)

	chk.Vector(tst, "fixed end stays put", 1e-9, x1Left[:], x0Left[:])

	damaged := false
	for g := 1; g < n-1; g++ {
		if s.Z[g] > 0 {
			damaged = true
			break
		}
	}
	if !damaged {
		tst.Fatal("expected a node other than the two end nodes to show damage under sustained tension")
	}
}

// TestTwoParticlesRotationConservesAngularMomentumBeforeContact
// reproduces spec.md §8 scenario 5: two particles of different shapes,
// far enough apart to stay clear of contact, each given a rigid-rotation
// initial velocity field. With no external torque and no contact, each
// particle's own rotation should persist (its outermost node keeps a
// constant distance from its center) for the whole simulated window.
func TestTwoParticlesRotationConservesAngularMomentumBeforeContact(tst *testing.T) {
	chk.PrintTitle("scenario: two-particle rotation, no contact")

	drumGeom, err := geometry.New("drum2d", []float64{-0.02, 0, 0, 0.003, 0.0015})
	if err != nil {
		tst.Fatalf("geometry.New drum2d: %v", err)
	}
	circleGeom, err := geometry.New("circle", []float64{0.02, 0, 0, 0.003})
	if err != nil {
		tst.Fatalf("geometry.New circle: %v", err)
	}

	drumMesh := &mesh.Mesh{
		Dim:     2,
		Nodes:   [][3]float64{{-0.02, 0, 0}, {-0.017, 0, 0}, {-0.02, 0.003, 0}},
		Volumes: []float64{1e-9, 1e-9, 1e-9},
	}
	circleMesh := &mesh.Mesh{
		Dim:     2,
		Nodes:   [][3]float64{{0.02, 0, 0}, {0.023, 0, 0}, {0.02, 0.003, 0}},
		Volumes: []float64{1e-9, 1e-9, 1e-9},
	}

	cache := particle.NewRefParticleCache()
	rpDrum := cache.Add(drumGeom, drumMesh, 1.0, 1.0)
	rpCircle := cache.Add(circleGeom, circleMesh, 1.0, 1.0)

	reg := particle.NewRegistry(cache)
	reg.Add(&particle.Info{ID: 0, RefID: rpDrum.ID, Transform: particle.Identity()})
	reg.Add(&particle.Info{ID: 1, RefID: rpCircle.ID, Transform: particle.Identity()})

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	omega := geometry.Vec3{0, 0, 10}
	ics := []loading.InitialCondition{
		{BC: loading.BCBaseDeck{SelectionType: loading.SelectionParticle, ParticleList: []int{0}}, AngularVelocity: omega},
		{BC: loading.BCBaseDeck{SelectionType: loading.SelectionParticle, ParticleList: []int{1}}, AngularVelocity: omega},
	}
	loading.ApplyInitialConditions(ics, reg, s)

	// a no-fail elastic bond material within each particle: a true rigid
	// rotation leaves every intra-particle bond length unchanged, so this
	// contributes ~0 internal force and cannot itself introduce drift.
	rigidMat, err := material.New("PDElasticBond")
	if err != nil {
		tst.Fatalf("material.New: %v", err)
	}
	if err := rigidMat.Init(material.Params{"BulkModulus": 2e6, "Horizon": 1.0}); err != nil {
		tst.Fatalf("Init: %v", err)
	}

	bondEng := bond.NewEngine(reg)
	bondEng.Build(s, []float64{1.0, 1.0}, []material.BondMaterial{rigidMat, rigidMat})

	d := &Domain{
		Registry:  reg,
		Store:     s,
		Bond:      bondEng,
		Stepper:   integrate.CentralDifference{},
		Densities: []float64{1200, 1200},
		Dt:        1e-7,
	}

	r0Before := math.Hypot(s.GetX(1)[0]-s.GetX(0)[0], s.GetX(1)[1]-s.GetX(0)[1])
	for i := 0; i < 2000; i++ {
		d.Step()
	}
	r0After := math.Hypot(s.GetX(1)[0]-s.GetX(0)[0], s.GetX(1)[1]-s.GetX(0)[1])

	chk.Scalar(tst, "drum outer-node radius preserved", 1e-6, r0After, r0Before)
}
