// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peridem wires parsed input, geometry/mesh construction, the
// particle registry, materials, contact, loading, and the time-stepping
// loop into one runnable simulation: read input, allocate domains, run
// the solver (writing VTU, .pvd and restart output as configured), then
// print success/failure and the elapsed time on exit. No max-shear-stress
// summary file is written.
package peridem

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/prashjha/PeriDEM-sub001/bond"
	"github.com/prashjha/PeriDEM-sub001/contact"
	"github.com/prashjha/PeriDEM-sub001/domain"
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/inp"
	"github.com/prashjha/PeriDEM-sub001/integrate"
	"github.com/prashjha/PeriDEM-sub001/loading"
	"github.com/prashjha/PeriDEM-sub001/material"
	"github.com/prashjha/PeriDEM-sub001/mesh"
	"github.com/prashjha/PeriDEM-sub001/neighbor"
	"github.com/prashjha/PeriDEM-sub001/out"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// Model holds everything needed to run one simulation end to end: the
// parsed input, the assembled domain, and output bookkeeping. There is
// no multi-process Nproc/Proc bookkeeping here — PeriDEM has no
// distributed-assembly analogue, so that concern is dropped (see
// DESIGN.md).
type Model struct {
	Input   *inp.Input
	Domain  *domain.Domain
	ShowMsg bool

	outDir     string
	collection out.Collection
}

// NewModel reads path, builds every collaborator (meshes, reference
// particles, the material/contact decks, the bond/contact engines, the
// integrator, and boundary/initial conditions), and returns a Model
// ready to Run.
func NewModel(path string, verbose bool) (*Model, error) {
	in, err := inp.ReadInput(path)
	if err != nil {
		return nil, err
	}

	zoneGeom := map[int]geometry.GeomObject{}
	zoneHorizon := map[int]float64{}
	zoneTolFactor := map[int]float64{}
	zoneIsWall := map[int]bool{}
	for _, pz := range in.Particle {
		g, err := geometry.New(pz.GeomKind, pz.GeomParams)
		if err != nil {
			return nil, chk.Err("peridem: particle zone %d: %v", pz.ZoneID, err)
		}
		zoneGeom[pz.ZoneID] = g
		zoneHorizon[pz.ZoneID] = pz.Horizon
		tol := pz.NearBoundaryTolFactor
		if tol == 0 {
			tol = 1.0
		}
		zoneTolFactor[pz.ZoneID] = tol
		zoneIsWall[pz.ZoneID] = pz.IsWall
	}

	zoneMesh := map[int]*mesh.Mesh{}
	for _, mz := range in.Mesh {
		m, err := loadMesh(mz.File)
		if err != nil {
			return nil, chk.Err("peridem: mesh zone %d: %v", mz.ZoneID, err)
		}
		m.Dim = in.Model.Dimension
		if len(m.Volumes) != len(m.Nodes) {
			if err := m.ComputeVolumesFromElements(); err != nil {
				return nil, chk.Err("peridem: mesh zone %d: %v", mz.ZoneID, err)
			}
		}
		zoneMesh[mz.ZoneID] = m
	}

	cache := particle.NewRefParticleCache()
	zoneRefID := map[int]int{}
	for zoneID, g := range zoneGeom {
		m, ok := zoneMesh[zoneID]
		if !ok {
			return nil, chk.Err("peridem: particle zone %d has no matching mesh zone", zoneID)
		}
		rp := cache.Add(g, m, zoneHorizon[zoneID], zoneTolFactor[zoneID])
		zoneRefID[zoneID] = rp.ID
	}

	zoneDensity := map[int]float64{}
	zoneMaterialKind := map[int]string{}
	zoneMaterialParams := map[int]material.Params{}
	for _, mz := range in.Material {
		zoneDensity[mz.ZoneID] = mz.Density
		zoneMaterialKind[mz.ZoneID] = mz.Kind
		zoneMaterialParams[mz.ZoneID] = material.Params{
			"BulkModulus":     mz.BulkModulus,
			"ShearModulus":    mz.ShearModulus,
			"Horizon":         zoneHorizon[mz.ZoneID],
			"CriticalStretch": mz.CriticalStrain,
			"Dimension":       float64(in.Model.Dimension),
		}
	}

	reg := particle.NewRegistry(cache)
	densities := []float64{}
	for pid, entry := range in.ParticleGeneration.Entries {
		transform := particle.Transform{
			Translation: geometry.Vec3{entry.X, entry.Y, entry.Z},
			Axis:        geometry.Vec3{0, 0, 1},
			Theta:       entry.Theta,
			Scale:       entry.Scale,
		}
		if transform.Scale == 0 {
			transform.Scale = 1
		}
		reg.Add(&particle.Info{
			ID:         pid,
			ZoneID:     entry.GeomID,
			RefID:      zoneRefID[entry.GeomID],
			Transform:  transform,
			Geom:       zoneGeom[entry.GeomID],
			IsWall:     zoneIsWall[entry.GeomID],
			MaterialID: entry.MaterialID,
			Density:    zoneDensity[entry.GeomID],
		})
		densities = append(densities, zoneDensity[entry.GeomID])
	}

	s := state.New(reg.TotalNodes())
	reg.BuildXRef(s)

	maxZone := -1
	for z := range zoneMaterialKind {
		if z > maxZone {
			maxZone = z
		}
	}
	zoneKinds := make([]string, maxZone+1)
	zoneParams := make([]material.Params, maxZone+1)
	for z, k := range zoneMaterialKind {
		zoneKinds[z] = k
		zoneParams[z] = zoneMaterialParams[z]
	}
	bondMats, err := domain.BuildBondMaterials(reg, zoneKinds, zoneParams)
	if err != nil {
		return nil, err
	}
	horizons := make([]float64, len(reg.Particles))
	for i, p := range reg.Particles {
		horizons[i] = zoneHorizon[p.ZoneID]
	}
	bondEngine := bond.NewEngine(reg)
	bondEngine.Build(s, horizons, bondMats)

	numZones := len(in.Particle)
	deckData := make([][]contact.PairDeck, numZones)
	for i := range deckData {
		deckData[i] = make([]contact.PairDeck, numZones)
		for j := range deckData[i] {
			deckData[i][j] = contact.DefaultPairDeck()
		}
	}
	for _, cz := range in.Contact {
		d := contact.DefaultPairDeck()
		d.Kn = cz.Kn
		d.VMax = cz.VMax
		d.DeltaMax = cz.DeltaMax
		d.DampingOn = cz.DampingOn
		d.Eps = cz.Epsilon
		if cz.KnFactor != 0 {
			d.KnFactor = cz.KnFactor
		}
		if cz.BetanFactor != 0 {
			d.BetanFactor = cz.BetanFactor
		}
		d.FrictionOn = cz.FrictionOn
		d.Mu = cz.Mu
		d.ContactR = cz.ContactRadius
		d.ComputeContactR = cz.ContactRadius == 0
		deckData[cz.ZoneI][cz.ZoneJ] = d
		deckData[cz.ZoneJ][cz.ZoneI] = d
	}
	contactEngine := contact.NewEngine(reg, contact.Deck{Data: deckData})

	var neighCtrl *neighbor.Controller
	interval := in.Neighbor.UpdateInterval
	if interval <= 0 {
		interval = 1
	}
	switch in.Neighbor.UpdateCriterion {
	case "max_distance_travel":
		factor := in.Neighbor.SearchFactor
		if factor == 0 {
			factor = 0.2
		}
		neighCtrl = neighbor.NewController(&neighbor.MaxDistanceTravel{SearchFactor: factor, Horizon: avgHorizon(horizons)}, interval)
	default:
		neighCtrl = neighbor.NewController(neighbor.SimpleAll{}, interval)
	}

	forceBCs := buildForceBCs(in.ForceBC)
	velocityBCs := buildVelocityBCs(in.DisplacementBC)
	ics := buildICs(in.IC)

	var stepper integrate.Stepper
	switch in.Model.TimeScheme {
	case "velocity_verlet":
		stepper = integrate.VelocityVerlet{}
	default:
		stepper = integrate.CentralDifference{}
	}

	dt := 0.0
	if in.Model.NumSteps > 0 {
		dt = in.Model.FinalTime / float64(in.Model.NumSteps)
	}

	var gravity [3]float64
	if len(in.Model.Gravity) == 3 {
		gravity = [3]float64{in.Model.Gravity[0], in.Model.Gravity[1], in.Model.Gravity[2]}
	}

	d := &domain.Domain{
		Registry:     reg,
		Store:        s,
		Bond:         bondEngine,
		Contact:      contactEngine,
		Stepper:      stepper,
		ForceBCs:     forceBCs,
		VelocityBCs:  velocityBCs,
		InitialConds: ics,
		NeighborCtrl: neighCtrl,
		Densities:    densities,
		Gravity:      gravity,
		Dt:           dt,
	}
	d.ApplyInitialConditions()

	m := &Model{
		Input:   in,
		Domain:  d,
		ShowMsg: verbose,
		outDir:  in.Output.Path,
	}
	return m, nil
}

func loadMesh(path string) (*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".vtu":
		return mesh.ReadVTU(path)
	default:
		return mesh.ReadGmsh(path)
	}
}

func avgHorizon(hs []float64) float64 {
	if len(hs) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range hs {
		sum += h
	}
	return sum / float64(len(hs))
}

func buildForceBCs(data []inp.BCData) []loading.ForceBC {
	out := make([]loading.ForceBC, len(data))
	for i, b := range data {
		out[i] = loading.ForceBC{BC: toBCBaseDeck(b)}
	}
	return out
}

func buildVelocityBCs(data []inp.BCData) []loading.VelocityBC {
	out := make([]loading.VelocityBC, len(data))
	for i, b := range data {
		mag := 1.0
		if len(b.Velocity) > 0 {
			mag = b.Velocity[0]
		}
		out[i] = loading.VelocityBC{BC: toBCBaseDeck(b), Magnitude: mag}
	}
	return out
}

func buildICs(data []inp.BCData) []loading.InitialCondition {
	out := make([]loading.InitialCondition, len(data))
	for i, b := range data {
		var v, w geometry.Vec3
		if len(b.Velocity) == 3 {
			v = geometry.Vec3{b.Velocity[0], b.Velocity[1], b.Velocity[2]}
		}
		if len(b.AngularVelocity) == 3 {
			w = geometry.Vec3{b.AngularVelocity[0], b.AngularVelocity[1], b.AngularVelocity[2]}
		}
		out[i] = loading.InitialCondition{BC: toBCBaseDeck(b), Velocity: v, AngularVelocity: w}
	}
	return out
}

func toBCBaseDeck(b inp.BCData) loading.BCBaseDeck {
	var region geometry.GeomObject
	if b.RegionGeomKind != "" {
		if g, err := geometry.New(b.RegionGeomKind, b.RegionGeomParams); err == nil {
			region = g
		}
	}
	return loading.BCBaseDeck{
		SelectionType:   loading.SelectionType(b.Selection),
		IsRegionActive:  region != nil,
		Region:          region,
		ParticleList:    b.ParticleList,
		ExcludeList:     b.ExcludeList,
		Direction:       b.Direction,
		SpatialFnType:   b.SpatialFnType,
		SpatialFnParams: b.SpatialFnParams,
		TimeFnType:      b.TimeFnType,
		TimeFnParams:    b.TimeFnParams,
	}
}

// Run executes the time-stepping loop to Input.Model.NumSteps, writing
// VTU/restart output at the configured intervals and printing a final
// success/failure message plus elapsed time via a defer-based onexit.
func (m *Model) Run() (err error) {
	start := time.Now()
	defer func() {
		if err == nil {
			if m.ShowMsg {
				io.PfGreen("> Success\n")
				io.Pf("> CPU time = %v\n", time.Since(start))
			}
		} else if m.ShowMsg {
			io.PfRed("> Failed: %v\n", err)
		}
	}()

	outInterval := m.Input.Output.Interval
	if outInterval <= 0 {
		outInterval = math.MaxInt32
	}
	restartInterval := m.Input.Restart.Interval
	restartEnabled := m.Input.Restart.Enable && restartInterval > 0

	if m.outDir != "" {
		if werr := m.writeStep(0); werr != nil {
			return werr
		}
	}

	for step := 1; step <= m.Input.Model.NumSteps; step++ {
		m.Domain.Step()

		if m.outDir != "" && step%outInterval == 0 {
			if werr := m.writeStep(step); werr != nil {
				return werr
			}
		}
		if restartEnabled && step%restartInterval == 0 {
			path := filepath.Join(m.Input.Restart.Path, fmt.Sprintf("restart_%d.gob", step))
			if werr := out.WriteRestart(path, "gob", step, m.Domain.Time, m.Domain.Store); werr != nil {
				return werr
			}
		}
	}

	if m.outDir != "" {
		if werr := m.collection.WritePVD(filepath.Join(m.outDir, "run.pvd")); werr != nil {
			return werr
		}
	}
	return nil
}

func (m *Model) writeStep(step int) error {
	file := fmt.Sprintf("step_%d.vtu", step)
	path := filepath.Join(m.outDir, file)
	conn := m.elementConnectivity()
	if err := out.WriteVTU(path, m.Domain.Store, 1, conn); err != nil {
		return err
	}
	m.collection.Add(m.Domain.Time, file)
	return nil
}

// elementConnectivity builds a flat per-node "vertex" cell list so every
// node is visible in the VTU file even when particles carry no shared
// mesh connectivity across instances (each node becomes its own VTK_VERTEX
// cell, type code 1).
func (m *Model) elementConnectivity() [][]int {
	n := m.Domain.Store.N()
	conn := make([][]int, n)
	for i := 0; i < n; i++ {
		conn[i] = []int{i}
	}
	return conn
}
