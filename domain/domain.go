// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package domain wires the state store, particle registry, bond engine,
// contact engine, neighbor controller, loading, and integrator into one
// runnable simulation, matching spec.md §2's system overview.
package domain

import (
	"github.com/prashjha/PeriDEM-sub001/bond"
	"github.com/prashjha/PeriDEM-sub001/contact"
	"github.com/prashjha/PeriDEM-sub001/integrate"
	"github.com/prashjha/PeriDEM-sub001/loading"
	"github.com/prashjha/PeriDEM-sub001/material"
	"github.com/prashjha/PeriDEM-sub001/neighbor"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// Domain owns every collaborator needed to run the simulation loop:
// bond pass -> contact pass -> external loads -> integrator, in that
// fixed order every step, per spec.md §5.
type Domain struct {
	Registry *particle.Registry
	Store    *state.Store

	Bond    *bond.Engine
	Contact *contact.Engine
	Stepper integrate.Stepper

	ForceBCs      []loading.ForceBC
	VelocityBCs   []loading.VelocityBC
	InitialConds  []loading.InitialCondition
	NeighborCtrl  *neighbor.Controller

	Densities []float64
	Gravity   [3]float64

	Dt        float64
	Time      float64
	StepCount int
}

// ApplyInitialConditions sets initial velocities per configured ICs;
// called once before the time loop starts.
func (d *Domain) ApplyInitialConditions() {
	loading.ApplyInitialConditions(d.InitialConds, d.Registry, d.Store)
}

// evalForces runs the bond pass, then the contact pass, then external
// loads — the fixed per-step order spec.md §5 requires. The bond,
// contact, and force-load passes write into s.F; the velocity loads then
// set s.V and s.Fix on their selected dofs. Both steppers call it once
// per step (CentralDifference before its update, VelocityVerlet after
// its drift).
func (d *Domain) evalForces(s *state.Store, time float64) {
	d.Bond.EvalForces(s)
	if d.Contact != nil {
		d.Contact.EvalForces(s)
	}
	loading.ApplyForceLoading(d.ForceBCs, d.Registry, s, time)
	loading.ApplyVelocityLoading(d.VelocityBCs, d.Registry, s, time)
}

// Step advances the simulation by one step of size d.Dt, rebuilding the
// contact spatial index first if the neighbor controller says it's due.
func (d *Domain) Step() {
	if d.NeighborCtrl != nil && d.Contact != nil && d.NeighborCtrl.Tick(d.Registry, d.Store) {
		d.Contact.RebuildIndex(d.Store)
	}
	d.Stepper.Step(d.Store, d.Registry, d.Densities, d.Gravity, d.evalForces, d.Time, d.Dt)
	d.Time += d.Dt
	d.StepCount++
}

// BuildBondMaterials resolves the per-particle bond material instance
// from each zone's material kind and parameters, producing the
// []material.BondMaterial slice bond.Engine.Build needs.
func BuildBondMaterials(reg *particle.Registry, zoneMaterialName []string, zoneParams []material.Params) ([]material.BondMaterial, error) {
	mats := make([]material.BondMaterial, len(reg.Particles))
	cache := map[int]material.BondMaterial{}
	for i, p := range reg.Particles {
		if m, ok := cache[p.ZoneID]; ok {
			mats[i] = m
			continue
		}
		m, err := material.New(zoneMaterialName[p.ZoneID])
		if err != nil {
			return nil, err
		}
		if err := m.Init(zoneParams[p.ZoneID]); err != nil {
			return nil, err
		}
		cache[p.ZoneID] = m
		mats[i] = m
	}
	return mats, nil
}
