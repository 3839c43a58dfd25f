// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrate implements the explicit time-stepping schemes:
// central difference and velocity-Verlet, both applying gravity and
// fixity overrides identically, per spec.md §4.5.
package integrate

import (
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// ForceEvaluator computes forces into s.F from the current x, v (bond +
// contact + external loads); supplied by the domain wiring so steppers
// stay agnostic of which engines exist.
type ForceEvaluator func(s *state.Store, time float64)

// Stepper advances the simulation state by one step of size dt.
type Stepper interface {
	Step(s *state.Store, reg *particle.Registry, densities []float64, gravity [3]float64, evalForces ForceEvaluator, time, dt float64)
}

// clampAccel zeroes the acceleration on dofs with a's Fix bit set and
// returns it; called once per node before integrating velocity.
func clampAccel(a [3]float64, fix uint8) [3]float64 {
	for d := 0; d < 3; d++ {
		if fix&(1<<uint(d)) != 0 {
			a[d] = 0
		}
	}
	return a
}

// clampForce zeroes force components whose ForceFix bit is set, before
// converting force to acceleration (spec.md's force-fixity: dofs held
// at zero net force, e.g. symmetry planes).
func clampForce(f [3]float64, forceFix uint8) [3]float64 {
	for d := 0; d < 3; d++ {
		if forceFix&(1<<uint(d)) != 0 {
			f[d] = 0
		}
	}
	return f
}

// densityOf returns the density of the particle owning global node id.
func densityOf(ownerPID int, densities []float64) float64 {
	if ownerPID < 0 || ownerPID >= len(densities) {
		return 1
	}
	return densities[ownerPID]
}

// isWallOwner reports whether the particle owning global node id is a
// wall, per spec.md §4.5's "gravity applies to all non-wall particles".
func isWallOwner(reg *particle.Registry, ownerPID int) bool {
	if ownerPID < 0 || ownerPID >= len(reg.Particles) {
		return false
	}
	return reg.Particles[ownerPID].IsWall
}
