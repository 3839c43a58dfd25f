// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package neighbor implements the spatial-index rebuild cadence: when
// to rebuild the contact engine's coarse/fine indexes, per spec.md §4.6.
package neighbor

import (
	"math"

	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// Policy decides whether the spatial index needs rebuilding this step.
type Policy interface {
	NeedsRebuild(step int, reg *particle.Registry, s *state.Store) bool
	Reset(reg *particle.Registry, s *state.Store)
}

// Controller drives index rebuilds on behalf of the contact engine.
type Controller struct {
	Policy   Policy
	Interval int
	steps    int
}

// NewController returns a Controller with the given policy and a
// minimum rebuild interval (rebuilds never happen more often than every
// Interval steps, regardless of what Policy reports).
func NewController(policy Policy, interval int) *Controller {
	if interval < 1 {
		interval = 1
	}
	return &Controller{Policy: policy, Interval: interval}
}

// Tick advances the step counter and reports whether a rebuild should
// happen now, resetting the policy's internal tracking state when it
// does.
func (c *Controller) Tick(reg *particle.Registry, s *state.Store) bool {
	c.steps++
	if c.steps%c.Interval != 0 {
		return false
	}
	if !c.Policy.NeedsRebuild(c.steps, reg, s) {
		return false
	}
	c.Policy.Reset(reg, s)
	return true
}

// SimpleAll rebuilds on every tick that Interval allows, matching the
// simplest "update_criterion: simple_all" scheme.
type SimpleAll struct{}

func (SimpleAll) NeedsRebuild(step int, reg *particle.Registry, s *state.Store) bool { return true }
func (SimpleAll) Reset(reg *particle.Registry, s *state.Store)                       {}

// MaxDistanceTravel rebuilds only once any particle's center has moved
// more than SearchFactor * Horizon since the last rebuild. Horizon is the
// single value the caller supplies; neither the contact radius nor the
// particles' bounding spheres enter the threshold.
type MaxDistanceTravel struct {
	SearchFactor float64
	Horizon      float64
	lastCenters  [][3]float64
}

func (m *MaxDistanceTravel) NeedsRebuild(step int, reg *particle.Registry, s *state.Store) bool {
	if m.lastCenters == nil {
		return true
	}
	tol := m.SearchFactor * m.Horizon
	for i, p := range reg.Particles {
		c := p.XCenter(reg.Cache, s)
		if i >= len(m.lastCenters) {
			return true
		}
		if dist(c, m.lastCenters[i]) > tol {
			return true
		}
	}
	return false
}

func (m *MaxDistanceTravel) Reset(reg *particle.Registry, s *state.Store) {
	m.lastCenters = make([][3]float64, len(reg.Particles))
	for i, p := range reg.Particles {
		m.lastCenters[i] = p.XCenter(reg.Cache, s)
	}
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
