// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loading

import (
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/parallelfor"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// ForceBC is a BCBaseDeck specialized for force loading: the computed
// scalar load is applied along each axis named in Direction, matching
// particleFLoading.cpp's ParticleFLoading::apply.
type ForceBC struct {
	BC BCBaseDeck
}

// ApplyForceLoading adds the force contribution of every ForceBC to
// s.F, for every node of every selected particle, at time t. Matches
// the source's per-particle parallel-for-over-nodes structure via
// parallelfor.Range.
func ApplyForceLoading(bcs []ForceBC, reg *particle.Registry, s *state.Store, t float64) {
	for _, fbc := range bcs {
		bc := fbc.BC
		for _, p := range reg.Particles {
			if !NeedToProcessParticle(p.ID, bc) {
				continue
			}
			lo, hi := regionBox(bc, p)
			n := p.NumNodes(reg.Cache)
			parallelfor.Range(n, func(local int) {
				g := p.GlobalNodeID(local)
				x := s.XRef[g]
				if !NeedToComputeDof(x, p.ID, bc) {
					return
				}
				fmax := Evaluate(bc, t, x, lo, hi)
				var df geometry.Vec3
				for _, d := range bc.Direction {
					df[d-1] = fmax
				}
				s.AddF(g, df)
			})
		}
	}
}

// VelocityBC prescribes a fixed velocity along Direction on every
// selected node; the integrator enforces it via state.Store.Fix bits
// rather than by force, per spec.md's fixity/force-fixity convention.
type VelocityBC struct {
	BC        BCBaseDeck
	Magnitude float64
}

// ApplyVelocityLoading sets s.V and the corresponding state.Store.Fix
// bits for every node of every selected particle. Called once per step
// from the integrator (a prescribed velocity BC re-asserts itself every
// step, unlike a one-shot initial condition).
func ApplyVelocityLoading(bcs []VelocityBC, reg *particle.Registry, s *state.Store, t float64) {
	for _, vbc := range bcs {
		bc := vbc.BC
		for _, p := range reg.Particles {
			if !NeedToProcessParticle(p.ID, bc) {
				continue
			}
			lo, hi := regionBox(bc, p)
			n := p.NumNodes(reg.Cache)
			parallelfor.Range(n, func(local int) {
				g := p.GlobalNodeID(local)
				x := s.XRef[g]
				if !NeedToComputeDof(x, p.ID, bc) {
					return
				}
				val := Evaluate(bc, t, x, lo, hi) * vbc.Magnitude
				v := s.GetV(g)
				fix := s.Fix[g]
				for _, d := range bc.Direction {
					v[d-1] = val
					fix |= 1 << uint(d-1)
				}
				s.SetV(g, v)
				s.Fix[g] = fix
			})
		}
	}
}

func regionBox(bc BCBaseDeck, p *particle.Info) (lo, hi geometry.Vec3) {
	if bc.IsRegionActive && bc.Region != nil {
		return bc.Region.Box()
	}
	return p.Geom.Box()
}
