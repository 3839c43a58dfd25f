// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bond implements the peridynamic bond engine: one-time
// intra-particle neighbor list construction and per-step force
// evaluation (and, for state-based materials, a dilatation/weighted-
// volume prepass), matching spec.md §4's bond engine component.
package bond

import (
	"math"

	"github.com/prashjha/PeriDEM-sub001/material"
	"github.com/prashjha/PeriDEM-sub001/parallelfor"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// perParticle holds the neighbor list and breakage bits for one
// concrete particle, indexed by local node id.
type perParticle struct {
	neigh  [][]int32 // neigh[local] = global ids of bonded nodes
	r0     [][]float64
	broken [][]byte // bit-packed, broken[local][k/8] bit (k%8)
}

// Engine owns the per-particle neighbor lists and breakage state and
// evaluates bond forces every step. One Engine per domain.
type Engine struct {
	reg  *particle.Registry
	data []perParticle // indexed by particle id (order of reg.Particles)
	mats []material.BondMaterial
}

// NewEngine returns an Engine bound to reg; call Build before the first
// EvalForces.
func NewEngine(reg *particle.Registry) *Engine {
	return &Engine{reg: reg}
}

// Build enumerates intra-particle bonds once: for every owned node, every
// other node of the same particle within the particle's horizon is a
// bond neighbor, mirroring spec.md §4.3's "O(N_p . K)" one-time
// neighbor-list construction. mats[i] is the bond material for
// reg.Particles[i].
func (e *Engine) Build(s *state.Store, horizons []float64, mats []material.BondMaterial) {
	e.mats = mats
	e.data = make([]perParticle, len(e.reg.Particles))
	for pi, p := range e.reg.Particles {
		n := p.NumNodes(e.reg.Cache)
		horizon := horizons[pi]
		pd := perParticle{
			neigh:  make([][]int32, n),
			r0:     make([][]float64, n),
			broken: make([][]byte, n),
		}
		parallelfor.Range(n, func(local int) {
			gi := p.GlobalNodeID(local)
			xi := s.XRef[gi]
			for j := 0; j < n; j++ {
				if j == local {
					continue
				}
				gj := p.GlobalNodeID(j)
				xj := s.XRef[gj]
				r0 := dist(xi, xj)
				if r0 <= horizon {
					pd.neigh[local] = append(pd.neigh[local], int32(gj))
					pd.r0[local] = append(pd.r0[local], r0)
				}
			}
			pd.broken[local] = make([]byte, (len(pd.neigh[local])+7)/8)
		})
		e.data[pi] = pd
	}
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func bitSet(b []byte, k int) bool  { return b[k/8]&(1<<uint(k%8)) != 0 }
func bitMark(b []byte, k int)      { b[k/8] |= 1 << uint(k%8) }

// EvalForces accumulates bond forces into s.F for every particle,
// breaking bonds whose stretch exceeds the material's critical stretch
// (monotone: once broken, a bond never reappears), and updates
// s.Z (node damage, the fraction of this node's original bonds now
// broken). For state-based materials a dilatation/weighted-volume
// prepass runs first via prepareState.
func (e *Engine) EvalForces(s *state.Store) {
	for pi, p := range e.reg.Particles {
		mat := e.mats[pi]
		if sm, ok := mat.(material.StateMaterial); ok && mat.NeedsStatePrepass() {
			e.prepareState(pi, p, sm, s)
		}
	}
	for pi, p := range e.reg.Particles {
		mat := e.mats[pi]
		n := p.NumNodes(e.reg.Cache)
		pd := &e.data[pi]
		parallelfor.Range(n, func(local int) {
			gi := p.GlobalNodeID(local)
			xi := s.GetX(gi)
			xrefI := s.XRef[gi]
			broken := 0
			total := len(pd.neigh[local])
			for k, gj32 := range pd.neigh[local] {
				if bitSet(pd.broken[local], k) {
					broken++
					continue
				}
				gj := int(gj32)
				r0 := pd.r0[local][k]
				xj := s.GetX(gj)
				xrefJ := s.XRef[gj]
				curLen := dist(xi, xj)
				refLen := dist(xrefI, xrefJ)
				stretch := (curLen - refLen) / refLen

				sc := mat.CriticalStretch(r0)
				if stretch > sc {
					bitMark(pd.broken[local], k)
					broken++
					continue
				}

				var mag float64
				if sm, ok := mat.(material.StateMaterial); ok && mat.NeedsStatePrepass() {
					mag = sm.PairwiseForce(r0, stretch, s.Theta[gi], s.M[gi], s.Theta[gj], s.M[gj])
				} else {
					mag = mat.BondForceMagnitude(r0, stretch)
				}

				dir := unit(sub(xj, xi))
				df := scl(dir, mag*s.Vol[gj])
				s.AddF(gi, df)
			}
			if total > 0 {
				s.Z[gi] = float64(broken) / float64(total)
			}
		})
	}
}

// prepareState computes dilatation theta and weighted volume m for every
// node of particle p, required before pairwise force evaluation for
// state-based materials (PDState), per spec.md §4.3.
func (e *Engine) prepareState(pi int, p *particle.Info, mat material.StateMaterial, s *state.Store) {
	n := p.NumNodes(e.reg.Cache)
	pd := &e.data[pi]
	parallelfor.Range(n, func(local int) {
		gi := p.GlobalNodeID(local)
		xi := s.GetX(gi)
		xrefI := s.XRef[gi]
		var m, thetaAccum float64
		for k, gj32 := range pd.neigh[local] {
			if bitSet(pd.broken[local], k) {
				continue
			}
			gj := int(gj32)
			r0 := pd.r0[local][k]
			xj := s.GetX(gj)
			xrefJ := s.XRef[gj]
			curLen := dist(xi, xj)
			refLen := dist(xrefI, xrefJ)
			stretch := (curLen - refLen) / refLen
			m += mat.WeightedVolumeIntegrand(r0) * s.Vol[gj]
			thetaAccum += mat.DilatationWeight(r0, stretch) * s.Vol[gj]
		}
		s.M[gi] = m
		if m > 0 {
			s.Theta[gi] = thetaAccum / m
		} else {
			s.Theta[gi] = 0
		}
	})
}

func sub(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func scl(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
func unit(a [3]float64) [3]float64 {
	n := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	if n < 1e-300 {
		return [3]float64{}
	}
	return [3]float64{a[0] / n, a[1] / n, a[2] / n}
}
