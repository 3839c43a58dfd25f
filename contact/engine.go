// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import (
	"math"

	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// Engine finds node pairs across distinct particles within contact
// radius and applies normal-spring + damping + friction forces, per
// spec.md §4.4. Walls are particles with ComputeForce=false: they exert
// force on deformable partners but never receive it.
//
// Engine runs a two-level search: a CoarseIndex over particle bounding
// spheres culls the O(n^2) particle-pair space down to a candidate
// list, and a per-pair FineIndex over one particle's near-boundary
// nodes narrows that further to the actual node pairs within contact
// radius. The CoarseIndex (and its candidate-pair list) is rebuilt only
// when RebuildIndex is called — by the neighbor controller's cadence —
// so EvalForces itself never pays the full O(n^2) cost once a
// simulation has more than a couple of particles.
type Engine struct {
	reg  *particle.Registry
	deck Deck

	searchTol float64
	coarse    *CoarseIndex
	pairs     [][2]int
}

// NewEngine returns a contact Engine bound to reg and deck. searchTol
// for the coarse cull is set to the largest contact radius across every
// zone pair in deck, so no real candidate pair is missed between index
// rebuilds.
func NewEngine(reg *particle.Registry, deck Deck) *Engine {
	return &Engine{reg: reg, deck: deck, searchTol: maxContactR(deck)}
}

func maxContactR(deck Deck) float64 {
	var m float64
	for _, row := range deck.Data {
		for _, d := range row {
			if d.ContactR > m {
				m = d.ContactR
			}
		}
	}
	return m
}

// RebuildIndex recomputes the CoarseIndex from the registry's current
// particle centers and refreshes the cached candidate-pair list. Called
// by the neighbor controller whenever it decides a rebuild is due; also
// called lazily by EvalForces the first time it runs.
func (e *Engine) RebuildIndex(s *state.Store) {
	centers := make([][3]float64, len(e.reg.Particles))
	radii := make([]float64, len(e.reg.Particles))
	for i, p := range e.reg.Particles {
		centers[i] = p.XCenter(e.reg.Cache, s)
		radii[i] = e.reg.Cache.Get(p.RefID).Radius * p.Transform.Scale
	}
	e.coarse = NewCoarseIndex(centers, radii)
	e.pairs = e.coarse.CandidatePairs(e.searchTol)
}

// EvalForces accumulates contact forces into s.F for every candidate
// pair of particles found by the cached CoarseIndex, narrowing each
// pair to actual node-node contacts with a fresh FineIndex built from
// current node positions.
func (e *Engine) EvalForces(s *state.Store) {
	if e.coarse == nil {
		e.RebuildIndex(s)
	}
	for _, pair := range e.pairs {
		pa, pb := e.reg.Particles[pair[0]], e.reg.Particles[pair[1]]
		deck := e.deck.Get(pa.ZoneID, pb.ZoneID)
		e.evalPair(pa, pb, deck, s)
	}
}

func (e *Engine) evalPair(pa, pb *particle.Info, deck PairDeck, s *state.Store) {
	cache := e.reg.Cache
	rpA := cache.Get(pa.RefID)
	rpB := cache.Get(pb.RefID)
	rc := deck.ContactR

	fineB := e.buildFineIndex(pb, rpB, s)
	for _, li := range rpA.BoundaryNode {
		gi := pa.GlobalNodeID(li)
		xi := s.GetX(gi)
		for _, gj := range fineB.Within(xi, rc) {
			xj := s.GetX(gj)
			d := dist(xi, xj)
			if d == 0 {
				continue
			}
			applyContactForce(gi, gj, xi, xj, d, deck, pa.IsWall, pb.IsWall, pa.ComputeForce(), pb.ComputeForce(), s)
		}
	}
}

// buildFineIndex indexes p's near-boundary nodes at their current
// positions, for use as the inner search structure of one candidate
// pair's node scan.
func (e *Engine) buildFineIndex(p *particle.Info, rp *particle.RefParticle, s *state.Store) *FineIndex {
	ids := make([]int, len(rp.BoundaryNode))
	coords := make([][3]float64, len(rp.BoundaryNode))
	for k, li := range rp.BoundaryNode {
		gi := p.GlobalNodeID(li)
		ids[k] = gi
		coords[k] = s.GetX(gi)
	}
	return NewFineIndex(ids, coords)
}

// applyContactForce applies the normal-spring, damping, and friction
// force to node pair (gi, gj), per spec.md §4.4's per-contact formulas.
// isAWall/isBWall select the particle-wall spring/damping factors
// (GetWKn/GetWBetan, a function of the deformable side's node volume
// alone) over the particle-particle ones (GetKn/GetBetan, a function of
// both nodes' volumes), matching contactDeck.h's two accessor families.
// Force is applied to gi only if computeForceA, and (negated) to gj only
// if computeForceB (wall partners with ComputeForce=false never receive
// force).
func applyContactForce(gi, gj int, xi, xj [3]float64, d float64, deck PairDeck, isAWall, isBWall, computeForceA, computeForceB bool, s *state.Store) {
	n := [3]float64{(xi[0] - xj[0]) / d, (xi[1] - xj[1]) / d, (xi[2] - xj[2]) / d}
	deltaC := deck.ContactR - d

	vi := s.GetV(gi)
	vj := s.GetV(gj)
	vrel := [3]float64{vi[0] - vj[0], vi[1] - vj[1], vi[2] - vj[2]}
	vn := dot(vrel, n)
	vnVec := scl(n, vn)
	vt := [3]float64{vrel[0] - vnVec[0], vrel[1] - vnVec[1], vrel[2] - vnVec[2]}

	voli, volj := s.Vol[gi], s.Vol[gj]
	var kn, betan float64
	switch {
	case isAWall:
		kn, betan = deck.GetWKn(volj), deck.GetWBetan(volj)
	case isBWall:
		kn, betan = deck.GetWKn(voli), deck.GetWBetan(voli)
	default:
		kn, betan = deck.GetKn(voli, volj), deck.GetBetan(voli, volj)
	}
	kn *= deck.KnFactor
	betan *= deck.BetanFactor
	fnMag := kn * deltaC
	fn := scl(n, fnMag)

	var fd [3]float64
	if deck.DampingOn {
		fd = scl(n, -betan*vn)
	}

	var ff [3]float64
	if deck.FrictionOn {
		vtMag := math.Sqrt(dot(vt, vt))
		if vtMag > 1e-300 {
			ffMag := math.Min(deck.Mu*math.Abs(fnMag), deck.Kappa*vtMag)
			ff = scl(scl(vt, 1.0/vtMag), -ffMag)
		}
	}

	total := add(add(fn, fd), ff)
	if computeForceA {
		s.AddF(gi, total)
	}
	if computeForceB {
		s.AddF(gj, scl(total, -1))
	}
}

func dot(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func scl(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
func add(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
