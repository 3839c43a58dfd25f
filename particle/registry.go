// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"math"

	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// Info describes one concrete particle: a reference particle placed in
// the domain by a Transform, owning a contiguous range of global node
// ids [GlobStart, GlobStart+NumNodes) in the shared state.Store, matching
// particle.h's Particle/BaseParticle split; the two are merged here since
// Go has no need for the inheritance the C++ hierarchy used to share code
// between particles and walls.
type Info struct {
	ID         int
	ZoneID     int
	RefID      int // index into RefParticleCache
	Transform  Transform
	Geom       geometry.GeomObject
	GlobStart  int // first global node id owned by this particle
	IsWall     bool
	MaterialID int
	Density    float64
}

// ComputeForce reports whether this particle participates as a force
// receiver (spec.md's compute_force flag). Walls are exactly the
// particles for which this is false: they exert contact force on
// deformable partners but never receive it.
func (p *Info) ComputeForce() bool { return !p.IsWall }

// NumNodes returns the node count of this particle (same as its
// reference particle's).
func (p *Info) NumNodes(cache *RefParticleCache) int {
	return cache.Get(p.RefID).NumNodes()
}

// GlobalNodeID maps a local node index within this particle to its
// global id in the shared state.Store.
func (p *Info) GlobalNodeID(local int) int { return p.GlobStart + local }

// CenterNodeGlobalID returns the global id of this particle's center node.
func (p *Info) CenterNodeGlobalID(cache *RefParticleCache) int {
	return p.GlobStart + cache.Get(p.RefID).CenterNodeID
}

// XCenter returns the current coordinate of the particle's center node,
// matching Particle::getXCenter.
func (p *Info) XCenter(cache *RefParticleCache, s *state.Store) geometry.Vec3 {
	return s.GetX(p.CenterNodeGlobalID(cache))
}

// VCenter returns the current velocity of the particle's center node.
func (p *Info) VCenter(cache *RefParticleCache, s *state.Store) geometry.Vec3 {
	return s.GetV(p.CenterNodeGlobalID(cache))
}

// Registry is the ordered collection of every concrete particle in the
// domain, plus the reference-particle cache they're built from.
type Registry struct {
	Cache     *RefParticleCache
	Particles []*Info
}

// NewRegistry returns an empty registry backed by cache.
func NewRegistry(cache *RefParticleCache) *Registry {
	return &Registry{Cache: cache}
}

// Add appends a new concrete particle to the registry.
func (r *Registry) Add(p *Info) { r.Particles = append(r.Particles, p) }

// TotalNodes sums NumNodes across every registered particle; used to size
// the shared state.Store before BuildXRef populates it.
func (r *Registry) TotalNodes() int {
	n := 0
	for _, p := range r.Particles {
		n += p.NumNodes(r.Cache)
	}
	return n
}

// BuildXRef assigns each particle's GlobStart in registration order and
// populates s.XRef, s.X, s.Vol, and s.OwnerPID by applying each
// particle's Transform to its reference particle's mesh nodes exactly
// once, per spec.md §4.2. s must already be sized via state.New(r.TotalNodes()).
func (r *Registry) BuildXRef(s *state.Store) {
	start := 0
	for _, p := range r.Particles {
		rp := r.Cache.Get(p.RefID)
		p.GlobStart = start
		for local := 0; local < rp.NumNodes(); local++ {
			g := start + local
			xref := p.Transform.Apply(rp.Mesh.Nodes[local])
			s.XRef[g] = xref
			s.X[g] = xref
			s.Vol[g] = rp.Mesh.Volumes[local] * math.Pow(p.Transform.Scale, float64(rp.Mesh.Dim))
			s.OwnerPID[g] = p.ID
		}
		start += rp.NumNodes()
	}
}
