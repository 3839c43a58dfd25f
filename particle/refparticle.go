// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package particle

import (
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/mesh"
)

// RefParticle holds the mesh and geometry shared by every concrete
// particle instantiated from the same zone: many transformed instances
// index into one RefParticle rather than duplicating its mesh, matching
// refParticle.h.
type RefParticle struct {
	ID           int
	Geom         geometry.GeomObject
	Mesh         *mesh.Mesh
	CenterNodeID int
	Radius       float64
	BoundaryNode []int   // ids of nodes near the reference particle's boundary
	interior     []bool  // per-node interior flag, len == Mesh.NumNodes()
}

// NumNodes returns the node count of the reference mesh.
func (r *RefParticle) NumNodes() int { return r.Mesh.NumNodes() }

// IsInteriorNode reports whether node i lies in the reference particle's
// interior (as opposed to near its boundary).
func (r *RefParticle) IsInteriorNode(i int) bool {
	if i < 0 || i >= len(r.interior) {
		return true
	}
	return r.interior[i]
}

// RefParticleCache is an append-only arena of reference particles: every
// Add call appends a new entry (NewModel adds one per particle zone), and
// zones with the same geometry and mesh are not merged. Built once at
// domain construction; never mutated afterward.
type RefParticleCache struct {
	refs []*RefParticle
}

// NewRefParticleCache returns an empty cache.
func NewRefParticleCache() *RefParticleCache {
	return &RefParticleCache{}
}

// Add builds a RefParticle from a geometry object and mesh, computing its
// center node (closest mesh node to the geometry's center) and interior/
// boundary classification using nearBdTolFactor*horizon as the
// near-boundary tolerance (spec.md Open Question on near-boundary
// tolerance, resolved in SPEC_FULL.md).
func (c *RefParticleCache) Add(geom geometry.GeomObject, m *mesh.Mesh, horizon, nearBdTolFactor float64) *RefParticle {
	rp := &RefParticle{
		ID:     len(c.refs),
		Geom:   geom,
		Mesh:   m,
		Radius: geom.BoundingRadius(),
	}
	rp.CenterNodeID = closestNode(m, geom.Center())
	tol := nearBdTolFactor * horizon
	rp.interior = make([]bool, m.NumNodes())
	for i := 0; i < m.NumNodes(); i++ {
		x := m.Nodes[i]
		if geom.IsNearBoundary(x, tol) {
			rp.interior[i] = false
			rp.BoundaryNode = append(rp.BoundaryNode, i)
		} else {
			rp.interior[i] = true
		}
	}
	c.refs = append(c.refs, rp)
	return rp
}

// Get returns the reference particle with the given id.
func (c *RefParticleCache) Get(id int) *RefParticle { return c.refs[id] }

// Len returns the number of cached reference particles.
func (c *RefParticleCache) Len() int { return len(c.refs) }

func closestNode(m *mesh.Mesh, center geometry.Vec3) int {
	best, bestD2 := 0, -1.0
	for i, x := range m.Nodes {
		dx, dy, dz := x[0]-center[0], x[1]-center[1], x[2]-center[2]
		d2 := dx*dx + dy*dy + dz*dz
		if bestD2 < 0 || d2 < bestD2 {
			best, bestD2 = i, d2
		}
	}
	return best
}
