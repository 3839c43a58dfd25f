// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loading

import (
	"github.com/prashjha/PeriDEM-sub001/geometry"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// InitialCondition is a constant-velocity (or, via AngularVelocity,
// rigid-rotation) initial condition applied once at t=0, matching particleIC.cpp's
// "Constant_Velocity" kind, the only one it implements.
type InitialCondition struct {
	BC       BCBaseDeck
	Velocity geometry.Vec3
	// AngularVelocity, when non-zero, is combined with the particle's
	// displacement from its center to produce a rigid-rotation velocity
	// field v = AngularVelocity x (x - xCenter), supplementing
	// particleIC.cpp's pure-translation IC with a rotation IC for
	// rigid-body rotation scenarios.
	AngularVelocity geometry.Vec3
}

// ApplyInitialConditions sets s.V for every node of every particle
// selected by each IC's BC, in registration order (later ICs overwrite
// earlier ones for a node they both select, matching the source's
// unconditional setVLocal).
func ApplyInitialConditions(ics []InitialCondition, reg *particle.Registry, s *state.Store) {
	for _, ic := range ics {
		for _, p := range reg.Particles {
			if !NeedToProcessParticle(p.ID, ic.BC) {
				continue
			}
			n := p.NumNodes(reg.Cache)
			xCenter := p.XCenter(reg.Cache, s)
			for local := 0; local < n; local++ {
				g := p.GlobalNodeID(local)
				v := ic.Velocity
				if ic.AngularVelocity != (geometry.Vec3{}) {
					dx := geometry.Vec3{
						s.XRef[g][0] - xCenter[0],
						s.XRef[g][1] - xCenter[1],
						s.XRef[g][2] - xCenter[2],
					}
					rot := cross(ic.AngularVelocity, dx)
					v = geometry.Vec3{v[0] + rot[0], v[1] + rot[1], v[2] + rot[2]}
				}
				s.SetV(g, v)
			}
		}
	}
}

func cross(a, b geometry.Vec3) geometry.Vec3 {
	return geometry.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
