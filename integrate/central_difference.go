// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"github.com/prashjha/PeriDEM-sub001/parallelfor"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// CentralDifference implements spec.md §4.5's central-difference scheme:
// evaluate forces, a = f/rho (fixed dofs zeroed), v += dt*a (prescribed
// velocities overwrite), u += dt*v, x = xref + u.
type CentralDifference struct{}

func (CentralDifference) Step(s *state.Store, reg *particle.Registry, densities []float64, gravity [3]float64, evalForces ForceEvaluator, time, dt float64) {
	s.ClearForces()
	evalForces(s, time)

	n := s.N()
	parallelfor.Range(n, func(i int) {
		rho := densityOf(s.OwnerPID[i], densities)
		f := clampForce(s.GetF(i), s.ForceFix[i])
		wall := isWallOwner(reg, s.OwnerPID[i])
		var a [3]float64
		for d := 0; d < 3; d++ {
			a[d] = f[d] / rho
			if !wall {
				a[d] += gravity[d]
			}
		}
		a = clampAccel(a, s.Fix[i])

		v := s.GetV(i)
		for d := 0; d < 3; d++ {
			if s.Fix[i]&(1<<uint(d)) == 0 {
				v[d] += dt * a[d]
			}
		}
		s.SetV(i, v)

		u := s.GetU(i)
		for d := 0; d < 3; d++ {
			u[d] += dt * v[d]
		}
		s.SetU(i, u)

		xref := s.XRef[i]
		s.SetX(i, [3]float64{xref[0] + u[0], xref[1] + u[1], xref[2] + u[2]})
	})
}
