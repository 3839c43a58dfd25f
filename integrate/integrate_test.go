// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrate

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/particle"
	"github.com/prashjha/PeriDEM-sub001/state"
)

func TestCentralDifferenceFreeFallUnderGravity(tst *testing.T) {
	chk.PrintTitle("central difference: free fall under gravity")

	s := state.New(1)
	s.Vol[0] = 1
	s.OwnerPID[0] = 0
	reg := particle.NewRegistry(particle.NewRefParticleCache())

	noForce := func(s *state.Store, t float64) {}
	var stepper CentralDifference
	dt := 0.01
	gravity := [3]float64{0, -9.81, 0}
	for i := 0; i < 10; i++ {
		stepper.Step(s, reg, []float64{1.0}, gravity, noForce, float64(i)*dt, dt)
	}

	v := s.GetV(0)
	chk.Scalar(tst, "vy after 10 steps", 1e-12, v[1], -9.81*0.1)
}

func TestCentralDifferenceRespectsFixity(tst *testing.T) {
	chk.PrintTitle("central difference: fixed dof stays at zero velocity")

	s := state.New(1)
	s.Vol[0] = 1
	s.Fix[0] = 1 // x-dof fixed
	reg := particle.NewRegistry(particle.NewRefParticleCache())

	constForce := func(s *state.Store, t float64) {
		s.AddF(0, [3]float64{100, 0, 0})
	}
	var stepper CentralDifference
	stepper.Step(s, reg, []float64{1.0}, [3]float64{}, constForce, 0, 0.01)

	v := s.GetV(0)
	chk.Scalar(tst, "vx stays zero (fixed)", 1e-15, v[0], 0)
}
