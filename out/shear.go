// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import "github.com/prashjha/PeriDEM-sub001/state"

// ShearReport is the outcome of one MaxShearStress scan: the largest shear
// proxy value found and the node/location it occurred at.
type ShearReport struct {
	MaxShear float64
	NodeID   int
	Location [3]float64
}

// MaxShearStress scans a per-step virial-like nodal stress proxy
// (force ⊗ reference-offset-from-center, divided by volume) and records
// the node where its largest off-diagonal (shear) component occurs. This
// is a coarse proxy, not a constitutive stress: PeriDEM's bond/state
// formulation never assembles a true Cauchy stress tensor per node, so
// post-processing summaries fall back to this force-moment measure.
func MaxShearStress(s *state.Store, center [3]float64) ShearReport {
	report := ShearReport{}
	for i := 0; i < s.N(); i++ {
		vol := s.Vol[i]
		if vol == 0 {
			continue
		}
		r := [3]float64{s.X[i][0] - center[0], s.X[i][1] - center[1], s.X[i][2] - center[2]}
		f := s.F[i]
		sxy := (r[0]*f[1] + r[1]*f[0]) / (2 * vol)
		syz := (r[1]*f[2] + r[2]*f[1]) / (2 * vol)
		sxz := (r[0]*f[2] + r[2]*f[0]) / (2 * vol)
		shear := absMax(absMax(sxy, syz), sxz)
		if shear > report.MaxShear {
			report.MaxShear = shear
			report.NodeID = i
			report.Location = s.X[i]
		}
	}
	return report
}

func absMax(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
