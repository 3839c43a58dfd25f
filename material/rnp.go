// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "math"

func init() {
	allocators["RNPBond"] = func() BondMaterial { return &RNP{} }
}

// RNP is the regularized nonlinear potential bond material: the bond
// force is the derivative d/ds w(s,r) of a smoothed double-well
// potential w(s,r) = c*J(r) * s^2 * (1 - s^2/Sc(r)^2)^2 for |s| < Sc(r),
// and 0 beyond (the bond is broken, not force-bearing), per spec.md's
// bond-material table ("RNP" row: energy-based, bond-dependent s_c(r)).
// The double well drives the force to zero continuously as s approaches
// Sc(r) instead of PMB's discontinuous snap, which is the point of
// "regularized": forces stay bounded and differentiable as bonds fail.
type RNP struct {
	BulkModulus float64
	Horizon     float64
	ScCrit      float64 // baseline critical stretch at r=0; scaled by (1+Beta*r) below
	Beta        float64 // bond-dependent-critical-stretch coefficient
	Infl        Influence
}

func (m *RNP) Name() string            { return "RNPBond" }
func (m *RNP) NeedsStatePrepass() bool { return false }

func (m *RNP) Init(p Params) error {
	m.BulkModulus = p.Get("BulkModulus", 0)
	m.Horizon = p.Get("Horizon", 0)
	m.ScCrit = p.Get("CriticalStretch", math.Inf(1))
	m.Beta = p.Get("Beta", 0)
	dim := int(p.Get("Dimension", 3))
	m.Infl = NewInfluence("constant", nil, dim)
	return nil
}

func (m *RNP) BulkFactor(bulkModulus, horizon float64) float64 {
	return 18.0 * bulkModulus / (math.Pi * horizon * horizon * horizon * horizon)
}

// CriticalStretch returns a bond-dependent threshold that grows linearly
// with reference bond length, Sc(r) = ScCrit*(1 + Beta*r0/Horizon).
func (m *RNP) CriticalStretch(r0 float64) float64 {
	if m.Horizon == 0 {
		return m.ScCrit
	}
	return m.ScCrit * (1 + m.Beta*r0/m.Horizon)
}

func (m *RNP) BondForceMagnitude(r0, s float64) float64 {
	sc := m.CriticalStretch(r0)
	if math.Abs(s) >= sc {
		return 0
	}
	c := m.BulkFactor(m.BulkModulus, m.Horizon)
	j := m.Infl.Value(r0 / m.Horizon)
	// w(s) = c*J(r)*s^2*(1 - (s/sc)^2)^2
	// dw/ds = c*J(r)*[2s*(1-(s/sc)^2)^2 + s^2*2*(1-(s/sc)^2)*(-2s/sc^2)]
	u := 1 - (s*s)/(sc*sc)
	return c * j * (2*s*u*u - 4*s*s*s*u/(sc*sc))
}
