// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "math"

func init() {
	allocators["PDState"] = func() BondMaterial { return &PDState{} }
}

// PDState is the ordinary state-based peridynamic material: each node's
// force state depends on its own dilatation theta and weighted volume m,
// and the pairwise bond force is (t_i - t_j), per spec.md's bond-material
// table ("PD-state" row). K is the bulk modulus, G the shear modulus;
// both contribute to the dilatation and deviatoric parts of the force
// state, following the standard ordinary-state-based (PMB-generalizing)
// formulation.
type PDState struct {
	BulkModulus  float64
	ShearModulus float64
	Horizon      float64
	ScCrit       float64
	Infl         Influence
}

func (m *PDState) Name() string            { return "PDState" }
func (m *PDState) NeedsStatePrepass() bool { return true }

func (m *PDState) Init(p Params) error {
	m.BulkModulus = p.Get("BulkModulus", 0)
	m.ShearModulus = p.Get("ShearModulus", 0)
	m.Horizon = p.Get("Horizon", 0)
	m.ScCrit = p.Get("CriticalStretch", math.Inf(1))
	dim := int(p.Get("Dimension", 3))
	m.Infl = NewInfluence("constant", nil, dim)
	return nil
}

func (m *PDState) CriticalStretch(r0 float64) float64 { return m.ScCrit }

func (m *PDState) BulkFactor(bulkModulus, horizon float64) float64 {
	return 18.0 * bulkModulus / (math.Pi * horizon * horizon * horizon * horizon)
}

// BondForceMagnitude is unused for state-based materials (the bond
// engine calls PairwiseForce instead); it returns the PMB-equivalent
// dilatational contribution alone for diagnostic/no-state callers.
func (m *PDState) BondForceMagnitude(r0, s float64) float64 {
	c := m.BulkFactor(m.BulkModulus, m.Horizon)
	return c * s * m.Infl.Value(r0/m.Horizon)
}

// DilatationWeight returns the bond's contribution to its owner node's
// dilatation theta: 3*J(r)*r0*s (the volumetric-strain integrand of the
// ordinary state-based theta definition).
func (m *PDState) DilatationWeight(r0, s float64) float64 {
	j := m.Infl.Value(r0 / m.Horizon)
	return 3 * j * r0 * s
}

// WeightedVolumeIntegrand returns J(r)*r0^2, the per-bond contribution
// to the owner node's weighted volume m before multiplying by volume
// weight.
func (m *PDState) WeightedVolumeIntegrand(r0 float64) float64 {
	j := m.Infl.Value(r0 / m.Horizon)
	return j * r0 * r0
}

// PairwiseForce returns the scalar magnitude of t_i - t_j for a bond
// connecting nodes with dilatation/weighted-volume (thetaI,mI) and
// (thetaJ,mJ), combining a dilatational term (bulk modulus, alpha =
// 3K/m) and a deviatoric term (shear modulus, beta = 15G/m).
func (m *PDState) PairwiseForce(r0, s, thetaI, mI, thetaJ, mJ float64) float64 {
	j := m.Infl.Value(r0 / m.Horizon)
	ti := dilatationalTerm(m.BulkModulus, thetaI, mI, j, r0) + deviatoricTerm(m.ShearModulus, thetaI, mI, j, r0, s)
	tj := dilatationalTerm(m.BulkModulus, thetaJ, mJ, j, r0) + deviatoricTerm(m.ShearModulus, thetaJ, mJ, j, r0, s)
	return ti - tj
}

func dilatationalTerm(bulkModulus, theta, m, j, r0 float64) float64 {
	if m == 0 {
		return 0
	}
	alpha := 3.0 * bulkModulus / m
	return alpha * theta * j * r0
}

func deviatoricTerm(shearModulus, theta, m, j, r0, s float64) float64 {
	if m == 0 {
		return 0
	}
	beta := 15.0 * shearModulus / m
	ed := s - theta*r0/3.0
	return beta * j * ed
}
