// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "math"

func init() {
	allocators["PMBBond"] = func() BondMaterial { return &PMB{} }
}

// PMB is the bond-based prototype microelastic material: force magnitude
// c*s*J(r), c = 18*K/(pi*delta^4), breaking irreversibly when the bond
// stretch s exceeds ScCrit.
type PMB struct {
	BulkModulus float64
	Horizon     float64
	ScCrit      float64
	Infl        Influence
}

func (m *PMB) Name() string             { return "PMBBond" }
func (m *PMB) NeedsStatePrepass() bool  { return false }

func (m *PMB) Init(p Params) error {
	m.BulkModulus = p.Get("BulkModulus", 0)
	m.Horizon = p.Get("Horizon", 0)
	m.ScCrit = p.Get("CriticalStretch", math.Inf(1))
	kind := "constant"
	if _, ok := p["InfluenceLinear"]; ok {
		kind = "linear"
	}
	if _, ok := p["InfluenceGaussian"]; ok {
		kind = "gaussian"
	}
	dim := int(p.Get("Dimension", 3))
	m.Infl = NewInfluence(kind, nil, dim)
	return nil
}

func (m *PMB) BulkFactor(bulkModulus, horizon float64) float64 {
	return 18.0 * bulkModulus / (math.Pi * horizon * horizon * horizon * horizon)
}

func (m *PMB) BondForceMagnitude(r0, s float64) float64 {
	c := m.BulkFactor(m.BulkModulus, m.Horizon)
	rNorm := r0 / m.Horizon
	return c * s * m.Infl.Value(rNorm)
}

func (m *PMB) CriticalStretch(r0 float64) float64 { return m.ScCrit }
