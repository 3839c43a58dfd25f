// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "math"

func init() {
	allocators["PDElasticBond"] = func() BondMaterial { return &PDElastic{} }
}

// PDElastic is the PMB functional form (c*s*J(r)) with bond breakage
// disabled: CriticalStretch always returns +Inf so no bond in this
// material ever enters the broken state, per spec.md's bond-material
// table ("PD-elastic" row, "never" breaks).
type PDElastic struct {
	PMB
}

func (m *PDElastic) Name() string { return "PDElasticBond" }

func (m *PDElastic) Init(p Params) error {
	if err := m.PMB.Init(p); err != nil {
		return err
	}
	m.ScCrit = math.Inf(1)
	return nil
}

func (m *PDElastic) CriticalStretch(r0 float64) float64 { return math.Inf(1) }
