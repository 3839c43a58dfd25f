// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

import "github.com/cpmech/gosl/chk"

// BondMaterial is implemented by every peridynamic bond force law. State
// is evaluated in two passes for state-based materials (the bond engine
// first accumulates per-node theta/m from WeightedVolumeIntegrand and
// DilatationWeight, then calls PairwiseForce); bond-based materials skip
// the first pass and use BondForceMagnitude.
type BondMaterial interface {
	// Init sets the material's parameters from a flat params map.
	Init(p Params) error

	// Name returns the registered name this material was allocated under.
	Name() string

	// NeedsStatePrepass reports whether the bond engine must precompute
	// per-node dilatation/weighted-volume before calling PairwiseForce.
	NeedsStatePrepass() bool

	// BondForceMagnitude returns the scalar force density (per unit
	// volume-squared) for a bond of reference length r0 and current
	// stretch s. Used by bond-based materials (PMB, RNP, PDElastic).
	BondForceMagnitude(r0, s float64) float64

	// CriticalStretch returns the stretch s_c at which a bond of
	// reference length r0 breaks. PDElasticBond returns +Inf (no-fail).
	CriticalStretch(r0 float64) float64

	// BulkFactor returns c = 18K/(pi*delta^4), the PMB-family force
	// constant, for a given bulk modulus K and horizon delta. Every
	// material here (PMB, PDElastic, RNP, PDState) returns this value.
	BulkFactor(bulkModulus, horizon float64) float64
}

// StateMaterial is implemented additionally by state-based bond
// materials (PDState), whose pairwise force depends on both nodes'
// dilatation and weighted volume rather than on the bond alone.
type StateMaterial interface {
	BondMaterial

	// DilatationWeight returns the integrand contributed by a bond of
	// reference length r0 and stretch s to its owner node's dilatation
	// theta, J(r) included, before multiplying by the bond's volume weight.
	DilatationWeight(r0, s float64) float64

	// WeightedVolumeIntegrand returns the per-bond contribution to the
	// owner node's weighted volume m, before multiplying by the bond's
	// volume weight.
	WeightedVolumeIntegrand(r0 float64) float64

	// PairwiseForce returns the scalar force density for a bond given
	// both endpoints' dilatation and weighted volume, combining the two
	// nodes' peridynamic "force states" t_i - t_j.
	PairwiseForce(r0, s, thetaI, mI, thetaJ, mJ float64) float64
}

// Params is a flat named-parameter bag passed to a material's Init.
type Params map[string]float64

// Get returns p[name], or def if name is absent.
func (p Params) Get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

var allocators = map[string]func() BondMaterial{}

// New looks up a registered bond material by name and returns a fresh,
// uninitialized instance. Mirrors msolid.GetModel / mconduct.New.
func New(name string) (BondMaterial, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material: bond material %q is not available", name)
	}
	return alloc(), nil
}
