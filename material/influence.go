// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements peridynamic bond material laws: the
// influence function J(r) weighting a bond's contribution by its
// reference length, and the bond force laws (PMB, RNP, PD-elastic,
// PD-state) built on top of it, matching influenceFn.{h,cpp}'s
// functions. Pluggable models self-register into a
// map[string]func()BondMaterial via init(), so new material kinds need
// no change to the allocation switch.
package material

import "math"

// Influence is the normalized influence function J(r) for r in [0,1)
// (r is the bond's reference length divided by the horizon), plus its
// moments M_i = integral_0^1 J(r) r^i dr, used when deriving the elastic
// constants of state-based bond models.
type Influence interface {
	Value(r float64) float64
	Moment(i int) float64
}

// ConstInfluence is J(r) = a0, defaulting to dim+1 so that M_d = 1 for
// the dimension used to derive PMB elastic constants.
type ConstInfluence struct{ A0 float64 }

// NewConstInfluence mirrors ConstInfluenceFn's constructor: an empty
// params list defaults a0 to dim+1.
func NewConstInfluence(params []float64, dim int) *ConstInfluence {
	if len(params) == 0 {
		return &ConstInfluence{A0: float64(dim + 1)}
	}
	return &ConstInfluence{A0: params[0]}
}

func (c *ConstInfluence) Value(r float64) float64  { return c.A0 }
func (c *ConstInfluence) Moment(i int) float64      { return c.A0 / float64(i+1) }

// LinearInfluence is J(r) = a0 + a1*r.
type LinearInfluence struct{ A0, A1 float64 }

// NewLinearInfluence mirrors LinearInfluenceFn's constructor: with no
// params it picks a0 (and a1=-a0) per dimension so that M_d = 1 with
// J(r) = a0*(1-r).
func NewLinearInfluence(params []float64, dim int) *LinearInfluence {
	if len(params) == 0 {
		var a0 float64
		switch dim {
		case 1:
			a0 = 6
		case 2:
			a0 = 12
		case 3:
			a0 = 20
		}
		return &LinearInfluence{A0: a0, A1: -a0}
	}
	a0 := params[0]
	a1 := -a0
	if len(params) >= 2 {
		a1 = params[1]
	}
	return &LinearInfluence{A0: a0, A1: a1}
}

func (l *LinearInfluence) Value(r float64) float64 { return l.A0 + l.A1*r }
func (l *LinearInfluence) Moment(i int) float64 {
	return l.A0/float64(i+1) + l.A1/float64(i+2)
}

// GaussianInfluence is J(r) = alpha*exp(-r^2/beta).
type GaussianInfluence struct{ Alpha, Beta float64 }

// NewGaussianInfluence mirrors GaussianInfluenceFn's constructor: with
// no params, beta defaults to 0.2 and alpha is chosen so that M_d = 1
// for the given dimension.
func NewGaussianInfluence(params []float64, dim int) *GaussianInfluence {
	if len(params) == 0 {
		beta := 0.2
		var alpha float64
		switch dim {
		case 1:
			alpha = 2.0 / (beta * (1.0 - math.Exp(-1.0/beta)))
		case 2:
			alpha = (4.0 / beta) / (math.Sqrt(math.Pi*beta)*math.Erf(1.0/math.Sqrt(beta)) - 2.0*math.Exp(-1.0/beta))
		case 3:
			alpha = (2.0 / beta) / (beta - (beta+1.0)*math.Exp(-1.0/beta))
		}
		return &GaussianInfluence{Alpha: alpha, Beta: beta}
	}
	return &GaussianInfluence{Alpha: params[0], Beta: params[1]}
}

func (g *GaussianInfluence) Value(r float64) float64 {
	return g.Alpha * math.Exp(-r*r/g.Beta)
}

func (g *GaussianInfluence) Moment(i int) float64 {
	sq1 := math.Sqrt(g.Beta)
	sq2 := math.Sqrt(math.Pi)
	switch i {
	case 0:
		return 0.5 * g.Alpha * sq1 * sq2 * math.Erf(1.0/sq1)
	case 1:
		return 0.5 * g.Alpha * g.Beta * (1.0 - math.Exp(-1.0/g.Beta))
	case 2:
		return 0.5 * g.Alpha * g.Beta * sq1 * (0.5*sq2*math.Erf(1.0/sq1) - (1.0/sq1)*math.Exp(-1.0/g.Beta))
	case 3:
		return 0.5 * g.Alpha * g.Beta * g.Beta * (1.0 - (1.0+1.0/g.Beta)*math.Exp(-1.0/g.Beta))
	}
	return 0
}

// NewInfluence builds an Influence by name, the same calling convention
// geometry.New and bond material allocators use.
func NewInfluence(kind string, params []float64, dim int) Influence {
	switch kind {
	case "linear":
		return NewLinearInfluence(params, dim)
	case "gaussian":
		return NewGaussianInfluence(params, dim)
	default:
		return NewConstInfluence(params, dim)
	}
}
