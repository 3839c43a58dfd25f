// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "math"

// Annulus is the region between two concentric shapes: Outer minus Inner,
// matching complexGeomObjects.h's AnnulusGeomObject.
type Annulus struct {
	Inner, Outer GeomObject
}

func (g *Annulus) Volume() float64 { return g.Outer.Volume() - g.Inner.Volume() }
func (g *Annulus) Center() Vec3    { return g.Outer.Center() }
func (g *Annulus) Box() (Vec3, Vec3) { return g.Outer.Box() }
func (g *Annulus) InscribedRadius() float64 {
	return g.Outer.InscribedRadius() - g.Inner.BoundingRadius()
}
func (g *Annulus) BoundingRadius() float64 { return g.Outer.BoundingRadius() }
func (g *Annulus) IsInside(x Vec3) bool {
	return g.Outer.IsInside(x) && !g.Inner.IsInside(x)
}
func (g *Annulus) IsNear(x Vec3, tol float64) bool {
	return g.Outer.IsNear(x, tol) && !(g.Inner.IsInside(x) && !g.Inner.IsNearBoundary(x, tol))
}
func (g *Annulus) IsNearBoundary(x Vec3, tol float64) bool {
	return g.Outer.IsNearBoundary(x, tol) || g.Inner.IsNearBoundary(x, tol)
}
func (g *Annulus) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Annulus{
		Inner: g.Inner.Transform(center, scale, axis, angle),
		Outer: g.Outer.Transform(center, scale, axis, angle),
	}
}

// ComplexSign is the boolean role a part plays in a Complex composite.
type ComplexSign int

const (
	// Union adds the part's volume.
	Union ComplexSign = 1
	// Subtract removes the part's volume.
	Subtract ComplexSign = -1
)

// ComplexPart is one shape participating in a Complex composite.
type ComplexPart struct {
	Geom GeomObject
	Sign ComplexSign
}

// Complex is a boolean composite of GeomObjects: the union of parts with
// Sign==Union minus the union of parts with Sign==Subtract, matching
// complexGeomObjects.h's ComplexGeomObject, which represents the same
// composite as a vector of (GeomObject, sign) pairs.
type Complex struct {
	Parts []ComplexPart
}

func (g *Complex) Volume() float64 {
	v := 0.0
	for _, p := range g.Parts {
		v += float64(p.Sign) * p.Geom.Volume()
	}
	return math.Max(v, 0)
}

func (g *Complex) Center() Vec3 {
	if len(g.Parts) == 0 {
		return Vec3{}
	}
	var c Vec3
	n := 0.0
	for _, p := range g.Parts {
		if p.Sign == Union {
			c = add(c, p.Geom.Center())
			n++
		}
	}
	if n == 0 {
		return g.Parts[0].Geom.Center()
	}
	return scl(c, 1/n)
}

func (g *Complex) Box() (Vec3, Vec3) {
	var lo, hi Vec3
	first := true
	for _, p := range g.Parts {
		if p.Sign != Union {
			continue
		}
		plo, phi := p.Geom.Box()
		if first {
			lo, hi = plo, phi
			first = false
			continue
		}
		for d := 0; d < 3; d++ {
			lo[d] = math.Min(lo[d], plo[d])
			hi[d] = math.Max(hi[d], phi[d])
		}
	}
	return lo, hi
}

func (g *Complex) InscribedRadius() float64 {
	r := math.Inf(1)
	for _, p := range g.Parts {
		if p.Sign == Union {
			r = math.Min(r, p.Geom.InscribedRadius())
		}
	}
	if math.IsInf(r, 1) {
		return 0
	}
	return r
}

func (g *Complex) BoundingRadius() float64 {
	c := g.Center()
	r := 0.0
	for _, p := range g.Parts {
		if p.Sign == Union {
			r = math.Max(r, norm(sub(p.Geom.Center(), c))+p.Geom.BoundingRadius())
		}
	}
	return r
}

func (g *Complex) IsInside(x Vec3) bool {
	inUnion := false
	for _, p := range g.Parts {
		if p.Sign == Union && p.Geom.IsInside(x) {
			inUnion = true
			break
		}
	}
	if !inUnion {
		return false
	}
	for _, p := range g.Parts {
		if p.Sign == Subtract && p.Geom.IsInside(x) {
			return false
		}
	}
	return true
}

func (g *Complex) IsNear(x Vec3, tol float64) bool {
	for _, p := range g.Parts {
		if p.Sign == Union && p.Geom.IsNear(x, tol) {
			return true
		}
	}
	return false
}

func (g *Complex) IsNearBoundary(x Vec3, tol float64) bool {
	for _, p := range g.Parts {
		if p.Geom.IsNearBoundary(x, tol) {
			return true
		}
	}
	return false
}

func (g *Complex) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	c := g.Center()
	parts := make([]ComplexPart, len(g.Parts))
	for i, p := range g.Parts {
		pc := p.Geom.Center()
		newCenter := add(center, scl(Rotate(sub(pc, c), angle, axis), scale))
		parts[i] = ComplexPart{Geom: p.Geom.Transform(newCenter, scale, axis, angle), Sign: p.Sign}
	}
	return &Complex{Parts: parts}
}
