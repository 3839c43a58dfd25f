// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

func init() {
	allocators["circle"] = func(p []float64) (GeomObject, error) {
		if len(p) < 4 {
			return nil, chk.Err("circle: need [cx,cy,cz,radius], got %d params", len(p))
		}
		return &Circle{C: Vec3{p[0], p[1], p[2]}, R: p[3]}, nil
	}
	allocators["rectangle"] = func(p []float64) (GeomObject, error) {
		if len(p) < 5 {
			return nil, chk.Err("rectangle: need [cx,cy,cz,lx,ly], got %d params", len(p))
		}
		return &Rectangle{C: Vec3{p[0], p[1], p[2]}, Lx: p[3], Ly: p[4]}, nil
	}
	allocators["square"] = func(p []float64) (GeomObject, error) {
		if len(p) < 4 {
			return nil, chk.Err("square: need [cx,cy,cz,side], got %d params", len(p))
		}
		return &Rectangle{C: Vec3{p[0], p[1], p[2]}, Lx: p[3], Ly: p[3]}, nil
	}
	allocators["triangle"] = func(p []float64) (GeomObject, error) {
		if len(p) < 6 {
			return nil, chk.Err("triangle: need 3 vertices (6 values), got %d params", len(p))
		}
		return &Triangle{
			V: [3]Vec3{{p[0], p[1], 0}, {p[2], p[3], 0}, {p[4], p[5], 0}},
		}, nil
	}
	allocators["hexagon"] = func(p []float64) (GeomObject, error) {
		if len(p) < 4 {
			return nil, chk.Err("hexagon: need [cx,cy,cz,radius], got %d params", len(p))
		}
		return &Hexagon{C: Vec3{p[0], p[1], p[2]}, R: p[3]}, nil
	}
	allocators["drum2d"] = func(p []float64) (GeomObject, error) {
		if len(p) < 5 {
			return nil, chk.Err("drum2d: need [cx,cy,cz,outerR,neckR], got %d params", len(p))
		}
		return &Drum2D{C: Vec3{p[0], p[1], p[2]}, OuterR: p[3], NeckR: p[4]}, nil
	}
}

// Circle is a 2D disc of radius R centered at C, matching
// geomObjects.h's Circle class.
type Circle struct {
	C Vec3
	R float64
}

func (g *Circle) Volume() float64 { return math.Pi * g.R * g.R }
func (g *Circle) Center() Vec3    { return g.C }
func (g *Circle) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.R, g.C[1] - g.R, 0}, Vec3{g.C[0] + g.R, g.C[1] + g.R, 0}
}
func (g *Circle) InscribedRadius() float64 { return g.R }
func (g *Circle) BoundingRadius() float64  { return g.R }
func (g *Circle) IsInside(x Vec3) bool     { return norm(sub(x, g.C)) <= g.R }
func (g *Circle) IsNear(x Vec3, tol float64) bool {
	return norm(sub(x, g.C)) <= g.R+tol
}
func (g *Circle) IsNearBoundary(x Vec3, tol float64) bool {
	return math.Abs(norm(sub(x, g.C))-g.R) <= tol
}
func (g *Circle) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Circle{C: center, R: scale * g.R}
}

// Rectangle is an axis-aligned box of size Lx x Ly centered at C.
type Rectangle struct {
	C      Vec3
	Lx, Ly float64
}

func (g *Rectangle) Volume() float64 { return g.Lx * g.Ly }
func (g *Rectangle) Center() Vec3    { return g.C }
func (g *Rectangle) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.Lx/2, g.C[1] - g.Ly/2, 0}, Vec3{g.C[0] + g.Lx/2, g.C[1] + g.Ly/2, 0}
}
func (g *Rectangle) InscribedRadius() float64 { return math.Min(g.Lx, g.Ly) / 2 }
func (g *Rectangle) BoundingRadius() float64 {
	return 0.5 * math.Sqrt(g.Lx*g.Lx+g.Ly*g.Ly)
}
func (g *Rectangle) IsInside(x Vec3) bool {
	dx, dy := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1])
	return dx <= g.Lx/2 && dy <= g.Ly/2
}
func (g *Rectangle) IsNear(x Vec3, tol float64) bool {
	dx, dy := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1])
	return dx <= g.Lx/2+tol && dy <= g.Ly/2+tol
}
func (g *Rectangle) IsNearBoundary(x Vec3, tol float64) bool {
	if !g.IsNear(x, tol) {
		return false
	}
	dx, dy := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1])
	return math.Abs(dx-g.Lx/2) <= tol || math.Abs(dy-g.Ly/2) <= tol
}
func (g *Rectangle) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Rectangle{C: center, Lx: scale * g.Lx, Ly: scale * g.Ly}
}

// Triangle is a planar triangle defined by three vertices.
type Triangle struct {
	V [3]Vec3
}

func (g *Triangle) Center() Vec3 {
	return scl(add(add(g.V[0], g.V[1]), g.V[2]), 1.0/3.0)
}
func (g *Triangle) Volume() float64 {
	e1 := sub(g.V[1], g.V[0])
	e2 := sub(g.V[2], g.V[0])
	c := cross(e1, e2)
	return 0.5 * math.Abs(c[2])
}
func (g *Triangle) Box() (Vec3, Vec3) {
	lo, hi := g.V[0], g.V[0]
	for _, v := range g.V[1:] {
		for d := 0; d < 3; d++ {
			lo[d] = math.Min(lo[d], v[d])
			hi[d] = math.Max(hi[d], v[d])
		}
	}
	return lo, hi
}
func (g *Triangle) InscribedRadius() float64 {
	a := norm(sub(g.V[1], g.V[2]))
	b := norm(sub(g.V[0], g.V[2]))
	c := norm(sub(g.V[0], g.V[1]))
	s := (a + b + c) / 2
	area := g.Volume()
	if s == 0 {
		return 0
	}
	return area / s
}
func (g *Triangle) BoundingRadius() float64 {
	c := g.Center()
	r := 0.0
	for _, v := range g.V {
		r = math.Max(r, norm(sub(v, c)))
	}
	return r
}
func (g *Triangle) IsInside(x Vec3) bool {
	// barycentric sign test, z-component ignored
	sign := func(p1, p2, p3 Vec3) float64 {
		return (p1[0]-p3[0])*(p2[1]-p3[1]) - (p2[0]-p3[0])*(p1[1]-p3[1])
	}
	d1 := sign(x, g.V[0], g.V[1])
	d2 := sign(x, g.V[1], g.V[2])
	d3 := sign(x, g.V[2], g.V[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}
func (g *Triangle) IsNear(x Vec3, tol float64) bool {
	if g.IsInside(x) {
		return true
	}
	return g.distToBoundary(x) <= tol
}
func (g *Triangle) IsNearBoundary(x Vec3, tol float64) bool {
	return g.distToBoundary(x) <= tol
}
func (g *Triangle) distToBoundary(x Vec3) float64 {
	best := math.Inf(1)
	for i := 0; i < 3; i++ {
		a, b := g.V[i], g.V[(i+1)%3]
		best = math.Min(best, distToSegment(x, a, b))
	}
	return best
}
func (g *Triangle) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	c := g.Center()
	var nv [3]Vec3
	for i, v := range g.V {
		nv[i] = add(center, scl(Rotate(sub(v, c), angle, axis), scale))
	}
	return &Triangle{V: nv}
}

func distToSegment(x, a, b Vec3) float64 {
	ab := sub(b, a)
	l2 := dot(ab, ab)
	if l2 < 1e-300 {
		return norm(sub(x, a))
	}
	t := dot(sub(x, a), ab) / l2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	proj := add(a, scl(ab, t))
	return norm(sub(x, proj))
}

// Hexagon is a regular hexagon of circumradius R centered at C.
type Hexagon struct {
	C Vec3
	R float64
}

func (g *Hexagon) vertices() [6]Vec3 {
	var v [6]Vec3
	for i := 0; i < 6; i++ {
		a := float64(i) * math.Pi / 3.0
		v[i] = Vec3{g.C[0] + g.R*math.Cos(a), g.C[1] + g.R*math.Sin(a), g.C[2]}
	}
	return v
}
func (g *Hexagon) Volume() float64 { return 1.5 * math.Sqrt(3) * g.R * g.R }
func (g *Hexagon) Center() Vec3    { return g.C }
func (g *Hexagon) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.R, g.C[1] - g.R, 0}, Vec3{g.C[0] + g.R, g.C[1] + g.R, 0}
}
func (g *Hexagon) InscribedRadius() float64 { return g.R * math.Sqrt(3) / 2 }
func (g *Hexagon) BoundingRadius() float64  { return g.R }
func (g *Hexagon) IsInside(x Vec3) bool {
	v := g.vertices()
	sign := func(p1, p2, p3 Vec3) float64 {
		return (p1[0]-p3[0])*(p2[1]-p3[1]) - (p2[0]-p3[0])*(p1[1]-p3[1])
	}
	for i := 0; i < 6; i++ {
		a, b := v[i], v[(i+1)%6]
		if sign(x, a, b)*sign(g.C, a, b) < 0 {
			return false
		}
	}
	return true
}
func (g *Hexagon) IsNear(x Vec3, tol float64) bool {
	if g.IsInside(x) {
		return true
	}
	return g.distToBoundary(x) <= tol
}
func (g *Hexagon) IsNearBoundary(x Vec3, tol float64) bool {
	return g.distToBoundary(x) <= tol
}
func (g *Hexagon) distToBoundary(x Vec3) float64 {
	v := g.vertices()
	best := math.Inf(1)
	for i := 0; i < 6; i++ {
		best = math.Min(best, distToSegment(x, v[i], v[(i+1)%6]))
	}
	return best
}
func (g *Hexagon) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Hexagon{C: center, R: scale * g.R}
}

// Drum2D is described by an outer radius OuterR and a neck half-width
// NeckR about center C. IsInside, IsNear and IsNearBoundary treat it as
// the full disc of radius OuterR: the neck does not narrow the region.
// NeckR is used only by InscribedRadius, and Volume is a fixed 0.8 of the
// disc's area.
type Drum2D struct {
	C              Vec3
	OuterR, NeckR float64
}

func (g *Drum2D) Volume() float64 {
	// approximate: a fixed 0.8 of the outer circle's area
	return math.Pi * g.OuterR * g.OuterR * 0.8
}
func (g *Drum2D) Center() Vec3 { return g.C }
func (g *Drum2D) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.OuterR, g.C[1] - g.OuterR, 0}, Vec3{g.C[0] + g.OuterR, g.C[1] + g.OuterR, 0}
}
func (g *Drum2D) InscribedRadius() float64 { return g.NeckR }
func (g *Drum2D) BoundingRadius() float64  { return g.OuterR }
func (g *Drum2D) IsInside(x Vec3) bool {
	y := x[1] - g.C[1]
	if math.Abs(y) > g.OuterR {
		return false
	}
	// localR is never below the disc's half-width at y, so the disc test
	// below is what decides
	half := math.Abs(x[0] - g.C[0])
	localR := g.NeckR + (g.OuterR-g.NeckR)*math.Sqrt(math.Max(0, 1-(y/g.OuterR)*(y/g.OuterR)))
	return half <= localR && y*y+half*half <= g.OuterR*g.OuterR+1e-12
}
func (g *Drum2D) IsNear(x Vec3, tol float64) bool {
	return g.IsInside(x) || norm(sub(x, g.C)) <= g.OuterR+tol
}
func (g *Drum2D) IsNearBoundary(x Vec3, tol float64) bool {
	return math.Abs(norm(sub(x, g.C))-g.OuterR) <= tol
}
func (g *Drum2D) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Drum2D{C: center, OuterR: scale * g.OuterR, NeckR: scale * g.NeckR}
}
