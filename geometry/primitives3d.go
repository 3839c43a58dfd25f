// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

func init() {
	allocators["sphere"] = func(p []float64) (GeomObject, error) {
		if len(p) < 4 {
			return nil, chk.Err("sphere: need [cx,cy,cz,radius], got %d params", len(p))
		}
		return &Sphere{C: Vec3{p[0], p[1], p[2]}, R: p[3]}, nil
	}
	allocators["cube"] = func(p []float64) (GeomObject, error) {
		if len(p) < 4 {
			return nil, chk.Err("cube: need [cx,cy,cz,side], got %d params", len(p))
		}
		return &Cuboid{C: Vec3{p[0], p[1], p[2]}, Lx: p[3], Ly: p[3], Lz: p[3]}, nil
	}
	allocators["cuboid"] = func(p []float64) (GeomObject, error) {
		if len(p) < 6 {
			return nil, chk.Err("cuboid: need [cx,cy,cz,lx,ly,lz], got %d params", len(p))
		}
		return &Cuboid{C: Vec3{p[0], p[1], p[2]}, Lx: p[3], Ly: p[4], Lz: p[5]}, nil
	}
	allocators["cylinder"] = func(p []float64) (GeomObject, error) {
		if len(p) < 5 {
			return nil, chk.Err("cylinder: need [cx,cy,cz,radius,height], got %d params", len(p))
		}
		return &Cylinder{C: Vec3{p[0], p[1], p[2]}, R: p[3], H: p[4]}, nil
	}
	allocators["line"] = func(p []float64) (GeomObject, error) {
		if len(p) < 6 {
			return nil, chk.Err("line: need two endpoints (6 values), got %d params", len(p))
		}
		return &Line{A: Vec3{p[0], p[1], p[2]}, B: Vec3{p[3], p[4], p[5]}}, nil
	}
}

// Sphere is a 3D ball of radius R centered at C.
type Sphere struct {
	C Vec3
	R float64
}

func (g *Sphere) Volume() float64 { return 4.0 / 3.0 * math.Pi * g.R * g.R * g.R }
func (g *Sphere) Center() Vec3    { return g.C }
func (g *Sphere) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.R, g.C[1] - g.R, g.C[2] - g.R}, Vec3{g.C[0] + g.R, g.C[1] + g.R, g.C[2] + g.R}
}
func (g *Sphere) InscribedRadius() float64 { return g.R }
func (g *Sphere) BoundingRadius() float64  { return g.R }
func (g *Sphere) IsInside(x Vec3) bool     { return norm(sub(x, g.C)) <= g.R }
func (g *Sphere) IsNear(x Vec3, tol float64) bool {
	return norm(sub(x, g.C)) <= g.R+tol
}
func (g *Sphere) IsNearBoundary(x Vec3, tol float64) bool {
	return math.Abs(norm(sub(x, g.C))-g.R) <= tol
}
func (g *Sphere) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Sphere{C: center, R: scale * g.R}
}

// Cuboid is an axis-aligned box of size Lx x Ly x Lz centered at C; a Cube
// is a Cuboid with Lx=Ly=Lz.
type Cuboid struct {
	C          Vec3
	Lx, Ly, Lz float64
}

func (g *Cuboid) Volume() float64 { return g.Lx * g.Ly * g.Lz }
func (g *Cuboid) Center() Vec3    { return g.C }
func (g *Cuboid) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.Lx/2, g.C[1] - g.Ly/2, g.C[2] - g.Lz/2},
		Vec3{g.C[0] + g.Lx/2, g.C[1] + g.Ly/2, g.C[2] + g.Lz/2}
}
func (g *Cuboid) InscribedRadius() float64 {
	return math.Min(g.Lx, math.Min(g.Ly, g.Lz)) / 2
}
func (g *Cuboid) BoundingRadius() float64 {
	return 0.5 * math.Sqrt(g.Lx*g.Lx+g.Ly*g.Ly+g.Lz*g.Lz)
}
func (g *Cuboid) IsInside(x Vec3) bool {
	dx, dy, dz := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1]), math.Abs(x[2]-g.C[2])
	return dx <= g.Lx/2 && dy <= g.Ly/2 && dz <= g.Lz/2
}
func (g *Cuboid) IsNear(x Vec3, tol float64) bool {
	dx, dy, dz := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1]), math.Abs(x[2]-g.C[2])
	return dx <= g.Lx/2+tol && dy <= g.Ly/2+tol && dz <= g.Lz/2+tol
}
func (g *Cuboid) IsNearBoundary(x Vec3, tol float64) bool {
	if !g.IsNear(x, tol) {
		return false
	}
	dx, dy, dz := math.Abs(x[0]-g.C[0]), math.Abs(x[1]-g.C[1]), math.Abs(x[2]-g.C[2])
	return math.Abs(dx-g.Lx/2) <= tol || math.Abs(dy-g.Ly/2) <= tol || math.Abs(dz-g.Lz/2) <= tol
}
func (g *Cuboid) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Cuboid{C: center, Lx: scale * g.Lx, Ly: scale * g.Ly, Lz: scale * g.Lz}
}

// Cylinder is a right circular cylinder of radius R and height H, aligned
// with the z-axis, centered at C.
type Cylinder struct {
	C    Vec3
	R, H float64
}

func (g *Cylinder) Volume() float64 { return math.Pi * g.R * g.R * g.H }
func (g *Cylinder) Center() Vec3    { return g.C }
func (g *Cylinder) Box() (Vec3, Vec3) {
	return Vec3{g.C[0] - g.R, g.C[1] - g.R, g.C[2] - g.H/2},
		Vec3{g.C[0] + g.R, g.C[1] + g.R, g.C[2] + g.H/2}
}
func (g *Cylinder) InscribedRadius() float64 { return math.Min(g.R, g.H/2) }
func (g *Cylinder) BoundingRadius() float64 {
	return math.Sqrt(g.R*g.R + (g.H/2)*(g.H/2))
}
func (g *Cylinder) IsInside(x Vec3) bool {
	radial := math.Hypot(x[0]-g.C[0], x[1]-g.C[1])
	return radial <= g.R && math.Abs(x[2]-g.C[2]) <= g.H/2
}
func (g *Cylinder) IsNear(x Vec3, tol float64) bool {
	radial := math.Hypot(x[0]-g.C[0], x[1]-g.C[1])
	return radial <= g.R+tol && math.Abs(x[2]-g.C[2]) <= g.H/2+tol
}
func (g *Cylinder) IsNearBoundary(x Vec3, tol float64) bool {
	radial := math.Hypot(x[0]-g.C[0], x[1]-g.C[1])
	onSide := math.Abs(radial-g.R) <= tol && math.Abs(x[2]-g.C[2]) <= g.H/2+tol
	onCap := math.Abs(math.Abs(x[2]-g.C[2])-g.H/2) <= tol && radial <= g.R+tol
	return onSide || onCap
}
func (g *Cylinder) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	return &Cylinder{C: center, R: scale * g.R, H: scale * g.H}
}

// Line is a 1D segment between two endpoints; used for line elements and
// as a degenerate "geometry" for fiber-like particles.
type Line struct {
	A, B Vec3
}

func (g *Line) Volume() float64 { return norm(sub(g.B, g.A)) }
func (g *Line) Center() Vec3    { return scl(add(g.A, g.B), 0.5) }
func (g *Line) Box() (Vec3, Vec3) {
	lo, hi := g.A, g.A
	for d := 0; d < 3; d++ {
		lo[d] = math.Min(g.A[d], g.B[d])
		hi[d] = math.Max(g.A[d], g.B[d])
	}
	return lo, hi
}
func (g *Line) InscribedRadius() float64 { return 0 }
func (g *Line) BoundingRadius() float64  { return g.Volume() / 2 }
func (g *Line) IsInside(x Vec3) bool     { return distToSegment(x, g.A, g.B) < 1e-12 }
func (g *Line) IsNear(x Vec3, tol float64) bool {
	return distToSegment(x, g.A, g.B) <= tol
}
func (g *Line) IsNearBoundary(x Vec3, tol float64) bool {
	return g.IsNear(x, tol)
}
func (g *Line) Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject {
	c := g.Center()
	return &Line{
		A: add(center, scl(Rotate(sub(g.A, c), angle, axis), scale)),
		B: add(center, scl(Rotate(sub(g.B, c), angle, axis), scale)),
	}
}
