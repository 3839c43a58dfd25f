// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry implements the primitive shapes used to describe
// particles and walls: circles, rectangles, polygons, and their 3D
// counterparts, plus annulus and complex (boolean) composites.
//
// Unlike the C++ original (a GeomObject base class with a dozen virtual
// subclasses) every shape here is a plain struct implementing the
// GeomObject interface; composites hold other GeomObjects and recurse.
package geometry

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Vec3 is a 3-component point or vector; z is unused/zero in 2D shapes.
type Vec3 = [3]float64

// GeomObject is the common interface implemented by every shape.
type GeomObject interface {
	// Volume returns the area (2D) or volume (3D) of the shape.
	Volume() float64
	// Center returns the geometric center.
	Center() Vec3
	// Box returns the axis-aligned bounding box (min, max).
	Box() (lo, hi Vec3)
	// InscribedRadius returns the radius of the largest ball fully inside.
	InscribedRadius() float64
	// BoundingRadius returns the radius of the smallest ball fully containing it.
	BoundingRadius() float64
	// IsInside reports whether x lies within the shape.
	IsInside(x Vec3) bool
	// IsNear reports whether x lies within tol of the shape (inside or just outside).
	IsNear(x Vec3, tol float64) bool
	// IsNearBoundary reports whether x lies within tol of the shape's boundary.
	IsNearBoundary(x Vec3, tol float64) bool
	// Transform returns a copy of the shape placed with its center at center
	// and scaled by scale. Triangle, Line and Complex also rotate by angle
	// about axis (Complex rotates its parts' centers); Circle, Rectangle,
	// Hexagon, Drum2D, Sphere, Cuboid and Cylinder ignore axis and angle,
	// and Annulus passes them to its two parts.
	Transform(center Vec3, scale float64, axis Vec3, angle float64) GeomObject
}

func sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func add(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func scl(a Vec3, s float64) Vec3 { return Vec3{a[0] * s, a[1] * s, a[2] * s} }
func norm(a Vec3) float64 { return math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2]) }
func dot(a, b Vec3) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Rotate rotates v by angle theta (radians) about the unit axis a using
// Rodrigues' formula. Mirrors util::rotate from the original source's
// transformation utilities.
func Rotate(v Vec3, theta float64, a Vec3) Vec3 {
	n := norm(a)
	if n < 1e-14 {
		return v
	}
	ax := scl(a, 1.0/n)
	c, s := math.Cos(theta), math.Sin(theta)
	term1 := scl(v, c)
	term2 := scl(cross(ax, v), s)
	term3 := scl(ax, dot(ax, v)*(1-c))
	return add(add(term1, term2), term3)
}

// New builds a GeomObject from a kind name and a flat parameter list,
// dispatching through the same name -> allocator registry every
// pluggable-model package in this repository uses.
func New(kind string, params []float64) (GeomObject, error) {
	alloc, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("geometry: kind %q is not available", kind)
	}
	return alloc(params)
}

var allocators = map[string]func(params []float64) (GeomObject, error){}
