// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package particle implements the reference-particle cache and the
// registry of concrete particles built from it by affine transform,
// matching spec.md §4.2's "one reference mesh per particle zone, many
// transformed instances," and the structure of particleTransform.h and
// refParticle.h/particle.h.
package particle

import "github.com/prashjha/PeriDEM-sub001/geometry"

// Transform describes the affine map from a reference particle's local
// frame to a concrete particle's placement in the simulation domain:
// apply(v) = Translation + Scale*Rotate(v, Theta, Axis). Ported from
// particleTransform.h's ParticleTransform::apply.
type Transform struct {
	Translation geometry.Vec3
	Axis        geometry.Vec3
	Theta       float64
	Scale       float64
}

// Identity returns the no-op transform (zero translation, unit scale).
func Identity() Transform {
	return Transform{Axis: geometry.Vec3{0, 0, 1}, Scale: 1}
}

// Apply maps a reference-frame vector v into the transformed particle's
// frame.
func (t Transform) Apply(v geometry.Vec3) geometry.Vec3 {
	r := geometry.Rotate(v, t.Theta, t.Axis)
	return geometry.Vec3{
		t.Translation[0] + t.Scale*r[0],
		t.Translation[1] + t.Scale*r[1],
		t.Translation[2] + t.Scale*r[2],
	}
}

// ApplyVelocity maps a reference-frame velocity (no translation term,
// since translation is a rigid offset, not a rate) into the transformed
// particle's frame. Nothing in this module calls it; the rotation IC in
// loading computes its velocity field directly.
func (t Transform) ApplyVelocity(v geometry.Vec3) geometry.Vec3 {
	r := geometry.Rotate(v, t.Theta, t.Axis)
	return geometry.Vec3{t.Scale * r[0], t.Scale * r[1], t.Scale * r[2]}
}
