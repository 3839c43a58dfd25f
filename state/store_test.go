// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package state

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestNewAndClone(tst *testing.T) {
	chk.PrintTitle("state store clone")
	s := New(3)
	s.SetX(0, [3]float64{1, 2, 3})
	s.AddF(1, [3]float64{0.5, 0, 0})
	s.AddF(1, [3]float64{0.5, 0, 0})

	c := s.Clone()
	chk.Vector(tst, "x0", 1e-15, c.X[0][:], []float64{1, 2, 3})
	chk.Scalar(tst, "f1.x", 1e-15, c.F[1][0], 1.0)

	// mutating the clone must not affect the original
	c.SetX(0, [3]float64{9, 9, 9})
	chk.Vector(tst, "original x0 unaffected", 1e-15, s.X[0][:], []float64{1, 2, 3})
}

func TestClearForces(tst *testing.T) {
	chk.PrintTitle("state store clear forces")
	s := New(2)
	s.AddF(0, [3]float64{1, 1, 1})
	s.ClearForces()
	chk.Vector(tst, "f0", 1e-15, s.F[0][:], []float64{0, 0, 0})
}
