// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestComputeVolumesFromElementsTriangle(tst *testing.T) {
	chk.PrintTitle("mesh: unit right triangle")
	m := &Mesh{
		Nodes:    [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Elements: []Element{{Type: Triangle, Conn: []int{0, 1, 2}}},
	}
	err := m.ComputeVolumesFromElements()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	total := 0.0
	for _, v := range m.Volumes {
		total += v
	}
	chk.Scalar(tst, "total volume", 1e-12, total, 0.5)
}

func TestComputeVolumesFromElementsTetra(tst *testing.T) {
	chk.PrintTitle("mesh: unit tetrahedron")
	m := &Mesh{
		Nodes: [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
		Elements: []Element{
			{Type: Tetra, Conn: []int{0, 1, 2, 3}},
		},
	}
	err := m.ComputeVolumesFromElements()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	total := 0.0
	for _, v := range m.Volumes {
		total += v
	}
	chk.Scalar(tst, "total volume", 1e-12, total, 1.0/6.0)
}
