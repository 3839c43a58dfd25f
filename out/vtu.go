// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package out implements PeriDEM's two output channels: per-step VTK
// unstructured-grid files (ASCII .vtu, hand-written XML, field list
// matching legacyVtkWriter.cpp's API surface) and a restart blob that
// echoes every node field via encoding/gob.
package out

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/prashjha/PeriDEM-sub001/state"
)

// WriteVTU writes one ASCII .vtu file containing current position,
// displacement, velocity, node damage, and owning particle id as
// point-data arrays, matching legacyVtkWriter.cpp's
// appendNodes/appendPointData field set (position+u, then named scalar/
// vector arrays).
func WriteVTU(path string, s *state.Store, elemType int, connectivity [][]int) error {
	var buf bytes.Buffer
	n := s.N()

	buf.WriteString(`<?xml version="1.0"?>` + "\n")
	buf.WriteString(`<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">` + "\n")
	buf.WriteString("  <UnstructuredGrid>\n")
	fmt.Fprintf(&buf, "    <Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", n, len(connectivity))

	buf.WriteString("      <Points>\n")
	buf.WriteString(`        <DataArray type="Float64" NumberOfComponents="3" format="ascii">` + "\n")
	for i := 0; i < n; i++ {
		x := s.X[i]
		fmt.Fprintf(&buf, "          %.10g %.10g %.10g\n", x[0], x[1], x[2])
	}
	buf.WriteString("        </DataArray>\n      </Points>\n")

	buf.WriteString("      <Cells>\n")
	writeIntArray(&buf, "connectivity", flatten(connectivity))
	offsets := make([]int, len(connectivity))
	running := 0
	for i, c := range connectivity {
		running += len(c)
		offsets[i] = running
	}
	writeIntArray(&buf, "offsets", offsets)
	types := make([]int, len(connectivity))
	for i := range connectivity {
		types[i] = elemType
	}
	writeIntArray(&buf, "types", types)
	buf.WriteString("      </Cells>\n")

	buf.WriteString("      <PointData>\n")
	writeVec3Array(&buf, "Displacement", s.U)
	writeVec3Array(&buf, "Velocity", s.V)
	writeVec3Array(&buf, "Force", s.F)
	writeFloatArray(&buf, "Damage", s.Z)
	writeFloatArray(&buf, "Dilatation", s.Theta)
	writeIntArray1(&buf, "OwnerPID", s.OwnerPID)
	buf.WriteString("      </PointData>\n")

	buf.WriteString("    </Piece>\n  </UnstructuredGrid>\n</VTKFile>\n")

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return chk.Err("out: cannot write vtu file %q: %v", path, err)
	}
	return nil
}

func flatten(conn [][]int) []int {
	var out []int
	for _, c := range conn {
		out = append(out, c...)
	}
	return out
}

func writeIntArray(buf *bytes.Buffer, name string, data []int) {
	fmt.Fprintf(buf, "        <DataArray type=\"Int32\" Name=\"%s\" format=\"ascii\">\n", name)
	buf.WriteString("          ")
	for _, v := range data {
		fmt.Fprintf(buf, "%d ", v)
	}
	buf.WriteString("\n        </DataArray>\n")
}

func writeIntArray1(buf *bytes.Buffer, name string, data []int) {
	writeIntArray(buf, name, data)
}

func writeFloatArray(buf *bytes.Buffer, name string, data []float64) {
	fmt.Fprintf(buf, "        <DataArray type=\"Float64\" Name=\"%s\" format=\"ascii\">\n", name)
	buf.WriteString("          ")
	for _, v := range data {
		fmt.Fprintf(buf, "%.10g ", v)
	}
	buf.WriteString("\n        </DataArray>\n")
}

func writeVec3Array(buf *bytes.Buffer, name string, data [][3]float64) {
	fmt.Fprintf(buf, "        <DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"3\" format=\"ascii\">\n", name)
	for _, v := range data {
		fmt.Fprintf(buf, "          %.10g %.10g %.10g\n", v[0], v[1], v[2])
	}
	buf.WriteString("        </DataArray>\n")
}
