// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// gmshTypeToElemType maps the Gmsh ASCII element-type code to the VTK-style
// ElemType this package uses internally.
var gmshTypeToElemType = map[int]ElemType{
	1: Line,
	2: Triangle,
	3: Quad,
	4: Tetra,
	5: Hexahedron,
}

var gmshNumNodes = map[int]int{1: 2, 2: 3, 3: 4, 4: 4, 5: 8}

// ReadGmsh loads a .msh (ASCII, format 2.2) mesh file: node coordinates and
// element-node connectivity. Nodal volumes are computed from element shape
// via ComputeVolumesFromElements since Gmsh files carry no volume field.
func ReadGmsh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("mesh: cannot open gmsh file %q: %v", path, err)
	}
	defer f.Close()

	m := &Mesh{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<20), 1<<20)

	var idToIndex map[int]int
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "$Nodes":
			sc.Scan()
			n, _ := strconv.Atoi(strings.TrimSpace(sc.Text()))
			m.Nodes = make([][3]float64, n)
			idToIndex = make(map[int]int, n)
			for i := 0; i < n; i++ {
				sc.Scan()
				fields := strings.Fields(sc.Text())
				id, _ := strconv.Atoi(fields[0])
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				idToIndex[id] = i
				m.Nodes[i] = [3]float64{x, y, z}
			}
		case "$Elements":
			sc.Scan()
			n, _ := strconv.Atoi(strings.TrimSpace(sc.Text()))
			m.Elements = make([]Element, 0, n)
			for i := 0; i < n; i++ {
				sc.Scan()
				fields := strings.Fields(sc.Text())
				etype, _ := strconv.Atoi(fields[1])
				elemType, ok := gmshTypeToElemType[etype]
				if !ok {
					continue // unsupported element kind (point, prism, ...): skip
				}
				numTags, _ := strconv.Atoi(fields[2])
				connStart := 3 + numTags
				nn := gmshNumNodes[etype]
				conn := make([]int, nn)
				for k := 0; k < nn; k++ {
					nodeID, _ := strconv.Atoi(fields[connStart+k])
					conn[k] = idToIndex[nodeID]
				}
				m.Elements = append(m.Elements, Element{Type: elemType, Conn: conn})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("mesh: error scanning gmsh file %q: %v", path, err)
	}
	if len(m.Nodes) == 0 {
		return nil, chk.Err("mesh: gmsh file %q has no $Nodes section", path)
	}
	if err := m.ComputeVolumesFromElements(); err != nil {
		return nil, err
	}
	return m, nil
}

// vtuDataArray mirrors the subset of a VTU <DataArray> element this reader
// consumes: ASCII-encoded, whitespace-separated numeric payloads.
type vtuDataArray struct {
	Name string `xml:"Name,attr"`
	Data string `xml:",chardata"`
}

type vtuPiece struct {
	NumberOfPoints string `xml:"NumberOfPoints,attr"`
	NumberOfCells  string `xml:"NumberOfCells,attr"`
	Points         struct {
		DataArray vtuDataArray `xml:"DataArray"`
	} `xml:"Points"`
	PointData struct {
		DataArray []vtuDataArray `xml:"DataArray"`
	} `xml:"PointData"`
	Cells struct {
		DataArray []vtuDataArray `xml:"DataArray"`
	} `xml:"Cells"`
}

type vtuFile struct {
	Grid struct {
		Piece vtuPiece `xml:"Piece"`
	} `xml:"UnstructuredGrid"`
}

// ReadVTU loads a legacy XML .vtu unstructured-grid file: node coordinates,
// connectivity/offsets/types, and, when present, a "volume" PointData array
// used directly as nodal volume (skipping ComputeVolumesFromElements).
func ReadVTU(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, chk.Err("mesh: cannot open vtu file %q: %v", path, err)
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, chk.Err("mesh: cannot read vtu file %q: %v", path, err)
	}

	var vf vtuFile
	if err := xml.Unmarshal(raw, &vf); err != nil {
		return nil, chk.Err("mesh: cannot parse vtu file %q: %v", path, err)
	}
	piece := vf.Grid.Piece

	coords := parseFloats(piece.Points.DataArray.Data)
	m := &Mesh{}
	m.Nodes = make([][3]float64, len(coords)/3)
	for i := range m.Nodes {
		m.Nodes[i] = [3]float64{coords[3*i], coords[3*i+1], coords[3*i+2]}
	}

	var connectivity, offsets, types []float64
	for _, da := range piece.Cells.DataArray {
		switch da.Name {
		case "connectivity":
			connectivity = parseFloats(da.Data)
		case "offsets":
			offsets = parseFloats(da.Data)
		case "types":
			types = parseFloats(da.Data)
		}
	}
	prev := 0
	for i, off := range offsets {
		end := int(off)
		conn := make([]int, 0, end-prev)
		for _, c := range connectivity[prev:end] {
			conn = append(conn, int(c))
		}
		prev = end
		m.Elements = append(m.Elements, Element{Type: ElemType(int(types[i])), Conn: conn})
	}

	for _, da := range piece.PointData.DataArray {
		if da.Name == "volume" || da.Name == "Volume" {
			m.Volumes = parseFloats(da.Data)
		}
	}
	if m.Volumes == nil {
		if err := m.ComputeVolumesFromElements(); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func parseFloats(s string) []float64 {
	fields := strings.Fields(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, _ := strconv.ParseFloat(f, 64)
		out = append(out, v)
	}
	return out
}
