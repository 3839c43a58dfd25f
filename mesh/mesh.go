// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh holds the per-reference-particle discretization: node
// coordinates, element connectivity, nodal volumes, and the boundary-node
// list, matching mesh.h's core data. The rest of fe::Mesh — dof maps,
// node-element adjacency for an implicit solver — is outside this
// module's scope per spec.md's Non-goals.
package mesh

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ElemType identifies the element shape using the VTK cell-type codes the
// original mesh reader keys off of.
type ElemType int

const (
	Line      ElemType = 3
	Triangle  ElemType = 5
	Quad      ElemType = 9
	Tetra     ElemType = 10
	Hexahedron ElemType = 12
)

// Element is one mesh cell: its type and the (mesh-local) node ids forming it.
type Element struct {
	Type ElemType
	Conn []int
}

// Mesh is the reference discretization of one reference particle.
type Mesh struct {
	Dim           int
	Nodes         [][3]float64
	Volumes       []float64
	Elements      []Element
	BoundaryNodes []int
	CenterNodeID  int
	H             float64 // mesh size (average element edge length)
}

// NumNodes returns the number of nodes in the mesh.
func (m *Mesh) NumNodes() int { return len(m.Nodes) }

// ComputeVolumesFromElements fills m.Volumes by distributing each element's
// volume equally among its vertices when no nodal volume field was present
// in the mesh file, mirroring fe::Mesh's fallback described in mesh.h.
func (m *Mesh) ComputeVolumesFromElements() error {
	m.Volumes = make([]float64, len(m.Nodes))
	for _, e := range m.Elements {
		vol, err := elementVolume(e, m.Nodes)
		if err != nil {
			return err
		}
		share := vol / float64(len(e.Conn))
		for _, n := range e.Conn {
			m.Volumes[n] += share
		}
	}
	return nil
}

func elementVolume(e Element, nodes [][3]float64) (float64, error) {
	switch e.Type {
	case Line:
		a, b := nodes[e.Conn[0]], nodes[e.Conn[1]]
		return dist(a, b), nil
	case Triangle:
		a, b, c := nodes[e.Conn[0]], nodes[e.Conn[1]], nodes[e.Conn[2]]
		return triangleArea(a, b, c), nil
	case Quad:
		a, b, c, d := nodes[e.Conn[0]], nodes[e.Conn[1]], nodes[e.Conn[2]], nodes[e.Conn[3]]
		return triangleArea(a, b, c) + triangleArea(a, c, d), nil
	case Tetra:
		a, b, c, d := nodes[e.Conn[0]], nodes[e.Conn[1]], nodes[e.Conn[2]], nodes[e.Conn[3]]
		return tetraVolume(a, b, c, d), nil
	case Hexahedron:
		// split into 6 tets using the standard decomposition from vertex 0
		v := make([][3]float64, len(e.Conn))
		for i, n := range e.Conn {
			v[i] = nodes[n]
		}
		tets := [][4]int{{0, 1, 2, 6}, {0, 2, 3, 6}, {0, 3, 7, 6}, {0, 7, 4, 6}, {0, 4, 5, 6}, {0, 5, 1, 6}}
		total := 0.0
		for _, t := range tets {
			total += tetraVolume(v[t[0]], v[t[1]], v[t[2]], v[t[3]])
		}
		return total, nil
	default:
		return 0, chk.Err("mesh: unsupported element type %d for volume computation", e.Type)
	}
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func triangleArea(a, b, c [3]float64) float64 {
	e1 := sub3(b, a)
	e2 := sub3(c, a)
	cx := e1[1]*e2[2] - e1[2]*e2[1]
	cy := e1[2]*e2[0] - e1[0]*e2[2]
	cz := e1[0]*e2[1] - e1[1]*e2[0]
	return 0.5 * math.Sqrt(cx*cx+cy*cy+cz*cz)
}

func tetraVolume(a, b, c, d [3]float64) float64 {
	e1 := sub3(b, a)
	e2 := sub3(c, a)
	e3 := sub3(d, a)
	cx := e2[1]*e3[2] - e2[2]*e3[1]
	cy := e2[2]*e3[0] - e2[0]*e3[2]
	cz := e2[0]*e3[1] - e2[1]*e3[0]
	det := e1[0]*cx + e1[1]*cy + e1[2]*cz
	if det < 0 {
		det = -det
	}
	return det / 6.0
}

func sub3(a, b [3]float64) [3]float64 { return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
