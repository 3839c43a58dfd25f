// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contact

import "math"

// CoarseIndex is a brute-force bounding-sphere index over particle
// centers, used to cull particle pairs whose bounding spheres don't
// overlap before the more expensive fine (node-level) search runs. A
// real k-d tree only pays off at particle counts far beyond what a
// single simulation run in this domain needs.
type CoarseIndex struct {
	centers [][3]float64
	radii   []float64
}

// NewCoarseIndex builds a coarse index over particle bounding spheres.
func NewCoarseIndex(centers [][3]float64, radii []float64) *CoarseIndex {
	return &CoarseIndex{centers: centers, radii: radii}
}

// CandidatePairs returns every ordered pair (i, j), i<j, whose bounding
// spheres come within searchTol of overlapping.
func (c *CoarseIndex) CandidatePairs(searchTol float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(c.centers); i++ {
		for j := i + 1; j < len(c.centers); j++ {
			d := dist(c.centers[i], c.centers[j])
			if d <= c.radii[i]+c.radii[j]+searchTol {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}
	return pairs
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FineIndex is a brute-force index over one particle's near-boundary
// node coordinates, used once a CoarseIndex candidate pair has been
// confirmed, to find node-pairs within the contact radius.
type FineIndex struct {
	nodeIDs []int
	coords  [][3]float64
}

// NewFineIndex builds a fine index from global node ids and coordinates
// (typically a particle's near-boundary node subset).
func NewFineIndex(nodeIDs []int, coords [][3]float64) *FineIndex {
	return &FineIndex{nodeIDs: nodeIDs, coords: coords}
}

// Within returns every node id in this index within r of x.
func (f *FineIndex) Within(x [3]float64, r float64) []int {
	var out []int
	for k, c := range f.coords {
		if dist(x, c) <= r {
			out = append(out, f.nodeIDs[k])
		}
	}
	return out
}
