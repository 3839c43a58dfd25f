// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package state implements the flat, particle-agnostic state store: one
// struct-of-arrays keyed by global node id, shared by every component of
// the simulation pipeline (spec.md §4.1). No component owns a private copy
// of a node's position, velocity, or force — they all index into this
// store via (global_offset + local_node_id).
package state

import "github.com/cpmech/gosl/chk"

// Store holds per-node fields for every node of every particle, in a
// single contiguous id space [0, N).
type Store struct {
	XRef     [][3]float64 // reference (material) coordinate; immutable after construction
	X        [][3]float64 // current coordinate
	U        [][3]float64 // displacement
	V        [][3]float64 // velocity
	F        [][3]float64 // force
	Vol      []float64    // integration weight
	Fix      []uint8      // bit d set => dof d is velocity-clamped
	ForceFix []uint8      // bit d set => dof d is force-clamped
	Theta    []float64    // peridynamic dilatation (state-based materials only)
	M        []float64    // peridynamic weighted volume (state-based materials only)
	OwnerPID []int        // owning particle id
	Z        []float64    // node damage: fraction of broken bonds
}

// New allocates a Store sized for n nodes.
func New(n int) *Store {
	return &Store{
		XRef:     make([][3]float64, n),
		X:        make([][3]float64, n),
		U:        make([][3]float64, n),
		V:        make([][3]float64, n),
		F:        make([][3]float64, n),
		Vol:      make([]float64, n),
		Fix:      make([]uint8, n),
		ForceFix: make([]uint8, n),
		Theta:    make([]float64, n),
		M:        make([]float64, n),
		OwnerPID: make([]int, n),
		Z:        make([]float64, n),
	}
}

// N returns the total number of nodes in the store.
func (s *Store) N() int { return len(s.XRef) }

// Damage returns the per-node damage field Z (broken-bond fraction).
func (s *Store) Damage() []float64 { return s.Z }

// ClearForces zeroes the force array; called once at the start of every step.
func (s *Store) ClearForces() {
	for i := range s.F {
		s.F[i] = [3]float64{}
	}
}

// Clone deep-copies the store, so later writes to either copy leave the
// other unchanged.
func (s *Store) Clone() *Store {
	n := s.N()
	c := New(n)
	copy(c.XRef, s.XRef)
	copy(c.X, s.X)
	copy(c.U, s.U)
	copy(c.V, s.V)
	copy(c.F, s.F)
	copy(c.Vol, s.Vol)
	copy(c.Fix, s.Fix)
	copy(c.ForceFix, s.ForceFix)
	copy(c.Theta, s.Theta)
	copy(c.M, s.M)
	copy(c.OwnerPID, s.OwnerPID)
	copy(c.Z, s.Z)
	return c
}

// checkIndex panics with a named diagnostic when i is out of range. Compiled
// in under the peridem_debug build tag; see debug_on.go / debug_off.go.
func (s *Store) checkIndex(i int) {
	if debugChecksEnabled && (i < 0 || i >= s.N()) {
		chk.Panic("state: node index %d out of range [0,%d)", i, s.N())
	}
}

// GetX returns the current coordinate of node i.
func (s *Store) GetX(i int) [3]float64 { s.checkIndex(i); return s.X[i] }

// SetX sets the current coordinate of node i.
func (s *Store) SetX(i int, x [3]float64) { s.checkIndex(i); s.X[i] = x }

// GetU returns the displacement of node i.
func (s *Store) GetU(i int) [3]float64 { s.checkIndex(i); return s.U[i] }

// SetU sets the displacement of node i.
func (s *Store) SetU(i int, u [3]float64) { s.checkIndex(i); s.U[i] = u }

// GetV returns the velocity of node i.
func (s *Store) GetV(i int) [3]float64 { s.checkIndex(i); return s.V[i] }

// SetV sets the velocity of node i.
func (s *Store) SetV(i int, v [3]float64) { s.checkIndex(i); s.V[i] = v }

// GetF returns the force on node i.
func (s *Store) GetF(i int) [3]float64 { s.checkIndex(i); return s.F[i] }

// AddF adds df to the force on node i.
func (s *Store) AddF(i int, df [3]float64) {
	s.checkIndex(i)
	s.F[i][0] += df[0]
	s.F[i][1] += df[1]
	s.F[i][2] += df[2]
}
