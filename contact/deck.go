// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contact implements the inter-particle/particle-wall contact
// engine: spatial indexing (coarse bounding-sphere search then fine
// near-boundary node search) plus a normal-spring + damping + Coulomb-
// friction force law per candidate node pair, matching spec.md §4.4.
package contact

import "math"

// PairDeck holds the contact-law parameters for one ordered pair of
// particle zones. Field names and the Get* helper formulas match
// contactDeck.h's ContactPairDeck.
type PairDeck struct {
	ContactR        float64
	ComputeContactR bool

	VMax     float64
	DeltaMax float64
	Kn       float64

	Eps   float64
	Betan float64

	Mu            float64
	DampingOn     bool
	FrictionOn    bool
	KnFactor      float64
	BetanFactor   float64
	Kappa         float64
}

// DefaultPairDeck returns a deck with ContactPairDeck's default-constructor
// values (DampingOn/FrictionOn true, KnFactor/BetanFactor/Kappa 1).
func DefaultPairDeck() PairDeck {
	return PairDeck{
		ComputeContactR: true,
		DampingOn:       true,
		FrictionOn:      true,
		KnFactor:        1,
		BetanFactor:     1,
		Kappa:           1,
	}
}

// GetKn returns the particle-particle normal spring factor for two nodes
// of volumes v1, v2: Kn*(v1*v2)/(v1+v2).
func (d PairDeck) GetKn(v1, v2 float64) float64 {
	return d.Kn * (v1 * v2) / (v1 + v2)
}

// GetWKn returns the particle-wall normal spring factor for a node of
// volume v: Kn*v.
func (d PairDeck) GetWKn(v float64) float64 {
	return d.Kn * v
}

// GetBetan returns the particle-particle damping factor for two nodes of
// volumes v1, v2: Betan*sqrt((v1*v2)/(v1+v2)).
func (d PairDeck) GetBetan(v1, v2 float64) float64 {
	return d.Betan * math.Sqrt((v1*v2)/(v1+v2))
}

// GetWBetan returns the particle-wall damping factor for a node of
// volume v: Betan*sqrt(v).
func (d PairDeck) GetWBetan(v float64) float64 {
	return d.Betan * math.Sqrt(v)
}

// Deck holds the contact parameters for every ordered pair of zones,
// indexed [i][j], matching ContactDeck::d_data.
type Deck struct {
	Data [][]PairDeck
}

// Get returns the contact deck for the ordered zone pair (i, j).
func (d Deck) Get(i, j int) PairDeck { return d.Data[i][j] }
