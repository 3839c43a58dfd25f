// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loading implements boundary conditions and initial conditions:
// node-selection logic, time/spatial load functions, and velocity/angular
// -velocity initial conditions, matching particleLoadingUtil.cpp,
// particleFLoading.cpp, and particleIC.cpp.
package loading

import "github.com/prashjha/PeriDEM-sub001/geometry"

// SelectionType enumerates how a BC decides which particles/nodes it
// applies to, mirroring BCBaseDeck::d_selectionType.
type SelectionType string

const (
	SelectionParticle                          SelectionType = "particle"
	SelectionRegion                            SelectionType = "region"
	SelectionRegionWithInclude                 SelectionType = "region_with_include_list"
	SelectionRegionWithExclude                 SelectionType = "region_with_exclude_list"
	SelectionRegionWithIncludeAndExclude        SelectionType = "region_with_include_list_with_exclude_list"
)

// BCBaseDeck is the common configuration shared by force and velocity
// boundary conditions, matching bcBaseDeck.h's field set as consumed by
// the BC-application logic.
type BCBaseDeck struct {
	SelectionType   SelectionType
	IsRegionActive  bool
	Region          geometry.GeomObject
	ParticleList    []int
	ExcludeList     []int
	Direction       []int // 1=x, 2=y, 3=z
	SpatialFnType   string
	SpatialFnParams []float64
	TimeFnType      string
	TimeFnParams    []float64
}

func isInList(id int, list []int) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// NeedToProcessParticle reports whether this BC applies to particle id
// at all, before per-node dof checks. Ported verbatim from
// particleLoadingUtil.cpp's needToProcessParticle.
func NeedToProcessParticle(id int, bc BCBaseDeck) bool {
	skip1 := (bc.SelectionType == SelectionParticle || bc.SelectionType == SelectionRegionWithInclude) &&
		!isInList(id, bc.ParticleList)
	skip2 := bc.SelectionType == SelectionRegionWithExclude && isInList(id, bc.ExcludeList)
	skip3 := bc.SelectionType == SelectionRegionWithIncludeAndExclude &&
		(isInList(id, bc.ExcludeList) || !isInList(id, bc.ParticleList))
	return !(skip1 || skip2 || skip3)
}

// NeedToComputeDof reports whether node x of particle id should have
// this BC's dof applied, given the BC's region/list configuration.
// Ported verbatim from particleLoadingUtil.cpp's needToComputeDof.
func NeedToComputeDof(x geometry.Vec3, id int, bc BCBaseDeck) bool {
	if !bc.IsRegionActive {
		return bc.SelectionType == SelectionParticle && isInList(id, bc.ParticleList)
	}
	if bc.Region == nil {
		return false
	}
	inside := bc.Region.IsInside(x)
	switch bc.SelectionType {
	case SelectionRegion:
		return inside
	case SelectionRegionWithInclude:
		return inside && isInList(id, bc.ParticleList)
	case SelectionRegionWithExclude:
		return inside && !isInList(id, bc.ExcludeList)
	case SelectionRegionWithIncludeAndExclude:
		return inside && isInList(id, bc.ParticleList) && !isInList(id, bc.ExcludeList)
	}
	return false
}
