// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the input data read from a simulation's JSON
// configuration file (encoding/json + chk.Err for I/O and parse errors),
// with PeriDEM's top-level keys: Model, Output, Restart, Test, Force_BC,
// Displacement_BC, IC, Particle, Mesh, Material, Contact, Neighbor,
// Particle_Generation.
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
)

// ModelData holds the top-level simulation control parameters.
type ModelData struct {
	Dimension       int     `json:"Dimension"`        // 2 or 3
	FinalTime       float64 `json:"Final_Time"`        // simulation end time
	NumSteps        int     `json:"Num_Steps"`         // number of time steps
	SpatialScheme   string  `json:"Spatial_Scheme"`    // finite_difference | weak_finite_element | nodal_finite_element
	TimeScheme      string  `json:"Time_Scheme"`       // central_difference | velocity_verlet
	ParticleSimType string  `json:"Particle_Sim_Type"` // Single_Particle | Multi_Particle
	QuadOrder       int     `json:"Quad_Order"`        // quadrature order
	Seed            int64   `json:"Seed"`              // random seed
	Gravity         []float64 `json:"Gravity"`          // [gx, gy, gz], added to the acceleration of every non-wall node
}

// OutputData controls VTK/restart output cadence.
type OutputData struct {
	Path     string `json:"Path"`       // output directory
	Interval int    `json:"Interval"`   // write every N steps
	Format   string `json:"Format"`     // vtu (only format currently supported)
}

// RestartData controls restart-blob writing/reading.
type RestartData struct {
	Enable   bool   `json:"Enable"`
	Path     string `json:"Path"`
	Interval int    `json:"Interval"`
}

// TestData names the scenario test this input corresponds to, purely
// informational: it is parsed but nothing in this module reads it.
type TestData struct {
	Name string `json:"Name"`
}

// MaterialZone is the per-zone material deck: kind, density, horizon,
// elastic constants, influence function, per spec.md §6's Material key.
type MaterialZone struct {
	ZoneID          int       `json:"Zone_Id"`
	Kind            string    `json:"Kind"`             // PMBBond | RNPBond | PDElasticBond | PDState
	Density         float64   `json:"Density"`
	Horizon         float64   `json:"Horizon"`
	BulkModulus     float64   `json:"Bulk_Modulus"`
	ShearModulus    float64   `json:"Shear_Modulus"`
	CriticalStrain  float64   `json:"Critical_Strain"`
	InfluenceFn     string    `json:"Influence_Fn"`     // constant | linear | gaussian
	InfluenceParams []float64 `json:"Influence_Params"`
	PlaneStrain     bool      `json:"Plane_Strain"`
}

// ContactPairZone is the per-ordered-zone-pair contact deck, per
// spec.md §6's Contact key.
type ContactPairZone struct {
	ZoneI              int     `json:"Zone_I"`
	ZoneJ              int     `json:"Zone_J"`
	Kn                 float64 `json:"Kn"`
	VMax               float64 `json:"V_Max"`
	DeltaMax           float64 `json:"Delta_Max"`
	DampingOn          bool    `json:"Damping_On"`
	Epsilon            float64 `json:"Epsilon"`
	KnFactor           float64 `json:"Kn_Factor"`
	BetanFactor        float64 `json:"Betan_Factor"`
	FrictionOn         bool    `json:"Friction_On"`
	Mu                 float64 `json:"Mu"`
	ContactRadius      float64 `json:"Contact_Radius"`
	ContactRadiusFactor float64 `json:"Contact_Radius_Factor"`
}

// NeighborData configures the spatial-index rebuild cadence, per
// spec.md §6's Neighbor key.
type NeighborData struct {
	UpdateCriterion     string  `json:"Update_Criterion"` // simple_all | max_distance_travel
	SearchFactor        float64 `json:"Search_Factor"`
	UpdateInterval      int     `json:"Update_Interval"`
	NearBoundaryTolFactor float64 `json:"Near_Boundary_Tol_Factor"`
}

// MeshZone names the mesh file backing one particle zone.
type MeshZone struct {
	ZoneID int    `json:"Zone_Id"`
	File   string `json:"File"` // .msh or .vtu path
}

// ParticleZone names the reference geometry and horizon backing one
// particle zone, per spec.md §6's Particle key (one RefParticle per
// zone, shared by every transformed instance placed in that zone).
type ParticleZone struct {
	ZoneID                int       `json:"Zone_Id"`
	GeomKind              string    `json:"Geom_Kind"`   // circle | rectangle | square | triangle | hexagon | drum2d | sphere | cube | cuboid | cylinder | line
	GeomParams            []float64 `json:"Geom_Params"`
	Horizon               float64   `json:"Horizon"`
	NearBoundaryTolFactor float64   `json:"Near_Boundary_Tol_Factor"`
	IsWall                bool      `json:"Is_Wall"`
}

// ParticleGenEntry describes one particle instance when generation mode
// is From_File.
type ParticleGenEntry struct {
	X          float64 `json:"X"`
	Y          float64 `json:"Y"`
	Z          float64 `json:"Z"`
	Theta      float64 `json:"Theta"`
	Scale      float64 `json:"Scale"`
	GeomID     int     `json:"Geom_Id"`
	MaterialID int     `json:"Material_Id"`
	ContactID  int     `json:"Contact_Id"`
}

// ParticleGenData selects how particles are generated, per spec.md §6's
// Particle_Generation key.
type ParticleGenData struct {
	Mode    string             `json:"Mode"` // From_File | Use_Particle_Geometry
	Entries []ParticleGenEntry `json:"Entries"`
}

// BCData is the shared JSON shape of Force_BC / Displacement_BC / IC
// entries, per spec.md §6's BC-sets description.
type BCData struct {
	Selection        string    `json:"Selection"`
	ParticleList     []int     `json:"Particle_List"`
	ExcludeList      []int     `json:"Exclude_List"`
	RegionGeomKind   string    `json:"Region_Geom_Kind"`
	RegionGeomParams []float64 `json:"Region_Geom_Params"`
	TimeFnType       string    `json:"Time_Fn_Type"`
	TimeFnParams     []float64 `json:"Time_Fn_Params"`
	SpatialFnType    string    `json:"Spatial_Fn_Type"`
	SpatialFnParams  []float64 `json:"Spatial_Fn_Params"`
	Direction        []int     `json:"Direction"`
	ZeroDisplacement bool      `json:"Zero_Displacement"`
	ICType           string    `json:"IC_Type"` // e.g. Constant_Velocity
	Velocity         []float64 `json:"Velocity"`
	AngularVelocity  []float64 `json:"Angular_Velocity"`
}

// Input is the full top-level JSON document, per spec.md §6.
type Input struct {
	Model              ModelData          `json:"Model"`
	Output             OutputData         `json:"Output"`
	Restart            RestartData        `json:"Restart"`
	Test               TestData           `json:"Test"`
	ForceBC            []BCData           `json:"Force_BC"`
	DisplacementBC     []BCData           `json:"Displacement_BC"`
	IC                 []BCData           `json:"IC"`
	Particle           []ParticleZone     `json:"Particle"`
	Mesh               []MeshZone         `json:"Mesh"`
	Material           []MaterialZone     `json:"Material"`
	Contact            []ContactPairZone  `json:"Contact"`
	Neighbor           NeighborData       `json:"Neighbor"`
	ParticleGeneration ParticleGenData    `json:"Particle_Generation"`
}

// ReadInput reads and parses the simulation's JSON input file, failing
// with a clear error naming the problem file on any I/O or syntax error.
func ReadInput(path string) (*Input, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read input file %q: %v", path, err)
	}
	var in Input
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, chk.Err("inp: cannot parse input file %q: %v", path, err)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return &in, nil
}

// validate checks a subset of the configuration errors spec.md §7 names:
// Model.Dimension must be 2 or 3, Model.Num_Steps must be positive, and
// every Material zone's Kind must be a known material. Zone counts and
// other keys are not checked here.
func (in *Input) validate() error {
	if in.Model.Dimension != 2 && in.Model.Dimension != 3 {
		return chk.Err("inp: Model.Dimension must be 2 or 3, got %d", in.Model.Dimension)
	}
	if in.Model.NumSteps <= 0 {
		return chk.Err("inp: Model.Num_Steps must be positive, got %d", in.Model.NumSteps)
	}
	validKinds := map[string]bool{"PMBBond": true, "RNPBond": true, "PDElasticBond": true, "PDState": true}
	for _, m := range in.Material {
		if !validKinds[m.Kind] {
			return chk.Err("inp: Material zone %d has unknown Kind %q", m.ZoneID, m.Kind)
		}
	}
	return nil
}
