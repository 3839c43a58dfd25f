// Copyright 2021 - 2024 The PeriDEM-go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loading

import (
	"math"

	"github.com/prashjha/PeriDEM-sub001/geometry"
)

// hatFunction is the tent function peaking at the midpoint of [lo,hi]
// and vanishing at the endpoints, the normalized shape a hat_x/hat_y
// spatial BC evaluates against.
func hatFunction(x, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	t := (x - lo) / (hi - lo)
	v := 1 - math.Abs(2*t-1)
	if v < 0 {
		return 0
	}
	return v
}

// linearStepFunc ramps linearly from 0 at t1 to 1 at t2, holding at 0
// before t1 and 1 after t2.
func linearStepFunc(time, t1, t2 float64) float64 {
	if time <= t1 {
		return 0
	}
	if time >= t2 {
		return 1
	}
	if t2 <= t1 {
		return 1
	}
	return (time - t1) / (t2 - t1)
}

// SpatialFactor evaluates a BC's spatial function at reference position
// x within the given bounding box, matching
// particleFLoading.cpp's spatial-function dispatch.
func SpatialFactor(bc BCBaseDeck, x geometry.Vec3, lo, hi geometry.Vec3) float64 {
	if len(bc.SpatialFnParams) == 0 {
		return 1
	}
	p0 := bc.SpatialFnParams[0]
	switch bc.SpatialFnType {
	case "hat_x":
		return p0 * hatFunction(x[0], lo[0], hi[0])
	case "hat_y":
		return p0 * hatFunction(x[1], lo[1], hi[1])
	case "sin_x":
		a := math.Pi * p0
		return p0 * math.Sin(a*x[0])
	case "sin_y":
		a := math.Pi * p0
		return p0 * math.Sin(a*x[1])
	case "linear_x":
		return p0 * p0 * x[0]
	case "linear_y":
		return p0 * p0 * x[1]
	default:
		return 1
	}
}

// TimeFactor evaluates a BC's time function at time t, matching
// particleFLoading.cpp's time-function dispatch. The overall
// slope (TimeFnParams[0]) is applied by the caller, matching the
// source's "multiply by the slope" step applied after this dispatch.
func TimeFactor(bc BCBaseDeck, t float64) float64 {
	if len(bc.TimeFnParams) == 0 {
		return 1
	}
	switch bc.TimeFnType {
	case "linear":
		return t
	case "linear_step":
		if len(bc.TimeFnParams) < 3 {
			return 1
		}
		return linearStepFunc(t, bc.TimeFnParams[1], bc.TimeFnParams[2])
	case "linear_slow_fast":
		if len(bc.TimeFnParams) < 4 {
			return t
		}
		if t > bc.TimeFnParams[1] {
			return bc.TimeFnParams[3] * t
		}
		return bc.TimeFnParams[2] * t
	case "sin":
		if len(bc.TimeFnParams) < 2 {
			return math.Sin(math.Pi * t)
		}
		a := math.Pi * bc.TimeFnParams[1]
		return math.Sin(a * t)
	default:
		return 1
	}
}

// Evaluate returns the full scalar load magnitude for BC bc at time t
// and reference position x within box [lo,hi], equal to
// SpatialFactor * TimeFactor * TimeFnParams[0] (the slope), matching
// particleFLoading.cpp's "fmax *= bc.d_timeFnParams[0]" step.
func Evaluate(bc BCBaseDeck, t float64, x, lo, hi geometry.Vec3) float64 {
	fmax := SpatialFactor(bc, x, lo, hi) * TimeFactor(bc, t)
	if len(bc.TimeFnParams) > 0 {
		fmax *= bc.TimeFnParams[0]
	}
	return fmax
}
