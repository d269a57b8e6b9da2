// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sw

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SalinityFromDensity finds S such that RhoSw(T, S) = ρ using Newton's method
//  Input:
//   T  -- temperature
//   ρ  -- target density (in the output system)
//   S0 -- initial guess
func (o Props) SalinityFromDensity(T, ρ, S0 float64) (S float64, err error) {

	// message
	if o.ShowR {
		io.PfYel("%6s%18s%18s%18s\n", "it", "S", "δS", "r")
	}

	// Newton iterations
	S = S0
	var r, J, δS float64
	var it int
	converged := false
	for it = 0; it <= o.NmaxIt; it++ {
		r = o.RhoSw(T, S) - ρ
		if o.ShowR {
			io.Pfyel("%6d%18.12f%18.12f%18.10e\n", it, S, δS, r)
		}
		if math.Abs(r) < o.Itol {
			converged = true
			break
		}
		if it == o.NmaxIt {
			break
		}
		J = o.DrhoSwDs(T, S)
		if J == 0 {
			return S, chk.Err("∂ρsw/∂S is zero at T=%g, S=%g; cannot find salinity", T, S)
		}
		δS = -r / J
		S += δS
		if math.IsNaN(S) {
			return S, chk.Err("NaN found: T=%v ρ=%v r=%v J=%v\n", T, ρ, r, J)
		}
	}

	// message
	if o.ShowR {
		io.Pfgrey("  T=%g  ρ=%g  S0=%g\n", T, ρ, S0)
		io.Pfgrey("  converged=%v with %d iterations\n", converged, it)
	}

	// check convergence
	if !converged {
		return S, chk.Err("salinity search failed after %d iterations: r=%g\n", it, r)
	}
	return
}

// SalinityFromDensity finds S [g/kg] such that RhoSw(T, S) = ρ [kg/m³]. T in °C
func SalinityFromDensity(T, ρ, S0 float64) (S float64, err error) {
	return std.SalinityFromDensity(T, ρ, S0)
}
