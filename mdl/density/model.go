// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package density implements models for the density of seawater at atmospheric pressure
//  The density is split into a pure water part and a salinity correction:
//    ρsw(θ, s) = ρw(θ) + Δρ(θ, s)
//  where θ is the temperature [°C] and s the salinity [g/kg]. Outputs are in [kg/m³].
//  References:
//   [1] Sharqawy MH, Lienhard JH and Zubair SM (2010) Thermophysical properties of seawater:
//       a review of existing correlations and data. Desalination and Water Treatment,
//       16(1-3), 354-380, http://dx.doi.org/10.5004/dwt.2010.1079
//   [2] UNESCO (1981) Background papers and supporting data on the international equation of
//       state of seawater 1980. UNESCO Technical Papers in Marine Science 38
package density

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines density models
type Model interface {
	Init(prms dbf.Params) error       // initialises model
	GetPrms(example bool) dbf.Params  // gets (an example) of parameters
	Rhow(θ float64) float64           // density of pure water ρw
	DrhowDT(θ float64) float64        // ∂ρw/∂θ
	DeltaRho(θ, s float64) float64    // salinity correction Δρ; Δρ(θ, 0) = 0
	DdeltaRhoDT(θ, s float64) float64 // ∂Δρ/∂θ
	DdeltaRhoDs(θ, s float64) float64 // ∂Δρ/∂s
}

// New returns new density model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'density' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
