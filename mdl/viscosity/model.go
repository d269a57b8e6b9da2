// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package viscosity implements models for the dynamic viscosity of seawater
//  Inputs are the temperature θ [°C] and the salinity s [g/kg]. Outputs are in [Pa·s].
//  References:
//   [1] Sharqawy MH, Lienhard JH and Zubair SM (2010) Thermophysical properties of seawater:
//       a review of existing correlations and data. Desalination and Water Treatment,
//       16(1-3), 354-380, http://dx.doi.org/10.5004/dwt.2010.1079
package viscosity

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines viscosity models
type Model interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Mu(θ, s float64) float64         // dynamic viscosity μ
	DmuDT(θ, s float64) float64      // ∂μ/∂θ
	DmuDs(θ, s float64) float64      // ∂μ/∂s
}

// New returns new viscosity model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'viscosity' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
