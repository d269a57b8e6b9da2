// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/djessop/sw-properties/mdl/coef"
	"github.com/djessop/sw-properties/poly"
	"github.com/djessop/sw-properties/units"
)

// Mit implements Eq. (8) of [1] (MIT seawater library)
//
//   ρw = a0 + a1 θ + a2 θ² + a3 θ³ + a4 θ⁴
//   Δρ = b0 w + b1 w θ + b2 w θ² + b3 w θ³ + b4 w² θ²
//
//  where w = s/1000 is the mass fraction of salt. Validity: 0 < θ < 180 °C; 0 < s < 160 g/kg.
//  Accuracy: 0.1%
type Mit struct {
	A [5]float64 // pure water coefficients
	B [5]float64 // salinity coefficients
}

// published coefficients
var (
	mitA = [5]float64{9.9992293295e+02, 2.0341179217e-02, -6.1624591598e-03, 2.2614664708e-05, -4.6570659168e-08}
	mitB = [5]float64{8.0200240891e+02, -2.0005183488e+00, 1.6771024982e-02, -3.0600536746e-05, -1.6132224742e-05}
)

// add model to factory
func init() {
	allocators["mit"] = func() Model { return new(Mit) }
}

// Init initialises model. Missing parameters take the published values
func (o *Mit) Init(prms dbf.Params) (err error) {
	o.A, o.B = mitA, mitB
	tables := map[byte][]float64{'a': o.A[:], 'b': o.B[:]}
	for _, p := range prms {
		if !coef.Set(tables, strings.ToLower(p.N), p.V) {
			return chk.Err("mit: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Mit) GetPrms(example bool) dbf.Params {
	a, b := o.A, o.B
	if example {
		a, b = mitA, mitB
	}
	return append(coef.Prms("a", a[:]), coef.Prms("b", b[:])...)
}

// Rhow computes ρw
func (o Mit) Rhow(θ float64) float64 {
	return poly.Eval(o.A[:], θ)
}

// DrhowDT computes ∂ρw/∂θ
func (o Mit) DrhowDT(θ float64) float64 {
	return poly.Deriv(o.A[:], θ)
}

// DeltaRho computes Δρ
func (o Mit) DeltaRho(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	return w*poly.Eval(o.B[:4], θ) + o.B[4]*w*w*θ*θ
}

// DdeltaRhoDT computes ∂Δρ/∂θ
func (o Mit) DdeltaRhoDT(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	return w*poly.Deriv(o.B[:4], θ) + 2*o.B[4]*w*w*θ
}

// DdeltaRhoDs computes ∂Δρ/∂s with s in g/kg
func (o Mit) DdeltaRhoDs(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	return (poly.Eval(o.B[:4], θ) + 2*o.B[4]*w*θ*θ) * units.GkgToKgPerKg
}
