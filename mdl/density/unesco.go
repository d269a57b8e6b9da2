// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/djessop/sw-properties/mdl/coef"
	"github.com/djessop/sw-properties/poly"
)

// Unesco implements the one-atmosphere international equation of state of seawater
// (EOS-80) given by [2]
//
//   ρw = w0 + w1 θ + w2 θ² + w3 θ³ + w4 θ⁴ + w5 θ⁵   (SMOW)
//   Δρ = B(θ) s + C(θ) s^(3/2) + d0 s²
//   B  = b0 + b1 θ + b2 θ² + b3 θ³ + b4 θ⁴
//   C  = c0 + c1 θ + c2 θ²
//
//  where s is the practical salinity (taken as g/kg). Validity: -2 < θ < 40 °C; 0 < s < 42.
//  Note: s < 0 yields NaN
type Unesco struct {
	W [6]float64 // pure water (SMOW) coefficients
	B [5]float64 // coefficients of s
	C [3]float64 // coefficients of s^(3/2)
	D [1]float64 // coefficient of s²
}

// published coefficients
var (
	unescoW = [6]float64{999.842594, 6.793952e-2, -9.095290e-3, 1.001685e-4, -1.120083e-6, 6.536332e-9}
	unescoB = [5]float64{8.24493e-1, -4.0899e-3, 7.6438e-5, -8.2467e-7, 5.3875e-9}
	unescoC = [3]float64{-5.72466e-3, 1.0227e-4, -1.6546e-6}
	unescoD = [1]float64{4.8314e-4}
)

// add model to factory
func init() {
	allocators["unesco"] = func() Model { return new(Unesco) }
}

// Init initialises model. Missing parameters take the published values
func (o *Unesco) Init(prms dbf.Params) (err error) {
	o.W, o.B, o.C, o.D = unescoW, unescoB, unescoC, unescoD
	tables := map[byte][]float64{'w': o.W[:], 'b': o.B[:], 'c': o.C[:], 'd': o.D[:]}
	for _, p := range prms {
		if !coef.Set(tables, strings.ToLower(p.N), p.V) {
			return chk.Err("unesco: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Unesco) GetPrms(example bool) (prms dbf.Params) {
	w, b, c, d := o.W, o.B, o.C, o.D
	if example {
		w, b, c, d = unescoW, unescoB, unescoC, unescoD
	}
	prms = append(prms, coef.Prms("w", w[:])...)
	prms = append(prms, coef.Prms("b", b[:])...)
	prms = append(prms, coef.Prms("c", c[:])...)
	return append(prms, coef.Prms("d", d[:])...)
}

// Rhow computes ρw
func (o Unesco) Rhow(θ float64) float64 {
	return poly.Eval(o.W[:], θ)
}

// DrhowDT computes ∂ρw/∂θ
func (o Unesco) DrhowDT(θ float64) float64 {
	return poly.Deriv(o.W[:], θ)
}

// DeltaRho computes Δρ
func (o Unesco) DeltaRho(θ, s float64) float64 {
	return poly.Eval(o.B[:], θ)*s + poly.Eval(o.C[:], θ)*s*math.Sqrt(s) + o.D[0]*s*s
}

// DdeltaRhoDT computes ∂Δρ/∂θ
func (o Unesco) DdeltaRhoDT(θ, s float64) float64 {
	return poly.Deriv(o.B[:], θ)*s + poly.Deriv(o.C[:], θ)*s*math.Sqrt(s)
}

// DdeltaRhoDs computes ∂Δρ/∂s
func (o Unesco) DdeltaRhoDs(θ, s float64) float64 {
	return poly.Eval(o.B[:], θ) + 1.5*poly.Eval(o.C[:], θ)*math.Sqrt(s) + 2*o.D[0]*s
}
