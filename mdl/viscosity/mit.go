// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/djessop/sw-properties/mdl/coef"
	"github.com/djessop/sw-properties/poly"
	"github.com/djessop/sw-properties/units"
)

// Mit implements Eqs. (22) and (23) of [1] (MIT seawater library)
//
//   μw = c3 + 1 / (c0 (θ + c1)² + c2)
//   μ  = μw (1 + A w + B w²)
//   A  = c4 + c5 θ + c6 θ²
//   B  = c7 + c8 θ + c9 θ²
//
//  where w = s/1000 is the mass fraction of salt and μw is the IAPWS 2008 fit for pure
//  water. Validity: 0 < θ < 180 °C; 0 < s < 150 g/kg. Accuracy: 1.5%
type Mit struct {
	C [10]float64 // coefficients
}

// published coefficients
var mitC = [10]float64{
	1.5700386464e-01, 6.4992620050e+01, -9.1296496657e+01, 4.2844324477e-05,
	1.5409136040e+00, 1.9981117208e-02, -9.5203865864e-05,
	7.9739318223e+00, -7.5614568881e-02, 4.7237011074e-04,
}

// add model to factory
func init() {
	allocators["mit"] = func() Model { return new(Mit) }
}

// Init initialises model. Missing parameters take the published values
func (o *Mit) Init(prms dbf.Params) (err error) {
	o.C = mitC
	tables := map[byte][]float64{'c': o.C[:]}
	for _, p := range prms {
		if !coef.Set(tables, strings.ToLower(p.N), p.V) {
			return chk.Err("mit: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Mit) GetPrms(example bool) dbf.Params {
	c := o.C
	if example {
		c = mitC
	}
	return coef.Prms("c", c[:])
}

// Muw computes the viscosity of pure water
func (o Mit) Muw(θ float64) float64 {
	x := θ + o.C[1]
	return o.C[3] + 1.0/(o.C[0]*x*x+o.C[2])
}

// DmuwDT computes ∂μw/∂θ
func (o Mit) DmuwDT(θ float64) float64 {
	x := θ + o.C[1]
	d := o.C[0]*x*x + o.C[2]
	return -2.0 * o.C[0] * x / (d * d)
}

// Mu computes μ
func (o Mit) Mu(θ, s float64) float64 {
	return o.Muw(θ) * o.factor(θ, s)
}

// DmuDT computes ∂μ/∂θ
func (o Mit) DmuDT(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	dfac := poly.Deriv(o.C[4:7], θ)*w + poly.Deriv(o.C[7:10], θ)*w*w
	return o.DmuwDT(θ)*o.factor(θ, s) + o.Muw(θ)*dfac
}

// DmuDs computes ∂μ/∂s with s in g/kg
func (o Mit) DmuDs(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	return o.Muw(θ) * (poly.Eval(o.C[4:7], θ) + 2*poly.Eval(o.C[7:10], θ)*w) * units.GkgToKgPerKg
}

// factor computes 1 + A w + B w²
func (o Mit) factor(θ, s float64) float64 {
	w := s * units.GkgToKgPerKg
	return 1 + poly.Eval(o.C[4:7], θ)*w + poly.Eval(o.C[7:10], θ)*w*w
}
