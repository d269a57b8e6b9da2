// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscosity

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_mit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mit01")

	mdl, err := New("mit")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// reference values
	chk.Float64(tst, "μ(0,0)", 1e-15, mdl.Mu(0, 0), 1.791419462802e-03)
	chk.Float64(tst, "μ(20,0)", 1e-15, mdl.Mu(20, 0), 1.001746305116e-03)
	chk.Float64(tst, "μ(25,35)", 1e-15, mdl.Mu(25, 35), 9.588109917718e-04)
	chk.Float64(tst, "μ(10,30)", 1e-15, mdl.Mu(10, 30), 1.382353725324e-03)

	// fresh water at 20°C within the 1.5% accuracy of the correlation
	chk.Float64(tst, "μ(20,0) ~ 1.002e-3", 1.5e-5, mdl.Mu(20, 0), 1.002e-3)

	// pure water
	m := mdl.(*Mit)
	for _, θ := range []float64{0, 20, 80} {
		chk.Float64(tst, "μ(θ,0) = μw", 1e-17, mdl.Mu(θ, 0), m.Muw(θ))
	}

	// derivatives
	h := 1e-3
	for _, θ := range utl.LinSpace(0, 90, 7) {
		chk.DerivScaSca(tst, "∂μw/∂θ", 1e-11, m.DmuwDT(θ), θ, h, chk.Verbose, func(x float64) float64 {
			return m.Muw(x)
		})
		for _, s := range utl.LinSpace(0, 120, 7) {
			chk.DerivScaSca(tst, "∂μ/∂θ ", 1e-11, mdl.DmuDT(θ, s), θ, h, chk.Verbose, func(x float64) float64 {
				return mdl.Mu(x, s)
			})
			chk.DerivScaSca(tst, "∂μ/∂s ", 1e-11, mdl.DmuDs(θ, s), s, h, chk.Verbose, func(x float64) float64 {
				return mdl.Mu(θ, x)
			})
		}
	}
}

func Test_mit02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mit02")

	_, err := New("sharqawy")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
		return
	}

	mdl := new(Mit)
	err = mdl.Init(dbf.Params{&dbf.P{N: "C3", V: 0}})
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}
	chk.Float64(tst, "c3", 1e-17, mdl.C[3], 0)
	chk.Float64(tst, "c0", 1e-17, mdl.C[0], mitC[0])
	chk.Int(tst, "len(prms)", len(mdl.GetPrms(false)), 10)
	example := mdl.GetPrms(true)
	chk.Float64(tst, "c3 (example)", 1e-17, example.Find("c3").V, mitC[3])

	err = mdl.Init(dbf.Params{&dbf.P{N: "a0", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with a0\n")
		return
	}
	io.Pforan("err = %v\n", err)
}
