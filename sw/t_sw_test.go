// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sw

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw01. identities")

	for _, T := range utl.LinSpace(-2, 40, 8) {
		chk.Float64(tst, "Δρ(T,0)", 1e-17, DeltaRho(T, 0), 0)
		chk.Float64(tst, "ρsw(T,0) = ρw(T)", 1e-17, RhoSw(T, 0), RhoPlainWater(T))
		chk.Float64(tst, "ρplain = ρw", 1e-17, RhoPlain(T), RhoPlainWater(T))
		chk.Float64(tst, "∂ρw/∂S", 1e-17, DrhoPlainWaterDs(T), 0)
		for _, S := range utl.LinSpace(0, 42, 8) {
			chk.Float64(tst, "ρsw = ρw + Δρ", 1e-17, RhoSw(T, S), RhoPlainWater(T)+DeltaRho(T, S))
			chk.Float64(tst, "∂ρsw/∂T", 1e-17, DrhoSwDT(T, S), DrhoPlainWaterDT(T)+DdeltaRhoDT(T, S))
			chk.Float64(tst, "∂ρsw/∂S", 1e-17, DrhoSwDs(T, S), DdeltaRhoDs(T, S))
			chk.Float64(tst, "ν = μ/ρsw", 1e-17, KinematicViscosity(T, S), DynamicViscosity(T, S)/RhoSw(T, S))
		}
	}
}

func Test_sw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw02. reference values")

	ρ := RhoSw(25, 35)
	io.Pforan("ρsw(25, 35) = %v\n", ρ)
	chk.Float64(tst, "ρsw(25,35)", 1e-8, ρ, 1023.5848378362)
	chk.Float64(tst, "ρsw(25,35) within 0.1%", 1023.3e-3, ρ, 1023.3)
	chk.Float64(tst, "ρw(20)", 1e-8, RhoPlainWater(20), 998.0382388826)

	μ := DynamicViscosity(20, 0)
	io.Pforan("μ(20, 0) = %v\n", μ)
	chk.Float64(tst, "μ(20,0)", 1e-15, μ, 1.001746305116e-03)
	chk.Float64(tst, "μ(20,0) within 1.5%", 1.5e-5, μ, 1.002e-3)

	chk.Float64(tst, "ν(20,0)", 1e-17, KinematicViscosity(20, 0), 1.003715354872e-06)
	chk.Float64(tst, "ν(25,35)", 1e-17, KinematicViscosity(25, 35), 9.367186346748e-07)
}

func Test_sw03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw03. derivatives")

	h := 1e-3
	for _, T := range utl.LinSpace(-2, 40, 6) {
		chk.DerivScaSca(tst, "∂ρw/∂T  ", 1e-8, DrhoPlainWaterDT(T), T, h, chk.Verbose, func(x float64) float64 {
			return RhoPlainWater(x)
		})
		for _, S := range utl.LinSpace(0, 42, 6) {
			chk.DerivScaSca(tst, "∂Δρ/∂T  ", 1e-8, DdeltaRhoDT(T, S), T, h, chk.Verbose, func(x float64) float64 {
				return DeltaRho(x, S)
			})
			chk.DerivScaSca(tst, "∂Δρ/∂S  ", 1e-8, DdeltaRhoDs(T, S), S, h, chk.Verbose, func(x float64) float64 {
				return DeltaRho(T, x)
			})
			chk.DerivScaSca(tst, "∂ρsw/∂T ", 1e-8, DrhoSwDT(T, S), T, h, chk.Verbose, func(x float64) float64 {
				return RhoSw(x, S)
			})
			chk.DerivScaSca(tst, "∂ρsw/∂S ", 1e-8, DrhoSwDs(T, S), S, h, chk.Verbose, func(x float64) float64 {
				return RhoSw(T, x)
			})
		}
	}
}
