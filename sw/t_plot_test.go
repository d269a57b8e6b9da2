// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sw

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// plotProps plots density and viscosities versus temperature for a few salinities
func plotProps(o *Props, T []float64, Ss []float64, dirout, fnkey string) {
	plt.Reset(true, &plt.A{Prop: 1.5})
	for _, S := range Ss {
		lbl := io.Sf("S=%g", S)
		ρ := make([]float64, len(T))
		μ := make([]float64, len(T))
		ν := make([]float64, len(T))
		for i, t := range T {
			ρ[i] = o.RhoSw(t, S)
			μ[i] = o.DynamicViscosity(t, S)
			ν[i] = o.KinematicViscosity(t, S)
		}
		plt.Subplot(3, 1, 1)
		plt.Plot(T, ρ, &plt.A{L: lbl, NoClip: true})
		plt.Gll("$T$", "$\\rho_{sw}$", nil)
		plt.Subplot(3, 1, 2)
		plt.Plot(T, μ, &plt.A{L: lbl, NoClip: true})
		plt.Gll("$T$", "$\\mu$", nil)
		plt.Subplot(3, 1, 3)
		plt.Plot(T, ν, &plt.A{L: lbl, NoClip: true})
		plt.Gll("$T$", "$\\nu$", nil)
	}
	plt.Save(dirout, fnkey)
}

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	if chk.Verbose {
		plotProps(Default(), utl.LinSpace(0, 40, 41), []float64{0, 20, 35, 42}, "/tmp/sw-properties", "sw_plot01")
	}
}
