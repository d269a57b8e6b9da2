// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// CheckDerivs checks all derivatives of a density model against numerical derivatives
// on a grid of npts × npts (θ, s) stations
func CheckDerivs(tst *testing.T, mdl Model, θ0, θf, s0, sf float64, npts int, tolT, tolS float64, verbose bool) {
	h := 1e-3
	for _, θ := range utl.LinSpace(θ0, θf, npts) {

		// pure water
		if verbose {
			io.Pforan("\nθ = %g\n", θ)
		}
		chk.DerivScaSca(tst, "∂ρw/∂θ ", tolT, mdl.DrhowDT(θ), θ, h, verbose, func(x float64) float64 {
			return mdl.Rhow(x)
		})

		// salinity correction
		for _, s := range utl.LinSpace(s0, sf, npts) {
			if verbose {
				io.Pf("  s = %g\n", s)
			}
			chk.DerivScaSca(tst, "∂Δρ/∂θ ", tolT, mdl.DdeltaRhoDT(θ, s), θ, h, verbose, func(x float64) float64 {
				return mdl.DeltaRho(x, s)
			})
			chk.DerivScaSca(tst, "∂Δρ/∂s ", tolS, mdl.DdeltaRhoDs(θ, s), s, h, verbose, func(x float64) float64 {
				return mdl.DeltaRho(θ, x)
			})
		}
	}
}
