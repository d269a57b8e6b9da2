// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01")

	chk.Float64(tst, "empty", 1e-17, Eval(nil, 3), 0)
	chk.Float64(tst, "empty'", 1e-17, Deriv(nil, 3), 0)
	chk.Float64(tst, "cte", 1e-17, Eval([]float64{4}, 3), 4)
	chk.Float64(tst, "cte'", 1e-17, Deriv([]float64{4}, 3), 0)

	// p(x) = 1 - 2x + 3x² + 0.5x³
	c := []float64{1, -2, 3, 0.5}
	for _, x := range utl.LinSpace(-2, 2, 9) {
		p := 1 - 2*x + 3*x*x + 0.5*x*x*x
		d := -2 + 6*x + 1.5*x*x
		chk.Float64(tst, "p(x)", 1e-14, Eval(c, x), p)
		chk.Float64(tst, "dp/dx", 1e-14, Deriv(c, x), d)
		chk.DerivScaSca(tst, "dp/dx", 1e-6, Deriv(c, x), x, 1e-3, chk.Verbose, func(t float64) float64 {
			return Eval(c, t)
		})
	}
}
