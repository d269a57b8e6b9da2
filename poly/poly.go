// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poly implements polynomials given by coefficient tables
//
//   p(x) = c[0] + c[1] x + c[2] x² + ... + c[n] xⁿ
//
package poly

// Eval evaluates p(x) using Horner's method. Returns 0 if c is empty
func Eval(c []float64, x float64) (res float64) {
	for i := len(c) - 1; i >= 0; i-- {
		res = res*x + c[i]
	}
	return
}

// Deriv evaluates dp/dx = c[1] + 2 c[2] x + ... + n c[n] xⁿ⁻¹
func Deriv(c []float64, x float64) (res float64) {
	for i := len(c) - 1; i > 0; i-- {
		res = res*x + float64(i)*c[i]
	}
	return
}
