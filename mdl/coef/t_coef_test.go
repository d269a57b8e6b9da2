// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coef

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_coef01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coef01")

	a := []float64{1, 2, 3}
	b := []float64{4}
	tables := map[byte][]float64{'a': a, 'b': b}

	if !Set(tables, "a2", 30) {
		tst.Errorf("Set failed with valid key\n")
		return
	}
	if !Set(tables, "b0", 40) {
		tst.Errorf("Set failed with valid key\n")
		return
	}
	chk.Array(tst, "a", 1e-17, a, []float64{1, 2, 30})
	chk.Array(tst, "b", 1e-17, b, []float64{40})

	for _, key := range []string{"", "a", "a3", "b1", "c0", "a-1", "ax"} {
		if Set(tables, key, 0) {
			tst.Errorf("Set should have failed with key %q\n", key)
		}
	}

	prms := Prms("a", a)
	chk.Int(tst, "len(prms)", len(prms), 3)
	chk.String(tst, prms[2].N, "a2")
	chk.Float64(tst, "a2", 1e-17, prms[2].V, 30)
	p := prms.Find("a1")
	if p == nil {
		tst.Errorf("cannot find a1\n")
		return
	}
	chk.Float64(tst, "a1", 1e-17, p.V, 2)
}
