// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package coef implements coefficient tables exposed as model parameters
package coef

import (
	"strconv"

	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Set sets tables[key[0]][i] = v for keys like "a3". Returns false if key is invalid
func Set(tables map[byte][]float64, key string, v float64) bool {
	if len(key) < 2 {
		return false
	}
	c, ok := tables[key[0]]
	if !ok {
		return false
	}
	i, err := strconv.Atoi(key[1:])
	if err != nil || i < 0 || i >= len(c) {
		return false
	}
	c[i] = v
	return true
}

// Prms returns parameters named prefix0, prefix1, ...
func Prms(prefix string, c []float64) (prms dbf.Params) {
	for i, v := range c {
		prms = append(prms, &dbf.P{N: io.Sf("%s%d", prefix, i), V: v})
	}
	return
}
