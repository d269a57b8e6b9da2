// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/djessop/sw-properties/inp"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "examples/seawater/seawater", ".mat", true)
	matname := io.ArgToString(1, "sea")
	T := io.ArgToFloat(2, 25)
	S := io.ArgToFloat(3, 35)
	verbose := io.ArgToBool(4, true)

	// message
	if verbose {
		io.PfWhite("\nSeawater properties\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"materials file path", "fnamepath", fnamepath,
			"seawater material", "matname", matname,
			"temperature", "T", T,
			"salinity", "S", S,
			"show messages", "verbose", verbose,
		))
	}

	// materials database
	b := io.ReadFile(fnamepath)
	mdb, err := inp.ParseMat(b)
	if err != nil {
		chk.Panic("%v", err)
	}
	mat, ok := mdb.Seawaters[matname]
	if !ok {
		chk.Panic("cannot find seawater material named %q", matname)
	}
	o := mat.Props

	// results
	io.Pf("units = %v\n", o.Units)
	io.Pf("%14s%23s\n", "property", "value")
	io.Pf("%14s%23.15e\n", "ρw", o.RhoPlainWater(T))
	io.Pf("%14s%23.15e\n", "Δρ", o.DeltaRho(T, S))
	io.Pf("%14s%23.15e\n", "ρsw", o.RhoSw(T, S))
	io.Pf("%14s%23.15e\n", "∂ρsw/∂T", o.DrhoSwDT(T, S))
	io.Pf("%14s%23.15e\n", "∂ρsw/∂S", o.DrhoSwDs(T, S))
	io.Pf("%14s%23.15e\n", "μ", o.DynamicViscosity(T, S))
	io.Pf("%14s%23.15e\n", "ν", o.KinematicViscosity(T, S))
}
