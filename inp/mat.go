// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the database of materials: seawater density and viscosity models,
// their parameters and the units of inputs and outputs
package inp

import (
	"encoding/json"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/djessop/sw-properties/mdl/density"
	"github.com/djessop/sw-properties/mdl/viscosity"
	"github.com/djessop/sw-properties/sw"
	"github.com/djessop/sw-properties/units"
)

// Material holds material data
type Material struct {

	// input
	Name   string     `json:"name"`   // name of material
	Type   string     `json:"type"`   // type of material; "density", "viscosity" or "seawater"
	Model  string     `json:"model"`  // name of model; e.g. "mit", "unesco"
	Extra  string     `json:"extra"`  // seawater: names of density and viscosity materials
	TUnit  string     `json:"tunit"`  // seawater: temperature unit; default = "C"
	SUnit  string     `json:"sunit"`  // seawater: salinity unit; default = "ppt"
	System string     `json:"system"` // seawater: output system; default = "mks"
	Prms   dbf.Params `json:"prms"`   // prms holds all model parameters for this material

	// derived
	Dens  density.Model   // pointer to actual density model
	Visc  viscosity.Model // pointer to actual viscosity model
	Props *sw.Props       // seawater properties
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	Densities   map[string]*Material // subset with materials/models: densities
	Viscosities map[string]*Material // subset with materials/models: viscosities
	Seawaters   map[string]*Material // subset with materials/models: seawaters
}

// ParseMat parses all materials data from the contents of a .mat JSON file
func ParseMat(b []byte) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot decode materials database:\n%v", err)
	}

	// subsets
	mdb.Densities = make(map[string]*Material)
	mdb.Viscosities = make(map[string]*Material)
	mdb.Seawaters = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "density":
			mdb.Densities[m.Name] = m
		case "viscosity":
			mdb.Viscosities[m.Name] = m
		case "seawater":
			mdb.Seawaters[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; options are \"density\", \"viscosity\", and \"seawater\"", m.Type)
		}
	}

	// alloc/init: densities
	for _, m := range mdb.Densities {
		m.Dens, err = density.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Dens.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise density material %q:\n%v", m.Name, err)
		}
	}

	// alloc/init: viscosities
	for _, m := range mdb.Viscosities {
		m.Visc, err = viscosity.New(m.Model)
		if err != nil {
			return nil, err
		}
		err = m.Visc.Init(m.Prms)
		if err != nil {
			return nil, chk.Err("cannot initialise viscosity material %q:\n%v", m.Name, err)
		}
	}

	// handle seawaters
	for _, m := range mdb.Seawaters {
		for _, name := range strings.Fields(m.Extra) {
			if mm, ok := mdb.Densities[name]; ok {
				if m.Dens != nil {
					return nil, chk.Err("seawater material (%q) has more than one density model", m.Name)
				}
				m.Dens = mm.Dens
				continue
			}
			if mm, ok := mdb.Viscosities[name]; ok {
				if m.Visc != nil {
					return nil, chk.Err("seawater material (%q) has more than one viscosity model", m.Name)
				}
				m.Visc = mm.Visc
				continue
			}
			return nil, chk.Err("seawater material (%q) refers to unknown material %q", m.Name, name)
		}
		if m.Dens == nil {
			return nil, chk.Err("seawater material (%q) must have density model", m.Name)
		}
		if m.Visc == nil {
			return nil, chk.Err("seawater material (%q) must have viscosity model", m.Name)
		}
		u, err := m.getUnits()
		if err != nil {
			return nil, chk.Err("seawater material (%q) has invalid units:\n%v", m.Name, err)
		}
		m.Props = sw.NewWithModels(m.Dens, m.Visc, u)
	}
	return
}

// Get returns a material
//  Note: returns nil if not found
func (o MatDb) Get(name string) *Material {
	for _, mat := range o.Materials {
		if mat.Name == name {
			return mat
		}
	}
	return nil
}

// getUnits parses the units of a seawater material
func (o Material) getUnits() (u units.Units, err error) {
	tunit, sunit, system := o.TUnit, o.SUnit, o.System
	if tunit == "" {
		tunit = "C"
	}
	if sunit == "" {
		sunit = "ppt"
	}
	if system == "" {
		system = "mks"
	}
	u, err = units.Parse(tunit, sunit)
	if err != nil {
		return
	}
	u.Sys, err = units.ParseSystem(system)
	return
}

// String prints one material
func (o *Material) String() string {
	l := io.Sf("    {\n      \"name\"  : %q,\n      \"type\"  : %q,\n      \"model\" : %q,\n      \"extra\" : %q,\n", o.Name, o.Type, o.Model, o.Extra)
	if o.Type == "seawater" {
		l += io.Sf("      \"tunit\" : %q,\n      \"sunit\" : %q,\n      \"system\": %q,\n", o.TUnit, o.SUnit, o.System)
	}
	l += "      \"prms\"  : ["
	for i, p := range o.Prms {
		if i > 0 {
			l += ","
		}
		l += io.Sf("\n        {\"n\": %q, \"v\": %v}", p.N, p.V)
	}
	if len(o.Prms) > 0 {
		l += "\n      "
	}
	l += "]\n    }"
	return l
}

// String prints materials
func (o MatsData) String() string {
	l := "  \"materials\" : [\n"
	for i, m := range o {
		if i > 0 {
			l += ",\n"
		}
		l += io.Sf("%v", m)
	}
	l += "\n  ]"
	return l
}

// String prints the database
func (o MatDb) String() string {
	return io.Sf("{\n%v\n}", o.Materials)
}
