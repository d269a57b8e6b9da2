// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package units implements the temperature and salinity units accepted by the property functions
//  Canonical units:
//   temperature -- degree Celsius (ITS-90)
//   salinity    -- g/kg (ppt); practical salinity (psu) is taken as equal to g/kg
package units

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Temperature defines a temperature unit
type Temperature int

// Salinity defines a salinity unit
type Salinity int

// System defines the units system of outputs
type System int

// temperature units
const (
	Celsius Temperature = iota
	Kelvin
	Fahrenheit
	Rankine
)

// salinity units
const (
	GramPerKg      Salinity = iota // ppt, psu
	MilligramPerKg                 // ppm
	KgPerKg                        // mass fraction
	Percent                        // parts per hundred
)

// output systems
const (
	MKS System = iota // kg/m³, Pa·s, m²/s
	CGS               // g/cm³, poise, stokes
)

// Units holds the units of inputs and outputs
type Units struct {
	T   Temperature // temperature of inputs
	S   Salinity    // salinity of inputs
	Sys System      // system of outputs
}

// aliases (lower case)
var (
	tempAliases = map[string]Temperature{
		"c":          Celsius,
		"celsius":    Celsius,
		"degc":       Celsius,
		"°c":         Celsius,
		"k":          Kelvin,
		"kelvin":     Kelvin,
		"f":          Fahrenheit,
		"fahrenheit": Fahrenheit,
		"degf":       Fahrenheit,
		"r":          Rankine,
		"rankine":    Rankine,
	}
	salAliases = map[string]Salinity{
		"ppt":      GramPerKg,
		"g/kg":     GramPerKg,
		"psu":      GramPerKg,
		"ppm":      MilligramPerKg,
		"mg/kg":    MilligramPerKg,
		"w":        KgPerKg,
		"kg/kg":    KgPerKg,
		"fraction": KgPerKg,
		"%":        Percent,
		"percent":  Percent,
	}
	sysAliases = map[string]System{
		"mks": MKS,
		"si":  MKS,
		"cgs": CGS,
	}
)

// InvalidUnitError is returned when a unit token is not recognised
type InvalidUnitError struct {
	Kind  string // "temperature", "salinity" or "system"
	Token string // offending token
}

// Error implements error
func (o *InvalidUnitError) Error() string {
	return io.Sf("not a recognised %s unit: %q", o.Kind, o.Token)
}

// Default returns degC, g/kg and MKS outputs
func Default() Units {
	return Units{Celsius, GramPerKg, MKS}
}

// Parse parses temperature and salinity tokens (case-insensitive). Outputs are MKS.
func Parse(uT, uS string) (u Units, err error) {
	u.T, err = ParseTemperature(uT)
	if err != nil {
		return
	}
	u.S, err = ParseSalinity(uS)
	return
}

// ParseTemperature parses a temperature token
func ParseTemperature(tok string) (Temperature, error) {
	if t, ok := tempAliases[normalise(tok)]; ok {
		return t, nil
	}
	return 0, &InvalidUnitError{"temperature", tok}
}

// ParseSalinity parses a salinity token
func ParseSalinity(tok string) (Salinity, error) {
	if s, ok := salAliases[normalise(tok)]; ok {
		return s, nil
	}
	return 0, &InvalidUnitError{"salinity", tok}
}

// ParseSystem parses an output system token
func ParseSystem(tok string) (System, error) {
	if s, ok := sysAliases[normalise(tok)]; ok {
		return s, nil
	}
	return 0, &InvalidUnitError{"system", tok}
}

// String returns the canonical token
func (o Temperature) String() string {
	switch o {
	case Celsius:
		return "C"
	case Kelvin:
		return "K"
	case Fahrenheit:
		return "F"
	case Rankine:
		return "R"
	}
	chk.Panic("temperature unit %d is invalid", int(o))
	return ""
}

// String returns the canonical token
func (o Salinity) String() string {
	switch o {
	case GramPerKg:
		return "ppt"
	case MilligramPerKg:
		return "ppm"
	case KgPerKg:
		return "kg/kg"
	case Percent:
		return "%"
	}
	chk.Panic("salinity unit %d is invalid", int(o))
	return ""
}

// String returns the canonical token
func (o System) String() string {
	switch o {
	case MKS:
		return "mks"
	case CGS:
		return "cgs"
	}
	chk.Panic("units system %d is invalid", int(o))
	return ""
}

// String returns the canonical tokens
func (o Units) String() string {
	return o.T.String() + " " + o.S.String() + " " + o.Sys.String()
}

func normalise(tok string) string {
	return strings.ToLower(strings.TrimSpace(tok))
}
