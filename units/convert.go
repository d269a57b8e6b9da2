// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import "github.com/cpmech/gosl/chk"

// constants
const (
	FreezingK     = 273.15 // [K] 0°C
	FreezingR     = 491.67 // [R] 0°C
	FreezingF     = 32.0   // [F] 0°C
	KgPerKgToGkg  = 1000.0 // kg/kg => g/kg
	PercentToGkg  = 10.0   // % => g/kg
	MgPerKgToGkg  = 1e-3   // mg/kg => g/kg
	GkgToKgPerKg  = 1e-3   // g/kg => kg/kg (used by the correlations)
	KgM3ToGcm3    = 1e-3   // kg/m³ => g/cm³
	PaSToPoise    = 10.0   // Pa·s => P
	ValidityTmax  = 180.0  // [°C] upper limit of the correlations
	ValiditySmax  = 150.0  // [g/kg] upper limit of the correlations
	fahrenheitFac = 5.0 / 9.0
)

// Celsius converts temperature T to °C
func (o Units) Celsius(T float64) float64 {
	switch o.T {
	case Celsius:
		return T
	case Kelvin:
		return T - FreezingK
	case Fahrenheit:
		return fahrenheitFac * (T - FreezingF)
	case Rankine:
		return fahrenheitFac * (T - FreezingR)
	}
	chk.Panic("temperature unit %d is invalid", int(o.T))
	return 0
}

// GramPerKg converts salinity S to g/kg
func (o Units) GramPerKg(S float64) float64 {
	switch o.S {
	case GramPerKg:
		return S
	case MilligramPerKg:
		return S * MgPerKgToGkg
	case KgPerKg:
		return S * KgPerKgToGkg
	case Percent:
		return S * PercentToGkg
	}
	chk.Panic("salinity unit %d is invalid", int(o.S))
	return 0
}

// Convert returns temperature in °C and salinity in g/kg
func (o Units) Convert(T, S float64) (θ, s float64) {
	return o.Celsius(T), o.GramPerKg(S)
}

// DθDT returns dθ/dT where θ is in °C and T is given in the input unit
func (o Units) DθDT() float64 {
	switch o.T {
	case Celsius, Kelvin:
		return 1
	case Fahrenheit, Rankine:
		return fahrenheitFac
	}
	chk.Panic("temperature unit %d is invalid", int(o.T))
	return 0
}

// DsDS returns ds/dS where s is in g/kg and S is given in the input unit
func (o Units) DsDS() float64 {
	return o.GramPerKg(1)
}

// Density converts density from kg/m³ to the output system
func (o System) Density(ρ float64) float64 {
	if o == CGS {
		return ρ * KgM3ToGcm3
	}
	return ρ
}

// DynViscosity converts dynamic viscosity from Pa·s to the output system
func (o System) DynViscosity(μ float64) float64 {
	if o == CGS {
		return μ * PaSToPoise
	}
	return μ
}

// DensityFactor returns the multiplier from kg/m³ to the output system
func (o System) DensityFactor() float64 {
	return o.Density(1)
}

// CheckRange checks whether θ [°C] and s [g/kg] are within the validity window of the
// correlations: 0 ≤ θ ≤ 180 and 0 ≤ s ≤ 150. The property functions do not call it.
func CheckRange(θ, s float64) error {
	if θ < 0 || θ > ValidityTmax {
		return chk.Err("temperature %g°C is outside the validity range [0, %g]°C", θ, ValidityTmax)
	}
	if s < 0 || s > ValiditySmax {
		return chk.Err("salinity %g g/kg is outside the validity range [0, %g] g/kg", s, ValiditySmax)
	}
	return nil
}
