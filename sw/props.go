// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sw implements the physical properties of seawater at atmospheric pressure:
// density, dynamic viscosity and kinematic viscosity, together with their analytic
// partial derivatives with respect to temperature and salinity
//  Notes:
//   1) the package-level functions take T in °C and S in g/kg (ppt, psu) and return
//      MKS outputs (kg/m³, Pa·s, m²/s) using the "mit" correlations
//   2) Props applies other units and models
//   3) out-of-range inputs are extrapolated; see units.CheckRange
package sw

import (
	"github.com/cpmech/gosl/chk"
	"github.com/djessop/sw-properties/mdl/density"
	"github.com/djessop/sw-properties/mdl/viscosity"
	"github.com/djessop/sw-properties/units"
)

// Props computes seawater properties with given models and units
//  Derivatives are taken with respect to T and S in the input units and are expressed in
//  the output system
type Props struct {

	// models
	Dens density.Model   // density model
	Visc viscosity.Model // viscosity model

	// units
	Units units.Units // units of inputs and outputs

	// constants for SalinityFromDensity
	NmaxIt int     // max number of iterations
	Itol   float64 // tolerance on density residual
	ShowR  bool    // show residuals
}

// New returns new Props with models initialised with their published parameters
func New(densName, viscName string, u units.Units) (o *Props, err error) {
	dens, err := density.New(densName)
	if err != nil {
		return
	}
	err = dens.Init(dens.GetPrms(true))
	if err != nil {
		return
	}
	visc, err := viscosity.New(viscName)
	if err != nil {
		return
	}
	err = visc.Init(visc.GetPrms(true))
	if err != nil {
		return
	}
	return NewWithModels(dens, visc, u), nil
}

// NewWithModels returns new Props with initialised models
func NewWithModels(dens density.Model, visc viscosity.Model, u units.Units) *Props {
	return &Props{
		Dens:   dens,
		Visc:   visc,
		Units:  u,
		NmaxIt: 20,
		Itol:   1e-10,
	}
}

// Default returns Props with "mit" models, °C, g/kg and MKS outputs
func Default() *Props {
	o, err := New("mit", "mit", units.Default())
	if err != nil {
		chk.Panic("cannot allocate default models:\n%v", err)
	}
	return o
}

// density /////////////////////////////////////////////////////////////////////////////////////

// RhoPlainWater returns the density of pure water
func (o Props) RhoPlainWater(T float64) float64 {
	return o.Units.Sys.Density(o.Dens.Rhow(o.Units.Celsius(T)))
}

// DeltaRho returns the density increase due to salinity. Returns 0 if S = 0
func (o Props) DeltaRho(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.Density(o.Dens.DeltaRho(θ, s))
}

// RhoPlain returns the density of pure water; same as RhoPlainWater
func (o Props) RhoPlain(T float64) float64 {
	return o.RhoPlainWater(T)
}

// RhoSw returns the density of seawater: RhoPlainWater(T) + DeltaRho(T, S)
func (o Props) RhoSw(T, S float64) float64 {
	return o.RhoPlainWater(T) + o.DeltaRho(T, S)
}

// DrhoPlainWaterDT returns ∂ρw/∂T
func (o Props) DrhoPlainWaterDT(T float64) float64 {
	return o.Units.Sys.Density(o.Dens.DrhowDT(o.Units.Celsius(T)) * o.Units.DθDT())
}

// DrhoPlainWaterDs returns ∂ρw/∂S; i.e. zero
func (o Props) DrhoPlainWaterDs(T float64) float64 {
	return 0
}

// DdeltaRhoDT returns ∂Δρ/∂T
func (o Props) DdeltaRhoDT(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.Density(o.Dens.DdeltaRhoDT(θ, s) * o.Units.DθDT())
}

// DdeltaRhoDs returns ∂Δρ/∂S
func (o Props) DdeltaRhoDs(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.Density(o.Dens.DdeltaRhoDs(θ, s) * o.Units.DsDS())
}

// DrhoSwDT returns ∂ρsw/∂T = ∂ρw/∂T + ∂Δρ/∂T
func (o Props) DrhoSwDT(T, S float64) float64 {
	return o.DrhoPlainWaterDT(T) + o.DdeltaRhoDT(T, S)
}

// DrhoSwDs returns ∂ρsw/∂S = 0 + ∂Δρ/∂S
func (o Props) DrhoSwDs(T, S float64) float64 {
	return o.DrhoPlainWaterDs(T) + o.DdeltaRhoDs(T, S)
}

// viscosity ///////////////////////////////////////////////////////////////////////////////////

// DynamicViscosity returns μ
func (o Props) DynamicViscosity(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.DynViscosity(o.Visc.Mu(θ, s))
}

// DdynamicViscosityDT returns ∂μ/∂T
func (o Props) DdynamicViscosityDT(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.DynViscosity(o.Visc.DmuDT(θ, s) * o.Units.DθDT())
}

// DdynamicViscosityDs returns ∂μ/∂S
func (o Props) DdynamicViscosityDs(T, S float64) float64 {
	θ, s := o.Units.Convert(T, S)
	return o.Units.Sys.DynViscosity(o.Visc.DmuDs(θ, s) * o.Units.DsDS())
}

// KinematicViscosity returns ν = μ / ρsw
//  Note: ρsw = 0 is not guarded against and yields ±Inf or NaN
func (o Props) KinematicViscosity(T, S float64) float64 {
	return o.DynamicViscosity(T, S) / o.RhoSw(T, S)
}

// DkinematicViscosityDT returns ∂ν/∂T = (∂μ/∂T - ν ∂ρsw/∂T) / ρsw
func (o Props) DkinematicViscosityDT(T, S float64) float64 {
	ρ := o.RhoSw(T, S)
	return (o.DdynamicViscosityDT(T, S) - o.DynamicViscosity(T, S)/ρ*o.DrhoSwDT(T, S)) / ρ
}

// DkinematicViscosityDs returns ∂ν/∂S = (∂μ/∂S - ν ∂ρsw/∂S) / ρsw
func (o Props) DkinematicViscosityDs(T, S float64) float64 {
	ρ := o.RhoSw(T, S)
	return (o.DdynamicViscosityDs(T, S) - o.DynamicViscosity(T, S)/ρ*o.DrhoSwDs(T, S)) / ρ
}
