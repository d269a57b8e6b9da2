// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sw

// std holds the default properties; it is never modified
var std = Default()

// RhoPlainWater returns the density of pure water [kg/m³]. T in °C
func RhoPlainWater(T float64) float64 { return std.RhoPlainWater(T) }

// DeltaRho returns the density increase due to salinity [kg/m³]. S in g/kg
func DeltaRho(T, S float64) float64 { return std.DeltaRho(T, S) }

// RhoPlain returns the density of pure water [kg/m³]
func RhoPlain(T float64) float64 { return std.RhoPlain(T) }

// RhoSw returns the density of seawater [kg/m³]
func RhoSw(T, S float64) float64 { return std.RhoSw(T, S) }

// DrhoPlainWaterDT returns ∂ρw/∂T [kg/(m³・°C)]
func DrhoPlainWaterDT(T float64) float64 { return std.DrhoPlainWaterDT(T) }

// DrhoPlainWaterDs returns ∂ρw/∂S; i.e. zero
func DrhoPlainWaterDs(T float64) float64 { return std.DrhoPlainWaterDs(T) }

// DdeltaRhoDT returns ∂Δρ/∂T [kg/(m³・°C)]
func DdeltaRhoDT(T, S float64) float64 { return std.DdeltaRhoDT(T, S) }

// DdeltaRhoDs returns ∂Δρ/∂S [kg/(m³・(g/kg))]
func DdeltaRhoDs(T, S float64) float64 { return std.DdeltaRhoDs(T, S) }

// DrhoSwDT returns ∂ρsw/∂T [kg/(m³・°C)]
func DrhoSwDT(T, S float64) float64 { return std.DrhoSwDT(T, S) }

// DrhoSwDs returns ∂ρsw/∂S [kg/(m³・(g/kg))]
func DrhoSwDs(T, S float64) float64 { return std.DrhoSwDs(T, S) }

// DynamicViscosity returns the dynamic viscosity of seawater [Pa·s]
func DynamicViscosity(T, S float64) float64 { return std.DynamicViscosity(T, S) }

// KinematicViscosity returns the kinematic viscosity of seawater [m²/s]
func KinematicViscosity(T, S float64) float64 { return std.KinematicViscosity(T, S) }
