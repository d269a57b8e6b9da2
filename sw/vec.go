// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sw

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cwbudde/algo-vecmath"
)

// Vec1 evaluates f(T[i]) for all i
func Vec1(f func(T float64) float64, T []float64) []float64 {
	res := make([]float64, len(T))
	for i, t := range T {
		res[i] = f(t)
	}
	return res
}

// Vec2 evaluates f(T[i], S[i]) for all i. T and S must have the same length
func Vec2(f func(T, S float64) float64, T, S []float64) ([]float64, error) {
	if len(T) != len(S) {
		return nil, chk.Err("temperature and salinity must have the same length. %d != %d", len(T), len(S))
	}
	res := make([]float64, len(T))
	for i, t := range T {
		res[i] = f(t, S[i])
	}
	return res, nil
}

// RhoPlainWaterVec returns RhoPlainWater for all T
func (o Props) RhoPlainWaterVec(T []float64) []float64 {
	ρw := Vec1(func(t float64) float64 {
		return o.Dens.Rhow(o.Units.Celsius(t))
	}, T)
	vecmath.ScaleBlock(ρw, ρw, o.Units.Sys.DensityFactor())
	return ρw
}

// DeltaRhoVec returns DeltaRho for all (T, S) pairs
func (o Props) DeltaRhoVec(T, S []float64) ([]float64, error) {
	Δρ, err := Vec2(func(t, s float64) float64 {
		return o.Dens.DeltaRho(o.Units.Convert(t, s))
	}, T, S)
	if err != nil {
		return nil, err
	}
	vecmath.ScaleBlock(Δρ, Δρ, o.Units.Sys.DensityFactor())
	return Δρ, nil
}

// RhoSwVec returns RhoSw for all (T, S) pairs
func (o Props) RhoSwVec(T, S []float64) ([]float64, error) {
	Δρ, err := o.DeltaRhoVec(T, S)
	if err != nil {
		return nil, err
	}
	ρ := o.RhoPlainWaterVec(T)
	vecmath.AddBlockInPlace(ρ, Δρ)
	return ρ, nil
}

// DrhoSwDTVec returns DrhoSwDT for all (T, S) pairs
func (o Props) DrhoSwDTVec(T, S []float64) ([]float64, error) {
	dΔρ, err := Vec2(o.DdeltaRhoDT, T, S)
	if err != nil {
		return nil, err
	}
	dρ := Vec1(o.DrhoPlainWaterDT, T)
	vecmath.AddBlockInPlace(dρ, dΔρ)
	return dρ, nil
}

// DrhoSwDsVec returns DrhoSwDs for all (T, S) pairs
func (o Props) DrhoSwDsVec(T, S []float64) ([]float64, error) {
	return Vec2(o.DrhoSwDs, T, S)
}

// DynamicViscosityVec returns DynamicViscosity for all (T, S) pairs
func (o Props) DynamicViscosityVec(T, S []float64) ([]float64, error) {
	return Vec2(o.DynamicViscosity, T, S)
}

// KinematicViscosityVec returns KinematicViscosity for all (T, S) pairs
func (o Props) KinematicViscosityVec(T, S []float64) ([]float64, error) {
	μ, err := o.DynamicViscosityVec(T, S)
	if err != nil {
		return nil, err
	}
	ρ, err := o.RhoSwVec(T, S)
	if err != nil {
		return nil, err
	}
	for i := range μ {
		μ[i] /= ρ[i]
	}
	return μ, nil
}

// RhoPlainWaterVec returns the density of pure water for all T
func RhoPlainWaterVec(T []float64) []float64 { return std.RhoPlainWaterVec(T) }

// DeltaRhoVec returns the salinity correction for all (T, S) pairs
func DeltaRhoVec(T, S []float64) ([]float64, error) { return std.DeltaRhoVec(T, S) }

// RhoSwVec returns the density of seawater for all (T, S) pairs; see RhoSw
func RhoSwVec(T, S []float64) ([]float64, error) { return std.RhoSwVec(T, S) }

// DrhoSwDTVec returns ∂ρsw/∂T for all (T, S) pairs; see DrhoSwDT
func DrhoSwDTVec(T, S []float64) ([]float64, error) { return std.DrhoSwDTVec(T, S) }

// DrhoSwDsVec returns ∂ρsw/∂S for all (T, S) pairs; see DrhoSwDs
func DrhoSwDsVec(T, S []float64) ([]float64, error) { return std.DrhoSwDsVec(T, S) }

// DynamicViscosityVec returns the dynamic viscosity for all (T, S) pairs
func DynamicViscosityVec(T, S []float64) ([]float64, error) { return std.DynamicViscosityVec(T, S) }

// KinematicViscosityVec returns the kinematic viscosity for all (T, S) pairs
func KinematicViscosityVec(T, S []float64) ([]float64, error) {
	return std.KinematicViscosityVec(T, S)
}
