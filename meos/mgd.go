// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// MieGrunDebye implements the Mie-Grüneisen-Debye thermal equation of state
// [3]: a third-order Birch-Murnaghan curve at the reference temperature plus
// the quasiharmonic Debye thermal pressure, with
//  γ(V) = γ0·(V/V0)^q   and   θ(V) = θ0·exp((γ0-γ)/q)
type MieGrunDebye struct {

	// cold reference curve
	cold BirchMurn // Birch-Murnaghan at T0

	// parameters
	v0 float64 // V0: reference volume [m³/mol]
	t0 float64 // T0: reference temperature [K]
	θ0 float64 // Debye temperature at V0 [K]
	γ0 float64 // Grüneisen parameter at V0
	q  float64 // volume exponent of γ
	n  float64 // atoms per formula unit

	// constants
	qtiny float64 // |q| below which the q→0 limit of θ(V) is used
}

// add model to factory
func init() {
	allocators["mgd"] = func() Model { return new(MieGrunDebye) }
}

// Init initialises model
func (o *MieGrunDebye) Init(prms fun.Prms) (err error) {

	// constants
	o.qtiny = 1e-10

	// cold reference curve
	err = o.cold.Init(prms)
	if err != nil {
		return
	}

	// parameters
	o.t0 = 300.0
	for _, p := range prms {
		switch p.N {
		case "V0":
			o.v0 = p.V
		case "T0":
			o.t0 = p.V
		case "thD":
			o.θ0 = p.V
		case "gam0":
			o.γ0 = p.V
		case "q":
			o.q = p.V
		case "n":
			o.n = p.V
		}
	}

	// check
	if o.θ0 <= 0 {
		return chk.Err("mgd: Debye temperature must be positive: thD=%v", o.θ0)
	}
	if o.n <= 0 {
		return chk.Err("mgd: number of atoms per formula unit must be positive: n=%v", o.n)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o MieGrunDebye) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "V0", V: 1.1244e-5},
		&fun.Prm{N: "K0", V: 1.613e11},
		&fun.Prm{N: "Kp", V: 3.84},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 767},
		&fun.Prm{N: "gam0", V: 1.36},
		&fun.Prm{N: "q", V: 1.7},
		&fun.Prm{N: "n", V: 2},
	}
}

// gam computes γ(V)
func (o MieGrunDebye) gam(V float64) float64 {
	return o.γ0 * math.Pow(V/o.v0, o.q)
}

// theta computes the volume-dependent Debye temperature θ(V)
func (o MieGrunDebye) theta(V float64) float64 {
	if math.Abs(o.q) < o.qtiny {
		return o.θ0 * math.Pow(V/o.v0, -o.γ0)
	}
	return o.θ0 * math.Exp((o.γ0-o.gam(V))/o.q)
}

// Pressure computes P(T, V) = Pcold(V) + γ/V·(Eth(T) - Eth(T0))
func (o MieGrunDebye) Pressure(T, V float64) float64 {
	θ := o.theta(V)
	ΔE := DebyeEth(T, θ, o.n) - DebyeEth(o.t0, θ, o.n)
	return o.cold.Pressure(T, V) + o.gam(V)/V*ΔE
}

// Volume solves P(T, V) = P for V
func (o MieGrunDebye) Volume(P, T float64) (float64, error) {
	return findVolume("mgd", P, T, 0.2*o.v0, 2.0*o.v0,
		func(v float64) float64 { return o.Pressure(T, v) },
		func(v float64) float64 { return o.BulkModulus(T, v) })
}

// BulkModulus computes KT(T, V)
func (o MieGrunDebye) BulkModulus(T, V float64) float64 {
	γ := o.gam(V)
	θ := o.theta(V)
	ΔE := DebyeEth(T, θ, o.n) - DebyeEth(o.t0, θ, o.n)
	ΔcvT := DebyeCv(T, θ, o.n)*T - DebyeCv(o.t0, θ, o.n)*o.t0
	return o.cold.BulkModulus(T, V) + (γ+1.0-o.q)*γ/V*ΔE - γ*γ/V*ΔcvT
}

// GibbsEnergy computes G = F + P·V at the solved V
func (o MieGrunDebye) GibbsEnergy(P, T, V float64) float64 {
	θ := o.theta(V)
	F := o.cold.ColdEnergy(V) + DebyeFvib(T, θ, o.n) - DebyeFvib(o.t0, θ, o.n)
	return F + P*V
}

// Entropy computes S(T, V)
func (o MieGrunDebye) Entropy(T, V float64) float64 {
	return DebyeS(T, o.theta(V), o.n)
}

// HeatCapacityV computes Cv(T, V)
func (o MieGrunDebye) HeatCapacityV(T, V float64) float64 {
	return DebyeCv(T, o.theta(V), o.n)
}

// Grueneisen computes γ(V)
func (o MieGrunDebye) Grueneisen(T, V float64) float64 {
	return o.gam(V)
}
