// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Murnaghan implements the Murnaghan equation of state. The compression
// curve is invertible in closed form, which makes this model the anchor for
// verifying the iterative volume solver. Athermal: all thermal properties
// are zero and the energy refers to the reference temperature.
type Murnaghan struct {

	// parameters
	v0 float64 // V0: reference volume [m³/mol]
	k0 float64 // K0: reference bulk modulus [Pa]
	kp float64 // K0': pressure derivative of K0
	f0 float64 // F0: reference Helmholtz energy [J/mol]
}

// add model to factory
func init() {
	allocators["mur"] = func() Model { return new(Murnaghan) }
}

// Init initialises model
func (o *Murnaghan) Init(prms fun.Prms) (err error) {

	// parameters
	o.kp = 4.0
	for _, p := range prms {
		switch p.N {
		case "V0":
			o.v0 = p.V
		case "K0":
			o.k0 = p.V
		case "Kp":
			o.kp = p.V
		case "F0":
			o.f0 = p.V
		}
	}

	// check
	if o.v0 <= 0 || o.k0 <= 0 {
		return chk.Err("mur: V0 and K0 must be positive: V0=%v, K0=%v", o.v0, o.k0)
	}
	if o.kp <= 1 {
		return chk.Err("mur: Kp must be greater than one: Kp=%v", o.kp)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Murnaghan) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "V0", V: 1.1244e-5},
		&fun.Prm{N: "K0", V: 1.613e11},
		&fun.Prm{N: "Kp", V: 3.84},
	}
}

// Pressure computes P(T, V)
func (o Murnaghan) Pressure(T, V float64) float64 {
	return o.k0 / o.kp * (math.Pow(o.v0/V, o.kp) - 1.0)
}

// Volume solves P(T, V) = P for V. The closed-form inverse exists, but the
// generic solver is used so that this model exercises the same path as the
// others; tests compare against the exact expression.
func (o Murnaghan) Volume(P, T float64) (float64, error) {
	return findVolume("mur", P, T, 0.2*o.v0, 2.0*o.v0,
		func(v float64) float64 { return o.Pressure(T, v) },
		func(v float64) float64 { return o.BulkModulus(T, v) })
}

// BulkModulus computes KT = K0 + Kp·P
func (o Murnaghan) BulkModulus(T, V float64) float64 {
	return o.k0 * math.Pow(o.v0/V, o.kp)
}

// GibbsEnergy computes G = F + P·V at the solved V
func (o Murnaghan) GibbsEnergy(P, T, V float64) float64 {
	y := math.Pow(V/o.v0, 1.0-o.kp)
	F := o.f0 + o.k0*o.v0/o.kp*((1.0-y)/(1.0-o.kp)-1.0+V/o.v0)
	return F + P*V
}

// Entropy computes S (zero: athermal model)
func (o Murnaghan) Entropy(T, V float64) float64 { return 0 }

// HeatCapacityV computes Cv (zero: athermal model)
func (o Murnaghan) HeatCapacityV(T, V float64) float64 { return 0 }

// Grueneisen computes γ (zero: athermal model)
func (o Murnaghan) Grueneisen(T, V float64) float64 { return 0 }
