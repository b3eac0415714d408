// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Vinet implements the Vinet (universal) equation of state [2], accurate for
// very large compressions. Athermal: all thermal properties are zero and the
// energy refers to the reference temperature.
type Vinet struct {

	// parameters
	v0 float64 // V0: reference volume [m³/mol]
	k0 float64 // K0: reference bulk modulus [Pa]
	kp float64 // K0': pressure derivative of K0
	f0 float64 // F0: reference Helmholtz energy [J/mol]

	// derived
	z float64 // z = 3(K0'-1)/2
}

// add model to factory
func init() {
	allocators["vinet"] = func() Model { return new(Vinet) }
}

// Init initialises model
func (o *Vinet) Init(prms fun.Prms) (err error) {

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
		return chk.Err("vinet: V0 and K0 must be positive: V0=%v, K0=%v", o.v0, o.k0)
	}
	if o.kp <= 1 {
		return chk.Err("vinet: Kp must be greater than one: Kp=%v", o.kp)
	}

	// derived
	o.z = 1.5 * (o.kp - 1.0)
	return
}

// GetPrms gets (an example of) parameters
func (o Vinet) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "V0", V: 6.75e-6},
		&fun.Prm{N: "K0", V: 1.634e11},
		&fun.Prm{N: "Kp", V: 5.38},
	}
}

// Pressure computes P(T, V)
func (o Vinet) Pressure(T, V float64) float64 {
	η := math.Pow(V/o.v0, 1.0/3.0)
	return 3.0 * o.k0 * (1.0 - η) / (η * η) * math.Exp(o.z*(1.0-η))
}

// Volume solves P(T, V) = P for V
func (o Vinet) Volume(P, T float64) (float64, error) {
	return findVolume("vinet", P, T, 0.2*o.v0, 2.0*o.v0,
		func(v float64) float64 { return o.Pressure(T, v) },
		func(v float64) float64 { return o.BulkModulus(T, v) })
}

// BulkModulus computes KT(T, V)
func (o Vinet) BulkModulus(T, V float64) float64 {
	η := math.Pow(V/o.v0, 1.0/3.0)
	return o.k0 / (η * η) * (2.0 - η + o.z*η*(1.0-η)) * math.Exp(o.z*(1.0-η))
}

// GibbsEnergy computes G = F + P·V at the solved V
func (o Vinet) GibbsEnergy(P, T, V float64) float64 {
	η := math.Pow(V/o.v0, 1.0/3.0)
	u := o.z * (1.0 - η)
	F := o.f0 + 9.0*o.k0*o.v0/(o.z*o.z)*(1.0-(1.0-u)*math.Exp(u))
	return F + P*V
}

// Entropy computes S (zero: athermal model)
func (o Vinet) Entropy(T, V float64) float64 { return 0 }

// HeatCapacityV computes Cv (zero: athermal model)
func (o Vinet) HeatCapacityV(T, V float64) float64 { return 0 }

// Grueneisen computes γ (zero: athermal model)
func (o Vinet) Grueneisen(T, V float64) float64 { return 0 }
