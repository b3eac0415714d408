// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// BirchMurn implements the third-order Birch-Murnaghan equation of state in
// Eulerian finite strain f = ((V0/V)^(2/3) - 1)/2; see [1]. Athermal: all
// thermal properties are zero and the energy refers to the reference
// temperature.
type BirchMurn struct {

	// parameters
	v0 float64 // V0: reference volume [m³/mol]
	k0 float64 // K0: reference bulk modulus [Pa]
	kp float64 // K0': pressure derivative of K0
	f0 float64 // F0: reference Helmholtz energy [J/mol]
}

// add model to factory
func init() {
	allocators["bm3"] = func() Model { return new(BirchMurn) }
}

// Init initialises model
func (o *BirchMurn) Init(prms fun.Prms) (err error) {

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
		return chk.Err("bm3: V0 and K0 must be positive: V0=%v, K0=%v", o.v0, o.k0)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o BirchMurn) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "V0", V: 4.3603e-5},
		&fun.Prm{N: "K0", V: 1.2796e11},
		&fun.Prm{N: "Kp", V: 4.218},
	}
}

// strain computes the Eulerian finite strain f
func (o BirchMurn) strain(V float64) float64 {
	return 0.5 * (math.Pow(o.v0/V, 2.0/3.0) - 1.0)
}

// Pressure computes P(T, V)
func (o BirchMurn) Pressure(T, V float64) float64 {
	f := o.strain(V)
	return 3.0 * o.k0 * f * math.Pow(1.0+2.0*f, 2.5) * (1.0 + 1.5*(o.kp-4.0)*f)
}

// Volume solves P(T, V) = P for V
func (o BirchMurn) Volume(P, T float64) (float64, error) {
	return findVolume("bm3", P, T, 0.2*o.v0, 2.0*o.v0,
		func(v float64) float64 { return o.Pressure(T, v) },
		func(v float64) float64 { return o.BulkModulus(T, v) })
}

// BulkModulus computes KT(T, V)
func (o BirchMurn) BulkModulus(T, V float64) float64 {
	f := o.strain(V)
	return o.k0 * math.Pow(1.0+2.0*f, 2.5) * (1.0 + (3.0*o.kp-5.0)*f + 13.5*(o.kp-4.0)*f*f)
}

// ColdEnergy computes the finite-strain energy F(V) at the reference
// temperature [J/mol]
func (o BirchMurn) ColdEnergy(V float64) float64 {
	f := o.strain(V)
	return o.f0 + 4.5*o.k0*o.v0*f*f*(1.0+(o.kp-4.0)*f)
}

// GibbsEnergy computes G = F + P·V at the solved V
func (o BirchMurn) GibbsEnergy(P, T, V float64) float64 {
	return o.ColdEnergy(V) + P*V
}

// Entropy computes S (zero: athermal model)
func (o BirchMurn) Entropy(T, V float64) float64 { return 0 }

// HeatCapacityV computes Cv (zero: athermal model)
func (o BirchMurn) HeatCapacityV(T, V float64) float64 { return 0 }

// Grueneisen computes γ (zero: athermal model)
func (o BirchMurn) Grueneisen(T, V float64) float64 { return 0 }
