// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmix

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// xtiny avoids log(0) at composition boundaries
const xtiny = 1e-16

// Ideal implements the ideal (configurational entropy) mixing model with a
// site multiplicity s:
//  Gmix = s·R·T·Σ x_i·ln(x_i)    μmix_k = s·R·T·ln(x_k)
// For Fe-Mg olivine polymorphs s = 2 (two octahedral sites per formula unit).
type Ideal struct {

	// input data
	nem int // number of end-members

	// parameters
	s float64 // site multiplicity
}

// add model to factory
func init() {
	allocators["ideal"] = func() Model { return new(Ideal) }
}

// Init initialises model
func (o *Ideal) Init(nem int, prms fun.Prms) (err error) {

	// input data
	if nem < 2 {
		return chk.Err("ideal: at least two end-members are required: nem=%d", nem)
	}
	o.nem = nem

	// parameters
	o.s = 1.0
	for _, p := range prms {
		switch p.N {
		case "s":
			o.s = p.V
		}
	}
	if o.s <= 0 {
		return chk.Err("ideal: site multiplicity must be positive: s=%v", o.s)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Ideal) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "s", V: 2},
	}
}

// GibbsMix computes the molar mixing free energy [J/mol]
func (o Ideal) GibbsMix(T float64, x []float64) (g float64) {
	chk.IntAssert(len(x), o.nem)
	for _, xk := range x {
		if xk > xtiny {
			g += xk * math.Log(xk)
		}
	}
	return o.s * rgas * T * g
}

// MuMix computes the partial molar term of end-member k [J/mol]
func (o Ideal) MuMix(T float64, x []float64, k int) float64 {
	chk.IntAssert(len(x), o.nem)
	xk := x[k]
	if xk < xtiny {
		xk = xtiny
	}
	return o.s * rgas * T * math.Log(xk)
}

// SMix computes the configurational entropy [J/(mol·K)]
func (o Ideal) SMix(T float64, x []float64) (s float64) {
	chk.IntAssert(len(x), o.nem)
	for _, xk := range x {
		if xk > xtiny {
			s += xk * math.Log(xk)
		}
	}
	return -o.s * rgas * s
}
