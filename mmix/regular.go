// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmix

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
)

// Regular implements the symmetric regular solution model: ideal
// configurational entropy plus pairwise interaction terms
//  Gex = Σ_{i<j} W_ij·x_i·x_j    μex_k = Σ_j W_kj·x_j - Gex
// Interaction energies are given as parameters "Wij" with single-digit
// end-member indices i < j, e.g. "W01".
type Regular struct {

	// ideal part
	ideal Ideal // configurational entropy with the same site multiplicity

	// input data
	nem int // number of end-members

	// parameters
	w [][]float64 // W: symmetric interaction matrix [J/mol], zero diagonal
}

// add model to factory
func init() {
	allocators["regular"] = func() Model { return new(Regular) }
}

// Init initialises model
func (o *Regular) Init(nem int, prms fun.Prms) (err error) {

	// ideal part
	err = o.ideal.Init(nem, prms)
	if err != nil {
		return
	}

	// input data
	if nem > 10 {
		return chk.Err("regular: single-digit parameter names support up to 10 end-members: nem=%d", nem)
	}
	o.nem = nem

	// parameters
	o.w = la.MatAlloc(nem, nem)
	for _, p := range prms {
		if len(p.N) == 3 && p.N[0] == 'W' {
			i := int(p.N[1] - '0')
			j := int(p.N[2] - '0')
			if i < 0 || i >= nem || j < 0 || j >= nem {
				return chk.Err("regular: parameter %q refers to an unknown end-member pair", p.N)
			}
			if i == j {
				return chk.Err("regular: diagonal interaction %q is not allowed", p.N)
			}
			o.w[i][j] = p.V
			o.w[j][i] = p.V
		}
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Regular) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "s", V: 2},
		&fun.Prm{N: "W01", V: 7600},
	}
}

// excess computes Gex
func (o Regular) excess(x []float64) (gex float64) {
	for i := 0; i < o.nem; i++ {
		for j := i + 1; j < o.nem; j++ {
			gex += o.w[i][j] * x[i] * x[j]
		}
	}
	return
}

// GibbsMix computes the molar mixing free energy [J/mol]
func (o Regular) GibbsMix(T float64, x []float64) float64 {
	chk.IntAssert(len(x), o.nem)
	return o.ideal.GibbsMix(T, x) + o.excess(x)
}

// MuMix computes the partial molar term of end-member k [J/mol]
func (o Regular) MuMix(T float64, x []float64, k int) float64 {
	chk.IntAssert(len(x), o.nem)
	sum := 0.0
	for j := 0; j < o.nem; j++ {
		sum += o.w[k][j] * x[j]
	}
	return o.ideal.MuMix(T, x, k) + sum - o.excess(x)
}

// SMix computes the mixing entropy [J/(mol·K)]; the athermal interaction
// terms contribute nothing
func (o Regular) SMix(T float64, x []float64) float64 {
	return o.ideal.SMix(T, x)
}
