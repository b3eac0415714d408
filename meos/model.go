// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package meos implements equations of state for minerals at high pressures
// and temperatures
//  References:
//   [1] Birch F (1947) Finite elastic strain of cubic crystals.
//       Physical Review, 71(11), 809-824
//   [2] Vinet P, Ferrante J, Rose JH and Smith JR (1987) Compressibility of
//       solids. Journal of Geophysical Research, 92(B9), 9319-9325
//   [3] Stixrude L and Lithgow-Bertelloni C (2005) Thermodynamics of mantle
//       minerals - I. Physical properties. Geophysical Journal
//       International, 162(2), 610-632
package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Rgas is the molar gas constant [J/(mol·K)]
const Rgas = 8.3144621

// Model defines the pressure-volume-temperature relation of one mineral
// end-member. Units are SI: P [Pa], T [K], V [m³/mol], energies [J/mol].
// Models are immutable after Init and may be shared by many phases.
type Model interface {
	Init(prms fun.Prms) error             // initialises model
	GetPrms() fun.Prms                    // gets (an example of) parameters
	Pressure(T, V float64) float64        // computes P(T, V)
	Volume(P, T float64) (float64, error) // solves P(T, V) = P for V
	BulkModulus(T, V float64) float64     // computes KT = -V ∂P/∂V
	GibbsEnergy(P, T, V float64) float64  // computes G = F + P·V at the solved V
	Entropy(T, V float64) float64         // computes S = -∂F/∂T
	HeatCapacityV(T, V float64) float64   // computes Cv
	Grueneisen(T, V float64) float64      // computes γ = V·∂P/∂Eth
}

// New returns new equation-of-state model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'meos' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
