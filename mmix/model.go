// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mmix implements mixing models for solid solutions
package mmix

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// rgas is the molar gas constant [J/(mol·K)]
const rgas = 8.3144621

// Model computes the mixing contribution to the free energy of a solid
// solution with nem end-members. MuMix returns the closed-form partial
// molar contribution of end-member k, so that
//  μ_k = G°_k + MuMix(T, x, k)
// No numerical differentiation is involved.
type Model interface {
	Init(nem int, prms fun.Prms) error           // initialises model
	GetPrms() fun.Prms                           // gets (an example of) parameters
	GibbsMix(T float64, x []float64) float64     // computes the molar mixing free energy [J/mol]
	MuMix(T float64, x []float64, k int) float64 // computes the partial molar term of end-member k [J/mol]
	SMix(T float64, x []float64) float64         // computes the mixing entropy -∂Gmix/∂T [J/(mol·K)]
}

// New returns new mixing model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mmix' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
