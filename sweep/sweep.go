// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sweep drives a partitioning problem over many pressure-
// temperature conditions and collects per-point results
package sweep

import (
	"github.com/cpmech/gosl/chk"

	"github.com/BKJackson/burnman/equil"
	"github.com/BKJackson/burnman/phase"
)

// Point is the result of one (P,T) condition. Failed points carry their
// typed error and do not abort the sweep; the caller decides whether to
// skip or abort.
type Point struct {

	// conditions
	P float64 // pressure [Pa]
	T float64 // temperature [K]

	// converged fractions
	X1 float64 // mole fraction of the exchanging component in phase A
	X2 float64 // mole fraction of the exchanging component in phase B

	// derived properties (set when the problem carries mineral phases)
	RhoA float64 // density of phase A [kg/m³]
	RhoB float64 // density of phase B [kg/m³]
	KTA  float64 // isothermal bulk modulus of phase A [Pa]
	KTB  float64 // isothermal bulk modulus of phase B [Pa]

	// failure
	Err error // nil on success
}

// Factory builds one private partitioning problem. Each worker of a
// parallel run calls it once, so problems (and the phases inside them)
// are never shared between goroutines.
type Factory func() (*equil.Problem, error)

// Run solves the problem at every (pp[i], tt[i]) condition sequentially
func Run(pp, tt []float64, factory Factory) ([]Point, error) {
	if len(tt) != len(pp) {
		return nil, chk.Err("sweep: %d pressures need %d temperatures (got %d)", len(pp), len(pp), len(tt))
	}
	prob, err := factory()
	if err != nil {
		return nil, err
	}
	res := make([]Point, len(pp))
	for i := range pp {
		res[i] = solvePoint(prob, pp[i], tt[i])
	}
	return res, nil
}

// RunParallel solves the problem at every (pp[i], tt[i]) condition using
// nw worker goroutines over strided indices. Each worker owns a private
// problem from the factory and writes to disjoint result slots, so no
// locking is involved and the results equal a sequential Run exactly.
func RunParallel(pp, tt []float64, factory Factory, nw int) ([]Point, error) {
	if len(tt) != len(pp) {
		return nil, chk.Err("sweep: %d pressures need %d temperatures (got %d)", len(pp), len(pp), len(tt))
	}
	if nw < 1 {
		nw = 1
	}
	if nw > len(pp) && len(pp) > 0 {
		nw = len(pp)
	}
	res := make([]Point, len(pp))
	done := make(chan error, nw)
	for w := 0; w < nw; w++ {
		go func(w int) {
			prob, err := factory()
			if err != nil {
				done <- err
				return
			}
			for i := w; i < len(pp); i += nw {
				res[i] = solvePoint(prob, pp[i], tt[i])
			}
			done <- nil
		}(w)
	}
	var err error
	for w := 0; w < nw; w++ {
		if e := <-done; e != nil {
			err = e
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// solvePoint solves one condition and collects the phase properties
func solvePoint(prob *equil.Problem, P, T float64) (pt Point) {
	pt.P, pt.T = P, T
	x1, x2, err := prob.Solve(P, T)
	if err != nil {
		pt.Err = err
		return
	}
	pt.X1, pt.X2 = x1, x2
	if m, ok := prob.A.(*phase.Mineral); ok && m.Sta != nil {
		pt.RhoA, pt.KTA = m.Sta.Rho, m.Sta.KT
	}
	if m, ok := prob.B.(*phase.Mineral); ok && m.Sta != nil {
		pt.RhoB, pt.KTB = m.Sta.Rho, m.Sta.KT
	}
	return
}
