// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"

	"github.com/BKJackson/burnman/phase"
)

// Reaction is a stoichiometric reaction among pure end-members,
//  Σ ν_i · em_i = 0
// with negative ν for reactants and positive ν for products. Its Gibbs
// energy change ΔG(P,T) = Σ ν_i·G_i(P,T) vanishes on the equilibrium
// boundary; EquilibriumPressure and EquilibriumTemperature locate that
// boundary by bracketed bisection on ΔG.
type Reaction struct {

	// input data
	Em []*phase.EndMember // end-members
	Nu []float64          // stoichiometric coefficients

	// control
	Tol    float64 // relative tolerance on the bracket width
	NmaxIt int     // iteration cap
}

// NewReaction creates a reaction with default tolerance (1e-10) and
// iteration cap (100)
func NewReaction(em []*phase.EndMember, nu []float64) (*Reaction, error) {
	if len(em) < 2 {
		return nil, chk.Err("reaction: at least two end-members are required")
	}
	if len(nu) != len(em) {
		return nil, chk.Err("reaction: %d end-members need %d coefficients (got %d)", len(em), len(em), len(nu))
	}
	o := new(Reaction)
	o.Em = em
	o.Nu = nu
	o.Tol = 1e-10
	o.NmaxIt = 100
	return o, nil
}

// DeltaG computes the Gibbs energy change of the reaction at P, T [J/mol]
func (o *Reaction) DeltaG(P, T float64) (dg float64, err error) {
	for i, em := range o.Em {
		g, err := em.Gibbs(P, T)
		if err != nil {
			return 0, err
		}
		dg += o.Nu[i] * g
	}
	return
}

// EquilibriumPressure finds the pressure in [plo, phi] where ΔG(P,T) = 0
// at fixed T
func (o *Reaction) EquilibriumPressure(T, plo, phi float64) (float64, error) {
	return o.bisect(func(p float64) (float64, error) { return o.DeltaG(p, T) }, plo, phi)
}

// EquilibriumTemperature finds the temperature in [tlo, thi] where
// ΔG(P,T) = 0 at fixed P
func (o *Reaction) EquilibriumTemperature(P, tlo, thi float64) (float64, error) {
	return o.bisect(func(t float64) (float64, error) { return o.DeltaG(P, t) }, tlo, thi)
}

// bisect locates a zero of f within [a, b]
func (o *Reaction) bisect(f func(x float64) (float64, error), a, b float64) (float64, error) {
	fa, err := f(a)
	if err != nil {
		return 0, err
	}
	fb, err := f(b)
	if err != nil {
		return 0, err
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, &ConvergenceError{Res: fa, Xlo: a, Xhi: b}
	}
	var fm float64
	for it := 0; it < o.NmaxIt; it++ {
		x := 0.5 * (a + b)
		fm, err = f(x)
		if err != nil {
			return 0, err
		}
		if fm == 0 || math.Abs(b-a) <= o.Tol*utl.Max(1.0, math.Abs(x)) {
			return x, nil
		}
		if fa*fm < 0 {
			b = x
		} else {
			a, fa = x, fm
		}
	}
	return 0, &ConvergenceError{It: o.NmaxIt, Res: fm, Xlo: a, Xhi: b}
}
