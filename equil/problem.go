// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"

	"github.com/BKJackson/burnman/meos"
)

// constants for the chemical-potential mode
const (
	mu_shrink = 1e-12 // relative shrink-in from the mass-balance window edges
	mu_wnewt  = 1e-3  // relative bracket width to switch to Newton
)

// Problem is a two-phase partitioning problem: distribute Ntot moles of an
// exchangeable component between phase A (N1 moles) and phase B (N2 moles)
// so that mass balance
//  N1·x1 + N2·x2 = Ntot
// and exchange equilibrium hold simultaneously. Both phases are binary
// solutions with the exchanging species as end-member 1 and its complement
// as end-member 0 (the mdb convention: [mg, fe]).
//
// Two equilibrium formulations are available:
//  Kd != nil  equilibrium-constant mode: Kd(P,T) = (x2/(1-x2))/(x1/(1-x1))
//  Kd == nil  chemical-potential mode: equal exchange affinity
//             μ_feB + μ_mgA - μ_feA - μ_mgB = 0 from the phases directly
//
// A Problem holds no state across Solve calls: solving the same problem
// twice yields identical results, and independent problems may be solved
// concurrently as long as they do not share Phase instances.
type Problem struct {

	// input data
	A, B   Phase   // exchanging phases (may be nil in Kd mode)
	N1, N2 float64 // moles of phase A and phase B
	Ntot   float64 // bulk moles of the exchanging component
	Kd     KdFunc  // equilibrium model; nil selects chemical-potential mode

	// control
	Tol    float64 // relative tolerance; residual scale is Ntot (Kd mode) or R·T (μ mode)
	NmaxIt int     // iteration cap
}

// Init initialises the problem and sets the default tolerance (1e-10) and
// iteration cap (100). In chemical-potential mode both phases are required.
func (o *Problem) Init(A, B Phase, n1, n2, ntot float64, kd KdFunc) error {
	if n1 <= 0 || n2 <= 0 {
		return chk.Err("phase amounts must be positive: N1=%v, N2=%v", n1, n2)
	}
	if kd == nil && (A == nil || B == nil) {
		return chk.Err("chemical-potential mode requires both phases")
	}
	o.A, o.B = A, B
	o.N1, o.N2, o.Ntot = n1, n2, ntot
	o.Kd = kd
	o.Tol = 1e-10
	o.NmaxIt = 100
	return nil
}

// Solve finds the mole fractions x1 (phase A) and x2 (phase B) of the
// exchanging component at P, T. On success the converged compositions are
// written back into the phases and their states are refreshed at P, T.
// Failures are typed: *InfeasibleError for bulk compositions that cannot
// be split within (0,1), *ConvergenceError for exceeded iteration caps,
// and EoS errors pass through unchanged.
func (o *Problem) Solve(P, T float64) (x1, x2 float64, err error) {

	// feasibility: the exchanging component must fit strictly inside both
	// phases, i.e. 0 < Ntot < N1+N2
	if o.Ntot <= 0 || o.Ntot >= o.N1+o.N2 {
		return 0, 0, &InfeasibleError{Ntot: o.Ntot, N1: o.N1, N2: o.N2, Xlo: 0, Xhi: 1}
	}

	// solve
	if o.Kd != nil {
		x1, x2, err = o.solveKd(P, T)
	} else {
		x1, x2, err = o.solveMu(P, T)
	}
	if err != nil {
		return 0, 0, err
	}

	// write converged compositions back into the phases
	err = o.setPhases(P, T, x1, x2)
	return
}

// solveKd solves the equilibrium-constant formulation. Substituting the
// equilibrium relation
//  x2 = Kd·x1 / (1 + (Kd-1)·x1)
// into mass balance gives one monotonically increasing equation in x1:
//  g(x1) = N1·x1 + N2·Kd·x1/(1 + (Kd-1)·x1) - Ntot
// bracketed by (0,1). Newton steps with the analytic g' are taken whenever
// they stay inside the bracket; otherwise the step falls back to bisection.
func (o *Problem) solveKd(P, T float64) (x1, x2 float64, err error) {
	kd, err := o.Kd(P, T)
	if err != nil {
		return 0, 0, err
	}
	if kd <= 0 {
		return 0, 0, chk.Err("equilibrium model returned a non-positive Kd=%v at P=%v, T=%v", kd, P, T)
	}

	// residual and derivative
	g := func(x float64) float64 {
		return o.N1*x + o.N2*kd*x/(1.0+(kd-1.0)*x) - o.Ntot
	}
	dg := func(x float64) float64 {
		d := 1.0 + (kd-1.0)*x
		return o.N1 + o.N2*kd/(d*d)
	}

	// iterate. g(0) = -Ntot < 0 and g(1) = N1+N2-Ntot > 0 by feasibility
	xlo, xhi := 0.0, 1.0
	x := o.Ntot / (o.N1 + o.N2)
	gtol := o.Tol * utl.Max(1.0, o.Ntot)
	var f float64
	for it := 0; it < o.NmaxIt; it++ {
		f = g(x)
		if math.Abs(f) <= gtol {
			return x, kd * x / (1.0 + (kd-1.0)*x), nil
		}
		if f > 0 {
			xhi = x
		} else {
			xlo = x
		}
		xnew := x - f/dg(x)
		if xnew <= xlo || xnew >= xhi {
			xnew = 0.5 * (xlo + xhi)
		}
		x = xnew
	}
	return 0, 0, &ConvergenceError{It: o.NmaxIt, Res: f, Xlo: xlo, Xhi: xhi}
}

// solveMu solves the chemical-potential formulation. Mass balance fixes
//  x2(x1) = (Ntot - N1·x1)/N2
// and the residual is the exchange affinity
//  Δμ(x1) = μ_feB + μ_mgA - μ_feA - μ_mgB
// which decreases strictly in x1 and diverges at the edges of the
// mass-balance window, so a sign change is guaranteed for solution models
// with configurational entropy. Bisection narrows the bracket; once it is
// tight, Newton steps with a centred-difference derivative finish the job.
func (o *Problem) solveMu(P, T float64) (x1, x2 float64, err error) {

	// mass-balance window for x1: both fractions must stay within (0,1)
	xlo, xhi := 0.0, 1.0
	if o.Ntot > o.N2 {
		xlo = (o.Ntot - o.N2) / o.N1
	}
	if o.Ntot < o.N1 {
		xhi = o.Ntot / o.N1
	}
	if xhi <= xlo {
		return 0, 0, &InfeasibleError{Ntot: o.Ntot, N1: o.N1, N2: o.N2, Xlo: xlo, Xhi: xhi}
	}

	// shrink in: the affinity diverges at the window edges
	w := xhi - xlo
	a := xlo + mu_shrink*w
	b := xhi - mu_shrink*w
	fa, err := o.affinity(P, T, a)
	if err != nil {
		return 0, 0, err
	}
	fb, err := o.affinity(P, T, b)
	if err != nil {
		return 0, 0, err
	}
	if fa*fb > 0 {
		return 0, 0, &ConvergenceError{Res: fa, Xlo: a, Xhi: b}
	}
	if fa > 0 { // keep f(a) < 0 < f(b)
		a, b = b, a
	}

	// iterate. the tolerance scales with R·T, the natural magnitude of the
	// affinity (the edge values diverge and would inflate it)
	ftol := o.Tol * meos.Rgas * utl.Max(1.0, T)
	x := 0.5 * (a + b)
	var f float64
	for it := 0; it < o.NmaxIt; it++ {
		f, err = o.affinity(P, T, x)
		if err != nil {
			return 0, 0, err
		}
		if math.Abs(f) <= ftol {
			return x, (o.Ntot - o.N1*x) / o.N2, nil
		}
		if f < 0 {
			a = x
		} else {
			b = x
		}

		// bisection, or Newton once the bracket is tight
		xnew := 0.5 * (a + b)
		if math.Abs(b-a) < mu_wnewt*w {
			h := 1e-6 * w
			var ferr error
			dfdx, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
				r, e := o.affinity(P, T, t)
				if e != nil {
					ferr = e
				}
				return r
			}, x, h)
			if ferr == nil && dfdx != 0 {
				xn := x - f/dfdx
				if (xn > a && xn < b) || (xn > b && xn < a) {
					xnew = xn
				}
			}
		}
		x = xnew
	}
	return 0, 0, &ConvergenceError{It: o.NmaxIt, Res: f, Xlo: a, Xhi: b}
}

// affinity computes the exchange affinity Δμ at the trial fraction x1,
// with x2 from mass balance
func (o *Problem) affinity(P, T, x1 float64) (float64, error) {
	x2 := (o.Ntot - o.N1*x1) / o.N2
	err := o.setPhases(P, T, x1, x2)
	if err != nil {
		return 0, err
	}
	μmgA, err := o.A.ChemPotential(0)
	if err != nil {
		return 0, err
	}
	μfeA, err := o.A.ChemPotential(1)
	if err != nil {
		return 0, err
	}
	μmgB, err := o.B.ChemPotential(0)
	if err != nil {
		return 0, err
	}
	μfeB, err := o.B.ChemPotential(1)
	if err != nil {
		return 0, err
	}
	return (μfeB + μmgA) - (μfeA + μmgB), nil
}

// setPhases sets the compositions [1-x, x] and refreshes both states
func (o *Problem) setPhases(P, T, x1, x2 float64) (err error) {
	if o.A == nil || o.B == nil {
		return
	}
	err = o.A.SetComposition([]float64{1.0 - x1, x1})
	if err != nil {
		return
	}
	err = o.B.SetComposition([]float64{1.0 - x2, x2})
	if err != nil {
		return
	}
	err = o.A.SetState(P, T)
	if err != nil {
		return
	}
	return o.B.SetState(P, T)
}
