// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num"
	"github.com/cpmech/gosl/utl"
)

// MultiProblem partitions one exchangeable component among m ≥ 2 coexisting
// phases. The unknown vector x holds the mole fraction of the component in
// each phase; the equations are mass balance plus m-1 pairwise exchange
// equilibria against phase 0:
//  f[0] = Σ N_i·x_i - Ntot
//  f[i] = x_i·(1-x_0) - Kd_i·x_0·(1-x_i)     i = 1,...,m-1
// The pairwise relations are written in polynomial form so that the
// residuals stay smooth when the Newton iteration probes near the
// mole-fraction bounds. Solved with num.NlSolver and the analytic Jacobian.
type MultiProblem struct {

	// input data
	N    []float64 // moles of each phase [m]
	Ntot float64   // bulk moles of the exchanging component
	Kd   []KdFunc  // exchange models, phase 0 vs phase i [m-1]

	// control
	Tol float64 // acceptance tolerance on the residual norm

	// scratch
	kdval []float64 // Kd values at the current P, T [m-1]
}

// Init initialises the problem. The default acceptance tolerance is 1e-8:
// the nonlinear solver iterates on its own internal criteria and the
// residual norm is checked against Tol afterwards.
func (o *MultiProblem) Init(n []float64, ntot float64, kd []KdFunc) error {
	if len(n) < 2 {
		return chk.Err("at least two phases are required: m=%d", len(n))
	}
	if len(kd) != len(n)-1 {
		return chk.Err("%d phases need %d exchange models (got %d)", len(n), len(n)-1, len(kd))
	}
	for _, ni := range n {
		if ni <= 0 {
			return chk.Err("phase amounts must be positive: N=%v", n)
		}
	}
	o.N = n
	o.Ntot = ntot
	o.Kd = kd
	o.Tol = 1e-8
	o.kdval = make([]float64, len(kd))
	return nil
}

// Solve finds the mole fractions of the exchanging component in all phases
// at P, T. Same failure contract as Problem.Solve, vector-valued.
func (o *MultiProblem) Solve(P, T float64) (x []float64, err error) {

	// feasibility
	m := len(o.N)
	nsum := 0.0
	for _, ni := range o.N {
		nsum += ni
	}
	if o.Ntot <= 0 || o.Ntot >= nsum {
		return nil, &InfeasibleError{Ntot: o.Ntot, N1: o.N[0], N2: nsum - o.N[0], Xlo: 0, Xhi: 1}
	}

	// exchange coefficients at P, T
	for i, kd := range o.Kd {
		o.kdval[i], err = kd(P, T)
		if err != nil {
			return nil, err
		}
		if o.kdval[i] <= 0 {
			return nil, chk.Err("exchange model %d returned a non-positive Kd=%v at P=%v, T=%v", i, o.kdval[i], P, T)
		}
	}

	// solve from the well-mixed initial guess
	x = make([]float64, m)
	la.VecFill(x, o.Ntot/nsum)
	var nls num.NlSolver
	defer nls.Clean()
	silent := true
	useDn, numJ := true, false
	nls.Init(m, o.ffcn, nil, o.Jfcn, useDn, numJ, map[string]float64{})
	err = nls.Solve(x, silent)

	// converged residual
	fx := make([]float64, m)
	o.ffcn(fx, x)
	res := la.VecNorm(fx)
	xmin, xmax := x[0], x[0]
	for _, xi := range x {
		xmin, xmax = utl.Min(xmin, xi), utl.Max(xmax, xi)
	}
	if err != nil || res > o.Tol*utl.Max(1.0, o.Ntot) {
		return nil, &ConvergenceError{Res: res, Xlo: xmin, Xhi: xmax}
	}

	// fractions must be strictly inside (0,1)
	if xmin <= 0 || xmax >= 1 {
		return nil, &InfeasibleError{Ntot: o.Ntot, N1: o.N[0], N2: nsum - o.N[0], Xlo: xmin, Xhi: xmax}
	}
	return x, nil
}

// ffcn computes the residual vector
func (o *MultiProblem) ffcn(fx, x []float64) error {
	m := len(o.N)
	fx[0] = -o.Ntot
	for i := 0; i < m; i++ {
		fx[0] += o.N[i] * x[i]
	}
	for i := 1; i < m; i++ {
		fx[i] = x[i]*(1.0-x[0]) - o.kdval[i-1]*x[0]*(1.0-x[i])
	}
	return nil
}

// Jfcn computes the dense Jacobian
func (o *MultiProblem) Jfcn(dfdx [][]float64, x []float64) error {
	m := len(o.N)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			dfdx[i][j] = 0
		}
	}
	for j := 0; j < m; j++ {
		dfdx[0][j] = o.N[j]
	}
	for i := 1; i < m; i++ {
		kd := o.kdval[i-1]
		dfdx[i][0] = -x[i] - kd*(1.0-x[i])
		dfdx[i][i] = (1.0 - x[0]) + kd*x[0]
	}
	return nil
}
