// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/BKJackson/burnman/ana"
)

func Test_kd01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kd01. exchange coefficient models")

	kd, err := ConstKd(0.5)(1e9, 1500)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "ConstKd", 1e-17, kd, 0.5)

	// reference state recovers kd0; larger dV amplifies the P dependence
	pkd := PexpKd(0.25, 2.4e10, 2.0e-7)
	kd, err = pkd(2.4e10, 1873)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "PexpKd at P0", 1e-15, kd, 0.25)
	kdhi, err := pkd(1.0e11, 1873)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("Kd(P0)=%v  Kd(100GPa)=%v\n", kd, kdhi)
	if kdhi >= kd {
		tst.Errorf("test failed: Kd must decrease with P for dV > 0\n")
		return
	}

	// invalid inputs
	_, err = ConstKd(-1)(0, 300)
	if err == nil {
		tst.Errorf("test failed: negative Kd must be rejected\n")
		return
	}
	_, err = PexpKd(0.25, 0, 1e-7)(0, -300)
	if err == nil {
		tst.Errorf("test failed: negative T must be rejected\n")
	}
}

func Test_part01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("part01. two-phase exchange, fixed Kd")

	// scenario: N1 = N2 = 1 mol, Ntot(Fe) = 0.2 mol, Kd = 0.5
	var prob Problem
	err := prob.Init(nil, nil, 1, 1, 0.2, ConstKd(0.5))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	x1, x2, err := prob.Solve(1e9, 1500)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("x1=%v x2=%v\n", x1, x2)

	// both constraints hold
	chk.Scalar(tst, "mass balance", 1e-8, prob.N1*x1+prob.N2*x2, prob.Ntot)
	chk.Scalar(tst, "equilibrium", 1e-8, (x2/(1.0-x2))/(x1/(1.0-x1)), 0.5)
	if x1 <= 0 || x1 >= 1 || x2 <= 0 || x2 >= 1 {
		tst.Errorf("test failed: fractions out of (0,1): x1=%v, x2=%v\n", x1, x2)
		return
	}

	// agreement with the closed form
	e := ana.TwoPhaseExchange{N1: 1, N2: 1, Ntot: 0.2, Kd: 0.5}
	y1, y2 := e.Solve()
	chk.Scalar(tst, "x1 (closed form)", 1e-10, x1, y1)
	chk.Scalar(tst, "x2 (closed form)", 1e-10, x2, y2)

	// idempotence: a fresh problem gives the identical answer
	var prob2 Problem
	prob2.Init(nil, nil, 1, 1, 0.2, ConstKd(0.5))
	z1, z2, err := prob2.Solve(1e9, 1500)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "x1 (fresh problem)", 1e-15, z1, x1)
	chk.Scalar(tst, "x2 (fresh problem)", 1e-15, z2, x2)

	// degenerate case: Kd = 1 means no fractionation
	var prob3 Problem
	prob3.Init(nil, nil, 1, 1, 0.2, ConstKd(1))
	x1, x2, err = prob3.Solve(1e9, 1500)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "Kd=1: x1", 1e-10, x1, 0.1)
	chk.Scalar(tst, "Kd=1: x2", 1e-10, x2, 0.1)
}

func Test_part02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("part02. infeasible inputs and iteration cap")

	// bulk amount exceeding N1+N2 must be rejected, not clamped
	var prob Problem
	err := prob.Init(nil, nil, 1, 1, 2.5, ConstKd(0.5))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	_, _, err = prob.Solve(1e9, 1500)
	if _, ok := err.(*InfeasibleError); !ok {
		tst.Errorf("test failed: expected *InfeasibleError (got %v)\n", err)
		return
	}
	io.Pforan("infeasible (too much): %v\n", err)

	// zero and negative bulk amounts
	for _, ntot := range []float64{0, -0.1} {
		prob.Init(nil, nil, 1, 1, ntot, ConstKd(0.5))
		_, _, err = prob.Solve(1e9, 1500)
		if _, ok := err.(*InfeasibleError); !ok {
			tst.Errorf("test failed: expected *InfeasibleError for Ntot=%v (got %v)\n", ntot, err)
			return
		}
	}

	// exhausted iteration cap carries residual and bracket
	prob.Init(nil, nil, 1, 1, 0.2, ConstKd(0.5))
	prob.NmaxIt = 1
	_, _, err = prob.Solve(1e9, 1500)
	cerr, ok := err.(*ConvergenceError)
	if !ok {
		tst.Errorf("test failed: expected *ConvergenceError (got %v)\n", err)
		return
	}
	io.Pforan("not converged: %v\n", cerr)
	if cerr.Res == 0 || cerr.Xhi <= cerr.Xlo {
		tst.Errorf("test failed: convergence error must carry residual and bracket\n")
		return
	}

	// invalid phase amounts are rejected at Init
	err = prob.Init(nil, nil, 0, 1, 0.2, ConstKd(0.5))
	if err == nil {
		tst.Errorf("test failed: non-positive N1 must be rejected\n")
	}
}

func Test_part03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("part03. olivine/wadsleyite: Kd mode vs chemical-potential mode")

	P, T := 1.35e10, 1700.0

	// Kd mode with the end-member-derived exchange model
	ol, wd := ol_wd_phases(tst)
	var probKd Problem
	err := probKd.Init(ol, wd, 1, 1, 0.2, ol_wd_kd(tst))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	x1, x2, err := probKd.Solve(P, T)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("Kd mode: x1=%v x2=%v\n", x1, x2)

	// chemical-potential mode on fresh phases
	ol2, wd2 := ol_wd_phases(tst)
	var probMu Problem
	err = probMu.Init(ol2, wd2, 1, 1, 0.2, nil)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	y1, y2, err := probMu.Solve(P, T)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("μ mode:  x1=%v x2=%v\n", y1, y2)

	// ideal mixing with equal site multiplicity: the two modes coincide
	chk.Scalar(tst, "x1: Kd vs μ", 1e-6, x1, y1)
	chk.Scalar(tst, "x2: Kd vs μ", 1e-6, x2, y2)
	chk.Scalar(tst, "μ mode: mass balance", 1e-8, 1.0*y1+1.0*y2, 0.2)

	// exchange affinity vanishes at the solution
	dμ, err := probMu.affinity(P, T, y1)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	io.Pforan("Δμ(x1*) = %v J/mol\n", dμ)
	if math.Abs(dμ) > 1e-5 {
		tst.Errorf("test failed: exchange affinity must vanish at the solution (Δμ=%v)\n", dμ)
		return
	}

	// converged compositions are written back into the phases
	chk.Vector(tst, "olivine composition", 1e-14, ol2.X, []float64{1 - y1, y1})
	chk.Vector(tst, "wadsleyite composition", 1e-14, wd2.X, []float64{1 - y2, y2})
	if ol2.Sta == nil || ol2.Sta.P != P || ol2.Sta.T != T {
		tst.Errorf("test failed: phase state must be refreshed at the solved P, T\n")
		return
	}

	// iron prefers wadsleyite at these conditions
	if x2 <= x1 {
		tst.Errorf("test failed: Fe must partition into wadsleyite (x1=%v, x2=%v)\n", x1, x2)
	}
}
