// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package equil implements chemical-equilibrium computations: the
// partitioning of an exchangeable component (e.g. Fe) between coexisting
// solid-solution phases under mass-balance and equilibrium-constant
// constraints, and equilibria of end-member reactions
package equil

import (
	"github.com/cpmech/gosl/io"
)

// Phase is the capability a partitioning problem requires from a mineral
// phase: composition control, (P,T) state evaluation, and closed-form
// chemical potentials. *phase.Mineral satisfies this interface.
type Phase interface {
	SetComposition(x []float64) error     // sets mole fractions, drops cached state
	SetState(P, T float64) error          // computes and caches properties at P, T
	ChemPotential(k int) (float64, error) // chemical potential of end-member k [J/mol]
}

// InfeasibleError indicates that the bulk composition cannot be split
// between the phases within valid mole-fraction bounds. This is an input
// error, not a numerical one: retrying cannot help.
type InfeasibleError struct {
	Ntot     float64 // bulk moles of the exchanging component
	N1, N2   float64 // moles of the phases
	Xlo, Xhi float64 // empty or inverted mass-balance window for x1
}

// Error returns the error message
func (o *InfeasibleError) Error() string {
	return io.Sf("partitioning is infeasible: Ntot=%v cannot be split between phases with N1=%v, N2=%v (x1 window [%v,%v])",
		o.Ntot, o.N1, o.N2, o.Xlo, o.Xhi)
}

// ConvergenceError indicates that an equilibrium computation failed to meet
// its tolerance. It carries the last residual and bracket so that the caller
// can widen the tolerance or skip the point. It is nonzero only for the
// solvers with an explicit iteration cap; root-finds that fail before
// iterating (no sign change) and the multi-phase Newton solve, which
// iterates on internal criteria, leave it zero.
type ConvergenceError struct {
	It       int     // iterations performed (0 when not applicable)
	Res      float64 // last residual
	Xlo, Xhi float64 // last bracket
}

// Error returns the error message
func (o *ConvergenceError) Error() string {
	if o.It > 0 {
		return io.Sf("partitioning failed to converge after %d iterations: residual=%v, bracket=[%v,%v]",
			o.It, o.Res, o.Xlo, o.Xhi)
	}
	return io.Sf("partitioning failed to converge: residual=%v, bracket=[%v,%v]", o.Res, o.Xlo, o.Xhi)
}
