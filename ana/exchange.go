// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
)

// TwoPhaseExchange is the closed-form solution of the two-phase
// partitioning problem with a fixed exchange coefficient. Substituting
//  x2 = Kd·x1/(1 + (Kd-1)·x1)
// into mass balance N1·x1 + N2·x2 = Ntot gives the quadratic
//  A·x1² + B·x1 + C = 0
//  A = N1·(Kd-1)    B = N1 + N2·Kd + Ntot·(1-Kd)    C = -Ntot
// whose root inside (0,1) is the partitioned fraction. For Kd → 1 the
// quadratic degenerates and x1 = x2 = Ntot/(N1+N2).
type TwoPhaseExchange struct {
	N1, N2 float64 // moles of the phases
	Ntot   float64 // bulk moles of the exchanging component
	Kd     float64 // exchange coefficient
}

// Solve computes the exact mole fractions of the exchanging component
func (o TwoPhaseExchange) Solve() (x1, x2 float64) {

	// degenerate case: no fractionation
	if math.Abs(o.Kd-1.0) < 1e-12 {
		x1 = o.Ntot / (o.N1 + o.N2)
		return x1, x1
	}

	// stable quadratic roots
	A := o.N1 * (o.Kd - 1.0)
	B := o.N1 + o.N2*o.Kd + o.Ntot*(1.0-o.Kd)
	C := -o.Ntot
	q := -0.5 * (B + math.Copysign(math.Sqrt(B*B-4.0*A*C), B))
	r1, r2 := q/A, C/q

	// pick the root inside (0,1)
	x1 = r1
	if r2 > 0 && r2 < 1 {
		x1 = r2
	}
	x2 = o.Kd * x1 / (1.0 + (o.Kd-1.0)*x1)
	return
}
