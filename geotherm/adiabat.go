// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geotherm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/ode"

	"github.com/BKJackson/burnman/phase"
)

// Adiabat is the self-consistent isentropic temperature path of one phase,
// obtained by integrating
//  dT/dP = γ·T/KS
// with the Grüneisen parameter and adiabatic bulk modulus evaluated from
// the phase's own equation of state along the way. The integration mutates
// the state cache of a private copy of the phase, so an Adiabat is not safe
// for concurrent use; give each goroutine its own instance.
type Adiabat struct {

	// input data
	m    *phase.Mineral // private copy of the phase
	p0   float64        // anchor pressure [Pa]
	tpot float64        // potential temperature: T at the anchor [K]

	// ode solver
	fcn ode.Cb_fcn // dT/dP for the ode solver
	sol ode.ODE    // ode solver
}

// Init initialises the adiabat anchored at T(p0) = tpot. The phase must
// have a composition set; a deep copy is taken so that the caller's
// instance is never touched.
func (o *Adiabat) Init(m *phase.Mineral, p0, tpot float64) error {
	if tpot <= 0 {
		return chk.Err("adiabat: potential temperature must be positive: Tpot=%v", tpot)
	}
	o.m = m.GetCopy()
	o.p0 = p0
	o.tpot = tpot

	// y := {T}
	o.fcn = func(f []float64, x float64, y []float64, args ...interface{}) error {
		err := o.m.SetState(x, y[0])
		if err != nil {
			return err
		}
		f[0] = o.m.Sta.Gamma * y[0] / o.m.Sta.KS
		return nil
	}

	// set ODE (using numerical Jacobian)
	silent := true
	o.sol.Init("Radau5", 1, o.fcn, nil, nil, nil, silent)
	o.sol.Distr = false
	return nil
}

// Calc computes the adiabatic temperature at pressure P ≥ p0 [K]
func (o *Adiabat) Calc(P float64) (T float64, err error) {
	if P < o.p0 {
		return 0, chk.Err("adiabat: P=%v is below the anchor pressure P0=%v", P, o.p0)
	}
	if P == o.p0 {
		return o.tpot, nil
	}
	y := []float64{o.tpot}
	err = o.sol.Solve(y, o.p0, P, P-o.p0, false)
	if err != nil {
		return 0, chk.Err("adiabat: integration to P=%v failed: %v", P, err)
	}
	return y[0], nil
}
