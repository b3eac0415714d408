// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Landau implements the tricritical Landau correction for end-members that
// undergo a displacive phase transition (e.g. the α-β transition in
// quartz), following Putnis (1992). The excesses are taken relative to the
// completely ordered state at 0 K, so the excess entropy vanishes there.
// The critical temperature shifts with pressure and the order parameter Q
// obeys the tricritical relation:
//  Tc(P) = Tc0 + Vd·P/Sd    Q⁴ = 1 - T/Tc  (Q = 0 at and above Tc)
//  Gxs = Sd·((T - Tc)·Q² + Tc0·Q⁶/3) - Sd·((T - Tc) + Tc0/3)
// The mineral is assumed completely relaxed: the order parameter follows
// P and T instantaneously.
type Landau struct {

	// parameters
	tc0 float64 // Tc0: critical temperature at zero pressure [K]
	sd  float64 // Sd: entropy change of the fully disordered transition [J/(mol·K)]
	vd  float64 // Vd: volume change of the fully disordered transition [m³/mol]
}

// add modifier to factory
func init() {
	modAllocators["landau"] = func() Modifier { return new(Landau) }
}

// Init initialises modifier
func (o *Landau) Init(prms fun.Prms) (err error) {

	// parameters
	for _, p := range prms {
		switch p.N {
		case "Tc0":
			o.tc0 = p.V
		case "Sd":
			o.sd = p.V
		case "Vd":
			o.vd = p.V
		}
	}

	// check
	if o.tc0 <= 0 || o.sd <= 0 {
		return chk.Err("landau: Tc0 and Sd must be positive: Tc0=%v, Sd=%v", o.tc0, o.sd)
	}
	return
}

// GetPrms gets (an example of) parameters (α-quartz)
func (o Landau) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Tc0", V: 847},
		&fun.Prm{N: "Sd", V: 4.95},
		&fun.Prm{N: "Vd", V: 1.188e-6},
	}
}

// tc computes the critical temperature at pressure P [K]
func (o Landau) tc(P float64) float64 {
	return o.tc0 + o.vd*P/o.sd
}

// GibbsExcess computes Gxs [J/mol]
func (o Landau) GibbsExcess(P, T float64) float64 {
	Tc := o.tc(P)
	gdis := o.sd * ((T - Tc) + o.tc0/3.0)
	if T >= Tc {
		return -gdis
	}
	q2 := math.Sqrt(1.0 - T/Tc)
	return o.sd*((T-Tc)*q2+o.tc0*q2*q2*q2/3.0) - gdis
}

// VolumeExcess computes Vxs = ∂Gxs/∂P [m³/mol]
func (o Landau) VolumeExcess(P, T float64) float64 {
	Tc := o.tc(P)
	if T >= Tc {
		return o.vd
	}
	q2 := math.Sqrt(1.0 - T/Tc)
	return -o.vd*q2*(1.0+0.5*T/Tc*(1.0-o.tc0/Tc)) + o.vd
}

// EntropyExcess computes Sxs = -∂Gxs/∂T [J/(mol·K)]
func (o Landau) EntropyExcess(P, T float64) float64 {
	Tc := o.tc(P)
	if T >= Tc {
		return o.sd
	}
	q2 := math.Sqrt(1.0 - T/Tc)
	return o.sd - o.sd*q2*(1.5-0.5*o.tc0/Tc)
}
