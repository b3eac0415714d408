// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// constants for the volume root-finder
const (
	v_rtol   = 1e-10 // relative tolerance on V
	v_nmaxit = 120   // iteration cap
	v_wnewt  = 1e-4  // relative bracket width to switch to Newton
)

// ConvergenceError indicates that a volume solve failed to bracket the
// requested pressure or to converge within the iteration cap
type ConvergenceError struct {
	Model    string  // model name
	P, T     float64 // requested state
	Vlo, Vhi float64 // last bracket
	Res      float64 // last residual P(T,v) - P
	It       int     // iterations performed
}

// Error returns the error message
func (o *ConvergenceError) Error() string {
	return io.Sf("%s: volume solve failed at P=%v, T=%v after %d iterations: bracket=[%v,%v], residual=%v",
		o.Model, o.P, o.T, o.It, o.Vlo, o.Vhi, o.Res)
}

// findVolume solves pfcn(v) = P for v within [vlo, vhi]. Bisection narrows
// the bracket; once it is tight, Newton steps with dP/dV = -KT/v from kfcn
// finish the job. Steps falling outside the bracket are replaced by
// bisection. Note: pfcn must be monotonically decreasing in v.
func findVolume(name string, P, T, vlo, vhi float64, pfcn, kfcn func(v float64) float64) (float64, error) {
	flo := pfcn(vlo) - P
	fhi := pfcn(vhi) - P
	if flo*fhi > 0 {
		return 0, &ConvergenceError{Model: name, P: P, T: T, Vlo: vlo, Vhi: vhi, Res: flo}
	}
	v := 0.5 * (vlo + vhi)
	var f float64
	for it := 0; it < v_nmaxit; it++ {

		// residual and bracket update
		f = pfcn(v) - P
		if f == 0 {
			return v, nil
		}
		if f*flo > 0 {
			vlo, flo = v, f
		} else {
			vhi = v
		}

		// bisection, or Newton once the bracket is tight
		vnew := 0.5 * (vlo + vhi)
		if vhi-vlo < v_wnewt*v {
			kt := kfcn(v)
			if kt > 0 {
				vn := v + f*v/kt
				if vn > vlo && vn < vhi {
					vnew = vn
				}
			}
		}

		// check convergence
		if math.Abs(vnew-v) <= v_rtol*v {
			return vnew, nil
		}
		v = vnew
	}
	return 0, &ConvergenceError{Model: name, P: P, T: T, Vlo: vlo, Vhi: vhi, Res: f, It: v_nmaxit}
}

// Expansivity computes the thermal expansion coefficient α = γ·Cv/(KT·V) [1/K]
func Expansivity(m Model, T, V float64) float64 {
	kt := m.BulkModulus(T, V)
	if kt <= 0 {
		return 0
	}
	return m.Grueneisen(T, V) * m.HeatCapacityV(T, V) / (kt * V)
}

// AdiabaticBulkModulus computes KS = KT·(1 + γ·α·T) [Pa]
func AdiabaticBulkModulus(m Model, T, V float64) float64 {
	α := Expansivity(m, T, V)
	return m.BulkModulus(T, V) * (1.0 + m.Grueneisen(T, V)*α*T)
}

// HeatCapacityP computes the isobaric heat capacity Cp = Cv·(1 + γ·α·T) [J/(mol·K)]
func HeatCapacityP(m Model, T, V float64) float64 {
	α := Expansivity(m, T, V)
	return m.HeatCapacityV(T, V) * (1.0 + m.Grueneisen(T, V)*α*T)
}
