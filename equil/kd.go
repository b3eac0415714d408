// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/BKJackson/burnman/meos"
	"github.com/BKJackson/burnman/phase"
)

// KdFunc computes the exchange equilibrium constant at P, T with the
// convention
//  Kd = (x2/(1-x2)) / (x1/(1-x1))
// where x1, x2 are the mole fractions of the exchanging component in
// phase A and phase B, respectively.
type KdFunc func(P, T float64) (float64, error)

// ConstKd returns a pressure- and temperature-independent exchange
// coefficient
func ConstKd(kd float64) KdFunc {
	return func(P, T float64) (float64, error) {
		if kd <= 0 {
			return 0, chk.Err("exchange coefficient must be positive: Kd=%v", kd)
		}
		return kd, nil
	}
}

// PexpKd returns the empirical pressure-dependent exchange coefficient
//  Kd(P,T) = kd0·exp((P0-P)·dV/(R·T))
// with kd0 measured at reference pressure P0 [Pa] and dV the volume change
// of the exchange reaction [m³/mol]
func PexpKd(kd0, P0, dV float64) KdFunc {
	return func(P, T float64) (float64, error) {
		if kd0 <= 0 {
			return 0, chk.Err("reference exchange coefficient must be positive: kd0=%v", kd0)
		}
		if T <= 0 {
			return 0, chk.Err("temperature must be positive: T=%v", T)
		}
		return kd0 * math.Exp((P0-P)*dV/(meos.Rgas*T)), nil
	}
}

// KdFromEndmembers derives the exchange coefficient from the end-member
// Gibbs energies of the reaction
//  fe(A) + mg(B) → fe(B) + mg(A)
//  Kd = exp(-ΔG°/(s·R·T))    ΔG° = G_feB + G_mgA - G_feA - G_mgB
// where s is the multiplicity of the exchange site. For phases with ideal
// mixing and the same s, partitioning with this Kd is identical to solving
// for equal chemical potentials directly.
func KdFromEndmembers(mgA, feA, mgB, feB *phase.EndMember, s float64) KdFunc {
	return func(P, T float64) (float64, error) {
		if s <= 0 {
			return 0, chk.Err("site multiplicity must be positive: s=%v", s)
		}
		gMgA, err := mgA.Gibbs(P, T)
		if err != nil {
			return 0, err
		}
		gFeA, err := feA.Gibbs(P, T)
		if err != nil {
			return 0, err
		}
		gMgB, err := mgB.Gibbs(P, T)
		if err != nil {
			return 0, err
		}
		gFeB, err := feB.Gibbs(P, T)
		if err != nil {
			return 0, err
		}
		dg := (gFeB + gMgA) - (gFeA + gMgB)
		return math.Exp(-dg / (s * meos.Rgas * T)), nil
	}
}
