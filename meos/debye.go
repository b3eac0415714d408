// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import "math"

// constants for the quasiharmonic Debye model
const (
	d3_switch = 0.7                // x below which the Taylor series is used
	d3_pi4o15 = 6.493939402266829  // π⁴/15 = ∫₀∞ t³/(exp(t)-1) dt
	d3_kmax   = 80                 // cap on terms of the exponential sum
	t_min     = 1e-12              // temperature below which all thermal terms vanish
)

// D3 computes the third-order Debye function
//  D3(x) = (3/x³) ∫₀ˣ t³/(exp(t)-1) dt
// For x < 0.7 a Taylor expansion about x = 0 is used; otherwise the tail
// integral is summed in closed form. Both branches agree to ~1e-12 at the
// switch point.
func D3(x float64) float64 {
	if x <= 0 {
		return 1.0
	}
	if x < d3_switch {
		x2 := x * x
		x4 := x2 * x2
		return 1.0 - 3.0*x/8.0 + x2/20.0 - x4/1680.0 + x4*x2/90720.0 - x4*x4/4435200.0 + x4*x4*x2/207567360.0
	}
	sum := 0.0
	for k := 1; k <= d3_kmax; k++ {
		κ := float64(k)
		t := math.Exp(-κ*x) * (x*x*x/κ + 3.0*x*x/(κ*κ) + 6.0*x/(κ*κ*κ) + 6.0/(κ*κ*κ*κ))
		sum += t
		if t < 1e-17*d3_pi4o15 {
			break
		}
	}
	return 3.0 * (d3_pi4o15 - sum) / (x * x * x)
}

// DebyeEth computes the vibrational thermal energy [J/mol]
//  θ -- Debye temperature; n -- atoms per formula unit
func DebyeEth(T, θ, n float64) float64 {
	if T < t_min {
		return 0
	}
	return 3.0 * n * Rgas * T * D3(θ/T)
}

// DebyeFvib computes the vibrational Helmholtz free energy [J/mol]
func DebyeFvib(T, θ, n float64) float64 {
	if T < t_min {
		return 0
	}
	x := θ / T
	return n * Rgas * T * (3.0*math.Log(1.0-math.Exp(-x)) - D3(x))
}

// DebyeS computes the vibrational entropy [J/(mol·K)]
func DebyeS(T, θ, n float64) float64 {
	if T < t_min {
		return 0
	}
	x := θ / T
	return n * Rgas * (4.0*D3(x) - 3.0*math.Log(1.0-math.Exp(-x)))
}

// DebyeCv computes the isochoric heat capacity [J/(mol·K)]
func DebyeCv(T, θ, n float64) float64 {
	if T < t_min {
		return 0
	}
	x := θ / T
	return 3.0 * n * Rgas * (4.0*D3(x) - 3.0*x/(math.Exp(x)-1.0))
}
