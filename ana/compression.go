// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the
// numerical solvers
package ana

import (
	"math"
)

// Compression is the Murnaghan isothermal compression curve, which inverts
// in closed form:
//  P(V) = K0/Kp·((V0/V)^Kp - 1)    V(P) = V0·(1 + Kp·P/K0)^(-1/Kp)
// It provides the exact answer the iterative volume solver must reproduce.
type Compression struct {
	V0 float64 // reference volume [m³/mol]
	K0 float64 // reference bulk modulus [Pa]
	Kp float64 // pressure derivative of K0
}

// Volume computes the exact volume at pressure P [m³/mol]
func (o Compression) Volume(P float64) float64 {
	return o.V0 * math.Pow(1.0+o.Kp*P/o.K0, -1.0/o.Kp)
}

// Pressure computes the exact pressure at volume V [Pa]
func (o Compression) Pressure(V float64) float64 {
	return o.K0 / o.Kp * (math.Pow(o.V0/V, o.Kp) - 1.0)
}

// BulkModulus computes the exact isothermal bulk modulus at pressure P [Pa]
func (o Compression) BulkModulus(P float64) float64 {
	return o.K0 + o.Kp*P
}
