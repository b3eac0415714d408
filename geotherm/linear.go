// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package geotherm implements temperature-pressure paths for sweeps over
// planetary interiors
package geotherm

// Linear is a temperature path with a constant gradient:
//  T(P) = Tref + dTdP·(P - Pref)
type Linear struct {
	Pref float64 // reference pressure [Pa]
	Tref float64 // temperature at the reference pressure [K]
	DTdP float64 // gradient [K/Pa]
}

// Calc computes the temperature at pressure P [K]
func (o Linear) Calc(P float64) float64 {
	return o.Tref + o.DTdP*(P-o.Pref)
}
