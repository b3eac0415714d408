// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Modifier adds an excess Gibbs contribution to an end-member on top of
// its equation of state, e.g. for displacive phase transitions. The
// excesses are pure functions of (P, T):
//  Gxs             excess Gibbs energy
//  Vxs = ∂Gxs/∂P   excess volume
//  Sxs = -∂Gxs/∂T  excess entropy
// Moduli and heat-capacity corrections (second derivatives of Gxs) are
// not part of the contract; callers keep the EoS values for those.
type Modifier interface {
	Init(prms fun.Prms) error           // initialises modifier
	GetPrms() fun.Prms                  // gets (an example of) parameters
	GibbsExcess(P, T float64) float64   // computes Gxs [J/mol]
	VolumeExcess(P, T float64) float64  // computes Vxs [m³/mol]
	EntropyExcess(P, T float64) float64 // computes Sxs [J/(mol·K)]
}

// NewModifier returns new property modifier
func NewModifier(name string) (mod Modifier, err error) {
	allocator, ok := modAllocators[name]
	if !ok {
		return nil, chk.Err("modifier %q is not available in 'meos' database", name)
	}
	return allocator(), nil
}

// modAllocators holds all available modifiers
var modAllocators = map[string]func() Modifier{}
