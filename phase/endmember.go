// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phase implements mineral phases: end-members bound to equations
// of state, solid solutions with cached (P,T) states, and assemblages
package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"

	"github.com/BKJackson/burnman/meos"
)

// EndMember combines the formula constants and the equation of state of one
// pure mineral end-member, plus an optional property modifier for phases
// with displacive transitions. End-members are immutable after creation and
// may be shared read-only by any number of phases.
type EndMember struct {
	Name string        // name, e.g. "fo"
	M    float64       // molar mass [kg/mol]
	Eos  meos.Model    // equation of state
	Mod  meos.Modifier // Gibbs-excess modifier (nil for most minerals)
}

// NewEndMember creates an end-member with an EoS model from the meos factory.
// The molar mass is read from parameter "M"; the remaining parameters are
// passed through to the model.
func NewEndMember(name, model string, prms fun.Prms) (*EndMember, error) {
	o := new(EndMember)
	o.Name = name
	for _, p := range prms {
		switch p.N {
		case "M":
			o.M = p.V
		}
	}
	if o.M <= 0 {
		return nil, chk.Err("end-member %q: molar mass must be positive: M=%v", name, o.M)
	}
	eos, err := meos.New(model)
	if err != nil {
		return nil, err
	}
	err = eos.Init(prms)
	if err != nil {
		return nil, err
	}
	o.Eos = eos
	return o, nil
}

// SetModifier attaches a Gibbs-excess property modifier from the meos
// factory, e.g. "landau". Must be called before the end-member is shared.
func (o *EndMember) SetModifier(name string, prms fun.Prms) error {
	mod, err := meos.NewModifier(name)
	if err != nil {
		return err
	}
	err = mod.Init(prms)
	if err != nil {
		return err
	}
	o.Mod = mod
	return nil
}

// Gibbs computes the Gibbs free energy at P, T, including the modifier
// excess when one is attached [J/mol]
func (o *EndMember) Gibbs(P, T float64) (float64, error) {
	V, err := o.Eos.Volume(P, T)
	if err != nil {
		return 0, err
	}
	g := o.Eos.GibbsEnergy(P, T, V)
	if o.Mod != nil {
		g += o.Mod.GibbsExcess(P, T)
	}
	return g, nil
}
