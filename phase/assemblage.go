// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Assemblage is an ordered set of mineral phases with modal mole fractions.
// Fractions must sum to one; the order is fixed at construction.
type Assemblage struct {
	Min  []*Mineral // phases
	Frac []float64  // modal mole fractions [nmin]
}

// NewAssemblage creates an assemblage and validates the modal fractions
func NewAssemblage(min []*Mineral, frac []float64) (*Assemblage, error) {
	if len(min) < 1 {
		return nil, chk.Err("assemblage: at least one phase is required")
	}
	if len(frac) != len(min) {
		return nil, chk.Err("assemblage: %d phases need %d fractions (got %d)", len(min), len(min), len(frac))
	}
	sum := 0.0
	for _, f := range frac {
		if f < 0 {
			return nil, chk.Err("assemblage: negative modal fraction %v", f)
		}
		sum += f
	}
	if math.Abs(sum-1.0) > x_sumtol {
		return nil, chk.Err("assemblage: modal fractions must sum to one (got %v)", sum)
	}
	o := new(Assemblage)
	o.Min = min
	o.Frac = make([]float64, len(frac))
	copy(o.Frac, frac)
	return o, nil
}

// SetState computes the properties of all phases at P, T
func (o *Assemblage) SetState(P, T float64) (err error) {
	for _, m := range o.Min {
		err = m.SetState(P, T)
		if err != nil {
			return
		}
	}
	return
}

// Volume returns the molar volume of the assemblage at the cached states [m³/mol]
func (o *Assemblage) Volume() (v float64, err error) {
	for i, m := range o.Min {
		if m.Sta == nil {
			return 0, chk.Err("assemblage: SetState must be called before Volume")
		}
		v += o.Frac[i] * m.Sta.V
	}
	return
}

// Density returns the density of the assemblage at the cached states [kg/m³]
func (o *Assemblage) Density() (float64, error) {
	var msum, vsum float64
	for i, m := range o.Min {
		if m.Sta == nil {
			return 0, chk.Err("assemblage: SetState must be called before Density")
		}
		msum += o.Frac[i] * m.Sta.Rho * m.Sta.V
		vsum += o.Frac[i] * m.Sta.V
	}
	return msum / vsum, nil
}

// GetCopy returns a deep copy of this assemblage
func (o *Assemblage) GetCopy() *Assemblage {
	c := new(Assemblage)
	c.Min = make([]*Mineral, len(o.Min))
	for i, m := range o.Min {
		c.Min[i] = m.GetCopy()
	}
	c.Frac = make([]float64, len(o.Frac))
	copy(c.Frac, o.Frac)
	return c
}
