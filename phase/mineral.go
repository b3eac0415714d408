// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/BKJackson/burnman/meos"
	"github.com/BKJackson/burnman/mmix"
)

// tolerance on Σx = 1 for compositions and modal fractions
const x_sumtol = 1e-9

// Mineral is a phase: one or more end-members with a composition and a
// mixing model. Properties at (P,T) are computed by SetState and cached in
// Sta; the cache is replaced when P or T change and dropped when the
// composition changes. A Mineral is not safe for concurrent use: parallel
// workers must operate on copies (see GetCopy).
type Mineral struct {

	// input data
	Name string       // name, e.g. "olivine"
	Em   []*EndMember // end-members (immutable, shared)
	Mix  mmix.Model   // mixing model (nil for a pure phase)

	// composition
	X []float64 // mole fractions of the end-members [nem]

	// current state
	Sta *State // nil until SetState succeeds
}

// NewMineral creates a mineral phase. Pure phases (one end-member) get
// X = [1] and need no mixing model; solutions require one.
func NewMineral(name string, em []*EndMember, mix mmix.Model) (*Mineral, error) {
	if len(em) < 1 {
		return nil, chk.Err("mineral %q: at least one end-member is required", name)
	}
	if len(em) > 1 && mix == nil {
		return nil, chk.Err("mineral %q: solid solutions require a mixing model", name)
	}
	o := new(Mineral)
	o.Name = name
	o.Em = em
	o.Mix = mix
	if len(em) == 1 {
		o.X = []float64{1.0}
	}
	return o, nil
}

// SetComposition sets the mole fractions of the end-members and drops the
// cached state. Fractions must lie in [0,1] and sum to one.
func (o *Mineral) SetComposition(x []float64) error {
	if len(x) != len(o.Em) {
		return chk.Err("mineral %q: composition needs %d fractions (got %d)", o.Name, len(o.Em), len(x))
	}
	sum := 0.0
	for _, xk := range x {
		if xk < 0 || xk > 1 {
			return chk.Err("mineral %q: fraction %v is outside [0,1]", o.Name, xk)
		}
		sum += xk
	}
	if math.Abs(sum-1.0) > x_sumtol {
		return chk.Err("mineral %q: fractions must sum to one (got %v)", o.Name, sum)
	}
	if o.X == nil {
		o.X = make([]float64, len(x))
	}
	copy(o.X, x)
	o.Sta = nil
	return nil
}

// SetState computes all properties at P, T and caches them in Sta. Calling
// it again with the same P, T reuses the cache. On failure the previous
// cache is kept and the EoS error is returned unchanged.
func (o *Mineral) SetState(P, T float64) (err error) {
	if o.X == nil {
		return chk.Err("mineral %q: composition must be set before SetState", o.Name)
	}
	if o.Sta != nil && o.Sta.P == P && o.Sta.T == T {
		return
	}

	// per end-member solves and composition-weighted sums
	nem := len(o.Em)
	sta := NewState(nem)
	sta.P, sta.T = P, T
	var msum, αvsum, krsum float64
	for i, em := range o.Em {
		V, err := em.Eos.Volume(P, T)
		if err != nil {
			return err
		}
		g := em.Eos.GibbsEnergy(P, T, V)
		s := em.Eos.Entropy(T, V)
		x := o.X[i]
		sta.Cv += x * em.Eos.HeatCapacityV(T, V)
		αvsum += x * V * meos.Expansivity(em.Eos, T, V)
		kt := em.Eos.BulkModulus(T, V)
		if kt > 0 {
			krsum += x * V / kt
		}

		// modifier excesses on top of the EoS values; moduli and
		// expansivity keep the EoS volume (the Modifier contract stops
		// at first derivatives of Gxs)
		if em.Mod != nil {
			g += em.Mod.GibbsExcess(P, T)
			s += em.Mod.EntropyExcess(P, T)
			V += em.Mod.VolumeExcess(P, T)
		}
		sta.EmV[i] = V
		sta.EmG[i] = g
		msum += x * em.M
		sta.V += x * V
		sta.G += x * g
		sta.S += x * s
	}

	// mixing contributions
	if o.Mix != nil {
		sta.G += o.Mix.GibbsMix(T, o.X)
		sta.S += o.Mix.SMix(T, o.X)
	}

	// solution properties: Reuss average for KT, volume-weighted α,
	// thermodynamic γ = α·KT·V/Cv
	sta.Rho = msum / sta.V
	if krsum > 0 {
		sta.KT = sta.V / krsum
	}
	sta.Alpha = αvsum / sta.V
	if sta.Cv > 0 {
		sta.Gamma = sta.Alpha * sta.KT * sta.V / sta.Cv
	}
	sta.KS = sta.KT * (1.0 + sta.Gamma*sta.Alpha*T)
	o.Sta = sta
	return
}

// ChemPotential computes the chemical potential of end-member k at the
// cached state [J/mol]
func (o *Mineral) ChemPotential(k int) (float64, error) {
	if o.Sta == nil {
		return 0, chk.Err("mineral %q: SetState must be called before ChemPotential", o.Name)
	}
	if k < 0 || k >= len(o.Em) {
		return 0, chk.Err("mineral %q: end-member index %d is out of range", o.Name, k)
	}
	μ := o.Sta.EmG[k]
	if o.Mix != nil {
		μ += o.Mix.MuMix(o.Sta.T, o.X, k)
	}
	return μ, nil
}

// Density returns the density at the cached state [kg/m³]
func (o *Mineral) Density() (float64, error) {
	if o.Sta == nil {
		return 0, chk.Err("mineral %q: SetState must be called before Density", o.Name)
	}
	return o.Sta.Rho, nil
}

// GetCopy returns a deep copy of this mineral. End-members and the mixing
// model are immutable and therefore shared; composition and state are
// copied so that the original and the copy never alias mutable data.
func (o *Mineral) GetCopy() *Mineral {
	c := new(Mineral)
	c.Name = o.Name
	c.Em = make([]*EndMember, len(o.Em))
	copy(c.Em, o.Em)
	c.Mix = o.Mix
	if o.X != nil {
		c.X = make([]float64, len(o.X))
		copy(c.X, o.X)
	}
	if o.Sta != nil {
		c.Sta = o.Sta.GetCopy()
	}
	return c
}
