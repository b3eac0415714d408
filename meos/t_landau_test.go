// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meos

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/num"
)

func Test_landau01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("landau01. factory and limits")

	mod, err := NewModifier("landau")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mod.Init(mod.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// fully ordered reference: all excesses vanish at P=0, T=0
	chk.Scalar(tst, "Gxs(0,0)", 1e-12, mod.GibbsExcess(0, 0), 0)
	chk.Scalar(tst, "Sxs(0,0)", 1e-12, mod.EntropyExcess(0, 0), 0)
	chk.Scalar(tst, "Vxs(0,0)", 1e-20, mod.VolumeExcess(0, 0), 0)

	// fully disordered state above Tc: Sxs = Sd, Vxs = Vd
	tc0, sd, vd := 847.0, 4.95, 1.188e-6
	chk.Scalar(tst, "Sxs(0,2000)", 1e-15, mod.EntropyExcess(0, 2000), sd)
	chk.Scalar(tst, "Vxs(0,2000)", 1e-20, mod.VolumeExcess(0, 2000), vd)
	gdis := sd * ((2000.0 - tc0) + tc0/3.0)
	chk.Scalar(tst, "Gxs(0,2000)", 1e-12, mod.GibbsExcess(0, 2000), -gdis)

	// continuity across the transition
	chk.Scalar(tst, "Gxs continuity at Tc", 1e-6, mod.GibbsExcess(0, tc0-1e-8), mod.GibbsExcess(0, tc0+1e-8))
	chk.Scalar(tst, "Sxs continuity at Tc", 1e-3, mod.EntropyExcess(0, tc0-1e-8), mod.EntropyExcess(0, tc0+1e-8))

	// pressure shifts the critical temperature upwards
	T := 900.0 // disordered at P=0, ordered at 10 GPa
	if mod.EntropyExcess(0, T) != sd {
		tst.Errorf("test failed: T=%v must be above Tc at P=0\n", T)
		return
	}
	if mod.EntropyExcess(1e10, T) >= sd {
		tst.Errorf("test failed: T=%v must be below Tc at 10 GPa\n", T)
		return
	}

	// invalid parameters and unknown names
	var bad Landau
	err = bad.Init([]*fun.Prm{&fun.Prm{N: "Tc0", V: -1}})
	if err == nil {
		tst.Errorf("test failed: non-positive Tc0 must be rejected\n")
		return
	}
	_, err = NewModifier("bogus")
	if err == nil {
		tst.Errorf("test failed: factory must reject unknown modifier names\n")
	}
}

func Test_landau02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("landau02. derivative identities")

	mod, err := NewModifier("landau")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mod.Init(mod.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// Sxs = -∂Gxs/∂T and Vxs = ∂Gxs/∂P on both sides of the transition
	for _, pt := range [][]float64{{0, 300}, {0, 700}, {1e9, 500}, {0, 1200}, {2e9, 1500}} {
		P, T := pt[0], pt[1]
		dGdT, _ := num.DerivCentral(func(t float64, args ...interface{}) float64 {
			return mod.GibbsExcess(P, t)
		}, T, 1e-2)
		chk.AnaNum(tst, io.Sf("Sxs(P=%8.1e,T=%g)", P, T), 1e-5, mod.EntropyExcess(P, T), -dGdT, chk.Verbose)
		dGdP, _ := num.DerivCentral(func(p float64, args ...interface{}) float64 {
			return mod.GibbsExcess(p, T)
		}, P, 1e4)
		chk.AnaNum(tst, io.Sf("Vxs(P=%8.1e,T=%g)", P, T), 1e-12, mod.VolumeExcess(P, T), dGdP, chk.Verbose)
	}
}
