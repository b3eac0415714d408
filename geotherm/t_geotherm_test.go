// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geotherm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"

	"github.com/BKJackson/burnman/mdb"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_lin01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lin01. linear gradient")

	g := Linear{Pref: 1e9, Tref: 1600, DTdP: 1e-8} // 10 K/GPa
	chk.Scalar(tst, "T(Pref)", 1e-15, g.Calc(1e9), 1600)
	chk.Scalar(tst, "T(Pref+10GPa)", 1e-12, g.Calc(1.1e10), 1700)
	chk.Scalar(tst, "T(0)", 1e-12, g.Calc(0), 1590)
}

func Test_adi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("adi01. periclase adiabat")

	per, err := mdb.Periclase()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	var adi Adiabat
	p0, tpot := 1e9, 1600.0
	err = adi.Init(per, p0, tpot)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// anchored at the potential temperature
	T, err := adi.Calc(p0)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "T(P0) = Tpot", 1e-15, T, tpot)

	// temperature rises monotonically along the adiabat
	pp := utl.LinSpace(p0, 4e10, 9)
	told := 0.0
	tt := make([]float64, len(pp))
	for i, P := range pp {
		tt[i], err = adi.Calc(P)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		if tt[i] <= told {
			tst.Errorf("test failed: T must increase along the adiabat (T=%v, Tprev=%v)\n", tt[i], told)
			return
		}
		told = tt[i]
	}
	io.Pforan("T(%v GPa) = %v K ... T(%v GPa) = %v K\n", pp[0]*1e-9, tt[0], pp[len(pp)-1]*1e-9, tt[len(tt)-1])

	// cross-check against a fine explicit-Euler integration of dT/dP = γ·T/KS
	// on the caller's own phase
	pend := 4e10
	nstp := 4000
	dp := (pend - p0) / float64(nstp)
	T = tpot
	for i := 0; i < nstp; i++ {
		err = per.SetState(p0+float64(i)*dp, T)
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		T += dp * per.Sta.Gamma * T / per.Sta.KS
	}
	io.Pforan("Euler: T(%v GPa) = %v K\n", pend*1e-9, T)
	chk.AnaNum(tst, "T(Pend)", 1e-2*(T-tpot), T, tt[len(tt)-1], chk.Verbose)

	// pressures below the anchor are rejected
	_, err = adi.Calc(0)
	if err == nil {
		tst.Errorf("test failed: P below the anchor must be rejected\n")
		return
	}

	// invalid potential temperature
	err = adi.Init(per, p0, -1)
	if err == nil {
		tst.Errorf("test failed: negative Tpot must be rejected\n")
	}
}
