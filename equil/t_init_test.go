// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package equil

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/BKJackson/burnman/mdb"
	"github.com/BKJackson/burnman/phase"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// ol_wd_phases builds olivine and wadsleyite solutions for the tests below
func ol_wd_phases(tst *testing.T) (ol, wd *phase.Mineral) {
	ol, err := mdb.Olivine(0.1)
	if err != nil {
		tst.Fatalf("cannot build olivine: %v\n", err)
	}
	wd, err = mdb.Wadsleyite(0.1)
	if err != nil {
		tst.Fatalf("cannot build wadsleyite: %v\n", err)
	}
	return
}

// ol_wd_kd derives the olivine/wadsleyite exchange model from the
// end-member Gibbs energies (site multiplicity 2)
func ol_wd_kd(tst *testing.T) KdFunc {
	fo, err := phase.NewEndMember("fo", "mgd", mdb.ForsteritePrms())
	if err != nil {
		tst.Fatalf("cannot build fo: %v\n", err)
	}
	fa, err := phase.NewEndMember("fa", "mgd", mdb.FayalitePrms())
	if err != nil {
		tst.Fatalf("cannot build fa: %v\n", err)
	}
	mgwd, err := phase.NewEndMember("mgwd", "mgd", mdb.MgWadsleyitePrms())
	if err != nil {
		tst.Fatalf("cannot build mgwd: %v\n", err)
	}
	fewd, err := phase.NewEndMember("fewd", "mgd", mdb.FeWadsleyitePrms())
	if err != nil {
		tst.Fatalf("cannot build fewd: %v\n", err)
	}
	return KdFromEndmembers(fo, fa, mgwd, fewd, 2)
}
