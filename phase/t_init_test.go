// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// periclase (MgO) thermal parameters
func per_prms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.040304},
		&fun.Prm{N: "V0", V: 1.1244e-5},
		&fun.Prm{N: "K0", V: 1.613e11},
		&fun.Prm{N: "Kp", V: 3.84},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 767},
		&fun.Prm{N: "gam0", V: 1.36},
		&fun.Prm{N: "q", V: 1.7},
		&fun.Prm{N: "n", V: 2},
	}
}

// wüstite (FeO) thermal parameters
func wus_prms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.071844},
		&fun.Prm{N: "V0", V: 1.2264e-5},
		&fun.Prm{N: "K0", V: 1.794e11},
		&fun.Prm{N: "Kp", V: 4.9},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 454},
		&fun.Prm{N: "gam0", V: 1.53},
		&fun.Prm{N: "q", V: 1.7},
		&fun.Prm{N: "n", V: 2},
	}
}
