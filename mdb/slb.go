// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdb provides ready-to-use thermal equation-of-state parameter
// sets and phase constructors for mantle minerals
//  References:
//   [1] Stixrude L and Lithgow-Bertelloni C (2011) Thermodynamics of mantle
//       minerals - II. Phase equilibria. Geophysical Journal International,
//       184(3), 1180-1213
//   [2] Putnis A (1992) An Introduction to the Mineral Sciences. Cambridge
//       University Press
package mdb

import (
	"github.com/cpmech/gosl/fun"

	"github.com/BKJackson/burnman/mmix"
	"github.com/BKJackson/burnman/phase"
)

// ForsteritePrms returns parameters for α-Mg2SiO4 (SI units)
func ForsteritePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.1406931},
		&fun.Prm{N: "V0", V: 4.3603e-5},
		&fun.Prm{N: "K0", V: 1.2796e11},
		&fun.Prm{N: "Kp", V: 4.218},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 809.2},
		&fun.Prm{N: "gam0", V: 0.993},
		&fun.Prm{N: "q", V: 2.107},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -2055403},
	}
}

// FayalitePrms returns parameters for α-Fe2SiO4 (SI units)
func FayalitePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.2037721},
		&fun.Prm{N: "V0", V: 4.629e-5},
		&fun.Prm{N: "K0", V: 1.3497e11},
		&fun.Prm{N: "Kp", V: 4.218},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 618.7},
		&fun.Prm{N: "gam0", V: 1.06},
		&fun.Prm{N: "q", V: 3.647},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -1370520},
	}
}

// MgWadsleyitePrms returns parameters for β-Mg2SiO4 (SI units)
func MgWadsleyitePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.1406931},
		&fun.Prm{N: "V0", V: 4.0515e-5},
		&fun.Prm{N: "K0", V: 1.687e11},
		&fun.Prm{N: "Kp", V: 4.323},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 843.5},
		&fun.Prm{N: "gam0", V: 1.206},
		&fun.Prm{N: "q", V: 2.019},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -2027837},
	}
}

// FeWadsleyitePrms returns parameters for β-Fe2SiO4 (SI units)
func FeWadsleyitePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.2037721},
		&fun.Prm{N: "V0", V: 4.28e-5},
		&fun.Prm{N: "K0", V: 1.6885e11},
		&fun.Prm{N: "Kp", V: 4.323},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 665.4},
		&fun.Prm{N: "gam0", V: 1.206},
		&fun.Prm{N: "q", V: 2.019},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -1364668},
	}
}

// MgRingwooditePrms returns parameters for γ-Mg2SiO4 (SI units)
func MgRingwooditePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.1406931},
		&fun.Prm{N: "V0", V: 3.9493e-5},
		&fun.Prm{N: "K0", V: 1.8497e11},
		&fun.Prm{N: "Kp", V: 4.22},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 877.7},
		&fun.Prm{N: "gam0", V: 1.107},
		&fun.Prm{N: "q", V: 2.391},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -2017557},
	}
}

// FeRingwooditePrms returns parameters for γ-Fe2SiO4 (SI units)
func FeRingwooditePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.2037721},
		&fun.Prm{N: "V0", V: 4.186e-5},
		&fun.Prm{N: "K0", V: 2.1341e11},
		&fun.Prm{N: "Kp", V: 4.22},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 677.7},
		&fun.Prm{N: "gam0", V: 1.25},
		&fun.Prm{N: "q", V: 1.827},
		&fun.Prm{N: "n", V: 7},
		&fun.Prm{N: "F0", V: -1362772},
	}
}

// PericlasePrms returns parameters for MgO (SI units)
func PericlasePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.0403044},
		&fun.Prm{N: "V0", V: 1.1244e-5},
		&fun.Prm{N: "K0", V: 1.613e11},
		&fun.Prm{N: "Kp", V: 3.84},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 767},
		&fun.Prm{N: "gam0", V: 1.36},
		&fun.Prm{N: "q", V: 1.7},
		&fun.Prm{N: "n", V: 2},
		&fun.Prm{N: "F0", V: -569444},
	}
}

// WuestitePrms returns parameters for FeO (SI units)
func WuestitePrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.0718444},
		&fun.Prm{N: "V0", V: 1.2264e-5},
		&fun.Prm{N: "K0", V: 1.794e11},
		&fun.Prm{N: "Kp", V: 4.9},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 454},
		&fun.Prm{N: "gam0", V: 1.53},
		&fun.Prm{N: "q", V: 1.7},
		&fun.Prm{N: "n", V: 2},
		&fun.Prm{N: "F0", V: -242146},
	}
}

// QuartzPrms returns parameters for α-SiO2 (SI units)
func QuartzPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "M", V: 0.0600843},
		&fun.Prm{N: "V0", V: 2.367e-5},
		&fun.Prm{N: "K0", V: 4.954e10},
		&fun.Prm{N: "Kp", V: 5.7},
		&fun.Prm{N: "T0", V: 300},
		&fun.Prm{N: "thD", V: 816.3},
		&fun.Prm{N: "gam0", V: 0.05},
		&fun.Prm{N: "q", V: 1},
		&fun.Prm{N: "n", V: 3},
		&fun.Prm{N: "F0", V: -858853},
	}
}

// QuartzLandauPrms returns the tricritical Landau parameters of the
// quartz α-β transition [2]
func QuartzLandauPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "Tc0", V: 847},
		&fun.Prm{N: "Sd", V: 4.95},
		&fun.Prm{N: "Vd", V: 1.188e-6},
	}
}

// pure builds a single end-member phase
func pure(name, em string, prms fun.Prms) (*phase.Mineral, error) {
	e, err := phase.NewEndMember(em, "mgd", prms)
	if err != nil {
		return nil, err
	}
	return phase.NewMineral(name, []*phase.EndMember{e}, nil)
}

// binary builds a two-site Fe-Mg solid solution with composition
// [1-xfe, xfe] and ideal mixing with site multiplicity s
func binary(name string, mg, fe *phase.EndMember, s, xfe float64) (*phase.Mineral, error) {
	mix, err := mmix.New("ideal")
	if err != nil {
		return nil, err
	}
	err = mix.Init(2, []*fun.Prm{&fun.Prm{N: "s", V: s}})
	if err != nil {
		return nil, err
	}
	m, err := phase.NewMineral(name, []*phase.EndMember{mg, fe}, mix)
	if err != nil {
		return nil, err
	}
	err = m.SetComposition([]float64{1 - xfe, xfe})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Forsterite returns pure α-Mg2SiO4
func Forsterite() (*phase.Mineral, error) { return pure("forsterite", "fo", ForsteritePrms()) }

// Fayalite returns pure α-Fe2SiO4
func Fayalite() (*phase.Mineral, error) { return pure("fayalite", "fa", FayalitePrms()) }

// MgWadsleyite returns pure β-Mg2SiO4
func MgWadsleyite() (*phase.Mineral, error) { return pure("mg-wadsleyite", "mgwd", MgWadsleyitePrms()) }

// FeWadsleyite returns pure β-Fe2SiO4
func FeWadsleyite() (*phase.Mineral, error) { return pure("fe-wadsleyite", "fewd", FeWadsleyitePrms()) }

// MgRingwoodite returns pure γ-Mg2SiO4
func MgRingwoodite() (*phase.Mineral, error) {
	return pure("mg-ringwoodite", "mgrw", MgRingwooditePrms())
}

// FeRingwoodite returns pure γ-Fe2SiO4
func FeRingwoodite() (*phase.Mineral, error) {
	return pure("fe-ringwoodite", "ferw", FeRingwooditePrms())
}

// Periclase returns pure MgO
func Periclase() (*phase.Mineral, error) { return pure("periclase", "per", PericlasePrms()) }

// Quartz returns pure SiO2 with the Landau correction for the α-β
// transition attached
func Quartz() (*phase.Mineral, error) {
	e, err := phase.NewEndMember("qtz", "mgd", QuartzPrms())
	if err != nil {
		return nil, err
	}
	err = e.SetModifier("landau", QuartzLandauPrms())
	if err != nil {
		return nil, err
	}
	return phase.NewMineral("quartz", []*phase.EndMember{e}, nil)
}

// Wuestite returns pure FeO
func Wuestite() (*phase.Mineral, error) { return pure("wustite", "wus", WuestitePrms()) }

// Olivine returns the (Mg,Fe)2SiO4 α solution with Fe fraction xfe
func Olivine(xfe float64) (*phase.Mineral, error) {
	mg, err := phase.NewEndMember("fo", "mgd", ForsteritePrms())
	if err != nil {
		return nil, err
	}
	fe, err := phase.NewEndMember("fa", "mgd", FayalitePrms())
	if err != nil {
		return nil, err
	}
	return binary("olivine", mg, fe, 2, xfe)
}

// Wadsleyite returns the (Mg,Fe)2SiO4 β solution with Fe fraction xfe
func Wadsleyite(xfe float64) (*phase.Mineral, error) {
	mg, err := phase.NewEndMember("mgwd", "mgd", MgWadsleyitePrms())
	if err != nil {
		return nil, err
	}
	fe, err := phase.NewEndMember("fewd", "mgd", FeWadsleyitePrms())
	if err != nil {
		return nil, err
	}
	return binary("wadsleyite", mg, fe, 2, xfe)
}

// Ringwoodite returns the (Mg,Fe)2SiO4 γ solution with Fe fraction xfe
func Ringwoodite(xfe float64) (*phase.Mineral, error) {
	mg, err := phase.NewEndMember("mgrw", "mgd", MgRingwooditePrms())
	if err != nil {
		return nil, err
	}
	fe, err := phase.NewEndMember("ferw", "mgd", FeRingwooditePrms())
	if err != nil {
		return nil, err
	}
	return binary("ringwoodite", mg, fe, 2, xfe)
}

// Ferropericlase returns the (Mg,Fe)O solution with Fe fraction xfe
func Ferropericlase(xfe float64) (*phase.Mineral, error) {
	mg, err := phase.NewEndMember("per", "mgd", PericlasePrms())
	if err != nil {
		return nil, err
	}
	fe, err := phase.NewEndMember("wus", "mgd", WuestitePrms())
	if err != nil {
		return nil, err
	}
	return binary("ferropericlase", mg, fe, 1, xfe)
}
