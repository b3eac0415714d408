// Copyright 2016 The Burnman Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phase

// State holds the (P,T)-dependent properties of a phase
type State struct {

	// conditions
	P float64 // pressure [Pa]
	T float64 // temperature [K]

	// solution properties
	V     float64 // molar volume [m³/mol]
	Rho   float64 // density [kg/m³]
	KT    float64 // isothermal bulk modulus [Pa]
	KS    float64 // adiabatic bulk modulus [Pa]
	Alpha float64 // thermal expansivity [1/K]
	Cv    float64 // isochoric heat capacity [J/(mol·K)]
	S     float64 // entropy, including the configurational part [J/(mol·K)]
	G     float64 // Gibbs free energy [J/mol]
	Gamma float64 // thermodynamic Grüneisen parameter

	// per end-member
	EmV []float64 // volumes [nem]
	EmG []float64 // Gibbs energies [nem]
}

// NewState allocates a state for a phase with nem end-members
func NewState(nem int) *State {
	var state State
	state.EmV = make([]float64, nem)
	state.EmG = make([]float64, nem)
	return &state
}

// Set copies states
//  Note: this and other states must have been pre-allocated with the same sizes
func (o *State) Set(other *State) {
	o.P = other.P
	o.T = other.T
	o.V = other.V
	o.Rho = other.Rho
	o.KT = other.KT
	o.KS = other.KS
	o.Alpha = other.Alpha
	o.Cv = other.Cv
	o.S = other.S
	o.G = other.G
	o.Gamma = other.Gamma
	copy(o.EmV, other.EmV)
	copy(o.EmG, other.EmG)
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	other := NewState(len(o.EmV))
	other.Set(o)
	return other
}
