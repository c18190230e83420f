// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"slices"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// State holds the results at one point of a saturation path
type State struct {
	S     []float64 // saturations
	Kr    []float64 // relative permeabilities
	Pc    []float64 // capillary pressures
	DkrDs []float64 // ∂kr_i/∂s_j [i + P*j]
	DpcDs []float64 // ∂pc_i/∂s_j [i + P*j]
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	return &State{
		S:     slices.Clone(o.S),
		Kr:    slices.Clone(o.Kr),
		Pc:    slices.Clone(o.Pc),
		DkrDs: slices.Clone(o.DkrDs),
		DpcDs: slices.Clone(o.DpcDs),
	}
}

// Driver runs saturation paths through one cell
type Driver struct {

	// input
	Sp   *SatProps // saturation functions
	Cell int       // cell index

	// settings
	TolKr float64 // tolerance to check dkr/ds
	TolPc float64 // tolerance to check dpc/ds
	StepD float64 // step size of numerical derivatives
	VerD  bool    // verbose check of derivatives

	// check derivatives
	TstD *testing.T // if != nil, do check derivatives

	// results
	Res []*State // results
}

// Init initialises driver
func (o *Driver) Init(sp *SatProps, cell int) (err error) {
	if err = sp.checkCell("Driver", cell); err != nil {
		return
	}
	o.Sp = sp
	o.Cell = cell
	o.TolKr = 1e-8
	o.TolPc = 1e-8
	o.StepD = 1e-6
	o.VerD = chk.Verbose
	return
}

// Run runs simulation
//  path -- saturations [npoints][P]
//  Note: each point is evaluated with the history of the previous points; then the history is updated
func (o *Driver) Run(path [][]float64) (err error) {

	// allocate results arrays
	np := o.Sp.Pu.Num
	o.Res = make([]*State, len(path))

	// run
	cells := []int{o.Cell}
	for k, s := range path {
		if len(s) != np {
			return chk.Err("Driver: point %d must have %d saturations; %d given", k, np, len(s))
		}

		// evaluate
		st := &State{
			S:     slices.Clone(s),
			Kr:    make([]float64, np),
			Pc:    make([]float64, np),
			DkrDs: make([]float64, np*np),
			DpcDs: make([]float64, np*np),
		}
		if err = o.Sp.Relperm(st.S, cells, st.Kr, st.DkrDs); err != nil {
			return
		}
		if err = o.Sp.CapPress(st.S, cells, st.Pc, st.DpcDs); err != nil {
			return
		}
		o.Res[k] = st

		// check derivatives
		if o.TstD != nil {
			o.checkDerivs(st)
		}

		// update history
		if err = o.Sp.UpdateSatHyst(st.S, cells); err != nil {
			return
		}
	}
	return
}

// checkDerivs compares analytical and numerical derivatives at state st
func (o *Driver) checkDerivs(st *State) {
	np := o.Sp.Pu.Num
	cells := []int{o.Cell}
	stmp := make([]float64, np)
	res := make([]float64, np)
	for j := 0; j < np; j++ {
		for i := 0; i < np; i++ {
			pi, pj := o.Sp.Pu.Ids[i], o.Sp.Pu.Ids[j]
			chk.DerivScaSca(o.TstD, io.Sf("dkr%v/ds%v @ %v", pi, pj, st.S), o.TolKr, st.DkrDs[i+np*j], st.S[j], o.StepD, o.VerD, func(x float64) float64 {
				copy(stmp, st.S)
				stmp[j] = x
				o.Sp.Relperm(stmp, cells, res, nil)
				return res[i]
			})
			chk.DerivScaSca(o.TstD, io.Sf("dpc%v/ds%v @ %v", pi, pj, st.S), o.TolPc, st.DpcDs[i+np*j], st.S[j], o.StepD, o.VerD, func(x float64) float64 {
				copy(stmp, st.S)
				stmp[j] = x
				o.Sp.CapPress(stmp, cells, res, nil)
				return res[i]
			})
		}
	}
}
