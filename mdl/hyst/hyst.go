// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package hyst implements relative permeability hysteresis through endpoint scaling
//  The imbibition branch is a second set of transforms over the same region table.
//  After a reversal, the imbibition branch is shifted so that it meets the drainage
//  branch at the reversal point:
//
//    gas: drainage if sg ≥ sgmax; otherwise imbibition at sg + shift
//    oil: drainage if so ≤ somin; otherwise imbibition at so + shift
//
//  Only krg and krow (water-oil) have hysteresis; krw, krog and pc do not.
package hyst

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/satprops/mdl/eps"
	"github.com/cpmech/satprops/mdl/phases"
)

// Config holds the switches that control hysteresis
type Config struct {
	Hyster    bool   // SATOPTS has HYSTER
	Ehystr    bool   // EHYSTR is given
	Model     int    // EHYSTR item 2: relative permeability model
	Limiting  string // EHYSTR item 5: curves with hysteresis
	EndScale  bool   // ENDSCALE is given
	KrScaling bool   // relperm value scaling (KR* keys or ENKRVD) is given
}

// Active checks the switches and tells whether hysteresis is active
func (o *Config) Active() (bool, error) {
	switch {
	case !o.Hyster && !o.Ehystr:
		return false, nil
	case o.Hyster && !o.Ehystr:
		return false, chk.Err("switch HYSTER of keyword SATOPTS is active, but keyword EHYSTR is not given")
	case !o.Hyster && o.Ehystr:
		return false, chk.Err("keyword EHYSTR is given, but switch HYSTER of keyword SATOPTS is not set")
	}
	if o.Model != 0 {
		return false, chk.Err("keyword EHYSTR, item 2: flag '%d' found; only '0' is supported", o.Model)
	}
	if strings.ToUpper(o.Limiting) != "KR" {
		return false, chk.Err("keyword EHYSTR, item 5: flag '%s' found; only 'KR' is supported", o.Limiting)
	}
	if !o.EndScale {
		return false, chk.Err("hysteresis is only available through endpoint scaling; keyword ENDSCALE is required")
	}
	if o.KrScaling {
		return false, chk.Err("hysteresis and relperm value scaling cannot be combined")
	}
	return true, nil
}

// State holds the history of one cell
type State struct {
	SgMax   float64 // largest gas saturation reached; -1 before the first update
	SgShift float64 // shift of the gas imbibition branch
	SoMin   float64 // smallest oil saturation reached; 1 before the first update
	SoShift float64 // shift of the oil (water-oil) imbibition branch
}

// NewState returns a state without history
func NewState() State {
	return State{SgMax: -1, SoMin: 1}
}

// Tracker holds the imbibition transforms and the history of all cells
type Tracker struct {
	Pu     *phases.Usage    // active phases
	Drn    []eps.Transforms // drainage transforms
	Imb    []eps.Transforms // imbibition transforms
	States []State          // history
}

// NewTracker returns a new tracker
func NewTracker(pu *phases.Usage, drn, imb []eps.Transforms) (o *Tracker, err error) {
	if len(drn) != len(imb) {
		return nil, chk.Err("hysteresis: numbers of drainage and imbibition transforms differ: %d != %d", len(drn), len(imb))
	}
	o = &Tracker{Pu: pu, Drn: drn, Imb: imb, States: make([]State, len(drn))}
	o.Reset()
	return
}

// Reset clears the history of all cells
func (o *Tracker) Reset() {
	for i := range o.States {
		o.States[i] = NewState()
	}
}

// Update updates the history of cell
//  s -- saturations of the cell (by phase position)
func (o *Tracker) Update(cell int, s []float64) {
	st := &o.States[cell]
	drn, imb := &o.Drn[cell], &o.Imb[cell]
	if o.Pu.Used[phases.Gas] {
		sg := s[o.Pu.Pos[phases.Gas]]
		if sg > st.SgMax {
			st.SgMax = sg
			st.SgShift = imb.Gas.ScaleSatInv(drn.Gas.ScaleSat(sg)) - sg
		}
	}
	if o.Pu.Used[phases.Water] {
		so := s[o.Pu.Pos[phases.Oil]]
		if so < st.SoMin {
			st.SoMin = so
			st.SoShift = imb.WatOil.ScaleSatInv(drn.WatOil.ScaleSat(so)) - so
		}
	}
}

// Gas selects the branch of krg
//  t -- transform to be used
//  s -- saturation at which t is to be evaluated; ds/dsg = 1
func (o *Tracker) Gas(cell int, sg float64) (t *eps.Transform, s float64) {
	st := &o.States[cell]
	if sg >= st.SgMax {
		return &o.Drn[cell].Gas, sg
	}
	return &o.Imb[cell].Gas, sg + st.SgShift
}

// Oil selects the branch of krow
//  t -- transform to be used
//  s -- saturation at which t is to be evaluated; ds/dso = 1
func (o *Tracker) Oil(cell int, so float64) (t *eps.Transform, s float64) {
	st := &o.States[cell]
	if so <= st.SoMin {
		return &o.Drn[cell].WatOil, so
	}
	return &o.Imb[cell].WatOil, so + st.SoShift
}
