// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package props

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/satprops/mdl/eps"
	"github.com/cpmech/satprops/mdl/phases"
)

// minimum denominator of the segregated oil model
const segTol = 1e-12

// Relperm computes relative permeabilities of a batch of cells
//  s     -- saturations [phase + P*i]
//  cells -- cell indices
//  kr    -- relative permeabilities [phase + P*i]
//  dkrds -- ∂kr_i/∂s_j [i + P*j + P*P*k]; may be nil
func (o *SatProps) Relperm(s []float64, cells []int, kr, dkrds []float64) (err error) {
	if err = o.checkSizes("Relperm", cells, s, kr, dkrds); err != nil {
		return
	}
	np := o.Pu.Num
	return o.run(len(cells), func(i int) error {
		if e := o.checkCell("Relperm", cells[i]); e != nil {
			return e
		}
		var d []float64
		if dkrds != nil {
			d = dkrds[np*np*i : np*np*(i+1)]
		}
		o.relperm(cells[i], s[np*i:np*(i+1)], kr[np*i:np*(i+1)], d)
		return nil
	})
}

// CapPress computes capillary pressures of a batch of cells
//  pc[oil] = 0, pc[water] = pcow(sw) and pc[gas] = pcog(sg)
//  dpcds may be nil
func (o *SatProps) CapPress(s []float64, cells []int, pc, dpcds []float64) (err error) {
	if err = o.checkSizes("CapPress", cells, s, pc, dpcds); err != nil {
		return
	}
	np := o.Pu.Num
	return o.run(len(cells), func(i int) error {
		if e := o.checkCell("CapPress", cells[i]); e != nil {
			return e
		}
		var d []float64
		if dpcds != nil {
			d = dpcds[np*np*i : np*np*(i+1)]
		}
		o.capPress(cells[i], s[np*i:np*(i+1)], pc[np*i:np*(i+1)], d)
		return nil
	})
}

// SatRange computes the minimum and maximum saturations of a batch of cells
//  Under endpoint scaling, the range of oil is the complement of the ranges of water and gas
func (o *SatProps) SatRange(cells []int, smin, smax []float64) (err error) {
	if err = o.checkSizes("SatRange", cells, nil, smin, nil); err != nil {
		return
	}
	if err = o.checkSizes("SatRange", cells, nil, smax, nil); err != nil {
		return
	}
	np := o.Pu.Num
	wpos, opos, gpos := o.Pu.Pos[phases.Water], o.Pu.Pos[phases.Oil], o.Pu.Pos[phases.Gas]
	useW, useG := o.Pu.Used[phases.Water], o.Pu.Used[phases.Gas]
	for i, cell := range cells {
		if err = o.checkCell("SatRange", cell); err != nil {
			return
		}
		lo, hi := smin[np*i:np*(i+1)], smax[np*i:np*(i+1)]
		tab := o.Tables[o.Satnum[cell]]
		if !o.DoEPS {
			copy(lo, tab.Smin)
			copy(hi, tab.Smax)
			continue
		}
		tr := &o.Eps[cell]
		lo[opos], hi[opos] = 1, 1
		if useW {
			lo[wpos], hi[wpos] = tr.Wat.Smin, tr.Wat.Smax
			lo[opos] -= hi[wpos]
			hi[opos] -= lo[wpos]
		}
		if useG {
			lo[gpos], hi[gpos] = tr.Gas.Smin, tr.Gas.Smax
			lo[opos] -= hi[gpos]
			hi[opos] -= lo[gpos]
		}
		if useW && useG {
			lo[opos] = math.Max(0, lo[opos])
		}
	}
	return
}

// UpdateSatHyst updates the hysteresis history of a batch of cells
//  Nothing is done if hysteresis is inactive. With more than one worker, cells must be distinct
func (o *SatProps) UpdateSatHyst(s []float64, cells []int) (err error) {
	if !o.DoHyst {
		return
	}
	np := o.Pu.Num
	if len(s) != np*len(cells) {
		return chk.Err("UpdateSatHyst: saturations must have %d values; %d given", np*len(cells), len(s))
	}
	return o.run(len(cells), func(i int) error {
		if e := o.checkCell("UpdateSatHyst", cells[i]); e != nil {
			return e
		}
		o.Hyst.Update(cells[i], s[np*i:np*(i+1)])
		return nil
	})
}

// SwatInitScaling calibrates the capillary pressure factor of cell to match pcow at swat
//  Returns the (possibly modified) water saturation
func (o *SatProps) SwatInitScaling(cell int, pcow, swat float64) (float64, error) {
	if !o.Pu.Used[phases.Water] {
		return swat, chk.Err("SwatInitScaling: water phase is inactive")
	}
	if err := o.checkCell("SwatInitScaling", cell); err != nil {
		return swat, err
	}
	t := &o.Eps[cell].Wat
	switch {
	case swat <= t.Smin:
		return t.Smin, nil
	case pcow < PcLowThreshold:
		return t.Smax, nil
	}
	pc, _ := scaledPc(t, swat, o.Tables[o.Satnum[cell]].Pcow)
	if pc > PcLowThreshold {
		t.PcFactor *= pcow / pc
	}
	return swat, nil
}

// relperm computes the relative permeabilities of one cell
func (o *SatProps) relperm(cell int, s, kr, dkr []float64) {

	// auxiliary
	np := o.Pu.Num
	wpos, opos, gpos := o.Pu.Pos[phases.Water], o.Pu.Pos[phases.Oil], o.Pu.Pos[phases.Gas]
	useW, useG := o.Pu.Used[phases.Water], o.Pu.Used[phases.Gas]
	tab := o.Tables[o.Satnum[cell]]
	tr := &o.Eps[cell]
	for i := range dkr {
		dkr[i] = 0
	}
	so := s[opos]

	// water and oil in water
	var krow, dkrow float64
	if useW {
		var dkrw float64
		kr[wpos], dkrw = scaledKr(&tr.Wat, s[wpos], tab.Krw)
		if dkr != nil {
			dkr[wpos+np*wpos] = dkrw
		}
		t, sx := &tr.WatOil, so
		if o.DoHyst {
			t, sx = o.Hyst.Oil(cell, so)
		}
		krow, dkrow = scaledKr(t, sx, tab.Krow)
	}

	// gas and oil in gas
	var krog, dkrog float64
	if useG {
		t, sx := &tr.Gas, s[gpos]
		if o.DoHyst {
			t, sx = o.Hyst.Gas(cell, s[gpos])
		}
		var dkrg float64
		kr[gpos], dkrg = scaledKr(t, sx, tab.Krg)
		if dkr != nil {
			dkr[gpos+np*gpos] = dkrg
		}
		krog, dkrog = scaledKr(&tr.GasOil, so, tab.Krog)
	}

	// oil
	switch {
	case useW && useG:
		o.segregated(tr, s, kr, dkr, krow, dkrow, krog, dkrog)
	case useW:
		kr[opos] = krow
		if dkr != nil {
			dkr[opos+np*opos] = dkrow
		}
	default:
		kr[opos] = krog
		if dkr != nil {
			dkr[opos+np*opos] = dkrog
		}
	}
}

// segregated computes the three-phase oil relative permeability with the segregated model
//  kro = (sg・krog(so) + (sw - swco)・krow(so)) / (sg + sw - swco)
func (o *SatProps) segregated(tr *eps.Transforms, s, kr, dkr []float64, krow, dkrow, krog, dkrog float64) {
	np := o.Pu.Num
	wpos, opos, gpos := o.Pu.Pos[phases.Water], o.Pu.Pos[phases.Oil], o.Pu.Pos[phases.Gas]
	sg := s[gpos]
	w := s[wpos] - tr.Wat.Smin
	dw := 1.0
	if w < 0 {
		w, dw = 0, 0
	}
	den := sg + w
	if math.Abs(den) < segTol {
		kr[opos] = krow
		if dkr != nil {
			dkr[opos+np*opos] = dkrow
		}
		return
	}
	kro := (sg*krog + w*krow) / den
	kr[opos] = kro
	if dkr != nil {
		dkr[opos+np*opos] = (sg*dkrog + w*dkrow) / den
		dkr[opos+np*gpos] = (krog - kro) / den
		dkr[opos+np*wpos] = dw * (krow - kro) / den
	}
}

// capPress computes the capillary pressures of one cell
func (o *SatProps) capPress(cell int, s, pc, dpc []float64) {
	np := o.Pu.Num
	wpos, opos, gpos := o.Pu.Pos[phases.Water], o.Pu.Pos[phases.Oil], o.Pu.Pos[phases.Gas]
	tab := o.Tables[o.Satnum[cell]]
	tr := &o.Eps[cell]
	for i := range dpc {
		dpc[i] = 0
	}
	pc[opos] = 0
	if o.Pu.Used[phases.Water] {
		var d float64
		pc[wpos], d = scaledPc(&tr.Wat, s[wpos], tab.Pcow)
		if dpc != nil {
			dpc[wpos+np*wpos] = d
		}
	}
	if o.Pu.Used[phases.Gas] {
		var d float64
		pc[gpos], d = scaledPc(&tr.Gas, s[gpos], tab.Pcog)
		if dpc != nil {
			dpc[gpos+np*gpos] = d
		}
	}
}

// scaledKr evaluates a relative permeability curve through transform t
func scaledKr(t *eps.Transform, s float64, curve func(float64) (float64, float64)) (kr, dkr float64) {
	kr, dkr = curve(t.ScaleSat(s))
	return t.ScaleKr(s, kr), t.ScaleKrDeriv(s, dkr*t.ScaleSatDeriv(s))
}

// scaledPc evaluates a capillary pressure curve through transform t
func scaledPc(t *eps.Transform, s float64, curve func(float64) (float64, float64)) (pc, dpc float64) {
	pc, dpc = curve(t.ScaleSatPc(s))
	return t.ScalePc(pc), t.ScalePc(dpc * t.ScaleSatDerivPc(s))
}
