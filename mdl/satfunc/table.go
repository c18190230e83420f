// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package satfunc implements region tables of relative permeability and capillary pressure
//  Water-oil data follow the SWOF layout: sw, krw, krow, pcow
//  Gas-oil data follow the SGOF layout:   sg, krg, krog, pcog
//  Oil curves are stored as functions of the oil saturation:
//   krow(so) with so = 1 - sw - sgl   and   krog(so) with so = 1 - sg - swl
package satfunc

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/satprops/mdl/phases"
)

// Table holds the unscaled saturation functions of one saturation region
type Table struct {

	// phases
	Pu *phases.Usage // active phases

	// saturation bounds (indexed by phase position)
	Smin []float64 // minimum tabulated saturation
	Smax []float64 // maximum tabulated saturation

	// critical saturations
	Swcr  float64 // critical water saturation
	Sowcr float64 // critical oil saturation in water
	Sgcr  float64 // critical gas saturation
	Sogcr float64 // critical oil saturation in gas

	// endpoint relative permeabilities
	Krwr   float64 // krw at the displacing critical saturation 1-sowcr-sgl
	Krgr   float64 // krg at the displacing critical saturation 1-sogcr-swl
	Krorw  float64 // krow at the displacing critical saturation 1-swcr-sgl
	Krorg  float64 // krog at the displacing critical saturation 1-sgcr-swl
	Krwmax float64 // krw at maximum water saturation
	Krgmax float64 // krg at maximum gas saturation
	Kromax float64 // kro at maximum oil saturation

	// endpoint capillary pressures
	Pcwmax float64 // pcow at minimum water saturation
	Pcgmax float64 // pcog at maximum gas saturation

	// connate saturations of the complementary phases
	Swl float64 // minimum water saturation; 0 if water is inactive
	Sgl float64 // minimum gas saturation; 0 if gas is inactive

	// curves
	krw, krow, pcow *Curve // water-oil
	krg, krog, pcog *Curve // gas-oil
}

// NewTable returns a new region table
//  swof -- water-oil rows [sw, krw, krow, pcow]; required if water is active
//  sgof -- gas-oil rows [sg, krg, krog, pcog]; required if gas is active
func NewTable(pu *phases.Usage, swof, sgof [][]float64) (o *Table, err error) {

	// check phases
	if !pu.Used[phases.Oil] {
		return nil, chk.Err("table: oil phase must be active")
	}
	useW, useG := pu.Used[phases.Water], pu.Used[phases.Gas]
	if useW && len(swof) == 0 {
		return nil, chk.Err("table: SWOF data is required when water is active")
	}
	if useG && len(sgof) == 0 {
		return nil, chk.Err("table: SGOF data is required when gas is active")
	}

	// columns
	var sw, krw, krow, pcow, sg, krg, krog, pcog []float64
	if useW {
		if sw, krw, krow, pcow, err = columns("SWOF", swof); err != nil {
			return
		}
	}
	if useG {
		if sg, krg, krog, pcog, err = columns("SGOF", sgof); err != nil {
			return
		}
	}

	// new table
	o = &Table{Pu: pu, Smin: make([]float64, pu.Num), Smax: make([]float64, pu.Num)}
	if useW {
		o.Swl = sw[0]
	}
	if useG {
		o.Sgl = sg[0]
	}

	// water-oil
	var swu, sgu float64
	if useW {
		n := len(sw)
		swu = sw[n-1]
		if o.krw, err = NewCurve(sw, krw); err != nil {
			return nil, chk.Err("table: SWOF krw:\n%v", err)
		}
		if o.pcow, err = NewCurve(sw, pcow); err != nil {
			return nil, chk.Err("table: SWOF pcow:\n%v", err)
		}
		if o.krow, err = NewCurve(oilColumn(sw, krow, o.Sgl)); err != nil {
			return nil, chk.Err("table: SWOF krow:\n%v", err)
		}
		o.Swcr = lastZero(sw, krw)
		o.Sowcr = 1.0 - firstZero(sw, krow) - o.Sgl
		o.Krwr = o.krw.F(1.0 - o.Sowcr - o.Sgl)
		o.Krwmax = krw[n-1]
		o.Krorw = o.krow.F(1.0 - o.Swcr - o.Sgl)
		o.Kromax = o.krow.F(1.0 - o.Swl - o.Sgl)
		o.Pcwmax = pcow[0]
		o.Smin[pu.Pos[phases.Water]] = o.Swl
		o.Smax[pu.Pos[phases.Water]] = swu
	}

	// gas-oil
	if useG {
		n := len(sg)
		sgu = sg[n-1]
		if o.krg, err = NewCurve(sg, krg); err != nil {
			return nil, chk.Err("table: SGOF krg:\n%v", err)
		}
		if o.pcog, err = NewCurve(sg, pcog); err != nil {
			return nil, chk.Err("table: SGOF pcog:\n%v", err)
		}
		if o.krog, err = NewCurve(oilColumn(sg, krog, o.Swl)); err != nil {
			return nil, chk.Err("table: SGOF krog:\n%v", err)
		}
		o.Sgcr = lastZero(sg, krg)
		o.Sogcr = 1.0 - firstZero(sg, krog) - o.Swl
		o.Krgr = o.krg.F(1.0 - o.Sogcr - o.Swl)
		o.Krgmax = krg[n-1]
		o.Krorg = o.krog.F(1.0 - o.Sgcr - o.Swl)
		if !useW {
			o.Kromax = o.krog.F(1.0 - o.Sgl - o.Swl)
		}
		o.Pcgmax = pcog[n-1]
		o.Smin[pu.Pos[phases.Gas]] = o.Sgl
		o.Smax[pu.Pos[phases.Gas]] = sgu
	}

	// oil
	opos := pu.Pos[phases.Oil]
	o.Smin[opos] = math.Max(0, 1.0-swu-sgu)
	o.Smax[opos] = 1.0 - o.Swl - o.Sgl
	return
}

// Krw computes krw(sw) and dkrw/dsw
func (o *Table) Krw(sw float64) (kr, dkr float64) { return o.krw.Eval(sw) }

// Krow computes krow(so) and dkrow/dso
func (o *Table) Krow(so float64) (kr, dkr float64) { return o.krow.Eval(so) }

// Pcow computes pcow(sw) and dpcow/dsw
func (o *Table) Pcow(sw float64) (pc, dpc float64) { return o.pcow.Eval(sw) }

// Krg computes krg(sg) and dkrg/dsg
func (o *Table) Krg(sg float64) (kr, dkr float64) { return o.krg.Eval(sg) }

// Krog computes krog(so) and dkrog/dso
func (o *Table) Krog(so float64) (kr, dkr float64) { return o.krog.Eval(so) }

// Pcog computes pcog(sg) and dpcog/dsg
func (o *Table) Pcog(sg float64) (pc, dpc float64) { return o.pcog.Eval(sg) }

// columns splits table rows into four columns
func columns(key string, rows [][]float64) (s, kr, kro, pc []float64, err error) {
	n := len(rows)
	if n < 2 {
		err = chk.Err("table: %s must have at least two rows; %d given", key, n)
		return
	}
	s, kr, kro, pc = make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i, r := range rows {
		if len(r) != 4 {
			err = chk.Err("table: %s row %d must have 4 columns; %d given", key, i, len(r))
			return
		}
		s[i], kr[i], kro[i], pc[i] = r[0], r[1], r[2], r[3]
		if i > 0 && s[i] <= s[i-1] {
			err = chk.Err("table: %s saturation column must be strictly increasing; row %d has %g after %g", key, i, s[i], s[i-1])
			return
		}
	}
	return
}

// oilColumn converts a column tabulated against s into one tabulated against so = 1 - s - s0
func oilColumn(s, kro []float64, s0 float64) (so, y []float64) {
	n := len(s)
	so, y = make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		so[i] = 1.0 - s[n-1-i] - s0
		y[i] = kro[n-1-i]
	}
	return
}

// lastZero returns the largest s before kr becomes positive
func lastZero(s, kr []float64) (scr float64) {
	scr = s[0]
	for i := range s {
		if kr[i] > 0 {
			break
		}
		scr = s[i]
	}
	return
}

// firstZero returns the smallest s with kr equal to zero (kr decreasing in s)
func firstZero(s, kr []float64) float64 {
	for i := range s {
		if kr[i] <= 0 {
			return s[i]
		}
	}
	return s[len(s)-1]
}
