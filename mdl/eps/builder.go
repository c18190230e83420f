// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/satprops/mdl/phases"
	"github.com/cpmech/satprops/mdl/satfunc"
)

// tolerances
const (
	SrTol   = 1e-6 // minimum distance between sr and smax for krsr scaling
	KrTol   = 1e-6 // minimum difference between krmax and krsr of tables for value interpolation
	PcTol   = 1e-8 // minimum table pcmax for pc scaling
	zeroTol = 1e-12
)

// Builder computes the per-cell transforms of one branch (drainage or imbibition)
type Builder struct {
	Pu      *phases.Usage    // active phases
	Tables  []*satfunc.Table // region tables
	Region  []int            // region (table index) of each cell
	Do3pt   bool             // three-point scaling
	Verbose bool             // show messages
}

// params holds the table values and scaling arrays of one family
//  s0Tab < 0 indicates a two-phase system
type params struct {
	oil bool // krow or krog

	slTab, scrTab, suTab, sxcrTab, s0Tab, krsrTab, krmaxTab, pcTab float64

	sl, scr, su, sxcr, s0, krsr, krmax, pc *Array
}

// Build computes the transforms of all cells
func (o *Builder) Build(set *Set) (res []Transforms, err error) {
	ncells := len(o.Region)
	for k, a := range set {
		if a.Present() && a.Len() != ncells {
			return nil, chk.Err("scaling array %q has %d values; %d cells are given", Key(k), a.Len(), ncells)
		}
	}
	useW, useG := o.Pu.Used[phases.Water], o.Pu.Used[phases.Gas]
	res = make([]Transforms, ncells)
	for cell, r := range o.Region {
		if r < 0 || r >= len(o.Tables) {
			return nil, chk.Err("region %d of cell %d is out of range; %d tables are given", r+1, cell, len(o.Tables))
		}
		t := o.Tables[r]
		if useW {
			s0 := -1.0
			if useG {
				s0 = t.Smin[o.Pu.Pos[phases.Gas]]
			}
			swl := t.Smin[o.Pu.Pos[phases.Water]]
			swu := t.Smax[o.Pu.Pos[phases.Water]]
			o.transform(&res[cell].Wat, cell, &params{false,
				swl, t.Swcr, swu, t.Sowcr, s0, t.Krwr, t.Krwmax, t.Pcwmax,
				set[Swl], set[Swcr], set[Swu], set[Sowcr], set[Sgl], set[Krwr], set[Krw], set[Pcw]})
			o.transform(&res[cell].WatOil, cell, &params{true,
				0, t.Sowcr, swl, t.Swcr, s0, t.Krorw, t.Kromax, 0,
				set[Swl], set[Sowcr], set[Swl], set[Swcr], set[Sgl], set[Krorw], set[Kro], nil})
		}
		if useG {
			s0 := -1.0
			if useW {
				s0 = t.Smin[o.Pu.Pos[phases.Water]]
			}
			sgl := t.Smin[o.Pu.Pos[phases.Gas]]
			sgu := t.Smax[o.Pu.Pos[phases.Gas]]
			o.transform(&res[cell].Gas, cell, &params{false,
				sgl, t.Sgcr, sgu, t.Sogcr, s0, t.Krgr, t.Krgmax, t.Pcgmax,
				set[Sgl], set[Sgcr], set[Sgu], set[Sogcr], set[Swl], set[Krgr], set[Krg], set[Pcg]})
			o.transform(&res[cell].GasOil, cell, &params{true,
				0, t.Sogcr, sgl, t.Sgcr, s0, t.Krorg, t.Kromax, 0,
				set[Sgl], set[Sogcr], set[Sgl], set[Sgcr], set[Swl], set[Krorg], set[Kro], nil})
		}
	}
	if o.Verbose {
		io.Pf("--- Endpoint scaling: %d cells, %d regions, 3-point = %v\n", ncells, len(o.Tables), o.Do3pt)
	}
	return
}

// transform computes the transform of one family in one cell
func (o *Builder) transform(d *Transform, cell int, p *params) {

	// table anchors
	twoPhase := p.s0Tab < 0
	sr, smax := 1.0-p.sxcrTab, p.suTab
	if !twoPhase {
		sr -= p.s0Tab
	}
	if p.oil {
		smax = 1.0 - p.suTab
		if !twoPhase {
			smax -= p.s0Tab
		}
	}
	d.Tab = Anchors{Smin: p.slTab, Scr: p.scrTab, Sr: sr, Smax: smax, Krsr: p.krsrTab, Krmax: p.krmaxTab, Pcmax: p.pcTab}

	// saturations
	if !p.scr.Present() && !p.su.Present() && (!p.sxcr.Present() || !o.Do3pt) && !p.s0.Present() {
		d.DoNotScale = true
		d.Smin, d.Smax, d.Scr, d.Sr = p.slTab, smax, p.scrTab, sr
		d.Slope1, d.Slope2 = 1, 1
	} else {
		d.Do3pt = o.Do3pt
		s0 := 0.0
		if !twoPhase {
			s0 = p.s0.Or(cell, p.s0Tab)
		}
		if o.Do3pt {
			d.Sr = 1.0 - p.sxcr.Or(cell, p.sxcrTab) - s0
		}
		d.Scr = p.scr.Or(cell, p.scrTab)
		if p.oil {
			d.Smin = p.slTab
			d.Smax = 1.0 - p.su.Or(cell, p.suTab) - s0
		} else {
			d.Smin = p.sl.Or(cell, p.slTab)
			d.Smax = p.su.Or(cell, p.suTab)
		}
		if o.Do3pt {
			d.Slope1 = (sr - p.scrTab) / (d.Sr - d.Scr)
			d.Slope2 = (smax - sr) / (d.Smax - d.Sr)
		} else {
			d.Slope1 = (smax - p.scrTab) / (d.Smax - d.Scr)
			d.Slope2 = d.Slope1
			d.Sr = d.Scr + (sr-p.scrTab)*(d.Smax-d.Scr)/(smax-p.scrTab)
		}
	}

	// relative permeability values
	d.DoKrMax = p.krmax.Present()
	d.DoKrCrit = p.krsr.Present()
	d.Krsr = p.krsr.Or(cell, p.krsrTab)
	d.Krmax = p.krmax.Or(cell, p.krmaxTab)
	d.KrSlopeCrit = ratio(d.Krsr, p.krsrTab)
	d.KrSlopeMax = ratio(d.Krmax, p.krmaxTab)
	if d.DoKrCrit {
		switch {
		case d.Sr > d.Smax-SrTol:
			d.DoKrCrit = false
		case math.Abs(p.krmaxTab-p.krsrTab) > KrTol:
			d.KrSlopeMax = (d.Krmax - d.Krsr) / (p.krmaxTab - p.krsrTab)
		default:
			d.DoSatInterp = true
			d.KrSlopeMax = (d.Krmax - d.Krsr) / (d.Smax - d.Sr)
		}
	}

	// capillary pressure
	d.PcFactor = 1
	if pc, ok := p.pc.Get(cell); ok && math.Abs(p.pcTab) >= PcTol && pc*p.pcTab >= 0 {
		d.PcFactor = pc / p.pcTab
	}
}

// ratio returns a/b or 1 if b vanishes
func ratio(a, b float64) float64 {
	if math.Abs(b) < zeroTol {
		return 1
	}
	return a / b
}
