// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package props implements saturation dependent properties of cells:
// relative permeabilities and capillary pressures with endpoint scaling and hysteresis
//  Arrays of saturations and results are laid out as [phase + P*i] and
//  derivatives as [phase_i + P*phase_j + P*P*i], i.e. ∂kr_i/∂s_j in column-major order
package props

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/satprops/inp"
	"github.com/cpmech/satprops/mdl/eps"
	"github.com/cpmech/satprops/mdl/hyst"
	"github.com/cpmech/satprops/mdl/phases"
	"github.com/cpmech/satprops/mdl/satfunc"
)

// PcLowThreshold is the smallest capillary pressure considered by SwatInitScaling
const PcLowThreshold = 1e-8

// SatProps holds saturation functions of all cells
type SatProps struct {

	// data
	Pu     *phases.Usage    // active phases
	Tables []*satfunc.Table // region tables
	Satnum []int            // table index of each cell
	Imbnum []int            // imbibition table index of each cell; recorded only

	// switches
	DoEPS  bool // endpoint scaling is active
	Do3pt  bool // three-point scaling
	DoHyst bool // hysteresis is active

	// transforms
	Eps  []eps.Transforms // drainage transforms; all DoNotScale if endpoint scaling is inactive
	Hyst *hyst.Tracker    // hysteresis; nil if inactive

	// settings
	Workers int  // number of workers for batch evaluations
	Verbose bool // show messages

	// auxiliary
	ncells int // number of cells
}

// New returns a new SatProps built from deck
func New(deck *inp.Deck, verbose bool) (o *SatProps, err error) {

	// check input
	if err = deck.Validate(); err != nil {
		return
	}
	o = &SatProps{Workers: deck.Workers, Verbose: verbose, ncells: deck.Ncells}

	// phases
	o.Pu, err = phases.New(deck.Phases)
	if err != nil {
		return nil, err
	}
	if !o.Pu.Used[phases.Oil] {
		return nil, chk.Err("oil phase must be active; phases = %v", deck.Phases)
	}
	if o.Pu.Num < 2 {
		return nil, chk.Err("at least two phases must be active; phases = %v", deck.Phases)
	}

	// SATOPTS
	for _, s := range deck.Satopts {
		if !strings.EqualFold(s, "HYSTER") {
			return nil, chk.Err("keyword SATOPTS: switch %q is not supported", s)
		}
	}

	// tables
	if err = o.initTables(deck); err != nil {
		return nil, err
	}

	// hysteresis switches
	cfg := hyst.Config{
		Hyster:    deck.HasSatopt("HYSTER"),
		Ehystr:    deck.Ehystr != nil,
		EndScale:  deck.Endscale != nil,
		KrScaling: deck.HasRelpermScaling(),
	}
	if deck.Ehystr != nil {
		cfg.Model, cfg.Limiting = deck.Ehystr.Relperm, deck.Ehystr.Limiting
	}
	o.DoHyst, err = cfg.Active()
	if err != nil {
		return nil, err
	}

	// endpoint scaling
	if err = o.initEPS(deck); err != nil {
		return nil, err
	}

	// message
	if o.Verbose {
		io.Pfgreen("satprops: %d cells, %d tables, phases = %v\n", o.ncells, len(o.Tables), o.Pu.Names())
		io.Pfgreen("satprops: endpoint scaling = %v, 3-point = %v, hysteresis = %v\n", o.DoEPS, o.Do3pt, o.DoHyst)
	}
	return
}

// NumCells returns the number of cells
func (o *SatProps) NumCells() int { return o.ncells }

// NumPhases returns the number of active phases
func (o *SatProps) NumPhases() int { return o.Pu.Num }

// initTables builds the region tables and the map of cells to tables
func (o *SatProps) initTables(deck *inp.Deck) (err error) {

	// regions
	o.Satnum = make([]int, o.ncells)
	expected := 1
	if deck.Satnum != nil {
		copy(o.Satnum, inp.RegionIndices(deck.Satnum))
		for _, r := range deck.Satnum {
			if r > expected {
				expected = r
			}
		}
	}

	// number of tables
	useW, useG := o.Pu.Used[phases.Water], o.Pu.Used[phases.Gas]
	ntables := -1
	if useW {
		ntables = deck.Tables.NumSwof()
		if ntables < expected {
			return chk.Err("found %d SWOF tables; SATNUM specifies at least %d", ntables, expected)
		}
	}
	if useG {
		nsgof := deck.Tables.NumSgof()
		if nsgof < expected {
			return chk.Err("found %d SGOF tables; SATNUM specifies at least %d", nsgof, expected)
		}
		if ntables < 0 {
			ntables = nsgof
		} else if ntables != nsgof {
			return chk.Err("inconsistent number of tables in SWOF (%d) and SGOF (%d)", ntables, nsgof)
		}
	}
	if ntables != len(deck.Tables) {
		return chk.Err("found %d tables, but only %d have data for the active phases", len(deck.Tables), ntables)
	}

	// tables
	o.Tables = make([]*satfunc.Table, ntables)
	for i, t := range deck.Tables {
		swof, sgof, e := t.Rows(useW, useG)
		if e != nil {
			return chk.Err("table %d:\n%v", i+1, e)
		}
		o.Tables[i], e = satfunc.NewTable(o.Pu, swof, sgof)
		if e != nil {
			return chk.Err("table %d:\n%v", i+1, e)
		}
	}
	return
}

// initEPS builds the drainage and imbibition transforms
func (o *SatProps) initEPS(deck *inp.Deck) (err error) {

	// switches
	if deck.Endscale != nil {
		es := deck.Endscale
		if es.Direction != "" && !strings.EqualFold(es.Direction, "NODIR") {
			return chk.Err("keyword ENDSCALE: direction %q found; only 'NODIR' is supported", es.Direction)
		}
		if es.Reversible != "" && !strings.EqualFold(es.Reversible, "REVERS") {
			return chk.Err("keyword ENDSCALE: %q found; only 'REVERS' is supported", es.Reversible)
		}
		switch strings.ToUpper(deck.Scalecrs) {
		case "YES", "Y":
			o.Do3pt = true
		case "", "NO", "N":
		default:
			return chk.Err("keyword SCALECRS: %q found; options are 'YES' and 'NO'", deck.Scalecrs)
		}
		ntendp := es.Ntendp
		if ntendp < 1 {
			ntendp = 1
		}
		for _, e := range deck.Endnum {
			if e > ntendp {
				return chk.Err("ENDNUM: found region %d; maximum allowed is %d (item 3 of keyword ENDSCALE)", e, ntendp)
			}
		}
		o.DoEPS = true
	}

	// drainage
	b := &eps.Builder{Pu: o.Pu, Tables: o.Tables, Region: o.Satnum, Do3pt: o.Do3pt, Verbose: o.Verbose && o.DoEPS}
	var set eps.Set
	var src *eps.Source
	if o.DoEPS {
		src = &eps.Source{
			Ncells:   o.ncells,
			Pu:       o.Pu,
			Explicit: deck.ExplicitScaling(),
			Endnum:   inp.RegionIndices(deck.Endnum),
			Depths:   deck.Depths,
			Verbose:  o.Verbose,
		}
		if src.Enptvd, err = inp.DepthTables("ENPTVD", deck.Enptvd, eps.NumEnptvdCols); err != nil {
			return
		}
		if src.Enkrvd, err = inp.DepthTables("ENKRVD", deck.Enkrvd, eps.NumEnkrvdCols); err != nil {
			return
		}
		if set, err = src.ResolveAll(false); err != nil {
			return
		}
	}
	if o.Eps, err = b.Build(&set); err != nil {
		return
	}
	if !o.DoHyst {
		return
	}

	// imbibition regions
	if deck.Imbnum != nil {
		o.Imbnum = inp.RegionIndices(deck.Imbnum)
		for _, r := range deck.Imbnum {
			if r > len(o.Tables) {
				return chk.Err("IMBNUM: found region %d; maximum allowed is %d (number of tables)", r, len(o.Tables))
			}
		}
	}

	// imbibition
	imbSet, err := src.ResolveAll(true)
	if err != nil {
		return
	}
	imb, err := b.Build(&imbSet)
	if err != nil {
		return
	}
	o.Hyst, err = hyst.NewTracker(o.Pu, o.Eps, imb)
	return
}

// checkSizes checks the lengths of batch arrays
func (o *SatProps) checkSizes(key string, cells []int, s, res, deriv []float64) error {
	np, n := o.Pu.Num, len(cells)
	if s != nil && len(s) != np*n {
		return chk.Err("%s: saturations must have %d values; %d given", key, np*n, len(s))
	}
	if len(res) != np*n {
		return chk.Err("%s: results must have %d values; %d given", key, np*n, len(res))
	}
	if deriv != nil && len(deriv) != np*np*n {
		return chk.Err("%s: derivatives must have %d values; %d given", key, np*np*n, len(deriv))
	}
	return nil
}

// checkCell checks a cell index
func (o *SatProps) checkCell(key string, cell int) error {
	if cell < 0 || cell >= o.ncells {
		return chk.Err("%s: cell index %d is out of range [0, %d)", key, cell, o.ncells)
	}
	return nil
}
