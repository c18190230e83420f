// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/satprops/mdl/phases"
	"github.com/cpmech/satprops/mdl/satfunc"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var swof01 = [][]float64{
	{0.2, 0.0, 1.0, 4.0},
	{0.3, 0.0, 0.6, 2.0},
	{0.5, 0.2, 0.2, 1.0},
	{0.7, 0.5, 0.0, 0.5},
	{0.8, 0.7, 0.0, 0.0},
}

var sgof01 = [][]float64{
	{0.0, 0.0, 1.0, 0.0},
	{0.1, 0.0, 0.7, 0.5},
	{0.4, 0.3, 0.1, 1.0},
	{0.6, 0.6, 0.0, 1.5},
	{0.8, 0.9, 0.0, 2.0},
}

// newTable builds a table for the given phases
func newTable(tst *testing.T, names ...string) (*phases.Usage, *satfunc.Table) {
	pu, err := phases.New(names)
	if err != nil {
		tst.Fatalf("phases.New failed: %v\n", err)
	}
	tab, err := satfunc.NewTable(pu, swof01, sgof01)
	if err != nil {
		tst.Fatalf("NewTable failed: %v\n", err)
	}
	return pu, tab
}

// constArray returns an array with the same value in all cells
func constArray(ncells int, v float64) *Array {
	a := NewArray(ncells)
	for i := 0; i < ncells; i++ {
		a.Set(i, v)
	}
	return a
}

// build computes the transforms of ncells cells in region 0
func build(tst *testing.T, pu *phases.Usage, tab *satfunc.Table, set *Set, ncells int, do3pt bool) []Transforms {
	b := &Builder{Pu: pu, Tables: []*satfunc.Table{tab}, Region: make([]int, ncells), Do3pt: do3pt}
	res, err := b.Build(set)
	if err != nil {
		tst.Fatalf("Build failed: %v\n", err)
	}
	return res
}

func Test_array01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("array01")

	var a *Array
	if a.Present() {
		tst.Errorf("nil array must not be present\n")
	}
	chk.Float64(tst, "nil.Or", 1e-17, a.Or(3, 0.25), 0.25)

	a = NewArray(3)
	a.Set(1, 0)
	chk.Int(tst, "NumSet", a.NumSet(), 1)
	chk.Float64(tst, "unset.Or", 1e-17, a.Or(0, 0.5), 0.5)
	chk.Float64(tst, "zero.Or", 1e-17, a.Or(1, 0.5), 0)
	a.Unset(1)
	if _, ok := a.Get(1); ok {
		tst.Errorf("cell 1 should be unset\n")
	}
}

func Test_keys01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("keys01")

	chk.String(tst, Swcr.Name(false), "SWCR")
	chk.String(tst, Krorg.Name(true), "IKRORG")
	k, imb, ok := ParseKey("isowcr")
	if !ok || !imb || k != Sowcr {
		tst.Errorf("ParseKey(isowcr) failed: %v %v %v\n", k, imb, ok)
	}
	k, imb, ok = ParseKey("PCG")
	if !ok || imb || k != Pcg {
		tst.Errorf("ParseKey(PCG) failed: %v %v %v\n", k, imb, ok)
	}
	if _, _, ok = ParseKey("SOMETHING"); ok {
		tst.Errorf("unknown keyword should not be parsed\n")
	}
	chk.Int(tst, "col(SOGCR)", Sogcr.Column(), NumEnptvdCols)
	chk.Int(tst, "col(KRORG)", Krorg.Column(), NumEnkrvdCols)
}

func Test_transform01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform01. no scaling")

	pu, tab := newTable(tst, "water", "oil")
	var set Set
	res := build(tst, pu, tab, &set, 2, false)
	for _, f := range []Family{Wat, WatOil} {
		d := res[1].Get(f)
		if !d.DoNotScale {
			tst.Errorf("%v: DoNotScale should be true\n", f)
			return
		}
		for _, s := range utl.LinSpace(0, 1, 11) {
			chk.Float64(tst, io.Sf("%v: s @ %g", f, s), 1e-17, d.ScaleSat(s), s)
			chk.Float64(tst, io.Sf("%v: kr @ %g", f, s), 1e-17, d.ScaleKr(s, 0.3), 0.3)
		}
		chk.Float64(tst, "PcFactor", 1e-17, d.PcFactor, 1)
	}
	chk.Float64(tst, "wat: smin", 1e-17, res[0].Wat.Smin, 0.2)
	chk.Float64(tst, "wat: smax", 1e-17, res[0].Wat.Smax, 0.8)
	chk.Float64(tst, "wat: scr", 1e-17, res[0].Wat.Scr, 0.3)
	chk.Float64(tst, "watoil: smax", 1e-15, res[0].WatOil.Smax, 0.8)
}

func Test_transform02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform02. two-point equals three-point")

	pu, tab := newTable(tst, "water", "oil")
	ncells := 1

	// two-point
	var set Set
	set[Swl] = constArray(ncells, 0.1)
	set[Swu] = constArray(ncells, 0.9)
	d2 := build(tst, pu, tab, &set, ncells, false)[0].Wat
	io.Pforan("2pt: %+v\n", d2)
	chk.Float64(tst, "slope1", 1e-15, d2.Slope1, 0.5/0.6)
	chk.Float64(tst, "slope1 == slope2", 1e-17, d2.Slope1, d2.Slope2)
	chk.Float64(tst, "sr", 1e-15, d2.Sr, 0.78)

	// three-point with the displacing saturation at the two-point anchor
	set[Sowcr] = constArray(ncells, 1.0-d2.Sr)
	d3 := build(tst, pu, tab, &set, ncells, true)[0].Wat
	io.Pforan("3pt: %+v\n", d3)
	chk.Float64(tst, "3pt: slope1", 1e-14, d3.Slope1, d2.Slope1)
	chk.Float64(tst, "3pt: slope2", 1e-14, d3.Slope2, d2.Slope2)

	opt := cmp.Options{cmpopts.EquateApprox(0, 1e-14), cmpopts.IgnoreFields(Transform{}, "Do3pt")}
	if diff := cmp.Diff(d2, d3, opt); diff != "" {
		tst.Errorf("two-point and three-point transforms differ (-2pt +3pt):\n%s", diff)
	}
}

func Test_transform03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform03. round trip and monotonicity")

	pu, tab := newTable(tst, "water", "oil", "gas")
	ncells := 1
	var set Set
	set[Swl] = constArray(ncells, 0.15)
	set[Swcr] = constArray(ncells, 0.25)
	set[Swu] = constArray(ncells, 0.85)
	set[Sowcr] = constArray(ncells, 0.2)
	set[Sgcr] = constArray(ncells, 0.08)
	set[Sgu] = constArray(ncells, 0.75)
	for _, do3pt := range []bool{false, true} {
		res := build(tst, pu, tab, &set, ncells, do3pt)
		for f := Family(0); f < NumFamilies; f++ {
			d := res[0].Get(f)
			if d.DoNotScale {
				tst.Errorf("%v: should be scaled\n", f)
				return
			}

			// round trip
			chk.Float64(tst, io.Sf("%v: scr → tab.scr", f), 1e-15, d.ScaleSat(d.Scr), d.Tab.Scr)
			chk.Float64(tst, io.Sf("%v: tab.scr → scr", f), 1e-15, d.ScaleSatInv(d.Tab.Scr), d.Scr)
			for _, ss := range utl.LinSpace(d.Tab.Scr, d.Tab.Smax, 7) {
				chk.Float64(tst, io.Sf("%v: round trip @ %g", f, ss), 1e-14, d.ScaleSat(d.ScaleSatInv(ss)), ss)
			}

			// monotonicity
			prev := math.Inf(-1)
			for _, s := range utl.LinSpace(0, 1, 101) {
				ss := d.ScaleSat(s)
				if ss < prev {
					tst.Errorf("%v: ScaleSat must be non-decreasing; %g < %g @ s = %g\n", f, ss, prev, s)
					return
				}
				if d.ScaleSatDeriv(s) < 0 {
					tst.Errorf("%v: negative slope @ s = %g\n", f, s)
					return
				}
				prev = ss
			}

			// derivative away from kinks
			for _, s := range []float64{0.27, 0.46, 0.61} {
				chk.DerivScaSca(tst, io.Sf("%v: dss/ds @ %g", f, s), 1e-9, d.ScaleSatDeriv(s), s, 1e-6, chk.Verbose, func(x float64) float64 {
					return d.ScaleSat(x)
				})
			}
		}
	}
}

func Test_transform04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform04. saturation endpoints")

	pu, tab := newTable(tst, "water", "oil")
	ncells := 1
	var set Set
	set[Swl] = constArray(ncells, 0.1)
	set[Swu] = constArray(ncells, 0.9)
	d := build(tst, pu, tab, &set, ncells, false)[0].Wat

	// pc curve maps [0.1, 0.9] onto [0.2, 0.8]
	chk.Float64(tst, "pc: 0.1 → 0.2", 1e-15, d.ScaleSatPc(0.1), 0.2)
	chk.Float64(tst, "pc: 0.9 → 0.8", 1e-15, d.ScaleSatPc(0.9), 0.8)
	chk.Float64(tst, "pc: 0.5 → 0.5", 1e-15, d.ScaleSatPc(0.5), 0.5)
	chk.Float64(tst, "pc: slope", 1e-15, d.ScaleSatDerivPc(0.4), 0.75)

	// kr at the minimum saturation equals the minimum of the table
	ss := d.ScaleSat(0.1)
	kr, _ := tab.Krw(ss)
	chk.Float64(tst, "krw @ 0.1", 1e-17, d.ScaleKr(0.1, kr), 0)
	kr, _ = tab.Krw(d.ScaleSat(0.9))
	chk.Float64(tst, "krw @ 0.9", 1e-14, d.ScaleKr(0.9, kr), tab.Krwmax)
}

func Test_transform05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform05. capillary pressure factor")

	pu, tab := newTable(tst, "water", "oil", "gas")
	ncells := 3
	var set Set
	set[Pcw] = NewArray(ncells)
	set[Pcw].Set(0, 8)
	set[Pcw].Set(1, -8)
	set[Pcg] = constArray(ncells, 123)
	res := build(tst, pu, tab, &set, ncells, false)

	chk.Float64(tst, "pcw: factor", 1e-15, res[0].Wat.PcFactor, 2)
	chk.Float64(tst, "pcw: sign mismatch", 1e-17, res[1].Wat.PcFactor, 1)
	chk.Float64(tst, "pcw: unset cell", 1e-17, res[2].Wat.PcFactor, 1)
	chk.Float64(tst, "pcw: ScalePc", 1e-15, res[0].Wat.ScalePc(1.5), 3)
	chk.Float64(tst, "pcg: factor", 1e-15, res[0].Gas.PcFactor, 123.0/2.0)

	// table without capillary pressure
	swof := [][]float64{{0.2, 0, 1, 0}, {0.8, 1, 0, 0}}
	tab0, err := satfunc.NewTable(pu, swof, sgof01)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	res = build(tst, pu, tab0, &set, ncells, false)
	for i := 0; i < ncells; i++ {
		chk.Float64(tst, io.Sf("pcmax = 0: cell %d", i), 1e-17, res[i].Wat.PcFactor, 1)
	}
}

func Test_transform06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("transform06. relperm values")

	pu, tab := newTable(tst, "water", "oil")
	ncells := 1

	// krmax only
	var set Set
	set[Krw] = constArray(ncells, 0.35)
	d := build(tst, pu, tab, &set, ncells, false)[0].Wat
	if !d.DoNotScale || !d.DoKrMax || d.DoKrCrit {
		tst.Errorf("flags are incorrect: %+v\n", d)
		return
	}
	chk.Float64(tst, "KrSlopeMax", 1e-15, d.KrSlopeMax, 0.5)
	kr, dkr := tab.Krw(0.6)
	chk.Float64(tst, "kr(0.6)", 1e-15, d.ScaleKr(0.6, kr), 0.5*kr)
	chk.Float64(tst, "dkr(0.6)", 1e-15, d.ScaleKrDeriv(0.6, dkr), 0.5*dkr)
	chk.Float64(tst, "kr(0.95)", 1e-15, d.ScaleKr(0.95, 0.7), 0.35)

	// krsr and krmax; value interpolation
	set[Krwr] = constArray(ncells, 0.3)
	d = build(tst, pu, tab, &set, ncells, false)[0].Wat
	if !d.DoKrCrit || d.DoSatInterp {
		tst.Errorf("flags are incorrect: %+v\n", d)
		return
	}
	chk.Float64(tst, "KrSlopeCrit", 1e-15, d.KrSlopeCrit, 0.6)
	chk.Float64(tst, "KrSlopeMax", 1e-15, d.KrSlopeMax, (0.35-0.3)/(0.7-0.5))
	kr, _ = tab.Krw(0.7)
	chk.Float64(tst, "kr(sr)", 1e-15, d.ScaleKr(0.7, kr), 0.3)
	kr, _ = tab.Krw(0.8)
	chk.Float64(tst, "kr(smax)", 1e-15, d.ScaleKr(0.8, kr), 0.35)
	for _, s := range []float64{0.4, 0.6, 0.75} {
		_, dkr = tab.Krw(d.ScaleSat(s))
		ana := d.ScaleKrDeriv(s, dkr*d.ScaleSatDeriv(s))
		chk.DerivScaSca(tst, io.Sf("dkr/ds @ %g", s), 1e-9, ana, s, 1e-6, chk.Verbose, func(x float64) float64 {
			kr, _ := tab.Krw(d.ScaleSat(x))
			return d.ScaleKr(x, kr)
		})
	}

	// flat table segment; saturation interpolation
	swof := [][]float64{{0.2, 0, 1, 0}, {0.3, 0, 0.5, 0}, {0.7, 0.6, 0, 0}, {0.8, 0.6, 0, 0}}
	tabf, err := satfunc.NewTable(pu, swof, nil)
	if err != nil {
		tst.Errorf("NewTable failed: %v\n", err)
		return
	}
	d = build(tst, pu, tabf, &set, ncells, false)[0].Wat
	if !d.DoKrCrit || !d.DoSatInterp {
		tst.Errorf("flags are incorrect: %+v\n", d)
		return
	}
	chk.Float64(tst, "KrSlopeMax", 1e-14, d.KrSlopeMax, (0.35-0.3)/(0.8-0.7))
	chk.Float64(tst, "kr(0.75)", 1e-14, d.ScaleKr(0.75, 0.6), 0.325)
	chk.Float64(tst, "dkr(0.75)", 1e-14, d.ScaleKrDeriv(0.75, 0), 0.5)

	// displacing saturation collapses onto the maximum
	set[Swu] = constArray(ncells, 0.7)
	set[Swcr] = constArray(ncells, 0.7-1e-7)
	d = build(tst, pu, tab, &set, ncells, false)[0].Wat
	if d.DoKrCrit {
		tst.Errorf("krsr scaling should be disabled when sr ≈ smax: %+v\n", d)
	}
}

func Test_depth01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("depth01")

	rows := [][]float64{
		{1000, 0.10, 0.20, 0.80, -1, -1, -1, 0.2, -1},
		{2000, 0.20, 0.30, 0.90, -1, -1, -1, 0.3, -1},
	}
	tab, err := NewDepthTable(rows, NumEnptvdCols)
	if err != nil {
		tst.Errorf("NewDepthTable failed: %v\n", err)
		return
	}
	v, ok := tab.Value(Swl.Column(), 1500)
	if !ok {
		tst.Errorf("value should be available\n")
		return
	}
	chk.Float64(tst, "swl @ 1500", 1e-15, v, 0.15)
	if _, ok = tab.Value(Swl.Column(), 2500); ok {
		tst.Errorf("depth outside the table span must not be extrapolated\n")
	}
	if _, ok = tab.Value(Sgl.Column(), 1500); ok {
		tst.Errorf("defaulted column must not provide values\n")
	}

	pu, err := phases.New([]string{"water", "oil"})
	if err != nil {
		tst.Errorf("phases.New failed: %v\n", err)
		return
	}
	src := &Source{
		Ncells:   4,
		Pu:       pu,
		Explicit: map[string][]float64{"SWL": {0.05, math.NaN(), math.NaN(), math.NaN()}},
		Enptvd:   []*DepthTable{tab},
		Endnum:   []int{0, 0, -1, 0},
		Depths:   []float64{1500, 1250, 1500, 3000},
	}
	set, err := src.ResolveAll(false)
	if err != nil {
		tst.Errorf("ResolveAll failed: %v\n", err)
		return
	}
	chk.Strings(tst, "configured", set.Configured(false), []string{"SWL", "SWU", "SWCR", "SOWCR"})
	chk.Float64(tst, "swl[0] explicit", 1e-17, set[Swl].Or(0, -1), 0.05)
	chk.Float64(tst, "swl[1] depth", 1e-15, set[Swl].Or(1, -1), 0.125)
	chk.Float64(tst, "swl[2] no region", 1e-17, set[Swl].Or(2, -1), -1)
	chk.Float64(tst, "swl[3] outside", 1e-17, set[Swl].Or(3, -1), -1)
	chk.Float64(tst, "sowcr[1]", 1e-15, set[Sowcr].Or(1, -1), 0.225)
	if set[Sgl].Present() || set[Pcw].Present() || set[Krw].Present() {
		tst.Errorf("SGL, PCW and KRW must not be configured\n")
	}
	if set.HasKind(KindKr) {
		tst.Errorf("no relperm key should be configured\n")
	}

	// imbibition keys are explicit only
	imb, err := src.ResolveAll(true)
	if err != nil {
		tst.Errorf("ResolveAll failed: %v\n", err)
		return
	}
	chk.Int(tst, "imbibition keys", len(imb.Configured(true)), 0)

	// errors
	src.Endnum = []int{0, 1, 0, 0}
	if _, err = src.ResolveScalingArray(Swu, false); err == nil {
		tst.Errorf("missing depth table should fail\n")
	}
	src.Explicit["SWL"] = []float64{0.1}
	if _, err = src.ResolveScalingArray(Swl, false); err == nil {
		tst.Errorf("wrong number of explicit values should fail\n")
	}
	if _, err = NewDepthTable([][]float64{{1, 0}, {1, 0}}, 1); err == nil {
		tst.Errorf("repeated depths should fail\n")
	}
}
