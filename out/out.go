// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements output of saturation functions: sweeps along saturation paths and plotting
package out

import (
	"slices"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/satprops/mdl/phases"
	"github.com/cpmech/satprops/props"
)

// Branch holds the results of a sweep of one phase saturation
type Branch struct {
	Phase phases.Phase   // swept phase (water or gas)
	S     []float64      // [npts] saturation of swept phase
	Res   []*props.State // [npts] results
}

// Column returns the values of phase p in key = "kr" or "pc" along the branch
func (o *Branch) Column(key string, p phases.Phase, pu *phases.Usage) (res []float64) {
	pos := pu.Pos[p]
	if pos < 0 {
		return
	}
	res = make([]float64, len(o.Res))
	for i, st := range o.Res {
		switch key {
		case "kr":
			res[i] = st.Kr[pos]
		case "pc":
			res[i] = st.Pc[pos]
		default:
			chk.Panic("key %q is not available; options are \"kr\" and \"pc\"", key)
		}
	}
	return
}

// Cycle sweeps the saturation of phase p from its minimum to its maximum (drainage)
// and back (imbibition) in one cell. The other phases are kept at their minimum, except oil.
//  npts -- number of points of each branch
//  imb  -- nil if hysteresis is inactive
//  Note: the history of the cell is restored at the end
func Cycle(sp *props.SatProps, cell int, p phases.Phase, npts int) (drn, imb *Branch, err error) {

	// check
	pu := sp.Pu
	if p == phases.Oil || !pu.Used[p] {
		return nil, nil, chk.Err("Cycle: phase %v cannot be swept", p)
	}
	if npts < 2 {
		return nil, nil, chk.Err("Cycle: at least two points are required; npts = %d", npts)
	}

	// range
	np := pu.Num
	smin, smax := make([]float64, np), make([]float64, np)
	if err = sp.SatRange([]int{cell}, smin, smax); err != nil {
		return
	}

	// history
	if sp.Hyst != nil {
		saved := sp.Hyst.States[cell]
		defer func() { sp.Hyst.States[cell] = saved }()
	}

	// paths
	ipos, opos := pu.Pos[p], pu.Pos[phases.Oil]
	sval := utl.LinSpace(smin[ipos], smax[ipos], npts)
	path := make([][]float64, npts)
	for i, s := range sval {
		path[i] = slices.Clone(smin)
		path[i][ipos] = s
		path[i][opos] = 1
		for j := 0; j < np; j++ {
			if j != opos {
				path[i][opos] -= path[i][j]
			}
		}
	}
	if sp.DoHyst {
		back := slices.Clone(path)
		slices.Reverse(back)
		path = append(path, back...)
	}

	// run
	var drv props.Driver
	if err = drv.Init(sp, cell); err != nil {
		return
	}
	if err = drv.Run(path); err != nil {
		return
	}
	drn = &Branch{Phase: p, S: sval, Res: drv.Res[:npts]}
	if sp.DoHyst {
		rev := slices.Clone(sval)
		slices.Reverse(rev)
		imb = &Branch{Phase: p, S: rev, Res: drv.Res[npts:]}
	}
	return
}

// PlotCurves plots kr and pc versus the saturation of water and gas in one cell
//  dirout -- directory to save figures
//  npts   -- number of points of each branch
//  returns the names of the saved files
func PlotCurves(sp *props.SatProps, cell, npts int, dirout string) (files []string, err error) {
	ResetPlots()
	pu := sp.Pu
	for _, p := range []phases.Phase{phases.Water, phases.Gas} {
		if !pu.Used[p] {
			continue
		}
		drn, imb, e := Cycle(sp, cell, p, npts)
		if e != nil {
			return nil, e
		}
		sk := satKey(p)

		// relative permeabilities
		Splot(io.Sf("kr-%s", sk), io.Sf("cell %d: relative permeabilities", cell))
		SplotConfig(sk, "", "kr", "")
		for i, q := range []phases.Phase{p, phases.Oil} {
			Plot(drn.S, drn.Column("kr", q, pu), krKey(q), GetDefaultStyle(i))
			if imb != nil {
				Plot(imb.S, imb.Column("kr", q, pu), krKey(q)+" (imbibition)", GetDashedStyle(i))
			}
		}

		// capillary pressure
		Splot(io.Sf("pc-%s", sk), io.Sf("cell %d: capillary pressure", cell))
		SplotConfig(sk, "", pcKey(p), "")
		Plot(drn.S, drn.Column("pc", p, pu), pcKey(p), GetDefaultStyle(0))
	}
	return Draw(dirout, io.Sf("cell%d", cell), true)
}
