// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/satprops/mdl/phases"
	"gonum.org/v1/gonum/interp"
)

// DepthTable holds endpoint values versus depth of one endpoint region (ENPTVD or ENKRVD)
type DepthTable struct {
	Depth   []float64                 // depth column; strictly increasing
	Columns [][]float64               // value columns (without depth)
	fits    []*interp.PiecewiseLinear // nil for defaulted columns
}

// NewDepthTable returns a new depth table
//  rows  -- [depth, v1, v2, ... vncols]; a column with a negative first value is defaulted
//  ncols -- number of value columns
func NewDepthTable(rows [][]float64, ncols int) (o *DepthTable, err error) {
	n := len(rows)
	if n < 1 {
		return nil, chk.Err("depth table must have at least one row")
	}
	o = &DepthTable{Depth: make([]float64, n), Columns: make([][]float64, ncols), fits: make([]*interp.PiecewiseLinear, ncols)}
	for j := 0; j < ncols; j++ {
		o.Columns[j] = make([]float64, n)
	}
	for i, r := range rows {
		if len(r) != ncols+1 {
			return nil, chk.Err("depth table row %d must have %d columns; %d given", i, ncols+1, len(r))
		}
		o.Depth[i] = r[0]
		if i > 0 && o.Depth[i] <= o.Depth[i-1] {
			return nil, chk.Err("depth table: depth column must be strictly increasing; row %d has %g after %g", i, o.Depth[i], o.Depth[i-1])
		}
		for j := 0; j < ncols; j++ {
			o.Columns[j][i] = r[j+1]
		}
	}
	if n < 2 {
		return
	}
	for j := 0; j < ncols; j++ {
		if o.Defaulted(j + 1) {
			continue
		}
		var pl interp.PiecewiseLinear
		if err = pl.Fit(o.Depth, o.Columns[j]); err != nil {
			return nil, chk.Err("depth table column %d:\n%v", j+1, err)
		}
		o.fits[j] = &pl
	}
	return
}

// Defaulted tells whether the (1-based) value column col is defaulted
func (o *DepthTable) Defaulted(col int) bool {
	if o == nil || col < 1 || col > len(o.Columns) {
		return true
	}
	return o.Columns[col-1][0] < 0
}

// Value interpolates column col at depth z
//  ok is false if the column is defaulted or z is outside the depth span
func (o *DepthTable) Value(col int, z float64) (v float64, ok bool) {
	if o.Defaulted(col) {
		return 0, false
	}
	n := len(o.Depth)
	if z < o.Depth[0] || z > o.Depth[n-1] {
		return 0, false
	}
	if n == 1 {
		return o.Columns[col-1][0], true
	}
	return o.fits[col-1].Predict(z), true
}

// Source holds the raw inputs that scaling arrays are resolved from
type Source struct {
	Ncells   int                  // number of cells
	Pu       *phases.Usage        // active phases
	Explicit map[string][]float64 // keyword => per-cell values; NaN means unset
	Enptvd   []*DepthTable        // saturation endpoints versus depth, per endpoint region
	Enkrvd   []*DepthTable        // relperm endpoints versus depth, per endpoint region
	Endnum   []int                // endpoint region of each cell (0-based; negative: none); nil means region 0
	Depths   []float64            // cell centroid depths
	Verbose  bool                 // show messages
}

// ResolveScalingArray resolves the per-cell values of key k
//  Explicit values win; unset cells of saturation and relperm keys are filled by
//  interpolation in the depth table of the cell's endpoint region. Imbibition keys
//  and pc keys are explicit only. A nil array means the key is not configured.
func (o *Source) ResolveScalingArray(k Key, imb bool) (arr *Array, err error) {

	// inactive phase
	if !o.Pu.Used[k.Phase()] {
		return
	}

	// explicit values
	name := k.Name(imb)
	vals, explicit := o.Explicit[name]
	if explicit && len(vals) != o.Ncells {
		return nil, chk.Err("scaling keyword %q must have %d values; %d given", name, o.Ncells, len(vals))
	}

	// depth tables
	var tables []*DepthTable
	if !imb {
		switch k.Kind() {
		case KindSat:
			tables = o.Enptvd
		case KindKr:
			tables = o.Enkrvd
		}
	}
	depth := columnAvailable(tables, k.Column())
	if !explicit && !depth {
		return
	}

	// assign
	arr = NewArray(o.Ncells)
	if explicit {
		for i, v := range vals {
			if !math.IsNaN(v) {
				arr.Set(i, v)
			}
		}
	}
	if depth {
		if len(o.Depths) != o.Ncells {
			return nil, chk.Err("scaling keyword %q needs %d cell depths; %d given", name, o.Ncells, len(o.Depths))
		}
		if o.Endnum != nil && len(o.Endnum) != o.Ncells {
			return nil, chk.Err("ENDNUM must have %d values; %d given", o.Ncells, len(o.Endnum))
		}
		for i := 0; i < o.Ncells; i++ {
			if _, ok := arr.Get(i); ok {
				continue
			}
			e := 0
			if o.Endnum != nil {
				e = o.Endnum[i]
			}
			if e < 0 {
				continue
			}
			if e >= len(tables) {
				return nil, chk.Err("scaling keyword %q: ENDNUM region %d of cell %d has no depth table (%d given)", name, e+1, i, len(tables))
			}
			if v, ok := tables[e].Value(k.Column(), o.Depths[i]); ok {
				arr.Set(i, v)
			}
		}
	}
	if o.Verbose {
		io.Pf("--- Scaling parameter '%s' assigned.\n", name)
	}
	return
}

// ResolveAll resolves all keys of one branch
func (o *Source) ResolveAll(imb bool) (set Set, err error) {
	for k := Key(0); k < NumKeys; k++ {
		if set[k], err = o.ResolveScalingArray(k, imb); err != nil {
			return
		}
	}
	return
}

// columnAvailable tells whether any region table provides column col
func columnAvailable(tables []*DepthTable, col int) bool {
	for _, t := range tables {
		if t != nil && !t.Defaulted(col) {
			return true
		}
	}
	return false
}
