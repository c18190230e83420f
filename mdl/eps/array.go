// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import "math"

// Array holds optional per-cell values of one scaling key
//  A nil *Array means that the key is not configured. A configured array may
//  still have unset cells; these fall back to the table value.
type Array struct {
	vals []float64 // NaN marks an unset cell
}

// NewArray returns a configured array with all cells unset
func NewArray(ncells int) (o *Array) {
	o = &Array{vals: make([]float64, ncells)}
	for i := range o.vals {
		o.vals[i] = math.NaN()
	}
	return
}

// Present tells whether the key is configured
func (o *Array) Present() bool {
	return o != nil
}

// Len returns the number of cells
func (o *Array) Len() int {
	if o == nil {
		return 0
	}
	return len(o.vals)
}

// Set sets the value of a cell
func (o *Array) Set(cell int, v float64) {
	o.vals[cell] = v
}

// Unset marks a cell as unset
func (o *Array) Unset(cell int) {
	o.vals[cell] = math.NaN()
}

// Get returns the value of a cell and whether it is set
func (o *Array) Get(cell int) (v float64, ok bool) {
	if o == nil {
		return 0, false
	}
	v = o.vals[cell]
	return v, !math.IsNaN(v)
}

// Or returns the value of a cell or def if the cell (or the array) is unset
func (o *Array) Or(cell int, def float64) float64 {
	if v, ok := o.Get(cell); ok {
		return v
	}
	return def
}

// NumSet returns the number of set cells
func (o *Array) NumSet() (n int) {
	if o == nil {
		return
	}
	for _, v := range o.vals {
		if !math.IsNaN(v) {
			n++
		}
	}
	return
}
