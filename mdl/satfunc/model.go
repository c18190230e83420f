// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Generator defines analytical models that generate SWOF/SGOF rows
type Generator interface {
	Init(prms dbf.Params) error      // initialises model
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Swof(npts int) [][]float64       // water-oil rows [sw, krw, krow, pcow]
	Sgof(npts int) [][]float64       // gas-oil rows [sg, krg, krog, pcog]
}

// New returns a new table generator
func New(name string) (model Generator, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'satfunc' database", name)
	}
	return allocator(), nil
}

// allocators holds all available generators
var allocators = map[string]func() Generator{}
