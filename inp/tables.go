// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/satprops/mdl/satfunc"
)

// TableData holds the saturation functions of one SATNUM region
//  Either swof/sgof rows or a generator model must be given
type TableData struct {

	// tabulated
	Swof [][]float64 `json:"swof" yaml:"swof"` // water-oil rows [sw, krw, krow, pcow]
	Sgof [][]float64 `json:"sgof" yaml:"sgof"` // gas-oil rows [sg, krg, krog, pcog]

	// generated
	Model string     `json:"model" yaml:"model"` // name of generator; e.g. "corey"
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // parameters of generator
	Npts  int        `json:"npts" yaml:"npts"`   // number of rows to be generated

	// derived
	Generator satfunc.Generator `json:"-" yaml:"-"` // pointer to actual generator
}

// TablesData holds all region tables
type TablesData []*TableData

// Rows returns the SWOF and SGOF rows of the table
//  useW and useG tell which rows are required
func (o *TableData) Rows(useW, useG bool) (swof, sgof [][]float64, err error) {
	if o.Model == "" {
		return o.Swof, o.Sgof, nil
	}
	if o.Generator == nil {
		o.Generator, err = satfunc.New(o.Model)
		if err != nil {
			return
		}
		err = o.Generator.Init(o.Prms)
		if err != nil {
			return nil, nil, chk.Err("cannot initialise generator %q:\n%v", o.Model, err)
		}
	}
	npts := o.Npts
	if npts < 2 {
		npts = 21
	}
	if useW {
		swof = o.Generator.Swof(npts)
	}
	if useG {
		sgof = o.Generator.Sgof(npts)
	}
	return
}

// check checks the shape of the table input
func (o *TableData) check(idx int) error {
	tabulated := len(o.Swof) > 0 || len(o.Sgof) > 0
	switch {
	case tabulated && o.Model != "":
		return chk.Err("table %d: either swof/sgof rows or a generator model must be given, not both", idx+1)
	case !tabulated && o.Model == "":
		return chk.Err("table %d: swof/sgof rows or a generator model must be given", idx+1)
	}
	return nil
}

// NumSwof returns the number of tables with water-oil data
func (o TablesData) NumSwof() (n int) {
	for _, t := range o {
		if len(t.Swof) > 0 || t.Model != "" {
			n++
		}
	}
	return
}

// NumSgof returns the number of tables with gas-oil data
func (o TablesData) NumSgof() (n int) {
	for _, t := range o {
		if len(t.Sgof) > 0 || t.Model != "" {
			n++
		}
	}
	return
}
