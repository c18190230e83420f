// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.json or .yaml) deck file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/satprops/mdl/eps"
	"gopkg.in/yaml.v3"
)

// EhystrData holds the hysteresis options (EHYSTR)
type EhystrData struct {
	Relperm  int    `json:"relperm" yaml:"relperm"`   // item 2: relative permeability model; only 0 is supported
	Limiting string `json:"limiting" yaml:"limiting"` // item 5: curves with hysteresis; only "KR" is supported
}

// EndscaleData holds the endpoint scaling options (ENDSCALE)
type EndscaleData struct {
	Direction  string `json:"direction" yaml:"direction"`   // item 1: "NODIR" (default) or "DIRECT"
	Reversible string `json:"reversible" yaml:"reversible"` // item 2: "REVERS" (default) or "IRREVERS"
	Ntendp     int    `json:"ntendp" yaml:"ntendp"`         // item 3: maximum number of ENDNUM regions (default 1)
}

// Deck holds all input data of saturation functions
type Deck struct {

	// global information
	Desc    string `json:"desc" yaml:"desc"`       // description
	Ncells  int    `json:"ncells" yaml:"ncells"`   // number of cells
	Workers int    `json:"workers" yaml:"workers"` // number of workers for batch evaluations; ≤ 1 means serial

	// switches
	Phases   []string      `json:"phases" yaml:"phases"`     // active phases; e.g. ["water", "oil", "gas"]
	Satopts  []string      `json:"satopts" yaml:"satopts"`   // SATOPTS switches; only "HYSTER" is supported
	Ehystr   *EhystrData   `json:"ehystr" yaml:"ehystr"`     // EHYSTR; nil if absent
	Endscale *EndscaleData `json:"endscale" yaml:"endscale"` // ENDSCALE; nil if absent
	Scalecrs string        `json:"scalecrs" yaml:"scalecrs"` // SCALECRS: "YES" enables three-point scaling

	// regions (1-based as in decks; nil means region 1 everywhere)
	Satnum []int `json:"satnum" yaml:"satnum"` // saturation function region of each cell
	Imbnum []int `json:"imbnum" yaml:"imbnum"` // imbibition region of each cell
	Endnum []int `json:"endnum" yaml:"endnum"` // endpoint region of each cell; 0 means none

	// tables
	Tables TablesData    `json:"tables" yaml:"tables"` // saturation functions per SATNUM region
	Enptvd [][][]float64 `json:"enptvd" yaml:"enptvd"` // per ENDNUM region: rows [depth, swl, swcr, swu, sgl, sgcr, sgu, sowcr, sogcr]
	Enkrvd [][][]float64 `json:"enkrvd" yaml:"enkrvd"` // per ENDNUM region: rows [depth, krw, krg, kro, krwr, krgr, krorw, krorg]

	// cell data
	Scaling map[string][]*float64 `json:"scaling" yaml:"scaling"` // scaling keyword => per-cell values; null means unset
	Depths  []float64             `json:"depths" yaml:"depths"`   // cell centroid depths
}

// ReadDeck reads a deck from a .json or .yaml file
func ReadDeck(dir, fn string) (o *Deck, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read deck file:\n%v", err)
	}

	// decode
	o = new(Deck)
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("deck file extension %q is not supported; options are \".json\", \".yaml\" and \".yml\"", filepath.Ext(fn))
	}
	if err != nil {
		return nil, chk.Err("cannot decode deck file %q:\n%v", fn, err)
	}

	// check
	if err = o.Validate(); err != nil {
		return nil, err
	}
	return
}

// Validate checks the shape of the input data
func (o *Deck) Validate() error {
	if o.Ncells < 1 {
		return chk.Err("ncells must be positive; %d given", o.Ncells)
	}
	if len(o.Phases) == 0 {
		return chk.Err("at least one phase must be given")
	}
	if len(o.Tables) == 0 {
		return chk.Err("at least one table must be given")
	}
	for i, t := range o.Tables {
		if t == nil {
			return chk.Err("table %d is empty", i+1)
		}
		if err := t.check(i); err != nil {
			return err
		}
	}
	if err := o.checkRegions("SATNUM", o.Satnum, 1); err != nil {
		return err
	}
	if err := o.checkRegions("IMBNUM", o.Imbnum, 1); err != nil {
		return err
	}
	if err := o.checkRegions("ENDNUM", o.Endnum, 0); err != nil {
		return err
	}
	if o.Depths != nil && len(o.Depths) != o.Ncells {
		return chk.Err("depths must have %d values; %d given", o.Ncells, len(o.Depths))
	}
	for kw, vals := range o.Scaling {
		if _, _, ok := eps.ParseKey(kw); !ok {
			return chk.Err("scaling keyword %q is not recognised", kw)
		}
		if len(vals) != o.Ncells {
			return chk.Err("scaling keyword %q must have %d values; %d given", kw, o.Ncells, len(vals))
		}
	}
	if err := checkDepthTables("ENPTVD", o.Enptvd, eps.NumEnptvdCols); err != nil {
		return err
	}
	return checkDepthTables("ENKRVD", o.Enkrvd, eps.NumEnkrvdCols)
}

// RegionIndices converts 1-based region numbers into 0-based indices
//  returns nil if nums is nil; region 0 (none) becomes -1
func RegionIndices(nums []int) (idx []int) {
	if nums == nil {
		return
	}
	idx = make([]int, len(nums))
	for i, n := range nums {
		idx[i] = n - 1
	}
	return
}

// ExplicitScaling returns the explicit scaling values with NaN for unset cells
func (o *Deck) ExplicitScaling() (res map[string][]float64) {
	res = make(map[string][]float64, len(o.Scaling))
	for kw, vals := range o.Scaling {
		v := make([]float64, len(vals))
		for i, p := range vals {
			if p == nil {
				v[i] = math.NaN()
				continue
			}
			v[i] = *p
		}
		res[strings.ToUpper(strings.TrimSpace(kw))] = v
	}
	return
}

// DepthTables returns the depth tables of each endpoint region
func DepthTables(key string, data [][][]float64, ncols int) (res []*eps.DepthTable, err error) {
	res = make([]*eps.DepthTable, len(data))
	for i, rows := range data {
		res[i], err = eps.NewDepthTable(rows, ncols)
		if err != nil {
			return nil, chk.Err("%s table %d:\n%v", key, i+1, err)
		}
	}
	return
}

// HasSatopt tells whether a SATOPTS switch is given
func (o *Deck) HasSatopt(name string) bool {
	for _, s := range o.Satopts {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

// HasRelpermScaling tells whether relperm value scaling is given (KR* or IKR* keywords or ENKRVD)
func (o *Deck) HasRelpermScaling() bool {
	if len(o.Enkrvd) > 0 {
		return true
	}
	for kw := range o.Scaling {
		if k, _, ok := eps.ParseKey(kw); ok && k.Kind() == eps.KindKr {
			return true
		}
	}
	return false
}

// checkRegions checks region numbers
func (o *Deck) checkRegions(key string, nums []int, min int) error {
	if nums == nil {
		return nil
	}
	if len(nums) != o.Ncells {
		return chk.Err("%s must have %d values; %d given", key, o.Ncells, len(nums))
	}
	for i, n := range nums {
		if n < min {
			return chk.Err("%s of cell %d must be greater than or equal to %d; %d given", key, i, min, n)
		}
	}
	return nil
}

// checkDepthTables checks the number of columns of depth tables
func checkDepthTables(key string, data [][][]float64, ncols int) error {
	for i, rows := range data {
		if len(rows) == 0 {
			return chk.Err("%s table %d is empty", key, i+1)
		}
		for j, r := range rows {
			if len(r) != ncols+1 {
				return chk.Err("%s table %d, row %d must have %d columns; %d given", key, i+1, j, ncols+1, len(r))
			}
		}
	}
	return nil
}
