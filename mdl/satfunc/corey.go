// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Corey implements power-law relative permeabilities and capillary pressures
//   krw  = krwmax ・ ((sw - swcr) / (1 - swcr))^nw
//   krow = kromax ・ ((1 - sw - sowcr - sgl) / (1 - swl - sowcr - sgl))^now
//   pcow = pcwmax ・ ((1 - sw) / (1 - swl))^npc
//   krg  = krgmax ・ ((sg - sgcr) / (1 - swl - sgcr))^ng
//   krog = kromax ・ ((1 - sg - sogcr - swl) / (1 - swl - sgl - sogcr))^nog
//   pcog = pcgmax ・ (sg - sgl) / (1 - swl - sgl)
type Corey struct {

	// end points
	swl, swcr, sowcr float64
	sgl, sgcr, sogcr float64

	// exponents
	nw, now, ng, nog, npc float64

	// maxima
	krwmax, krgmax, kromax float64
	pcwmax, pcgmax         float64
}

// add model to factory
func init() {
	allocators["corey"] = func() Generator { return new(Corey) }
}

// Init initialises model
func (o *Corey) Init(prms dbf.Params) (err error) {
	o.nw, o.now, o.ng, o.nog, o.npc = 2, 2, 2, 2, 1
	o.krwmax, o.krgmax, o.kromax = 1, 1, 1
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swl":
			o.swl = p.V
		case "swcr":
			o.swcr = p.V
		case "sowcr":
			o.sowcr = p.V
		case "sgl":
			o.sgl = p.V
		case "sgcr":
			o.sgcr = p.V
		case "sogcr":
			o.sogcr = p.V
		case "nw":
			o.nw = p.V
		case "now":
			o.now = p.V
		case "ng":
			o.ng = p.V
		case "nog":
			o.nog = p.V
		case "npc":
			o.npc = p.V
		case "krwmax":
			o.krwmax = p.V
		case "krgmax":
			o.krgmax = p.V
		case "kromax":
			o.kromax = p.V
		case "pcwmax":
			o.pcwmax = p.V
		case "pcgmax":
			o.pcgmax = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.swcr < o.swl {
		return chk.Err("corey: swcr=%g must be greater than or equal to swl=%g", o.swcr, o.swl)
	}
	if o.sgcr < o.sgl {
		return chk.Err("corey: sgcr=%g must be greater than or equal to sgl=%g", o.sgcr, o.sgl)
	}
	if o.swl+o.sowcr+o.sgl >= 1 || o.swcr >= 1 || o.swl+o.sgcr+o.sogcr >= 1 {
		return chk.Err("corey: end points are inconsistent: swl=%g swcr=%g sowcr=%g sgl=%g sgcr=%g sogcr=%g", o.swl, o.swcr, o.sowcr, o.sgl, o.sgcr, o.sogcr)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "swl", V: 0.1},
			&dbf.P{N: "swcr", V: 0.2},
			&dbf.P{N: "sowcr", V: 0.2},
			&dbf.P{N: "sgl", V: 0.0},
			&dbf.P{N: "sgcr", V: 0.05},
			&dbf.P{N: "sogcr", V: 0.1},
			&dbf.P{N: "nw", V: 2},
			&dbf.P{N: "now", V: 2},
			&dbf.P{N: "ng", V: 2},
			&dbf.P{N: "nog", V: 2},
			&dbf.P{N: "npc", V: 1},
			&dbf.P{N: "krwmax", V: 0.8},
			&dbf.P{N: "krgmax", V: 0.9},
			&dbf.P{N: "kromax", V: 1.0},
			&dbf.P{N: "pcwmax", V: 4.0},
			&dbf.P{N: "pcgmax", V: 2.0},
		}
	}
	return dbf.Params{
		&dbf.P{N: "swl", V: o.swl},
		&dbf.P{N: "swcr", V: o.swcr},
		&dbf.P{N: "sowcr", V: o.sowcr},
		&dbf.P{N: "sgl", V: o.sgl},
		&dbf.P{N: "sgcr", V: o.sgcr},
		&dbf.P{N: "sogcr", V: o.sogcr},
		&dbf.P{N: "nw", V: o.nw},
		&dbf.P{N: "now", V: o.now},
		&dbf.P{N: "ng", V: o.ng},
		&dbf.P{N: "nog", V: o.nog},
		&dbf.P{N: "npc", V: o.npc},
		&dbf.P{N: "krwmax", V: o.krwmax},
		&dbf.P{N: "krgmax", V: o.krgmax},
		&dbf.P{N: "kromax", V: o.kromax},
		&dbf.P{N: "pcwmax", V: o.pcwmax},
		&dbf.P{N: "pcgmax", V: o.pcgmax},
	}
}

// Swof generates water-oil rows
func (o Corey) Swof(npts int) (rows [][]float64) {
	sw := stations(o.swl, 1.0, npts, o.swcr, 1.0-o.sowcr-o.sgl)
	rows = make([][]float64, len(sw))
	for i, s := range sw {
		krw := o.krwmax * power((s-o.swcr)/(1.0-o.swcr), o.nw)
		krow := o.kromax * power((1.0-s-o.sowcr-o.sgl)/(1.0-o.swl-o.sowcr-o.sgl), o.now)
		pcow := o.pcwmax * power((1.0-s)/(1.0-o.swl), o.npc)
		rows[i] = []float64{s, krw, krow, pcow}
	}
	return
}

// Sgof generates gas-oil rows
func (o Corey) Sgof(npts int) (rows [][]float64) {
	sgu := 1.0 - o.swl
	sg := stations(o.sgl, sgu, npts, o.sgcr, 1.0-o.sogcr-o.swl)
	rows = make([][]float64, len(sg))
	for i, s := range sg {
		krg := o.krgmax * power((s-o.sgcr)/(sgu-o.sgcr), o.ng)
		krog := o.kromax * power((1.0-s-o.sogcr-o.swl)/(1.0-o.swl-o.sgl-o.sogcr), o.nog)
		pcog := o.pcgmax * (s - o.sgl) / (sgu - o.sgl)
		rows[i] = []float64{s, krg, krog, pcog}
	}
	return
}

// power computes x^n with x clipped to [0, 1]
func power(x, n float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return math.Pow(x, n)
}

// stations returns npts equally spaced points in [a, b] merged with the break points
func stations(a, b float64, npts int, breaks ...float64) (x []float64) {
	if npts < 2 {
		npts = 2
	}
	x = utl.LinSpace(a, b, npts)
	x[0], x[npts-1] = a, b
	for _, v := range breaks {
		if v > a && v < b {
			x = append(x, v)
		}
	}
	sort.Float64s(x)
	k := 1
	for i := 1; i < len(x); i++ {
		if x[i]-x[k-1] > 1e-12 {
			x[k] = x[i]
			k++
		}
	}
	return x[:k]
}
