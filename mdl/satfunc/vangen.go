// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// VanGen implements van Genuchten's retention model with Mualem's relative permeabilities
//   se   = (sw - swl) / (1 - swl)        (water-oil)
//   se   = 1 - (sg - sgl) / (1 - swl - sgl)   (gas-oil; liquid effective saturation)
//   pc   = ((se^(-1/m) - 1)^(1/n)) / α   clipped at pcwmax or pcgmax
//   krw  = krog = se^l ・ (1 - (1 - se^(1/m))^m)²
//   krow = krg  = (1 - se)^l ・ (1 - se^(1/m))^(2m)
type VanGen struct {

	// parameters
	α, m, n, l float64 // parameters
	swl, sgl   float64 // connate saturations
	pcwmax     float64 // maximum pcow
	pcgmax     float64 // maximum pcog
}

// add model to factory
func init() {
	allocators["vg"] = func() Generator { return new(VanGen) }
}

// Init initialises model
func (o *VanGen) Init(prms dbf.Params) (err error) {
	o.l, o.pcwmax, o.pcgmax = 0.5, 1e3, 1e3
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "alp":
			o.α = p.V
		case "m":
			o.m = p.V
		case "n":
			o.n = p.V
		case "l":
			o.l = p.V
		case "swl":
			o.swl = p.V
		case "sgl":
			o.sgl = p.V
		case "pcwmax":
			o.pcwmax = p.V
		case "pcgmax":
			o.pcgmax = p.V
		default:
			return chk.Err("vg: parameter named %q is incorrect\n", p.N)
		}
	}
	if o.α <= 0 || o.m <= 0 || o.n <= 0 {
		return chk.Err("vg: alp=%g, m=%g and n=%g must be positive", o.α, o.m, o.n)
	}
	if o.swl < 0 || o.sgl < 0 || o.swl+o.sgl >= 1 {
		return chk.Err("vg: end points are inconsistent: swl=%g sgl=%g", o.swl, o.sgl)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o VanGen) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "alp", V: 0.5},
			&dbf.P{N: "m", V: 0.5},
			&dbf.P{N: "n", V: 2},
			&dbf.P{N: "l", V: 0.5},
			&dbf.P{N: "swl", V: 0.2},
			&dbf.P{N: "sgl", V: 0.0},
			&dbf.P{N: "pcwmax", V: 10},
			&dbf.P{N: "pcgmax", V: 5},
		}
	}
	return dbf.Params{
		&dbf.P{N: "alp", V: o.α},
		&dbf.P{N: "m", V: o.m},
		&dbf.P{N: "n", V: o.n},
		&dbf.P{N: "l", V: o.l},
		&dbf.P{N: "swl", V: o.swl},
		&dbf.P{N: "sgl", V: o.sgl},
		&dbf.P{N: "pcwmax", V: o.pcwmax},
		&dbf.P{N: "pcgmax", V: o.pcgmax},
	}
}

// Swof generates water-oil rows
func (o VanGen) Swof(npts int) (rows [][]float64) {
	sw := stations(o.swl, 1.0, npts)
	rows = make([][]float64, len(sw))
	for i, s := range sw {
		se := (s - o.swl) / (1.0 - o.swl)
		rows[i] = []float64{s, o.wetting(se), o.nonWetting(se), math.Min(o.pc(se), o.pcwmax)}
	}
	return
}

// Sgof generates gas-oil rows
func (o VanGen) Sgof(npts int) (rows [][]float64) {
	sgu := 1.0 - o.swl
	sg := stations(o.sgl, sgu, npts)
	rows = make([][]float64, len(sg))
	for i, s := range sg {
		se := 1.0 - (s-o.sgl)/(sgu-o.sgl)
		rows[i] = []float64{s, o.nonWetting(se), o.wetting(se), math.Min(o.pc(se), o.pcgmax)}
	}
	return
}

// Sl computes the effective saturation corresponding to pc
func (o VanGen) Sl(pc float64) float64 {
	if pc <= 0 {
		return 1
	}
	return math.Pow(1+math.Pow(o.α*pc, o.n), -o.m)
}

// pc computes the capillary pressure corresponding to the effective saturation se
func (o VanGen) pc(se float64) float64 {
	if se >= 1 {
		return 0
	}
	if se <= 0 {
		return math.Inf(1)
	}
	return math.Pow(math.Pow(se, -1.0/o.m)-1.0, 1.0/o.n) / o.α
}

// wetting computes the relative permeability of the wetting phase
func (o VanGen) wetting(se float64) float64 {
	se = clip(se)
	return math.Pow(se, o.l) * math.Pow(1-math.Pow(1-math.Pow(se, 1.0/o.m), o.m), 2)
}

// nonWetting computes the relative permeability of the non-wetting phase
func (o VanGen) nonWetting(se float64) float64 {
	se = clip(se)
	return math.Pow(1-se, o.l) * math.Pow(1-math.Pow(se, 1.0/o.m), 2*o.m)
}

// clip clips x to [0, 1]
func clip(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
