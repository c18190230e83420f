// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phases resolves the active fluid phases and their positions in saturation arrays
package phases

import (
	"strings"

	"github.com/cpmech/gosl/chk"
)

// Phase identifies a fluid phase
type Phase int

// phases in canonical order
const (
	Water Phase = iota
	Oil
	Gas
	MaxNum // maximum number of phases
)

// String returns the name of the phase
func (p Phase) String() string {
	switch p {
	case Water:
		return "water"
	case Oil:
		return "oil"
	case Gas:
		return "gas"
	}
	return "unknown"
}

// Usage holds the set of active phases
//  Note: active phases are numbered in canonical order (water, oil, gas)
type Usage struct {
	Num  int           // number of active phases (P)
	Used [MaxNum]bool  // is phase active?
	Pos  [MaxNum]int   // position of phase in arrays; -1 if inactive
	Ids  [MaxNum]Phase // Ids[i] is the phase stored at position i (i < Num)
}

// New returns a new Usage from a list of phase names; e.g. {"water", "oil"}
func New(names []string) (o *Usage, err error) {
	if len(names) == 0 {
		return nil, chk.Err("phases: at least one phase must be given")
	}
	o = new(Usage)
	for _, name := range names {
		var p Phase
		switch strings.ToLower(name) {
		case "water", "aqua", "wat", "w":
			p = Water
		case "oil", "liquid", "o":
			p = Oil
		case "gas", "vapour", "vapor", "g":
			p = Gas
		default:
			return nil, chk.Err("phases: phase named %q is not available; options are \"water\", \"oil\" and \"gas\"", name)
		}
		if o.Used[p] {
			return nil, chk.Err("phases: phase %q is given more than once", name)
		}
		o.Used[p] = true
	}
	for p := Water; p < MaxNum; p++ {
		o.Pos[p] = -1
		if o.Used[p] {
			o.Pos[p] = o.Num
			o.Ids[o.Num] = p
			o.Num++
		}
	}
	return
}

// ThreePhase tells whether water, oil and gas are all active
func (o Usage) ThreePhase() bool {
	return o.Used[Water] && o.Used[Oil] && o.Used[Gas]
}

// TwoPhaseWaterOil tells whether only water and oil are active
func (o Usage) TwoPhaseWaterOil() bool {
	return o.Used[Water] && o.Used[Oil] && !o.Used[Gas]
}

// TwoPhaseGasOil tells whether only gas and oil are active
func (o Usage) TwoPhaseGasOil() bool {
	return !o.Used[Water] && o.Used[Oil] && o.Used[Gas]
}

// Names returns the names of active phases in array order
func (o Usage) Names() (names []string) {
	names = make([]string, o.Num)
	for i := 0; i < o.Num; i++ {
		names[i] = o.Ids[i].String()
	}
	return
}
