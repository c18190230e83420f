// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eps

import (
	"strings"

	"github.com/cpmech/satprops/mdl/phases"
)

// Key identifies one endpoint scaling keyword
type Key int

// scaling keys (drainage names; imbibition names carry an "I" prefix)
const (
	Swl   Key = iota // connate water saturation
	Swu              // maximum water saturation
	Swcr             // critical water saturation
	Sgl              // connate gas saturation
	Sgu              // maximum gas saturation
	Sgcr             // critical gas saturation
	Sowcr            // critical oil saturation in water
	Sogcr            // critical oil saturation in gas
	Krw              // krw at maximum water saturation
	Krg              // krg at maximum gas saturation
	Kro              // kro at maximum oil saturation
	Krwr             // krw at the displacing critical saturation
	Krgr             // krg at the displacing critical saturation
	Krorw            // krow at the displacing critical saturation
	Krorg            // krog at the displacing critical saturation
	Pcw              // maximum water-oil capillary pressure
	Pcg              // maximum gas-oil capillary pressure
	NumKeys
)

// Kind classifies keys by the depth table that may provide them
type Kind int

// kinds of keys
const (
	KindSat   Kind = iota // saturation endpoint (ENPTVD)
	KindKr                // relative permeability value (ENKRVD)
	KindPc                // capillary pressure value (explicit only)
)

// keyInfo holds the metadata of a key
type keyInfo struct {
	name  string
	kind  Kind
	phase phases.Phase // phase that must be active
	col   int          // column in the depth table, after the depth column
}

var keyinfo = [NumKeys]keyInfo{
	Swl:   {"SWL", KindSat, phases.Water, 1},
	Swu:   {"SWU", KindSat, phases.Water, 3},
	Swcr:  {"SWCR", KindSat, phases.Water, 2},
	Sgl:   {"SGL", KindSat, phases.Gas, 4},
	Sgu:   {"SGU", KindSat, phases.Gas, 6},
	Sgcr:  {"SGCR", KindSat, phases.Gas, 5},
	Sowcr: {"SOWCR", KindSat, phases.Water, 7},
	Sogcr: {"SOGCR", KindSat, phases.Gas, 8},
	Krw:   {"KRW", KindKr, phases.Water, 1},
	Krg:   {"KRG", KindKr, phases.Gas, 2},
	Kro:   {"KRO", KindKr, phases.Oil, 3},
	Krwr:  {"KRWR", KindKr, phases.Water, 4},
	Krgr:  {"KRGR", KindKr, phases.Gas, 5},
	Krorw: {"KRORW", KindKr, phases.Water, 6},
	Krorg: {"KRORG", KindKr, phases.Gas, 7},
	Pcw:   {"PCW", KindPc, phases.Water, 0},
	Pcg:   {"PCG", KindPc, phases.Gas, 0},
}

// NumEnptvdCols and NumEnkrvdCols are the numbers of value columns of depth tables
const (
	NumEnptvdCols = 8
	NumEnkrvdCols = 7
)

// Name returns the keyword of k; imbibition keywords are prefixed with "I"
func (k Key) Name(imb bool) string {
	if imb {
		return "I" + keyinfo[k].name
	}
	return keyinfo[k].name
}

// String returns the drainage keyword
func (k Key) String() string {
	if k < 0 || k >= NumKeys {
		return "unknown"
	}
	return keyinfo[k].name
}

// Kind returns the kind of key
func (k Key) Kind() Kind { return keyinfo[k].kind }

// Phase returns the phase that must be active for k to be used
func (k Key) Phase() phases.Phase { return keyinfo[k].phase }

// Column returns the value column of k in its depth table (1-based; 0 for pc keys)
func (k Key) Column() int { return keyinfo[k].col }

// ParseKey finds the key with the given keyword
//  imb -- whether the keyword is an imbibition ("I"-prefixed) one
func ParseKey(keyword string) (k Key, imb, ok bool) {
	kw := strings.ToUpper(strings.TrimSpace(keyword))
	for i := Key(0); i < NumKeys; i++ {
		switch kw {
		case keyinfo[i].name:
			return i, false, true
		case "I" + keyinfo[i].name:
			return i, true, true
		}
	}
	return 0, false, false
}

// Set holds the resolved arrays of all keys of one branch (drainage or imbibition)
type Set [NumKeys]*Array

// HasKind tells whether any key of the given kind is configured
func (o *Set) HasKind(kind Kind) bool {
	for k, a := range o {
		if a.Present() && Key(k).Kind() == kind {
			return true
		}
	}
	return false
}

// Configured returns the names of configured keys
func (o *Set) Configured(imb bool) (names []string) {
	for k, a := range o {
		if a.Present() {
			names = append(names, Key(k).Name(imb))
		}
	}
	return
}
