// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eps implements endpoint scaling of saturation functions
//  A Transform maps the saturation s of one cell onto the domain of the
//  (unscaled) region table with either two or three linear segments:
//
//    2pt:  [scr, smax]            → [tab.scr, tab.smax]
//    3pt:  [scr, sr] ∪ [sr, smax] → [tab.scr, tab.sr] ∪ [tab.sr, tab.smax]
//
//  Relative permeability values may be rescaled afterwards (krmax and krsr)
//  and capillary pressures are multiplied by a per-cell factor.
package eps

// Family identifies one of the four scaled curve families
type Family int

// curve families
const (
	Wat    Family = iota // water relperm (and pcow)
	WatOil               // oil relperm in water
	Gas                  // gas relperm (and pcog)
	GasOil               // oil relperm in gas
	NumFamilies
)

// String returns the name of the family
func (f Family) String() string {
	switch f {
	case Wat:
		return "krw"
	case WatOil:
		return "krow"
	case Gas:
		return "krg"
	case GasOil:
		return "krog"
	}
	return "unknown"
}

// Anchors holds the unscaled (table) values that a Transform maps onto
type Anchors struct {
	Smin  float64 // minimum saturation
	Scr   float64 // critical saturation
	Sr    float64 // displacing critical saturation
	Smax  float64 // maximum saturation
	Krsr  float64 // kr at Sr
	Krmax float64 // kr at Smax
	Pcmax float64 // maximum capillary pressure
}

// Transform holds the scaling of one curve family in one cell
type Transform struct {
	DoNotScale  bool    // saturations are not scaled; use table directly
	Do3pt       bool    // three-point scaling
	DoKrMax     bool    // krmax is given
	DoKrCrit    bool    // kr at the displacing critical saturation is given
	DoSatInterp bool    // interpolate kr in saturation between sr and smax
	Smin        float64 // minimum saturation of cell
	Smax        float64 // maximum saturation of cell
	Scr         float64 // critical saturation of cell
	Sr          float64 // displacing critical saturation of cell
	Slope1      float64 // table/cell slope on [scr, sr]
	Slope2      float64 // table/cell slope on [sr, smax]
	Krsr        float64 // kr at sr
	Krmax       float64 // kr at smax
	KrSlopeCrit float64 // kr multiplier on [scr, sr]
	KrSlopeMax  float64 // kr multiplier (or slope if DoSatInterp) on [sr, smax]
	PcFactor    float64 // capillary pressure multiplier
	Tab         Anchors // table values
}

// Transforms holds the four families of one cell
type Transforms struct {
	Wat    Transform // water
	WatOil Transform // oil in water
	Gas    Transform // gas
	GasOil Transform // oil in gas
}

// Get returns the transform of family f
func (o *Transforms) Get(f Family) *Transform {
	switch f {
	case Wat:
		return &o.Wat
	case WatOil:
		return &o.WatOil
	case Gas:
		return &o.Gas
	case GasOil:
		return &o.GasOil
	}
	return nil
}

// ScaleSat maps the cell saturation s onto the table domain (kr curves)
func (o *Transform) ScaleSat(s float64) float64 {
	if o.DoNotScale {
		return s
	}
	switch {
	case s <= o.Scr:
		return o.Tab.Scr
	case s <= o.Sr:
		return o.Tab.Scr + (s-o.Scr)*o.Slope1
	case s <= o.Smax:
		return o.Tab.Sr + (s-o.Sr)*o.Slope2
	}
	return o.Tab.Smax
}

// ScaleSatInv maps the table saturation ss back onto the cell domain
func (o *Transform) ScaleSatInv(ss float64) float64 {
	if o.DoNotScale {
		return ss
	}
	switch {
	case ss <= o.Tab.Scr:
		return o.Scr
	case ss <= o.Tab.Sr:
		return o.Scr + (ss-o.Tab.Scr)/o.Slope1
	case ss <= o.Tab.Smax:
		return o.Sr + (ss-o.Tab.Sr)/o.Slope2
	}
	return o.Smax
}

// ScaleSatDeriv returns d(ScaleSat)/ds
func (o *Transform) ScaleSatDeriv(s float64) float64 {
	if o.DoNotScale {
		return 1
	}
	switch {
	case s <= o.Scr:
		return 0
	case s <= o.Sr:
		return o.Slope1
	case s <= o.Smax:
		return o.Slope2
	}
	return 0
}

// ScaleSatPc maps the cell saturation s onto the table domain (pc curves)
func (o *Transform) ScaleSatPc(s float64) float64 {
	if o.DoNotScale {
		return s
	}
	switch {
	case s <= o.Smin:
		return o.Tab.Smin
	case s <= o.Smax:
		return o.Tab.Smin + (s-o.Smin)*o.pcSlope()
	}
	return o.Tab.Smax
}

// ScaleSatDerivPc returns d(ScaleSatPc)/ds
func (o *Transform) ScaleSatDerivPc(s float64) float64 {
	if o.DoNotScale {
		return 1
	}
	if s <= o.Smin || s > o.Smax {
		return 0
	}
	return o.pcSlope()
}

// ScaleKr rescales the table value kr evaluated at ScaleSat(s)
func (o *Transform) ScaleKr(s, kr float64) float64 {
	switch {
	case o.DoKrCrit:
		switch {
		case s <= o.Scr:
			return 0
		case s <= o.Sr:
			return kr * o.KrSlopeCrit
		case s <= o.Smax:
			if o.DoSatInterp {
				return o.Krsr + (s-o.Sr)*o.KrSlopeMax
			}
			return o.Krsr + (kr-o.Tab.Krsr)*o.KrSlopeMax
		}
		return o.Krmax
	case o.DoKrMax:
		switch {
		case s <= o.Scr:
			return 0
		case s <= o.Smax:
			return kr * o.KrSlopeMax
		}
		return o.Krmax
	}
	return kr
}

// ScaleKrDeriv rescales dkr = d(kr(ScaleSat(s)))/ds
func (o *Transform) ScaleKrDeriv(s, dkr float64) float64 {
	switch {
	case o.DoKrCrit:
		switch {
		case s <= o.Scr:
			return 0
		case s <= o.Sr:
			return dkr * o.KrSlopeCrit
		case s <= o.Smax:
			if o.DoSatInterp {
				return o.KrSlopeMax
			}
			return dkr * o.KrSlopeMax
		}
		return 0
	case o.DoKrMax:
		switch {
		case s <= o.Scr:
			return 0
		case s <= o.Smax:
			return dkr * o.KrSlopeMax
		}
		return 0
	}
	return dkr
}

// ScalePc rescales a capillary pressure (or its derivative)
func (o *Transform) ScalePc(pc float64) float64 {
	return pc * o.PcFactor
}

// pcSlope returns the slope of the two-endpoint pc map
func (o *Transform) pcSlope() float64 {
	return (o.Tab.Smax - o.Tab.Smin) / (o.Smax - o.Smin)
}
