// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"image/color"

	"github.com/cpmech/satprops/mdl/phases"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Style holds the line style of a plot entity
type Style struct {
	Color  color.Color // line colour
	Dashes []vg.Length // dash pattern; nil means solid
	Width  vg.Length   // line width
	Label  string      // legend; alias if empty
}

// GetDefaultStyle returns the i-th style of the default palette
func GetDefaultStyle(i int) Style {
	return Style{Color: plotutil.Color(i), Width: vg.Points(1.5)}
}

// GetDashedStyle returns the i-th style of the default palette with dashes
func GetDashedStyle(i int) Style {
	sty := GetDefaultStyle(i)
	sty.Dashes = plotutil.Dashes(1)
	return sty
}

// GetLabel returns the axis label of key
func GetLabel(key, unit string) string {
	var l string
	switch key {
	case "sw":
		l = "water saturation"
	case "so":
		l = "oil saturation"
	case "sg":
		l = "gas saturation"
	case "krw":
		l = "krw"
	case "kro":
		l = "kro"
	case "krg":
		l = "krg"
	case "kr":
		l = "relative permeability"
	case "pcow":
		l = "pcow"
	case "pcog":
		l = "pcog"
	case "pc":
		l = "capillary pressure"
	default:
		l = key
	}
	if unit != "" {
		l += " [" + unit + "]"
	}
	return l
}

// satKey returns the saturation key of phase p
func satKey(p phases.Phase) string {
	switch p {
	case phases.Water:
		return "sw"
	case phases.Gas:
		return "sg"
	}
	return "so"
}

// krKey returns the relative permeability key of phase p
func krKey(p phases.Phase) string {
	switch p {
	case phases.Water:
		return "krw"
	case phases.Gas:
		return "krg"
	}
	return "kro"
}

// pcKey returns the capillary pressure key of phase p
func pcKey(p phases.Phase) string {
	if p == phases.Gas {
		return "pcog"
	}
	return "pcow"
}
