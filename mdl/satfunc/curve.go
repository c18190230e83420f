// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Curve implements a tabulated function y(x) with linear interpolation
//  Note: values are constant outside [X[0], X[n-1]]; thus, the derivative is zero there
type Curve struct {
	X  []float64              // abscissae (strictly increasing)
	Y  []float64              // ordinates
	pl interp.PiecewiseLinear // interpolator
}

// NewCurve returns a new tabulated curve
func NewCurve(x, y []float64) (o *Curve, err error) {
	if len(x) < 2 {
		return nil, chk.Err("curve: at least two points are required; %d given", len(x))
	}
	if len(x) != len(y) {
		return nil, chk.Err("curve: len(x)=%d and len(y)=%d must be equal", len(x), len(y))
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, chk.Err("curve: abscissae must be strictly increasing; x[%d]=%g <= x[%d]=%g", i, x[i], i-1, x[i-1])
		}
	}
	o = &Curve{X: x, Y: y}
	err = o.pl.Fit(x, y)
	if err != nil {
		return nil, chk.Err("curve: cannot fit data:\n%v", err)
	}
	return
}

// F computes y(x)
func (o *Curve) F(x float64) float64 {
	return o.pl.Predict(x)
}

// G computes dy/dx
func (o *Curve) G(x float64) float64 {
	n := len(o.X)
	if x == o.X[n-1] {
		return o.slope(n - 2)
	}
	i := floats.Within(o.X, x)
	if i < 0 {
		return 0
	}
	return o.slope(i)
}

// Eval computes y(x) and dy/dx
func (o *Curve) Eval(x float64) (y, dydx float64) {
	return o.F(x), o.G(x)
}

// Xmin returns the first abscissa
func (o *Curve) Xmin() float64 { return o.X[0] }

// Xmax returns the last abscissa
func (o *Curve) Xmax() float64 { return o.X[len(o.X)-1] }

// slope returns the slope of segment i
func (o *Curve) slope(i int) float64 {
	return (o.Y[i+1] - o.Y[i]) / (o.X[i+1] - o.X[i])
}
