// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// figure size of each subplot
var (
	FigWidth  = 6 * vg.Inch
	FigHeight = 4 * vg.Inch
)

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Style Style     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Xlbl   string       // x-axis label
	Ylbl   string       // y-axis label
	Xrange []float64    // x range
	Yrange []float64    // y range
	Data   []*PltEntity // data and styles to be plotted
}

// subplots
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// ResetPlots clears all subplots
func ResetPlots() {
	Splots = nil
	Csplot = nil
}

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig sets the axes labels of the current subplot
//  xkey, ykey -- keys such as "sw" or "krw"; see GetLabel
func SplotConfig(xkey, xunit, ykey, yunit string) {
	if Csplot != nil {
		Csplot.Xlbl = GetLabel(xkey, xunit)
		Csplot.Ylbl = GetLabel(ykey, yunit)
	}
}

// Plot adds x-y data to the current subplot
//  alias -- alias such as "krw"
func Plot(x, y []float64, alias string, sty Style) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, &PltEntity{Alias: alias, X: x, Y: y, Style: sty})
}

// Draw saves figures with all subplots
//  dirout -- directory to save figures; created if needed
//  fnkey  -- file name key; e.g. "curves" gives curves.png or curves_<id>.png
//  split  -- split subplots into separated figures; otherwise, subplots are stacked vertically
//  returns the names of the saved files
func Draw(dirout, fnkey string, split bool) (files []string, err error) {
	if len(Splots) == 0 {
		return nil, chk.Err("there are no subplots to draw")
	}
	if err = os.MkdirAll(dirout, 0755); err != nil {
		return nil, chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	plots := make([]*plot.Plot, len(Splots))
	for k, spl := range Splots {
		plots[k], err = spl.build()
		if err != nil {
			return
		}
	}
	if split {
		for k, p := range plots {
			fn := filepath.Join(dirout, fnkey+"_"+Splots[k].Id+".png")
			if err = p.Save(FigWidth, FigHeight, fn); err != nil {
				return nil, chk.Err("cannot save figure %q:\n%v", fn, err)
			}
			files = append(files, fn)
		}
		return
	}
	fn := filepath.Join(dirout, fnkey+".png")
	if err = saveStacked(plots, fn); err != nil {
		return
	}
	return []string{fn}, nil
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

// build allocates the gonum plot of this subplot
func (o *SplotDat) build() (p *plot.Plot, err error) {
	p = plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.Xlbl
	p.Y.Label.Text = o.Ylbl
	p.Add(plotter.NewGrid())
	for _, d := range o.Data {
		pts := make(plotter.XYs, len(d.X))
		for i := range d.X {
			pts[i].X, pts[i].Y = d.X[i], d.Y[i]
		}
		line, e := plotter.NewLine(pts)
		if e != nil {
			return nil, chk.Err("subplot %q: cannot draw %q:\n%v", o.Id, d.Alias, e)
		}
		line.Color = d.Style.Color
		line.Width = d.Style.Width
		line.Dashes = d.Style.Dashes
		p.Add(line)
		lbl := d.Style.Label
		if lbl == "" {
			lbl = d.Alias
		}
		p.Legend.Add(lbl, line)
	}
	p.Legend.Top = true
	if len(o.Xrange) == 2 {
		p.X.Min, p.X.Max = o.Xrange[0], o.Xrange[1]
	}
	if len(o.Yrange) == 2 {
		p.Y.Min, p.Y.Max = o.Yrange[0], o.Yrange[1]
	}
	return
}

// saveStacked saves plots in one PNG file, one below the other
func saveStacked(plots []*plot.Plot, fn string) (err error) {
	rows := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		rows[i] = []*plot.Plot{p}
	}
	img := vgimg.New(FigWidth, vg.Length(len(plots))*FigHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: len(plots), Cols: 1, PadY: vg.Millimeter, PadTop: vg.Millimeter, PadBottom: vg.Millimeter}
	canvases := plot.Align(rows, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}
	w, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create file %q:\n%v", fn, err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		return chk.Err("cannot write figure %q:\n%v", fn, err)
	}
	return
}
