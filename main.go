// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/satprops/inp"
	"github.com/cpmech/satprops/mdl/phases"
	"github.com/cpmech/satprops/out"
	"github.com/cpmech/satprops/props"
	"github.com/spf13/cobra"
)

// flags
var (
	verbose bool
	cell    int
	npts    int
	dirout  string
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
			os.Exit(1)
		}
	}()

	// commands
	rootCmd := &cobra.Command{
		Use:           "satprops",
		Short:         "saturation functions with endpoint scaling and hysteresis",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")

	evalCmd := &cobra.Command{
		Use:   "eval [deck]",
		Short: "print kr and pc along drainage (and imbibition) sweeps of one cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runEval,
	}
	evalCmd.Flags().IntVar(&cell, "cell", 0, "cell index")
	evalCmd.Flags().IntVar(&npts, "np", 11, "number of points")

	rangeCmd := &cobra.Command{
		Use:   "range [deck]",
		Short: "print saturation ranges of all cells",
		Args:  cobra.ExactArgs(1),
		RunE:  runRange,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [deck]",
		Short: "plot kr and pc curves of one cell",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&cell, "cell", 0, "cell index")
	plotCmd.Flags().IntVar(&npts, "np", 101, "number of points")
	plotCmd.Flags().StringVar(&dirout, "out", "/tmp/satprops", "output directory")

	rootCmd.AddCommand(evalCmd, rangeCmd, plotCmd)
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// load reads the deck and allocates the saturation functions
func load(fnamepath string) (*props.SatProps, error) {
	dir, fn := filepath.Split(fnamepath)
	deck, err := inp.ReadDeck(dir, fn)
	if err != nil {
		return nil, err
	}
	if verbose {
		io.PfWhite("\n%s\n", deck.Desc)
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"deck file", "fnamepath", fnamepath,
			"cell index", "cell", cell,
			"number of points", "np", npts,
		))
	}
	return props.New(deck, verbose)
}

func runEval(cmd *cobra.Command, args []string) error {
	sp, err := load(args[0])
	if err != nil {
		return err
	}
	for _, p := range []phases.Phase{phases.Water, phases.Gas} {
		if !sp.Pu.Used[p] {
			continue
		}
		drn, imb, err := out.Cycle(sp, cell, p, npts)
		if err != nil {
			return err
		}
		printBranch(sp, "drainage", drn)
		if imb != nil {
			printBranch(sp, "imbibition", imb)
		}
	}
	return nil
}

func runRange(cmd *cobra.Command, args []string) error {
	sp, err := load(args[0])
	if err != nil {
		return err
	}
	n, np := sp.NumCells(), sp.NumPhases()
	cells := make([]int, n)
	for i := range cells {
		cells[i] = i
	}
	smin, smax := make([]float64, n*np), make([]float64, n*np)
	if err = sp.SatRange(cells, smin, smax); err != nil {
		return err
	}
	io.Pf("%6s", "cell")
	for i := 0; i < np; i++ {
		io.Pf("%12s%12s", sp.Pu.Ids[i].String()+"_min", sp.Pu.Ids[i].String()+"_max")
	}
	io.Pf("\n")
	for _, c := range cells {
		io.Pf("%6d", c)
		for i := 0; i < np; i++ {
			io.Pf("%12.6f%12.6f", smin[i+np*c], smax[i+np*c])
		}
		io.Pf("\n")
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	sp, err := load(args[0])
	if err != nil {
		return err
	}
	files, err := out.PlotCurves(sp, cell, npts, dirout)
	if err != nil {
		return err
	}
	for _, fn := range files {
		io.Pfblue2("file <%s> written\n", fn)
	}
	return nil
}

// printBranch prints the results along a branch
func printBranch(sp *props.SatProps, title string, b *out.Branch) {
	np := sp.NumPhases()
	io.Pfyel("\n%v sweep: %s\n", b.Phase, title)
	io.Pf("%12s", "s"+b.Phase.String()[:1])
	for i := 0; i < np; i++ {
		io.Pf("%12s", "kr_"+sp.Pu.Ids[i].String())
	}
	for i := 0; i < np; i++ {
		io.Pf("%12s", "pc_"+sp.Pu.Ids[i].String())
	}
	io.Pf("\n")
	for k, st := range b.Res {
		io.Pf("%12.6f", b.S[k])
		for i := 0; i < np; i++ {
			io.Pf("%12.6f", st.Kr[i])
		}
		for i := 0; i < np; i++ {
			io.Pf("%12.6f", st.Pc[i])
		}
		io.Pf("\n")
	}
}
