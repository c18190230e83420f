// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/stretchr/testify/require"
)

func Test_deck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck01. json")

	deck, err := ReadDeck("data", "twophase.json")
	require.NoError(tst, err)
	io.Pforan("desc = %v\n", deck.Desc)

	require.Equal(tst, 4, deck.Ncells)
	require.Equal(tst, []string{"water", "oil"}, deck.Phases)
	require.NotNil(tst, deck.Endscale)
	require.Equal(tst, "NODIR", deck.Endscale.Direction)
	require.Nil(tst, deck.Ehystr)
	require.Len(tst, deck.Tables, 1)
	require.Len(tst, deck.Tables[0].Swof, 5)

	swof, sgof, err := deck.Tables[0].Rows(true, false)
	require.NoError(tst, err)
	require.Nil(tst, sgof)
	require.Equal(tst, []float64{0.5, 0.2, 0.2, 1.0}, swof[2])

	expl := deck.ExplicitScaling()
	require.Len(tst, expl, 3)
	require.Equal(tst, 0.1, expl["SWL"][0])
	require.True(tst, math.IsNaN(expl["SWL"][1]))
	require.Equal(tst, 8.0, expl["PCW"][0])
	require.True(tst, math.IsNaN(expl["PCW"][3]))
	require.False(tst, deck.HasRelpermScaling())
	require.False(tst, deck.HasSatopt("HYSTER"))
}

func Test_deck02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck02. yaml")

	deck, err := ReadDeck("data", "threephase.yaml")
	require.NoError(tst, err)

	require.Equal(tst, 3, deck.Ncells)
	require.Equal(tst, 2, deck.Workers)
	require.True(tst, deck.HasSatopt("hyster"))
	require.NotNil(tst, deck.Ehystr)
	require.Equal(tst, "KR", deck.Ehystr.Limiting)
	require.Equal(tst, "NO", deck.Scalecrs)
	require.Equal(tst, []int{0, 0, 1}, RegionIndices(deck.Satnum))
	require.Equal(tst, []int{0, 0, -1}, RegionIndices(deck.Endnum))
	require.Nil(tst, RegionIndices(deck.Imbnum))
	require.Equal(tst, 2, deck.Tables.NumSwof())
	require.Equal(tst, 2, deck.Tables.NumSgof())

	// generated table
	tab := deck.Tables[1]
	require.Equal(tst, "corey", tab.Model)
	require.Len(tst, tab.Prms, 9)
	swof, sgof, err := tab.Rows(true, true)
	require.NoError(tst, err)
	require.NotNil(tst, tab.Generator)
	require.GreaterOrEqual(tst, len(swof), 11)
	require.GreaterOrEqual(tst, len(sgof), 11)
	chk.Float64(tst, "swl", 1e-17, swof[0][0], 0.1)
	chk.Float64(tst, "krw(swl)", 1e-17, swof[0][1], 0)
	chk.Float64(tst, "krw(1)", 1e-15, swof[len(swof)-1][1], 0.8)

	// depth tables
	enptvd, err := DepthTables("ENPTVD", deck.Enptvd, 8)
	require.NoError(tst, err)
	require.Len(tst, enptvd, 1)
	require.Equal(tst, []float64{1000, 2000}, enptvd[0].Depth)

	// imbibition keys
	expl := deck.ExplicitScaling()
	require.Contains(tst, expl, "ISGCR")
	require.True(tst, math.IsNaN(expl["ISOWCR"][2]))
}

func Test_deck03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck03. errors")

	_, err := ReadDeck("data", "nonexistent.json")
	require.Error(tst, err)
	_, err = ReadDeck("data", "twophase.txt")
	require.Error(tst, err)

	v := 0.1
	good := func() *Deck {
		return &Deck{
			Ncells:  2,
			Phases:  []string{"water", "oil"},
			Tables:  TablesData{{Swof: [][]float64{{0.2, 0, 1, 0}, {0.8, 1, 0, 0}}}},
			Scaling: map[string][]*float64{"SWL": {&v, nil}},
		}
	}
	require.NoError(tst, good().Validate())

	bad := []func(d *Deck){
		func(d *Deck) { d.Ncells = 0 },
		func(d *Deck) { d.Phases = nil },
		func(d *Deck) { d.Tables = nil },
		func(d *Deck) { d.Tables[0].Model = "corey" },
		func(d *Deck) { d.Tables = append(d.Tables, &TableData{}) },
		func(d *Deck) { d.Satnum = []int{1} },
		func(d *Deck) { d.Satnum = []int{1, 0} },
		func(d *Deck) { d.Endnum = []int{0, -1} },
		func(d *Deck) { d.Depths = []float64{1000} },
		func(d *Deck) { d.Scaling["SWX"] = []*float64{nil, nil} },
		func(d *Deck) { d.Scaling["SWU"] = []*float64{nil} },
		func(d *Deck) { d.Enptvd = [][][]float64{{{1000, 0.1}}} },
		func(d *Deck) { d.Enkrvd = [][][]float64{{}} },
	}
	for i, modify := range bad {
		d := good()
		modify(d)
		err := d.Validate()
		require.Error(tst, err, "case %d", i)
		io.Pforan("%d: %v\n", i, err)
	}

	// relperm scaling
	d := good()
	d.Scaling["IKRW"] = []*float64{nil, &v}
	require.True(tst, d.HasRelpermScaling())
}

func Test_deck04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("deck04. generated tables")

	deck, err := ReadDeck("data", "corey.json")
	require.NoError(tst, err)
	require.Nil(tst, deck.Endscale)
	require.Len(tst, deck.Tables, 1)

	swof, sgof, err := deck.Tables[0].Rows(true, true)
	require.NoError(tst, err)
	require.GreaterOrEqual(tst, len(swof), 41)
	require.GreaterOrEqual(tst, len(sgof), 41)
	chk.Float64(tst, "sgl", 1e-17, sgof[0][0], 0)
	chk.Float64(tst, "sgu", 1e-15, sgof[len(sgof)-1][0], 0.9)
	chk.Float64(tst, "pcog(sgu)", 1e-15, sgof[len(sgof)-1][3], 2)

	// the generator is allocated once
	gen := deck.Tables[0].Generator
	_, _, err = deck.Tables[0].Rows(true, false)
	require.NoError(tst, err)
	require.Same(tst, gen, deck.Tables[0].Generator)

	// unknown generator
	deck.Tables[0].Model, deck.Tables[0].Generator = "brooks", nil
	_, _, err = deck.Tables[0].Rows(true, true)
	require.Error(tst, err)
}
