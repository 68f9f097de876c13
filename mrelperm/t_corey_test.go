// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrelperm

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func Test_corey01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey01. endpoints and monotonicity")

	mdl, err := New("corey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// endpoints: immobile water below swc, immobile oil above 1-sor
	for _, sw := range []float64{-0.1, 0, 0.1, 0.2} {
		chk.Float64(tst, "krw(sw<=swc)", 1e-17, mdl.Krw(sw), 0)
		chk.Float64(tst, "kro(sw<=swc)", 1e-17, mdl.Kro(sw), 1)
	}
	for _, sw := range []float64{0.8, 0.9, 1.0, 1.1} {
		chk.Float64(tst, "krw(sw>=1-sor)", 1e-17, mdl.Krw(sw), 1)
		chk.Float64(tst, "kro(sw>=1-sor)", 1e-17, mdl.Kro(sw), 0)
	}

	// midpoint values: Swn = Son = 0.5
	chk.Float64(tst, "krw(0.5)", 1e-15, mdl.Krw(0.5), 0.125)
	chk.Float64(tst, "kro(0.5)", 1e-15, mdl.Kro(0.5), 0.25)

	// monotonicity
	Sw := utl.LinSpace(0, 1, 101)
	for i := 1; i < len(Sw); i++ {
		if mdl.Krw(Sw[i]) < mdl.Krw(Sw[i-1]) {
			tst.Errorf("krw is not monotonic non-decreasing @ sw=%g\n", Sw[i])
			return
		}
		if mdl.Kro(Sw[i]) > mdl.Kro(Sw[i-1]) {
			tst.Errorf("kro is not monotonic non-increasing @ sw=%g\n", Sw[i])
			return
		}
	}

	if chk.Verbose {
		plt.Reset(false, nil)
		Plot(mdl, "/tmp/oilfilt", "fig_corey01", 101, true, true)
	}
}

func Test_corey02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey02. analytical derivatives")

	mdl, err := New("corey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms(true))
	if err != nil {
		tst.Errorf("Init failed: %v\n", err)
		return
	}

	// interior stations only; curves have kinks at swc and 1-sor
	for _, sw := range []float64{0.25, 0.35, 0.5, 0.65, 0.75} {
		chk.DerivScaSca(tst, "dkrw/dsw", 1e-7, mdl.DkrwDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Krw(x)
		})
		chk.DerivScaSca(tst, "dkro/dsw", 1e-7, mdl.DkroDsw(sw), sw, 1e-4, chk.Verbose, func(x float64) float64 {
			return mdl.Kro(x)
		})
	}
}

func Test_corey03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("corey03. invalid parameters")

	mdl, err := New("corey")
	if err != nil {
		tst.Errorf("New failed: %v\n", err)
		return
	}

	// unknown parameter name
	err = mdl.Init([]*dbf.P{&dbf.P{N: "wrong", V: 1}})
	if err == nil {
		tst.Errorf("Init should have failed with unknown parameter name\n")
		return
	}

	// no mobile window
	err = mdl.Init([]*dbf.P{
		&dbf.P{N: "swc", V: 0.6},
		&dbf.P{N: "sor", V: 0.5},
	})
	if err == nil {
		tst.Errorf("Init should have failed with swc+sor >= 1\n")
		return
	}

	// unknown model
	_, err = New("__nonexistent__")
	if err == nil {
		tst.Errorf("New should have failed with unknown model name\n")
		return
	}
}
