// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"testing"

	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/inp"
	"github.com/cpmech/gosl/chk"
)

// runDefault builds and runs a domain with the canonical parameters
func runDefault(tst *testing.T) (dom *Domain) {
	dom, err := NewDomain(inp.Default())
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	sol := Solver{Dom: dom}
	err = sol.Run()
	if err != nil {
		tst.Fatalf("Run failed: %v\n", err)
	}
	return
}

func Test_solver01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver01. boundary conditions and saturation bounds")

	dom := runDefault(tst)
	sd := dom.Sim
	nx := sd.Grid.Nx

	for _, withCap := range []bool{true, false} {
		sw := dom.Field(withCap)

		// left boundary pinned to the injection saturation for all time
		for n := 0; n < sd.Nt; n++ {
			if sw[n][0] != sd.Flood.SwInj {
				tst.Errorf("left boundary not pinned @ n=%d: %g\n", n, sw[n][0])
				return
			}
		}

		// zero-gradient outflow for all marched rows
		for n := 1; n < sd.Nt; n++ {
			if sw[n][nx] != sw[n][nx-1] {
				tst.Errorf("outflow condition violated @ n=%d\n", n)
				return
			}
		}

		// saturations bounded in [0,1]; with the canonical grid they
		// in fact stay within [swc, swinj]
		for n := 0; n < sd.Nt; n++ {
			for i := 0; i <= nx; i++ {
				if sw[n][i] < sd.Fluids.Swc-1e-10 || sw[n][i] > sd.Flood.SwInj+1e-10 {
					tst.Errorf("saturation out of bounds @ n=%d i=%d: %g\n", n, i, sw[n][i])
					return
				}
			}
		}
	}
}

func Test_solver02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver02. CFL number of the canonical grid")

	dom, err := NewDomain(inp.Default())
	if err != nil {
		tst.Fatalf("NewDomain failed: %v\n", err)
	}
	sol := Solver{Dom: dom}
	cfl := sol.CFL()
	if cfl >= 1 {
		tst.Errorf("canonical grid violates the CFL condition: %g\n", cfl)
		return
	}
	chk.Float64(tst, "cfl", 0.01, cfl, 0.2256)
}

func Test_solver03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver03. determinism: identical reruns")

	a := runDefault(tst)
	b := runDefault(tst)
	for n := 0; n < a.Sim.Nt; n++ {
		for i := 0; i <= a.Sim.Grid.Nx; i++ {
			if a.SwCap[n][i] != b.SwCap[n][i] || a.SwAdv[n][i] != b.SwAdv[n][i] {
				tst.Errorf("rerun differs @ n=%d i=%d\n", n, i)
				return
			}
		}
	}
}

func Test_solver04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver04. capillary diffusion smooths the front")

	dom := runDefault(tst)

	// at day 50 the capillary profile must trail the advective one at
	// the front head and lead it behind: compare a mid-domain node
	n := 1000 // day 50
	chk.Float64(tst, "adv @ x=50", 0.02, dom.SwAdv[n][50], 0.608)
	chk.Float64(tst, "cap @ x=50", 0.02, dom.SwCap[n][50], 0.623)
	if dom.SwCap[n][10] <= dom.SwAdv[n][10] {
		tst.Errorf("capillary variant should be smoother behind the front\n")
		return
	}
}

func Test_solver05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solver05. save and re-read results")

	dom := runDefault(tst)
	err := dom.SaveResults("t_solver05")
	if err != nil {
		tst.Errorf("SaveResults failed: %v\n", err)
		return
	}
	res, err := ReadResults(dom.Sim.Data.DirOut + "/t_solver05.gob")
	if err != nil {
		tst.Errorf("ReadResults failed: %v\n", err)
		return
	}
	chk.IntAssert(len(res.T), dom.Sim.Nt)
	chk.IntAssert(len(res.SwCap), dom.Sim.Nt)
	chk.Array(tst, "x", 1e-15, res.X, dom.Sim.X)
	chk.Array(tst, "sw row", 1e-15, res.SwAdv[100], dom.SwAdv[100])
}
