// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/ana"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/inp"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/out"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/sim"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gosuri/uiprogress"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/waterflood", ".sim", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, true)
	dosave := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\n1D Oil Filtration Model -- two-phase waterflood\n")
		io.Pf("Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot results", "doplot", doplot,
			"save results", "dosave", dosave,
		))
	}

	// simulation data
	sd, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation data:\n%v", err)
	}

	// domain and solver
	dom, err := sim.NewDomain(sd)
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	solver := sim.Solver{Dom: dom}

	// stability
	if verbose {
		io.Pf("\nCFL number = %v\n\n", solver.CFL())
	}

	// progress bar over both variants
	if verbose {
		uiprogress.Start()
		bar := uiprogress.AddBar(2 * (sd.Nt - 1)).AppendCompleted().PrependElapsed()
		solver.StepCb = func(n int) {
			bar.Incr()
		}
	}

	// march saturations
	err = solver.Run()
	if err != nil {
		chk.Panic("simulation failed:\n%v", err)
	}
	if verbose {
		uiprogress.Stop()
	}

	// analytical front for comparison
	var bl ana.BuckleyLeverett
	err = bl.Init(dom.Flx, sd.Fluids.Swc, sd.Flood.SwInj)
	if err != nil {
		chk.Panic("cannot compute analytical front:\n%v", err)
	}

	// report
	if verbose {
		rep := out.Report{Dom: dom}
		rep.Parameters()
		rep.SaturationProfile(sd.Grid.Days/2.0, 10)
		rep.PressureDistribution(sd.Grid.Days/2.0, 10)
		rep.RecoveryFactors()
		rep.FrontParameters()
		io.Pf("\nWelge front saturation   = %.4f\n", bl.Swf)
		io.Pf("Welge front speed        = %.4f m/day\n", bl.Vf)
		io.Pf("analytical breakthrough  = %.2f day\n", bl.Breakthrough(sd.Reservoir.Length))
	}

	// plots
	if doplot {
		out.PlotAll(dom, sd.Data.DirOut)
		if verbose {
			io.Pf("\nfigures saved in %s\n", sd.Data.DirOut)
		}
	}

	// results files
	if dosave {
		err = dom.SaveResults(fnkey)
		if err != nil {
			chk.Panic("cannot save results:\n%v", err)
		}
		if verbose {
			io.Pf("results saved in %s\n", sd.Data.DirOut)
		}
	}
}
