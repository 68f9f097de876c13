// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/sim"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Report prints simulation results to the console
type Report struct {
	Dom *sim.Domain // domain with completed fields
}

// Parameters prints the model parameters
func (o Report) Parameters() {
	sd := o.Dom.Sim
	io.Pf("Model parameters:\n")
	io.Pf("  reservoir length      = %g m\n", sd.Reservoir.Length)
	io.Pf("  porosity              = %g\n", sd.Reservoir.Porosity)
	io.Pf("  oil viscosity         = %g mPa·s\n", sd.Fluids.MuOil)
	io.Pf("  water viscosity       = %g mPa·s\n", sd.Fluids.MuWater)
	io.Pf("  initial water sat.    = %g\n", sd.Fluids.Swc)
	io.Pf("  residual oil sat.     = %g\n", sd.Fluids.Sor)
	io.Pf("  grid nodes            = %d\n", sd.Grid.Nx+1)
	io.Pf("  time step             = %g day\n", sd.Grid.Dt)
	io.Pf("  simulated duration    = %g day\n", sd.Grid.Days)
	io.Pf("  injection saturation  = %g\n", sd.Flood.SwInj)
	io.Pf("  relperm model         = %q\n", sd.Flood.RelPerm)
	io.Pf("  capillary model       = %q\n", sd.Flood.CapPres)
}

// SaturationProfile prints the saturation profile of both variants at
// the given day, sampling every nskip-th node. nskip values below 1
// are raised to 1.
func (o Report) SaturationProfile(day float64, nskip int) {
	sd := o.Dom.Sim
	n := o.timeIndex(day)
	if nskip < 1 {
		nskip = 1
	}
	io.Pf("\nSaturation profile at day %g:\n", day)
	io.Pf("%10s%14s%14s\n", "x [m]", "sw (no cap)", "sw (cap)")
	for i := 0; i <= sd.Grid.Nx; i += nskip {
		io.Pf("%10.2f%14.4f%14.4f\n", sd.X[i], o.Dom.SwAdv[n][i], o.Dom.SwCap[n][i])
	}
}

// RecoveryFactors prints the final recovery factors and the
// breakthrough times of both variants
func (o Report) RecoveryFactors() {
	sd := o.Dom.Sim
	rfAdv := RecoveryFactor(o.Dom.SwAdv, sd.Fluids.Swc)
	rfCap := RecoveryFactor(o.Dom.SwCap, sd.Fluids.Swc)
	btAdv := BreakthroughTime(o.Dom.SwAdv, sd.T, sd.Fluids.Swc, sd.Grid.Days)
	btCap := BreakthroughTime(o.Dom.SwCap, sd.T, sd.Fluids.Swc, sd.Grid.Days)
	io.Pf("\nRecovery after %g days:\n", sd.Grid.Days)
	io.Pf("  without capillary effects: rf = %.4f, breakthrough at %g days\n", rfAdv[sd.Nt-1], btAdv)
	io.Pf("  with capillary effects:    rf = %.4f, breakthrough at %g days\n", rfCap[sd.Nt-1], btCap)
}

// FrontParameters prints the front position of both variants at a few
// time stations
func (o Report) FrontParameters() {
	sd := o.Dom.Sim
	threshold := sd.Fluids.Swc + BreakthroughMargin
	io.Pf("\nFront position (sw > %.2f):\n", threshold)
	io.Pf("%10s%14s%14s\n", "day", "x (no cap)", "x (cap)")
	for _, day := range []float64{10, 25, 50, 75, sd.Grid.Days} {
		n := o.timeIndex(day)
		xAdv := FrontPosition(o.Dom.SwAdv[n], sd.X, threshold)
		xCap := FrontPosition(o.Dom.SwCap[n], sd.X, threshold)
		io.Pf("%10.1f%14.1f%14.1f\n", day, xAdv, xCap)
	}
}

// PressureDistribution prints a linear placeholder pressure profile.
// The core does not solve a pressure equation; this output is cosmetic.
// nskip values below 1 are raised to 1.
func (o Report) PressureDistribution(day float64, nskip int) {
	sd := o.Dom.Sim
	p := utl.LinSpace(10, 8, sd.Grid.Nx+1)
	if nskip < 1 {
		nskip = 1
	}
	io.Pf("\nPressure distribution at day %g (placeholder, not computed):\n", day)
	io.Pf("%10s%14s\n", "x [m]", "p [MPa]")
	for i := 0; i <= sd.Grid.Nx; i += nskip {
		io.Pf("%10.2f%14.3f\n", sd.X[i], p[i])
	}
}

// timeIndex converts a day to a (clipped) time-step index
func (o Report) timeIndex(day float64) int {
	sd := o.Dom.Sim
	n := int(day / sd.Grid.Dt)
	if n > sd.Nt-1 {
		n = sd.Nt - 1
	}
	return n
}
