// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/sim"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotSaturationProfiles plots the saturation profiles of both variants
// at the given days (two stacked subplots, one per variant)
func PlotSaturationProfiles(dom *sim.Domain, days []float64, dirout, fnkey string) {
	sd := dom.Sim
	plt.Reset(false, nil)
	for _, day := range days {
		if day > sd.Grid.Days {
			continue
		}
		n := int(day / sd.Grid.Dt)
		plt.Subplot(2, 1, 1)
		plt.Plot(sd.X, dom.SwAdv[n], &plt.A{L: io.Sf("day %g", day)})
		plt.Subplot(2, 1, 2)
		plt.Plot(sd.X, dom.SwCap[n], &plt.A{L: io.Sf("day %g", day)})
	}
	plt.Subplot(2, 1, 1)
	plt.AxisYrange(0, 1)
	plt.Title("without capillary effects", nil)
	plt.Gll("$x$ [m]", "$s_w$", nil)
	plt.Subplot(2, 1, 2)
	plt.AxisYrange(0, 1)
	plt.Title("with capillary effects", nil)
	plt.Gll("$x$ [m]", "$s_w$", nil)
	plt.Save(dirout, fnkey)
}

// PlotRecoveryFactor plots the recovery factor of both variants over time
func PlotRecoveryFactor(dom *sim.Domain, dirout, fnkey string) {
	sd := dom.Sim
	rfAdv := RecoveryFactor(dom.SwAdv, sd.Fluids.Swc)
	rfCap := RecoveryFactor(dom.SwCap, sd.Fluids.Swc)
	plt.Reset(false, nil)
	plt.Plot(sd.T, rfAdv, &plt.A{C: "b", L: "without capillary effects"})
	plt.Plot(sd.T, rfCap, &plt.A{C: "r", L: "with capillary effects"})
	plt.Gll("$t$ [day]", "recovery factor", nil)
	plt.Save(dirout, fnkey)
}

// SnapshotRows returns nsnap time-step indices evenly spread over the
// nt available rows, always including the first and last rows. nsnap
// values below 2 are raised to 2.
func SnapshotRows(nt, nsnap int) (rows []int) {
	if nsnap < 2 {
		nsnap = 2
	}
	if nsnap > nt {
		nsnap = nt
	}
	rows = make([]int, nsnap)
	for k := 0; k < nsnap; k++ {
		rows[k] = k * (nt - 1) / (nsnap - 1)
	}
	return
}

// PlotSaturationEvolution plots snapshots of both fields at evenly
// spaced time stations, visualising the front advancing through the
// domain
func PlotSaturationEvolution(dom *sim.Domain, nsnap int, dirout, fnkey string) {
	sd := dom.Sim
	plt.Reset(false, nil)
	for _, n := range SnapshotRows(sd.Nt, nsnap) {
		plt.Subplot(2, 1, 1)
		plt.Plot(sd.X, dom.SwAdv[n], &plt.A{L: io.Sf("t=%.0f", sd.T[n])})
		plt.Subplot(2, 1, 2)
		plt.Plot(sd.X, dom.SwCap[n], &plt.A{L: io.Sf("t=%.0f", sd.T[n])})
	}
	plt.Subplot(2, 1, 1)
	plt.Title("evolution without capillary effects", nil)
	plt.Gll("$x$ [m]", "$s_w$", nil)
	plt.Subplot(2, 1, 2)
	plt.Title("evolution with capillary effects", nil)
	plt.Gll("$x$ [m]", "$s_w$", nil)
	plt.Save(dirout, fnkey)
}

// PlotPressureProfiles plots the linear placeholder pressure profiles.
// The core does not solve a pressure equation; this figure is cosmetic.
func PlotPressureProfiles(dom *sim.Domain, day float64, dirout, fnkey string) {
	sd := dom.Sim
	nnod := sd.Grid.Nx + 1
	pAdv := utl.LinSpace(10, 8, nnod)
	pCap := make([]float64, nnod)
	for i := 0; i < nnod; i++ {
		pCap[i] = pAdv[i] + 0.2*math.Sin(math.Pi*float64(i)/float64(nnod-1))
	}
	plt.Reset(false, nil)
	plt.Plot(sd.X, pAdv, &plt.A{C: "b", L: "without capillary effects"})
	plt.Plot(sd.X, pCap, &plt.A{C: "r", L: "with capillary effects"})
	plt.Title(io.Sf("pressure at day %g (placeholder)", day), nil)
	plt.Gll("$x$ [m]", "$p$ [MPa]", nil)
	plt.Save(dirout, fnkey)
}

// PlotAll generates all figures in dirout
func PlotAll(dom *sim.Domain, dirout string) {
	PlotSaturationProfiles(dom, []float64{10, 50, 100}, dirout, "saturation_profiles")
	PlotRecoveryFactor(dom, dirout, "recovery_factor")
	PlotSaturationEvolution(dom, 6, dirout, "saturation_evolution")
	PlotPressureProfiles(dom, 50, dirout, "pressure_profiles")
}
