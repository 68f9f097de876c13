// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the explicit upwind solver marching the water
// saturation fields over the space-time grid
package sim

import (
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/inp"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mflux"
	"github.com/cpmech/gosl/utl"
)

// Domain holds the discretized domain and the two saturation fields.
// Each field is a dense nt × (nx+1) array indexed [time step][node].
// The fields are owned and mutated by the Solver only; after Run they
// are read-only for post-processing.
type Domain struct {

	// input
	Sim *inp.Simulation // simulation data
	Flx *mflux.Model    // fractional flow and capillary diffusion

	// state
	SwCap [][]float64 // water saturation, variant with capillary diffusion
	SwAdv [][]float64 // water saturation, purely advective variant
}

// NewDomain allocates the saturation fields, builds the flux model and
// applies initial and boundary conditions: the whole domain starts at
// swc and the left boundary is pinned to the injection saturation for
// all time steps (Dirichlet)
func NewDomain(sd *inp.Simulation) (o *Domain, err error) {

	// flux model
	o = &Domain{Sim: sd, Flx: new(mflux.Model)}
	err = o.Flx.Init(sd.FluxPrms(), sd.RelPermMdl, sd.CapPresMdl)
	if err != nil {
		return nil, err
	}

	// allocate and initialise fields
	nnod := sd.Grid.Nx + 1
	o.SwCap = utl.Alloc(sd.Nt, nnod)
	o.SwAdv = utl.Alloc(sd.Nt, nnod)
	for n := 0; n < sd.Nt; n++ {
		for i := 0; i < nnod; i++ {
			o.SwCap[n][i] = sd.Fluids.Swc
			o.SwAdv[n][i] = sd.Fluids.Swc
		}
		o.SwCap[n][0] = sd.Flood.SwInj
		o.SwAdv[n][0] = sd.Flood.SwInj
	}
	return
}

// Field returns the saturation field of one variant
func (o *Domain) Field(withCap bool) [][]float64 {
	if withCap {
		return o.SwCap
	}
	return o.SwAdv
}
