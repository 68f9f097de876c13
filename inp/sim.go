// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mcappres"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mrelperm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/oilfilt
	Encoder string `json:"encoder"` // encoder name for saving results; "gob" or "json"
}

// ReservoirData holds reservoir data
type ReservoirData struct {
	Length   float64 `json:"length"`   // reservoir length [m]
	Porosity float64 `json:"porosity"` // porosity
	Perm     float64 `json:"perm"`     // permeability scale factor for capillary diffusion
}

// FluidsData holds fluid data
type FluidsData struct {
	MuOil   float64 `json:"muoil"`   // oil viscosity [mPa·s]
	MuWater float64 `json:"muwater"` // water viscosity [mPa·s]
	Swc     float64 `json:"swc"`     // initial (connate) water saturation
	Sor     float64 `json:"sor"`     // residual oil saturation
}

// GridData holds space-time discretization data
type GridData struct {
	Nx   int     `json:"nx"`   // number of spatial intervals; grid has nx+1 nodes
	Dt   float64 `json:"dt"`   // time step [day]
	Days float64 `json:"days"` // simulated duration [day]
}

// FloodData holds waterflood and closure-model data
type FloodData struct {
	SwInj   float64  `json:"swinj"`   // injection water saturation held at the left boundary
	Damp    float64  `json:"damp"`    // empirical damping of the capillary diffusion magnitude
	RelPerm string   `json:"relperm"` // relative permeability model name; e.g. "corey"
	RelPrms dbf.Params `json:"relprms"` // extra relperm model parameters (swc and sor are appended)
	CapPres string   `json:"cappres"` // capillary pressure model name; "bcsmooth" or "quadratio"
	CapPrms dbf.Params `json:"capprms"` // extra cappres model parameters (swc and sor are appended)
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data          `json:"data"`      // global information
	Reservoir ReservoirData `json:"reservoir"` // reservoir data
	Fluids    FluidsData    `json:"fluids"`    // fluid data
	Grid      GridData      `json:"grid"`      // discretization data
	Flood     FloodData     `json:"flood"`     // waterflood and closure models

	// derived
	Dx float64   // spatial step = length/nx
	Nt int       // number of time steps = days/dt + 1
	X  []float64 // nx+1 node positions, evenly spaced in [0, length]
	T  []float64 // nt time stations, evenly spaced in [0, days]

	// derived: allocated closure models
	RelPermMdl mrelperm.Model // relative permeability model
	CapPresMdl mcappres.Model // capillary pressure model
}

// Default returns a simulation with the canonical waterflood parameters
func Default() (o *Simulation) {
	o = &Simulation{
		Data: Data{
			Desc:    "1D water-oil filtration with and without capillary diffusion",
			DirOut:  "/tmp/oilfilt",
			Encoder: "gob",
		},
		Reservoir: ReservoirData{Length: 100.0, Porosity: 0.2, Perm: 1.0},
		Fluids:    FluidsData{MuOil: 5.0, MuWater: 1.0, Swc: 0.2, Sor: 0.2},
		Grid:      GridData{Nx: 100, Dt: 0.05, Days: 100.0},
		Flood: FloodData{
			SwInj:   0.8,
			Damp:    1.0,
			RelPerm: "corey",
			CapPres: "bcsmooth",
			CapPrms: []*dbf.P{
				&dbf.P{N: "pe", V: 1.0},
				&dbf.P{N: "lam", V: 1.5},
				&dbf.P{N: "wfac", V: 0.6},
			},
		},
	}
	err := o.Init()
	if err != nil {
		chk.Panic("default simulation data is inconsistent:\n%v", err)
	}
	return
}

// ReadSim reads and initialises simulation data from a .sim JSON file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	if _, serr := os.Stat(simfilepath); serr != nil {
		return nil, chk.Err("cannot read simulation file %q", simfilepath)
	}
	b := io.ReadFile(simfilepath)

	// decode
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// initialise
	err = o.Init()
	if err != nil {
		return nil, err
	}
	return
}

// Init validates input data, computes derived quantities and allocates
// the closure models. ReadSim and Default call it already.
func (o *Simulation) Init() (err error) {

	// check saturation window: 0 ≤ swc < 1-sor ≤ 1
	if o.Fluids.Swc < 0 || o.Fluids.Sor < 0 {
		return chk.Err("saturations must be non-negative: swc=%g, sor=%g", o.Fluids.Swc, o.Fluids.Sor)
	}
	if o.Fluids.Swc >= 1.0-o.Fluids.Sor {
		return chk.Err("swc=%g must be smaller than 1-sor=%g", o.Fluids.Swc, 1.0-o.Fluids.Sor)
	}

	// check grid
	if o.Grid.Nx < 2 {
		return chk.Err("number of spatial intervals nx=%d must be at least 2", o.Grid.Nx)
	}
	if o.Reservoir.Length <= 0 {
		return chk.Err("reservoir length=%g must be positive", o.Reservoir.Length)
	}
	if o.Grid.Dt <= 0 {
		return chk.Err("time step dt=%g must be positive", o.Grid.Dt)
	}
	if o.Grid.Days <= 0 {
		return chk.Err("simulated duration days=%g must be positive", o.Grid.Days)
	}

	// check reservoir, fluids and flood
	if o.Reservoir.Porosity <= 0 {
		return chk.Err("porosity=%g must be positive", o.Reservoir.Porosity)
	}
	if o.Fluids.MuOil <= 0 || o.Fluids.MuWater <= 0 {
		return chk.Err("viscosities must be positive: muoil=%g, muwater=%g", o.Fluids.MuOil, o.Fluids.MuWater)
	}
	if o.Flood.SwInj <= 0 || o.Flood.SwInj > 1 {
		return chk.Err("injection saturation swinj=%g must be within (0,1]", o.Flood.SwInj)
	}

	// derived
	o.Dx = o.Reservoir.Length / float64(o.Grid.Nx)
	o.Nt = int(o.Grid.Days/o.Grid.Dt) + 1
	o.X = utl.LinSpace(0, o.Reservoir.Length, o.Grid.Nx+1)
	o.T = utl.LinSpace(0, o.Grid.Days, o.Nt)

	// closure models
	o.RelPermMdl, err = mrelperm.New(o.Flood.RelPerm)
	if err != nil {
		return
	}
	err = o.RelPermMdl.Init(o.withSats(o.Flood.RelPrms))
	if err != nil {
		return
	}
	o.CapPresMdl, err = mcappres.New(o.Flood.CapPres)
	if err != nil {
		return
	}
	err = o.CapPresMdl.Init(o.withSats(o.Flood.CapPrms))
	return
}

// FluxPrms returns the parameters for the flux (fractional flow and
// capillary diffusion) model
func (o Simulation) FluxPrms() dbf.Params {
	return []*dbf.P{
		&dbf.P{N: "porosity", V: o.Reservoir.Porosity},
		&dbf.P{N: "muw", V: o.Fluids.MuWater},
		&dbf.P{N: "muo", V: o.Fluids.MuOil},
		&dbf.P{N: "k", V: o.Reservoir.Perm},
		&dbf.P{N: "damp", V: o.Flood.Damp},
		&dbf.P{N: "dx", V: o.Dx},
		&dbf.P{N: "dt", V: o.Grid.Dt},
	}
}

// withSats appends swc and sor to a model parameter list so closure
// models need not duplicate the fluid data in the input file
func (o Simulation) withSats(prms dbf.Params) dbf.Params {
	res := make([]*dbf.P, 0, len(prms)+2)
	for _, p := range prms {
		res = append(res, p)
	}
	res = append(res, &dbf.P{N: "swc", V: o.Fluids.Swc})
	res = append(res, &dbf.P{N: "sor", V: o.Fluids.Sor})
	return res
}
