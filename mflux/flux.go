// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mflux composes relative permeability and capillary pressure
// models into the Buckley-Leverett fractional flow function and the
// nonlinear capillary diffusion coefficient used by the explicit solver
package mflux

import (
	"math"

	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mcappres"
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mrelperm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// constants
const (
	MOBEPS  = 1e-10 // additive epsilon to avoid division by zero when kro -> 0
	DSTEP   = 1e-4  // step size for central finite differences over sw
	SWMIN   = 0.01  // lower sw clamp keeping finite differences well-defined
	SWMAX   = 0.99  // upper sw clamp
	MUFLOOR = 0.1   // floor for the saturation-weighted viscosity
	STABFAC = 0.45  // von Neumann stability factor for explicit diffusion
)

// Model holds fluid data and the auxiliary closure models, and computes
// the fractional flow and the capillary diffusion coefficient
type Model struct {

	// parameters
	Porosity float64 // porosity
	MuW      float64 // water viscosity [mPa·s]
	MuO      float64 // oil viscosity [mPa·s]
	K        float64 // permeability scale factor for capillary diffusion
	Damp     float64 // empirical damping factor applied to the diffusion magnitude

	// derived
	MaxD float64 // stability bound 0.45·dx²/dt on the diffusion coefficient

	// auxiliary models
	Rlp mrelperm.Model // relative permeability model
	Cpm mcappres.Model // capillary pressure model
}

// Init initialises this structure
//
// Parameters: porosity, muw, muo, k, damp, dx, dt. The grid steps dx
// and dt enter only through the stability bound MaxD.
func (o *Model) Init(prms dbf.Params, rlp mrelperm.Model, cpm mcappres.Model) (err error) {

	// read parameters
	var dx, dt float64
	o.K = 1.0
	o.Damp = 1.0
	for _, p := range prms {
		switch p.N {
		case "porosity":
			o.Porosity = p.V
		case "muw":
			o.MuW = p.V
		case "muo":
			o.MuO = p.V
		case "k":
			o.K = p.V
		case "damp":
			o.Damp = p.V
		case "dx":
			dx = p.V
		case "dt":
			dt = p.V
		default:
			return chk.Err("flux model: parameter named %q is incorrect\n", p.N)
		}
	}

	// check
	if o.Porosity <= 0 {
		return chk.Err("flux model: porosity = %g is invalid", o.Porosity)
	}
	if o.MuW <= 0 || o.MuO <= 0 {
		return chk.Err("flux model: viscosities muw = %g and muo = %g must be positive", o.MuW, o.MuO)
	}
	if dx <= 0 || dt <= 0 {
		return chk.Err("flux model: grid steps dx = %g and dt = %g must be positive", dx, dt)
	}
	if o.Damp < 0 {
		return chk.Err("flux model: damping factor damp = %g must be non-negative", o.Damp)
	}

	// derived
	o.MaxD = STABFAC * dx * dx / dt

	// auxiliary models
	if rlp == nil || cpm == nil {
		return chk.Err("Rlp and Cpm models must be both non-nil\n")
	}
	o.Rlp = rlp
	o.Cpm = cpm
	return
}

// GetPrms gets (an example) of parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "porosity", V: 0.2},
			&dbf.P{N: "muw", V: 1.0},
			&dbf.P{N: "muo", V: 5.0},
			&dbf.P{N: "k", V: 1.0},
			&dbf.P{N: "damp", V: 1.0},
			&dbf.P{N: "dx", V: 1.0},
			&dbf.P{N: "dt", V: 0.05},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "porosity", V: o.Porosity},
		&dbf.P{N: "muw", V: o.MuW},
		&dbf.P{N: "muo", V: o.MuO},
		&dbf.P{N: "k", V: o.K},
		&dbf.P{N: "damp", V: o.Damp},
	}
}

// Fw returns the Buckley-Leverett fractional flow of water
//
//	M  = (krw/μw) / (kro/μo + ε)
//	fw = M / (1 + M)
func (o Model) Fw(sw float64) float64 {
	krw := o.Rlp.Krw(sw)
	kro := o.Rlp.Kro(sw)
	M := (krw / o.MuW) / (kro/o.MuO + MOBEPS)
	return M / (1.0 + M)
}

// DfwDsw returns dfw/dsw computed by central finite differences with
// the saturation clamped to [SWMIN, SWMAX]
func (o Model) DfwDsw(sw float64) float64 {
	sw = clamp(sw)
	swm := math.Max(sw-DSTEP, SWMIN)
	swp := math.Min(sw+DSTEP, SWMAX)
	return (o.Fw(swp) - o.Fw(swm)) / (2.0 * DSTEP)
}

// DpcDsw returns dpc/dsw computed by central finite differences with
// the saturation clamped to [SWMIN, SWMAX]
func (o Model) DpcDsw(sw float64) float64 {
	sw = clamp(sw)
	swm := math.Max(sw-DSTEP, SWMIN)
	swp := math.Min(sw+DSTEP, SWMAX)
	return (o.Cpm.Pc(swp) - o.Cpm.Pc(swm)) / (2.0 * DSTEP)
}

// Diffusion returns the capillary diffusion coefficient
//
//	D = -k/(porosity·μ(sw)) · dfw/dsw · dpc/dsw
//
// with μ(sw) = μw·sw + μo·(1-sw) floored at MUFLOOR. The magnitude is
// scaled by the damping factor and clamped to the stability bound MaxD.
// The analytic sign is discarded: capillary diffusion is always treated
// as a non-negative, physically-motivated spreading term.
func (o Model) Diffusion(sw float64) float64 {
	sw = clamp(sw)
	dfds := o.DfwDsw(sw)
	dpds := o.DpcDsw(sw)
	mu := o.MuW*sw + o.MuO*(1.0-sw)
	if mu < MUFLOOR {
		mu = MUFLOOR
	}
	D := -o.K / (o.Porosity * mu) * dfds * dpds
	D = math.Abs(D) * o.Damp
	if D > o.MaxD {
		D = o.MaxD
	}
	return D
}

// MaxDfwDsw returns max|dfw/dsw| sampled over np stations in [0,1];
// used for CFL checks of the convective term
func (o Model) MaxDfwDsw(np int) (dmax float64) {
	for i := 0; i < np; i++ {
		sw := float64(i) / float64(np-1)
		d := math.Abs(o.DfwDsw(sw))
		if d > dmax {
			dmax = d
		}
	}
	return
}

// clamp clamps sw to [SWMIN, SWMAX]
func clamp(sw float64) float64 {
	return math.Max(math.Min(sw, SWMAX), SWMIN)
}
