// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Solver advances the saturation fields with the explicit first-order
// upwind scheme. The convective term always uses the upstream neighbour
// (flow is left-to-right by construction); the capillary variant adds a
// central second-difference diffusion term whose coefficient self-clamps
// to the von Neumann stability bound. The convective CFL condition is
// NOT enforced here; callers should check CFL() when choosing dx and dt.
type Solver struct {

	// input
	Dom *Domain // domain with fields and flux model

	// settings
	StepCb func(n int) // optional callback after each completed time row
}

// Run marches both variants to completion: first the variant with
// capillary diffusion, then the purely advective one. The two passes
// are independent and do not interact.
func (o *Solver) Run() (err error) {
	err = o.RunVariant(true)
	if err != nil {
		return
	}
	return o.RunVariant(false)
}

// RunVariant marches one saturation field from row 0 to row nt-1.
// For each interior node:
//
//	S[n+1,i] = S[n,i] - (dt/dx)·(fw(S[n,i]) - fw(S[n,i-1]))
//	         + (dt/dx²)·D(S[n,i])·(S[n,i+1] - 2·S[n,i] + S[n,i-1])   (withCap only)
//
// followed by the zero-gradient outflow condition S[n+1,nx] = S[n+1,nx-1]
func (o *Solver) RunVariant(withCap bool) (err error) {
	sd := o.Dom.Sim
	flx := o.Dom.Flx
	sw := o.Dom.Field(withCap)
	nx := sd.Grid.Nx
	ct := sd.Grid.Dt / sd.Dx           // convective factor dt/dx
	cd := sd.Grid.Dt / (sd.Dx * sd.Dx) // diffusive factor dt/dx²
	for n := 0; n < sd.Nt-1; n++ {

		// interior nodes; row n+1 depends on row n only
		for i := 1; i < nx; i++ {
			fi := flx.Fw(sw[n][i])
			fim1 := flx.Fw(sw[n][i-1])
			s := sw[n][i] - ct*(fi-fim1)
			if withCap {
				D := flx.Diffusion(sw[n][i])
				s += cd * D * (sw[n][i+1] - 2.0*sw[n][i] + sw[n][i-1])
			}
			if math.IsNaN(s) {
				return chk.Err("NaN found: variant withCap=%v, t=%g, x=%g", withCap, sd.T[n+1], sd.X[i])
			}
			sw[n+1][i] = s
		}

		// outflow boundary
		sw[n+1][nx] = sw[n+1][nx-1]

		if o.StepCb != nil {
			o.StepCb(n)
		}
	}
	return
}

// CFL returns the convective Courant number dt/dx · max|dfw/dsw|
// sampled over the saturation range. Values above 1 mean the explicit
// upwind scheme may oscillate or diverge.
func (o *Solver) CFL() float64 {
	sd := o.Dom.Sim
	return sd.Grid.Dt / sd.Dx * o.Dom.Flx.MaxDfwDsw(201)
}
