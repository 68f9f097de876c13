// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcappres

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// BrooksCorey implements the Brooks and Corey power-law capillary
// pressure curve with linear smoothing bands of width eps next to both
// saturation endpoints:
//
//	pc = pe · Se^(-1/λ) · (2 - w)      for swc+eps < sw < 1-sor-eps
//
// where Se = (sw-swc)/(1-swc-sor). Near sw=swc the curve blends
// linearly to 3·pe; near sw=1-sor it decays linearly to zero. The
// smoothing keeps the derivative finite at the endpoints, where the
// pure power-law blows up.
type BrooksCorey struct {

	// parameters
	pe   float64 // entry pressure [MPa]
	λ    float64 // pore-size distribution index
	wfac float64 // wettability correction factor (1 water-wet, 0 oil-wet)
	swc  float64 // connate water saturation
	sor  float64 // residual oil saturation
	eps  float64 // endpoint smoothing band width

	// derived
	den float64 // 1 - swc - sor
}

// add model to factory
func init() {
	allocators["bcsmooth"] = func() Model { return new(BrooksCorey) }
}

// Init initialises model
func (o *BrooksCorey) Init(prms dbf.Params) (err error) {
	o.eps = 0.01
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pe":
			o.pe = p.V
		case "lam":
			o.λ = p.V
		case "wfac":
			o.wfac = p.V
		case "swc":
			o.swc = p.V
		case "sor":
			o.sor = p.V
		case "eps":
			o.eps = p.V
		default:
			return chk.Err("bcsmooth: parameter named %q is incorrect\n", p.N)
		}
	}
	o.den = 1.0 - o.swc - o.sor
	if o.den <= 0 {
		return chk.Err("bcsmooth: swc=%g and sor=%g leave no mobile saturation window", o.swc, o.sor)
	}
	if o.λ <= 0 {
		return chk.Err("bcsmooth: pore-size distribution index lam=%g must be positive", o.λ)
	}
	if o.eps <= 0 || 2.0*o.eps >= o.den {
		return chk.Err("bcsmooth: smoothing band eps=%g is incompatible with the saturation window %g", o.eps, o.den)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o BrooksCorey) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "pe", V: 1.0},
			&dbf.P{N: "lam", V: 1.5},
			&dbf.P{N: "wfac", V: 0.6},
			&dbf.P{N: "swc", V: 0.2},
			&dbf.P{N: "sor", V: 0.2},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "pe", V: o.pe},
		&dbf.P{N: "lam", V: o.λ},
		&dbf.P{N: "wfac", V: o.wfac},
		&dbf.P{N: "swc", V: o.swc},
		&dbf.P{N: "sor", V: o.sor},
		&dbf.P{N: "eps", V: o.eps},
	}
}

// Pc returns the capillary pressure
func (o BrooksCorey) Pc(sw float64) float64 {

	// lower band: blend to the maximum capillary pressure 3·pe
	if sw <= o.swc+o.eps {
		α := (sw - o.swc) / o.eps
		pcmax := o.pe * 3.0
		return pcmax*(1.0-α) + o.pe*α
	}

	// upper band: decay to zero at the endpoint
	if sw >= 1.0-o.sor-o.eps {
		α := (1.0 - o.sor - sw) / o.eps
		return o.pe * 0.05 * α
	}

	// Brooks-Corey power-law with wettability correction
	se := (sw - o.swc) / o.den
	pc := o.pe * math.Pow(se, -1.0/o.λ)
	return pc * (2.0 - o.wfac)
}
