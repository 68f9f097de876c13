// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcappres

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// QuadRatio implements a simple capillary pressure curve, quadratic in
// the normalized oil saturation, with hard caps at both endpoints:
//
//	pc = pcmax                  for sw <= swc
//	pc = pcmax · Son²           for swc < sw < 1-sor
//	pc = 0                      for sw >= 1-sor
//
// where Son = (1-sw-sor)/(1-swc-sor)
type QuadRatio struct {

	// parameters
	pcmax float64 // capillary pressure cap at sw=swc [MPa]
	swc   float64 // connate water saturation
	sor   float64 // residual oil saturation

	// derived
	den float64 // 1 - swc - sor
}

// add model to factory
func init() {
	allocators["quadratio"] = func() Model { return new(QuadRatio) }
}

// Init initialises model
func (o *QuadRatio) Init(prms dbf.Params) (err error) {
	o.pcmax = 0.5
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "pcmax":
			o.pcmax = p.V
		case "swc":
			o.swc = p.V
		case "sor":
			o.sor = p.V
		default:
			return chk.Err("quadratio: parameter named %q is incorrect\n", p.N)
		}
	}
	o.den = 1.0 - o.swc - o.sor
	if o.den <= 0 {
		return chk.Err("quadratio: swc=%g and sor=%g leave no mobile saturation window", o.swc, o.sor)
	}
	if o.pcmax < 0 {
		return chk.Err("quadratio: pcmax=%g must be non-negative", o.pcmax)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o QuadRatio) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "pcmax", V: 0.5},
			&dbf.P{N: "swc", V: 0.2},
			&dbf.P{N: "sor", V: 0.2},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "pcmax", V: o.pcmax},
		&dbf.P{N: "swc", V: o.swc},
		&dbf.P{N: "sor", V: o.sor},
	}
}

// Pc returns the capillary pressure
func (o QuadRatio) Pc(sw float64) float64 {
	if sw <= o.swc {
		return o.pcmax
	}
	if sw >= 1.0-o.sor {
		return 0
	}
	son := (1.0 - sw - o.sor) / o.den
	return o.pcmax * son * son
}
