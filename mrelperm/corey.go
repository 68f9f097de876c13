// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrelperm

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Corey implements Corey-type relative permeability curves with a cubic
// water branch and a quadratic oil branch:
//
//	krw = Swn³   kro = Son²
//
// where Swn = (sw-swc)/(1-swc-sor) and Son = (1-sw-sor)/(1-swc-sor)
type Corey struct {

	// parameters
	swc float64 // connate (initial) water saturation
	sor float64 // residual oil saturation

	// derived
	den float64 // 1 - swc - sor == mobile saturation window
}

// add model to factory
func init() {
	allocators["corey"] = func() Model { return new(Corey) }
}

// Init initialises model
func (o *Corey) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch strings.ToLower(p.N) {
		case "swc":
			o.swc = p.V
		case "sor":
			o.sor = p.V
		default:
			return chk.Err("corey: parameter named %q is incorrect\n", p.N)
		}
	}
	o.den = 1.0 - o.swc - o.sor
	if o.den <= 0 {
		return chk.Err("corey: swc=%g and sor=%g leave no mobile saturation window", o.swc, o.sor)
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Corey) GetPrms(example bool) dbf.Params {
	if example {
		return []*dbf.P{
			&dbf.P{N: "swc", V: 0.2},
			&dbf.P{N: "sor", V: 0.2},
		}
	}
	return []*dbf.P{
		&dbf.P{N: "swc", V: o.swc},
		&dbf.P{N: "sor", V: o.sor},
	}
}

// Swc returns the connate water saturation
func (o Corey) Swc() float64 {
	return o.swc
}

// Sor returns the residual oil saturation
func (o Corey) Sor() float64 {
	return o.sor
}

// Krw returns the relative permeability of water
func (o Corey) Krw(sw float64) float64 {
	if sw <= o.swc {
		return 0
	}
	if sw >= 1.0-o.sor {
		return 1
	}
	swn := (sw - o.swc) / o.den
	return swn * swn * swn
}

// Kro returns the relative permeability of oil
func (o Corey) Kro(sw float64) float64 {
	if sw >= 1.0-o.sor {
		return 0
	}
	if sw <= o.swc {
		return 1
	}
	son := (1.0 - sw - o.sor) / o.den
	return son * son
}

// DkrwDsw returns ∂krw/∂sw
func (o Corey) DkrwDsw(sw float64) float64 {
	if sw <= o.swc || sw >= 1.0-o.sor {
		return 0
	}
	swn := (sw - o.swc) / o.den
	return 3.0 * swn * swn / o.den
}

// DkroDsw returns ∂kro/∂sw
func (o Corey) DkroDsw(sw float64) float64 {
	if sw <= o.swc || sw >= 1.0-o.sor {
		return 0
	}
	son := (1.0 - sw - o.sor) / o.den
	return -2.0 * son / o.den
}
