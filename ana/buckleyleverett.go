// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions used to verify the
// numerical solver
package ana

import (
	"github.com/Jamolkhon5/1D-Oil-Filtration-Model/mflux"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

// BuckleyLeverett computes the analytical front of a purely advective
// waterflood by the Welge tangent construction: the shock saturation
// Swf is the root of
//
//	g(S) = dfw/dS(S) - fw(S)/(S - swc)
//
// i.e. the point where the chord from (swc, 0) is tangent to the
// fractional flow curve. In the normalized units of the explicit
// scheme the front travels with speed fw(Swf)/(Swf - swc).
type BuckleyLeverett struct {

	// input
	Flx   *mflux.Model // fractional flow
	Swc   float64      // connate water saturation
	SwInj float64      // injection saturation

	// results
	Swf float64 // front (shock) saturation
	Vf  float64 // front speed in grid units [m/day]
}

// Init computes the Welge tangent point
func (o *BuckleyLeverett) Init(flx *mflux.Model, swc, swInj float64) (err error) {
	o.Flx = flx
	o.Swc = swc
	o.SwInj = swInj

	// tangency condition; bracketed away from the endpoints where
	// both terms vanish
	g := func(s float64) float64 {
		return flx.DfwDsw(s) - flx.Fw(s)/(s-swc)
	}
	xa, xb := swc+0.02, swInj-0.001
	if g(xa)*g(xb) >= 0 {
		return chk.Err("cannot find Welge tangent point: g is not bracketed in [%g,%g]", xa, xb)
	}
	brent := num.NewBrent(g, nil)
	o.Swf = brent.Root(xa, xb)
	o.Vf = flx.Fw(o.Swf) / (o.Swf - swc)
	return
}

// Breakthrough returns the predicted breakthrough time for a reservoir
// of the given length
func (o BuckleyLeverett) Breakthrough(length float64) float64 {
	return length / o.Vf
}
