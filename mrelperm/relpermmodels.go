// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mrelperm implements models for water and oil relative permeabilities
// in porous media as functions of the water saturation
package mrelperm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines water-oil relative permeability models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Krw(sw float64) float64          // Krw returns the relative permeability of water
	Kro(sw float64) float64          // Kro returns the relative permeability of oil
	DkrwDsw(sw float64) float64      // DkrwDsw returns ∂krw/∂sw
	DkroDsw(sw float64) float64      // DkroDsw returns ∂kro/∂sw
}

// New relative permeability model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mrelperm' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
