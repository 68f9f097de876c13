// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mcappres implements capillary pressure models (oil-water) as
// functions of the water saturation. Two alternative closures are
// available behind the same interface: a smoothed Brooks-Corey power-law
// and a simpler quadratic-ratio curve with hard caps. The choice is made
// by name at construction time.
package mcappres

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines capillary pressure models
type Model interface {
	Init(prms dbf.Params) error      // Init initialises this structure
	GetPrms(example bool) dbf.Params // gets (an example) of parameters
	Pc(sw float64) float64           // Pc returns the capillary pressure [MPa]
}

// New capillary pressure model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'mcappres' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
