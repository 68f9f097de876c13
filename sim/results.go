// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
)

// Results holds the completed saturation fields and the grids needed to
// index them, in a form suitable for saving to disk
type Results struct {
	X     []float64   // node positions
	T     []float64   // time stations
	SwCap [][]float64 // variant with capillary diffusion
	SwAdv [][]float64 // purely advective variant
}

// SaveResults writes the completed fields to dirout/fnkey.{gob,json}
// using the encoder selected in the input data
func (o *Domain) SaveResults(fnkey string) (err error) {
	res := Results{X: o.Sim.X, T: o.Sim.T, SwCap: o.SwCap, SwAdv: o.SwAdv}
	dirout := o.Sim.Data.DirOut
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create output directory %q", dirout)
	}
	switch o.Sim.Data.Encoder {
	case "gob", "":
		fil, err := os.Create(filepath.Join(dirout, fnkey+".gob"))
		if err != nil {
			return chk.Err("cannot create results file: %v", err)
		}
		defer fil.Close()
		return gob.NewEncoder(fil).Encode(&res)
	case "json":
		fil, err := os.Create(filepath.Join(dirout, fnkey+".json"))
		if err != nil {
			return chk.Err("cannot create results file: %v", err)
		}
		defer fil.Close()
		return json.NewEncoder(fil).Encode(&res)
	}
	return chk.Err("encoder %q is invalid; options are \"gob\" and \"json\"", o.Sim.Data.Encoder)
}

// ReadResults reads previously saved results from a .gob or .json file;
// the encoder is selected by the file extension
func ReadResults(fnpath string) (res *Results, err error) {
	fil, err := os.Open(fnpath)
	if err != nil {
		return nil, chk.Err("cannot open results file %q", fnpath)
	}
	defer fil.Close()
	res = new(Results)
	switch filepath.Ext(fnpath) {
	case ".gob":
		err = gob.NewDecoder(fil).Decode(res)
	case ".json":
		err = json.NewDecoder(fil).Decode(res)
	default:
		return nil, chk.Err("results file %q must have extension .gob or .json", fnpath)
	}
	if err != nil {
		return nil, chk.Err("cannot decode results file %q:\n%v", fnpath, err)
	}
	return
}
