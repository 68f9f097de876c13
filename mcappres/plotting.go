// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mcappres

import (
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots the capillary pressure curve pc(sw) over sw in [swlo, swhi];
// the figure is saved as dirout/fnkey.png
func Plot(o Model, dirout, fnkey string, swlo, swhi float64, np int, label string) {
	X := utl.LinSpace(swlo, swhi, np)
	Y := make([]float64, np)
	for i := 0; i < np; i++ {
		Y[i] = o.Pc(X[i])
	}
	plt.Plot(X, Y, &plt.A{C: "b", L: label, NoClip: true})
	plt.Gll("$s_w$", "$p_c$ [MPa]", nil)
	plt.Save(dirout, fnkey)
}
