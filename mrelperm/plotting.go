// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mrelperm

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// Plot plots krw and kro curves over sw in [0,1]; the figure is saved
// as dirout/fnkey.png
func Plot(o Model, dirout, fnkey string, np int, withText, deriv bool) {
	X := utl.LinSpace(0, 1, np)
	Yw := make([]float64, np)
	Yo := make([]float64, np)
	var Zw, Zo []float64
	if deriv {
		Zw = make([]float64, np)
		Zo = make([]float64, np)
	}
	for i := 0; i < np; i++ {
		Yw[i] = o.Krw(X[i])
		Yo[i] = o.Kro(X[i])
		if deriv {
			Zw[i] = o.DkrwDsw(X[i])
			Zo[i] = o.DkroDsw(X[i])
		}
	}
	if deriv {
		plt.Subplot(2, 1, 1)
	}
	plt.Plot(X, Yw, &plt.A{C: "b", L: "krw", NoClip: true})
	plt.Plot(X, Yo, &plt.A{C: "g", L: "kro", NoClip: true})
	if withText {
		l := np - 1
		plt.Text(X[0], Yw[0], io.Sf("(%g, %g)", X[0], Yw[0]), &plt.A{Ha: "left", C: "red", Fsz: 8})
		plt.Text(X[l], Yw[l], io.Sf("(%g, %g)", X[l], Yw[l]), &plt.A{Ha: "right", C: "red", Fsz: 8})
	}
	plt.Gll("$s_w$", "$k_r$", nil)
	if deriv {
		plt.Subplot(2, 1, 2)
		plt.Plot(X, Zw, &plt.A{C: "b", L: "dkrw/dsw", NoClip: true})
		plt.Plot(X, Zo, &plt.A{C: "g", L: "dkro/dsw", NoClip: true})
		plt.Gll("$s_w$", "$\\mathrm{d}{k_r}/\\mathrm{d}{s_w}$", nil)
	}
	plt.Save(dirout, fnkey)
}
