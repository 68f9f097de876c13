// Copyright 2025 The 1D-Oil-Filtration-Model Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of completed saturation
// fields: derived series, console reports and plotting
package out

// BreakthroughMargin is the saturation excess over swc at the outflow
// node that counts as water breakthrough
var BreakthroughMargin = 0.05

// RecoveryFactor computes the oil recovery factor over time for one
// completed saturation field:
//
//	rf(n) = (So0 - avgSo(n)) / So0
//
// where So0 = 1-swc and avgSo(n) = 1 - mean of row n. The returned
// series has one value per time step and is owned by the caller.
func RecoveryFactor(sw [][]float64, swc float64) (rf []float64) {
	initialOil := 1.0 - swc
	rf = make([]float64, len(sw))
	for n, row := range sw {
		sum := 0.0
		for _, s := range row {
			sum += s
		}
		avgOil := 1.0 - sum/float64(len(row))
		rf[n] = (initialOil - avgOil) / initialOil
	}
	return
}

// BreakthroughTime returns the earliest time at which the water
// saturation at the outflow node exceeds swc + BreakthroughMargin, or
// the full simulated duration if the threshold is never crossed
func BreakthroughTime(sw [][]float64, t []float64, swc, days float64) float64 {
	threshold := swc + BreakthroughMargin
	last := len(sw[0]) - 1
	for n := range sw {
		if sw[n][last] > threshold {
			return t[n]
		}
	}
	return days
}

// FrontPosition returns the position of the leading edge of the
// saturation front in one row: the rightmost node location where the
// saturation exceeds the threshold, or zero if the front has not left
// the inlet
func FrontPosition(row, x []float64, threshold float64) float64 {
	for i := len(row) - 1; i >= 0; i-- {
		if row[i] > threshold {
			return x[i]
		}
	}
	return 0
}
