// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"testing"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// tables of the SPE1 benchmark

var spe1Sw = []float64{0.12, 0.18, 0.24, 0.3, 0.36, 0.42, 0.48, 0.54, 0.6, 0.66, 0.72, 0.78, 0.84, 0.91, 1}
var spe1Krw = []float64{0, 4.64876033057851e-8, 1.86e-7, 4.18388429752066e-7, 7.43801652892562e-7, 1.16219008264463e-6, 1.67355371900826e-6, 2.27789256198347e-6, 2.97520661157025e-6, 3.7654958677686e-6, 4.64876033057851e-6, 5.625e-6, 6.69421487603306e-6, 8.05914256198347e-6, 0.984}
var spe1Krow = []float64{1, 1, 0.997, 0.98, 0.7, 0.35, 0.2, 0.09, 0.021, 0.01, 0.001, 0.0001, 0, 0, 0}
var spe1Pcow = []float64{4, 2.6, 1.9, 1.4, 1.05, 0.8, 0.62, 0.48, 0.37, 0.28, 0.2, 0.13, 0.07, 0.02, 0}
var spe1Sg = []float64{0, 0.001, 0.02, 0.05, 0.12, 0.2, 0.25, 0.3, 0.4, 0.45, 0.5, 0.6, 0.7, 0.85, 0.88}
var spe1Krg = []float64{0, 0, 0, 0.005, 0.025, 0.075, 0.125, 0.190, 0.410, 0.60, 0.72, 0.87, 0.94, 0.98, 0.984}
var spe1Krog = []float64{1, 1, 0.997, 0.980, 0.700, 0.350, 0.200, 0.090, 0.021, 0.010, 0.001, 0.0001, 0, 0, 0}
var spe1Pcog = []float64{0, 0.0005, 0.01, 0.025, 0.06, 0.1, 0.13, 0.16, 0.22, 0.26, 0.3, 0.38, 0.47, 0.62, 0.65}

// Spe1Family1 returns the SPE1 tables given by SWOF and SGOF
func Spe1Family1() *Region {
	return &Region{
		Swof: &Swof{Sw: spe1Sw, Krw: spe1Krw, Krow: spe1Krow, Pcow: spe1Pcow},
		Sgof: &Sgof{Sg: spe1Sg, Krg: spe1Krg, Krog: spe1Krog, Pcog: spe1Pcog},
	}
}

// Spe1Family2 returns the SPE1 tables given by SWFN, SGFN and SOF3 with defaulted entries
func Spe1Family2() *Region {
	nan := math.NaN()
	return &Region{
		Swfn: &Swfn{Sw: spe1Sw, Krw: spe1Krw, Pcow: spe1Pcow},
		Sgfn: &Sgfn{Sg: spe1Sg, Krg: spe1Krg, Pcog: spe1Pcog},
		Sof3: &Sof3{
			So:   Column{0, 0.03, 0.09, 0.16, 0.18, 0.22, 0.28, 0.34, 0.38, 0.40, 0.43, 0.46, 0.48, 0.52, 0.58, 0.63, 0.64, 0.68, 0.70, 0.76, 0.83, 0.86, 0.879, 0.88},
			Krow: Column{0, 0, 0, 0, nan, 0.0001, 0.001, 0.01, nan, 0.021, nan, 0.09, nan, 0.2, 0.35, nan, 0.7, nan, 0.98, 0.997, 1, 1, 1, 1},
			Krog: Column{0, 0, 0, 0, 0, nan, 0.0001, nan, 0.001, nan, 0.01, nan, 0.021, nan, 0.09, 0.2, nan, 0.35, nan, 0.7, 0.98, 0.997, 1, 1},
		},
	}
}

// Spe1GasOilFamily1 returns the gas-oil SPE1 tables given by SGOF
func Spe1GasOilFamily1() *Region {
	return &Region{
		Sgof: &Sgof{Sg: spe1Sg, Krg: spe1Krg, Krog: spe1Krog, Pcog: spe1Pcog},
	}
}

// Spe1GasOilFamily2 returns the gas-oil SPE1 tables given by SGFN and SOF2
func Spe1GasOilFamily2() *Region {
	return &Region{
		Sgfn: &Sgfn{Sg: spe1Sg, Krg: spe1Krg, Pcog: spe1Pcog},
		Sof2: &Sof2{
			So:  Column{0.12, 0.15, 0.3, 0.4, 0.5, 0.55, 0.6, 0.7, 0.8, 0.88, 0.95, 0.98, 0.999, 1.0},
			Kro: Column{0, 0, 0, 0.0001, 0.001, 0.010, 0.021, 0.090, 0.350, 0.700, 0.980, 0.997, 1, 1},
		},
	}
}

// LetRegion returns a region given by SWOFLET and SGOFLET records
func LetRegion() *Region {
	w, _ := NewSwofLet([]float64{0.1, 0.2, 1.5, 7.0, 1.5, 0.5, 0.05, 0.15, 3.5, 3.0, 1.3, 1.0, 0.7, 17.0, 0.95, 3.8, 0.04})
	g, _ := NewSgofLet([]float64{0.0, 0.03, 1.8, 1.9, 1.0, 0.95, 0.0, 0.01, 3.5, 4.0, 1.1, 1.0, 1.0, 1.0, 1.0, 0.2, 0.01})
	return &Region{SwofLet: w, SgofLet: g}
}

// CheckCurves compares two curves at npts saturations within [0,1]
func CheckCurves[T curve.Float](tst *testing.T, a, b *curve.Curve[T], npts int, tol float64) {
	if a == nil || b == nil {
		if a != b {
			tst.Errorf("curves differ: one of them is nil\n")
		}
		return
	}
	for _, s := range utl.LinSpace(0, 1, npts) {
		chk.Float64(tst, io.Sf("%s(%g)", a.Name(), s), tol, float64(a.Value(T(s))), float64(b.Value(T(s))))
	}
}

// CheckSets compares all curves of two sets
func CheckSets[T curve.Float](tst *testing.T, a, b *CurveSet[T], npts int, tolKr, tolPc float64) {
	CheckCurves(tst, a.Krw, b.Krw, npts, tolKr)
	CheckCurves(tst, a.Krow, b.Krow, npts, tolKr)
	CheckCurves(tst, a.Krog, b.Krog, npts, tolKr)
	CheckCurves(tst, a.Krg, b.Krg, npts, tolKr)
	CheckCurves(tst, a.Pcow, b.Pcow, npts, tolPc)
	CheckCurves(tst, a.Pcog, b.Pcog, npts, tolPc)
}
