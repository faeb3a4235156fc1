// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"

	"github.com/aritorto/opm-common/mdl/curve"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// monotonicity requirements
const (
	anyDir  = 0  // non-decreasing or non-increasing
	upDir   = 1  // non-decreasing
	downDir = -1 // non-increasing
)

// satTol is the tolerance used to snap converted saturations onto 0 and 1
const satTol = 1e-12

func errLetRecord(kw string, n int) error {
	return curve.Err(curve.InvalidTable, "%s: a record must have 17 values; %d given", kw, n)
}

// checkSat checks a saturation column: no defaults, within [0,1] and strictly increasing
func checkSat(kw, col string, sat Column) error {
	if len(sat) < 2 {
		return curve.Err(curve.InvalidTable, "%s: at least two rows are required; %d given", kw, len(sat))
	}
	if floats.HasNaN(sat) {
		return curve.Err(curve.InvalidTable, "%s: %s column cannot have defaulted entries", kw, col)
	}
	if floats.Min(sat) < 0 || floats.Max(sat) > 1 {
		return curve.Err(curve.InvalidTable, "%s: %s column must be within [0,1]; min=%g, max=%g", kw, col, floats.Min(sat), floats.Max(sat))
	}
	for i := 1; i < len(sat); i++ {
		if sat[i] <= sat[i-1] {
			return curve.Err(curve.InvalidTable, "%s: %s column must be strictly increasing; row %d: %g <= %g", kw, col, i, sat[i], sat[i-1])
		}
	}
	return nil
}

// fill returns a copy of col with defaulted entries linearly interpolated from the defined
// ones. Entries before the first (after the last) defined value take that value
func fill(kw, col string, sat, vals Column) ([]float64, error) {
	if len(vals) != len(sat) {
		return nil, curve.Err(curve.InvalidTable, "%s: %s column has %d rows but the saturation column has %d", kw, col, len(vals), len(sat))
	}
	res := make([]float64, len(vals))
	copy(res, vals)
	if !floats.HasNaN(res) {
		return res, nil
	}
	var xs, ys []float64
	for i, v := range vals {
		if !math.IsNaN(v) {
			xs = append(xs, sat[i])
			ys = append(ys, v)
		}
	}
	switch len(xs) {
	case 0:
		return nil, curve.Err(curve.InvalidTable, "%s: %s column has no defined entry", kw, col)
	case 1:
		for i := range res {
			res[i] = ys[0]
		}
		return res, nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, curve.Err(curve.InvalidTable, "%s: cannot interpolate defaulted entries of %s: %v", kw, col, err)
	}
	for i, v := range res {
		if math.IsNaN(v) {
			res[i] = pl.Predict(sat[i])
		}
	}
	return res, nil
}

// checkKr checks a relative permeability column: within [0,1] and monotone along dir
func checkKr(kw, col string, kr []float64, dir int) error {
	if floats.Min(kr) < 0 || floats.Max(kr) > 1 {
		return curve.Err(curve.InvalidTable, "%s: %s column must be within [0,1]; min=%g, max=%g", kw, col, floats.Min(kr), floats.Max(kr))
	}
	return checkMonotone(kw, col, kr, dir)
}

// checkMonotone checks that v is monotone along dir; anyDir accepts either direction
func checkMonotone(kw, col string, v []float64, dir int) error {
	for _, x := range v {
		if math.IsInf(x, 0) {
			return curve.Err(curve.InvalidTable, "%s: %s column has infinite entries", kw, col)
		}
	}
	for i := 1; i < len(v); i++ {
		d := v[i] - v[i-1]
		if d == 0 {
			continue
		}
		s := upDir
		if d < 0 {
			s = downDir
		}
		if dir == anyDir {
			dir = s
			continue
		}
		if s != dir {
			what := "non-decreasing"
			if dir == downDir {
				what = "non-increasing"
			}
			return curve.Err(curve.InvalidTable, "%s: %s column must be %s; row %d: %g after %g", kw, col, what, i, v[i], v[i-1])
		}
	}
	return nil
}

// prepare fills and checks the value columns of a table. dirs gives the monotonicity
// requirement of each column; kr says whether the column is a relative permeability
func prepare(kw string, satName string, sat Column, names []string, cols []Column, dirs []int, kr []bool) (res [][]float64, err error) {
	if err = checkSat(kw, satName, sat); err != nil {
		return
	}
	res = make([][]float64, len(cols))
	for i, c := range cols {
		res[i], err = fill(kw, names[i], sat, c)
		if err != nil {
			return nil, err
		}
		if kr[i] {
			err = checkKr(kw, names[i], res[i], dirs[i])
		} else {
			err = checkMonotone(kw, names[i], res[i], dirs[i])
		}
		if err != nil {
			return nil, err
		}
	}
	return
}

// snap removes round-off from converted saturations near 0 and 1
func snap(s float64) float64 {
	if math.Abs(s) < satTol {
		return 0
	}
	if math.Abs(s-1) < satTol {
		return 1
	}
	return s
}

// reversed returns the transformed saturations and values in reversed order; used when
// the conversion s -> f(s) is decreasing
func reversed(sat, vals []float64, f func(s float64) float64) (xs, ys []float64) {
	n := len(sat)
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		xs[n-1-i] = snap(f(sat[i]))
		ys[n-1-i] = vals[i]
	}
	return
}

// shifted returns the transformed saturations; used when s -> f(s) is increasing
func shifted(sat []float64, f func(s float64) float64) (xs []float64) {
	xs = make([]float64, len(sat))
	for i, s := range sat {
		xs[i] = snap(f(s))
	}
	return
}
