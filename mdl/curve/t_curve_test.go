// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/stretchr/testify/require"
)

func Test_let01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("let01")

	c, err := NewLet("krg", 1.8, 1.9, 1.0, 0, 1, 0, 0.95, false)
	if err != nil {
		tst.Errorf("NewLet failed: %v\n", err)
		return
	}

	correct := 0.95 * math.Pow(0.5, 1.8) / (math.Pow(0.5, 1.8) + 1.9*math.Pow(0.5, 1.0))
	chk.Float64(tst, "krg(0.5)", 1e-5, c.Value(0.5), correct)
	chk.Float64(tst, "krg(0)", 1e-15, c.Value(0), 0)
	chk.Float64(tst, "krg(-0.3)", 1e-15, c.Value(-0.3), 0)
	chk.Float64(tst, "krg(1)", 1e-15, c.Value(1), 0.95)
	chk.Float64(tst, "krg(1.2)", 1e-15, c.Value(1.2), 0.95)

	// monotone
	prev := c.Value(-1)
	for _, s := range utl.LinSpace(-0.1, 1.1, 121) {
		v := c.Value(s)
		if v < prev {
			tst.Errorf("LET curve is not monotone at s=%g: %g < %g\n", s, v, prev)
			return
		}
		prev = v
	}
}

func Test_let02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("let02")

	// decreasing capillary pressure: Pct + (Pcir - Pct) F(1 - S)
	pcir, pct := 3.8, 0.04
	c, err := NewLet("pcow", 0.7, 17.0, 0.95, 0.1, 0.95, pct, pcir, true)
	if err != nil {
		tst.Errorf("NewLet failed: %v\n", err)
		return
	}
	chk.Float64(tst, "pcow(swl)", 1e-15, c.Value(0.1), pcir)
	chk.Float64(tst, "pcow(0)", 1e-15, c.Value(0), pcir)
	chk.Float64(tst, "pcow(1)", 1e-15, c.Value(1), pct)
	sw := 0.4
	S := (sw - 0.1) / (0.95 - 0.1)
	chk.Float64(tst, "pcow(0.4)", 1e-14, c.Value(sw), pct+(pcir-pct)*LetShape(1-S, 0.7, 17.0, 0.95))

	_, err = NewLet[float64]("bad", 0, 1, 1, 0, 1, 0, 1, false)
	require.ErrorIs(tst, err, ErrInvalidTable)
	_, err = NewLet[float64]("bad", 1, 1, 1, 0.6, 0.4, 0, 1, false)
	require.ErrorIs(tst, err, ErrInvalidTable)
}

func Test_sampled01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sampled01")

	c, err := NewSampled("krw", []float64{0.12, 0.3, 0.6, 1.0}, []float64{0, 0.1, 0.4, 1.0})
	if err != nil {
		tst.Errorf("NewSampled failed: %v\n", err)
		return
	}
	chk.Float64(tst, "below", 1e-15, c.Value(-0.1), 0)
	chk.Float64(tst, "at min", 1e-15, c.Value(0.12), 0)
	chk.Float64(tst, "above", 1e-15, c.Value(1.2), 1)
	chk.Float64(tst, "inside", 1e-14, c.Value(0.45), 0.25)
	chk.Float64(tst, "sample", 1e-15, c.Value(0.6), 0.4)

	smin, smax := c.Domain()
	chk.Float64(tst, "smin", 1e-15, smin, 0.12)
	chk.Float64(tst, "smax", 1e-15, smax, 1.0)
	chk.Float64(tst, "critical", 1e-15, c.Critical(0), 0.12)
	chk.Float64(tst, "inverse", 1e-14, c.Inverse(0.25), 0.45)
	chk.Float64(tst, "inverse low", 1e-15, c.Inverse(-1), 0.12)
	chk.Float64(tst, "inverse high", 1e-15, c.Inverse(2), 1.0)

	d, _ := NewSampled("krow", []float64{0, 0.2, 0.3, 0.9}, []float64{0, 0, 0.5, 1})
	chk.Float64(tst, "critical", 1e-15, d.Critical(0), 0.2)
	chk.Float64(tst, "inverse flat", 1e-15, d.Inverse(0), 0)
}

func Test_sampled02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sampled02")

	_, err := NewSampled("swof", []float64{0.1, 0.3, 0.2}, []float64{0, 0.1, 0.2})
	require.ErrorIs(tst, err, ErrInvalidTable)

	_, err = NewSampled("swof", []float64{-0.1, 0.3}, []float64{0, 0.1})
	require.ErrorIs(tst, err, ErrInvalidTable)

	_, err = NewSampled("swof", []float64{0.1, 1.3}, []float64{0, 0.1})
	require.ErrorIs(tst, err, ErrInvalidTable)

	_, err = NewSampled("swof", []float64{0.1}, []float64{0})
	require.ErrorIs(tst, err, ErrInvalidTable)

	_, err = NewSampled("swof", []float64{0.1, 0.2}, []float64{0, math.NaN()})
	require.ErrorIs(tst, err, ErrInvalidTable)
	require.NotErrorIs(tst, err, ErrConfigMismatch)
}

func Test_float32(tst *testing.T) {

	//verbose()
	chk.PrintTitle("float32")

	if float64(Eps[float32]()) <= Eps[float64]() {
		tst.Errorf("float32 epsilon must be larger than float64 epsilon\n")
		return
	}
	chk.Float64(tst, "eps64", 1e-30, Eps[float64](), 2.220446049250313e-16)
	chk.Float64(tst, "eps32", 1e-15, float64(Eps[float32]()), 1.1920928955078125e-07)

	c, err := NewSampled("krg", []float32{0, 0.5, 1}, []float32{0, 0.25, 1})
	if err != nil {
		tst.Errorf("NewSampled failed: %v\n", err)
		return
	}
	chk.Float64(tst, "krg(0.75)", 1e-6, float64(c.Value(0.75)), 0.625)

	l, err := NewLet[float32]("krg", 1.8, 1.9, 1.0, 0, 1, 0, 0.95, false)
	if err != nil {
		tst.Errorf("NewLet failed: %v\n", err)
		return
	}
	correct := 0.95 * math.Pow(0.5, 1.8) / (math.Pow(0.5, 1.8) + 1.9*0.5)
	chk.Float64(tst, "let32(0.5)", 1e-5, float64(l.Value(0.5)), correct)
}

func Test_root01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("root01. inverse of LET curves")

	c, err := NewLet[float64]("krw", 1.5, 7.0, 1.5, 0.2, 0.85, 0, 0.5, false)
	if err != nil {
		tst.Errorf("NewLet failed: %v\n", err)
		return
	}
	for _, v := range []float64{0.001, 0.1, 0.25, 0.49} {
		s := c.Inverse(v)
		chk.Float64(tst, io.Sf("krw(inverse(%g))", v), 1e-10, c.Value(s), v)
	}
	chk.Float64(tst, "inverse below", 1e-17, c.Inverse(-0.1), 0.2)
	chk.Float64(tst, "inverse above", 1e-17, c.Inverse(0.7), 0.85)

	// float32
	l, err := NewLet[float32]("krg", 1.8, 1.9, 1.0, 0, 1, 0, 0.95, false)
	if err != nil {
		tst.Errorf("NewLet failed: %v\n", err)
		return
	}
	s := l.Inverse(0.3)
	chk.Float64(tst, "krg(inverse(0.3))", 1e-6, float64(l.Value(s)), 0.3)

	// any non-decreasing function
	sq := func(x float64) float64 { return x * x }
	chk.Float64(tst, "sqrt(0.5)", 1e-10, Root(sq, 0.5, 0, 1), math.Sqrt(0.5))
}
