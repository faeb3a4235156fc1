// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"os"
	"strings"
	"testing"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

func Test_view01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("view01. two-point endpoint scaling")

	set := normalise[float64](tst, threePhase, Spe1Family1())

	// unscaled views evaluate the curves directly
	v, err := set.View(nil)
	require.NoError(tst, err)
	require.False(tst, v.Scaled())
	empty := NoOverrides()
	v, err = set.View(&empty)
	require.NoError(tst, err)
	require.False(tst, v.Scaled())
	for _, s := range []float64{0.1, 0.3, 0.77, 0.95} {
		chk.Float64(tst, "krw", 1e-17, v.Krw(s), set.Krw.Value(s))
		chk.Float64(tst, "krg", 1e-17, v.Krg(s), set.Krg.Value(s))
	}

	// scaled critical water saturation
	ov := NoOverrides()
	ov.Swcr = 0.2
	v, err = set.View(&ov)
	require.NoError(tst, err)
	require.True(tst, v.Scaled())
	chk.Float64(tst, "Swcr", 1e-15, v.Ends().Swcr, 0.2)
	chk.Float64(tst, "krw(0.2)", 1e-15, v.Krw(0.2), 0)
	chk.Float64(tst, "krw(1)", 1e-15, v.Krw(1), 0.984)
	chk.Float64(tst, "krw(0.6)", 1e-15, v.Krw(0.6), set.Krw.Value(0.56))
	chk.Float64(tst, "krg(0.3)", 1e-15, v.Krg(0.3), set.Krg.Value(0.3))

	// out of domain and inactive phases
	ov = NoOverrides()
	ov.Swl = 0.05
	_, err = set.View(&ov)
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	ov = NoOverrides()
	ov.Sgcr = 0.95
	_, err = set.View(&ov)
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	wo := normalise[float64](tst, Phases{Water: true, Oil: true}, &Region{Swof: Spe1Family1().Swof})
	ov = NoOverrides()
	ov.Sgcr = 0.1
	_, err = wo.View(&ov)
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	chk.Float64(tst, "krg", 1e-17, func() float64 { v, _ := wo.View(nil); return v.Krg(0.5) }(), 0)
}

func Test_oil01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oil01. three-phase oil models on the two-phase edges")

	for _, name := range []string{"default", "stone1", "stone2"} {
		oil, err := NewOilModel[float64](name)
		require.NoError(tst, err)
		chk.String(tst, oil.Name(), name)
		nrm, err := NewNormalizer(threePhase, oil)
		require.NoError(tst, err)
		set, err := nrm.Region(1, Spe1Family1())
		require.NoError(tst, err)
		v, err := set.View(nil)
		require.NoError(tst, err)

		// no gas: kro = krow(So)
		for _, so := range []float64{0.2, 0.4, 0.6, 0.8} {
			sw := 1 - so
			chk.Float64(tst, name+": kro(sg=0)", 1e-12, v.Kro(sw, so, 0), v.Krow(so))
		}

		// connate water: kro = krog(So)
		if name == "default" {
			continue
		}
		swl := set.Ends.Swl
		for _, so := range []float64{0.2, 0.4, 0.6, 0.8} {
			sg := 1 - swl - so
			chk.Float64(tst, name+": kro(sw=swl)", 1e-12, v.Kro(swl, so, sg), v.Krog(so))
		}
	}

	// within [0,1] everywhere
	oil, _ := NewOilModel[float64]("stone2")
	nrm, _ := NewNormalizer(threePhase, oil)
	set, _ := nrm.Region(1, Spe1Family1())
	v, _ := set.View(nil)
	for sw := -0.1; sw < 1.2; sw += 0.05 {
		for so := sw; so < 1.2; so += 0.05 {
			kro := v.Kro(sw, so, 1-sw-so)
			if kro < 0 || kro > 1 || math.IsNaN(kro) {
				tst.Errorf("kro = %g is outside [0,1]\n", kro)
				return
			}
		}
	}

	_, err := NewOilModel[float64]("stone3")
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
}

func Test_oil02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oil02. factory of oil models")

	chk.Strings(tst, "names", OilModelNames(), []string{"default", "stone1", "stone2"})
	for _, name := range OilModelNames() {
		m64, err := NewOilModel[float64](strings.ToUpper(name))
		require.NoError(tst, err)
		chk.String(tst, m64.Name(), name)
		m32, err := NewOilModel[float32](name)
		require.NoError(tst, err)
		chk.String(tst, m32.Name(), name)
	}

	// empty name selects the default model
	oil, err := NewOilModel[float32]("")
	require.NoError(tst, err)
	chk.String(tst, oil.Name(), "default")

	// both precisions agree on the two-phase edge
	st64 := &OilState[float64]{Sw: 0.4, So: 0.6}
	st32 := &OilState[float32]{Sw: 0.4, So: 0.6}
	br64 := linBranches[float64]{}
	br32 := linBranches[float32]{}
	for _, name := range OilModelNames() {
		m64, _ := NewOilModel[float64](name)
		m32, _ := NewOilModel[float32](name)
		st64.Ends.Krocw, st32.Ends.Krocw = 1, 1
		chk.Float64(tst, name+": kro", 1e-6, float64(m32.Kro(st32, br32)), m64.Kro(st64, br64))
	}

	_, err = NewOilModel[float32]("stone3")
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	require.Contains(tst, err.Error(), "stone2")

	// named float types are not registered; nil selects the default model
	type sat float64
	_, err = NewOilModel[sat]("stone1")
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	nrm, err := NewNormalizer[sat](threePhase, nil)
	require.NoError(tst, err)
	chk.String(tst, nrm.Oil.Name(), "default")
}

// linBranches gives krow = krog = So
type linBranches[T curve.Float] struct{}

func (linBranches[T]) Krow(so T) T { return so }
func (linBranches[T]) Krog(so T) T { return so }

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01")

	set := normalise[float64](tst, threePhase, LetRegion())
	dir := tst.TempDir()
	files, err := Plot(set, dir, "let", 51)
	require.NoError(tst, err)
	require.Len(tst, files, 2)
	for _, fn := range files {
		_, err := os.Stat(fn)
		require.NoError(tst, err)
	}
}
