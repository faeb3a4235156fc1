// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package satfunc

import (
	"math"
	"testing"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/require"
)

var threePhase = Phases{Water: true, Oil: true, Gas: true}

func normalise[T curve.Float](tst *testing.T, phases Phases, r *Region) *CurveSet[T] {
	nrm, err := NewNormalizer[T](phases, nil)
	require.NoError(tst, err)
	set, err := nrm.Region(1, r)
	require.NoError(tst, err)
	return set
}

func Test_family01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family01. SWOF+SGOF versus SWFN+SGFN+SOF3")

	a := normalise[float64](tst, threePhase, Spe1Family1())
	b := normalise[float64](tst, threePhase, Spe1Family2())
	chk.IntAssert(int(a.Family), int(FamilyOne))
	chk.IntAssert(int(b.Family), int(FamilyTwo))
	CheckSets(tst, a, b, 101, 1e-2, 1e-12)

	// connate water and endpoints
	chk.Float64(tst, "Swl", 1e-15, a.Ends.Swl, 0.12)
	chk.Float64(tst, "Swl", 1e-15, b.Ends.Swl, 0.12)
	chk.Float64(tst, "Swcr", 1e-15, a.Ends.Swcr, 0.12)
	chk.Float64(tst, "Sgcr", 1e-15, a.Ends.Sgcr, 0.02)
	chk.Float64(tst, "Sgu", 1e-15, a.Ends.Sgu, 0.88)
	chk.Float64(tst, "Sowcr", 1e-15, a.Ends.Sowcr, 0.16)
	chk.Float64(tst, "Sowcr", 1e-15, b.Ends.Sowcr, 0.16)
	chk.Float64(tst, "Sogcr", 1e-14, a.Ends.Sogcr, 0.18)
	chk.Float64(tst, "Krocw", 1e-15, a.Ends.Krocw, 1)

	// krog(So) from SGOF uses So = 1 - Swco - Sg
	chk.Float64(tst, "krog(0.58)", 1e-12, a.Krog.Value(0.58), 0.09)
	chk.Float64(tst, "krog(0.58)", 1e-12, b.Krog.Value(0.58), 0.09)

	// defaulted entries are interpolated
	chk.Float64(tst, "krow(0.18)", 1e-15, b.Krow.Value(0.18), 0.0001/3)
	chk.Float64(tst, "krog(0.22)", 1e-15, b.Krog.Value(0.22), 0.0001*0.4)

	// three-phase kro
	va, err := a.View(nil)
	require.NoError(tst, err)
	vb, err := b.View(nil)
	require.NoError(tst, err)
	for sw := 0.12; sw <= 1; sw += 0.04 {
		for so := 0.0; so <= 1-sw; so += 0.04 {
			sg := 1 - sw - so
			chk.Float64(tst, "kro", 1e-2, va.Kro(sw, so, sg), vb.Kro(sw, so, sg))
		}
	}
}

func Test_family02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family02. float32 curves")

	a := normalise[float32](tst, threePhase, Spe1Family1())
	b := normalise[float32](tst, threePhase, Spe1Family2())
	CheckSets(tst, a, b, 101, 1e-2, 1e-6)
	chk.Float64(tst, "Swl", 1e-7, float64(a.Ends.Swl), 0.12)
	c := normalise[float64](tst, threePhase, Spe1Family1())
	for _, s := range []float64{0.15, 0.5, 0.87} {
		chk.Float64(tst, "krw", 1e-6, float64(a.Krw.Value(float32(s))), c.Krw.Value(s))
		chk.Float64(tst, "krog", 1e-6, float64(a.Krog.Value(float32(s))), c.Krog.Value(s))
	}
}

func Test_family03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("family03. SLGOF versus SGOF")

	ref := Spe1Family1()
	n := len(ref.Sgof.Sg)
	sl := make(Column, n)
	krg := make(Column, n)
	krog := make(Column, n)
	pcog := make(Column, n)
	for i := 0; i < n; i++ {
		j := n - 1 - i
		sl[i] = 1 - ref.Sgof.Sg[j]
		krg[i] = ref.Sgof.Krg[j]
		krog[i] = ref.Sgof.Krog[j]
		pcog[i] = 0.1 * ref.Sgof.Sg[j]
	}
	ref.Sgof.Pcog = make(Column, n)
	for i, sg := range ref.Sgof.Sg {
		ref.Sgof.Pcog[i] = 0.1 * sg
	}
	alt := &Region{Swof: ref.Swof, Slgof: &Slgof{Sl: sl, Krg: krg, Krog: krog, Pcog: pcog}}

	a := normalise[float64](tst, threePhase, ref)
	b := normalise[float64](tst, threePhase, alt)
	CheckSets(tst, a, b, 101, 1e-12, 1e-12)

	// liquid saturations below the connate water are not accepted
	bad := &Region{Swof: ref.Swof, Slgof: &Slgof{Sl: Column{0.1, 1}, Krg: Column{1, 0}, Krog: Column{0, 1}, Pcog: Column{0, 0}}}
	nrm, _ := NewNormalizer[float64](threePhase, nil)
	_, err := nrm.Region(1, bad)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
}

func Test_twophase01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("twophase01. gas-oil runs")

	gasOil := Phases{Oil: true, Gas: true}
	r := Spe1GasOilFamily1()
	r.Swof = Spe1Family1().Swof // ignored
	a := normalise[float64](tst, gasOil, r)
	b := normalise[float64](tst, gasOil, Spe1GasOilFamily2())
	if a.Krw != nil || a.Pcow != nil || a.Krow != nil {
		tst.Errorf("water curves must not be built in gas-oil runs\n")
	}
	chk.Float64(tst, "Swl", 1e-15, a.Ends.Swl, 0)
	CheckCurves(tst, a.Krg, b.Krg, 101, 1e-15)
	CheckCurves(tst, a.Krog, b.Krog, 101, 5e-2)
	chk.Float64(tst, "krog(0.6)", 1e-12, a.Krog.Value(0.6), 0.021)
	chk.Float64(tst, "krog(0.6)", 1e-12, b.Krog.Value(0.6), 0.021)

	// water-oil run with SOF3
	waterOil := Phases{Water: true, Oil: true}
	f2 := Spe1Family2()
	f2.Sgfn = nil
	c := normalise[float64](tst, waterOil, f2)
	d := normalise[float64](tst, waterOil, &Region{Swof: Spe1Family1().Swof})
	if c.Krog != nil || c.Krg != nil {
		tst.Errorf("gas curves must not be built in water-oil runs\n")
	}
	CheckCurves(tst, c.Krow, d.Krow, 101, 1e-2)
	CheckCurves(tst, c.Krw, d.Krw, 101, 1e-15)
}

func Test_let01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("let01. SWOFLET and SGOFLET")

	set := normalise[float64](tst, threePhase, LetRegion())
	chk.IntAssert(int(set.Family), int(FamilyLet))
	F := func(s, l, e, t float64) float64 {
		if s <= 0 {
			return 0
		}
		if s >= 1 {
			return 1
		}
		return math.Pow(s, l) / (math.Pow(s, l) + e*math.Pow(1-s, t))
	}
	swco := 0.1
	for i := 0; i <= 100; i++ {
		s := float64(i) / 100
		chk.Float64(tst, "krw", 1e-14, set.Krw.Value(s), 0.5*F((s-0.2)/0.65, 1.5, 7, 1.5))
		chk.Float64(tst, "krow", 1e-14, set.Krow.Value(s), F((s-0.15)/0.65, 3.5, 3, 1.3))
		chk.Float64(tst, "pcow", 1e-13, set.Pcow.Value(s), 0.04+3.76*F(1-(s-0.1)/0.85, 0.7, 17, 0.95))
		chk.Float64(tst, "krg", 1e-14, set.Krg.Value(s), 0.95*F((s-0.03)/(1-0.03-0.01-swco), 1.8, 1.9, 1))
		chk.Float64(tst, "krog", 1e-14, set.Krog.Value(s), F((s-0.01)/(1-0.03-0.01-swco), 3.5, 4, 1.1))
		chk.Float64(tst, "pcog", 1e-14, set.Pcog.Value(s), 0.01+0.19*F(s/(1-swco), 1, 1, 1))
	}
	chk.Float64(tst, "Swl", 1e-15, set.Ends.Swl, 0.1)
	chk.Float64(tst, "Swcr", 1e-15, set.Ends.Swcr, 0.2)
	chk.Float64(tst, "Sgcr", 1e-15, set.Ends.Sgcr, 0.03)
	chk.Float64(tst, "Sogcr", 1e-15, set.Ends.Sogcr, 0.01)
	chk.Float64(tst, "Krocw", 1e-15, set.Ends.Krocw, 1)

	// LET records must have 17 values
	_, err := NewSwofLet([]float64{1, 2, 3})
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	r := LetRegion()
	r.SwofLet.Krwt = 1.5
	nrm, _ := NewNormalizer[float64](threePhase, nil)
	_, err = nrm.Region(1, r)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
}

func Test_invalid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("invalid01. tables rejected by the normaliser")

	nrm, err := NewNormalizer[float64](threePhase, nil)
	require.NoError(tst, err)

	// decreasing krw: nothing is returned
	bad := Spe1Family1()
	krw := append(Column{}, bad.Swof.Krw...)
	krw[3] = 0.5
	bad.Swof.Krw = krw
	sets, err := nrm.All(map[int]*Region{1: Spe1Family1(), 2: bad})
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
	require.Nil(tst, sets)

	// mixed families
	mixed := Spe1Family1()
	mixed.Sof3 = Spe1Family2().Sof3
	_, err = nrm.Region(1, mixed)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// missing companion tables
	_, err = nrm.Region(1, &Region{Swof: Spe1Family1().Swof})
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
	f2 := Spe1Family2()
	f2.Sof3 = nil
	_, err = nrm.Region(1, f2)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
	f2.Sof2 = Spe1GasOilFamily2().Sof2
	_, err = nrm.Region(1, f2)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// saturations
	sat := Spe1Family1()
	sat.Sgof = &Sgof{Sg: Column{0, 0.5, 0.4}, Krg: Column{0, 0.5, 1}, Krog: Column{1, 0.5, 0}, Pcog: Column{0, 0, 0}}
	_, err = nrm.Region(1, sat)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
	sat.Sgof = &Sgof{Sg: Column{0, 0.5, 1.2}, Krg: Column{0, 0.5, 1}, Krog: Column{1, 0.5, 0}, Pcog: Column{0, 0, 0}}
	_, err = nrm.Region(1, sat)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// kr outside [0,1]
	kr := Spe1Family1()
	kr.Sgof = &Sgof{Sg: Column{0, 0.5, 0.88}, Krg: Column{0, 0.5, 1.1}, Krog: Column{1, 0.5, 0}, Pcog: Column{0, 0, 0}}
	_, err = nrm.Region(1, kr)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// all entries defaulted
	def := Spe1Family1()
	nan := math.NaN()
	def.Sgof = &Sgof{Sg: Column{0, 0.5, 0.88}, Krg: Column{nan, nan, nan}, Krog: Column{1, 0.5, 0}, Pcog: Column{0, 0, 0}}
	_, err = nrm.Region(1, def)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// empty region
	_, err = nrm.Region(1, &Region{})
	require.ErrorIs(tst, err, curve.ErrInvalidTable)
	_, err = nrm.All(nil)
	require.ErrorIs(tst, err, curve.ErrInvalidTable)

	// phases
	_, err = NewNormalizer[float64](Phases{Water: true, Gas: true}, nil)
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
	_, err = NewNormalizer[float64](Phases{Oil: true}, nil)
	require.ErrorIs(tst, err, curve.ErrConfigMismatch)
}
