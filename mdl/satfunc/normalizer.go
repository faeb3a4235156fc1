// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package satfunc converts saturation-function input given by any keyword family into
// one canonical set of curves per region:
//
//  krw(Sw)  krow(So)  krog(So)  krg(Sg)  pcow(Sw)  pcog(Sg)
//
// Downstream code evaluates CurveSet (through View) and never needs to know which
// family produced it
package satfunc

import (
	"sort"

	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/sirupsen/logrus"
)

// Normalizer builds canonical curve sets for a given set of active phases
type Normalizer[T curve.Float] struct {
	Phases Phases      // active phases
	Oil    OilModel[T] // three-phase oil model shared by all sets
}

// NewNormalizer returns a new normaliser. A nil oil model selects the default model
func NewNormalizer[T curve.Float](phases Phases, oil OilModel[T]) (o *Normalizer[T], err error) {
	if err = phases.Check(); err != nil {
		return
	}
	if oil == nil {
		oil = new(DefaultOil[T])
	}
	return &Normalizer[T]{Phases: phases, Oil: oil}, nil
}

// All normalises all regions. Nothing is returned if any region fails
func (o *Normalizer[T]) All(regions map[int]*Region) (map[int]*CurveSet[T], error) {
	if len(regions) == 0 {
		return nil, curve.Err(curve.InvalidTable, "no saturation-function region given")
	}
	ids := make([]int, 0, len(regions))
	for id := range regions {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	res := make(map[int]*CurveSet[T], len(regions))
	for _, id := range ids {
		set, err := o.Region(id, regions[id])
		if err != nil {
			return nil, err
		}
		res[id] = set
	}
	return res, nil
}

// Region normalises the tables of one region
func (o *Normalizer[T]) Region(id int, r *Region) (set *CurveSet[T], err error) {
	if r == nil {
		return nil, curve.Err(curve.InvalidTable, "region %d has no saturation functions", id)
	}
	fams := r.Families()
	switch len(fams) {
	case 0:
		return nil, curve.Err(curve.InvalidTable, "region %d has no saturation functions", id)
	case 1:
	default:
		return nil, curve.Err(curve.InvalidTable, "region %d mixes keyword families: %v", id, fams)
	}
	set = &CurveSet[T]{Region: id, Family: fams[0], Phases: o.Phases, Oil: o.Oil}
	switch set.Family {
	case FamilyOne:
		err = o.familyOne(set, r)
	case FamilyTwo:
		err = o.familyTwo(set, r)
	case FamilyLet:
		err = o.familyLet(set, r)
	}
	if err != nil {
		return nil, curve.Err(curve.InvalidTable, "region %d: %s", id, curve.Msg(err))
	}
	if set.Family != FamilyLet {
		set.deriveEndpoints()
	}
	logrus.Debugf("satfunc: %v", set)
	return
}

// familyOne handles SWOF, SGOF and SLGOF
func (o *Normalizer[T]) familyOne(set *CurveSet[T], r *Region) (err error) {
	swco := 0.0
	if o.Phases.Water {
		t := r.Swof
		if t == nil {
			return curve.Err(curve.InvalidTable, "SWOF is required when water is active")
		}
		cols, err := prepare("swof", "sw", t.Sw, []string{"krw", "krow", "pcow"}, []Column{t.Krw, t.Krow, t.Pcow}, []int{upDir, downDir, anyDir}, []bool{true, true, false})
		if err != nil {
			return err
		}
		swco = t.Sw[0]
		if set.Krw, err = sampled[T]("krw", t.Sw, cols[0]); err != nil {
			return err
		}
		xs, ys := reversed(t.Sw, cols[1], func(s float64) float64 { return 1 - s })
		if set.Krow, err = sampled[T]("krow", xs, ys); err != nil {
			return err
		}
		if set.Pcow, err = sampled[T]("pcow", t.Sw, cols[2]); err != nil {
			return err
		}
	} else {
		ignored("SWOF", r.Swof != nil, o.Phases)
	}
	if !o.Phases.Gas {
		ignored("SGOF", r.Sgof != nil, o.Phases)
		ignored("SLGOF", r.Slgof != nil, o.Phases)
		return
	}
	switch {
	case r.Sgof != nil && r.Slgof != nil:
		return curve.Err(curve.InvalidTable, "SGOF and SLGOF cannot be given together")
	case r.Sgof != nil:
		t := r.Sgof
		cols, err := prepare("sgof", "sg", t.Sg, []string{"krg", "krog", "pcog"}, []Column{t.Krg, t.Krog, t.Pcog}, []int{upDir, downDir, anyDir}, []bool{true, true, false})
		if err != nil {
			return err
		}
		if set.Krg, err = sampled[T]("krg", t.Sg, cols[0]); err != nil {
			return err
		}
		xs, ys := reversed(t.Sg, cols[1], func(s float64) float64 { return 1 - swco - s })
		if set.Krog, err = sampled[T]("krog", xs, ys); err != nil {
			return err
		}
		if set.Pcog, err = sampled[T]("pcog", t.Sg, cols[2]); err != nil {
			return err
		}
	case r.Slgof != nil:
		t := r.Slgof
		cols, err := prepare("slgof", "sl", t.Sl, []string{"krg", "krog", "pcog"}, []Column{t.Krg, t.Krog, t.Pcog}, []int{downDir, upDir, anyDir}, []bool{true, true, false})
		if err != nil {
			return err
		}
		if t.Sl[0] < swco-satTol {
			return curve.Err(curve.InvalidTable, "slgof: first liquid saturation %g is below the connate water saturation %g", t.Sl[0], swco)
		}
		gas := func(s float64) float64 { return 1 - s }
		xs, ys := reversed(t.Sl, cols[0], gas)
		if set.Krg, err = sampled[T]("krg", xs, ys); err != nil {
			return err
		}
		if set.Krog, err = sampled[T]("krog", shifted(t.Sl, func(s float64) float64 { return s - swco }), cols[1]); err != nil {
			return err
		}
		xs, ys = reversed(t.Sl, cols[2], gas)
		if set.Pcog, err = sampled[T]("pcog", xs, ys); err != nil {
			return err
		}
	default:
		return curve.Err(curve.InvalidTable, "SGOF or SLGOF is required when gas is active")
	}
	return
}

// familyTwo handles SWFN, SGFN, SOF3 and SOF2
func (o *Normalizer[T]) familyTwo(set *CurveSet[T], r *Region) (err error) {
	if o.Phases.Water {
		t := r.Swfn
		if t == nil {
			return curve.Err(curve.InvalidTable, "SWFN is required when water is active")
		}
		cols, err := prepare("swfn", "sw", t.Sw, []string{"krw", "pcow"}, []Column{t.Krw, t.Pcow}, []int{upDir, anyDir}, []bool{true, false})
		if err != nil {
			return err
		}
		if set.Krw, err = sampled[T]("krw", t.Sw, cols[0]); err != nil {
			return err
		}
		if set.Pcow, err = sampled[T]("pcow", t.Sw, cols[1]); err != nil {
			return err
		}
	} else {
		ignored("SWFN", r.Swfn != nil, o.Phases)
	}
	if o.Phases.Gas {
		t := r.Sgfn
		if t == nil {
			return curve.Err(curve.InvalidTable, "SGFN is required when gas is active")
		}
		cols, err := prepare("sgfn", "sg", t.Sg, []string{"krg", "pcog"}, []Column{t.Krg, t.Pcog}, []int{upDir, anyDir}, []bool{true, false})
		if err != nil {
			return err
		}
		if set.Krg, err = sampled[T]("krg", t.Sg, cols[0]); err != nil {
			return err
		}
		if set.Pcog, err = sampled[T]("pcog", t.Sg, cols[1]); err != nil {
			return err
		}
	} else {
		ignored("SGFN", r.Sgfn != nil, o.Phases)
	}

	// oil
	if o.Phases.ThreePhase() {
		if r.Sof3 == nil {
			if r.Sof2 != nil {
				return curve.Err(curve.InvalidTable, "SOF2 cannot be used in three-phase runs; SOF3 is required")
			}
			return curve.Err(curve.InvalidTable, "SOF3 is required together with SWFN and SGFN")
		}
		t := r.Sof3
		cols, err := prepare("sof3", "so", t.So, []string{"krow", "krog"}, []Column{t.Krow, t.Krog}, []int{upDir, upDir}, []bool{true, true})
		if err != nil {
			return err
		}
		if set.Krow, err = sampled[T]("krow", t.So, cols[0]); err != nil {
			return err
		}
		set.Krog, err = sampled[T]("krog", t.So, cols[1])
		return err
	}
	name := "krow"
	if o.Phases.Gas {
		name = "krog"
	}
	var c *curve.Curve[T]
	switch {
	case r.Sof2 != nil && r.Sof3 != nil:
		return curve.Err(curve.InvalidTable, "SOF2 and SOF3 cannot be given together")
	case r.Sof2 != nil:
		t := r.Sof2
		cols, err := prepare("sof2", "so", t.So, []string{"kro"}, []Column{t.Kro}, []int{upDir}, []bool{true})
		if err != nil {
			return err
		}
		if c, err = sampled[T](name, t.So, cols[0]); err != nil {
			return err
		}
	case r.Sof3 != nil:
		t := r.Sof3
		col := t.Krow
		if o.Phases.Gas {
			col = t.Krog
		}
		cols, err := prepare("sof3", "so", t.So, []string{name}, []Column{col}, []int{upDir}, []bool{true})
		if err != nil {
			return err
		}
		if c, err = sampled[T](name, t.So, cols[0]); err != nil {
			return err
		}
	default:
		return curve.Err(curve.InvalidTable, "SOF2 or SOF3 is required in %v runs", o.Phases)
	}
	if o.Phases.Gas {
		set.Krog = c
	} else {
		set.Krow = c
	}
	return
}

// familyLet handles SWOFLET and SGOFLET
func (o *Normalizer[T]) familyLet(set *CurveSet[T], r *Region) (err error) {
	e := &set.Ends
	swco := 0.0
	if o.Phases.Water {
		w := r.SwofLet
		if w == nil {
			return curve.Err(curve.InvalidTable, "SWOFLET is required when water is active")
		}
		if err = checkLet("swoflet", []float64{w.Swl, w.Swcr, w.Sowl, w.Sowcr}, []float64{w.Krwt, w.Krot}); err != nil {
			return
		}
		if w.Swcr < w.Swl {
			return curve.Err(curve.InvalidTable, "swoflet: critical water saturation %g is below the connate one %g", w.Swcr, w.Swl)
		}
		if set.Krw, err = curve.NewLet("krw", T(w.Lw), T(w.Ew), T(w.Tw), T(w.Swcr), T(1-w.Sowcr), 0, T(w.Krwt), false); err != nil {
			return
		}
		if set.Krow, err = curve.NewLet("krow", T(w.Lo), T(w.Eo), T(w.To), T(w.Sowcr), T(1-w.Swcr), 0, T(w.Krot), false); err != nil {
			return
		}
		if set.Pcow, err = curve.NewLet("pcow", T(w.Lpc), T(w.Epc), T(w.Tpc), T(w.Swl), T(1-w.Sowl), T(w.Pct), T(w.Pcir), true); err != nil {
			return
		}
		swco = w.Swl
		e.Swl, e.Swcr, e.Swu, e.Sowcr, e.Krocw = T(w.Swl), T(w.Swcr), 1, T(w.Sowcr), T(w.Krot)
	} else {
		ignored("SWOFLET", r.SwofLet != nil, o.Phases)
	}
	if !o.Phases.Gas {
		ignored("SGOFLET", r.SgofLet != nil, o.Phases)
		return
	}
	g := r.SgofLet
	if g == nil {
		return curve.Err(curve.InvalidTable, "SGOFLET is required when gas is active")
	}
	if err = checkLet("sgoflet", []float64{g.Sgl, g.Sgcr, g.Sogl, g.Sogcr}, []float64{g.Krgt, g.Krot}); err != nil {
		return
	}
	if set.Krg, err = curve.NewLet("krg", T(g.Lg), T(g.Eg), T(g.Tg), T(g.Sgcr), T(1-g.Sogcr-swco), 0, T(g.Krgt), false); err != nil {
		return
	}
	if set.Krog, err = curve.NewLet("krog", T(g.Lo), T(g.Eo), T(g.To), T(g.Sogcr), T(1-g.Sgcr-swco), 0, T(g.Krot), false); err != nil {
		return
	}
	if set.Pcog, err = curve.NewLet("pcog", T(g.Lpc), T(g.Epc), T(g.Tpc), T(g.Sgl), T(1-g.Sogl-swco), T(g.Pct), T(g.Pcir), false); err != nil {
		return
	}
	e.Sgl, e.Sgcr, e.Sgu, e.Sogcr = T(g.Sgl), T(g.Sgcr), T(1-swco), T(g.Sogcr)
	if !o.Phases.Water {
		e.Krocw = T(g.Krot)
	}
	return
}

// checkLet checks saturations and maximum relative permeabilities of LET records
func checkLet(kw string, sats, krs []float64) error {
	for _, s := range sats {
		if s < 0 || s > 1 {
			return curve.Err(curve.InvalidTable, "%s: saturation %g is outside [0,1]", kw, s)
		}
	}
	for _, k := range krs {
		if k <= 0 || k > 1 {
			return curve.Err(curve.InvalidTable, "%s: maximum relative permeability %g must be within (0,1]", kw, k)
		}
	}
	return nil
}

// sampled converts samples to T and builds a sampled curve
func sampled[T curve.Float](name string, xs, ys []float64) (*curve.Curve[T], error) {
	return curve.NewSampled(name, curve.Convert[T](xs), curve.Convert[T](ys))
}

// ignored warns about tables given for inactive phases
func ignored(kw string, given bool, phases Phases) {
	if given {
		logrus.Warnf("satfunc: %s is ignored in %v runs", kw, phases)
	}
}
