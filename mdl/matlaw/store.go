// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package matlaw

import (
	"github.com/aritorto/opm-common/mdl/curve"
	"github.com/aritorto/opm-common/mdl/hyster"
	"github.com/aritorto/opm-common/mdl/satfunc"
	"github.com/sirupsen/logrus"
)

// Params holds the material-law parameters of one element. The curve sets are shared
// with all elements of the same region; hysteresis markers live in the engine
type Params[T curve.Float] struct {
	Elem  int               // element id
	Drain *satfunc.View[T]  // drainage curves; scaled if the element has overrides
	Imb   *satfunc.View[T]  // imbibition curves; equal to Drain without imbibition regions
	hyst  *hyster.Engine[T] // nil if hysteresis is disabled
}

// Phases returns the active phases
func (o *Params[T]) Phases() satfunc.Phases {
	return o.Drain.Set().Phases
}

// scan returns the scanning capillary pressure and non-wetting relative permeability of
// a pair at the wetting saturation sw. ok is false if the element follows the drainage
// curves of the pair or if the engine cannot scan it; the latter is logged
func (o *Params[T]) scan(pair hyster.Pair, sw T) (pc, krn T, ok bool) {
	if o.hyst == nil || !o.hyst.Advanced(o.Elem, pair) {
		return
	}
	pc, krn, err := o.hyst.ScanningValue(o.Elem, pair, sw)
	if err != nil {
		logrus.Warnf("matlaw: element %d follows the %v drainage curves: %v", o.Elem, pair, err)
		return 0, 0, false
	}
	return pc, krn, true
}

// Store holds the parameters of all elements
type Store[T curve.Float] struct {
	regionOf []int                        // drainage region of each element
	regions  map[int]*satfunc.CurveSet[T] // drainage sets
	imbOf    []int                        // imbibition region of each element
	imbSets  map[int]*satfunc.CurveSet[T] // imbibition sets
	records  []Params[T]                  // [nelem]
	views    map[*satfunc.CurveSet[T]]*satfunc.View[T]
	bounds   map[[2]*satfunc.View[T]]*[hyster.NumPairs]hyster.Bounds[T]
	engine   *hyster.Engine[T]
	eps      bool
}

// Build builds the parameters of n elements. regionOf gives the region id of each
// element; all ids must be found in regions
func Build[T curve.Float](n int, regionOf []int, regions map[int]*satfunc.CurveSet[T], hyst hyster.Config, eps bool) (o *Store[T], err error) {
	if n < 0 {
		return nil, curve.Err(curve.ConfigMismatch, "number of elements must not be negative; n = %d", n)
	}
	if len(regionOf) != n {
		return nil, curve.Err(curve.ConfigMismatch, "%d region ids were given for %d elements", len(regionOf), n)
	}
	for i, r := range regionOf {
		if regions[r] == nil {
			return nil, curve.Err(curve.ConfigMismatch, "element %d refers to unknown region %d", i, r)
		}
	}
	o = &Store[T]{
		regionOf: regionOf,
		regions:  regions,
		imbOf:    regionOf,
		imbSets:  regions,
		records:  make([]Params[T], n),
		views:    make(map[*satfunc.CurveSet[T]]*satfunc.View[T]),
		bounds:   make(map[[2]*satfunc.View[T]]*[hyster.NumPairs]hyster.Bounds[T]),
		eps:      eps,
	}
	engine, err := hyster.NewEngine[T](hyst, n)
	if err != nil {
		return nil, err
	}
	if hyst.Enabled {
		o.engine = engine
	}
	for i := range o.records {
		p := &o.records[i]
		p.Elem = i
		p.Drain = o.view(regions[regionOf[i]])
		p.Imb = p.Drain
		p.hyst = o.engine
		if err = o.attach(p); err != nil {
			return nil, err
		}
	}
	logrus.Debugf("matlaw: %d elements in %d regions; hysteresis=%v, eps=%v", n, len(regions), hyst.Enabled, eps)
	return
}

// SetImbibition sets the imbibition regions used by hysteresis
func (o *Store[T]) SetImbibition(imbOf []int, imbSets map[int]*satfunc.CurveSet[T]) (err error) {
	if len(imbOf) != len(o.records) {
		return curve.Err(curve.ConfigMismatch, "%d imbibition region ids were given for %d elements", len(imbOf), len(o.records))
	}
	for i, r := range imbOf {
		if imbSets[r] == nil {
			return curve.Err(curve.ConfigMismatch, "element %d refers to unknown imbibition region %d", i, r)
		}
	}
	o.imbOf, o.imbSets = imbOf, imbSets
	for i := range o.records {
		p := &o.records[i]
		p.Imb = o.view(imbSets[imbOf[i]])
		if err = o.attach(p); err != nil {
			return
		}
	}
	return
}

// Len returns the number of elements
func (o *Store[T]) Len() int { return len(o.records) }

// Record returns the parameters of an element
func (o *Store[T]) Record(elem int) (*Params[T], error) {
	if elem < 0 || elem >= len(o.records) {
		return nil, curve.Err(curve.IndexError, "element %d is outside [0, %d)", elem, len(o.records))
	}
	return &o.records[elem], nil
}

// RegionOf returns the drainage region of an element
func (o *Store[T]) RegionOf(elem int) (int, error) {
	if _, err := o.Record(elem); err != nil {
		return 0, err
	}
	return o.regionOf[elem], nil
}

// SetEndpointOverrides sets the endpoints of an element. Overrides are always checked
// against the curves of the element's region, but only used with endpoint scaling
func (o *Store[T]) SetEndpointOverrides(elem int, ov satfunc.Overrides) (err error) {
	p, err := o.Record(elem)
	if err != nil {
		return
	}
	set := o.regions[o.regionOf[elem]]
	v, err := set.View(&ov)
	if err != nil {
		return curve.Err(curve.ConfigMismatch, "element %d: %s", elem, curve.Msg(err))
	}
	if !o.eps {
		logrus.Debugf("matlaw: endpoint scaling is disabled; overrides of element %d are ignored", elem)
		return
	}
	p.Drain = v
	if o.imbOf[elem] == o.regionOf[elem] && o.imbSets[o.imbOf[elem]] == set {
		p.Imb = v
	}
	return o.attach(p)
}

// HysteresisEnabled tells whether hysteresis is active
func (o *Store[T]) HysteresisEnabled() bool { return o.engine != nil }

// EndpointScalingEnabled tells whether endpoint scaling is active
func (o *Store[T]) EndpointScalingEnabled() bool { return o.eps }

// Engine returns the hysteresis engine or nil
func (o *Store[T]) Engine() *hyster.Engine[T] { return o.engine }

// view returns the shared unscaled view of a set
func (o *Store[T]) view(set *satfunc.CurveSet[T]) *satfunc.View[T] {
	v, ok := o.views[set]
	if !ok {
		v, _ = set.View(nil)
		o.views[set] = v
	}
	return v
}

// attach gives the bounding curves of an element to the hysteresis engine. Elements with
// the same views share the bounds
func (o *Store[T]) attach(p *Params[T]) (err error) {
	if o.engine == nil {
		return
	}
	key := [2]*satfunc.View[T]{p.Drain, p.Imb}
	b, ok := o.bounds[key]
	if !ok {
		b = &[hyster.NumPairs]hyster.Bounds[T]{
			hyster.OilWater: {Drain: oilWater(p.Drain), Imb: oilWater(p.Imb)},
			hyster.GasOil:   {Drain: gasOil(p.Drain), Imb: gasOil(p.Imb)},
		}
		o.bounds[key] = b
	}
	ph := p.Phases()
	if ph.Water {
		if err = o.engine.SetBounds(p.Elem, hyster.OilWater, &b[hyster.OilWater]); err != nil {
			return
		}
	}
	if ph.Gas {
		err = o.engine.SetBounds(p.Elem, hyster.GasOil, &b[hyster.GasOil])
	}
	return
}

// oilWater returns the oil-water bounding branch: sw = Sw and sn = So
func oilWater[T curve.Float](v *satfunc.View[T]) hyster.Branch[T] {
	e := v.Ends()
	return hyster.Branch[T]{
		Pc:    v.Pcow,
		Krn:   v.Krow,
		Sncr:  e.Sowcr,
		Snmax: 1 - e.Swl,
	}
}

// gasOil returns the gas-oil bounding branch: sw = Sl = 1 - Sg and sn = Sg
func gasOil[T curve.Float](v *satfunc.View[T]) hyster.Branch[T] {
	e := v.Ends()
	return hyster.Branch[T]{
		Pc:    func(sl T) T { return v.Pcog(1 - sl) },
		Krn:   v.Krg,
		Sncr:  e.Sgcr,
		Snmax: e.Sgu,
	}
}
