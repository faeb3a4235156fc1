// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hyster implements saturation-function hysteresis for the oil-water and gas-oil
// systems. Each element keeps, per pair, the turning point of the drainage process
// (markers); scanning curves between the drainage and imbibition bounding curves are
// computed from the markers.
//
//  Saturations are expressed with the wetting saturation sw:
//    oil-water: sw = Sw        sn = So = 1 - sw
//    gas-oil:   sw = Sl = 1-Sg sn = Sg = 1 - sw
package hyster

import (
	"github.com/aritorto/opm-common/mdl/curve"
)

// Pair identifies a two-phase system
type Pair int

const (
	OilWater Pair = iota // water is the wetting phase
	GasOil               // liquid is the wetting phase
	NumPairs             // number of pairs
)

// String returns the name of the pair
func (p Pair) String() string {
	switch p {
	case OilWater:
		return "oil-water"
	case GasOil:
		return "gas-oil"
	}
	return "unknown pair"
}

// unset is the turning saturation of elements that never drained
const unset = 2

// Marker holds the state of one element and pair
type Marker[T curve.Float] struct {
	PcSw    T // smallest wetting saturation reached (turning point)
	KrValue T // drainage non-wetting kr at the turning point
}

// Unset returns the marker of elements that never drained
func Unset[T curve.Float]() Marker[T] {
	return Marker[T]{PcSw: unset}
}

// Advanced tells whether the marker holds a turning point
func (o Marker[T]) Advanced() bool {
	return o.PcSw <= 1
}

// Branch holds one bounding process (drainage or imbibition)
type Branch[T curve.Float] struct {
	Pc    func(sw T) T // capillary pressure as function of the wetting saturation
	Krn   func(sn T) T // non-wetting relative permeability; non-decreasing in sn
	Sncr  T            // critical non-wetting saturation
	Snmax T            // maximum non-wetting saturation
}

// Bounds holds the bounding curves of one pair. Bounds are shared by all elements of a
// region and must not be modified after being given to the engine
type Bounds[T curve.Float] struct {
	Drain Branch[T]
	Imb   Branch[T]
}

// Engine holds the markers of all elements. Different elements may be advanced
// concurrently; calls for the same element must be serialised by the caller
type Engine[T curve.Float] struct {
	Cfg     Config       // options
	markers []Marker[T]  // [nelem*NumPairs]
	bounds  []*Bounds[T] // [nelem*NumPairs]
}

// NewEngine allocates an engine for n elements. With a disabled configuration, all
// accessors fail with an InvalidState error
func NewEngine[T curve.Float](cfg Config, n int) (o *Engine[T], err error) {
	if err = cfg.Check(); err != nil {
		return nil, err
	}
	o = &Engine[T]{Cfg: cfg}
	if !cfg.Enabled {
		return
	}
	o.markers = make([]Marker[T], n*int(NumPairs))
	for i := range o.markers {
		o.markers[i] = Unset[T]()
	}
	o.bounds = make([]*Bounds[T], n*int(NumPairs))
	return
}

// Len returns the number of elements
func (o *Engine[T]) Len() int {
	return len(o.markers) / int(NumPairs)
}

// index checks the engine state and the indices
func (o *Engine[T]) index(elem int, pair Pair) (int, error) {
	if !o.Cfg.Enabled {
		return 0, curve.Err(curve.InvalidState, "hysteresis is disabled")
	}
	if pair < 0 || pair >= NumPairs {
		return 0, curve.Err(curve.IndexError, "phase pair %d is invalid", int(pair))
	}
	if elem < 0 || elem >= o.Len() {
		return 0, curve.Err(curve.IndexError, "element %d is outside [0, %d)", elem, o.Len())
	}
	return elem*int(NumPairs) + int(pair), nil
}

// SetBounds sets the bounding curves of an element
func (o *Engine[T]) SetBounds(elem int, pair Pair, b *Bounds[T]) error {
	k, err := o.index(elem, pair)
	if err != nil {
		return err
	}
	o.bounds[k] = b
	return nil
}

// SetMarkers overwrites the markers of an element; e.g. when restarting
func (o *Engine[T]) SetMarkers(elem int, pair Pair, m Marker[T]) error {
	k, err := o.index(elem, pair)
	if err != nil {
		return err
	}
	o.markers[k] = m
	return nil
}

// Markers returns the markers of an element
func (o *Engine[T]) Markers(elem int, pair Pair) (Marker[T], error) {
	k, err := o.index(elem, pair)
	if err != nil {
		return Marker[T]{}, err
	}
	return o.markers[k], nil
}

// Advanced tells whether the element has a turning point for the pair
func (o *Engine[T]) Advanced(elem int, pair Pair) bool {
	k, err := o.index(elem, pair)
	if err != nil {
		return false
	}
	return o.markers[k].Advanced()
}

// Advance moves the turning point if sw extends the drainage process. sw is clamped to
// the domain of the drainage curves. It returns true if the markers changed
func (o *Engine[T]) Advance(elem int, pair Pair, sw T) (changed bool, err error) {
	k, err := o.index(elem, pair)
	if err != nil {
		return
	}
	b := o.bounds[k]
	if b == nil {
		return false, curve.Err(curve.InvalidState, "element %d has no %v bounding curves", elem, pair)
	}
	d := &b.Drain
	sw = curve.Clamp(sw, 1-d.Snmax, 1)
	m := &o.markers[k]
	if sw >= m.PcSw {
		return
	}
	m.PcSw = sw
	m.KrValue = d.Krn(1 - sw)
	return true, nil
}

// ScanningValue returns the capillary pressure and the non-wetting relative permeability
// at the wetting saturation sw. Drainage values are returned on and beyond the turning
// point and for elements that never drained
func (o *Engine[T]) ScanningValue(elem int, pair Pair, sw T) (pc, krn T, err error) {
	k, err := o.index(elem, pair)
	if err != nil {
		return
	}
	b := o.bounds[k]
	if b == nil {
		return 0, 0, curve.Err(curve.InvalidState, "element %d has no %v bounding curves", elem, pair)
	}
	d, i := &b.Drain, &b.Imb
	pc, krn = d.Pc(sw), d.Krn(1-sw)
	m := o.markers[k]
	if !m.Advanced() || sw <= m.PcSw {
		return
	}
	sncrt := trapped(m.PcSw, d, i)
	if o.Cfg.Pc {
		pc = o.scanPc(sw, m, sncrt, d, i)
	}
	if o.Cfg.Kr {
		if o.Cfg.Model == Killough {
			krn = killoughKrn(1-sw, m, sncrt, d, i)
		} else {
			krn = carlsonKrn(1-sw, m, i)
		}
	}
	return
}

// trapped returns the trapped non-wetting saturation after imbibition from the turning
// point swhy, according to Land's model
//  Sncrt = Sncrd + ΔS / (1 + C ΔS)   with   C = 1/(Sncri - Sncrd) - 1/(Snmax - Sncrd)
func trapped[T curve.Float](swhy T, d, i *Branch[T]) T {
	tiny := curve.Tiny[T]()
	sncrd, sncri := d.Sncr, i.Sncr
	if sncri-sncrd < tiny || d.Snmax-sncrd < tiny {
		return sncrd
	}
	ΔS := max(1-swhy-sncrd, 0)
	C := 1/(sncri-sncrd) - 1/(d.Snmax-sncrd)
	return sncrd + ΔS/(1+C*ΔS)
}

// scanPc computes Killough's capillary pressure scanning curve
//  pc = pcd + F (pci - pcd)
//  F  = (1/(sw - swhy + ε) - 1/ε) / (1/(swma - swhy + ε) - 1/ε)
func (o *Engine[T]) scanPc(sw T, m Marker[T], sncrt T, d, i *Branch[T]) T {
	ε := T(o.Cfg.Curv)
	swhy := m.PcSw
	swma := 1 - sncrt
	pcd, pci := d.Pc(sw), i.Pc(sw)
	if 1-swhy <= d.Sncr || swma <= swhy {
		return pcd
	}
	if sw >= swma {
		return pci
	}
	F := (1/(sw-swhy+ε) - 1/ε) / (1/(swma-swhy+ε) - 1/ε)
	return pcd + F*(pci-pcd)
}

// killoughKrn computes Killough's non-wetting relative permeability
//  krn = krni(Snimb) krn(Snhy) / krni(Snmax)
//  Snimb = Sncri + (Sn - Sncrt) (Snmax - Sncri) / (Snhy - Sncrt)
func killoughKrn[T curve.Float](sn T, m Marker[T], sncrt T, d, i *Branch[T]) T {
	tiny := curve.Tiny[T]()
	snhy := 1 - m.PcSw
	if snhy-sncrt < tiny {
		return d.Krn(sn)
	}
	if sn <= sncrt {
		return 0
	}
	den := i.Krn(d.Snmax)
	if den < tiny {
		return 0
	}
	snimb := i.Sncr + (sn-sncrt)*(d.Snmax-i.Sncr)/(snhy-sncrt)
	return curve.Clamp(i.Krn(snimb)*m.KrValue/den, 0, 1)
}

// carlsonKrn computes Carlson's non-wetting relative permeability: the imbibition curve
// is shifted along sn such that it passes through the turning point
func carlsonKrn[T curve.Float](sn T, m Marker[T], i *Branch[T]) T {
	lo, hi := i.Sncr, i.Snmax
	var snstar T
	switch {
	case m.KrValue <= i.Krn(lo):
		snstar = lo
	case m.KrValue >= i.Krn(hi):
		snstar = hi
	default:
		snstar = curve.Root(i.Krn, m.KrValue, lo, hi)
	}
	shift := (1 - m.PcSw) - snstar
	return curve.Clamp(i.Krn(sn-shift), 0, 1)
}
